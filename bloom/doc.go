package bloom

/*

# Self-describing Bloom filters over 64 bit fingerprints

This package provides a Bloom filter whose entire state lives in one
contiguous byte buffer. The buffer has no internal pointers, so the in-memory
form is also the wire and on-disk form: serializing is a byte copy and
loading is a header check followed by a byte copy.

It follows the `go-merklelog` style:

- explicit byte layouts
- index arithmetic on byte slices
- small functions over those slices
- a burden of knowledge on the caller for choosing parameters

## What Bloom filters are (and are not)

- If Contains says "definitely not present", the fingerprint was never added.
- If Contains says "maybe present", it may or may not have been added
  (false positives are possible, false negatives are not).

Fingerprints are supplied by the caller. This package does not hash keys and
does not pick hashCount or bitCount for a target false positive rate.

## Layout

All fields are little-endian.

	+----------------------+  0   signature "MozBloom" (u64)
	| header (32 bytes)    |  8   version major (i32), 12 version minor (i32)
	|                      |  16  hash count k (u64), 24 bit count m (u64)
	+----------------------+  32
	| seeds[k]             |  one u64 per hash
	+----------------------+  32 + 8k
	| bits[ceil(m/64)]     |  bit j is bit j%64 of word j/64
	+----------------------+  32 + 8k + 8*ceil(m/64)

## Addressing

Hash i of fingerprint h addresses bit (seeds[i] XOR h) mod m. Add sets every
addressed bit, Contains reports whether every addressed bit is set. With k == 0
Contains is vacuously true.

## Loading

FromBytes checks, in order: the data covers the header, the signature, the
major version, that m is not zero, that k and m are within MaxHashCount and
MaxBitCount, and that the data length is exactly ByteSize(k, m). The minor
version is not checked. The returned filter always owns a private copy of the
data.

*/
