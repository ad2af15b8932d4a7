package bloom

import "encoding/binary"

func readU64LE(b []byte) uint64     { return binary.LittleEndian.Uint64(b) }
func readI32LE(b []byte) int32      { return int32(binary.LittleEndian.Uint32(b)) }
func writeU64LE(b []byte, v uint64) { binary.LittleEndian.PutUint64(b, v) }
func writeI32LE(b []byte, v int32)  { binary.LittleEndian.PutUint32(b, uint32(v)) }
