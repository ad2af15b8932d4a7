package rotating

import (
	"iter"

	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/forestrie/go-bloomfilter/bloom"
)

// Filter de-duplicates a stream of fingerprints with bounded memory.
//
// It holds up to Config.Filters bloom filters (generations). New fingerprints
// go to the newest generation; once it has accepted Config.Capacity of them a
// fresh generation is started and, if there are then too many, the oldest is
// dropped. A fingerprint is remembered for at least Capacity*(Filters-1) later
// insertions.
//
// All generations share one set of seeds drawn when the Filter is
// created. Like bloom.Filter, a Filter is not safe for concurrent use.
type Filter struct {
	log         logger.Logger
	cfg         Config
	empty       *bloom.Filter
	generations []*bloom.Filter
	count       uint64
	rotations   uint64
}

// New creates a Filter with one empty generation.
//
// log is required and is used to report rotations; a nil log returns
// ErrNoLogger. ErrNoLogger, ErrBadCapacity and ErrBadFilters report bad
// arguments and wrap neither bloom.ErrAllocation nor bloom.ErrFormat. Errors
// from sizing the generations are returned as bloom.New reports them.
func New(log logger.Logger, cfg Config, opts ...Option) (*Filter, error) {
	if log == nil {
		return nil, ErrNoLogger
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	o := newOptions(opts...)

	seeds, err := bloom.NewSeeds(o.seedSource, cfg.HashCount)
	if err != nil {
		return nil, err
	}
	empty, err := bloom.New(cfg.HashCount, cfg.BitCount, seeds)
	if err != nil {
		return nil, err
	}

	f := &Filter{
		log:         log,
		cfg:         cfg,
		empty:       empty,
		generations: make([]*bloom.Filter, 0, cfg.Filters),
	}
	f.generations = append(f.generations, empty.Clone())
	return f, nil
}

// Contains reports whether any retained generation may contain hash64.
func (f *Filter) Contains(hash64 uint64) bool {
	for i := len(f.generations) - 1; i >= 0; i-- {
		if f.generations[i].Contains(hash64) {
			return true
		}
	}
	return false
}

// Add records hash64 and reports whether it was new, i.e. not contained in
// any retained generation. Only new fingerprints count toward the capacity of
// the newest generation.
func (f *Filter) Add(hash64 uint64) bool {
	if f.Contains(hash64) {
		return false
	}
	f.generations[len(f.generations)-1].Add(hash64)
	f.count++
	if f.count >= f.cfg.Capacity {
		f.rotate()
	}
	return true
}

func (f *Filter) rotate() {
	if len(f.generations) == f.cfg.Filters {
		// drop the oldest in place
		copy(f.generations, f.generations[1:])
		f.generations = f.generations[:len(f.generations)-1]
	}
	f.generations = append(f.generations, f.empty.Clone())
	f.count = 0
	f.rotations++
	f.log.Infof("rotating: generation %d started, %d retained", f.rotations, len(f.generations))
}

// Generations returns the number of retained generations.
func (f *Filter) Generations() int {
	return len(f.generations)
}

// Rotations returns the number of generations started after the first.
func (f *Filter) Rotations() uint64 {
	return f.rotations
}

// Generation returns a copy of generation i, oldest first.
func (f *Filter) Generation(i int) *bloom.Filter {
	return f.generations[i].Clone()
}

// Dedup yields the fingerprints from hashes that Add reports as new.
func (f *Filter) Dedup(hashes iter.Seq[uint64]) iter.Seq[uint64] {
	return Dedup(f, hashes, func(h uint64) uint64 { return h })
}

// Dedup yields the items whose key Add reports as new. The key function maps
// an item to its fingerprint.
func Dedup[T any](f *Filter, items iter.Seq[T], key func(T) uint64) iter.Seq[T] {
	return func(yield func(T) bool) {
		for item := range items {
			if f.Add(key(item)) && !yield(item) {
				return
			}
		}
	}
}
