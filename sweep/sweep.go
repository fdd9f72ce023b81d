package sweep

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/alterdisks/disk"
)

// sorter encapsulates mutable sweep state.
type sorter struct {
	name string
	row  *disk.Row
	opts Options
	dirs []Direction
	res  Result
}

// LeftToRight sorts a copy of before by repeating forward passes until the
// row is sorted. before is never modified.
//
// Returns ErrNilRow, ErrNotAlternating, ErrOptionViolation or ErrPassLimit.
//
// Complexity: O(n²) time, O(n) memory.
func LeftToRight(before *disk.Row, opts ...Option) (*Result, error) {
	s, err := newSorter("left-to-right", before, opts, Forward)
	if err != nil {
		return nil, err
	}

	return s.run()
}

// Lawnmower sorts a copy of before by alternating a forward pass with a
// backward pass each iteration until the row is sorted. before is never
// modified.
//
// Returns ErrNilRow, ErrNotAlternating, ErrOptionViolation or ErrPassLimit.
//
// Complexity: O(n²) time, O(n) memory.
func Lawnmower(before *disk.Row, opts ...Option) (*Result, error) {
	s, err := newSorter("lawnmower", before, opts, Forward, Backward)
	if err != nil {
		return nil, err
	}

	return s.run()
}

// newSorter validates input and options, then takes a private copy of before.
func newSorter(name string, before *disk.Row, opts []Option, dirs ...Direction) (*sorter, error) {
	if before == nil {
		return nil, ErrNilRow
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if before.Len() == 0 {
		return nil, fmt.Errorf("%w: empty row", ErrNotAlternating)
	}
	if !before.IsAlternating() {
		return nil, fmt.Errorf("%w: %s", ErrNotAlternating, before)
	}

	return &sorter{name: name, row: before.Clone(), opts: o, dirs: dirs}, nil
}

// run loops until the row is sorted. The alternating check belongs to
// newSorter; run accepts any row.
func (s *sorter) run() (*Result, error) {
	log := s.opts.Logger.With(zap.String("algorithm", s.name), zap.Int("disks", s.row.Len()))

	for !s.row.IsSorted() {
		if s.opts.MaxPasses > 0 && s.res.Passes >= s.opts.MaxPasses {
			log.Debug("pass limit reached", zap.Int("passes", s.res.Passes), zap.Int("swaps", s.res.Swaps))
			return nil, fmt.Errorf("%w: %d passes, %d inversions left",
				ErrPassLimit, s.res.Passes, s.row.Inversions())
		}
		s.res.Passes++
		for _, dir := range s.dirs {
			n := scan(s.row, dir, &s.opts)
			s.res.Swaps += n
			s.opts.OnPass(s.res.Passes, dir, n)
			log.Debug("pass done",
				zap.Int("pass", s.res.Passes),
				zap.Stringer("direction", dir),
				zap.Int("swaps", n))
		}
	}
	log.Debug("sorted", zap.Int("passes", s.res.Passes), zap.Int("swaps", s.res.Swaps))

	s.res.after = s.row

	return &s.res, nil
}

// scan runs one pass in direction dir and returns the swaps it made.
func scan(row *disk.Row, dir Direction, opts *Options) int {
	if dir == Backward {
		return backward(row, opts)
	}

	return forward(row, opts)
}

// forward swaps (light, dark) at (i, i+1) for i = 0..n-2.
func forward(row *disk.Row, opts *Options) int {
	swaps := 0
	for i := 0; i+1 < row.Len(); i++ {
		if row.Get(i) == disk.Light && row.Get(i+1) == disk.Dark {
			row.Swap(i)
			swaps++
			opts.OnSwap(i, Forward)
		}
	}

	return swaps
}

// backward swaps (light, dark) at (i-1, i) for i = n-1..1.
func backward(row *disk.Row, opts *Options) int {
	swaps := 0
	for i := row.Len() - 1; i > 0; i-- {
		if row.Get(i) == disk.Dark && row.Get(i-1) == disk.Light {
			row.Swap(i - 1)
			swaps++
			opts.OnSwap(i-1, Backward)
		}
	}

	return swaps
}
