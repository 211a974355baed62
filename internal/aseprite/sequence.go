package aseprite

import "iter"

// Slice yields the absolute frame indices of the inclusive range [from, to] in
// playback order: ascending for Forward, descending for Reverse. Every range over
// the returned sequence starts over. Nothing is yielded when from > to.
func Slice(from, to int, direction Direction) iter.Seq[int] {
	return func(yield func(int) bool) {
		if from > to {
			return
		}

		// Stop on the bound itself so math.MinInt/math.MaxInt bounds cannot wrap
		if direction == Reverse {
			for i := to; ; i-- {
				if !yield(i) || i == from {
					return
				}
			}
		}

		for i := from; ; i++ {
			if !yield(i) || i == to {
				return
			}
		}
	}
}

// slice yields the frames of a list-form sheet in playback order along with their
// absolute indices. An index past the end of the list stops the sequence with a
// FrameIndexError.
func (f Frames) slice(from, to int, direction Direction) iter.Seq2[*Frame, error] {
	return func(yield func(*Frame, error) bool) {
		for i := range Slice(from, to, direction) {
			if i < 0 || i >= len(f.List) {
				yield(nil, &FrameIndexError{Index: uint(i), Len: len(f.List)})
				return
			}
			if !yield(&f.List[i], nil) {
				return
			}
		}
	}
}
