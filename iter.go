package pbr

import "iter"

// Iter yields elements of seq, incrementing b after each one. When seq is
// exhausted b is finished, breaking out of the loop leaves b unfinished.
func Iter[V any](b *Bar, seq iter.Seq[V]) iter.Seq[V] {
	return func(yield func(V) bool) {
		for v := range seq {
			if !yield(v) {
				return
			}
			b.Inc()
		}
		b.Finish()
	}
}

// Slice ranges over s with a bar on os.Stdout, total of which is len(s).
func Slice[S ~[]E, E any](s S, options ...BarOption) iter.Seq2[int, E] {
	return func(yield func(int, E) bool) {
		b := New(uint64(len(s)), options...)
		for i, e := range s {
			if !yield(i, e) {
				return
			}
			b.Inc()
		}
		b.Finish()
	}
}
