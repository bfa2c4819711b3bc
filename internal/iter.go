package internal

import (
	"iter"
)

// IterSeq2Concat concatenates multiple dual-return iterators into a single iterator sequence.
// Later sequences win when the consumer stores pairs by key.
func IterSeq2Concat[T1 any, T2 any](seqs ...iter.Seq2[T1, T2]) iter.Seq2[T1, T2] {
	return func(yield func(T1, T2) bool) {
		for _, seq := range seqs {
			for val1, val2 := range seq {
				if !yield(val1, val2) {
					return // Stop if the consumer stops
				}
			}
		}
	}
}

// Cycle repeats vals forever. An empty vals yields nothing.
func Cycle[T any](vals ...T) iter.Seq[T] {
	return func(yield func(T) bool) {
		if len(vals) == 0 {
			return
		}
		for {
			for _, val := range vals {
				if !yield(val) {
					return
				}
			}
		}
	}
}

// Take yields at most n values from seq.
func Take[T any](seq iter.Seq[T], n int) iter.Seq[T] {
	return func(yield func(T) bool) {
		if n <= 0 {
			return
		}
		count := 0
		for val := range seq {
			if !yield(val) {
				return
			}
			count++
			if count == n {
				return
			}
		}
	}
}
