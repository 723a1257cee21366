package internal

import (
	"iter"
)

// IterSeq2Concat chains key/value sequences into one, yielding the
// sequences in argument order until the consumer stops.
func IterSeq2Concat[K any, V any](seqs ...iter.Seq2[K, V]) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, seq := range seqs {
			for k, v := range seq {
				if !yield(k, v) {
					return
				}
			}
		}
	}
}
