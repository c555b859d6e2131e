package compact

import (
	"fmt"
	"io"
	"iter"

	"github.com/sweeneyde/multimerge"
	"github.com/sweeneyde/multimerge/record"
	"github.com/sweeneyde/multimerge/runio"
)

// Compact merges sorted record sequences into one sorted, deduplicated
// run written to w. Inputs must be sorted by record.Compare; when
// several records share an ID, only the one with the latest timestamp
// survives. With no sequences, nothing is written.
func Compact(w io.Writer, seqs ...iter.Seq2[record.Record, error]) error {
	if len(seqs) == 0 {
		return nil
	}

	it := multimerge.New(seqs, multimerge.Lift(record.Compare), false)
	defer it.Stop()

	var last record.Record
	for current := range it.All() {
		if last != nil && current.GetID() != last.GetID() {
			if _, err := runio.Write(w, last); err != nil {
				return fmt.Errorf("compact: writing record: %w", err)
			}
		}
		last = current
	}
	if err := it.Err(); err != nil {
		return fmt.Errorf("compact: merging runs: %w", err)
	}

	if last != nil {
		if _, err := runio.Write(w, last); err != nil {
			return fmt.Errorf("compact: writing record: %w", err)
		}
	}

	return nil
}
