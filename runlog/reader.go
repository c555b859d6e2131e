package runlog

import (
	"errors"
	"io"
	"iter"

	"github.com/sweeneyde/multimerge"
	"github.com/sweeneyde/multimerge/record"
	"github.com/sweeneyde/multimerge/runio"
)

// Reader reads a segmented run log back as one sorted stream. Each
// segment is sorted on disk; the reader merges the segments lazily
// with a tournament tree, so restoring a log never buffers more than
// one record per segment.
type Reader struct {
	r        io.ReaderAt
	segments []segment
}

type segment struct {
	offset int64
	length int64
}

func NewReader(r io.ReaderAt) *Reader {
	return &Reader{
		r: r,
	}
}

// All returns a merged iterator over every record in the log. Records
// come out sorted by record.Compare; a read failure in any segment
// surfaces through the iterator's Err.
func (r *Reader) All() (*multimerge.Iterator[record.Record], error) {
	if err := r.readExistingSegments(); err != nil {
		return nil, err
	}

	seqs := make([]iter.Seq2[record.Record, error], 0, len(r.segments))
	for _, seg := range r.segments {
		sr := io.NewSectionReader(r.r, seg.offset+runio.Int64Size, seg.length-runio.Int64Size)
		seqs = append(seqs, runio.Seq(sr))
	}

	return multimerge.New(seqs, multimerge.Lift(record.Compare), false), nil
}

func (r *Reader) readExistingSegments() error {
	r.segments = r.segments[:0]
	offset := int64(0)
	for {
		header := io.NewSectionReader(r.r, offset, runio.Int64Size)
		length, err := runio.NewBinaryReader(header).ReadInt64()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return err
		}
		r.segments = append(r.segments, segment{offset: offset, length: length})
		offset += length
	}
	return nil
}
