package runlog

import (
	"errors"
	"io"
	"sync"
	"sync/atomic"

	"github.com/google/btree"

	"github.com/sweeneyde/multimerge/record"
	"github.com/sweeneyde/multimerge/runio"
)

var (
	ErrInvalidMaxRecords = errors.New("runlog: maxRecords must be greater than 0")
	ErrClosed            = errors.New("runlog: log is closed")
)

// Writer appends records to a segmented run log. Records are buffered
// in sorted order per segment and flushed as one sorted run when the
// segment fills up or the writer closes.
type Writer struct {
	writer        runio.BinaryWriter
	currentOffset atomic.Int64
	segment       *btree.BTreeG[record.Record]
	maxRecords    int
	closed        atomic.Bool
	wc            io.WriteCloser
	mu            sync.Mutex
}

func NewWriter(wc io.WriteCloser, maxRecords int) (*Writer, error) {
	if maxRecords <= 0 {
		return nil, ErrInvalidMaxRecords
	}

	w := &Writer{
		writer:     runio.NewBinaryWriter(wc),
		maxRecords: maxRecords,
		wc:         wc,
	}

	w.newSegment()

	return w, nil
}

func (w *Writer) newSegment() {
	w.segment = btree.NewG[record.Record](2, record.Less)
}

// Write buffers one record into the current segment. A record equal to
// a buffered one under record.Compare replaces it.
func (w *Writer) Write(rec record.Record) error {
	if w.closed.Load() {
		return ErrClosed
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	w.segment.ReplaceOrInsert(rec)

	if w.segment.Len() >= w.maxRecords {
		if err := w.flushSegment(w.segment); err != nil {
			return err
		}
		w.newSegment()
	}

	return nil
}

func (w *Writer) flushSegment(s *btree.BTreeG[record.Record]) error {
	totalSize := runio.Int64Size

	s.Ascend(func(rec record.Record) bool {
		totalSize += runio.Size(rec)
		return true
	})

	if _, err := w.writer.WriteInt64(totalSize); err != nil {
		return err
	}

	var writeErr error
	s.Ascend(func(rec record.Record) bool {
		if _, err := runio.Write(w.wc, rec); err != nil {
			writeErr = err
			return false
		}
		return true
	})

	if writeErr != nil {
		return writeErr
	}

	w.currentOffset.Add(totalSize)
	return nil
}

// Close flushes the current segment and closes the underlying writer.
func (w *Writer) Close() error {
	if w.closed.Swap(true) {
		return ErrClosed
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.segment.Len() > 0 {
		if err := w.flushSegment(w.segment); err != nil {
			return err
		}
	}

	return w.wc.Close()
}
