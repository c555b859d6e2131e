package runlog_test

import (
	"bytes"
	"slices"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sweeneyde/multimerge/record"
	"github.com/sweeneyde/multimerge/runlog"
)

type closableBuffer struct {
	bytes.Buffer
	closed bool
}

func (b *closableBuffer) Close() error {
	b.closed = true
	return nil
}

func entry(id string, sec int64, data string) record.Entry {
	return record.Entry{
		ID:        id,
		Timestamp: time.Unix(sec, 0).UTC(),
		Data:      []byte(data),
	}
}

func readSorted(t *testing.T, buf *closableBuffer) []record.Record {
	t.Helper()
	reader := runlog.NewReader(bytes.NewReader(buf.Bytes()))
	it, err := reader.All()
	require.NoError(t, err)
	defer it.Stop()

	var got []record.Record
	for rec := range it.All() {
		got = append(got, rec)
	}
	require.NoError(t, it.Err())
	return got
}

func TestNewWriterInvalidMaxRecords(t *testing.T) {
	_, err := runlog.NewWriter(&closableBuffer{}, 0)
	assert.ErrorIs(t, err, runlog.ErrInvalidMaxRecords)
}

func TestWriterClose(t *testing.T) {
	buf := &closableBuffer{}
	w, err := runlog.NewWriter(buf, 10)
	require.NoError(t, err)

	require.NoError(t, w.Close())
	assert.True(t, buf.closed)

	assert.ErrorIs(t, w.Write(entry("a", 1, "x")), runlog.ErrClosed)
	assert.ErrorIs(t, w.Close(), runlog.ErrClosed)
}

func TestRoundTrip(t *testing.T) {
	buf := &closableBuffer{}
	w, err := runlog.NewWriter(buf, 2) // force several segment rotations
	require.NoError(t, err)

	written := []record.Record{
		entry("delta", 4, "d"),
		entry("alpha", 1, "a"),
		entry("echo", 5, "e"),
		entry("charlie", 3, "c"),
		entry("bravo", 2, "b"),
	}
	for _, rec := range written {
		require.NoError(t, w.Write(rec))
	}
	require.NoError(t, w.Close())

	got := readSorted(t, buf)
	require.Len(t, got, len(written))

	want := slices.Clone(written)
	slices.SortFunc(want, record.Compare)
	assert.Equal(t, want, got)
}

func TestSingleSegment(t *testing.T) {
	buf := &closableBuffer{}
	w, err := runlog.NewWriter(buf, 100)
	require.NoError(t, err)

	require.NoError(t, w.Write(entry("b", 2, "2")))
	require.NoError(t, w.Write(entry("a", 1, "1")))
	require.NoError(t, w.Close())

	got := readSorted(t, buf)
	require.Len(t, got, 2)
	assert.Equal(t, "a", got[0].GetID())
	assert.Equal(t, "b", got[1].GetID())
}

func TestDuplicateReplacedWithinSegment(t *testing.T) {
	buf := &closableBuffer{}
	w, err := runlog.NewWriter(buf, 100)
	require.NoError(t, err)

	require.NoError(t, w.Write(entry("a", 1, "old")))
	require.NoError(t, w.Write(entry("a", 1, "new")))
	require.NoError(t, w.Close())

	got := readSorted(t, buf)
	require.Len(t, got, 1)
	assert.Equal(t, []byte("new"), got[0].GetData())
}

func TestEmptyLog(t *testing.T) {
	buf := &closableBuffer{}
	w, err := runlog.NewWriter(buf, 10)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	got := readSorted(t, buf)
	assert.Empty(t, got)
}
