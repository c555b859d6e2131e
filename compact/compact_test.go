package compact_test

import (
	"bytes"
	"errors"
	"iter"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sweeneyde/multimerge"
	"github.com/sweeneyde/multimerge/compact"
	"github.com/sweeneyde/multimerge/record"
	"github.com/sweeneyde/multimerge/runio"
)

func run(recs ...record.Record) iter.Seq2[record.Record, error] {
	return func(yield func(record.Record, error) bool) {
		for _, rec := range recs {
			if !yield(rec, nil) {
				return
			}
		}
	}
}

func entry(id string, sec int64, data string) record.Entry {
	return record.Entry{
		ID:        id,
		Timestamp: time.Unix(sec, 0).UTC(),
		Data:      []byte(data),
	}
}

func TestCompact(t *testing.T) {
	buf := new(bytes.Buffer)

	err := compact.Compact(buf,
		run(
			entry("a", 1, "a-v1"),
			entry("b", 5, "b-v2"),
		),
		run(
			entry("a", 3, "a-v2"),
			entry("b", 2, "b-v1"),
			entry("c", 4, "c-v1"),
		),
	)
	require.NoError(t, err)

	got, err := runio.ReadAll(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)

	require.Len(t, got, 3)
	assert.Equal(t, "a", got[0].GetID())
	assert.Equal(t, []byte("a-v2"), got[0].GetData())
	assert.Equal(t, "b", got[1].GetID())
	assert.Equal(t, []byte("b-v2"), got[1].GetData())
	assert.Equal(t, "c", got[2].GetID())
	assert.Equal(t, []byte("c-v1"), got[2].GetData())
}

func TestCompactNoSequences(t *testing.T) {
	buf := new(bytes.Buffer)
	require.NoError(t, compact.Compact(buf))
	assert.Zero(t, buf.Len())
}

func TestCompactEmptySequences(t *testing.T) {
	buf := new(bytes.Buffer)
	require.NoError(t, compact.Compact(buf, run(), run()))
	assert.Zero(t, buf.Len())
}

func TestCompactSingleRun(t *testing.T) {
	buf := new(bytes.Buffer)

	err := compact.Compact(buf, run(
		entry("a", 1, "1"),
		entry("b", 2, "2"),
	))
	require.NoError(t, err)

	got, err := runio.ReadAll(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "a", got[0].GetID())
	assert.Equal(t, "b", got[1].GetID())
}

func TestCompactPropagatesSourceError(t *testing.T) {
	errBroken := errors.New("broken run")
	failing := func(yield func(record.Record, error) bool) {
		if !yield(entry("a", 1, "ok"), nil) {
			return
		}
		yield(nil, errBroken)
	}

	err := compact.Compact(new(bytes.Buffer),
		run(entry("b", 2, "fine")),
		failing,
	)
	require.Error(t, err)
	assert.ErrorIs(t, err, errBroken)

	var srcErr *multimerge.SourceError
	assert.ErrorAs(t, err, &srcErr)
}
