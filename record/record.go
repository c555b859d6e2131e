// Package record defines the entries stored in sorted runs: an ID, a
// timestamp acting as the entry's version, and an opaque payload.
// Entries order by ID first and timestamp second, so different versions
// of the same ID sit next to each other in a sorted stream.
package record

import (
	"cmp"
	"time"
)

// Record is one entry in a sorted run.
type Record interface {
	GetID() string
	GetTimestamp() time.Time
	GetData() []byte
}

// Entry is the plain value implementation of Record.
type Entry struct {
	ID        string
	Timestamp time.Time
	Data      []byte
}

func (e Entry) GetID() string           { return e.ID }
func (e Entry) GetTimestamp() time.Time { return e.Timestamp }
func (e Entry) GetData() []byte         { return e.Data }

// Compare orders records by ID, breaking ties by timestamp.
func Compare(a, b Record) int {
	if c := cmp.Compare(a.GetID(), b.GetID()); c != 0 {
		return c
	}
	return a.GetTimestamp().Compare(b.GetTimestamp())
}

// Less reports whether a sorts before b.
func Less(a, b Record) bool {
	return Compare(a, b) < 0
}
