// Package runio implements the binary record format used by sorted
// runs. Each record is framed with magic bytes and length-prefixed
// fields so readers can validate and parse runs reliably.
//
// Basic usage:
//
//	rec := record.Entry{
//	    ID:        "user-42",
//	    Timestamp: time.Now(),
//	    Data:      []byte("payload"),
//	}
//
//	var buf bytes.Buffer
//	if _, err := runio.Write(&buf, rec); err != nil {
//	    log.Fatal(err)
//	}
//
//	for rec, err := range runio.Seq(&buf) {
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Println(rec.GetID())
//	}
//
// Seq yields records together with any read error, which lets a merge
// pass over several runs propagate a corrupt run instead of silently
// ending early.
package runio
