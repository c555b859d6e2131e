// Package runlog implements a segmented sorted-run log. Records are
// buffered in a B-tree per segment, so each segment reaches disk as one
// sorted run; reading the log back merges all segments into a single
// sorted stream with a tournament-tree merge.
//
// Basic usage:
//
//	file, err := os.Create("records.log")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Segments hold up to 1000 records each.
//	writer, err := runlog.NewWriter(file, 1000)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	if err := writer.Write(myRecord); err != nil {
//	    log.Fatal(err)
//	}
//
//	if err := writer.Close(); err != nil {
//	    log.Fatal(err)
//	}
//
//	// Read everything back in sorted order.
//	file, err = os.Open("records.log")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	reader := runlog.NewReader(file)
//	it, err := reader.All()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer it.Stop()
//	for rec := range it.All() {
//	    // Process rec
//	}
//
// File format:
// Each segment consists of a header holding the total segment size
// (8 bytes, the header included) followed by a series of
// variable-length runio records. Segments rotate automatically when
// they reach the configured maximum record count.
package runlog
