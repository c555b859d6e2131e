// Package compact implements streaming compaction of multiple sorted
// record runs into one deduplicated run. It merges the inputs with a
// tournament tree and keeps, for each record ID, only the version with
// the latest timestamp.
//
// The compaction process:
//   - Merges multiple sorted sequences into a single sorted sequence
//   - Deduplicates records with the same ID, keeping the latest version
//   - Writes the result as a runio-framed run
//
// Memory stays constant regardless of input size: one pending record
// per input plus the record currently being considered.
//
// Basic usage:
//
//	file, err := os.Create("compacted.run")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer file.Close()
//
//	err = compact.Compact(file, runio.Seq(run1), runio.Seq(run2))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// This is the standard merge pass of log-structured storage: several
// sorted runs produced at different times collapse into one, with stale
// versions of each record dropped along the way.
package compact
