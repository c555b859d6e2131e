package multimerge

// SourceError reports an input sequence failing during a pull.
type SourceError struct{ Err error }

func (e *SourceError) Error() string { return "multimerge: source failed: " + e.Err.Error() }
func (e *SourceError) Unwrap() error { return e.Err }

// KeyError reports the key function failing on an item.
type KeyError struct{ Err error }

func (e *KeyError) Error() string { return "multimerge: key function failed: " + e.Err.Error() }
func (e *KeyError) Unwrap() error { return e.Err }

// CompareError reports the comparison function failing on a pair of
// keys.
type CompareError struct{ Err error }

func (e *CompareError) Error() string { return "multimerge: comparison failed: " + e.Err.Error() }
func (e *CompareError) Unwrap() error { return e.Err }
