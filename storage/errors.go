package storage

import "fmt"

// FatalError marks the documented gaps in this revision of the B+-tree:
// searching through an internal root, splitting a non-root leaf, and
// starting a scan from a root that is not a leaf. Other unrecoverable
// conditions (a corrupt file length, a page request out of the pager's
// bounds, flushing a page that was never loaded) surface as plain errors
// from the pager package; the REPL treats any error it cannot classify
// the same way it treats a FatalError: prints the message and
// terminates the process.
type FatalError struct {
	Message string
}

func (e *FatalError) Error() string { return e.Message }

func fatalf(format string, args ...any) error {
	return &FatalError{Message: fmt.Sprintf(format, args...)}
}

// DuplicateKeyError is returned by InsertRow when the key already exists.
type DuplicateKeyError struct {
	Key uint32
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("storage: duplicate key %d", e.Key)
}

