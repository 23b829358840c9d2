package loaders

import "fmt"

// InvalidInputError reports a version request that failed validation. It is
// raised before any network call.
type InvalidInputError struct {
	Input  string
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid version %q: %s", e.Input, e.Reason)
}

// VersionNotFoundError reports an index that was fetched successfully but
// holds no entry for the requested version. No fuzzy fallback is attempted.
type VersionNotFoundError struct {
	Loader  Kind
	Version string
}

func (e *VersionNotFoundError) Error() string {
	return fmt.Sprintf("%s has no version %q", e.Loader, e.Version)
}

// AcquisitionError reports an installer run that finished but did not leave
// the expected artifact behind.
type AcquisitionError struct {
	Op  string
	Err error
}

func (e *AcquisitionError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Err.Error())
}

func (e *AcquisitionError) Unwrap() error { return e.Err }
