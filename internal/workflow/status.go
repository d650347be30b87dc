package workflow

// ValidationStatus represents the outcome of the repository access check.
type ValidationStatus string

const (
	// ValidationIdle indicates no validation has run since the last edit.
	ValidationIdle ValidationStatus = "idle"
	// ValidationValidating indicates the access check is in flight.
	ValidationValidating ValidationStatus = "validating"
	// ValidationValid indicates the token can write to the repository.
	ValidationValid ValidationStatus = "valid"
	// ValidationInvalid indicates missing fields or a rejected check.
	ValidationInvalid ValidationStatus = "invalid"
)

// PushStatus represents the outcome of the commit upload.
type PushStatus string

const (
	// PushIdle indicates no push has been attempted.
	PushIdle PushStatus = "idle"
	// PushInProgress indicates the upload is in flight.
	PushInProgress PushStatus = "pushing"
	// PushSuccess indicates the commit landed.
	PushSuccess PushStatus = "success"
	// PushError indicates the upload failed.
	PushError PushStatus = "error"
)
