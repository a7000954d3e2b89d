package port

import "errors"

var (
	// ErrInterpreterTimeout means the interpreter did not answer in time.
	ErrInterpreterTimeout = errors.New("interpreter timed out")
	// ErrPostResolution means the post identifier could not be obtained.
	ErrPostResolution = errors.New("post resolution failed")
	// ErrInvalidPostID means the resolved post id is not "<numeric>_<numeric>".
	ErrInvalidPostID = errors.New("invalid post id")
	// ErrMissingCallToAction means the target post has no call-to-action button.
	ErrMissingCallToAction = errors.New("post has no call-to-action button")
	// ErrPlatformRejected wraps any other refusal of a creation step.
	ErrPlatformRejected = errors.New("platform rejected request")
	// ErrNoGeography means a draft reached the compiler without a geography.
	ErrNoGeography = errors.New("draft has no geography")
	// ErrDraftNotFound is returned by draft lookups.
	ErrDraftNotFound = errors.New("draft not found")
	// ErrRunNotFound is returned for unknown publish runs.
	ErrRunNotFound = errors.New("publish run not found")
	// ErrConversationBusy means another turn of the conversation is in flight.
	ErrConversationBusy = errors.New("conversation is busy")
)

// InsufficientBalanceError is a billing precondition failure reported by the
// interpreter. Its message already carries the remediation and is shown
// verbatim.
type InsufficientBalanceError struct {
	Message string
}

func (e *InsufficientBalanceError) Error() string {
	return e.Message
}
