package notify

import (
	"errors"
	"fmt"
)

var (
	// ErrNotConnected is returned when a send is attempted while the
	// session is not in the connected state. The send path must not touch
	// the network in that case.
	ErrNotConnected = errors.New("whatsapp session is not connected")

	// ErrNoContact marks a recipient with no usable phone number. It never
	// reaches the session layer; the orchestrator counts it as skipped.
	ErrNoContact = errors.New("recipient has no contact number")

	// ErrAuthFailure indicates the session failed to authenticate and was
	// forced back to disconnected. Recovery requires re-pairing via QR.
	ErrAuthFailure = errors.New("whatsapp session authentication failed")
)

// SendFailedError wraps a rejection from the underlying library, keeping the
// normalized destination and the original cause for logging.
type SendFailedError struct {
	Number string
	Err    error
}

func (e *SendFailedError) Error() string {
	return fmt.Sprintf("send to %s failed: %v", e.Number, e.Err)
}

func (e *SendFailedError) Unwrap() error {
	return e.Err
}
