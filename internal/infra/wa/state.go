package wa

// Status is the lifecycle state of one WhatsApp session. Transitions are
// driven only by lifecycle events flowing through Manager.applyEvent; HTTP
// handlers read snapshots and never mutate.
type Status string

const (
	StatusDisconnected Status = "disconnected"
	StatusConnecting   Status = "connecting"
	StatusQRPending    Status = "qr_pending"
	StatusConnected    Status = "connected"
)

// Snapshot is a read-only copy of a session's state cell. QR is non-empty
// only while Status == StatusQRPending.
type Snapshot struct {
	Session string `json:"session"`
	Status  Status `json:"status"`
	QR      string `json:"qr,omitempty"`
}

type eventKind int

const (
	eventQRCode eventKind = iota
	eventPaired
	eventConnected
	eventAuthFailure
	eventDisconnected
)

// lifecycleEvent is the tagged variant consumed by the single dispatcher.
// Whatsmeow callbacks and the QR watcher both reduce to this type so state
// mutation lives in exactly one place.
type lifecycleEvent struct {
	kind   eventKind
	code   string // QR token, eventQRCode only
	reason string
}

// relayName maps a lifecycle event to the name pushed over the event stream.
func (e lifecycleEvent) relayName() string {
	switch e.kind {
	case eventQRCode:
		return "qr"
	case eventPaired:
		return "authenticated"
	case eventConnected:
		return "ready"
	case eventAuthFailure:
		return "auth_failure"
	default:
		return "disconnected"
	}
}
