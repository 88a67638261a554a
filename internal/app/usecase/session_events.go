package usecase

import (
	"github.com/hostelhub/notify-gateway/internal/infra/wa"
)

type SessionEventsUsecase struct {
	wa *wa.Manager
}

func NewSessionEventsUsecase(waManager *wa.Manager) *SessionEventsUsecase {
	return &SessionEventsUsecase{wa: waManager}
}

// Subscribe attaches a push client to a session. The first event carries the
// current snapshot so a client connecting mid-session immediately sees the
// latest state; deltas follow as lifecycle events fire. There is no history
// replay.
func (u *SessionEventsUsecase) Subscribe(session string) (wa.RelayEvent, <-chan wa.RelayEvent, func()) {
	ch, cancel := u.wa.Hub().Subscribe(session)

	snap := u.wa.Snapshot(session)
	initial := wa.RelayEvent{Name: initialEventName(snap.Status), Snapshot: snap}

	return initial, ch, cancel
}

func initialEventName(status wa.Status) string {
	switch status {
	case wa.StatusConnected:
		return "ready"
	case wa.StatusQRPending:
		return "qr"
	default:
		return "status"
	}
}
