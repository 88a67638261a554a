package wa

import (
	"context"

	"go.mau.fi/whatsmeow/types"

	"github.com/hostelhub/notify-gateway/internal/domain/notify"
)

// SendMessage delivers one text message through a connected session. The
// state gate runs before any I/O: a session that is not connected fails with
// notify.ErrNotConnected immediately. number must already be normalized
// (digits only); the destination becomes <number>@s.whatsapp.net.
//
// Sends on one session are serialized: concurrent callers queue and go out
// one at a time. Each send is bounded by the manager's send timeout so a
// hung round-trip cannot stall the queue.
func (m *Manager) SendMessage(ctx context.Context, sessionID, number, body string) (string, error) {
	key, err := normalizeSession(sessionID)
	if err != nil {
		return "", err
	}

	m.mu.Lock()
	s, ok := m.sessions[key]
	if !ok || s.status != StatusConnected || s.client == nil {
		m.mu.Unlock()
		return "", notify.ErrNotConnected
	}
	m.mu.Unlock()

	s.sendMu.Lock()
	defer s.sendMu.Unlock()

	// the session may have dropped while this send was queued
	m.mu.Lock()
	if s.status != StatusConnected || s.client == nil {
		m.mu.Unlock()
		return "", notify.ErrNotConnected
	}
	client := s.client
	m.mu.Unlock()

	ctx, cancel := context.WithTimeout(ctx, m.sendTimeout)
	defer cancel()

	to := types.JID{User: number, Server: types.DefaultUserServer}
	id, err := client.SendText(ctx, to, body)
	if err != nil {
		return "", &notify.SendFailedError{Number: number, Err: err}
	}

	return id, nil
}
