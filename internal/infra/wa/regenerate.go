package wa

import "context"

// Regenerate tears the current client down and starts a new one, forcing a
// fresh QR cycle. Teardown is best-effort: logout and disconnect errors are
// logged, never propagated. A concurrent Regenerate on the same session is a
// no-op, so overlapping calls leave exactly one live client.
//
// An in-flight send against the old client loses its state gate the moment
// the handle is released and fails with ErrNotConnected; that failure is
// reported to the caller rather than guarded against.
func (m *Manager) Regenerate(ctx context.Context, sessionID string) error {
	key, err := normalizeSession(sessionID)
	if err != nil {
		return err
	}

	m.mu.Lock()
	s, ok := m.sessions[key]
	if !ok {
		m.mu.Unlock()
		return m.Start(ctx, key)
	}
	if s.regenerating {
		m.mu.Unlock()
		return nil
	}
	s.regenerating = true
	client := s.client
	s.client = nil
	s.gen++
	s.status = StatusDisconnected
	s.qr = ""
	snap := Snapshot{Session: s.key, Status: s.status}
	m.mu.Unlock()

	defer func() {
		m.mu.Lock()
		s.regenerating = false
		m.mu.Unlock()
	}()

	m.hub.Publish(RelayEvent{Name: "disconnected", Snapshot: snap, Detail: "regenerate requested"})

	if client != nil {
		if !client.NeedsPairing() {
			// unlink so the device store yields a fresh QR, not a re-login
			if err := client.Logout(ctx); err != nil {
				m.log.Warnf("regenerate %s: logout: %v", key, err)
			}
		}
		client.Disconnect()
	}

	return m.Start(ctx, key)
}
