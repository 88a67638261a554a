package wa

import (
	"fmt"

	"go.mau.fi/whatsmeow"
	"go.mau.fi/whatsmeow/types/events"
)

// handleWAEvent reduces whatsmeow's event types to lifecycle events. Only the
// events that move the state machine are handled; everything else is noise
// for this gateway.
func (m *Manager) handleWAEvent(sessionID string, gen uint64, evt interface{}) {
	switch e := evt.(type) {
	case *events.Connected:
		m.applyEvent(sessionID, gen, lifecycleEvent{kind: eventConnected})

	case *events.PairSuccess:
		m.applyEvent(sessionID, gen, lifecycleEvent{kind: eventPaired})

	case *events.PairError:
		m.applyEvent(sessionID, gen, lifecycleEvent{kind: eventAuthFailure, reason: fmt.Sprintf("pair error: %v", e.Error)})

	case *events.LoggedOut:
		m.applyEvent(sessionID, gen, lifecycleEvent{kind: eventAuthFailure, reason: fmt.Sprintf("logged out: %v", e.Reason)})

	case *events.StreamReplaced:
		m.applyEvent(sessionID, gen, lifecycleEvent{kind: eventDisconnected, reason: "stream replaced by another device"})

	case *events.TemporaryBan:
		m.applyEvent(sessionID, gen, lifecycleEvent{kind: eventDisconnected, reason: fmt.Sprintf("temporary ban: %v", e.Code)})

	case *events.Disconnected:
		m.applyEvent(sessionID, gen, lifecycleEvent{kind: eventDisconnected})
	}
}

// watchQR consumes the pairing channel of one client generation. Every fresh
// code supersedes the previous token; success is also reported through
// events.PairSuccess, so it is applied here only to close the window where
// the UI could still see a stale qr_pending.
func (m *Manager) watchQR(sessionID string, gen uint64, ch <-chan whatsmeow.QRChannelItem) {
	for item := range ch {
		switch item.Event {
		case "code":
			m.applyEvent(sessionID, gen, lifecycleEvent{kind: eventQRCode, code: item.Code})
		case "success":
			m.applyEvent(sessionID, gen, lifecycleEvent{kind: eventPaired})
		case "timeout":
			m.applyEvent(sessionID, gen, lifecycleEvent{kind: eventDisconnected, reason: "pairing timed out"})
		case "error":
			reason := "qr channel error"
			if item.Error != nil {
				reason = item.Error.Error()
			}
			m.applyEvent(sessionID, gen, lifecycleEvent{kind: eventAuthFailure, reason: reason})
		}
	}
}

// applyEvent is the single place session state changes. The transition table:
//
//	qr code      -> qr_pending, token stored (ignored once connected)
//	paired/ready -> connected, token cleared
//	auth failure -> disconnected, token cleared, client released
//	disconnected -> disconnected, token cleared, client released
//
// Releasing the client bumps the generation so stale callbacks from the old
// client can never resurrect the session; the next Start builds a fresh one.
func (m *Manager) applyEvent(sessionID string, gen uint64, evt lifecycleEvent) {
	m.mu.Lock()
	s, ok := m.sessions[sessionID]
	if !ok || s.gen != gen {
		m.mu.Unlock()
		return
	}

	var released waClient
	switch evt.kind {
	case eventQRCode:
		if s.status == StatusConnected {
			m.mu.Unlock()
			return
		}
		s.status = StatusQRPending
		s.qr = evt.code

	case eventPaired, eventConnected:
		s.status = StatusConnected
		s.qr = ""

	case eventAuthFailure, eventDisconnected:
		s.status = StatusDisconnected
		s.qr = ""
		released = s.client
		s.client = nil
		s.gen++
	}
	snap := Snapshot{Session: s.key, Status: s.status, QR: s.qr}
	m.mu.Unlock()

	if evt.reason != "" {
		m.log.Warnf("session %s: %s (%s)", sessionID, evt.relayName(), evt.reason)
	}

	if released != nil {
		// off the event goroutine so the client can tear down freely
		go released.Disconnect()
	}

	m.hub.Publish(RelayEvent{Name: evt.relayName(), Snapshot: snap, Detail: evt.reason})
}
