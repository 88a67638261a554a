package wa

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"sync"
	"time"

	"go.mau.fi/whatsmeow"
	"go.mau.fi/whatsmeow/store"
	"go.mau.fi/whatsmeow/store/sqlstore"
	walog "go.mau.fi/whatsmeow/util/log"
)

// Manager owns every WhatsApp session in the process. A session is one
// lifetime of an automation client, from Start until a disconnect releases
// the handle. All state mutation funnels through applyEvent; handlers only
// read snapshots.
type Manager struct {
	dbBasePath  string
	log         walog.Logger
	sendTimeout time.Duration
	hub         *Hub

	// newClient is swapped for a fake in tests.
	newClient func(device *store.Device, logger walog.Logger) waClient

	mu         sync.Mutex
	sessions   map[string]*session
	containers map[string]*sqlstore.Container
}

type session struct {
	key    string
	client waClient
	status Status
	qr     string
	// sendMu serializes outbound messages; the automation session is
	// single-threaded, so concurrent senders queue rather than interleave.
	sendMu sync.Mutex
	// gen identifies the current client generation. Events and QR codes
	// carry the gen they were issued under; anything stale is dropped.
	gen          uint64
	regenerating bool
}

func NewManager(dbBasePath string, logger walog.Logger, sendTimeout time.Duration) *Manager {
	if sendTimeout <= 0 {
		sendTimeout = 30 * time.Second
	}
	return &Manager{
		dbBasePath:  dbBasePath,
		log:         logger,
		sendTimeout: sendTimeout,
		hub:         NewHub(),
		newClient:   newMeowClient,
		sessions:    make(map[string]*session),
		containers:  make(map[string]*sqlstore.Container),
	}
}

// Hub exposes the relay hub to the push transport.
func (m *Manager) Hub() *Hub {
	return m.hub
}

var sessionKeyRe = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

func normalizeSession(session string) (string, error) {
	if session == "" {
		return "", fmt.Errorf("session is required")
	}
	if !sessionKeyRe.MatchString(session) {
		return "", fmt.Errorf("invalid session: use letters, numbers, dash, underscore")
	}
	return session, nil
}

// Start idempotently brings a session up. With a live client it is a no-op;
// otherwise it loads (or creates) the device credentials, builds a fresh
// client, wires the event handler and QR watcher, and connects. The session
// reaches connected or qr_pending through lifecycle events, not through the
// return value.
func (m *Manager) Start(ctx context.Context, sessionID string) error {
	key, err := normalizeSession(sessionID)
	if err != nil {
		return err
	}

	m.mu.Lock()
	s, ok := m.sessions[key]
	if !ok {
		s = &session{key: key, status: StatusDisconnected}
		m.sessions[key] = s
	}
	if s.client != nil {
		m.mu.Unlock()
		return nil
	}
	container, err := m.containerLocked(key)
	if err != nil {
		m.mu.Unlock()
		return fmt.Errorf("open store: %w", err)
	}
	m.mu.Unlock()

	device, err := deviceFromContainer(ctx, container)
	if err != nil {
		return fmt.Errorf("load device: %w", err)
	}

	client := m.newClient(device, m.log)

	m.mu.Lock()
	if s.client != nil {
		// lost a race with a concurrent Start; keep the winner's client
		m.mu.Unlock()
		return nil
	}
	s.gen++
	gen := s.gen
	s.client = client
	s.status = StatusConnecting
	s.qr = ""
	m.mu.Unlock()

	client.AddEventHandler(func(evt interface{}) {
		m.handleWAEvent(key, gen, evt)
	})

	if client.NeedsPairing() {
		// GetQRChannel must be requested before Connect
		qrCh, err := client.GetQRChannel(context.Background())
		if err != nil && !errors.Is(err, whatsmeow.ErrQRStoreContainsID) {
			m.applyEvent(key, gen, lifecycleEvent{kind: eventDisconnected, reason: err.Error()})
			return fmt.Errorf("qr channel: %w", err)
		}
		if qrCh != nil {
			go m.watchQR(key, gen, qrCh)
		}
	}

	if err := client.Connect(); err != nil {
		m.applyEvent(key, gen, lifecycleEvent{kind: eventDisconnected, reason: err.Error()})
		return fmt.Errorf("connect: %w", err)
	}

	return nil
}

// Snapshot returns the current state cell of a session. Unknown sessions
// read as disconnected.
func (m *Manager) Snapshot(sessionID string) Snapshot {
	key, err := normalizeSession(sessionID)
	if err != nil {
		return Snapshot{Session: sessionID, Status: StatusDisconnected}
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[key]
	if !ok {
		return Snapshot{Session: key, Status: StatusDisconnected}
	}
	return Snapshot{Session: key, Status: s.status, QR: s.qr}
}

// Shutdown disconnects every live client. Used on process exit and in tests.
func (m *Manager) Shutdown() {
	m.mu.Lock()
	var clients []waClient
	for _, s := range m.sessions {
		if s.client != nil {
			clients = append(clients, s.client)
			s.client = nil
			s.gen++
			s.status = StatusDisconnected
			s.qr = ""
		}
	}
	m.mu.Unlock()

	for _, c := range clients {
		c.Disconnect()
	}
}

func (m *Manager) containerLocked(key string) (*sqlstore.Container, error) {
	if c, ok := m.containers[key]; ok {
		return c, nil
	}

	container, err := openSQLStoreContainer(dbPathForSession(m.dbBasePath, key))
	if err != nil {
		return nil, err
	}
	m.containers[key] = container
	return container, nil
}
