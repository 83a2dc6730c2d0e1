// Package session holds the per-login dashboard state and the credential
// gate in front of it.
package session

import (
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// ErrInvalidCredentials indicates that the submitted username/password pair
// was rejected.
var ErrInvalidCredentials = errors.New("invalid credentials")

const (
	defaultIdleTTL  = 24 * time.Hour
	fallbackRegion  = "KR"
	defaultMaxCount = 20
)

// CountOptions enumerates the result counts offered in the control bar.
var CountOptions = []int{10, 20, 30, 40, 50}

// State is the session-scoped dashboard state. Handlers work on snapshots;
// mutations go through Manager.Update as explicit transitions.
type State struct {
	Authenticated bool
	RegionSel     string
	RegionCustom  string
	MaxCount      int
	Flash         string
}

// SelectRegion applies a preset choice, overwriting the custom override so
// both controls show the same code.
func (s *State) SelectRegion(code string) {
	code = strings.ToUpper(strings.TrimSpace(code))
	s.RegionSel = code
	s.RegionCustom = code
}

// SetCustomRegion normalizes the override to uppercase.
func (s *State) SetCustomRegion(code string) {
	s.RegionCustom = strings.ToUpper(strings.TrimSpace(code))
}

// SetMaxCount accepts only the offered count options; anything else falls
// back to the default.
func (s *State) SetMaxCount(n int) {
	for _, opt := range CountOptions {
		if n == opt {
			s.MaxCount = n
			return
		}
	}
	s.MaxCount = defaultMaxCount
}

// EffectiveRegion resolves the region used for fetching: the custom
// override when set, else the preset, else the fixed fallback.
func (s State) EffectiveRegion() string {
	if s.RegionCustom != "" {
		return s.RegionCustom
	}
	if s.RegionSel != "" {
		return s.RegionSel
	}
	return fallbackRegion
}

// Config captures the expected credentials and session defaults.
type Config struct {
	Username      string
	Password      string
	DefaultRegion string
	IdleTTL       time.Duration
}

type record struct {
	state     State
	expiresAt time.Time
}

// Manager validates login credentials and tracks live sessions.
type Manager struct {
	username      string
	password      string
	defaultRegion string
	idleTTL       time.Duration
	now           func() time.Time

	mu       sync.Mutex
	sessions map[string]record
}

// NewManager returns a Manager initialised with the supplied config.
func NewManager(cfg Config) *Manager {
	ttl := cfg.IdleTTL
	if ttl <= 0 {
		ttl = defaultIdleTTL
	}
	region := strings.ToUpper(strings.TrimSpace(cfg.DefaultRegion))
	if region == "" {
		region = fallbackRegion
	}
	return &Manager{
		username:      strings.TrimSpace(cfg.Username),
		password:      cfg.Password,
		defaultRegion: region,
		idleTTL:       ttl,
		now:           time.Now,
		sessions:      make(map[string]record),
	}
}

// Login validates the submitted pair against the configured credentials
// and, on an exact match, opens a fresh session. While either configured
// credential is empty no login can succeed.
func (m *Manager) Login(username, password string) (string, error) {
	if m.username == "" || m.password == "" {
		return "", ErrInvalidCredentials
	}
	if username != m.username || password != m.password {
		return "", ErrInvalidCredentials
	}

	id := uuid.NewString()
	m.mu.Lock()
	m.sessions[id] = record{
		state: State{
			Authenticated: true,
			RegionSel:     fallbackRegion,
			RegionCustom:  m.defaultRegion,
			MaxCount:      defaultMaxCount,
		},
		expiresAt: m.now().Add(m.idleTTL),
	}
	m.mu.Unlock()
	return id, nil
}

// Logout drops the session and everything stored in it, including any
// remembered control values.
func (m *Manager) Logout(id string) {
	m.mu.Lock()
	delete(m.sessions, id)
	m.mu.Unlock()
}

// Get returns a snapshot of the session state. ok is false for unknown or
// expired sessions, which callers treat as logged out.
func (m *Manager) Get(id string) (State, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	rec, ok := m.sessions[id]
	if !ok {
		return State{}, false
	}
	if m.now().After(rec.expiresAt) {
		delete(m.sessions, id)
		return State{}, false
	}
	return rec.state, true
}

// Update applies fn to the session state and stores the result, extending
// the idle expiry. It reports whether the session was still live.
func (m *Manager) Update(id string, fn func(*State)) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	rec, ok := m.sessions[id]
	if !ok {
		return false
	}
	if m.now().After(rec.expiresAt) {
		delete(m.sessions, id)
		return false
	}

	fn(&rec.state)
	rec.expiresAt = m.now().Add(m.idleTTL)
	m.sessions[id] = rec
	return true
}
