// Package session tracks the current identity of the single interactive
// session: loading at startup, then guest, user or admin after a login.
package session

import (
	"log/slog"
	"strings"
	"sync"
	"time"

	"goldentouch-backend/models"

	"golang.org/x/crypto/bcrypt"
)

type State string

const (
	StateLoading State = "loading"
	StateGuest   State = "guest"
	StateUser    State = "user"
	StateAdmin   State = "admin"
)

const (
	defaultStartupGrace  = 500 * time.Millisecond
	defaultMaxAttempts   = 5
	defaultAttemptWindow = 15 * time.Minute
)

// Identity is the logged-in principal: either the synthetic admin or one of
// the salon's clients.
type Identity struct {
	ClientID uint   `json:"clientId,omitempty"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Admin    bool   `json:"admin"`
}

// ClientDirectory is the read access a session needs to resolve client
// logins. *store.Store satisfies it.
type ClientDirectory interface {
	ListClients() ([]models.Client, error)
}

// Config carries the credential material. Secrets are bcrypt hashes only;
// plaintext never reaches the session.
type Config struct {
	AdminName        string
	AdminEmail       string
	AdminSecretHash  []byte
	SharedSecretHash []byte

	// StartupGrace is how long the session reports loading before falling
	// back to guest when nothing restores it.
	StartupGrace time.Duration

	// MaxAttempts failures per identifier within AttemptWindow lock further
	// logins for that identifier until the window slides past.
	MaxAttempts   int
	AttemptWindow time.Duration
}

// HashSecret bcrypt-hashes a configured secret at startup.
func HashSecret(secret string) ([]byte, error) {
	return bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
}

type Session struct {
	cfg     Config
	clients ClientDirectory
	limiter *attemptLimiter

	mu       sync.Mutex
	state    State
	identity Identity
}

// New starts a session in the loading state. After the startup grace with
// no login it settles on guest; there is no persisted session to restore.
func New(cfg Config, clients ClientDirectory) *Session {
	if cfg.StartupGrace <= 0 {
		cfg.StartupGrace = defaultStartupGrace
	}
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = defaultMaxAttempts
	}
	if cfg.AttemptWindow <= 0 {
		cfg.AttemptWindow = defaultAttemptWindow
	}
	s := &Session{
		cfg:     cfg,
		clients: clients,
		limiter: newAttemptLimiter(),
		state:   StateLoading,
	}
	time.AfterFunc(cfg.StartupGrace, s.settleGuest)
	return s
}

func (s *Session) settleGuest() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == StateLoading {
		s.state = StateGuest
	}
}

// Login validates the identifier and secret. The admin name with the admin
// secret yields the admin identity; the shared client secret with an
// identifier matching a client's first name (case-insensitive) yields that
// client. Any other combination fails and leaves state and identity
// untouched.
func (s *Session) Login(identifier, secret string) (Identity, bool) {
	identifier = strings.TrimSpace(identifier)
	key := strings.ToLower(identifier)
	now := time.Now()

	if s.limiter.tooManyRecent(key, now, s.cfg.MaxAttempts, s.cfg.AttemptWindow) {
		slog.Warn("login throttled", "identifier", identifier)
		return Identity{}, false
	}

	if identifier == s.cfg.AdminName &&
		bcrypt.CompareHashAndPassword(s.cfg.AdminSecretHash, []byte(secret)) == nil {
		identity := Identity{Name: "Admin", Email: s.cfg.AdminEmail, Admin: true}
		s.setIdentity(StateAdmin, identity)
		s.limiter.reset(key)
		slog.Info("admin login", "identifier", identifier)
		return identity, true
	}

	if bcrypt.CompareHashAndPassword(s.cfg.SharedSecretHash, []byte(secret)) == nil {
		if client, ok := s.findClient(identifier); ok {
			identity := Identity{ClientID: client.ID, Name: client.Name, Email: client.Email}
			s.setIdentity(StateUser, identity)
			s.limiter.reset(key)
			slog.Info("client login", "client", client.Name)
			return identity, true
		}
	}

	s.limiter.addFailure(key, now, s.cfg.AttemptWindow)
	slog.Warn("login failed", "identifier", identifier)
	return Identity{}, false
}

// findClient matches the identifier against each client's first name
// token.
func (s *Session) findClient(identifier string) (models.Client, bool) {
	clients, err := s.clients.ListClients()
	if err != nil {
		slog.Error("login client lookup failed", "error", err)
		return models.Client{}, false
	}
	for _, c := range clients {
		fields := strings.Fields(c.Name)
		if len(fields) > 0 && strings.EqualFold(fields[0], identifier) {
			return c, true
		}
	}
	return models.Client{}, false
}

func (s *Session) setIdentity(state State, identity Identity) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = state
	s.identity = identity
}

// Logout clears the identity and returns to guest. Safe to call in any
// state.
func (s *Session) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.identity.Name != "" {
		slog.Info("logout", "name", s.identity.Name)
	}
	s.state = StateGuest
	s.identity = Identity{}
}

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Current returns the logged-in identity, if any.
func (s *Session) Current() (Identity, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.identity, s.state == StateUser || s.state == StateAdmin
}
