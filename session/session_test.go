package session

import (
	"testing"
	"time"

	"goldentouch-backend/models"

	"golang.org/x/crypto/bcrypt"
)

type fakeDirectory []models.Client

func (d fakeDirectory) ListClients() ([]models.Client, error) {
	return d, nil
}

func testConfig(t *testing.T) Config {
	t.Helper()

	adminHash, err := bcrypt.GenerateFromPassword([]byte("301985"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash admin secret: %v", err)
	}
	sharedHash, err := bcrypt.GenerateFromPassword([]byte("123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash shared secret: %v", err)
	}
	return Config{
		AdminName:        "Erides Souza",
		AdminEmail:       "erides.souza@goldentouch.com",
		AdminSecretHash:  adminHash,
		SharedSecretHash: sharedHash,
		StartupGrace:     5 * time.Millisecond,
	}
}

func testDirectory() fakeDirectory {
	return fakeDirectory{
		{ID: 1, Name: "Ana Clara", Email: "ana.clara@email.com"},
		{ID: 2, Name: "Beatriz Costa", Email: "beatriz.costa@email.com"},
	}
}

func TestStartupSettlesOnGuest(t *testing.T) {
	s := New(testConfig(t), testDirectory())

	if got := s.State(); got != StateLoading {
		t.Fatalf("expected loading at startup, got %s", got)
	}
	deadline := time.Now().Add(time.Second)
	for s.State() == StateLoading {
		if time.Now().After(deadline) {
			t.Fatal("session never left loading")
		}
		time.Sleep(2 * time.Millisecond)
	}
	if got := s.State(); got != StateGuest {
		t.Fatalf("expected guest after startup grace, got %s", got)
	}
}

func TestAdminLogin(t *testing.T) {
	s := New(testConfig(t), testDirectory())

	identity, ok := s.Login("Erides Souza", "301985")
	if !ok {
		t.Fatal("expected admin login to succeed")
	}
	if !identity.Admin || identity.Name != "Admin" {
		t.Fatalf("unexpected admin identity: %+v", identity)
	}
	if got := s.State(); got != StateAdmin {
		t.Fatalf("expected admin state, got %s", got)
	}
}

func TestAdminLoginWrongSecretLeavesStateUnchanged(t *testing.T) {
	s := New(testConfig(t), testDirectory())

	if _, ok := s.Login("Erides Souza", "wrong"); ok {
		t.Fatal("expected login to fail")
	}
	if got := s.State(); got != StateLoading && got != StateGuest {
		t.Fatalf("failed login must not change state, got %s", got)
	}
	if _, ok := s.Current(); ok {
		t.Fatal("failed login must not set an identity")
	}
}

func TestClientLoginByFirstNameCaseInsensitive(t *testing.T) {
	s := New(testConfig(t), testDirectory())

	identity, ok := s.Login("ana", "123")
	if !ok {
		t.Fatal("expected client login to succeed")
	}
	if identity.ClientID != 1 || identity.Name != "Ana Clara" || identity.Admin {
		t.Fatalf("unexpected identity: %+v", identity)
	}
	if got := s.State(); got != StateUser {
		t.Fatalf("expected user state, got %s", got)
	}
}

func TestClientLoginUnknownNameFails(t *testing.T) {
	s := New(testConfig(t), testDirectory())

	if _, ok := s.Login("zelia", "123"); ok {
		t.Fatal("shared secret alone must not log in an unknown name")
	}
}

func TestSharedSecretWrongFails(t *testing.T) {
	s := New(testConfig(t), testDirectory())

	if _, ok := s.Login("ana", "456"); ok {
		t.Fatal("expected wrong shared secret to fail")
	}
}

func TestLogoutIsIdempotent(t *testing.T) {
	s := New(testConfig(t), testDirectory())

	if _, ok := s.Login("ana", "123"); !ok {
		t.Fatal("login should succeed")
	}
	s.Logout()
	if got := s.State(); got != StateGuest {
		t.Fatalf("expected guest after logout, got %s", got)
	}
	s.Logout()
	if got := s.State(); got != StateGuest {
		t.Fatalf("second logout should keep guest, got %s", got)
	}
	if _, ok := s.Current(); ok {
		t.Fatal("no identity expected after logout")
	}
}

func TestRepeatedFailuresThrottleLogins(t *testing.T) {
	cfg := testConfig(t)
	cfg.MaxAttempts = 2
	cfg.AttemptWindow = time.Hour
	s := New(cfg, testDirectory())

	for i := 0; i < 2; i++ {
		if _, ok := s.Login("ana", "wrong"); ok {
			t.Fatal("expected failure")
		}
	}
	// Even the right secret is rejected while throttled.
	if _, ok := s.Login("ana", "123"); ok {
		t.Fatal("expected throttled login to fail")
	}
}
