package session

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"go-talentiq-client/internal/models"
)

// state is the durable layout: two fixed keys, a bearer token string
// and the serialized identity record. Absence of either means not
// authenticated.
type state struct {
	Token string           `json:"token,omitempty"`
	User  *models.Identity `json:"user,omitempty"`
}

// Store holds the authenticated identity and its bearer token,
// persisted to a single JSON file. All consumers observe changes
// through Subscribe. No network calls originate here.
// Mutex is required because callers may mutate from fetch goroutines.
type Store struct {
	mu       sync.Mutex
	filePath string
	token    string
	user     *models.Identity
	subs     []func(*models.Identity)
}

// UserPatch carries the only fields a profile update may touch.
// Empty fields are left as they are; role and identity id are always
// preserved.
type UserPatch struct {
	Name              string
	Email             string
	ProfilePictureURL string
}

// Open creates the state directory if needed and rehydrates any
// persisted session. A cached token that has already expired is
// discarded so a stale session never counts as authenticated.
func Open(stateDir string) (*Store, error) {
	if err := os.MkdirAll(stateDir, 0755); err != nil {
		return nil, err
	}
	s := &Store{
		filePath: filepath.Join(stateDir, "session.json"),
	}
	s.load()
	return s, nil
}

// Login persists the identity and token together and notifies all
// consumers.
func (s *Store) Login(user models.Identity, token string) {
	s.mu.Lock()
	u := user
	s.token = token
	s.user = &u
	s.save()
	s.mu.Unlock()
	s.notify()
}

// Logout clears both entries and notifies all consumers.
func (s *Store) Logout() {
	s.mu.Lock()
	s.token = ""
	s.user = nil
	s.save()
	s.mu.Unlock()
	s.notify()
}

// UpdateUser merges name/email/profile-picture into the current
// record. Role and id always keep their original values. A call
// without an active session is a no-op.
func (s *Store) UpdateUser(patch UserPatch) {
	s.mu.Lock()
	if s.user == nil {
		s.mu.Unlock()
		return
	}
	if patch.Name != "" {
		s.user.Name = patch.Name
	}
	if patch.Email != "" {
		s.user.Email = patch.Email
	}
	if patch.ProfilePictureURL != "" {
		s.user.ProfilePictureURL = patch.ProfilePictureURL
	}
	s.save()
	s.mu.Unlock()
	s.notify()
}

// Current returns a copy of the identity, or nil when no session
// exists. A session without a token is never returned.
func (s *Store) Current() *models.Identity {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.token == "" || s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// Token returns the bearer token, or "" when absent.
func (s *Store) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

// Authenticated reports whether both entries are present.
func (s *Store) Authenticated() bool {
	return s.Current() != nil
}

// Subscribe registers a callback fired on every session change. The
// callback receives the new identity, or nil after logout.
func (s *Store) Subscribe(fn func(*models.Identity)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
}

func (s *Store) notify() {
	s.mu.Lock()
	subs := make([]func(*models.Identity), len(s.subs))
	copy(subs, s.subs)
	s.mu.Unlock()

	cur := s.Current()
	for _, fn := range subs {
		fn(cur)
	}
}

// load reads the persisted session into memory. Either entry missing,
// or an expired token, resets the store to unauthenticated.
func (s *Store) load() {
	data, err := os.ReadFile(s.filePath)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("⚠️ Failed to read session file: %v", err)
		}
		return
	}

	var st state
	if err := json.Unmarshal(data, &st); err != nil {
		log.Printf("⚠️ Failed to parse session file: %v", err)
		return
	}

	if st.Token == "" || st.User == nil {
		return
	}

	if tokenExpired(st.Token) {
		log.Printf("⚠️ Cached session token expired, clearing session")
		s.save()
		return
	}

	s.token = st.Token
	s.user = st.User
}

// save writes the current entries to disk. Called with the lock held.
func (s *Store) save() {
	data, err := json.MarshalIndent(state{Token: s.token, User: s.user}, "", "  ")
	if err != nil {
		log.Printf("⚠️ Failed to marshal session: %v", err)
		return
	}
	if err := os.WriteFile(s.filePath, data, 0600); err != nil {
		log.Printf("⚠️ Failed to write session file: %v", err)
	}
}

// tokenExpired decodes the token without verifying the signature and
// checks its exp claim. Opaque non-JWT tokens are assumed live; the
// backend is the authority and will answer 401 if not.
func tokenExpired(token string) bool {
	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return false
	}
	exp, err := parsed.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(time.Now())
}
