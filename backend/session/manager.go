// Package session owns the active user session and the registered-user
// collection, mirroring every mutation to the durable store. A Manager is
// constructed once at startup and passed to whoever needs it; there is no
// package-level state.
package session

import (
	"encoding/json"
	"errors"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/HanishaChandrasekaran/placement-prep/backend/models"
	"github.com/HanishaChandrasekaran/placement-prep/backend/store"
)

var (
	ErrDuplicateEmail     = errors.New("a user with this email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrNoActiveSession    = errors.New("no active session")
	ErrProgressRange      = errors.New("progress must be between 0 and 100")
)

// Manager is the single source of truth for who is logged in and their
// profile. All operations are serialized by an internal mutex, so mutations
// apply strictly in arrival order even though the HTTP layer is concurrent.
type Manager struct {
	mu      sync.Mutex
	store   store.Store
	logger  *log.Logger
	latency time.Duration
	loading atomic.Bool

	session *models.UserRecord // sanitized, nil when logged out
	subs    []func(*models.UserRecord)

	now   func() time.Time
	newID func() string
}

// New seeds the store layout on first use and rehydrates a previously
// persisted session if one is present. latency is an artificial delay applied
// to register and login, mimicking the upstream call a real deployment would
// make; pass zero to disable it.
func New(st store.Store, logger *log.Logger, latency time.Duration) (*Manager, error) {
	if err := store.Initialize(st); err != nil {
		return nil, err
	}

	m := &Manager{
		store:   st,
		logger:  logger,
		latency: latency,
		now:     time.Now,
		newID:   uuid.NewString,
	}

	raw, ok, err := st.Get(store.KeySession)
	if err != nil {
		return nil, err
	}
	if ok {
		var rec models.UserRecord
		if err := json.Unmarshal([]byte(raw), &rec); err != nil {
			return nil, err
		}
		m.session = rec.Sanitized()
		m.logger.Printf("restored session for %s", rec.Email)
	}
	return m, nil
}

// Subscribe registers a callback invoked after every session change with the
// new session record, or nil on logout. Callbacks run with the manager's lock
// held and must not call back into it.
func (m *Manager) Subscribe(fn func(*models.UserRecord)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.subs = append(m.subs, fn)
}

// Session returns a copy of the active session record, or nil when logged out.
func (m *Manager) Session() *models.UserRecord {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.session.Clone()
}

// Authenticated reports whether a session is active.
func (m *Manager) Authenticated() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.session != nil
}

// Loading reports whether a register or login call is in flight.
func (m *Manager) Loading() bool {
	return m.loading.Load()
}

// Register creates a new account, stores it in the user collection and makes
// it the active session. The credential is bcrypt-hashed before it ever
// reaches the store.
func (m *Manager) Register(email, credential, name string) (*models.UserRecord, error) {
	m.loading.Store(true)
	defer m.loading.Store(false)
	m.simulate()

	m.mu.Lock()
	defer m.mu.Unlock()

	users, err := m.loadUsers()
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		if u.Email == email {
			return nil, ErrDuplicateEmail
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(credential), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	rec := models.UserRecord{
		ID:                 "user-" + m.newID(),
		Email:              email,
		Credential:         string(hash),
		Name:               name,
		IsNewUser:          true,
		Progress:           map[string]int{},
		CompletedCourses:   []string{},
		PerformanceHistory: []models.PerformanceRecord{},
	}
	users = append(users, rec)
	if err := m.saveUsers(users); err != nil {
		return nil, err
	}
	if err := m.setSession(rec.Sanitized()); err != nil {
		return nil, err
	}

	m.logger.Printf("registered %s (%s)", email, rec.ID)
	return m.session.Clone(), nil
}

// Login makes the matching stored record the active session. A missing user
// and a wrong credential report the same error.
func (m *Manager) Login(email, credential string) (*models.UserRecord, error) {
	m.loading.Store(true)
	defer m.loading.Store(false)
	m.simulate()

	m.mu.Lock()
	defer m.mu.Unlock()

	users, err := m.loadUsers()
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].Email != email {
			continue
		}
		if bcrypt.CompareHashAndPassword([]byte(users[i].Credential), []byte(credential)) != nil {
			return nil, ErrInvalidCredentials
		}
		if err := m.setSession(users[i].Sanitized()); err != nil {
			return nil, err
		}
		m.logger.Printf("login %s", email)
		return m.session.Clone(), nil
	}
	return nil, ErrInvalidCredentials
}

// Logout clears the active session and its persisted entry. The record stays
// in the user collection. Logging out while logged out is a no-op.
func (m *Manager) Logout() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.session == nil {
		return nil
	}
	if err := m.store.Delete(store.KeySession); err != nil {
		return err
	}
	m.logger.Printf("logout %s", m.session.Email)
	m.session = nil
	m.notify(nil)
	return nil
}

// ProfileUpdate names the fields UpdateProfile may merge into the session
// record. Nil pointers and nil collections leave the current value untouched.
type ProfileUpdate struct {
	Name               *string
	IsNewUser          *bool
	Preferences        *models.UserPreferences
	Progress           map[string]int
	CompletedCourses   []string
	PerformanceHistory []models.PerformanceRecord
}

// UpdateProfile merges the given fields into the active session record and
// persists the result into both the session slot and the user collection.
func (m *Manager) UpdateProfile(update ProfileUpdate) (*models.UserRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.applyLocked(func(rec *models.UserRecord) {
		if update.Name != nil {
			rec.Name = *update.Name
		}
		if update.IsNewUser != nil {
			rec.IsNewUser = *update.IsNewUser
		}
		if update.Preferences != nil {
			prefs := *update.Preferences
			prefs.Languages = append([]string(nil), update.Preferences.Languages...)
			rec.Preferences = &prefs
		}
		if update.Progress != nil {
			rec.Progress = update.Progress
		}
		if update.CompletedCourses != nil {
			rec.CompletedCourses = update.CompletedCourses
		}
		if update.PerformanceHistory != nil {
			rec.PerformanceHistory = update.PerformanceHistory
		}
	})
}

// SetProgress records the completion percentage for one language.
func (m *Manager) SetProgress(languageID string, percent int) (*models.UserRecord, error) {
	if percent < 0 || percent > 100 {
		return nil, ErrProgressRange
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.applyLocked(func(rec *models.UserRecord) {
		rec.Progress[languageID] = percent
	})
}

// MarkCompleted adds the roadmap item to the completed set. Completing an
// already-completed item changes nothing and is not an error.
func (m *Manager) MarkCompleted(itemID string) (*models.UserRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.session != nil && m.session.HasCompleted(itemID) {
		return m.session.Clone(), nil
	}
	return m.applyLocked(func(rec *models.UserRecord) {
		rec.CompletedCourses = append(rec.CompletedCourses, itemID)
	})
}

// RecordPerformance assigns the entry an id and timestamp and appends it to
// the session's history. The returned record is the stored copy.
func (m *Manager) RecordPerformance(entry models.PerformanceRecord) (*models.PerformanceRecord, error) {
	entry.ID = "perf-" + m.newID()
	entry.Date = m.now().UTC()

	m.mu.Lock()
	defer m.mu.Unlock()

	rec, err := m.applyLocked(func(rec *models.UserRecord) {
		rec.PerformanceHistory = append(rec.PerformanceHistory, entry)
	})
	if err != nil {
		return nil, err
	}
	stored := rec.PerformanceHistory[len(rec.PerformanceHistory)-1]
	return &stored, nil
}

// applyLocked runs apply against a copy of the session record, then persists
// the result to the session slot and back into the user collection matched by
// id. The stored credential hash is preserved; the session copy never carries
// it. Callers hold m.mu.
func (m *Manager) applyLocked(apply func(*models.UserRecord)) (*models.UserRecord, error) {
	if m.session == nil {
		return nil, ErrNoActiveSession
	}

	next := m.session.Clone()
	apply(next)

	users, err := m.loadUsers()
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].ID == next.ID {
			merged := *next.Clone()
			merged.Credential = users[i].Credential
			users[i] = merged
			break
		}
	}
	if err := m.saveUsers(users); err != nil {
		return nil, err
	}
	if err := m.setSession(next); err != nil {
		return nil, err
	}
	return next.Clone(), nil
}

func (m *Manager) setSession(rec *models.UserRecord) error {
	raw, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	if err := m.store.Set(store.KeySession, string(raw)); err != nil {
		return err
	}
	m.session = rec
	m.notify(rec)
	return nil
}

func (m *Manager) notify(rec *models.UserRecord) {
	for _, fn := range m.subs {
		fn(rec.Clone())
	}
}

func (m *Manager) loadUsers() ([]models.UserRecord, error) {
	raw, ok, err := m.store.Get(store.KeyUsers)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []models.UserRecord{}, nil
	}
	var users []models.UserRecord
	if err := json.Unmarshal([]byte(raw), &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (m *Manager) saveUsers(users []models.UserRecord) error {
	raw, err := json.Marshal(users)
	if err != nil {
		return err
	}
	return m.store.Set(store.KeyUsers, string(raw))
}

func (m *Manager) simulate() {
	if m.latency > 0 {
		time.Sleep(m.latency)
	}
}
