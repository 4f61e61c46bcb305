package storage

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"pomotray/internal/core/model"
)

const (
	sessionsFileName = "sessions.json"

	// retentionDays bounds the session history; anything older is pruned on
	// the next append.
	retentionDays = 90
)

// SessionStore persists the append-only focus session history as a JSON
// array. A missing or corrupt file always degrades to an empty history.
type SessionStore struct {
	path string
	now  func() time.Time
}

// NewSessionStore creates a store under the user config directory.
func NewSessionStore(appName string) (*SessionStore, error) {
	path, err := resolveConfigPath(appName, sessionsFileName)
	if err != nil {
		return nil, err
	}
	return newSessionStoreAt(path), nil
}

func newSessionStoreAt(path string) *SessionStore {
	return &SessionStore{path: path, now: time.Now}
}

// LoadAll returns the persisted history, oldest first. Absence and parse
// failures both yield an empty slice.
func (store *SessionStore) LoadAll() []model.Session {
	rawData, err := os.ReadFile(store.path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("read sessions file: %v", err)
		}
		return nil
	}

	var sessions []model.Session
	if err := json.Unmarshal(rawData, &sessions); err != nil {
		log.Printf("parse sessions file: %v", err)
		return nil
	}
	return sessions
}

// Append adds a session to the end of the history, prunes records older
// than the retention window and persists the result. The pruned history is
// returned; a persistence failure is logged, not propagated.
func (store *SessionStore) Append(session model.Session) []model.Session {
	sessions := append(store.LoadAll(), session)

	cutoff := store.now().AddDate(0, 0, -retentionDays).Format(model.DateLayout)
	pruned := sessions[:0]
	for _, existing := range sessions {
		if existing.Date >= cutoff {
			pruned = append(pruned, existing)
		}
	}

	if err := store.write(pruned); err != nil {
		log.Printf("persist sessions: %v", err)
	}
	return pruned
}

// ReplaceAll overwrites the persisted history entirely.
func (store *SessionStore) ReplaceAll(sessions []model.Session) error {
	return store.write(sessions)
}

// Record implements the timer recorder contract.
func (store *SessionStore) Record(session model.Session) {
	store.Append(session)
}

func (store *SessionStore) write(sessions []model.Session) error {
	if err := os.MkdirAll(filepath.Dir(store.path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	if sessions == nil {
		sessions = []model.Session{}
	}
	serialized, err := json.Marshal(sessions)
	if err != nil {
		return fmt.Errorf("marshal sessions json: %w", err)
	}

	if err := os.WriteFile(store.path, serialized, 0o644); err != nil {
		return fmt.Errorf("write sessions file: %w", err)
	}
	return nil
}
