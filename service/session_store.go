package service

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/IjaIjb/code-quality-analyzer/domain"
)

// SessionStoreImpl persists sessions as JSON files in a directory
type SessionStoreImpl struct {
	dir string
}

// NewSessionStore creates a session store rooted at dir
func NewSessionStore(dir string) *SessionStoreImpl {
	return &SessionStoreImpl{dir: dir}
}

// DefaultSessionDir returns the per-user session directory
func DefaultSessionDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".cqa", "sessions")
	}
	return filepath.Join(home, ".cqa", "sessions")
}

// Save writes the session to disk, creating the store directory on demand
func (s *SessionStoreImpl) Save(session *domain.Session) error {
	if session == nil || session.ID == "" {
		return domain.NewSessionError("session must have an ID", nil)
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return domain.NewSessionError("failed to create session directory", err)
	}

	data, err := json.MarshalIndent(session, "", "  ")
	if err != nil {
		return domain.NewSessionError("failed to encode session", err)
	}
	if err := os.WriteFile(s.path(session.ID), data, 0o644); err != nil {
		return domain.NewSessionError("failed to write session file", err)
	}
	return nil
}

// Load reads one session by ID
func (s *SessionStoreImpl) Load(id string) (*domain.Session, error) {
	data, err := os.ReadFile(s.path(id))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, domain.NewSessionError("session not found: "+id, err)
		}
		return nil, domain.NewSessionError("failed to read session file", err)
	}

	var session domain.Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, domain.NewSessionError("failed to decode session file", err)
	}
	return &session, nil
}

// List returns summaries of all stored sessions, newest first
func (s *SessionStoreImpl) List() ([]domain.SessionInfo, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, domain.NewSessionError("failed to read session directory", err)
	}

	var infos []domain.SessionInfo
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		session, err := s.Load(strings.TrimSuffix(entry.Name(), ".json"))
		if err != nil {
			// Unreadable entries are skipped, not fatal
			continue
		}
		infos = append(infos, domain.SessionInfo{
			ID:        session.ID,
			Name:      session.Name,
			CreatedAt: session.CreatedAt,
			FileCount: len(session.Files),
		})
	}

	sort.Slice(infos, func(i, j int) bool {
		return infos[i].CreatedAt.After(infos[j].CreatedAt)
	})
	return infos, nil
}

// Delete removes one session by ID
func (s *SessionStoreImpl) Delete(id string) error {
	if err := os.Remove(s.path(id)); err != nil {
		if os.IsNotExist(err) {
			return domain.NewSessionError("session not found: "+id, err)
		}
		return domain.NewSessionError("failed to delete session file", err)
	}
	return nil
}

func (s *SessionStoreImpl) path(id string) string {
	// Session IDs become file names; path separators are stripped
	safe := strings.NewReplacer("/", "_", "\\", "_", "..", "_").Replace(id)
	return filepath.Join(s.dir, safe+".json")
}
