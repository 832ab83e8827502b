package domain

import "time"

// Session is a named, persisted set of analyzed files
type Session struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	CreatedAt time.Time      `json:"created_at"`
	Files     []AnalyzedFile `json:"files"`
}

// SessionInfo is the listing view of a session, without file payloads
type SessionInfo struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	FileCount int       `json:"file_count"`
}

// SessionStore round-trips sessions to a persistence backend
type SessionStore interface {
	Save(session *Session) error
	Load(id string) (*Session, error)
	List() ([]SessionInfo, error)
	Delete(id string) error
}
