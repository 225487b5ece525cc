package diffnav

import "time"

// HistoryEntry records one opened diff buffer so that sessions can reopen
// it later. The identifier is the serialized buffer name, which is stable
// across sessions.
type HistoryEntry struct {
	Identifier string    `json:"identifier"`
	Branch     string    `json:"branch,omitempty"`
	OpenedAt   time.Time `json:"opened_at"`
}

// HistoryStore persists and retrieves opened-buffer records.
type HistoryStore interface {
	// Load reads all entries from the store at path, oldest first.
	// A missing file yields an empty history, not an error.
	Load(path string) ([]HistoryEntry, error)
	// Append adds an entry to the store at path, creating it if needed.
	Append(path string, e HistoryEntry) error
}
