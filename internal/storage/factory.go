package storage

import "fmt"

// NewStore builds the experiment store for the given backend kind:
// "memory" (also the empty default) keeps records in process, "sqlite"
// persists them to the database at sqlitePath and requires a binary
// built with the sqlite tag.
func NewStore(kind, sqlitePath string) (Store, error) {
	switch kind {
	case "", "memory":
		return NewMemoryStore(), nil
	case "sqlite":
		return newSQLiteStore(sqlitePath)
	default:
		return nil, fmt.Errorf("unsupported store backend: %s", kind)
	}
}

// CloseIfSupported closes stores that hold external resources; the
// memory store has none and is left alone.
func CloseIfSupported(store Store) error {
	closer, ok := store.(interface{ Close() error })
	if !ok {
		return nil
	}
	return closer.Close()
}
