package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"go.uber.org/zap"

	"github.com/yukikurage/smart-workspace/internal/models"
)

const dataFileMode = 0o644

// FileStore is the flat-file implementation of Repository. The mutex
// serializes load-mutate-save cycles within this process; concurrent
// processes remain last-writer-wins.
type FileStore struct {
	path string
	log  *zap.Logger
	mu   sync.Mutex
}

// NewFileStore creates a FileStore backed by the document at path.
func NewFileStore(path string, log *zap.Logger) *FileStore {
	return &FileStore{
		path: path,
		log:  log,
	}
}

// EnsureExists writes an initial empty document if none exists. Idempotent.
func (f *FileStore) EnsureExists() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.ensureExists()
}

// Load reads and parses the document, upgrading any legacy plaintext
// passwords before the store is handed to the caller. When the migration
// changed anything the document is written back immediately, so a store
// observed by the rest of the system never carries a plaintext password.
func (f *FileStore) Load() (*models.Store, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.ensureExists(); err != nil {
		return nil, err
	}

	raw, err := os.ReadFile(f.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read data file: %w", err)
	}

	var store models.Store
	if err := json.Unmarshal(raw, &store); err != nil {
		return nil, fmt.Errorf("corrupt data file %s: %w", f.path, err)
	}

	changed, err := migratePlainPasswords(store.Users)
	if err != nil {
		return nil, fmt.Errorf("failed to migrate passwords: %w", err)
	}
	if changed {
		f.log.Info("migrated legacy plaintext passwords", zap.String("file", f.path))
		if err := f.writeDocument(&store); err != nil {
			return nil, err
		}
	}

	return &store, nil
}

// Save serializes the full store and overwrites the document in one write.
func (f *FileStore) Save(store *models.Store) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.writeDocument(store)
}

func (f *FileStore) ensureExists() error {
	if _, err := os.Stat(f.path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("failed to stat data file: %w", err)
	}

	return f.writeDocument(models.NewStore())
}

func (f *FileStore) writeDocument(store *models.Store) error {
	data, err := json.MarshalIndent(store, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize store: %w", err)
	}

	if err := os.WriteFile(f.path, data, dataFileMode); err != nil {
		return fmt.Errorf("failed to write data file: %w", err)
	}

	return nil
}
