// Package storage owns the flat JSON document that acts as the entire
// datastore. Every read re-parses the document from disk and every write
// rewrites it whole, so each request observes the latest committed state.
package storage

import (
	"github.com/yukikurage/smart-workspace/internal/models"
)

// Repository defines the interface for store data access. The flat-file
// implementation below is the only one today; the two-method contract
// keeps the seam open for an indexed or transactional store later.
type Repository interface {
	// Load reads the full store, migrating any legacy credentials.
	Load() (*models.Store, error)

	// Save overwrites the persisted document with the full store.
	Save(store *models.Store) error
}
