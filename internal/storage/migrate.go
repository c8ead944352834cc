package storage

import (
	"github.com/yukikurage/smart-workspace/internal/auth"
	"github.com/yukikurage/smart-workspace/internal/models"
)

// migratePlainPasswords upgrades legacy plaintext passwords in place and
// reports whether anything changed. Empty and already-hashed values are
// left untouched, so re-running the pass on its own output is a no-op.
func migratePlainPasswords(users []models.User) (bool, error) {
	changed := false

	for i := range users {
		password := users[i].Password
		if password == "" {
			continue
		}
		if auth.IsHashed(password) {
			continue
		}

		hashed, err := auth.HashPassword(password)
		if err != nil {
			return changed, err
		}
		users[i].Password = hashed
		changed = true
	}

	return changed, nil
}
