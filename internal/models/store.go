package models

// Store is the root aggregate persisted as a single flat JSON document:
// every user, every note, and the counters used to mint new ids.
type Store struct {
	Users      []User `json:"users"`
	Notes      []Note `json:"notes"`
	LastUserID int    `json:"lastUserId"`
	LastNoteID int    `json:"lastNoteId"`
}

// NewStore returns an empty store with initialized collections so the
// persisted document always carries the arrays, never null.
func NewStore() *Store {
	return &Store{
		Users: []User{},
		Notes: []Note{},
	}
}

// FindUserByUsername returns the user with the exact (case-sensitive)
// username, or nil.
func (s *Store) FindUserByUsername(username string) *User {
	for i := range s.Users {
		if s.Users[i].Username == username {
			return &s.Users[i]
		}
	}
	return nil
}

// FindUserByID returns the user with the given id, or nil.
func (s *Store) FindUserByID(id int) *User {
	for i := range s.Users {
		if s.Users[i].ID == id {
			return &s.Users[i]
		}
	}
	return nil
}

// NextUserID mints the next user id (increment-before-assign).
func (s *Store) NextUserID() int {
	s.LastUserID++
	return s.LastUserID
}

// NextNoteID mints the next note id (increment-before-assign).
func (s *Store) NextNoteID() int {
	s.LastNoteID++
	return s.LastNoteID
}
