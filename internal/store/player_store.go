// internal/store/player_store.go
package store

import (
	"strconv"
	"sync"

	"github.com/jason-s-yu/players/internal/models"
)

// PlayerStore keeps player records in memory, in creation order. Ids are
// sequential, string-encoded, and never reused even after deletions. The
// (first name, last name) uniqueness invariant is enforced here, inside the
// store's lock, so check-and-insert is a single atomic step.
type PlayerStore struct {
	mu      sync.Mutex
	players []models.Player
	nextID  int
}

// NewPlayerStore initializes and returns an empty PlayerStore.
func NewPlayerStore() *PlayerStore {
	return &PlayerStore{nextID: 1}
}

// Create stores a new player and returns a copy of the stored record with
// its assigned id. Returns models.ErrDuplicatePlayer if a player with the
// same first and last name already exists; the existence check and the
// insert happen under one lock, so concurrent creates of the same name pair
// yield exactly one stored player.
func (s *PlayerStore) Create(details models.Player) (models.Player, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range s.players {
		if p.FirstName == details.FirstName && p.LastName == details.LastName {
			return models.Player{}, models.ErrDuplicatePlayer
		}
	}

	details.ID = strconv.Itoa(s.nextID)
	s.nextID++
	s.players = append(s.players, details)

	return details, nil
}

// matches reports whether p equals pred on every non-zero predicate field.
func matches(p, pred models.Player) bool {
	if pred.ID != "" && p.ID != pred.ID {
		return false
	}
	if pred.FirstName != "" && p.FirstName != pred.FirstName {
		return false
	}
	if pred.LastName != "" && p.LastName != pred.LastName {
		return false
	}
	if pred.Rating != "" && p.Rating != pred.Rating {
		return false
	}
	if pred.Handedness != "" && p.Handedness != pred.Handedness {
		return false
	}
	if pred.CreatedBy != "" && p.CreatedBy != pred.CreatedBy {
		return false
	}
	return true
}

// Find returns copies of all players matching the predicate, preserving
// insertion order.
func (s *PlayerStore) Find(pred models.Player) []models.Player {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []models.Player
	for _, p := range s.players {
		if matches(p, pred) {
			out = append(out, p)
		}
	}
	return out
}

// FindOne returns a copy of the first player matching the predicate, or
// ok=false if none match.
func (s *PlayerStore) FindOne(pred models.Player) (models.Player, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range s.players {
		if matches(p, pred) {
			return p, true
		}
	}
	return models.Player{}, false
}

// FindByID returns a copy of the player with the given id, or ok=false.
func (s *PlayerStore) FindByID(id string) (models.Player, bool) {
	return s.FindOne(models.Player{ID: id})
}

// RemoveByID deletes exactly the player with the given id. It returns
// models.ErrPlayerNotFound if no such player exists and models.ErrNotOwner
// if the player was created by someone else; the ownership check and the
// delete happen under one lock.
func (s *PlayerStore) RemoveByID(id, ownerID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, p := range s.players {
		if p.ID != id {
			continue
		}
		if p.CreatedBy != ownerID {
			return models.ErrNotOwner
		}
		s.players = append(s.players[:i], s.players[i+1:]...)
		return nil
	}
	return models.ErrPlayerNotFound
}

// RemoveByOwner deletes every player created by ownerID and returns how many
// were removed.
func (s *PlayerStore) RemoveByOwner(ownerID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.players[:0]
	removed := 0
	for _, p := range s.players {
		if p.CreatedBy == ownerID {
			removed++
			continue
		}
		kept = append(kept, p)
	}
	s.players = kept
	return removed
}

// RemoveAll clears the store. The id counter is never rewound.
func (s *PlayerStore) RemoveAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.players = nil
}
