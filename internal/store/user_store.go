// internal/store/user_store.go
package store

import (
	"strconv"
	"sync"

	"github.com/jason-s-yu/players/internal/models"
)

// UserStore keeps registered users in memory, keyed by email. It assigns
// sequential string-encoded ids and is safe for concurrent use. State lives
// for the process lifetime only.
type UserStore struct {
	mu     sync.Mutex
	users  map[string]models.User
	nextID int
}

// NewUserStore initializes and returns an empty UserStore.
func NewUserStore() *UserStore {
	return &UserStore{
		users:  make(map[string]models.User),
		nextID: 1,
	}
}

// Create stores a new user and returns a copy of the stored record with its
// assigned id. The duplicate-email check and the insert happen under one
// lock, so concurrent registrations of the same email cannot both succeed.
func (s *UserStore) Create(details models.User) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.users[details.Email]; exists {
		return models.User{}, models.ErrDuplicateEmail
	}

	details.ID = strconv.Itoa(s.nextID)
	s.nextID++
	s.users[details.Email] = details

	return details, nil
}

// FindOne returns a copy of the user stored under email, or ok=false if no
// such user exists. Absence is not an error; callers decide.
func (s *UserStore) FindOne(email string) (models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[email]
	return u, ok
}

// RemoveByEmail deletes exactly the user stored under email, if any. The id
// counter is never rewound.
func (s *UserStore) RemoveByEmail(email string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.users, email)
}

// RemoveAll clears the store.
func (s *UserStore) RemoveAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users = make(map[string]models.User)
}
