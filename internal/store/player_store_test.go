// internal/store/player_store_test.go
package store

import (
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jason-s-yu/players/internal/models"
)

func newTestPlayer(first, last, owner string) models.Player {
	return models.Player{
		FirstName:  first,
		LastName:   last,
		Rating:     "1500",
		Handedness: models.HandednessRight,
		CreatedBy:  owner,
	}
}

func TestPlayerStoreCreateAssignsIncreasingIDs(t *testing.T) {
	s := NewPlayerStore()

	prev := 0
	for i := 0; i < 5; i++ {
		p, err := s.Create(newTestPlayer("Ann", "Lee"+strconv.Itoa(i), "1"))
		require.NoError(t, err)

		id, err := strconv.Atoi(p.ID)
		require.NoError(t, err)
		assert.Greater(t, id, prev)
		prev = id
	}
}

func TestPlayerStoreDuplicateName(t *testing.T) {
	s := NewPlayerStore()

	_, err := s.Create(newTestPlayer("Ann", "Lee", "1"))
	require.NoError(t, err)

	// same name pair is rejected even for a different owner
	_, err = s.Create(newTestPlayer("Ann", "Lee", "2"))
	require.ErrorIs(t, err, models.ErrDuplicatePlayer)

	assert.Len(t, s.Find(models.Player{}), 1)
}

func TestPlayerStoreFindScopedByOwner(t *testing.T) {
	s := NewPlayerStore()

	// interleave creations by two owners
	_, err := s.Create(newTestPlayer("Ann", "Lee", "1"))
	require.NoError(t, err)
	_, err = s.Create(newTestPlayer("Bob", "Ray", "2"))
	require.NoError(t, err)
	_, err = s.Create(newTestPlayer("Cal", "Day", "1"))
	require.NoError(t, err)

	mine := s.Find(models.Player{CreatedBy: "1"})
	require.Len(t, mine, 2)
	assert.Equal(t, "Ann", mine[0].FirstName)
	assert.Equal(t, "Cal", mine[1].FirstName)
	for _, p := range mine {
		assert.Equal(t, "1", p.CreatedBy)
	}
}

func TestPlayerStoreFindOneAndFindByID(t *testing.T) {
	s := NewPlayerStore()

	created, err := s.Create(newTestPlayer("Ann", "Lee", "1"))
	require.NoError(t, err)

	found, ok := s.FindOne(models.Player{FirstName: "Ann", LastName: "Lee"})
	require.True(t, ok)
	assert.Equal(t, created, found)

	byID, ok := s.FindByID(created.ID)
	require.True(t, ok)
	assert.Equal(t, created, byID)

	_, ok = s.FindByID("999")
	assert.False(t, ok)
}

func TestPlayerStoreRemoveByID(t *testing.T) {
	s := NewPlayerStore()

	p1, err := s.Create(newTestPlayer("Ann", "Lee", "1"))
	require.NoError(t, err)
	p2, err := s.Create(newTestPlayer("Bob", "Ray", "1"))
	require.NoError(t, err)

	// non-owner cannot delete
	err = s.RemoveByID(p1.ID, "2")
	require.ErrorIs(t, err, models.ErrNotOwner)
	_, ok := s.FindByID(p1.ID)
	assert.True(t, ok)

	// owner deletes exactly that player
	require.NoError(t, s.RemoveByID(p1.ID, "1"))
	_, ok = s.FindByID(p1.ID)
	assert.False(t, ok)
	_, ok = s.FindByID(p2.ID)
	assert.True(t, ok)

	// gone now
	err = s.RemoveByID(p1.ID, "1")
	require.ErrorIs(t, err, models.ErrPlayerNotFound)
}

func TestPlayerStoreRemoveByOwner(t *testing.T) {
	s := NewPlayerStore()

	_, err := s.Create(newTestPlayer("Ann", "Lee", "1"))
	require.NoError(t, err)
	_, err = s.Create(newTestPlayer("Bob", "Ray", "2"))
	require.NoError(t, err)
	_, err = s.Create(newTestPlayer("Cal", "Day", "1"))
	require.NoError(t, err)

	assert.Equal(t, 2, s.RemoveByOwner("1"))
	assert.Empty(t, s.Find(models.Player{CreatedBy: "1"}))
	assert.Len(t, s.Find(models.Player{CreatedBy: "2"}), 1)
}

func TestPlayerStoreIDsNotReusedAfterRemoveAll(t *testing.T) {
	s := NewPlayerStore()

	p, err := s.Create(newTestPlayer("Ann", "Lee", "1"))
	require.NoError(t, err)
	assert.Equal(t, "1", p.ID)

	s.RemoveAll()
	assert.Empty(t, s.Find(models.Player{}))

	p, err = s.Create(newTestPlayer("Ann", "Lee", "1"))
	require.NoError(t, err)
	assert.Equal(t, "2", p.ID)
}

// TestPlayerStoreConcurrentDuplicateCreate drives many goroutines at the
// same name pair; exactly one create may win regardless of interleaving.
func TestPlayerStoreConcurrentDuplicateCreate(t *testing.T) {
	s := NewPlayerStore()

	const n = 32
	var wg sync.WaitGroup
	errs := make([]error, n)

	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = s.Create(newTestPlayer("Ann", "Lee", strconv.Itoa(i)))
		}(i)
	}
	wg.Wait()

	successes := 0
	for _, err := range errs {
		if err == nil {
			successes++
		} else {
			require.ErrorIs(t, err, models.ErrDuplicatePlayer)
		}
	}
	assert.Equal(t, 1, successes)
	assert.Len(t, s.Find(models.Player{}), 1)
}
