package visitor

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/GoVisitorDash/GoVisitorDash/internal/db/models"
)

// setupTestDB creates an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to create test database")

	err = db.AutoMigrate(&models.Visitor{})
	require.NoError(t, err, "failed to migrate test database")

	return db
}

func floatPtr(f float64) *float64 { return &f }

func TestUpsertInsertsAndReplaces(t *testing.T) {
	db := setupTestDB(t)

	first := &models.Visitor{
		Address:   "203.0.113.5",
		LastVisit: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
		Latitude:  floatPtr(48.85),
		Longitude: floatPtr(2.35),
		UserAgent: "first-agent",
		Language:  "fr-FR",
	}
	require.NoError(t, Upsert(db, first))

	// a later visit from the same address replaces every field
	second := &models.Visitor{
		Address:   "203.0.113.5",
		LastVisit: time.Date(2026, 8, 2, 12, 0, 0, 0, time.UTC),
		UserAgent: "second-agent",
	}
	require.NoError(t, Upsert(db, second))

	all, err := All(db)
	require.NoError(t, err)
	require.Len(t, all, 1, "one row per address")

	got := all[0]
	assert.Equal(t, "203.0.113.5", got.Address)
	assert.Equal(t, "second-agent", got.UserAgent)
	assert.Nil(t, got.Latitude, "stale latitude must not survive the overwrite")
	assert.Nil(t, got.Longitude)
	assert.Empty(t, got.Language)
}

func TestUpsertValidation(t *testing.T) {
	db := setupTestDB(t)

	require.ErrorIs(t, Upsert(nil, &models.Visitor{Address: "203.0.113.5"}), ErrDBNil)
	require.ErrorIs(t, Upsert(db, nil), ErrVisitorNil)
	require.ErrorIs(t, Upsert(db, &models.Visitor{}), ErrAddressEmpty)
}

func TestAllOrdersByLastVisitDescending(t *testing.T) {
	db := setupTestDB(t)

	older := &models.Visitor{
		Address:   "198.51.100.1",
		LastVisit: time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
	}
	newest := &models.Visitor{
		Address:   "198.51.100.2",
		LastVisit: time.Date(2026, 8, 3, 0, 0, 0, 0, time.UTC),
	}
	middle := &models.Visitor{
		Address:   "198.51.100.3",
		LastVisit: time.Date(2026, 8, 2, 0, 0, 0, 0, time.UTC),
	}

	for _, v := range []*models.Visitor{older, newest, middle} {
		require.NoError(t, Upsert(db, v))
	}

	all, err := All(db)
	require.NoError(t, err)
	require.Len(t, all, 3)

	assert.Equal(t, "198.51.100.2", all[0].Address)
	assert.Equal(t, "198.51.100.3", all[1].Address)
	assert.Equal(t, "198.51.100.1", all[2].Address)

	_, err = All(nil)
	require.ErrorIs(t, err, ErrDBNil)
}

func TestDeleteIsIdempotent(t *testing.T) {
	db := setupTestDB(t)

	// deleting an unknown address succeeds
	require.NoError(t, Delete(db, "203.0.113.5"))

	require.NoError(t, Upsert(db, &models.Visitor{
		Address:   "203.0.113.5",
		LastVisit: time.Now(),
	}))

	require.NoError(t, Delete(db, "203.0.113.5"))

	all, err := All(db)
	require.NoError(t, err)
	assert.Empty(t, all)

	// and deleting it again still succeeds
	require.NoError(t, Delete(db, "203.0.113.5"))

	require.ErrorIs(t, Delete(nil, "203.0.113.5"), ErrDBNil)
	require.ErrorIs(t, Delete(db, ""), ErrAddressEmpty)
}
