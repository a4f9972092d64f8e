package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"weatherdash.app/models"
)

// Setup test database with in-memory SQLite
func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(&models.SearchEntry{})
	require.NoError(t, err)

	return db
}

func TestSearchHistoryRepository_Record(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSearchHistoryRepository(db, 24*time.Hour)

	t.Run("NewTerm", func(t *testing.T) {
		entry, err := repo.Record("London")
		assert.NoError(t, err)
		assert.NotNil(t, entry)
		assert.Equal(t, "London", entry.Term)
		assert.NotZero(t, entry.ID)
	})

	t.Run("DuplicateTermRefreshesInsteadOfInserting", func(t *testing.T) {
		first, err := repo.Record("Kyiv")
		assert.NoError(t, err)

		second, err := repo.Record("kyiv")
		assert.NoError(t, err)
		assert.Equal(t, first.ID, second.ID)
		assert.Equal(t, "kyiv", second.Term)

		entries, err := repo.Recent()
		assert.NoError(t, err)

		count := 0
		for _, e := range entries {
			if e.ID == first.ID {
				count++
			}
		}
		assert.Equal(t, 1, count)
	})

	t.Run("EmptyTerm", func(t *testing.T) {
		entry, err := repo.Record("   ")
		assert.Error(t, err)
		assert.Nil(t, entry)
	})
}

func TestSearchHistoryRepository_Recent(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSearchHistoryRepository(db, 24*time.Hour)

	stale := models.SearchEntry{Term: "Oslo", Timestamp: time.Now().Add(-25 * time.Hour)}
	require.NoError(t, db.Create(&stale).Error)

	fresh := models.SearchEntry{Term: "Lviv", Timestamp: time.Now().Add(-1 * time.Hour)}
	require.NoError(t, db.Create(&fresh).Error)

	newest := models.SearchEntry{Term: "Paris", Timestamp: time.Now()}
	require.NoError(t, db.Create(&newest).Error)

	entries, err := repo.Recent()
	assert.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "Paris", entries[0].Term)
	assert.Equal(t, "Lviv", entries[1].Term)
}

func TestSearchHistoryRepository_Delete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSearchHistoryRepository(db, 24*time.Hour)

	entry, err := repo.Record("Berlin")
	require.NoError(t, err)

	assert.NoError(t, repo.Delete(entry.ID))

	entries, err := repo.Recent()
	assert.NoError(t, err)
	assert.Empty(t, entries)

	assert.ErrorIs(t, repo.Delete(entry.ID), gorm.ErrRecordNotFound)
}

func TestSearchHistoryRepository_Clear(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSearchHistoryRepository(db, 24*time.Hour)

	_, err := repo.Record("Tokyo")
	require.NoError(t, err)
	_, err = repo.Record("Madrid")
	require.NoError(t, err)

	assert.NoError(t, repo.Clear())

	entries, err := repo.Recent()
	assert.NoError(t, err)
	assert.Empty(t, entries)
}

func TestSearchHistoryRepository_PruneExpired(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSearchHistoryRepository(db, 24*time.Hour)

	stale := models.SearchEntry{Term: "Rome", Timestamp: time.Now().Add(-48 * time.Hour)}
	require.NoError(t, db.Create(&stale).Error)

	fresh := models.SearchEntry{Term: "Vienna", Timestamp: time.Now()}
	require.NoError(t, db.Create(&fresh).Error)

	assert.NoError(t, repo.PruneExpired())

	var remaining []models.SearchEntry
	require.NoError(t, db.Find(&remaining).Error)
	require.Len(t, remaining, 1)
	assert.Equal(t, "Vienna", remaining[0].Term)
}
