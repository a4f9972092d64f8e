// Package repository implements data access layer for the application
package repository

import (
	"errors"
	"log"
	"strings"
	"time"

	"gorm.io/gorm"
	"weatherdash.app/models"
)

// SearchHistoryRepository handles data access operations for search history
type SearchHistoryRepository struct {
	db  *gorm.DB
	ttl time.Duration
}

// NewSearchHistoryRepository creates a new repository for search history data.
// Entries older than ttl are excluded from reads and removed by pruning.
func NewSearchHistoryRepository(db *gorm.DB, ttl time.Duration) *SearchHistoryRepository {
	return &SearchHistoryRepository{db: db, ttl: ttl}
}

// Recent retrieves non-expired search entries, newest first
func (r *SearchHistoryRepository) Recent() ([]models.SearchEntry, error) {
	log.Println("[DEBUG] SearchHistoryRepository.Recent called")

	cutoff := time.Now().Add(-r.ttl)
	var entries []models.SearchEntry
	result := r.db.Where("timestamp > ?", cutoff).Order("timestamp desc").Find(&entries)
	if result.Error != nil {
		log.Printf("[ERROR] Database error when loading search history: %v\n", result.Error)
		return nil, result.Error
	}

	log.Printf("[DEBUG] Found %d recent search entries\n", len(entries))
	return entries, nil
}

// Record stores a search term, refreshing the timestamp when the same term
// (case-insensitive) was already recorded
func (r *SearchHistoryRepository) Record(term string) (*models.SearchEntry, error) {
	log.Printf("[DEBUG] SearchHistoryRepository.Record: term=%s\n", term)

	normalized := strings.ToLower(strings.TrimSpace(term))
	if normalized == "" {
		return nil, errors.New("search term cannot be empty")
	}

	var entry models.SearchEntry
	result := r.db.Where("LOWER(term) = ?", normalized).First(&entry)
	if result.Error != nil {
		if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
			log.Printf("[ERROR] Database error when finding search entry: %v\n", result.Error)
			return nil, result.Error
		}

		entry = models.SearchEntry{Term: strings.TrimSpace(term), Timestamp: time.Now()}
		if result := r.db.Create(&entry); result.Error != nil {
			log.Printf("[ERROR] Database error when creating search entry: %v\n", result.Error)
			return nil, result.Error
		}

		log.Printf("[DEBUG] Created search entry with ID: %d\n", entry.ID)
		return &entry, nil
	}

	entry.Term = strings.TrimSpace(term)
	entry.Timestamp = time.Now()
	if result := r.db.Save(&entry); result.Error != nil {
		log.Printf("[ERROR] Database error when refreshing search entry: %v\n", result.Error)
		return nil, result.Error
	}

	log.Printf("[DEBUG] Refreshed search entry with ID: %d\n", entry.ID)
	return &entry, nil
}

// Delete removes a single search entry by ID
func (r *SearchHistoryRepository) Delete(id uint) error {
	log.Printf("[DEBUG] SearchHistoryRepository.Delete: id=%d\n", id)

	result := r.db.Delete(&models.SearchEntry{}, id)
	if result.Error != nil {
		log.Printf("[ERROR] Database error when deleting search entry: %v\n", result.Error)
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	log.Println("[DEBUG] Deleted search entry successfully")
	return nil
}

// Clear removes all search entries
func (r *SearchHistoryRepository) Clear() error {
	log.Println("[DEBUG] SearchHistoryRepository.Clear called")

	result := r.db.Where("1 = 1").Delete(&models.SearchEntry{})
	if result.Error != nil {
		log.Printf("[ERROR] Database error when clearing search history: %v\n", result.Error)
		return result.Error
	}

	log.Printf("[DEBUG] Cleared %d search entries\n", result.RowsAffected)
	return nil
}

// PruneExpired removes entries older than the configured TTL
func (r *SearchHistoryRepository) PruneExpired() error {
	log.Println("[DEBUG] SearchHistoryRepository.PruneExpired called")

	cutoff := time.Now().Add(-r.ttl)
	result := r.db.Where("timestamp < ?", cutoff).Delete(&models.SearchEntry{})
	if result.Error != nil {
		log.Printf("[ERROR] Database error when pruning search history: %v\n", result.Error)
		return result.Error
	}

	log.Printf("[DEBUG] Pruned %d expired search entries\n", result.RowsAffected)
	return nil
}
