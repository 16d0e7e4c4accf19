// Package visitor provides persistence operations for visit snapshots.
//
// The visitors table keeps exactly one row per effective network address.
// Upsert replaces the whole row, listing is newest-visit-first and delete
// is idempotent.
package visitor

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/GoVisitorDash/GoVisitorDash/internal/db/models"
)

var (
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
	// ErrVisitorNil is returned when the visitor record is nil.
	ErrVisitorNil = errors.New("visitor cannot be nil")
	// ErrAddressEmpty is returned when the visitor address is empty.
	ErrAddressEmpty = errors.New("visitor address cannot be empty")
)

// Upsert inserts the snapshot or replaces every field of the existing row
// with the same address. Last write wins, no merge.
func Upsert(db *gorm.DB, v *models.Visitor) error {
	if db == nil {
		return ErrDBNil
	}
	if v == nil {
		return ErrVisitorNil
	}
	if v.Address == "" {
		return ErrAddressEmpty
	}

	result := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "address"}},
		UpdateAll: true,
	}).Create(v)

	return result.Error
}

// All returns every visit snapshot ordered by last visit descending.
func All(db *gorm.DB) ([]models.Visitor, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var visitors []models.Visitor
	result := db.Order("last_visit DESC").Find(&visitors)
	if result.Error != nil {
		return nil, result.Error
	}

	return visitors, nil
}

// Delete removes the snapshot for the given address. Deleting an unknown
// address is not an error.
func Delete(db *gorm.DB, address string) error {
	if db == nil {
		return ErrDBNil
	}
	if address == "" {
		return ErrAddressEmpty
	}

	result := db.Where("address = ?", address).Delete(&models.Visitor{})

	return result.Error
}
