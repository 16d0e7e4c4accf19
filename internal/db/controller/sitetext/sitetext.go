// Package sitetext manages the fixed set of operator-editable homepage texts.
//
// The key set is seeded with defaults at startup and never grows or shrinks
// at runtime; updates only ever change values of keys that already exist.
package sitetext

import (
	"errors"

	"gorm.io/gorm"

	"github.com/GoVisitorDash/GoVisitorDash/internal/db/controller/setting"
)

// The known key set.
const (
	KeyWelcomeText = "welcome_text"
	KeyButtonText  = "button_text"
	KeyModalTitle  = "modal_title"
	KeyModalBody   = "modal_body"
)

// Keys lists the known key set in display order.
var Keys = []string{KeyWelcomeText, KeyButtonText, KeyModalTitle, KeyModalBody}

// Defaults are the values seeded at first initialization.
var Defaults = map[string]string{
	KeyWelcomeText: "Welcome! You are being redirected.",
	KeyButtonText:  "Continue to site",
	KeyModalTitle:  "Quick verification",
	KeyModalBody:   "Please confirm you are human to continue to the site.",
}

// IsKnownKey reports whether the given key belongs to the known key set.
func IsKnownKey(key string) bool {
	_, ok := Defaults[key]
	return ok
}

// SeedDefaults inserts the default value for every known key that is not
// stored yet. It is idempotent and safe to run on every startup.
func SeedDefaults(db *gorm.DB) error {
	for _, key := range Keys {
		_, err := setting.Get(db, key)
		if err == nil {
			continue
		}
		if !errors.Is(err, setting.ErrSettingNotFound) {
			return err
		}

		if _, err = setting.Create(db, key, []byte(Defaults[key])); err != nil {
			return err
		}
	}

	return nil
}

// Values returns the current value for every known key. A key missing from
// the store falls back to its default.
func Values(db *gorm.DB) (map[string]string, error) {
	values := make(map[string]string, len(Keys))

	for _, key := range Keys {
		s, err := setting.Get(db, key)
		if err != nil {
			if errors.Is(err, setting.ErrSettingNotFound) {
				values[key] = Defaults[key]
				continue
			}

			return nil, err
		}

		values[key] = string(s.Value)
	}

	return values, nil
}

// Update overwrites the value of every known key present in the input.
// Unknown keys are silently skipped, and keys that have no stored row are
// not inserted: the key set is fixed at seeding time. Rows are written
// independently, there is no partial-write concern beyond per-row atomicity.
func Update(db *gorm.DB, values map[string]string) error {
	for key, value := range values {
		if !IsKnownKey(key) {
			continue
		}

		if _, err := setting.UpdateByName(db, key, []byte(value)); err != nil {
			if errors.Is(err, setting.ErrSettingNotFound) {
				continue
			}

			return err
		}
	}

	return nil
}
