// Package repository holds the gorm data access layer, one repository per table.
package repository

import (
	"errors"

	"gorm.io/gorm"
)

// ErrNotFound is returned by single-row lookups that match nothing.
var ErrNotFound = gorm.ErrRecordNotFound

// IsUniqueViolation reports a duplicate key error (TranslateError must be on).
func IsUniqueViolation(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}
