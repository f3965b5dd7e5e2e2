// Package repository holds the SQL for every resource. Callers validate
// inputs first; functions here only bind values and run statements.
package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

// exists reports whether any row of model's table has column = value.
func exists(ctx context.Context, db *gorm.DB, model interface{}, column string, value interface{}) (bool, error) {
	var count int64
	err := db.WithContext(ctx).
		Model(model).
		Where(fmt.Sprintf("%s = ?", column), value).
		Limit(1).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check %s: %w", column, err)
	}
	return count > 0, nil
}
