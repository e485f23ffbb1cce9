package persistent

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

var counterColumns = map[string]map[string]bool{
	"posts":    {"like_count": true},
	"comments": {"like_count": true},
	"profiles": {"followers_count": true, "following_count": true},
}

// adjustCounter applies delta to table.column in one statement, clamped at zero,
// and returns the stored value. Callers never supply the current count.
func adjustCounter(ctx context.Context, db *gorm.DB, table, column, id string, delta int) (int, error) {
	if !counterColumns[table][column] {
		return 0, fmt.Errorf("unknown counter %s.%s", table, column)
	}

	var value int
	query := fmt.Sprintf("UPDATE %s SET %s = GREATEST(%s + ?, 0) WHERE id = ? RETURNING %s", table, column, column, column)
	result := db.WithContext(ctx).Raw(query, delta, id).Scan(&value)
	if result.Error != nil {
		return 0, fmt.Errorf("failed to adjust %s.%s: %w", table, column, result.Error)
	}
	if result.RowsAffected == 0 {
		return 0, gorm.ErrRecordNotFound
	}
	return value, nil
}
