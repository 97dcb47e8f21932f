package store

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm/clause"
)

// State returns the value stored under key.
func (r *Repository) State(ctx context.Context, key string) (string, error) {
	start := time.Now()
	var err error
	defer func() { r.observe("state", err, start) }()

	var row stateRow
	if err = r.db.WithContext(ctx).Where("key = ?", key).Take(&row).Error; err != nil {
		err = notFound(err)
		return "", fmt.Errorf("select state %q: %w", key, err)
	}
	return row.Value, nil
}

// SetState stores value under key.
func (r *Repository) SetState(ctx context.Context, key, value string) error {
	start := time.Now()
	var err error
	defer func() { r.observe("set_state", err, start) }()

	row := stateRow{Key: key, Value: value, UpdatedAt: time.Now().UTC()}
	err = r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&row).Error
	if err != nil {
		return fmt.Errorf("upsert state %q: %w", key, err)
	}
	return nil
}
