package database

import (
	"fmt"

	"github.com/yukikurage/task-tracker/internal/models"
	"gorm.io/gorm"
)

// AddIndexes adds the composite indexes the owner-scoped queries rely on.
// Single-column indexes are declared on the models.
func AddIndexes(db *gorm.DB) error {
	indexes := []struct {
		model   any
		name    string
		columns string
	}{
		// list(owner, status) ordered by due date
		{&models.Task{}, "idx_tasks_owner_status_due", "owner_id, status, due_date"},
		// get/update/delete by (id, owner)
		{&models.Task{}, "idx_tasks_owner_id_id", "owner_id, id"},
	}

	migrator := db.Migrator()
	for _, idx := range indexes {
		if migrator.HasIndex(idx.model, idx.name) {
			continue
		}

		stmt := &gorm.Statement{DB: db}
		if err := stmt.Parse(idx.model); err != nil {
			return fmt.Errorf("failed to parse model for index %s: %w", idx.name, err)
		}

		sql := fmt.Sprintf("CREATE INDEX %s ON %s (%s)", idx.name, stmt.Schema.Table, idx.columns)
		if err := db.Exec(sql).Error; err != nil {
			return fmt.Errorf("failed to create index %s: %w", idx.name, err)
		}
	}

	return nil
}
