// database/bootstrap.go
package database

import (
	"database/sql"
	"fmt"
	"log"
	"strings"

	sqlite "github.com/glebarez/sqlite" // CGO-free driver
	"gorm.io/gorm"

	"plantbuddy/entities"
)

func OpenSQLite(path string) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		log.Fatalf("open sqlite: %v", err)
	}

	// Run the snapshot-column migration BEFORE AutoMigrate so GORM doesn't
	// trip over the legacy activity_logs shape.
	if err := migrateActivityLogsAddSnapshot(db); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	if err := db.AutoMigrate(
		&entities.Plant{},
		&entities.CareSchedule{},
		&entities.ActivityLog{},
		&entities.CareTip{},
	); err != nil {
		log.Fatalf("automigrate: %v", err)
	}

	return db
}

// migrateActivityLogsAddSnapshot rebuilds activity_logs if it predates the
// prev_due_date snapshot column. Early databases logged actions without the
// pre-action due date, which undo needs; SQLite can add the column in place,
// but those installs also lack the integer primary key, so rebuild the table
// the same way either way.
func migrateActivityLogsAddSnapshot(db *gorm.DB) error {
	var tbl string
	if err := db.Raw(`SELECT name FROM sqlite_master WHERE type='table' AND name='activity_logs'`).Scan(&tbl).Error; err != nil {
		return fmt.Errorf("check table exist: %w", err)
	}
	if tbl == "" {
		// fresh DB, nothing to do
		return nil
	}

	type colInfo struct {
		Cid       int
		Name      string
		Type      string
		NotNull   int
		DfltValue sql.NullString
		Pk        int
	}
	var cols []colInfo
	if err := db.Raw(`PRAGMA table_info(activity_logs)`).Scan(&cols).Error; err != nil {
		return fmt.Errorf("table_info: %w", err)
	}

	oldCols := map[string]bool{}
	hasSnapshot := false
	hasIDasPK := false
	for _, c := range cols {
		name := strings.ToLower(c.Name)
		oldCols[name] = true
		if name == "prev_due_date" {
			hasSnapshot = true
		}
		if name == "log_id" && c.Pk == 1 {
			hasIDasPK = true
		}
	}
	if hasSnapshot && hasIDasPK {
		// already good
		return nil
	}

	createSQL := `
CREATE TABLE activity_logs_new (
    log_id INTEGER PRIMARY KEY AUTOINCREMENT,
    plant_id INTEGER,
    schedule_id INTEGER,
    action_type TEXT,
    action_at DATETIME,
    notes TEXT,
    prev_due_date DATETIME,
    created_at DATETIME
);
`
	sel := func(name string) string {
		if oldCols[name] {
			return name
		}
		return "NULL AS " + name
	}
	copySQL := fmt.Sprintf(`
INSERT INTO activity_logs_new (plant_id, schedule_id, action_type, action_at, notes, prev_due_date, created_at)
SELECT %s, %s, %s, %s, %s, %s, %s FROM activity_logs;
`,
		sel("plant_id"),
		sel("schedule_id"),
		sel("action_type"),
		sel("action_at"),
		sel("notes"),
		sel("prev_due_date"),
		sel("created_at"),
	)

	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(`PRAGMA foreign_keys=OFF`).Error; err != nil {
			return err
		}
		if err := tx.Exec(createSQL).Error; err != nil {
			return err
		}
		if err := tx.Exec(copySQL).Error; err != nil {
			return err
		}
		if err := tx.Exec(`DROP TABLE activity_logs`).Error; err != nil {
			return err
		}
		if err := tx.Exec(`ALTER TABLE activity_logs_new RENAME TO activity_logs`).Error; err != nil {
			return err
		}
		if err := tx.Exec(`PRAGMA foreign_keys=ON`).Error; err != nil {
			return err
		}
		return nil
	})
}
