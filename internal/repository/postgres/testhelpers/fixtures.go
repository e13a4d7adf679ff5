package testhelpers

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
)

// LoadFixtures loads SQL fixture files into the database
func LoadFixtures(db *sql.DB, fixturesPath string, files []string) error {
	for _, file := range files {
		path := filepath.Join(fixturesPath, file)
		content, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read fixture %s: %w", file, err)
		}

		if _, err := db.Exec(string(content)); err != nil {
			return fmt.Errorf("load fixture %s: %w", file, err)
		}
	}

	return nil
}

// GetUserIDByEmployeeID returns the internal ID for a user given its employee id
func GetUserIDByEmployeeID(db *sql.DB, employeeID string) (int64, error) {
	var id int64
	err := db.QueryRowContext(context.Background(),
		"SELECT id FROM users WHERE employee_id = $1", employeeID).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("get user ID by employee id %s: %w", employeeID, err)
	}
	return id, nil
}

// GetPlanIDByName returns the internal ID for a route plan given its name
func GetPlanIDByName(db *sql.DB, name string) (int64, error) {
	var id int64
	err := db.QueryRowContext(context.Background(),
		"SELECT id FROM route_plans WHERE route_plan_name = $1", name).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("get route plan ID by name %s: %w", name, err)
	}
	return id, nil
}

// CountActivePlans returns how many plans are flagged active
func CountActivePlans(db *sql.DB) (int, error) {
	var n int
	err := db.QueryRowContext(context.Background(),
		"SELECT COUNT(*) FROM route_plans WHERE is_active").Scan(&n)
	return n, err
}
