package postgresql_test

import (
	"context"
	"fmt"
	"os"
	"testing"

	"github.com/cendana-hr/attendance-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// testDB connects to the test database named by TEST_DATABASE_URL. The
// whole package is skipped when the variable is unset, so the suite stays
// runnable without a database.
func testDB(t *testing.T) *database.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping database tests")
	}

	db, err := database.NewPostgreSQLDB(dsn)
	require.NoError(t, err, "failed to connect to test database")
	t.Cleanup(db.Close)

	return db
}

// truncateTables resets the tables a test touches. The schema itself is
// expected to be migrated already.
func truncateTables(t *testing.T, db *database.DB) {
	t.Helper()
	ctx := context.Background()

	tables := []string{
		"delay_records",
		"daily_punch_records",
		"leave_requests",
		"employees",
	}
	for _, table := range tables {
		_, err := db.Exec(ctx, fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table))
		require.NoError(t, err, "failed to truncate table %s", table)
	}
}

// createTestEmployee inserts an employee scheduled 09:00-17:00 with a
// 12:00-13:00 break and returns its id.
func createTestEmployee(t *testing.T, db *database.DB) string {
	t.Helper()

	id := uuid.NewString()
	_, err := db.Exec(context.Background(), `
		INSERT INTO employees (
			id, employee_code, full_name, email,
			schedule_start_time, schedule_end_time, break_start_time, break_end_time,
			created_at, updated_at
		) VALUES ($1, $2, 'Test Employee', $3, '09:00', '17:00', '12:00', '13:00', NOW(), NOW())
	`, id, "EMP-"+id[:8], id[:8]+"@example.com")
	require.NoError(t, err)

	return id
}
