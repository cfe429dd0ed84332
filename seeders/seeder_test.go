package seeders

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"employee-prep/internal/repositories"
	"employee-prep/pkg/database/sqlite"
)

func TestSeedEmployees_IsRepeatable(t *testing.T) {
	ctx := context.Background()
	db, err := sqlite.ConnectDB(ctx, filepath.Join(t.TempDir(), "seed.db"), zap.NewNop())
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, SeedEmployees(ctx, db, goose.DialectSQLite3, "employees", zap.NewNop()))
	require.NoError(t, SeedEmployees(ctx, db, goose.DialectSQLite3, "employees", zap.NewNop()))

	employees, err := repositories.NewEmployeeSQLRepository(db, "employees", zap.NewNop()).GetEmployees(ctx)
	require.NoError(t, err)
	require.Len(t, employees, len(sampleEmployees))
	assert.Equal(t, "Alice", employees[0].Name)
	assert.Equal(t, "2020-05-01", employees[3].StartDate.String)
}

func TestSeedPerformanceFile(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "employee_performance.csv")
	require.NoError(t, SeedPerformanceFile(ctx, path, zap.NewNop()))

	perf, err := repositories.NewPerformanceFileRepository(zap.NewNop()).GetPerformance(ctx, path)
	require.NoError(t, err)
	require.Len(t, perf, len(samplePerformance))
	assert.Equal(t, int64(4), perf[2].EmployeeID)
	assert.Equal(t, 4.1, perf[2].Score.Float64)
}
