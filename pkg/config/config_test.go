package config

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"employee-prep/pkg/customvalidator"
)

func newValidator(t *testing.T) *validator.Validate {
	t.Helper()
	v := validator.New()
	require.NoError(t, customvalidator.RegisterCustomValidations(v))
	return v
}

func TestNew_InvalidBoolFallsBack(t *testing.T) {
	t.Setenv("DB_DRIVER", DriverPostgres)
	t.Setenv("EMPLOYEES_TABLE", "employees")
	t.Setenv("OUTPUT_PATH", "prepared_data.csv")
	t.Setenv("DUPLICATE_POLICY", "reject")
	t.Setenv("KEEP_DEPARTMENT", "not-a-bool")
	t.Setenv("RUN_MODE", ModeOnce)

	cfg := New()
	assert.False(t, cfg.Pipeline.KeepDepartment, "некорректное булево значение: используется значение по умолчанию")
	assert.NoError(t, cfg.Validate(newValidator(t)))
}

func TestNew_FromEnv(t *testing.T) {
	t.Setenv("DB_DRIVER", DriverSQLite)
	t.Setenv("DATABASE_URL", "file:test.db")
	t.Setenv("EMPLOYEES_TABLE", "hr.employees")
	t.Setenv("PERFORMANCE_PATH", "scores.xlsx")
	t.Setenv("OUTPUT_PATH", "out/prepared.xlsx")
	t.Setenv("DUPLICATE_POLICY", "last")
	t.Setenv("KEEP_DEPARTMENT", "true")
	t.Setenv("RUN_MODE", ModeServe)
	t.Setenv("LOG_OUTPUT", "stdout,./app.log")

	cfg := New()
	require.NoError(t, cfg.Validate(newValidator(t)))
	assert.Equal(t, DriverSQLite, cfg.Database.Driver)
	assert.Equal(t, "hr.employees", cfg.Database.EmployeesTable)
	assert.Equal(t, "last", cfg.Pipeline.DuplicatePolicy)
	assert.True(t, cfg.Pipeline.KeepDepartment)
	assert.Equal(t, []string{"stdout", "./app.log"}, cfg.Log.OutputPaths)
}

func TestValidate_RejectsBadValues(t *testing.T) {
	v := newValidator(t)
	valid := func() *Config {
		return &Config{
			Server:   ServerConfig{Port: "8080", Mode: ModeOnce},
			Database: DatabaseConfig{Driver: DriverPostgres, DSN: "postgres://x", EmployeesTable: "employees"},
			Pipeline: PipelineConfig{PerformancePath: "p.csv", OutputPath: "o.csv", DuplicatePolicy: "reject"},
			Log:      LogConfig{Level: "info", OutputPaths: []string{"stdout"}},
		}
	}
	require.NoError(t, valid().Validate(v))

	cases := map[string]func(c *Config){
		"driver":      func(c *Config) { c.Database.Driver = "mysql" },
		"table":       func(c *Config) { c.Database.EmployeesTable = "employees; DROP TABLE x" },
		"policy":      func(c *Config) { c.Pipeline.DuplicatePolicy = "sum" },
		"output":      func(c *Config) { c.Pipeline.OutputPath = "out.parquet" },
		"mode":        func(c *Config) { c.Server.Mode = "cron" },
		"port":        func(c *Config) { c.Server.Port = "http" },
		"performance": func(c *Config) { c.Pipeline.PerformancePath = "" },
	}
	for name, mutate := range cases {
		c := valid()
		mutate(c)
		assert.Error(t, c.Validate(v), name)
	}
}
