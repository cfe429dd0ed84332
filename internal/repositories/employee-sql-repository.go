package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/aarondl/null/v8"
	"go.uber.org/zap"

	"employee-prep/internal/entities"
)

// EmployeeSQLRepository читает сотрудников через database/sql (SQLite).
type EmployeeSQLRepository struct {
	storage *sql.DB
	table   string
	logger  *zap.Logger
}

func NewEmployeeSQLRepository(storage *sql.DB, table string, logger *zap.Logger) EmployeeRepositoryInterface {
	return &EmployeeSQLRepository{storage: storage, table: table, logger: logger}
}

func (r *EmployeeSQLRepository) tableColumns(ctx context.Context) ([]string, error) {
	query, args := "SELECT name FROM pragma_table_info(?)", []interface{}{r.table}
	if idx := strings.LastIndex(r.table, "."); idx >= 0 {
		query, args = "SELECT name FROM pragma_table_info(?, ?)", []interface{}{r.table[idx+1:], r.table[:idx]}
	}
	rows, err := r.storage.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query columns for table %s: %w", r.table, err)
	}
	defer rows.Close()

	var cols []string
	for rows.Next() {
		var colName string
		if err := rows.Scan(&colName); err != nil {
			return nil, fmt.Errorf("scanning column name for table %s: %w", r.table, err)
		}
		cols = append(cols, colName)
	}
	return cols, rows.Err()
}

func (r *EmployeeSQLRepository) GetEmployees(ctx context.Context) ([]entities.Employee, error) {
	cols, err := r.tableColumns(ctx)
	if err != nil {
		return nil, err
	}
	if err := RequireColumns(r.table, cols, entities.EmployeeColumns); err != nil {
		return nil, err
	}

	query, args, err := employeesSelect(r.table, entities.EmployeeColumnStartDate, sq.Question)
	if err != nil {
		return nil, err
	}
	rows, err := r.storage.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("ошибка выборки сотрудников: %w", err)
	}
	defer rows.Close()

	employees := make([]entities.Employee, 0)
	for rows.Next() {
		var e entities.Employee
		var name null.String
		if err := rows.Scan(&e.ID, &name, &e.Department, &e.StartDate); err != nil {
			return nil, fmt.Errorf("ошибка сканирования employee: %w", err)
		}
		e.Name = name.String
		employees = append(employees, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	r.logger.Debug("Сотрудники загружены из SQLite", zap.String("table", r.table), zap.Int("rows", len(employees)))
	return employees, nil
}
