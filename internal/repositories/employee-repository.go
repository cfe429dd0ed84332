package repositories

import (
	"context"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/aarondl/null/v8"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"employee-prep/internal/entities"
)

// EmployeeRepository читает сотрудников из PostgreSQL.
type EmployeeRepository struct {
	storage *pgxpool.Pool
	table   string
	logger  *zap.Logger
}

func NewEmployeeRepository(storage *pgxpool.Pool, table string, logger *zap.Logger) EmployeeRepositoryInterface {
	return &EmployeeRepository{storage: storage, table: table, logger: logger}
}

func scanEmployee(row pgx.Row) (*entities.Employee, error) {
	var e entities.Employee
	var name null.String
	if err := row.Scan(&e.ID, &name, &e.Department, &e.StartDate); err != nil {
		return nil, fmt.Errorf("ошибка сканирования employee: %w", err)
	}
	e.Name = name.String
	return &e, nil
}

// tableColumns читает список колонок таблицы из information_schema.
func (r *EmployeeRepository) tableColumns(ctx context.Context) ([]string, error) {
	schema, table := "", r.table
	if idx := strings.LastIndex(r.table, "."); idx >= 0 {
		schema, table = r.table[:idx], r.table[idx+1:]
	}
	builder := sq.Select("column_name").
		From("information_schema.columns").
		Where(sq.Eq{"table_name": table}).
		OrderBy("ordinal_position").
		PlaceholderFormat(sq.Dollar)
	if schema != "" {
		builder = builder.Where(sq.Eq{"table_schema": schema})
	}
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.storage.Query(ctx, query, args...)
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

func (r *EmployeeRepository) GetEmployees(ctx context.Context) ([]entities.Employee, error) {
	cols, err := r.tableColumns(ctx)
	if err != nil {
		return nil, err
	}
	if err := RequireColumns(r.table, cols, entities.EmployeeColumns); err != nil {
		return nil, err
	}

	query, args, err := employeesSelect(r.table, "start_date::text AS start_date", sq.Dollar)
	if err != nil {
		return nil, err
	}
	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("ошибка выборки сотрудников: %w", err)
	}
	defer rows.Close()

	employees := make([]entities.Employee, 0)
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		employees = append(employees, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	r.logger.Debug("Сотрудники загружены из PostgreSQL", zap.String("table", r.table), zap.Int("rows", len(employees)))
	return employees, nil
}
