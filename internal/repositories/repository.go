package repositories

import (
	"context"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"employee-prep/internal/entities"
	apperrors "employee-prep/pkg/errors"
)

// EmployeeRepositoryInterface: реляционный источник сотрудников.
type EmployeeRepositoryInterface interface {
	GetEmployees(ctx context.Context) ([]entities.Employee, error)
}

// PerformanceRepositoryInterface: плоский файл с оценками.
type PerformanceRepositoryInterface interface {
	GetPerformance(ctx context.Context, path string) ([]entities.Performance, error)
}

func contains(list []string, item string) bool {
	for _, val := range list {
		if strings.EqualFold(strings.TrimSpace(val), item) {
			return true
		}
	}
	return false
}

// RequireColumns возвращает SchemaError для первой обязательной колонки, которой нет в available.
func RequireColumns(source string, available []string, required []string) error {
	for _, col := range required {
		if !contains(available, col) {
			return apperrors.NewSchemaError(source, col)
		}
	}
	return nil
}

// employeesSelect строит выборку сотрудников в детерминированном порядке.
// dateExpr позволяет драйверу привести start_date к тексту.
func employeesSelect(table string, dateExpr string, format sq.PlaceholderFormat) (string, []interface{}, error) {
	return sq.Select(
		entities.EmployeeColumnID,
		entities.EmployeeColumnName,
		entities.EmployeeColumnDepartment,
		dateExpr,
	).
		From(table).
		OrderBy(entities.EmployeeColumnID + " ASC").
		PlaceholderFormat(format).
		ToSql()
}
