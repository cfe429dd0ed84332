package services

import (
	"strconv"
	"strings"

	"employee-prep/internal/entities"
	apperrors "employee-prep/pkg/errors"
	"employee-prep/pkg/types"
)

const stageEncode = "encode"

const outputDateLayout = "2006-01-02"

// EncodeOptions: KeepDepartment оставляет исходную колонку department рядом с индикаторами.
type EncodeOptions struct {
	KeepDepartment bool
}

// DepartmentColumn: имя индикаторной колонки для отдела.
func DepartmentColumn(department string) string {
	return entities.DepartmentIndicatorPrefix + department
}

// EncodeDepartments раскладывает department в колонки dept_<Label> (0/1) и собирает итоговую таблицу.
// Первый проход собирает отделы в порядке первого появления, второй формирует строки.
func EncodeDepartments(featured []entities.FeaturedEmployee, opts EncodeOptions) (*types.Table, []string, error) {
	departments := make([]string, 0)
	position := make(map[string]int)
	for _, f := range featured {
		label, err := departmentLabel(f)
		if err != nil {
			return nil, nil, err
		}
		if _, ok := position[label]; !ok {
			position[label] = len(departments)
			departments = append(departments, label)
		}
	}

	header := []string{entities.EmployeeColumnID, entities.EmployeeColumnName}
	if opts.KeepDepartment {
		header = append(header, entities.EmployeeColumnDepartment)
	}
	header = append(header,
		entities.EmployeeColumnStartDate,
		entities.PreparedColumnPerformanceScore,
		entities.PreparedColumnDaysSinceStart,
	)
	indicatorOffset := len(header)
	for _, d := range departments {
		header = append(header, DepartmentColumn(d))
	}

	table := types.NewTable(header, len(featured))
	for _, f := range featured {
		row := make([]string, 0, len(header))
		row = append(row, strconv.FormatInt(f.ID, 10), f.Name)
		if opts.KeepDepartment {
			row = append(row, f.Department.String)
		}
		row = append(row,
			f.StartDate.Format(outputDateLayout),
			strconv.FormatFloat(f.PerformanceScore, 'f', -1, 64),
			strconv.FormatInt(f.DaysSinceStart, 10),
		)
		for range departments {
			row = append(row, "0")
		}
		row[indicatorOffset+position[f.Department.String]] = "1"
		table.Rows = append(table.Rows, row)
	}
	return table, departments, nil
}

func departmentLabel(f entities.FeaturedEmployee) (string, error) {
	if !f.Department.Valid || strings.TrimSpace(f.Department.String) == "" {
		return "", apperrors.NewDataError(stageEncode, f.ID, "department отсутствует")
	}
	return f.Department.String, nil
}
