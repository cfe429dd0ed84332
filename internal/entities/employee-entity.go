package entities

import "github.com/aarondl/null/v8"

// Колонки реляционного источника сотрудников.
const (
	EmployeeColumnID         = "id"
	EmployeeColumnName       = "name"
	EmployeeColumnDepartment = "department"
	EmployeeColumnStartDate  = "start_date"
)

var EmployeeColumns = []string{
	EmployeeColumnID,
	EmployeeColumnName,
	EmployeeColumnDepartment,
	EmployeeColumnStartDate,
}

// Employee: строка таблицы employees как она пришла из БД.
type Employee struct {
	ID         int64       `json:"id" db:"id"`
	Name       string      `json:"name" db:"name"`
	Department null.String `json:"department" db:"department"`
	StartDate  null.String `json:"start_date" db:"start_date"`
}
