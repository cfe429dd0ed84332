package entities

import "github.com/aarondl/null/v8"

const (
	PerformanceColumnEmployeeID = "employee_id"
	PerformanceColumnScore      = "performance_score"
)

var PerformanceColumns = []string{
	PerformanceColumnEmployeeID,
	PerformanceColumnScore,
}

// Performance: строка файла с оценками. Score может отсутствовать.
type Performance struct {
	EmployeeID int64        `json:"employee_id"`
	Score      null.Float64 `json:"performance_score"`
}
