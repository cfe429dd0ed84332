package entities

import (
	"time"

	"github.com/aarondl/null/v8"
)

// Колонки итоговой выгрузки.
const (
	PreparedColumnPerformanceScore = "performance_score"
	PreparedColumnDaysSinceStart   = "days_since_start"
	DepartmentIndicatorPrefix      = "dept_"
)

// MergedEmployee: сотрудник после левого соединения с оценками.
type MergedEmployee struct {
	Employee
	PerformanceScore null.Float64 `json:"performance_score"`
}

// CleanEmployee: запись после очистки, оценка всегда есть, дата разобрана.
type CleanEmployee struct {
	ID               int64       `json:"id"`
	Name             string      `json:"name"`
	Department       null.String `json:"department"`
	StartDate        time.Time   `json:"start_date"`
	PerformanceScore float64     `json:"performance_score"`
	ScoreImputed     bool        `json:"score_imputed"`
}

// FeaturedEmployee: очищенная строка с производным стажем в днях.
type FeaturedEmployee struct {
	CleanEmployee
	DaysSinceStart int64 `json:"days_since_start"`
}
