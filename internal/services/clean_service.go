package services

import (
	"strings"
	"time"

	"employee-prep/internal/entities"
	apperrors "employee-prep/pkg/errors"
)

const stageClean = "clean"

// Форматы, в которых start_date приходит из Postgres (::text), SQLite и CSV.
// timestamptz::text отдаёт смещение ("+03" или "+05:30"); дата берётся в этом смещении, без перевода в UTC.
var startDateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04:05-07",
	"2006-01-02 15:04:05-07:00",
	"2006-01-02T15:04:05",
	time.RFC3339,
}

// CleanEmployees заполняет пропущенные оценки средним по пакету и разбирает даты.
// Среднее считается один раз по всем присутствующим оценкам. Порядок строк сохраняется.
func CleanEmployees(merged []entities.MergedEmployee) ([]entities.CleanEmployee, error) {
	var sum float64
	var present, missing int
	for _, m := range merged {
		if m.PerformanceScore.Valid {
			sum += m.PerformanceScore.Float64
			present++
		} else {
			missing++
		}
	}
	if missing > 0 && present == 0 {
		return nil, apperrors.NewBatchDataError(stageClean, "нет ни одной оценки: невозможно вычислить среднее для %d строк", missing)
	}

	var mean float64
	if present > 0 {
		mean = sum / float64(present)
	}

	cleaned := make([]entities.CleanEmployee, 0, len(merged))
	for _, m := range merged {
		startDate, err := ParseStartDate(m.ID, m.StartDate.String, m.StartDate.Valid)
		if err != nil {
			return nil, err
		}

		row := entities.CleanEmployee{
			ID:               m.ID,
			Name:             m.Name,
			Department:       m.Department,
			StartDate:        startDate,
			PerformanceScore: m.PerformanceScore.Float64,
		}
		if !m.PerformanceScore.Valid {
			row.PerformanceScore = mean
			row.ScoreImputed = true
		}
		cleaned = append(cleaned, row)
	}
	return cleaned, nil
}

// ParseStartDate приводит строку к календарной дате (полночь UTC) в том виде, как она записана.
// Неразборчивое или пустое значение: DataError с id сотрудника.
func ParseStartDate(employeeID int64, raw string, valid bool) (time.Time, error) {
	value := strings.TrimSpace(raw)
	if !valid || value == "" {
		return time.Time{}, apperrors.NewDataError(stageClean, employeeID, "start_date отсутствует")
	}
	for _, layout := range startDateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
		}
	}
	return time.Time{}, apperrors.NewDataError(stageClean, employeeID, "не удалось разобрать start_date %q", value)
}
