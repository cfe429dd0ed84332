package services

import (
	"time"

	"employee-prep/internal/entities"
)

// ReferenceDateISO: фиксированная дата отсчёта стажа. Не зависит от текущего времени.
const ReferenceDateISO = "2025-01-01"

var ReferenceDate = time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)

const secondsPerDay = 24 * 60 * 60

// DaysSince: целое число дней от start до ReferenceDate.
// Дата после ReferenceDate даёт отрицательное значение.
func DaysSince(start time.Time) int64 {
	s := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	return (ReferenceDate.Unix() - s.Unix()) / secondsPerDay
}

// AddTenureFeature добавляет days_since_start к каждой строке, остальное не трогает.
func AddTenureFeature(cleaned []entities.CleanEmployee) []entities.FeaturedEmployee {
	featured := make([]entities.FeaturedEmployee, 0, len(cleaned))
	for _, c := range cleaned {
		featured = append(featured, entities.FeaturedEmployee{
			CleanEmployee:  c,
			DaysSinceStart: DaysSince(c.StartDate),
		})
	}
	return featured
}
