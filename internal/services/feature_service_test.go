package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"employee-prep/internal/entities"
)

func TestDaysSince(t *testing.T) {
	cases := []struct {
		start time.Time
		want  int64
	}{
		{time.Date(2022, 1, 15, 0, 0, 0, 0, time.UTC), 1082},
		{time.Date(2021, 11, 20, 0, 0, 0, 0, time.UTC), 1138},
		{time.Date(2023, 3, 10, 0, 0, 0, 0, time.UTC), 663},
		{time.Date(2020, 5, 1, 0, 0, 0, 0, time.UTC), 1706},
		{time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), 0},
		{time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC), 1},
		{time.Date(2025, 1, 11, 0, 0, 0, 0, time.UTC), -10},
		{time.Date(1900, 1, 1, 0, 0, 0, 0, time.UTC), 45656},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, DaysSince(c.start), c.start.Format("2006-01-02"))
	}
}

func TestDaysSince_IgnoresTimeOfDayAndZone(t *testing.T) {
	zone := time.FixedZone("UTC+5", 5*60*60)
	start := time.Date(2022, 1, 15, 23, 30, 0, 0, zone)
	assert.Equal(t, int64(1082), DaysSince(start))
}

func TestReferenceDateMatchesISO(t *testing.T) {
	assert.Equal(t, ReferenceDateISO, ReferenceDate.Format("2006-01-02"))
}

func TestAddTenureFeature(t *testing.T) {
	cleaned := []entities.CleanEmployee{
		{ID: 1, Name: "Alice", StartDate: time.Date(2022, 1, 15, 0, 0, 0, 0, time.UTC), PerformanceScore: 4.5},
		{ID: 2, Name: "Future", StartDate: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), PerformanceScore: 3},
	}

	featured := AddTenureFeature(cleaned)
	assert.Len(t, featured, 2)
	assert.Equal(t, int64(1082), featured[0].DaysSinceStart)
	assert.Equal(t, cleaned[0], featured[0].CleanEmployee, "остальные поля не меняются")
	assert.Negative(t, featured[1].DaysSinceStart, "будущая дата найма не ошибка")
}
