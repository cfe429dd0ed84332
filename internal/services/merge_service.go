package services

import (
	"fmt"
	"strings"

	"employee-prep/internal/entities"
	apperrors "employee-prep/pkg/errors"
)

const stageMerge = "merge"

// DuplicatePolicy: что делать, если у сотрудника несколько строк оценок.
type DuplicatePolicy string

const (
	DuplicateReject DuplicatePolicy = "reject"
	DuplicateFirst  DuplicatePolicy = "first"
	DuplicateLast   DuplicatePolicy = "last"
)

func ParseDuplicatePolicy(value string) (DuplicatePolicy, error) {
	switch p := DuplicatePolicy(strings.ToLower(strings.TrimSpace(value))); p {
	case DuplicateReject, DuplicateFirst, DuplicateLast:
		return p, nil
	case "":
		return DuplicateReject, nil
	}
	return "", apperrors.NewInvalidInputError("неизвестная политика дубликатов: %q", value)
}

// MergeEmployeePerformance выполняет левое соединение оценок к сотрудникам по id.
// Каждый сотрудник попадает в результат ровно один раз и в исходном порядке;
// сотрудники без оценки получают отсутствующий score (не ноль).
func MergeEmployeePerformance(employees []entities.Employee, performance []entities.Performance, policy DuplicatePolicy) ([]entities.MergedEmployee, error) {
	known := make(map[int64]struct{}, len(employees))
	for _, e := range employees {
		if _, dup := known[e.ID]; dup {
			return nil, apperrors.NewDataError(stageMerge, e.ID, "идентификатор сотрудника встречается более одного раза")
		}
		known[e.ID] = struct{}{}
	}

	scores, err := indexPerformance(performance, known, policy)
	if err != nil {
		return nil, err
	}

	merged := make([]entities.MergedEmployee, 0, len(employees))
	for _, e := range employees {
		row := entities.MergedEmployee{Employee: e}
		if p, ok := scores[e.ID]; ok {
			row.PerformanceScore = p.Score
		}
		merged = append(merged, row)
	}
	return merged, nil
}

// indexPerformance оставляет только строки известных сотрудников.
// Дубликаты по id, которого нет среди сотрудников, ни к чему не присоединяются и не считаются ошибкой.
func indexPerformance(performance []entities.Performance, known map[int64]struct{}, policy DuplicatePolicy) (map[int64]entities.Performance, error) {
	switch policy {
	case DuplicateReject, DuplicateFirst, DuplicateLast:
	default:
		return nil, fmt.Errorf("политика дубликатов %q: %w", policy, apperrors.ErrBadRequest)
	}

	index := make(map[int64]entities.Performance, len(performance))
	for _, p := range performance {
		if _, ok := known[p.EmployeeID]; !ok {
			continue
		}
		if _, exists := index[p.EmployeeID]; exists {
			if policy == DuplicateReject {
				return nil, apperrors.NewDataError(stageMerge, p.EmployeeID, "несколько строк оценок для одного сотрудника")
			}
			if policy == DuplicateFirst {
				continue
			}
		}
		index[p.EmployeeID] = p
	}
	return index, nil
}
