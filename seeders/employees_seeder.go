package seeders

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"

	sq "github.com/Masterminds/squirrel"

	"employee-prep/internal/entities"
	"employee-prep/pkg/types"
)

func seedEmployees(ctx context.Context, db *sql.DB, table string, format sq.PlaceholderFormat) error {
	builder := sq.Insert(table).
		Columns(entities.EmployeeColumns...).
		PlaceholderFormat(format).
		Suffix("ON CONFLICT (id) DO NOTHING")
	for _, e := range sampleEmployees {
		builder = builder.Values(e.ID, e.Name, e.Department, e.StartDate)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return err
	}
	if _, err := db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("ошибка наполнения %s: %w", table, err)
	}
	return nil
}

func performanceTable() *types.Table {
	table := types.NewTable(entities.PerformanceColumns, len(samplePerformance))
	for _, p := range samplePerformance {
		score := ""
		if p.Score.Valid {
			score = strconv.FormatFloat(p.Score.Float64, 'f', -1, 64)
		}
		table.Rows = append(table.Rows, []string{strconv.FormatInt(p.EmployeeID, 10), score})
	}
	return table
}
