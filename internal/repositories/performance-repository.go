package repositories

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/aarondl/null/v8"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"employee-prep/internal/entities"
	apperrors "employee-prep/pkg/errors"
)

const stageRead = "read"

// PerformanceFileRepository читает оценки из CSV или первого листа XLSX.
type PerformanceFileRepository struct {
	logger *zap.Logger
}

func NewPerformanceFileRepository(logger *zap.Logger) PerformanceRepositoryInterface {
	return &PerformanceFileRepository{logger: logger}
}

func (r *PerformanceFileRepository) GetPerformance(ctx context.Context, path string) ([]entities.Performance, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var rows [][]string
	var err error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		rows, err = readXLSXRows(path)
	case ".csv", ".txt", "":
		rows, err = readCSVRows(path)
	default:
		return nil, fmt.Errorf("%s: %w", path, apperrors.ErrUnsupportedFormat)
	}
	if err != nil {
		return nil, err
	}

	performance, err := parsePerformanceRows(path, rows)
	if err != nil {
		return nil, err
	}
	r.logger.Debug("Оценки загружены из файла", zap.String("path", path), zap.Int("rows", len(performance)))
	return performance, nil
}

func readCSVRows(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("ошибка открытия файла: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	var rows [][]string
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("ошибка чтения CSV %s: %w", path, err)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func readXLSXRows(path string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("ошибка открытия файла: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%s: %w", path, apperrors.ErrEmptySource)
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("ошибка чтения листа %q: %w", sheets[0], err)
	}
	return rows, nil
}

// parsePerformanceRows: первая строка считается заголовком, лишние колонки игнорируются.
// Пустая оценка (или NaN) считается отсутствующей.
func parsePerformanceRows(source string, rows [][]string) ([]entities.Performance, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%s: %w", source, apperrors.ErrEmptySource)
	}

	header := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		header[i] = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))
	}
	if err := RequireColumns(source, header, entities.PerformanceColumns); err != nil {
		return nil, err
	}
	idIdx := indexOf(header, entities.PerformanceColumnEmployeeID)
	scoreIdx := indexOf(header, entities.PerformanceColumnScore)

	performance := make([]entities.Performance, 0, len(rows)-1)
	for i, row := range rows[1:] {
		lineNum := i + 2
		rawID := safeGet(row, idIdx)
		if rawID == "" && safeGet(row, scoreIdx) == "" {
			continue
		}

		id, err := parseEmployeeID(rawID)
		if err != nil {
			return nil, apperrors.NewBatchDataError(stageRead, "%s строка %d: некорректный employee_id %q", source, lineNum, rawID)
		}

		score, err := parseScore(safeGet(row, scoreIdx))
		if err != nil {
			return nil, apperrors.NewDataError(stageRead, id, "%s строка %d: некорректный performance_score", source, lineNum)
		}
		performance = append(performance, entities.Performance{EmployeeID: id, Score: score})
	}
	return performance, nil
}

// parseEmployeeID принимает и "7", и "7.0" (pandas пишет целые с пропусками как float).
func parseEmployeeID(raw string) (int64, error) {
	if id, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return id, nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || f != math.Trunc(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("не целое: %q", raw)
	}
	return int64(f), nil
}

func parseScore(raw string) (null.Float64, error) {
	if raw == "" || strings.EqualFold(raw, "nan") || strings.EqualFold(raw, "null") {
		return null.Float64{}, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return null.Float64{}, fmt.Errorf("не число: %q", raw)
	}
	return null.Float64From(v), nil
}

func indexOf(header []string, name string) int {
	for i, h := range header {
		if h == name {
			return i
		}
	}
	return -1
}

func safeGet(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}
