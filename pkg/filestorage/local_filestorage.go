// pkg/filestorage/local_filestorage.go

package filestorage

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	apperrors "employee-prep/pkg/errors"
	"employee-prep/pkg/types"
)

const defaultSheet = "prepared_data"

type LocalTableStorage struct {
	textColumns map[string]struct{}
	logger      *zap.Logger
}

// NewLocalTableStorage: textColumns в XLSX всегда пишутся строкой, остальные числом, если разбираются.
func NewLocalTableStorage(logger *zap.Logger, textColumns ...string) TableStorageInterface {
	set := make(map[string]struct{}, len(textColumns))
	for _, c := range textColumns {
		set[c] = struct{}{}
	}
	return &LocalTableStorage{textColumns: set, logger: logger}
}

func (s *LocalTableStorage) Save(ctx context.Context, table *types.Table, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".csv" && ext != ".xlsx" {
		return fmt.Errorf("%s: %w", path, apperrors.ErrUnsupportedFormat)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("не удалось создать директорию для выгрузки: %w", err)
	}

	// Пишем во временный файл рядом с целевым и переименовываем: частичной выгрузки не бывает.
	tmpPath := filepath.Join(dir, fmt.Sprintf(".%s-%s%s", strings.TrimSuffix(filepath.Base(path), ext), uuid.New().String(), ext))
	var err error
	if ext == ".xlsx" {
		err = s.writeXLSX(table, tmpPath)
	} else {
		err = writeCSV(table, tmpPath)
	}
	if err != nil {
		_ = os.Remove(tmpPath)
		return err
	}

	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("не удалось переместить выгрузку в %s: %w", path, err)
	}

	s.logger.Info("Таблица сохранена", zap.String("path", path), zap.Int("rows", len(table.Rows)), zap.Int("columns", len(table.Header)))
	return nil
}

func writeCSV(table *types.Table, path string) (err error) {
	dst, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := dst.Close(); err == nil {
			err = cerr
		}
	}()

	w := csv.NewWriter(dst)
	if err := w.Write(table.Header); err != nil {
		return err
	}
	if err := w.WriteAll(table.Rows); err != nil {
		return fmt.Errorf("ошибка записи CSV: %w", err)
	}
	return nil
}

func (s *LocalTableStorage) writeXLSX(table *types.Table, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", defaultSheet); err != nil {
		return err
	}
	header := make([]interface{}, len(table.Header))
	for i, h := range table.Header {
		header[i] = h
	}
	if err := f.SetSheetRow(defaultSheet, "A1", &header); err != nil {
		return err
	}
	if style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}}); err == nil {
		lastCell, _ := excelize.CoordinatesToCellName(len(table.Header), 1)
		_ = f.SetCellStyle(defaultSheet, "A1", lastCell, style)
	}

	for i, row := range table.Rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		values := s.xlsxRow(table.Header, row)
		if err := f.SetSheetRow(defaultSheet, cell, &values); err != nil {
			return err
		}
	}
	return f.SaveAs(path)
}

func (s *LocalTableStorage) xlsxRow(header []string, row []string) []interface{} {
	values := make([]interface{}, len(row))
	for i, v := range row {
		values[i] = v
		if _, text := s.textColumns[header[i]]; text {
			continue
		}
		if n, err := strconv.ParseFloat(v, 64); err == nil {
			values[i] = n
		}
	}
	return values
}
