package errors

import (
	"fmt"

	"github.com/aarondl/null/v8"
)

var (
	// Общие
	ErrNotFound   = fmt.Errorf("запись не найдена")
	ErrBadRequest = fmt.Errorf("неверный запрос")

	// Источники и выгрузка
	ErrEmptySource       = fmt.Errorf("источник не содержит строки заголовка")
	ErrUnsupportedFormat = fmt.Errorf("неподдерживаемый формат файла")
)

// SchemaError: во входном источнике нет обязательной колонки.
type SchemaError struct {
	Source string
	Column string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("ошибка схемы: в источнике %q отсутствует обязательная колонка %q", e.Source, e.Column)
}

func NewSchemaError(source, column string) error {
	return &SchemaError{Source: source, Column: column}
}

// DataError: значение нарушает построчное или пакетное условие.
// EmployeeID не задан, если ошибка относится ко всему пакету.
type DataError struct {
	Stage      string
	EmployeeID null.Int64
	Reason     string
}

func (e *DataError) Error() string {
	if e.EmployeeID.Valid {
		return fmt.Sprintf("ошибка данных [%s] сотрудник id=%d: %s", e.Stage, e.EmployeeID.Int64, e.Reason)
	}
	return fmt.Sprintf("ошибка данных [%s]: %s", e.Stage, e.Reason)
}

func NewDataError(stage string, employeeID int64, format string, args ...interface{}) error {
	return &DataError{Stage: stage, EmployeeID: null.Int64From(employeeID), Reason: fmt.Sprintf(format, args...)}
}

func NewBatchDataError(stage string, format string, args ...interface{}) error {
	return &DataError{Stage: stage, Reason: fmt.Sprintf(format, args...)}
}

// Кастомные типы ошибок
type InvalidInputError struct {
	Message string
}

func (e *InvalidInputError) Error() string { return e.Message }

func NewInvalidInputError(format string, args ...interface{}) error {
	return &InvalidInputError{Message: fmt.Sprintf(format, args...)}
}
