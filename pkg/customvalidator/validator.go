// Файл: pkg/customvalidator/validators.go

package customvalidator

import (
	"path/filepath"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var tableNameRegex = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*(\.[A-Za-z_][A-Za-z0-9_]*)?$`)

// RegisterCustomValidations регистрирует кастомные правила в переданном валидаторе.
func RegisterCustomValidations(v *validator.Validate) error {
	if err := v.RegisterValidation("table_name", isTableName); err != nil {
		return err
	}
	if err := v.RegisterValidation("dup_policy", isDuplicatePolicy); err != nil {
		return err
	}
	if err := v.RegisterValidation("prepared_output", isPreparedOutput); err != nil {
		return err
	}
	return nil
}

// Имя таблицы подставляется в SQL как идентификатор, поэтому только [schema.]name.
func isTableName(fl validator.FieldLevel) bool {
	return tableNameRegex.MatchString(fl.Field().String())
}

func isDuplicatePolicy(fl validator.FieldLevel) bool {
	switch strings.ToLower(fl.Field().String()) {
	case "reject", "first", "last":
		return true
	}
	return false
}

func isPreparedOutput(fl validator.FieldLevel) bool {
	switch strings.ToLower(filepath.Ext(fl.Field().String())) {
	case ".csv", ".xlsx":
		return true
	}
	return false
}
