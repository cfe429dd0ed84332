package utils

import (
	"net/http"

	apperrors "employee-prep/pkg/errors"
)

var ErrorList = map[error]int{
	apperrors.ErrNotFound:          http.StatusNotFound,
	apperrors.ErrBadRequest:        http.StatusBadRequest,
	apperrors.ErrEmptySource:       http.StatusUnprocessableEntity,
	apperrors.ErrUnsupportedFormat: http.StatusBadRequest,
}
