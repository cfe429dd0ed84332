package utils

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	apperrors "employee-prep/pkg/errors"
)

type HttpResponse struct {
	Status  bool        `json:"status"`
	Body    interface{} `json:"body,omitempty"`
	Message string      `json:"message"`
}

func SuccessResponse(ctx echo.Context, body interface{}, message string, code int) error {
	return ctx.JSON(code, &HttpResponse{
		Status:  true,
		Body:    body,
		Message: message,
	})
}

func ErrorResponse(ctx echo.Context, err error, logger *zap.Logger) error {
	code := StatusCode(err)
	if code >= http.StatusInternalServerError {
		logger.Error("Внутренняя ошибка", zap.String("uri", ctx.Request().RequestURI), zap.Error(err))
	} else {
		logger.Warn("Ошибка запроса", zap.String("uri", ctx.Request().RequestURI), zap.Int("code", code), zap.Error(err))
	}

	return ctx.JSON(code, &HttpResponse{
		Status:  false,
		Body:    struct{}{},
		Message: err.Error(),
	})
}

// StatusCode сопоставляет ошибку конвейера с HTTP-кодом.
func StatusCode(err error) int {
	var schemaErr *apperrors.SchemaError
	var dataErr *apperrors.DataError
	var inputErr *apperrors.InvalidInputError
	var httpErr *echo.HTTPError
	var validationErrs validator.ValidationErrors

	switch {
	case errors.As(err, &schemaErr), errors.As(err, &dataErr):
		return http.StatusUnprocessableEntity
	case errors.As(err, &inputErr), errors.As(err, &validationErrs):
		return http.StatusBadRequest
	case errors.As(err, &httpErr):
		return httpErr.Code
	}

	for target, statusCode := range ErrorList {
		if errors.Is(err, target) {
			return statusCode
		}
	}
	return http.StatusInternalServerError
}
