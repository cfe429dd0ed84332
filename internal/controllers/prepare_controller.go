package controllers

import (
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"sync"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"employee-prep/internal/dto"
	"employee-prep/internal/services"
	apperrors "employee-prep/pkg/errors"
	"employee-prep/pkg/utils"
)

type PrepareController struct {
	prepareService  services.PrepareServiceInterface
	performancePath string
	outputPath      string
	logger          *zap.Logger

	// Запуски конвейера не пересекаются: выгрузка одна на процесс.
	mu sync.Mutex
	// resultPath: файл последнего успешного запуска, его отдаёт DownloadResult.
	resultPath string
}

func NewPrepareController(prepareService services.PrepareServiceInterface, performancePath, outputPath string, logger *zap.Logger) *PrepareController {
	return &PrepareController{
		prepareService:  prepareService,
		performancePath: performancePath,
		outputPath:      outputPath,
		logger:          logger,
		resultPath:      outputPath,
	}
}

func (c *PrepareController) RunPrepare(ctx echo.Context) error {
	var req dto.PrepareRequestDTO
	if err := ctx.Bind(&req); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	if err := ctx.Validate(&req); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	performancePath := c.performancePath
	if req.PerformancePath != "" {
		performancePath = req.PerformancePath
	}
	outputPath := c.outputPath
	if req.OutputPath != "" {
		outputPath = req.OutputPath
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	summary, err := c.prepareService.PrepareDataForML(ctx.Request().Context(), performancePath, outputPath)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	c.resultPath = outputPath
	return utils.SuccessResponse(ctx, summary, "Данные для обучения подготовлены", http.StatusOK)
}

func (c *PrepareController) DownloadResult(ctx echo.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, err := os.Stat(c.resultPath); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return utils.ErrorResponse(ctx, apperrors.ErrNotFound, c.logger)
		}
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return ctx.Attachment(c.resultPath, filepath.Base(c.resultPath))
}
