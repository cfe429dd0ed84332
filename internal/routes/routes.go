package routes

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"employee-prep/internal/controllers"
	"employee-prep/internal/services"
	"employee-prep/pkg/config"
)

func InitRouter(e *echo.Echo, prepareService services.PrepareServiceInterface, cfg *config.Config, logger *zap.Logger) {
	logger.Info("InitRouter: Начало создания маршрутов")

	api := e.Group("/api")
	prepareCtrl := controllers.NewPrepareController(prepareService, cfg.Pipeline.PerformancePath, cfg.Pipeline.OutputPath, logger)
	RUN_PREPARE_ROUTER(api, prepareCtrl)

	logger.Info("InitRouter: Маршруты созданы")
}
