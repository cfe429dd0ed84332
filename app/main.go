// Файл: main.go

package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"employee-prep/internal/entities"
	"employee-prep/internal/repositories"
	"employee-prep/internal/routes"
	"employee-prep/internal/services"
	"employee-prep/pkg/config"
	"employee-prep/pkg/customvalidator"
	"employee-prep/pkg/database/postgresql"
	"employee-prep/pkg/database/sqlite"
	"employee-prep/pkg/filestorage"
	applogger "employee-prep/pkg/logger"
	"employee-prep/pkg/utils"
)

func main() {
	cfg := config.New()

	v := validator.New()
	if err := customvalidator.RegisterCustomValidations(v); err != nil {
		log.Fatalf("Ошибка регистрации кастомных правил валидации: %v", err)
	}
	if err := cfg.Validate(v); err != nil {
		log.Fatalf("Некорректная конфигурация: %v", err)
	}

	logger := applogger.NewLogger(cfg.Log.Level, cfg.Log.OutputPaths)
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	employeeRepo, closeDB, err := openEmployeeRepository(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("Не удалось подключиться к источнику сотрудников", zap.Error(err))
	}
	defer closeDB()

	policy, err := services.ParseDuplicatePolicy(cfg.Pipeline.DuplicatePolicy)
	if err != nil {
		logger.Fatal("Некорректная политика дубликатов", zap.Error(err))
	}

	prepareService := services.NewPrepareService(
		employeeRepo,
		repositories.NewPerformanceFileRepository(logger),
		filestorage.NewLocalTableStorage(logger, entities.EmployeeColumnName, entities.EmployeeColumnDepartment, entities.EmployeeColumnStartDate),
		services.PrepareOptions{DuplicatePolicy: policy, KeepDepartment: cfg.Pipeline.KeepDepartment},
		logger,
	)

	if cfg.Server.Mode == config.ModeOnce {
		summary, err := prepareService.PrepareDataForML(ctx, cfg.Pipeline.PerformancePath, cfg.Pipeline.OutputPath)
		if err != nil {
			logger.Error("Подготовка данных завершилась ошибкой", zap.Error(err))
			closeDB()
			os.Exit(1)
		}
		logger.Info("🏁 Подготовка данных завершена",
			zap.String("output", summary.OutputPath),
			zap.Int("rows", summary.Rows),
			zap.Int("imputed_scores", summary.ImputedScores),
		)
		return
	}

	e := echo.New()
	e.HideBanner = true
	e.Validator = utils.NewValidator(v)
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		DisableStackAll: true,
		StackSize:       1 << 10,
		LogErrorFunc: func(c echo.Context, err error, stack []byte) error {
			logger.Error("!!! ОБНАРУЖЕНА ПАНИКА (PANIC) !!!",
				zap.String("method", c.Request().Method),
				zap.String("uri", c.Request().RequestURI),
				zap.Error(err),
				zap.String("stack", string(stack)),
			)
			return err
		},
	}))

	routes.InitRouter(e, prepareService, cfg, logger)

	go func() {
		logger.Info("🚀 Сервер запущен", zap.String("port", cfg.Server.Port))
		if err := e.Start(":" + cfg.Server.Port); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Ошибка запуска сервера", zap.Error(err))
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("Ошибка остановки сервера", zap.Error(err))
	}
}

func openEmployeeRepository(ctx context.Context, cfg *config.Config, logger *zap.Logger) (repositories.EmployeeRepositoryInterface, func(), error) {
	switch cfg.Database.Driver {
	case config.DriverSQLite:
		db, err := sqlite.ConnectDB(ctx, cfg.Database.DSN, logger)
		if err != nil {
			return nil, nil, err
		}
		return repositories.NewEmployeeSQLRepository(db, cfg.Database.EmployeesTable, logger), func() { _ = db.Close() }, nil
	default:
		pool, err := postgresql.ConnectDB(ctx, cfg.Database.DSN, logger)
		if err != nil {
			return nil, nil, err
		}
		return repositories.NewEmployeeRepository(pool, cfg.Database.EmployeesTable, logger), pool.Close, nil
	}
}
