package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"employee-prep/internal/dto"
	"employee-prep/internal/entities"
	"employee-prep/internal/repositories"
	"employee-prep/pkg/filestorage"
	"employee-prep/pkg/types"
)

type PrepareServiceInterface interface {
	PrepareDataForML(ctx context.Context, performancePath, outputPath string) (*dto.PrepareSummaryDTO, error)
}

type PrepareOptions struct {
	DuplicatePolicy DuplicatePolicy
	KeepDepartment  bool
}

// PreparedData: результат чистой части конвейера, до записи.
type PreparedData struct {
	Table         *types.Table
	Departments   []string
	ImputedScores int
}

type PrepareService struct {
	employeeRepository    repositories.EmployeeRepositoryInterface
	performanceRepository repositories.PerformanceRepositoryInterface
	storage               filestorage.TableStorageInterface
	options               PrepareOptions
	logger                *zap.Logger
}

func NewPrepareService(
	employeeRepository repositories.EmployeeRepositoryInterface,
	performanceRepository repositories.PerformanceRepositoryInterface,
	storage filestorage.TableStorageInterface,
	options PrepareOptions,
	logger *zap.Logger,
) *PrepareService {
	return &PrepareService{
		employeeRepository:    employeeRepository,
		performanceRepository: performanceRepository,
		storage:               storage,
		options:               options,
		logger:                logger,
	}
}

// PrepareDataForML читает оба источника, прогоняет merge → clean → features → encode
// и пишет результат в outputPath. При любой ошибке файл не создаётся.
func (s *PrepareService) PrepareDataForML(ctx context.Context, performancePath, outputPath string) (*dto.PrepareSummaryDTO, error) {
	employees, err := s.employeeRepository.GetEmployees(ctx)
	if err != nil {
		s.logger.Error("Ошибка при чтении сотрудников", zap.Error(err))
		return nil, fmt.Errorf("чтение сотрудников: %w", err)
	}

	performance, err := s.performanceRepository.GetPerformance(ctx, performancePath)
	if err != nil {
		s.logger.Error("Ошибка при чтении оценок", zap.String("path", performancePath), zap.Error(err))
		return nil, fmt.Errorf("чтение оценок: %w", err)
	}

	prepared, err := Prepare(employees, performance, s.options, s.logger)
	if err != nil {
		s.logger.Error("Ошибка подготовки данных", zap.Error(err))
		return nil, err
	}

	if err := s.storage.Save(ctx, prepared.Table, outputPath); err != nil {
		s.logger.Error("Ошибка при сохранении выгрузки", zap.String("path", outputPath), zap.Error(err))
		return nil, fmt.Errorf("запись выгрузки: %w", err)
	}

	return &dto.PrepareSummaryDTO{
		Rows:          len(prepared.Table.Rows),
		Columns:       prepared.Table.Header,
		Departments:   prepared.Departments,
		ImputedScores: prepared.ImputedScores,
		ReferenceDate: ReferenceDateISO,
		OutputPath:    outputPath,
	}, nil
}

// Prepare: чистая часть конвейера без ввода-вывода.
func Prepare(employees []entities.Employee, performance []entities.Performance, opts PrepareOptions, logger *zap.Logger) (*PreparedData, error) {
	merged, err := MergeEmployeePerformance(employees, performance, opts.DuplicatePolicy)
	if err != nil {
		return nil, err
	}
	logger.Debug("Merge выполнен", zap.Int("employees", len(employees)), zap.Int("performance", len(performance)), zap.Int("rows", len(merged)))

	cleaned, err := CleanEmployees(merged)
	if err != nil {
		return nil, err
	}
	imputed := 0
	for _, c := range cleaned {
		if c.ScoreImputed {
			imputed++
		}
	}
	logger.Debug("Очистка выполнена", zap.Int("rows", len(cleaned)), zap.Int("imputed_scores", imputed))

	featured := AddTenureFeature(cleaned)

	table, departments, err := EncodeDepartments(featured, EncodeOptions{KeepDepartment: opts.KeepDepartment})
	if err != nil {
		return nil, err
	}
	logger.Info("Данные подготовлены",
		zap.Int("rows", len(table.Rows)),
		zap.Int("columns", len(table.Header)),
		zap.Strings("departments", departments),
	)

	return &PreparedData{Table: table, Departments: departments, ImputedScores: imputed}, nil
}
