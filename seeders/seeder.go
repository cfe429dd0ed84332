package seeders

import (
	"context"
	"database/sql"
	"log"

	sq "github.com/Masterminds/squirrel"
	"github.com/pressly/goose/v3"
	"go.uber.org/zap"

	"employee-prep/pkg/database/migrations"
	"employee-prep/pkg/filestorage"
)

// SeedEmployees применяет миграции и наполняет таблицу employees демонстрационными данными.
func SeedEmployees(ctx context.Context, db *sql.DB, dialect goose.Dialect, table string, logger *zap.Logger) error {
	log.Println("▶️  Запуск наполнения таблицы сотрудников...")

	if err := migrations.Up(ctx, db, dialect, logger); err != nil {
		return err
	}

	format := sq.PlaceholderFormat(sq.Question)
	if dialect == goose.DialectPostgres {
		format = sq.Dollar
	}
	if err := seedEmployees(ctx, db, table, format); err != nil {
		return err
	}

	log.Println("✅ Наполнение таблицы сотрудников завершено!")
	return nil
}

// SeedPerformanceFile пишет демонстрационный файл с оценками (CSV или XLSX по расширению).
func SeedPerformanceFile(ctx context.Context, path string, logger *zap.Logger) error {
	log.Println("▶️  Создание файла с оценками:", path)
	storage := filestorage.NewLocalTableStorage(logger)
	if err := storage.Save(ctx, performanceTable(), path); err != nil {
		return err
	}
	log.Println("✅ Файл с оценками создан")
	return nil
}
