package migrations

import (
	"context"
	"database/sql"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
	"go.uber.org/zap"
)

//go:embed *.sql
var embedMigrations embed.FS

// Up применяет встроенные миграции (таблица employees).
func Up(ctx context.Context, db *sql.DB, dialect goose.Dialect, logger *zap.Logger) error {
	provider, err := goose.NewProvider(dialect, db, embedMigrations)
	if err != nil {
		return fmt.Errorf("не удалось создать провайдер миграций: %w", err)
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("ошибка применения миграций: %w", err)
	}
	for _, r := range results {
		logger.Info("Миграция применена", zap.String("source", r.Source.Path), zap.Duration("duration", r.Duration))
	}
	return nil
}
