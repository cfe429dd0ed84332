package filestorage

import (
	"context"

	"employee-prep/pkg/types"
)

// TableStorageInterface определяет контракт выгрузки итоговой таблицы.
// Формат выбирается по расширению пути; запись атомарна.
type TableStorageInterface interface {
	Save(ctx context.Context, table *types.Table, path string) error
}
