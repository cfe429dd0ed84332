package types

// Table: итоговая таблица из упорядоченных имён колонок и строк значений.
// Каждая строка имеет ровно len(Header) ячеек.
type Table struct {
	Header []string   `json:"header"`
	Rows   [][]string `json:"rows"`
}

func NewTable(header []string, capacity int) *Table {
	return &Table{Header: header, Rows: make([][]string, 0, capacity)}
}

// ColumnIndex возвращает позицию колонки или -1.
func (t *Table) ColumnIndex(name string) int {
	for i, h := range t.Header {
		if h == name {
			return i
		}
	}
	return -1
}

// Column возвращает значения одной колонки сверху вниз.
func (t *Table) Column(name string) []string {
	idx := t.ColumnIndex(name)
	if idx < 0 {
		return nil
	}
	values := make([]string, 0, len(t.Rows))
	for _, row := range t.Rows {
		values = append(values, row[idx])
	}
	return values
}
