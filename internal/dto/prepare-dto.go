package dto

// PrepareSummaryDTO: итог одного прогона подготовки данных.
type PrepareSummaryDTO struct {
	Rows          int      `json:"rows"`
	Columns       []string `json:"columns"`
	Departments   []string `json:"departments"`
	ImputedScores int      `json:"imputed_scores"`
	ReferenceDate string   `json:"reference_date"`
	OutputPath    string   `json:"output_path"`
}

// PrepareRequestDTO: необязательное тело POST /api/prepare. Пустые поля берутся из конфигурации.
type PrepareRequestDTO struct {
	PerformancePath string `json:"performance_path"`
	OutputPath      string `json:"output_path" validate:"omitempty,prepared_output"`
}
