package dto

// MigracaoRequest is the body of POST /v1/migracao, dispatched on Action.
type MigracaoRequest struct {
	Action           string `json:"action"           validate:"required"`
	EmpresaOrigemID  string `json:"empresaOrigemId"  validate:"required,uuid"`
	EmpresaDestinoID string `json:"empresaDestinoId" validate:"required,uuid"`
}

// MigracaoPreview carries the read-only counts shown to the operator before
// confirming a migration. Field names match the admin SPA contract.
type MigracaoPreview struct {
	Insumos                int64 `json:"insumos"`
	ReceitasIntermediarias int64 `json:"receitasIntermediarias"`
	Produtos               int64 `json:"produtos"`
	FichasTecnicas         int64 `json:"fichasTecnicas"`
	PrecosCanais           int64 `json:"precosCanais"`
}

// Contagem tallies one migration stage. Errors counts per-record store
// failures that were skipped over without aborting the stage.
type Contagem struct {
	Copied  int `json:"copied"`
	Updated int `json:"updated"`
	Skipped int `json:"skipped"`
	Errors  int `json:"errors"`
}

// ContagemFicha tallies the recipe-line stage, which has no update concept:
// lines are always deleted and re-inserted, never field-updated.
type ContagemFicha struct {
	Copied  int `json:"copied"`
	Skipped int `json:"skipped"`
	Errors  int `json:"errors"`
}

// MigracaoResult is returned to the caller after stage 5 completes.
type MigracaoResult struct {
	Insumos                Contagem      `json:"insumos"`
	ReceitasIntermediarias Contagem      `json:"receitasIntermediarias"`
	Produtos               Contagem      `json:"produtos"`
	FichasTecnicas         ContagemFicha `json:"fichasTecnicas"`
	PrecosCanais           Contagem      `json:"precosCanais"`
}

// MigracaoPreviewResponse / MigracaoResponse are the HTTP envelopes.
type MigracaoPreviewResponse struct {
	Preview MigracaoPreview `json:"preview"`
}

type MigracaoResponse struct {
	Success bool           `json:"success"`
	Result  MigracaoResult `json:"result"`
}
