package domain

import "time"

// UploadLedgerEntry é o registro imutável de uma operação de importação.
// O ledger é apenas-append: entradas nunca são alteradas ou removidas.
type UploadLedgerEntry struct {
	ID          string      `json:"id"`
	Tipo        ProductType `json:"tipo"`
	Competencia string      `json:"competencia"`
	SourceFile  string      `json:"source_file"`
	// Nome da aba para importações em lote; vazio no upload de aba única
	SheetName  string    `json:"sheet_name,omitempty"`
	UploadedAt time.Time `json:"uploaded_at"`
	// LinhasImportadas conta os registros inseridos; LinhasSubstituidas conta os
	// registros anteriores removidos pela substituição (0 na primeira competência)
	LinhasImportadas   int      `json:"linhas_importadas"`
	LinhasSubstituidas int      `json:"linhas_substituidas"`
	Avisos             []string `json:"avisos,omitempty"`
}
