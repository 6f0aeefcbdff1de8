package domain

// ImportResult é o resultado do upload de uma aba única
type ImportResult struct {
	Tipo               ProductType `json:"tipo"`
	Competencia        string      `json:"competencia"`
	LinhasImportadas   int         `json:"linhas_importadas"`
	LinhasSubstituidas int         `json:"linhas_substituidas"`
	Avisos             []string    `json:"avisos,omitempty"`
}

// SheetOutcome é o desfecho de uma aba dentro de uma importação em lote
type SheetOutcome struct {
	Aba                string      `json:"aba"`
	Tipo               ProductType `json:"tipo"`
	Competencia        string      `json:"competencia"`
	LinhasImportadas   int         `json:"linhas_importadas"`
	LinhasSubstituidas int         `json:"linhas_substituidas"`
}

// BulkImportResult acumula os desfechos por aba de um workbook. Falhas de
// abas individuais entram em Erros sem interromper as demais; a operação
// como um todo só falha quando nenhuma aba é importada.
type BulkImportResult struct {
	Ano         int            `json:"ano"`
	Abas        []SheetOutcome `json:"abas_processadas"`
	TotalLinhas int            `json:"total_linhas"`
	Erros       []string       `json:"erros"`
}
