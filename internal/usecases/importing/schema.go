package importing

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/murilozgodoy/dashboard-mangas-backend/infrastructure/spreadsheet"
	"github.com/murilozgodoy/dashboard-mangas-backend/internal/domain"
)

// Contrato de colunas por tipo (cabeçalho na primeira linha). A ordem segue a
// planilha de referência do negócio.
var (
	polpaColumns = []string{
		"data_pedido",
		"canal",
		"regiao_destino",
		"cliente_segmento",
		"quantidade_kg",
		"preco_unitario_brl_kg",
		"logistica_brl",
		"desconto_brl",
		"lote_id",
		"indice_qualidade_1a10",
		"perda_processamento_pct",
		"nps_0a10",
	}

	extratoColumns = []string{
		"data_pedido",
		"canal",
		"regiao_destino",
		"cliente_segmento",
		"quantidade_litros",
		"preco_unitario_brl_l",
		"concentracao_ativa_pct",
		"tipo_solvente",
		"indice_cor_1a10",
		"indice_pureza_1a10",
		"certificacao_exigida",
		"nps_0a10",
	}
)

// Campos que não podem ficar vazios em nenhuma linha
var requiredFields = map[domain.ProductType][]string{
	domain.ProductPolpa:   {"data_pedido", "canal", "quantidade_kg", "preco_unitario_brl_kg"},
	domain.ProductExtrato: {"data_pedido", "canal", "quantidade_litros", "preco_unitario_brl_l"},
}

// Campos numéricos por tipo (além de quantidade e preço, já obrigatórios)
var numericFields = map[domain.ProductType][]string{
	domain.ProductPolpa:   {"logistica_brl", "desconto_brl", "indice_qualidade_1a10", "perda_processamento_pct", "nps_0a10"},
	domain.ProductExtrato: {"concentracao_ativa_pct", "indice_cor_1a10", "indice_pureza_1a10", "nps_0a10"},
}

// Índices ordinais com faixa 1–10
var indexFields = map[domain.ProductType][]string{
	domain.ProductPolpa:   {"indice_qualidade_1a10"},
	domain.ProductExtrato: {"indice_cor_1a10", "indice_pureza_1a10"},
}

// Valores aceitos para o flag certificacao_exigida (extrato)
var certificationValues = map[string]bool{
	"sim": true, "não": true, "nao": true,
	"true": true, "false": true,
	"verdadeiro": true, "falso": true,
	"1": true, "0": true,
}

// Formatos de data aceitos em data_pedido. O excelize devolve células de data
// no formato de exibição da planilha, daí a lista.
var dateLayouts = []string{
	time.DateOnly,
	"2006-01-02 15:04:05",
	"02/01/2006",
	"01-02-06",
	"2006-01-02T15:04:05",
}

// RawRow é uma linha validada, ainda como texto, indexada pelo nome da coluna
type RawRow map[string]string

// SchemaValidator confere o contrato de colunas do tipo e filtra linha a
// linha. Linhas inválidas viram avisos numerados; a aba só é abortada quando
// faltam colunas obrigatórias ou nenhuma linha sobrevive.
type SchemaValidator struct{}

func NewSchemaValidator() *SchemaValidator {
	return &SchemaValidator{}
}

// ExpectedColumns retorna o contrato ordenado de colunas do tipo
func ExpectedColumns(tipo domain.ProductType) []string {
	if tipo == domain.ProductPolpa {
		return append([]string(nil), polpaColumns...)
	}
	return append([]string(nil), extratoColumns...)
}

// Validate confere colunas e linhas da aba contra o contrato do tipo.
// Retorna as linhas válidas, os avisos acumulados e um SchemaError quando a
// aba inteira deve ser descartada.
func (v *SchemaValidator) Validate(
	tipo domain.ProductType,
	comp domain.Competence,
	sheet *spreadsheet.Sheet,
) ([]RawRow, []string, error) {
	warnings, err := v.checkColumns(tipo, sheet)
	if err != nil {
		return nil, nil, err
	}

	colIndex := make(map[string]int, len(sheet.Header))
	for i, col := range sheet.Header {
		colIndex[col] = i
	}

	expected := ExpectedColumns(tipo)
	rows := make([]RawRow, 0, len(sheet.Rows))

	for i, cells := range sheet.Rows {
		rowNo := i + 2 // primeira linha de dados é a linha 2 da planilha

		row := make(RawRow, len(expected))
		empty := true
		for _, col := range expected {
			var value string
			if idx, ok := colIndex[col]; ok && idx < len(cells) {
				value = strings.TrimSpace(cells[idx])
			}
			if value != "" {
				empty = false
			}
			row[col] = value
		}
		if empty {
			// Linhas totalmente vazias são comuns no fim da planilha; descartadas em silêncio
			continue
		}

		if reason := v.checkRow(tipo, comp, row); reason != "" {
			warnings = append(warnings, fmt.Sprintf("linha %d ignorada: %s", rowNo, reason))
			continue
		}

		rows = append(rows, row)
	}

	if len(rows) == 0 {
		return nil, warnings, &SchemaError{
			Sheet:  sheet.Name,
			Reason: "nenhuma linha válida após a validação",
		}
	}

	return rows, warnings, nil
}

// checkColumns valida a presença do contrato: ausentes abortam a aba,
// colunas extras são ignoradas com aviso
func (v *SchemaValidator) checkColumns(tipo domain.ProductType, sheet *spreadsheet.Sheet) ([]string, error) {
	present := make(map[string]bool, len(sheet.Header))
	for _, col := range sheet.Header {
		present[col] = true
	}

	expected := ExpectedColumns(tipo)
	known := make(map[string]bool, len(expected))

	var missing []string
	for _, col := range expected {
		known[col] = true
		if !present[col] {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, &SchemaError{Sheet: sheet.Name, Missing: missing}
	}

	var warnings []string
	for _, col := range sheet.Header {
		if col != "" && !known[col] {
			warnings = append(warnings, fmt.Sprintf("coluna desconhecida ignorada: %s", col))
		}
	}

	return warnings, nil
}

// checkRow valida uma linha; retorna o motivo da rejeição ou "" quando válida
func (v *SchemaValidator) checkRow(tipo domain.ProductType, comp domain.Competence, row RawRow) string {
	for _, field := range requiredFields[tipo] {
		if row[field] == "" {
			return fmt.Sprintf("campo obrigatório vazio (%s)", field)
		}
	}

	date, err := parseDate(row["data_pedido"])
	if err != nil {
		return fmt.Sprintf("data_pedido inválida (%s)", row["data_pedido"])
	}
	if !comp.Contains(date) {
		return fmt.Sprintf("data_pedido %s fora da competência %s", date.Format(time.DateOnly), comp)
	}

	qtyField, priceField := quantityColumns(tipo)
	qty, err := parseNumber(row[qtyField])
	if err != nil {
		return fmt.Sprintf("%s não numérico (%s)", qtyField, row[qtyField])
	}
	if qty < 0 {
		return fmt.Sprintf("%s negativo (%v)", qtyField, qty)
	}

	price, err := parseNumber(row[priceField])
	if err != nil {
		return fmt.Sprintf("%s não numérico (%s)", priceField, row[priceField])
	}
	if price < 0 {
		return fmt.Sprintf("%s negativo (%v)", priceField, price)
	}

	for _, field := range numericFields[tipo] {
		value := row[field]
		if value == "" {
			continue
		}
		if _, err := parseNumber(value); err != nil {
			return fmt.Sprintf("%s não numérico (%s)", field, value)
		}
	}

	for _, field := range indexFields[tipo] {
		if value := row[field]; value != "" {
			n, _ := parseNumber(value)
			if n < 1 || n > 10 {
				return fmt.Sprintf("%s fora da faixa 1-10 (%v)", field, n)
			}
		}
	}

	if value := row["nps_0a10"]; value != "" {
		n, _ := parseNumber(value)
		if n < 0 || n > 10 {
			return fmt.Sprintf("nps_0a10 fora da faixa 0-10 (%v)", n)
		}
	}

	if tipo == domain.ProductExtrato {
		if value := row["certificacao_exigida"]; value != "" {
			if !certificationValues[strings.ToLower(value)] {
				return fmt.Sprintf("certificacao_exigida inválida (%s)", value)
			}
		}
	}

	return ""
}

func quantityColumns(tipo domain.ProductType) (qty, price string) {
	if tipo == domain.ProductPolpa {
		return "quantidade_kg", "preco_unitario_brl_kg"
	}
	return "quantidade_litros", "preco_unitario_brl_l"
}

// parseNumber aceita decimal com ponto ou com vírgula (planilhas brasileiras)
func parseNumber(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if strings.Contains(s, ",") && !strings.Contains(s, ".") {
		s = strings.ReplaceAll(s, ",", ".")
	}
	return strconv.ParseFloat(s, 64)
}

func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("data inválida: %q", s)
}
