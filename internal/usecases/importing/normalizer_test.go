package importing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/murilozgodoy/dashboard-mangas-backend/internal/domain"
)

func TestRecordNormalizer_Polpa(t *testing.T) {
	normalizer := NewRecordNormalizer()
	comp := julho2024(t)
	uploadedAt := time.Date(2024, 8, 1, 12, 0, 0, 0, time.UTC)

	rows := []RawRow{
		{
			"data_pedido":             "2024-07-10",
			"canal":                   "Atacado",
			"regiao_destino":          "Sudeste",
			"cliente_segmento":        "Indústria",
			"quantidade_kg":           "1000",
			"preco_unitario_brl_kg":   "10.00",
			"logistica_brl":           "350.50",
			"desconto_brl":            "149.50",
			"lote_id":                 "L-123",
			"indice_qualidade_1a10":   "8",
			"perda_processamento_pct": "2,5",
			"nps_0a10":                "9",
		},
	}

	records := normalizer.Normalize(domain.ProductPolpa, comp, rows, "vendas.xlsx", uploadedAt)

	require.Len(t, records, 1)
	r := records[0]

	assert.Equal(t, domain.ProductPolpa, r.Tipo)
	assert.Equal(t, comp, r.Competencia)
	assert.Equal(t, time.Date(2024, 7, 10, 0, 0, 0, 0, time.UTC), r.DataPedido)
	assert.Equal(t, "Atacado", r.Canal)
	assert.Equal(t, 1000.0, r.Quantidade)
	assert.Equal(t, 10.0, r.PrecoUnitario)

	// Receita de polpa é o bruto menos logística e desconto
	assert.Equal(t, 1000.0*10.0-350.50-149.50, r.Receita)

	require.NotNil(t, r.LoteID)
	assert.Equal(t, "L-123", *r.LoteID)
	require.NotNil(t, r.PerdaProcessamentoPct)
	assert.Equal(t, 2.5, *r.PerdaProcessamentoPct)
	require.NotNil(t, r.NPS)
	assert.Equal(t, 9.0, *r.NPS)

	// Campos do outro tipo ficam vazios
	assert.Nil(t, r.ConcentracaoAtivaPct)
	assert.Nil(t, r.TipoSolvente)
	assert.Nil(t, r.CertificacaoExigida)

	assert.Equal(t, "vendas.xlsx", r.SourceFile)
	assert.Equal(t, uploadedAt, r.UploadedAt)
}

func TestRecordNormalizer_PolpaMissingDeductions(t *testing.T) {
	normalizer := NewRecordNormalizer()

	rows := []RawRow{
		{
			"data_pedido":           "2024-07-10",
			"canal":                 "Varejo",
			"quantidade_kg":         "200",
			"preco_unitario_brl_kg": "5.00",
		},
	}

	records := normalizer.Normalize(domain.ProductPolpa, julho2024(t), rows, "vendas.xlsx", time.Now())

	require.Len(t, records, 1)
	// Sem logística e desconto a receita fica no bruto
	assert.Equal(t, 1000.0, records[0].Receita)
	assert.Nil(t, records[0].LogisticaBRL)
	assert.Nil(t, records[0].DescontoBRL)
}

func TestRecordNormalizer_Extrato(t *testing.T) {
	normalizer := NewRecordNormalizer()

	rows := []RawRow{
		{
			"data_pedido":            "2024-07-05",
			"canal":                  "Exportação",
			"regiao_destino":         "Europa",
			"cliente_segmento":       "Farmacêutico",
			"quantidade_litros":      "800",
			"preco_unitario_brl_l":   "45.50",
			"concentracao_ativa_pct": "12.5",
			"tipo_solvente":          "etanol",
			"indice_cor_1a10":        "7",
			"indice_pureza_1a10":     "9",
			"certificacao_exigida":   "Sim",
			"nps_0a10":               "8",
		},
	}

	records := normalizer.Normalize(domain.ProductExtrato, julho2024(t), rows, "extrato.xlsx", time.Now())

	require.Len(t, records, 1)
	r := records[0]

	// Extrato não tem deduções: receita é quantidade x preço
	assert.Equal(t, 800*45.50, r.Receita)

	require.NotNil(t, r.TipoSolvente)
	assert.Equal(t, "etanol", *r.TipoSolvente)
	require.NotNil(t, r.CertificacaoExigida)
	assert.True(t, *r.CertificacaoExigida)

	assert.Nil(t, r.LogisticaBRL)
	assert.Nil(t, r.LoteID)
}

func TestRecordNormalizer_CertificationTokens(t *testing.T) {
	normalizer := NewRecordNormalizer()

	makeRow := func(cert string) RawRow {
		return RawRow{
			"data_pedido":          "2024-07-05",
			"canal":                "Exportação",
			"quantidade_litros":    "10",
			"preco_unitario_brl_l": "1",
			"certificacao_exigida": cert,
		}
	}

	tests := []struct {
		value    string
		expected *bool
	}{
		{"sim", boolPtr(true)},
		{"VERDADEIRO", boolPtr(true)},
		{"1", boolPtr(true)},
		{"não", boolPtr(false)},
		{"false", boolPtr(false)},
		{"0", boolPtr(false)},
		{"", nil},
	}

	for _, tt := range tests {
		records := normalizer.Normalize(domain.ProductExtrato, julho2024(t), []RawRow{makeRow(tt.value)}, "f.xlsx", time.Now())

		require.Len(t, records, 1)
		if tt.expected == nil {
			assert.Nil(t, records[0].CertificacaoExigida, "valor: %q", tt.value)
		} else {
			require.NotNil(t, records[0].CertificacaoExigida, "valor: %q", tt.value)
			assert.Equal(t, *tt.expected, *records[0].CertificacaoExigida, "valor: %q", tt.value)
		}
	}
}

func TestRecordNormalizer_Deterministic(t *testing.T) {
	normalizer := NewRecordNormalizer()
	uploadedAt := time.Date(2024, 8, 1, 12, 0, 0, 0, time.UTC)

	rows := []RawRow{
		{"data_pedido": "2024-07-01", "canal": "A", "quantidade_kg": "10", "preco_unitario_brl_kg": "2"},
		{"data_pedido": "2024-07-02", "canal": "B", "quantidade_kg": "20", "preco_unitario_brl_kg": "3"},
	}

	first := normalizer.Normalize(domain.ProductPolpa, julho2024(t), rows, "v.xlsx", uploadedAt)
	second := normalizer.Normalize(domain.ProductPolpa, julho2024(t), rows, "v.xlsx", uploadedAt)

	assert.Equal(t, first, second)
}

func boolPtr(b bool) *bool {
	return &b
}
