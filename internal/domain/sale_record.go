package domain

import "time"

// SaleRecord é uma linha de venda normalizada. Cada registro pertence a
// exatamente uma partição (tipo, competência) — a chave usada na substituição
// atômica durante a importação. Campos específicos de tipo ficam nulos para
// o outro tipo.
type SaleRecord struct {
	ID              int         `json:"id,omitempty"`
	Tipo            ProductType `json:"tipo"`
	Competencia     Competence  `json:"-"`
	DataPedido      time.Time   `json:"data_pedido"`
	Canal           string      `json:"canal"`
	RegiaoDestino   string      `json:"regiao_destino"`
	ClienteSegmento string      `json:"cliente_segmento"`

	// Quantidade em kg (polpa) ou litros (extrato); preço na unidade correspondente
	Quantidade    float64 `json:"quantidade"`
	PrecoUnitario float64 `json:"preco_unitario"`

	// Receita líquida da linha, derivada na normalização segundo a política do tipo
	Receita float64 `json:"receita"`

	// Campos exclusivos de polpa
	LogisticaBRL          *float64 `json:"logistica_brl,omitempty"`
	DescontoBRL           *float64 `json:"desconto_brl,omitempty"`
	LoteID                *string  `json:"lote_id,omitempty"`
	IndiceQualidade       *float64 `json:"indice_qualidade_1a10,omitempty"`
	PerdaProcessamentoPct *float64 `json:"perda_processamento_pct,omitempty"`

	// Campos exclusivos de extrato
	ConcentracaoAtivaPct *float64 `json:"concentracao_ativa_pct,omitempty"`
	TipoSolvente         *string  `json:"tipo_solvente,omitempty"`
	IndiceCor            *float64 `json:"indice_cor_1a10,omitempty"`
	IndicePureza         *float64 `json:"indice_pureza_1a10,omitempty"`
	CertificacaoExigida  *bool    `json:"certificacao_exigida,omitempty"`

	NPS *float64 `json:"nps_0a10,omitempty"`

	SourceFile string    `json:"source_file"`
	UploadedAt time.Time `json:"uploaded_at"`
}
