package domain

// PricePoint é o preço unitário médio de uma competência; linhas sem preço
// não entram na média
type PricePoint struct {
	Periodo    string  `json:"periodo"`
	PrecoMedio float64 `json:"preco_medio"`
	Registros  int     `json:"registros"`
}

// LogisticsPoint é o custo logístico e o desconto somados por competência
// (somente polpa carrega essas deduções)
type LogisticsPoint struct {
	Periodo        string  `json:"periodo"`
	LogisticaTotal float64 `json:"logistica_total"`
	DescontoTotal  float64 `json:"desconto_total"`
	Registros      int     `json:"registros"`
}

// ConcentrationPoint é a concentração ativa média do extrato por competência
type ConcentrationPoint struct {
	Periodo           string  `json:"periodo"`
	ConcentracaoMedia float64 `json:"concentracao_media"`
	Registros         int     `json:"registros"`
}

type SolventRevenue struct {
	TipoSolvente string  `json:"tipo_solvente"`
	Receita      float64 `json:"receita"`
	Registros    int     `json:"registros"`
}

type CertificationRevenue struct {
	Certificacao string  `json:"certificacao"`
	Receita      float64 `json:"receita"`
	Registros    int     `json:"registros"`
}

// RevenueQuantityPoint é a visão receita x quantidade por competência, com a
// quantidade sempre sob a chave genérica "quantidade"
type RevenueQuantityPoint struct {
	Periodo    string  `json:"periodo"`
	Receita    float64 `json:"receita"`
	Quantidade float64 `json:"quantidade"`
}

// RegionStats são os totais crus por regiao_destino, antes da consolidação
// em macro regiões
type RegionStats struct {
	Regiao     string
	Receita    float64
	Registros  int
	Quantidade float64
}

// MacroRegionStats são os totais consolidados por macro região IBGE. As duas
// chaves de quantidade sempre aparecem; a que não corresponde ao tipo fica
// zerada.
type MacroRegionStats struct {
	Regiao           string  `json:"regiao"`
	Receita          float64 `json:"receita"`
	Registros        int     `json:"registros"`
	QuantidadeKg     float64 `json:"quantidade_kg"`
	QuantidadeLitros float64 `json:"quantidade_litros"`
}

// PeriodRevenue é a receita de uma competência na visão financeira por
// período; os campos opcionais dependem do tipo consultado
type PeriodRevenue struct {
	Periodo          string   `json:"periodo"`
	Receita          float64  `json:"receita"`
	ReceitaPolpa     *float64 `json:"receita_polpa,omitempty"`
	ReceitaExtrato   *float64 `json:"receita_extrato,omitempty"`
	QuantidadeKg     *float64 `json:"quantidade_kg,omitempty"`
	QuantidadeLitros *float64 `json:"quantidade_litros,omitempty"`
}

// PeriodValue é um ponto (competência, receita) dentro de uma série agrupada
type PeriodValue struct {
	Periodo string  `json:"periodo"`
	Receita float64 `json:"receita"`
}

// ChannelSeries é a série mensal de receita de um canal
type ChannelSeries struct {
	Canal string         `json:"canal"`
	Dados []*PeriodValue `json:"dados"`
}

// SegmentSeries é a série mensal de receita de um segmento de cliente
type SegmentSeries struct {
	Segmento string         `json:"segmento"`
	Dados    []*PeriodValue `json:"dados"`
}

// GroupPeriodRevenue é a receita de um grupo (canal ou segmento) em uma
// competência, como sai do banco antes do agrupamento em séries
type GroupPeriodRevenue struct {
	Grupo   string
	Periodo string
	Receita float64
}

// ChannelNPS é o NPS médio e a receita de um canal (linhas sem NPS ficam fora)
type ChannelNPS struct {
	Canal     string  `json:"canal"`
	NPSMedio  float64 `json:"nps_medio"`
	Receita   float64 `json:"receita"`
	Registros int     `json:"registros"`
}

// QualityIndexPoint reúne os índices de qualidade médios de uma competência.
// Polpa preenche qualidade e perda; extrato preenche cor e pureza.
type QualityIndexPoint struct {
	Periodo        string   `json:"periodo"`
	QualidadeMedia *float64 `json:"qualidade_media,omitempty"`
	PerdaMedia     *float64 `json:"perda_media,omitempty"`
	CorMedia       *float64 `json:"cor_media,omitempty"`
	PurezaMedia    *float64 `json:"pureza_media,omitempty"`
	Registros      int      `json:"registros"`
}
