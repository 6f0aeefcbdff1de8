package domain

// ReportFilter delimita as consultas de agregação: tipo obrigatório e um
// intervalo inclusivo de competências (limites omitidos = sem limite).
type ReportFilter struct {
	Tipo     ProductType
	FromComp *Competence
	ToComp   *Competence
}

// SummaryMetrics são os KPIs somados sobre o conjunto filtrado.
// Conjuntos vazios produzem zeros, nunca erro.
type SummaryMetrics struct {
	ReceitaTotal    float64 `json:"receita_total"`
	Registros       int     `json:"registros"`
	QuantidadeTotal float64 `json:"quantidade_total"`
}

// RevenuePoint é um ponto da série temporal de receita, um por competência
// presente no intervalo
type RevenuePoint struct {
	Periodo    string  `json:"periodo"`
	Receita    float64 `json:"receita"`
	Quantidade float64 `json:"quantidade"`
}

type ChannelRevenue struct {
	Canal   string  `json:"canal"`
	Receita float64 `json:"receita"`
}

type RegionRevenue struct {
	Regiao  string  `json:"regiao"`
	Receita float64 `json:"receita"`
}

type SegmentRevenue struct {
	Segmento  string  `json:"segmento"`
	Receita   float64 `json:"receita"`
	Registros int     `json:"registros"`
}

// NPSPoint é o NPS médio de uma competência (linhas sem NPS são ignoradas)
type NPSPoint struct {
	Periodo   string  `json:"periodo"`
	NPSMedio  float64 `json:"nps_medio"`
	Registros int     `json:"registros"`
}

// FinanceSummary é o resumo financeiro consolidado; ReceitaPolpa e
// ReceitaExtrato só são preenchidas na visão "todos"
type FinanceSummary struct {
	ReceitaTotal   float64  `json:"receita_total"`
	ReceitaPolpa   *float64 `json:"receita_polpa,omitempty"`
	ReceitaExtrato *float64 `json:"receita_extrato,omitempty"`
	Registros      int      `json:"registros"`
	TicketMedio    float64  `json:"ticket_medio"`
}
