package handler

import (
	"net/http"

	"github.com/murilozgodoy/dashboard-mangas-backend/internal/api/handler/router"
	"github.com/murilozgodoy/dashboard-mangas-backend/internal/config"
	"github.com/murilozgodoy/dashboard-mangas-backend/internal/usecases/importing"
	"github.com/murilozgodoy/dashboard-mangas-backend/internal/usecases/reporting"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

// Reports retorna as rotas de leitura consumidas pelo dashboard
func Reports(service reporting.ReportService, cfg *config.Config) []router.Route {
	return []router.Route{
		{
			Path:    "/api/periods",
			Method:  http.MethodGet,
			Handler: GetPeriods(service),
		},
		{
			Path:    "/api/metrics",
			Method:  http.MethodGet,
			Handler: GetMetrics(service),
		},
		{
			Path:    "/api/timeseries/revenue",
			Method:  http.MethodGet,
			Handler: GetRevenueTimeseries(service),
		},
		{
			Path:    "/api/top-canais",
			Method:  http.MethodGet,
			Handler: GetTopChannels(service),
		},
		{
			Path:    "/api/top-regioes",
			Method:  http.MethodGet,
			Handler: GetTopRegions(service),
		},
		{
			Path:    "/api/segmentos/ranking",
			Method:  http.MethodGet,
			Handler: GetSegmentRanking(service),
		},
		{
			Path:    "/api/financeiro/resumo",
			Method:  http.MethodGet,
			Handler: GetFinanceSummary(service),
		},
		{
			Path:    "/api/qualidade/nps-por-periodo",
			Method:  http.MethodGet,
			Handler: GetNPSByPeriod(service),
		},
		{
			Path:    "/api/qualidade/nps-por-canal",
			Method:  http.MethodGet,
			Handler: GetNPSByChannel(service),
		},
		{
			Path:    "/api/qualidade/indices-por-periodo",
			Method:  http.MethodGet,
			Handler: GetQualityIndices(service),
		},
		{
			Path:    "/api/analise/preco-medio-periodo",
			Method:  http.MethodGet,
			Handler: GetAveragePriceByPeriod(service),
		},
		{
			Path:    "/api/analise/polpa-logistica-desconto",
			Method:  http.MethodGet,
			Handler: GetPolpaDeductionsByPeriod(service),
		},
		{
			Path:    "/api/analise/extrato-concentracao",
			Method:  http.MethodGet,
			Handler: GetExtratoConcentration(service),
		},
		{
			Path:    "/api/analise/extrato-tipo-solvente",
			Method:  http.MethodGet,
			Handler: GetExtratoBySolvent(service),
		},
		{
			Path:    "/api/analise/extrato-certificacao",
			Method:  http.MethodGet,
			Handler: GetExtratoByCertification(service),
		},
		{
			Path:    "/api/analise/receita-quantidade-periodo",
			Method:  http.MethodGet,
			Handler: GetRevenueQuantityByPeriod(service),
		},
		{
			Path:    "/api/geografia/regioes",
			Method:  http.MethodGet,
			Handler: GetMacroRegions(service),
		},
		{
			Path:    "/api/financeiro/receita-por-periodo",
			Method:  http.MethodGet,
			Handler: GetRevenueByPeriod(service),
		},
		{
			Path:    "/api/canal/receita-por-mes",
			Method:  http.MethodGet,
			Handler: GetChannelRevenueByMonth(service),
		},
		{
			Path:    "/api/segmentos/receita-por-mes",
			Method:  http.MethodGet,
			Handler: GetSegmentRevenueByMonth(service),
		},
		{
			Path:    "/api/uploads",
			Method:  http.MethodGet,
			Handler: GetUploadHistory(service, cfg),
		},
	}
}

// Uploads retorna as rotas de ingestão de planilhas
func Uploads(service importing.ImportService, cfg *config.Config) []router.Route {
	return []router.Route{
		{
			Path:    "/api/uploads",
			Method:  http.MethodPost,
			Handler: UploadSheet(service, cfg),
		},
		{
			Path:    "/api/uploads/todas-abas",
			Method:  http.MethodPost,
			Handler: UploadWorkbook(service, cfg),
		},
	}
}
