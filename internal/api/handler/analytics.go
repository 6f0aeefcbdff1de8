package handler

import (
	"net/http"

	"github.com/murilozgodoy/dashboard-mangas-backend/internal/domain"
	"github.com/murilozgodoy/dashboard-mangas-backend/internal/usecases/reporting"
	"github.com/murilozgodoy/dashboard-mangas-backend/pkg/apiErrors"
	"github.com/murilozgodoy/dashboard-mangas-backend/pkg/log"
)

// GetAveragePriceByPeriod retorna o preço unitário médio por competência
func GetAveragePriceByPeriod(service reporting.ReportService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		filter, err := parseReportFilter(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			return
		}

		points, err := service.AveragePriceByPeriod(r.Context(), filter)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("analise: erro ao consultar preço médio")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, err.Error(), nil)
			return
		}

		respondJSON(w, r, map[string]any{
			"dados": points,
			"tipo":  filter.Tipo,
		})
	})
}

// GetPolpaDeductionsByPeriod retorna logística e desconto somados por
// competência; a rota é exclusiva de polpa e não recebe tipo
func GetPolpaDeductionsByPeriod(service reporting.ReportService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fromComp, toComp, err := parseCompetenceRange(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			return
		}

		points, err := service.PolpaDeductionsByPeriod(r.Context(), fromComp, toComp)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("analise: erro ao consultar deduções de polpa")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, err.Error(), nil)
			return
		}

		respondJSON(w, r, map[string]any{
			"dados": points,
		})
	})
}

// GetExtratoConcentration retorna a concentração ativa média do extrato por
// competência
func GetExtratoConcentration(service reporting.ReportService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fromComp, toComp, err := parseCompetenceRange(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			return
		}

		points, err := service.ExtratoConcentrationByPeriod(r.Context(), fromComp, toComp)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("analise: erro ao consultar concentração")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, err.Error(), nil)
			return
		}

		respondJSON(w, r, map[string]any{
			"dados": points,
		})
	})
}

// GetExtratoBySolvent retorna a receita do extrato agrupada por tipo de solvente
func GetExtratoBySolvent(service reporting.ReportService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fromComp, toComp, err := parseCompetenceRange(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			return
		}

		limit := parseLimit(r, 10, 20)
		itens, err := service.ExtratoRevenueBySolvent(r.Context(), fromComp, toComp, limit)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("analise: erro ao consultar solventes")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, err.Error(), nil)
			return
		}

		respondJSON(w, r, map[string]any{
			"itens": itens,
		})
	})
}

// GetExtratoByCertification retorna a receita do extrato agrupada pela
// exigência de certificação
func GetExtratoByCertification(service reporting.ReportService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fromComp, toComp, err := parseCompetenceRange(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			return
		}

		limit := parseLimit(r, 10, 20)
		itens, err := service.ExtratoRevenueByCertification(r.Context(), fromComp, toComp, limit)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("analise: erro ao consultar certificações")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, err.Error(), nil)
			return
		}

		respondJSON(w, r, map[string]any{
			"itens": itens,
		})
	})
}

// GetRevenueQuantityByPeriod retorna receita e quantidade por competência,
// com a quantidade sob a chave genérica "quantidade"
func GetRevenueQuantityByPeriod(service reporting.ReportService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		filter, err := parseReportFilter(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			return
		}

		points, err := service.RevenueQuantityByPeriod(r.Context(), filter)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("analise: erro ao consultar receita x quantidade")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, err.Error(), nil)
			return
		}

		respondJSON(w, r, map[string]any{
			"dados": points,
			"tipo":  filter.Tipo,
		})
	})
}

// GetMacroRegions retorna os totais consolidados por macro região do Brasil
func GetMacroRegions(service reporting.ReportService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		filter, err := parseReportFilter(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			return
		}

		regioes, err := service.MacroRegionBreakdown(r.Context(), filter)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("geografia: erro ao consultar macro regiões")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, err.Error(), nil)
			return
		}

		respondJSON(w, r, map[string]any{
			"regioes": regioes,
			"tipo":    filter.Tipo,
		})
	})
}

// GetRevenueByPeriod retorna a receita por competência; tipo=todos mescla
// as séries de polpa e extrato
func GetRevenueByPeriod(service reporting.ReportService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tipo := r.URL.Query().Get("tipo")
		if tipo == "" {
			tipo = "todos"
		}
		if tipo != "todos" {
			if _, err := domain.ParseProductType(tipo); err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
				return
			}
		}

		fromComp, toComp, err := parseCompetenceRange(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			return
		}

		dados, err := service.RevenueByPeriod(r.Context(), tipo, fromComp, toComp)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("financeiro: erro ao consultar receita por período")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, err.Error(), nil)
			return
		}

		respondJSON(w, r, map[string]any{
			"dados": dados,
			"tipo":  tipo,
		})
	})
}

// GetChannelRevenueByMonth retorna a série mensal de receita dos maiores canais
func GetChannelRevenueByMonth(service reporting.ReportService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		filter, err := parseReportFilter(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			return
		}

		limit := parseLimitParam(r, "limit_canais", 5, 10)
		canais, err := service.TopChannelSeries(r.Context(), filter, limit)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("canal: erro ao consultar receita por mês")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, err.Error(), nil)
			return
		}

		respondJSON(w, r, map[string]any{
			"canais": canais,
			"tipo":   filter.Tipo,
		})
	})
}

// GetSegmentRevenueByMonth retorna a série mensal de receita dos maiores
// segmentos de cliente
func GetSegmentRevenueByMonth(service reporting.ReportService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		filter, err := parseReportFilter(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			return
		}

		limit := parseLimitParam(r, "limit_segmentos", 5, 10)
		segmentos, err := service.TopSegmentSeries(r.Context(), filter, limit)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("segmentos: erro ao consultar receita por mês")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, err.Error(), nil)
			return
		}

		respondJSON(w, r, map[string]any{
			"segmentos": segmentos,
			"tipo":      filter.Tipo,
		})
	})
}

// GetNPSByChannel retorna o NPS médio por canal, ordenado por receita
func GetNPSByChannel(service reporting.ReportService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		filter, err := parseReportFilter(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			return
		}

		limit := parseLimit(r, 10, 20)
		canais, err := service.NPSByChannel(r.Context(), filter, limit)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("qualidade: erro ao consultar NPS por canal")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, err.Error(), nil)
			return
		}

		respondJSON(w, r, map[string]any{
			"canais": canais,
			"tipo":   filter.Tipo,
		})
	})
}

// GetQualityIndices retorna os índices de qualidade médios por competência;
// as chaves variam com o tipo
func GetQualityIndices(service reporting.ReportService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		filter, err := parseReportFilter(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			return
		}

		dados, err := service.QualityIndicesByPeriod(r.Context(), filter)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("qualidade: erro ao consultar índices")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, err.Error(), nil)
			return
		}

		respondJSON(w, r, map[string]any{
			"dados": dados,
			"tipo":  filter.Tipo,
		})
	})
}
