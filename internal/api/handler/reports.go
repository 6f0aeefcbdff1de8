package handler

import (
	"fmt"
	"net/http"
	"strconv"

	jsoniter "github.com/json-iterator/go"
	"github.com/murilozgodoy/dashboard-mangas-backend/internal/config"
	"github.com/murilozgodoy/dashboard-mangas-backend/internal/domain"
	"github.com/murilozgodoy/dashboard-mangas-backend/internal/usecases/reporting"
	"github.com/murilozgodoy/dashboard-mangas-backend/pkg/apiErrors"
	"github.com/murilozgodoy/dashboard-mangas-backend/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// parseReportFilter extrai tipo e intervalo de competências da query string
func parseReportFilter(r *http.Request) (domain.ReportFilter, error) {
	filter := domain.ReportFilter{}

	tipo, err := domain.ParseProductType(r.URL.Query().Get("tipo"))
	if err != nil {
		return filter, err
	}
	filter.Tipo = tipo

	filter.FromComp, filter.ToComp, err = parseCompetenceRange(r)
	if err != nil {
		return filter, err
	}

	return filter, nil
}

// parseCompetenceRange lê from_comp e to_comp da query string; ambos opcionais
func parseCompetenceRange(r *http.Request) (*domain.Competence, *domain.Competence, error) {
	var from, to *domain.Competence

	if raw := r.URL.Query().Get("from_comp"); raw != "" {
		comp, err := domain.ParseCompetence(raw)
		if err != nil {
			return nil, nil, err
		}
		from = &comp
	}

	if raw := r.URL.Query().Get("to_comp"); raw != "" {
		comp, err := domain.ParseCompetence(raw)
		if err != nil {
			return nil, nil, err
		}
		to = &comp
	}

	return from, to, nil
}

func parseLimit(r *http.Request, def, max int) int {
	return parseLimitParam(r, "limit", def, max)
}

func parseLimitParam(r *http.Request, name string, def, max int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 1 {
		return def
	}
	if limit > max {
		return max
	}
	return limit
}

func respondJSON(w http.ResponseWriter, r *http.Request, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("api: erro ao codificar resposta")
	}
}

// GetPeriods lista as competências disponíveis para o tipo, em ordem crescente
func GetPeriods(service reporting.ReportService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		filter, err := parseReportFilter(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			return
		}

		periods, err := service.AvailablePeriods(r.Context(), filter.Tipo)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("periods: erro ao buscar competências")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, err.Error(), nil)
			return
		}

		respondJSON(w, r, map[string]any{
			"periods": periods,
			"tipo":    filter.Tipo,
		})
	})
}

// GetMetrics retorna os KPIs agregados do período filtrado
func GetMetrics(service reporting.ReportService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		filter, err := parseReportFilter(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			return
		}

		summary, err := service.SummaryMetrics(r.Context(), filter)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("metrics: erro ao consultar resumo")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, err.Error(), nil)
			return
		}

		// from e to sempre aparecem no corpo, nulos quando o filtro não os define
		var from, to any
		if filter.FromComp != nil {
			from = filter.FromComp.String()
		}
		if filter.ToComp != nil {
			to = filter.ToComp.String()
		}

		respondJSON(w, r, map[string]any{
			"receita_total":             summary.ReceitaTotal,
			"registros":                 summary.Registros,
			filter.Tipo.QuantityField(): summary.QuantidadeTotal,
			"tipo":                      filter.Tipo,
			"from":                      from,
			"to":                        to,
		})
	})
}

// GetRevenueTimeseries retorna receita e quantidade por competência, em
// ordem crescente; competências sem registros não aparecem
func GetRevenueTimeseries(service reporting.ReportService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		filter, err := parseReportFilter(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			return
		}

		points, err := service.RevenueTimeseries(r.Context(), filter)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("timeseries: erro ao consultar série de receita")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, err.Error(), nil)
			return
		}

		quantityField := filter.Tipo.QuantityField()
		dados := make([]map[string]any, 0, len(points))
		for _, p := range points {
			dados = append(dados, map[string]any{
				"periodo":     p.Periodo,
				"receita":     p.Receita,
				quantityField: p.Quantidade,
			})
		}

		respondJSON(w, r, map[string]any{
			"dados": dados,
			"tipo":  filter.Tipo,
		})
	})
}

// GetTopChannels retorna o ranking de canais por receita
func GetTopChannels(service reporting.ReportService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		filter, err := parseReportFilter(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			return
		}

		limit := parseLimit(r, 10, 50)
		channels, err := service.TopChannels(r.Context(), filter, limit)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("top-canais: erro ao consultar ranking")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, err.Error(), nil)
			return
		}

		respondJSON(w, r, map[string]any{
			"canais": channels,
			"tipo":   filter.Tipo,
		})
	})
}

// GetTopRegions retorna o ranking de regiões de destino por receita
func GetTopRegions(service reporting.ReportService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		filter, err := parseReportFilter(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			return
		}

		limit := parseLimit(r, 10, 50)
		regions, err := service.TopRegions(r.Context(), filter, limit)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("top-regioes: erro ao consultar ranking")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, err.Error(), nil)
			return
		}

		respondJSON(w, r, map[string]any{
			"regioes": regions,
			"tipo":    filter.Tipo,
		})
	})
}

// GetSegmentRanking retorna receita e registros por segmento de cliente
func GetSegmentRanking(service reporting.ReportService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		filter, err := parseReportFilter(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			return
		}

		limit := parseLimit(r, 15, 50)
		segments, err := service.SegmentRanking(r.Context(), filter, limit)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("segmentos: erro ao consultar ranking")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, err.Error(), nil)
			return
		}

		respondJSON(w, r, map[string]any{
			"segmentos": segments,
			"tipo":      filter.Tipo,
		})
	})
}

// GetFinanceSummary retorna o resumo financeiro; tipo=todos consolida polpa e extrato
func GetFinanceSummary(service reporting.ReportService) http.Handler {
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

		summary, err := service.FinanceSummary(r.Context(), tipo, fromComp, toComp)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("financeiro: erro ao consultar resumo")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, err.Error(), nil)
			return
		}

		respondJSON(w, r, summary)
	})
}

// GetNPSByPeriod retorna o NPS médio por competência
func GetNPSByPeriod(service reporting.ReportService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		filter, err := parseReportFilter(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			return
		}

		points, err := service.NPSByPeriod(r.Context(), filter)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("qualidade: erro ao consultar NPS")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, err.Error(), nil)
			return
		}

		respondJSON(w, r, map[string]any{
			"dados": points,
			"tipo":  filter.Tipo,
		})
	})
}

// GetUploadHistory retorna o histórico de importações, mais recentes primeiro
func GetUploadHistory(service reporting.ReportService, cfg *config.Config) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var tipo *domain.ProductType
		if raw := r.URL.Query().Get("tipo"); raw != "" {
			parsed, err := domain.ParseProductType(raw)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
				return
			}
			tipo = &parsed
		}

		limit := parseLimit(r, cfg.Upload.HistoryDefaultLimit, cfg.Upload.HistoryMaxLimit)
		uploads, err := service.RecentUploads(r.Context(), tipo, limit)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("uploads: erro ao consultar histórico")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, err.Error(), nil)
			return
		}

		log.ForContext(r.Context()).WithFields(log.Fields{
			"uploads_retornados": len(uploads),
		}).Info(fmt.Sprintf("uploads: histórico consultado (limite %d)", limit))

		respondJSON(w, r, map[string]any{
			"uploads": uploads,
		})
	})
}
