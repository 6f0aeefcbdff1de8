// Package reporting expõe as consultas de leitura do dashboard: KPIs,
// séries temporais, rankings e o histórico de uploads. Nenhuma operação
// escreve no armazenamento.
package reporting

import (
	"context"
	"fmt"

	"github.com/murilozgodoy/dashboard-mangas-backend/infrastructure/repository"
	"github.com/murilozgodoy/dashboard-mangas-backend/internal/domain"
	"github.com/murilozgodoy/dashboard-mangas-backend/pkg/utils"
)

type ReportService interface {
	AvailablePeriods(ctx context.Context, tipo domain.ProductType) ([]string, error)
	SummaryMetrics(ctx context.Context, filter domain.ReportFilter) (*domain.SummaryMetrics, error)
	RevenueTimeseries(ctx context.Context, filter domain.ReportFilter) ([]*domain.RevenuePoint, error)
	TopChannels(ctx context.Context, filter domain.ReportFilter, limit int) ([]*domain.ChannelRevenue, error)
	TopRegions(ctx context.Context, filter domain.ReportFilter, limit int) ([]*domain.RegionRevenue, error)
	SegmentRanking(ctx context.Context, filter domain.ReportFilter, limit int) ([]*domain.SegmentRevenue, error)
	NPSByPeriod(ctx context.Context, filter domain.ReportFilter) ([]*domain.NPSPoint, error)

	// FinanceSummary aceita "polpa", "extrato" ou "todos"; na visão "todos"
	// consolida as duas linhas de produto
	FinanceSummary(ctx context.Context, tipo string, fromComp, toComp *domain.Competence) (*domain.FinanceSummary, error)

	AveragePriceByPeriod(ctx context.Context, filter domain.ReportFilter) ([]*domain.PricePoint, error)
	PolpaDeductionsByPeriod(ctx context.Context, fromComp, toComp *domain.Competence) ([]*domain.LogisticsPoint, error)
	ExtratoConcentrationByPeriod(ctx context.Context, fromComp, toComp *domain.Competence) ([]*domain.ConcentrationPoint, error)
	ExtratoRevenueBySolvent(ctx context.Context, fromComp, toComp *domain.Competence, limit int) ([]*domain.SolventRevenue, error)
	ExtratoRevenueByCertification(ctx context.Context, fromComp, toComp *domain.Competence, limit int) ([]*domain.CertificationRevenue, error)
	RevenueQuantityByPeriod(ctx context.Context, filter domain.ReportFilter) ([]*domain.RevenueQuantityPoint, error)
	MacroRegionBreakdown(ctx context.Context, filter domain.ReportFilter) ([]*domain.MacroRegionStats, error)

	// RevenueByPeriod aceita "polpa", "extrato" ou "todos", como FinanceSummary
	RevenueByPeriod(ctx context.Context, tipo string, fromComp, toComp *domain.Competence) ([]*domain.PeriodRevenue, error)

	TopChannelSeries(ctx context.Context, filter domain.ReportFilter, limit int) ([]*domain.ChannelSeries, error)
	TopSegmentSeries(ctx context.Context, filter domain.ReportFilter, limit int) ([]*domain.SegmentSeries, error)
	NPSByChannel(ctx context.Context, filter domain.ReportFilter, limit int) ([]*domain.ChannelNPS, error)
	QualityIndicesByPeriod(ctx context.Context, filter domain.ReportFilter) ([]*domain.QualityIndexPoint, error)

	RecentUploads(ctx context.Context, tipo *domain.ProductType, limit int) ([]*domain.UploadLedgerEntry, error)
}

type Service struct {
	records repository.SaleRecordRepository
	ledger  repository.UploadLedgerRepository
}

func NewService(records repository.SaleRecordRepository, ledger repository.UploadLedgerRepository) ReportService {
	return &Service{
		records: records,
		ledger:  ledger,
	}
}

func (s *Service) AvailablePeriods(ctx context.Context, tipo domain.ProductType) ([]string, error) {
	return s.records.DistinctPeriods(ctx, tipo)
}

func (s *Service) SummaryMetrics(ctx context.Context, filter domain.ReportFilter) (*domain.SummaryMetrics, error) {
	summary, err := s.records.Summary(ctx, filter)
	if err != nil {
		return nil, err
	}

	summary.ReceitaTotal = utils.RoundWithTwoDecimalPlace(summary.ReceitaTotal)
	summary.QuantidadeTotal = utils.RoundWithTwoDecimalPlace(summary.QuantidadeTotal)
	return summary, nil
}

func (s *Service) RevenueTimeseries(ctx context.Context, filter domain.ReportFilter) ([]*domain.RevenuePoint, error) {
	return s.records.RevenueTimeseries(ctx, filter)
}

func (s *Service) TopChannels(ctx context.Context, filter domain.ReportFilter, limit int) ([]*domain.ChannelRevenue, error) {
	return s.records.TopChannels(ctx, filter, limit)
}

func (s *Service) TopRegions(ctx context.Context, filter domain.ReportFilter, limit int) ([]*domain.RegionRevenue, error) {
	return s.records.TopRegions(ctx, filter, limit)
}

func (s *Service) SegmentRanking(ctx context.Context, filter domain.ReportFilter, limit int) ([]*domain.SegmentRevenue, error) {
	return s.records.SegmentRanking(ctx, filter, limit)
}

func (s *Service) NPSByPeriod(ctx context.Context, filter domain.ReportFilter) ([]*domain.NPSPoint, error) {
	return s.records.NPSByPeriod(ctx, filter)
}

func (s *Service) FinanceSummary(ctx context.Context, tipo string, fromComp, toComp *domain.Competence) (*domain.FinanceSummary, error) {
	if tipo == "todos" {
		return s.combinedFinanceSummary(ctx, fromComp, toComp)
	}

	productType, err := domain.ParseProductType(tipo)
	if err != nil {
		return nil, err
	}

	summary, err := s.records.Summary(ctx, domain.ReportFilter{
		Tipo:     productType,
		FromComp: fromComp,
		ToComp:   toComp,
	})
	if err != nil {
		return nil, err
	}

	return &domain.FinanceSummary{
		ReceitaTotal: utils.RoundWithTwoDecimalPlace(summary.ReceitaTotal),
		Registros:    summary.Registros,
		TicketMedio:  averageTicket(summary.ReceitaTotal, summary.Registros),
	}, nil
}

func (s *Service) combinedFinanceSummary(ctx context.Context, fromComp, toComp *domain.Competence) (*domain.FinanceSummary, error) {
	polpa, err := s.records.Summary(ctx, domain.ReportFilter{
		Tipo:     domain.ProductPolpa,
		FromComp: fromComp,
		ToComp:   toComp,
	})
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar resumo de polpa: %w", err)
	}

	extrato, err := s.records.Summary(ctx, domain.ReportFilter{
		Tipo:     domain.ProductExtrato,
		FromComp: fromComp,
		ToComp:   toComp,
	})
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar resumo de extrato: %w", err)
	}

	receitaPolpa := utils.RoundWithTwoDecimalPlace(polpa.ReceitaTotal)
	receitaExtrato := utils.RoundWithTwoDecimalPlace(extrato.ReceitaTotal)
	total := receitaPolpa + receitaExtrato
	registros := polpa.Registros + extrato.Registros

	return &domain.FinanceSummary{
		ReceitaTotal:   utils.RoundWithTwoDecimalPlace(total),
		ReceitaPolpa:   &receitaPolpa,
		ReceitaExtrato: &receitaExtrato,
		Registros:      registros,
		TicketMedio:    averageTicket(total, registros),
	}, nil
}

func averageTicket(revenue float64, count int) float64 {
	if count == 0 {
		return 0
	}
	return utils.RoundWithTwoDecimalPlace(revenue / float64(count))
}

func (s *Service) RecentUploads(ctx context.Context, tipo *domain.ProductType, limit int) ([]*domain.UploadLedgerEntry, error) {
	return s.ledger.Recent(ctx, tipo, limit)
}
