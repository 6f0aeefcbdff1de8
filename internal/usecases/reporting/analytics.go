package reporting

import (
	"context"
	"fmt"
	"sort"

	"github.com/murilozgodoy/dashboard-mangas-backend/internal/domain"
	"github.com/murilozgodoy/dashboard-mangas-backend/pkg/utils"
)

func (s *Service) AveragePriceByPeriod(ctx context.Context, filter domain.ReportFilter) ([]*domain.PricePoint, error) {
	points, err := s.records.AveragePriceByPeriod(ctx, filter)
	if err != nil {
		return nil, err
	}

	for _, p := range points {
		p.PrecoMedio = utils.RoundWithTwoDecimalPlace(p.PrecoMedio)
	}
	return points, nil
}

// PolpaDeductionsByPeriod soma logística e desconto por competência. Só a
// polpa carrega deduções, então o tipo é fixo.
func (s *Service) PolpaDeductionsByPeriod(ctx context.Context, fromComp, toComp *domain.Competence) ([]*domain.LogisticsPoint, error) {
	points, err := s.records.DeductionsByPeriod(ctx, domain.ReportFilter{
		Tipo:     domain.ProductPolpa,
		FromComp: fromComp,
		ToComp:   toComp,
	})
	if err != nil {
		return nil, err
	}

	for _, p := range points {
		p.LogisticaTotal = utils.RoundWithTwoDecimalPlace(p.LogisticaTotal)
		p.DescontoTotal = utils.RoundWithTwoDecimalPlace(p.DescontoTotal)
	}
	return points, nil
}

// ExtratoConcentrationByPeriod calcula a concentração ativa média por
// competência; o campo só existe no extrato
func (s *Service) ExtratoConcentrationByPeriod(ctx context.Context, fromComp, toComp *domain.Competence) ([]*domain.ConcentrationPoint, error) {
	points, err := s.records.ConcentrationByPeriod(ctx, domain.ReportFilter{
		Tipo:     domain.ProductExtrato,
		FromComp: fromComp,
		ToComp:   toComp,
	})
	if err != nil {
		return nil, err
	}

	for _, p := range points {
		p.ConcentracaoMedia = utils.RoundWithTwoDecimalPlace(p.ConcentracaoMedia)
	}
	return points, nil
}

func (s *Service) ExtratoRevenueBySolvent(ctx context.Context, fromComp, toComp *domain.Competence, limit int) ([]*domain.SolventRevenue, error) {
	return s.records.RevenueBySolvent(ctx, domain.ReportFilter{
		Tipo:     domain.ProductExtrato,
		FromComp: fromComp,
		ToComp:   toComp,
	}, limit)
}

func (s *Service) ExtratoRevenueByCertification(ctx context.Context, fromComp, toComp *domain.Competence, limit int) ([]*domain.CertificationRevenue, error) {
	return s.records.RevenueByCertification(ctx, domain.ReportFilter{
		Tipo:     domain.ProductExtrato,
		FromComp: fromComp,
		ToComp:   toComp,
	}, limit)
}

// RevenueQuantityByPeriod é a série de receita com a quantidade sob a chave
// genérica "quantidade", independente da unidade do tipo
func (s *Service) RevenueQuantityByPeriod(ctx context.Context, filter domain.ReportFilter) ([]*domain.RevenueQuantityPoint, error) {
	series, err := s.records.RevenueTimeseries(ctx, filter)
	if err != nil {
		return nil, err
	}

	points := make([]*domain.RevenueQuantityPoint, 0, len(series))
	for _, p := range series {
		points = append(points, &domain.RevenueQuantityPoint{
			Periodo:    p.Periodo,
			Receita:    p.Receita,
			Quantidade: p.Quantidade,
		})
	}
	return points, nil
}

// RevenueByPeriod aceita "polpa", "extrato" ou "todos"; na visão "todos" as
// séries dos dois tipos são mescladas por competência
func (s *Service) RevenueByPeriod(ctx context.Context, tipo string, fromComp, toComp *domain.Competence) ([]*domain.PeriodRevenue, error) {
	if tipo == "todos" {
		return s.combinedRevenueByPeriod(ctx, fromComp, toComp)
	}

	productType, err := domain.ParseProductType(tipo)
	if err != nil {
		return nil, err
	}

	series, err := s.records.RevenueTimeseries(ctx, domain.ReportFilter{
		Tipo:     productType,
		FromComp: fromComp,
		ToComp:   toComp,
	})
	if err != nil {
		return nil, err
	}

	points := make([]*domain.PeriodRevenue, 0, len(series))
	for _, p := range series {
		quantidade := p.Quantidade
		point := &domain.PeriodRevenue{Periodo: p.Periodo, Receita: p.Receita}
		if productType == domain.ProductPolpa {
			point.QuantidadeKg = &quantidade
		} else {
			point.QuantidadeLitros = &quantidade
		}
		points = append(points, point)
	}
	return points, nil
}

func (s *Service) combinedRevenueByPeriod(ctx context.Context, fromComp, toComp *domain.Competence) ([]*domain.PeriodRevenue, error) {
	polpa, err := s.records.RevenueTimeseries(ctx, domain.ReportFilter{
		Tipo:     domain.ProductPolpa,
		FromComp: fromComp,
		ToComp:   toComp,
	})
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar série de polpa: %w", err)
	}

	extrato, err := s.records.RevenueTimeseries(ctx, domain.ReportFilter{
		Tipo:     domain.ProductExtrato,
		FromComp: fromComp,
		ToComp:   toComp,
	})
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar série de extrato: %w", err)
	}

	byPeriodPolpa := make(map[string]float64, len(polpa))
	for _, p := range polpa {
		byPeriodPolpa[p.Periodo] = p.Receita
	}
	byPeriodExtrato := make(map[string]float64, len(extrato))
	for _, p := range extrato {
		byPeriodExtrato[p.Periodo] = p.Receita
	}

	periods := make([]string, 0, len(byPeriodPolpa)+len(byPeriodExtrato))
	for p := range byPeriodPolpa {
		periods = append(periods, p)
	}
	for p := range byPeriodExtrato {
		if _, ok := byPeriodPolpa[p]; !ok {
			periods = append(periods, p)
		}
	}
	sort.Strings(periods)

	points := make([]*domain.PeriodRevenue, 0, len(periods))
	for _, periodo := range periods {
		receitaPolpa := byPeriodPolpa[periodo]
		receitaExtrato := byPeriodExtrato[periodo]
		points = append(points, &domain.PeriodRevenue{
			Periodo:        periodo,
			Receita:        receitaPolpa + receitaExtrato,
			ReceitaPolpa:   &receitaPolpa,
			ReceitaExtrato: &receitaExtrato,
		})
	}
	return points, nil
}

// TopChannelSeries devolve a série mensal de receita dos canais de maior
// receita total, na ordem do ranking
func (s *Service) TopChannelSeries(ctx context.Context, filter domain.ReportFilter, limit int) ([]*domain.ChannelSeries, error) {
	top, err := s.records.TopChannels(ctx, filter, limit)
	if err != nil {
		return nil, err
	}
	if len(top) == 0 {
		return []*domain.ChannelSeries{}, nil
	}

	names := make([]string, 0, len(top))
	for _, ch := range top {
		names = append(names, ch.Canal)
	}

	rows, err := s.records.ChannelRevenueByPeriod(ctx, filter, names)
	if err != nil {
		return nil, err
	}

	series := make([]*domain.ChannelSeries, 0, len(top))
	byName := make(map[string]*domain.ChannelSeries, len(top))
	for _, name := range names {
		entry := &domain.ChannelSeries{Canal: name, Dados: make([]*domain.PeriodValue, 0)}
		series = append(series, entry)
		byName[name] = entry
	}

	// As linhas chegam ordenadas por competência, então cada série já sai
	// em ordem cronológica
	for _, row := range rows {
		if entry, ok := byName[row.Grupo]; ok {
			entry.Dados = append(entry.Dados, &domain.PeriodValue{Periodo: row.Periodo, Receita: row.Receita})
		}
	}

	return series, nil
}

// TopSegmentSeries devolve a série mensal de receita dos segmentos de maior
// receita total, na ordem do ranking
func (s *Service) TopSegmentSeries(ctx context.Context, filter domain.ReportFilter, limit int) ([]*domain.SegmentSeries, error) {
	top, err := s.records.SegmentRanking(ctx, filter, limit)
	if err != nil {
		return nil, err
	}
	if len(top) == 0 {
		return []*domain.SegmentSeries{}, nil
	}

	names := make([]string, 0, len(top))
	for _, seg := range top {
		names = append(names, seg.Segmento)
	}

	rows, err := s.records.SegmentRevenueByPeriod(ctx, filter, names)
	if err != nil {
		return nil, err
	}

	series := make([]*domain.SegmentSeries, 0, len(top))
	byName := make(map[string]*domain.SegmentSeries, len(top))
	for _, name := range names {
		entry := &domain.SegmentSeries{Segmento: name, Dados: make([]*domain.PeriodValue, 0)}
		series = append(series, entry)
		byName[name] = entry
	}

	for _, row := range rows {
		if entry, ok := byName[row.Grupo]; ok {
			entry.Dados = append(entry.Dados, &domain.PeriodValue{Periodo: row.Periodo, Receita: row.Receita})
		}
	}

	return series, nil
}

func (s *Service) NPSByChannel(ctx context.Context, filter domain.ReportFilter, limit int) ([]*domain.ChannelNPS, error) {
	channels, err := s.records.NPSByChannel(ctx, filter, limit)
	if err != nil {
		return nil, err
	}

	for _, ch := range channels {
		ch.NPSMedio = utils.RoundWithTwoDecimalPlace(ch.NPSMedio)
	}
	return channels, nil
}

func (s *Service) QualityIndicesByPeriod(ctx context.Context, filter domain.ReportFilter) ([]*domain.QualityIndexPoint, error) {
	points, err := s.records.QualityIndicesByPeriod(ctx, filter)
	if err != nil {
		return nil, err
	}

	for _, p := range points {
		roundInPlace(p.QualidadeMedia)
		roundInPlace(p.PerdaMedia)
		roundInPlace(p.CorMedia)
		roundInPlace(p.PurezaMedia)
	}
	return points, nil
}

func roundInPlace(v *float64) {
	if v != nil {
		*v = utils.RoundWithTwoDecimalPlace(*v)
	}
}
