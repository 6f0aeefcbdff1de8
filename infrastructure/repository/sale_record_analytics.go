package repository

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/murilozgodoy/dashboard-mangas-backend/internal/domain"
)

func (r *saleRecordRepository) AveragePriceByPeriod(ctx context.Context, filter domain.ReportFilter) ([]*domain.PricePoint, error) {
	builder := applyFilter(
		squirrel.
			Select(
				"competencia",
				"COALESCE(AVG(preco_unitario), 0) AS preco_medio",
				"COUNT(*) AS registros",
			).
			From(saleRecordsTable),
		filter,
	).
		Where("preco_unitario IS NOT NULL").
		GroupBy("competencia").
		OrderBy("competencia ASC")

	query, args, err := builder.PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	points := make([]*domain.PricePoint, 0)
	for rows.Next() {
		point := &domain.PricePoint{}
		if err := rows.Scan(&point.Periodo, &point.PrecoMedio, &point.Registros); err != nil {
			return nil, fmt.Errorf("erro ao escanear o preço médio: %w", err)
		}
		points = append(points, point)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return points, nil
}

func (r *saleRecordRepository) DeductionsByPeriod(ctx context.Context, filter domain.ReportFilter) ([]*domain.LogisticsPoint, error) {
	builder := applyFilter(
		squirrel.
			Select(
				"competencia",
				"COALESCE(SUM(logistica_brl), 0) AS logistica_total",
				"COALESCE(SUM(desconto_brl), 0) AS desconto_total",
				"COUNT(*) AS registros",
			).
			From(saleRecordsTable),
		filter,
	).
		GroupBy("competencia").
		OrderBy("competencia ASC")

	query, args, err := builder.PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	points := make([]*domain.LogisticsPoint, 0)
	for rows.Next() {
		point := &domain.LogisticsPoint{}
		if err := rows.Scan(&point.Periodo, &point.LogisticaTotal, &point.DescontoTotal, &point.Registros); err != nil {
			return nil, fmt.Errorf("erro ao escanear as deduções: %w", err)
		}
		points = append(points, point)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return points, nil
}

func (r *saleRecordRepository) ConcentrationByPeriod(ctx context.Context, filter domain.ReportFilter) ([]*domain.ConcentrationPoint, error) {
	builder := applyFilter(
		squirrel.
			Select(
				"competencia",
				"COALESCE(AVG(concentracao_ativa_pct), 0) AS concentracao_media",
				"COUNT(*) AS registros",
			).
			From(saleRecordsTable),
		filter,
	).
		Where("concentracao_ativa_pct IS NOT NULL").
		GroupBy("competencia").
		OrderBy("competencia ASC")

	query, args, err := builder.PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	points := make([]*domain.ConcentrationPoint, 0)
	for rows.Next() {
		point := &domain.ConcentrationPoint{}
		if err := rows.Scan(&point.Periodo, &point.ConcentracaoMedia, &point.Registros); err != nil {
			return nil, fmt.Errorf("erro ao escanear a concentração: %w", err)
		}
		points = append(points, point)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return points, nil
}

func (r *saleRecordRepository) RevenueBySolvent(ctx context.Context, filter domain.ReportFilter, limit int) ([]*domain.SolventRevenue, error) {
	builder := applyFilter(
		squirrel.
			Select(
				"COALESCE(tipo_solvente, '(não informado)') AS tipo_solvente",
				"COALESCE(SUM(receita), 0) AS receita",
				"COUNT(*) AS registros",
			).
			From(saleRecordsTable),
		filter,
	).
		GroupBy("COALESCE(tipo_solvente, '(não informado)')").
		OrderBy("receita DESC", "tipo_solvente ASC").
		Limit(uint64(limit))

	query, args, err := builder.PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	solvents := make([]*domain.SolventRevenue, 0)
	for rows.Next() {
		solvent := &domain.SolventRevenue{}
		if err := rows.Scan(&solvent.TipoSolvente, &solvent.Receita, &solvent.Registros); err != nil {
			return nil, fmt.Errorf("erro ao escanear o solvente: %w", err)
		}
		solvents = append(solvents, solvent)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return solvents, nil
}

func (r *saleRecordRepository) RevenueByCertification(ctx context.Context, filter domain.ReportFilter, limit int) ([]*domain.CertificationRevenue, error) {
	label := "CASE WHEN certificacao_exigida IS NULL THEN '(não informado)' WHEN certificacao_exigida THEN 'sim' ELSE 'não' END"
	builder := applyFilter(
		squirrel.
			Select(
				label+" AS certificacao",
				"COALESCE(SUM(receita), 0) AS receita",
				"COUNT(*) AS registros",
			).
			From(saleRecordsTable),
		filter,
	).
		GroupBy(label).
		OrderBy("receita DESC", "certificacao ASC").
		Limit(uint64(limit))

	query, args, err := builder.PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	certs := make([]*domain.CertificationRevenue, 0)
	for rows.Next() {
		cert := &domain.CertificationRevenue{}
		if err := rows.Scan(&cert.Certificacao, &cert.Receita, &cert.Registros); err != nil {
			return nil, fmt.Errorf("erro ao escanear a certificação: %w", err)
		}
		certs = append(certs, cert)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return certs, nil
}

func (r *saleRecordRepository) RegionBreakdown(ctx context.Context, filter domain.ReportFilter) ([]*domain.RegionStats, error) {
	builder := applyFilter(
		squirrel.
			Select(
				"regiao_destino",
				"COALESCE(SUM(receita), 0) AS receita",
				"COUNT(*) AS registros",
				"COALESCE(SUM(quantidade), 0) AS quantidade",
			).
			From(saleRecordsTable),
		filter,
	).
		GroupBy("regiao_destino").
		OrderBy("regiao_destino ASC")

	query, args, err := builder.PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	regions := make([]*domain.RegionStats, 0)
	for rows.Next() {
		region := &domain.RegionStats{}
		if err := rows.Scan(&region.Regiao, &region.Receita, &region.Registros, &region.Quantidade); err != nil {
			return nil, fmt.Errorf("erro ao escanear a região: %w", err)
		}
		regions = append(regions, region)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return regions, nil
}

func (r *saleRecordRepository) ChannelRevenueByPeriod(ctx context.Context, filter domain.ReportFilter, channels []string) ([]*domain.GroupPeriodRevenue, error) {
	return r.groupRevenueByPeriod(ctx, filter, "canal", channels)
}

func (r *saleRecordRepository) SegmentRevenueByPeriod(ctx context.Context, filter domain.ReportFilter, segments []string) ([]*domain.GroupPeriodRevenue, error) {
	return r.groupRevenueByPeriod(ctx, filter, "cliente_segmento", segments)
}

// groupRevenueByPeriod soma a receita por (competência, grupo) para os
// valores pedidos da coluna de agrupamento
func (r *saleRecordRepository) groupRevenueByPeriod(ctx context.Context, filter domain.ReportFilter, column string, values []string) ([]*domain.GroupPeriodRevenue, error) {
	builder := applyFilter(
		squirrel.
			Select(
				column,
				"competencia",
				"COALESCE(SUM(receita), 0) AS receita",
			).
			From(saleRecordsTable),
		filter,
	).
		Where(squirrel.Eq{column: values}).
		GroupBy(column, "competencia").
		OrderBy("competencia ASC", column+" ASC")

	query, args, err := builder.PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	out := make([]*domain.GroupPeriodRevenue, 0)
	for rows.Next() {
		item := &domain.GroupPeriodRevenue{}
		if err := rows.Scan(&item.Grupo, &item.Periodo, &item.Receita); err != nil {
			return nil, fmt.Errorf("erro ao escanear a série agrupada: %w", err)
		}
		out = append(out, item)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return out, nil
}

func (r *saleRecordRepository) NPSByChannel(ctx context.Context, filter domain.ReportFilter, limit int) ([]*domain.ChannelNPS, error) {
	builder := applyFilter(
		squirrel.
			Select(
				"COALESCE(NULLIF(canal, ''), '(não informado)') AS canal",
				"COALESCE(AVG(nps), 0) AS nps_medio",
				"COALESCE(SUM(receita), 0) AS receita",
				"COUNT(*) AS registros",
			).
			From(saleRecordsTable),
		filter,
	).
		Where("nps IS NOT NULL").
		GroupBy("COALESCE(NULLIF(canal, ''), '(não informado)')").
		OrderBy("receita DESC", "canal ASC").
		Limit(uint64(limit))

	query, args, err := builder.PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	channels := make([]*domain.ChannelNPS, 0)
	for rows.Next() {
		ch := &domain.ChannelNPS{}
		if err := rows.Scan(&ch.Canal, &ch.NPSMedio, &ch.Receita, &ch.Registros); err != nil {
			return nil, fmt.Errorf("erro ao escanear o NPS por canal: %w", err)
		}
		channels = append(channels, ch)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return channels, nil
}

// qualityIndexColumns escolhe o par de índices do tipo: polpa acompanha
// qualidade e perda de processamento, extrato acompanha cor e pureza
func qualityIndexColumns(tipo domain.ProductType) (string, string) {
	if tipo == domain.ProductPolpa {
		return "indice_qualidade", "perda_processamento_pct"
	}
	return "indice_cor", "indice_pureza"
}

func (r *saleRecordRepository) QualityIndicesByPeriod(ctx context.Context, filter domain.ReportFilter) ([]*domain.QualityIndexPoint, error) {
	first, second := qualityIndexColumns(filter.Tipo)

	builder := applyFilter(
		squirrel.
			Select(
				"competencia",
				fmt.Sprintf("COALESCE(AVG(%s), 0)", first),
				fmt.Sprintf("COALESCE(AVG(%s), 0)", second),
				"COUNT(*) AS registros",
			).
			From(saleRecordsTable),
		filter,
	).
		GroupBy("competencia").
		OrderBy("competencia ASC")

	query, args, err := builder.PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	points := make([]*domain.QualityIndexPoint, 0)
	for rows.Next() {
		var periodo string
		var avgFirst, avgSecond float64
		var registros int
		if err := rows.Scan(&periodo, &avgFirst, &avgSecond, &registros); err != nil {
			return nil, fmt.Errorf("erro ao escanear os índices: %w", err)
		}

		point := &domain.QualityIndexPoint{Periodo: periodo, Registros: registros}
		if filter.Tipo == domain.ProductPolpa {
			point.QualidadeMedia = &avgFirst
			point.PerdaMedia = &avgSecond
		} else {
			point.CorMedia = &avgFirst
			point.PurezaMedia = &avgSecond
		}
		points = append(points, point)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return points, nil
}
