// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"context"
	"database/sql"
	"fmt"
	"hash/fnv"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/murilozgodoy/dashboard-mangas-backend/infrastructure/database/postgres"
	"github.com/murilozgodoy/dashboard-mangas-backend/internal/domain"
	"github.com/murilozgodoy/dashboard-mangas-backend/pkg/utils"
)

const (
	saleRecordsTable = "sale_records"

	// Lote de inserção: 22 colunas por linha, bem abaixo do limite de
	// placeholders do Postgres
	insertChunkSize = 500
)

var saleRecordColumns = []string{
	"tipo",
	"competencia",
	"data_pedido",
	"canal",
	"regiao_destino",
	"cliente_segmento",
	"quantidade",
	"preco_unitario",
	"receita",
	"logistica_brl",
	"desconto_brl",
	"lote_id",
	"indice_qualidade",
	"perda_processamento_pct",
	"concentracao_ativa_pct",
	"tipo_solvente",
	"indice_cor",
	"indice_pureza",
	"certificacao_exigida",
	"nps",
	"source_file",
	"uploaded_at",
}

type SaleRecordRepository interface {
	// ImportPartition substitui atomicamente todos os registros da partição
	// (tipo, competência) e grava a entrada do ledger na mesma transação.
	// Importações da mesma partição serializam; partições distintas seguem
	// em paralelo.
	ImportPartition(ctx context.Context, tipo domain.ProductType, comp domain.Competence, records []domain.SaleRecord, entry *domain.UploadLedgerEntry) (*domain.UploadLedgerEntry, error)

	DistinctPeriods(ctx context.Context, tipo domain.ProductType) ([]string, error)
	Summary(ctx context.Context, filter domain.ReportFilter) (*domain.SummaryMetrics, error)
	RevenueTimeseries(ctx context.Context, filter domain.ReportFilter) ([]*domain.RevenuePoint, error)
	TopChannels(ctx context.Context, filter domain.ReportFilter, limit int) ([]*domain.ChannelRevenue, error)
	TopRegions(ctx context.Context, filter domain.ReportFilter, limit int) ([]*domain.RegionRevenue, error)
	SegmentRanking(ctx context.Context, filter domain.ReportFilter, limit int) ([]*domain.SegmentRevenue, error)
	NPSByPeriod(ctx context.Context, filter domain.ReportFilter) ([]*domain.NPSPoint, error)

	AveragePriceByPeriod(ctx context.Context, filter domain.ReportFilter) ([]*domain.PricePoint, error)
	DeductionsByPeriod(ctx context.Context, filter domain.ReportFilter) ([]*domain.LogisticsPoint, error)
	ConcentrationByPeriod(ctx context.Context, filter domain.ReportFilter) ([]*domain.ConcentrationPoint, error)
	RevenueBySolvent(ctx context.Context, filter domain.ReportFilter, limit int) ([]*domain.SolventRevenue, error)
	RevenueByCertification(ctx context.Context, filter domain.ReportFilter, limit int) ([]*domain.CertificationRevenue, error)
	RegionBreakdown(ctx context.Context, filter domain.ReportFilter) ([]*domain.RegionStats, error)
	ChannelRevenueByPeriod(ctx context.Context, filter domain.ReportFilter, channels []string) ([]*domain.GroupPeriodRevenue, error)
	SegmentRevenueByPeriod(ctx context.Context, filter domain.ReportFilter, segments []string) ([]*domain.GroupPeriodRevenue, error)
	NPSByChannel(ctx context.Context, filter domain.ReportFilter, limit int) ([]*domain.ChannelNPS, error)
	QualityIndicesByPeriod(ctx context.Context, filter domain.ReportFilter) ([]*domain.QualityIndexPoint, error)
}

type saleRecordRepository struct {
	conn *postgres.Connection
}

func NewSaleRecordRepository(conn *postgres.Connection) SaleRecordRepository {
	return &saleRecordRepository{
		conn: conn,
	}
}

// partitionLockKey deriva a chave do advisory lock transacional da partição.
// O lock serializa importações concorrentes da mesma competência sem tocar
// importações de outras partições.
func partitionLockKey(tipo domain.ProductType, comp domain.Competence) int64 {
	h := fnv.New64a()
	fmt.Fprintf(h, "%s|%s", tipo, comp)
	return int64(h.Sum64())
}

func (r *saleRecordRepository) ImportPartition(
	ctx context.Context,
	tipo domain.ProductType,
	comp domain.Competence,
	records []domain.SaleRecord,
	entry *domain.UploadLedgerEntry,
) (*domain.UploadLedgerEntry, error) {
	id, err := utils.GenerateID()
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar id do ledger: %w", err)
	}

	result := *entry
	result.ID = id
	result.Tipo = tipo
	result.Competencia = comp.String()
	result.LinhasImportadas = len(records)

	err = r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, "SELECT pg_advisory_xact_lock($1)", partitionLockKey(tipo, comp)); err != nil {
			return fmt.Errorf("erro ao obter lock da partição: %w", err)
		}

		deleted, err := r.deletePartition(ctx, tx, tipo, comp)
		if err != nil {
			return err
		}
		result.LinhasSubstituidas = int(deleted)

		if err := r.insertRecords(ctx, tx, records); err != nil {
			return err
		}

		return r.insertLedgerEntry(ctx, tx, &result)
	})
	if err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *saleRecordRepository) deletePartition(ctx context.Context, tx *sql.Tx, tipo domain.ProductType, comp domain.Competence) (int64, error) {
	query, args, err := squirrel.
		Delete(saleRecordsTable).
		Where(squirrel.Eq{"tipo": tipo.String(), "competencia": comp.String()}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	res, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("erro ao remover a partição anterior: %w", err)
	}

	return res.RowsAffected()
}

func (r *saleRecordRepository) insertRecords(ctx context.Context, tx *sql.Tx, records []domain.SaleRecord) error {
	for start := 0; start < len(records); start += insertChunkSize {
		end := start + insertChunkSize
		if end > len(records) {
			end = len(records)
		}

		builder := squirrel.StatementBuilder.
			Insert(saleRecordsTable).
			Columns(saleRecordColumns...).
			PlaceholderFormat(squirrel.Dollar)

		for _, rec := range records[start:end] {
			builder = builder.Values(
				rec.Tipo.String(),
				rec.Competencia.String(),
				rec.DataPedido,
				rec.Canal,
				rec.RegiaoDestino,
				rec.ClienteSegmento,
				rec.Quantidade,
				rec.PrecoUnitario,
				rec.Receita,
				rec.LogisticaBRL,
				rec.DescontoBRL,
				rec.LoteID,
				rec.IndiceQualidade,
				rec.PerdaProcessamentoPct,
				rec.ConcentracaoAtivaPct,
				rec.TipoSolvente,
				rec.IndiceCor,
				rec.IndicePureza,
				rec.CertificacaoExigida,
				rec.NPS,
				rec.SourceFile,
				rec.UploadedAt,
			)
		}

		query, args, err := builder.ToSql()
		if err != nil {
			return fmt.Errorf("erro ao construir query de inserção: %w", err)
		}

		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			if pqErr, ok := err.(*pq.Error); ok {
				return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
			}
			return fmt.Errorf("erro ao inserir registros: %w", err)
		}
	}

	return nil
}

func (r *saleRecordRepository) insertLedgerEntry(ctx context.Context, tx *sql.Tx, entry *domain.UploadLedgerEntry) error {
	query, args, err := squirrel.StatementBuilder.
		Insert(uploadLedgerTable).
		Columns("id", "tipo", "competencia", "source_file", "sheet_name", "uploaded_at", "linhas_importadas", "linhas_substituidas", "avisos").
		Values(
			entry.ID,
			entry.Tipo.String(),
			entry.Competencia,
			entry.SourceFile,
			entry.SheetName,
			entry.UploadedAt,
			entry.LinhasImportadas,
			entry.LinhasSubstituidas,
			pq.Array(entry.Avisos),
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query do ledger: %w", err)
	}

	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("erro ao gravar entrada do ledger: %w", err)
	}

	return nil
}

// applyFilter acrescenta tipo e intervalo inclusivo de competências. O token
// AAAA-MM ordena lexicograficamente como (ano, mês), então a comparação de
// texto basta.
func applyFilter(builder squirrel.SelectBuilder, filter domain.ReportFilter) squirrel.SelectBuilder {
	builder = builder.Where(squirrel.Eq{"tipo": filter.Tipo.String()})
	if filter.FromComp != nil {
		builder = builder.Where(squirrel.GtOrEq{"competencia": filter.FromComp.String()})
	}
	if filter.ToComp != nil {
		builder = builder.Where(squirrel.LtOrEq{"competencia": filter.ToComp.String()})
	}
	return builder
}

func (r *saleRecordRepository) DistinctPeriods(ctx context.Context, tipo domain.ProductType) ([]string, error) {
	query, args, err := squirrel.
		Select("DISTINCT competencia").
		From(saleRecordsTable).
		Where(squirrel.Eq{"tipo": tipo.String()}).
		OrderBy("competencia ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	periods := make([]string, 0)
	for rows.Next() {
		var p string
		if err := rows.Scan(&p); err != nil {
			return nil, fmt.Errorf("erro ao escanear competência: %w", err)
		}
		periods = append(periods, p)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return periods, nil
}

func (r *saleRecordRepository) Summary(ctx context.Context, filter domain.ReportFilter) (*domain.SummaryMetrics, error) {
	builder := applyFilter(
		squirrel.
			Select(
				"COALESCE(SUM(receita), 0)",
				"COUNT(*)",
				"COALESCE(SUM(quantidade), 0)",
			).
			From(saleRecordsTable),
		filter,
	)

	query, args, err := builder.PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	summary := &domain.SummaryMetrics{}
	row := r.conn.QueryRow(ctx, query, args...)
	if err := row.Scan(&summary.ReceitaTotal, &summary.Registros, &summary.QuantidadeTotal); err != nil {
		return nil, fmt.Errorf("erro ao escanear o resumo: %w", err)
	}

	return summary, nil
}

func (r *saleRecordRepository) RevenueTimeseries(ctx context.Context, filter domain.ReportFilter) ([]*domain.RevenuePoint, error) {
	builder := applyFilter(
		squirrel.
			Select(
				"competencia",
				"COALESCE(SUM(receita), 0) AS receita",
				"COALESCE(SUM(quantidade), 0) AS quantidade",
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

	points := make([]*domain.RevenuePoint, 0)
	for rows.Next() {
		point := &domain.RevenuePoint{}
		if err := rows.Scan(&point.Periodo, &point.Receita, &point.Quantidade); err != nil {
			return nil, fmt.Errorf("erro ao escanear a série: %w", err)
		}
		points = append(points, point)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return points, nil
}

func (r *saleRecordRepository) TopChannels(ctx context.Context, filter domain.ReportFilter, limit int) ([]*domain.ChannelRevenue, error) {
	builder := applyFilter(
		squirrel.
			Select("canal", "COALESCE(SUM(receita), 0) AS receita").
			From(saleRecordsTable),
		filter,
	).
		GroupBy("canal").
		// Empate de receita é desempatado pelo nome do canal para resultado determinístico
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

	channels := make([]*domain.ChannelRevenue, 0)
	for rows.Next() {
		ch := &domain.ChannelRevenue{}
		if err := rows.Scan(&ch.Canal, &ch.Receita); err != nil {
			return nil, fmt.Errorf("erro ao escanear o canal: %w", err)
		}
		channels = append(channels, ch)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return channels, nil
}

func (r *saleRecordRepository) TopRegions(ctx context.Context, filter domain.ReportFilter, limit int) ([]*domain.RegionRevenue, error) {
	builder := applyFilter(
		squirrel.
			Select("regiao_destino", "COALESCE(SUM(receita), 0) AS receita").
			From(saleRecordsTable),
		filter,
	).
		GroupBy("regiao_destino").
		OrderBy("receita DESC", "regiao_destino ASC").
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

	regions := make([]*domain.RegionRevenue, 0)
	for rows.Next() {
		region := &domain.RegionRevenue{}
		if err := rows.Scan(&region.Regiao, &region.Receita); err != nil {
			return nil, fmt.Errorf("erro ao escanear a região: %w", err)
		}
		regions = append(regions, region)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return regions, nil
}

func (r *saleRecordRepository) SegmentRanking(ctx context.Context, filter domain.ReportFilter, limit int) ([]*domain.SegmentRevenue, error) {
	builder := applyFilter(
		squirrel.
			Select(
				"cliente_segmento",
				"COALESCE(SUM(receita), 0) AS receita",
				"COUNT(*) AS registros",
			).
			From(saleRecordsTable),
		filter,
	).
		GroupBy("cliente_segmento").
		OrderBy("receita DESC", "cliente_segmento ASC").
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

	segments := make([]*domain.SegmentRevenue, 0)
	for rows.Next() {
		segment := &domain.SegmentRevenue{}
		if err := rows.Scan(&segment.Segmento, &segment.Receita, &segment.Registros); err != nil {
			return nil, fmt.Errorf("erro ao escanear o segmento: %w", err)
		}
		segments = append(segments, segment)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return segments, nil
}

func (r *saleRecordRepository) NPSByPeriod(ctx context.Context, filter domain.ReportFilter) ([]*domain.NPSPoint, error) {
	builder := applyFilter(
		squirrel.
			Select(
				"competencia",
				"COALESCE(AVG(nps), 0) AS nps_medio",
				"COUNT(*) AS registros",
			).
			From(saleRecordsTable),
		filter,
	).
		Where("nps IS NOT NULL").
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

	points := make([]*domain.NPSPoint, 0)
	for rows.Next() {
		point := &domain.NPSPoint{}
		if err := rows.Scan(&point.Periodo, &point.NPSMedio, &point.Registros); err != nil {
			return nil, fmt.Errorf("erro ao escanear o NPS: %w", err)
		}
		points = append(points, point)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return points, nil
}
