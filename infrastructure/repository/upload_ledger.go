package repository

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/murilozgodoy/dashboard-mangas-backend/infrastructure/database/postgres"
	"github.com/murilozgodoy/dashboard-mangas-backend/internal/domain"
)

const (
	uploadLedgerTable = "upload_ledger"
)

// UploadLedgerRepository expõe a leitura do histórico de importações. O
// ledger é apenas-append: a escrita acontece exclusivamente dentro da
// transação de ImportPartition, e não existem operações de update ou delete.
type UploadLedgerRepository interface {
	Recent(ctx context.Context, tipo *domain.ProductType, limit int) ([]*domain.UploadLedgerEntry, error)
}

type uploadLedgerRepository struct {
	conn *postgres.Connection
}

func NewUploadLedgerRepository(conn *postgres.Connection) UploadLedgerRepository {
	return &uploadLedgerRepository{
		conn: conn,
	}
}

func (r *uploadLedgerRepository) Recent(ctx context.Context, tipo *domain.ProductType, limit int) ([]*domain.UploadLedgerEntry, error) {
	builder := squirrel.
		Select(
			"id",
			"tipo",
			"competencia",
			"source_file",
			"sheet_name",
			"uploaded_at",
			"linhas_importadas",
			"linhas_substituidas",
			"avisos",
		).
		From(uploadLedgerTable).
		OrderBy("uploaded_at DESC", "id DESC").
		Limit(uint64(limit)).
		PlaceholderFormat(squirrel.Dollar)

	if tipo != nil {
		builder = builder.Where(squirrel.Eq{"tipo": tipo.String()})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	entries := make([]*domain.UploadLedgerEntry, 0)
	for rows.Next() {
		entry := &domain.UploadLedgerEntry{}
		var tipoStr string
		var avisos pq.StringArray

		err := rows.Scan(
			&entry.ID,
			&tipoStr,
			&entry.Competencia,
			&entry.SourceFile,
			&entry.SheetName,
			&entry.UploadedAt,
			&entry.LinhasImportadas,
			&entry.LinhasSubstituidas,
			&avisos,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear entrada do ledger: %w", err)
		}

		entry.Tipo = domain.ProductType(tipoStr)
		entry.Avisos = avisos
		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return entries, nil
}
