package importing

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/mock/gomock"

	"github.com/murilozgodoy/dashboard-mangas-backend/infrastructure/repository/mocks"
	"github.com/murilozgodoy/dashboard-mangas-backend/internal/domain"
	"github.com/murilozgodoy/dashboard-mangas-backend/pkg/apiErrors"
)

type testSheet struct {
	name string
	rows [][]string
}

// workbookBuffer monta um .xlsx em memória com as abas informadas, na ordem
func workbookBuffer(t *testing.T, sheets []testSheet) *bytes.Buffer {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	for i, s := range sheets {
		if i == 0 {
			require.NoError(t, f.SetSheetName("Sheet1", s.name))
		} else {
			_, err := f.NewSheet(s.name)
			require.NoError(t, err)
		}

		for rowIdx, row := range s.rows {
			cell, err := excelize.CoordinatesToCellName(1, rowIdx+1)
			require.NoError(t, err)
			require.NoError(t, f.SetSheetRow(s.name, cell, &row))
		}
	}

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf
}

func polpaSheetRows(dates ...string) [][]string {
	rows := [][]string{ExpectedColumns(domain.ProductPolpa)}
	for _, date := range dates {
		rows = append(rows, polpaRow(date, "Atacado", "100", "8.90"))
	}
	return rows
}

// expectImportPartition registra a expectativa de substituição da partição e
// devolve uma entrada de ledger coerente com os registros recebidos
func expectImportPartition(repo *mocks.MockSaleRecordRepository, replaced int) *gomock.Call {
	return repo.EXPECT().
		ImportPartition(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(
			_ context.Context,
			tipo domain.ProductType,
			comp domain.Competence,
			records []domain.SaleRecord,
			entry *domain.UploadLedgerEntry,
		) (*domain.UploadLedgerEntry, error) {
			saved := *entry
			saved.ID = "LEDG00000001"
			saved.Tipo = tipo
			saved.Competencia = comp.String()
			saved.LinhasImportadas = len(records)
			saved.LinhasSubstituidas = replaced
			return &saved, nil
		})
}

func TestService_ImportSheet(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockSaleRecordRepository(ctrl)
	service := NewService(repo)
	comp := julho2024(t)

	expectImportPartition(repo, 0)

	buf := workbookBuffer(t, []testSheet{
		{name: "Vendas", rows: polpaSheetRows("2024-07-01", "2024-07-15")},
	})

	result, err := service.ImportSheet(context.Background(), buf, "vendas.xlsx", domain.ProductPolpa, comp)

	require.NoError(t, err)
	assert.Equal(t, domain.ProductPolpa, result.Tipo)
	assert.Equal(t, "2024-07", result.Competencia)
	assert.Equal(t, 2, result.LinhasImportadas)
	assert.Equal(t, 0, result.LinhasSubstituidas)
	assert.Empty(t, result.Avisos)
}

func TestService_ImportSheet_FormOverridesSheetName(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockSaleRecordRepository(ctrl)
	service := NewService(repo)
	comp := julho2024(t)

	repo.EXPECT().
		ImportPartition(gomock.Any(), domain.ProductPolpa, comp, gomock.Any(), gomock.Any()).
		DoAndReturn(func(
			_ context.Context,
			tipo domain.ProductType,
			comp domain.Competence,
			records []domain.SaleRecord,
			entry *domain.UploadLedgerEntry,
		) (*domain.UploadLedgerEntry, error) {
			saved := *entry
			saved.Tipo = tipo
			saved.Competencia = comp.String()
			saved.LinhasImportadas = len(records)
			return &saved, nil
		})

	// O nome da aba contradiz o formulário; tipo e competência explícitos
	// prevalecem sobre qualquer token do nome
	buf := workbookBuffer(t, []testSheet{
		{name: "Extrato Dez", rows: polpaSheetRows("2024-07-01")},
	})

	result, err := service.ImportSheet(context.Background(), buf, "vendas.xlsx", domain.ProductPolpa, comp)

	require.NoError(t, err)
	assert.Equal(t, domain.ProductPolpa, result.Tipo)
	assert.Equal(t, "2024-07", result.Competencia)
	assert.Equal(t, 1, result.LinhasImportadas)
}

func TestService_ImportSheet_ReimportReplacesPartition(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockSaleRecordRepository(ctrl)
	service := NewService(repo)
	comp := julho2024(t)

	// Primeira importação não substitui nada; a segunda remove exatamente o
	// que a primeira gravou
	gomock.InOrder(
		expectImportPartition(repo, 0),
		expectImportPartition(repo, 2),
	)

	sheets := []testSheet{{name: "Vendas", rows: polpaSheetRows("2024-07-01", "2024-07-15")}}

	first, err := service.ImportSheet(context.Background(), workbookBuffer(t, sheets), "vendas.xlsx", domain.ProductPolpa, comp)
	require.NoError(t, err)
	assert.Equal(t, 0, first.LinhasSubstituidas)

	second, err := service.ImportSheet(context.Background(), workbookBuffer(t, sheets), "vendas.xlsx", domain.ProductPolpa, comp)
	require.NoError(t, err)
	assert.Equal(t, second.LinhasImportadas, second.LinhasSubstituidas)
}

func TestService_ImportSheet_InvalidExtension(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := NewService(mocks.NewMockSaleRecordRepository(ctrl))

	_, err := service.ImportSheet(context.Background(), strings.NewReader("dados"), "vendas.pdf", domain.ProductPolpa, julho2024(t))

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Erros[0], "extensão inválida")
	assert.Equal(t, apiErrors.ErrInvalidFormat, validationErr.Code)
}

func TestService_ImportSheet_SchemaErrorBecomesValidationError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := NewService(mocks.NewMockSaleRecordRepository(ctrl))

	buf := workbookBuffer(t, []testSheet{
		{name: "Vendas", rows: [][]string{{"data_pedido", "canal"}, {"2024-07-01", "Atacado"}}},
	})

	_, err := service.ImportSheet(context.Background(), buf, "vendas.xlsx", domain.ProductPolpa, julho2024(t))

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Erros[0], "colunas obrigatórias ausentes")
	assert.Equal(t, apiErrors.ErrMissingColumns, validationErr.Code)
}

func TestService_ImportSheet_CSV(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockSaleRecordRepository(ctrl)
	service := NewService(repo)

	expectImportPartition(repo, 0)

	csv := strings.Join(ExpectedColumns(domain.ProductPolpa), ",") + "\n" +
		strings.Join(polpaRow("2024-07-01", "Atacado", "100", "8.90"), ",") + "\n"

	result, err := service.ImportSheet(context.Background(), strings.NewReader(csv), "vendas.csv", domain.ProductPolpa, julho2024(t))

	require.NoError(t, err)
	assert.Equal(t, 1, result.LinhasImportadas)
}

func TestService_ImportSheet_StorageErrorPropagates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockSaleRecordRepository(ctrl)
	service := NewService(repo)

	repo.EXPECT().
		ImportPartition(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, assert.AnError)

	buf := workbookBuffer(t, []testSheet{
		{name: "Vendas", rows: polpaSheetRows("2024-07-01")},
	})

	_, err := service.ImportSheet(context.Background(), buf, "vendas.xlsx", domain.ProductPolpa, julho2024(t))

	var storageErr *StorageError
	require.ErrorAs(t, err, &storageErr)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestService_ImportWorkbook(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockSaleRecordRepository(ctrl)
	service := NewService(repo)

	extratoRows := [][]string{
		ExpectedColumns(domain.ProductExtrato),
		{"2024-07-05", "Exportação", "Europa", "Indústria", "800", "45.00", "12.5", "etanol", "7", "9", "sim", "8"},
	}

	// Duas abas reconhecidas, uma com nome inválido
	expectImportPartition(repo, 0).Times(2)

	buf := workbookBuffer(t, []testSheet{
		{name: "Polpa Jul", rows: polpaSheetRows("2024-07-01", "2024-07-15")},
		{name: "Extrato Jul", rows: extratoRows},
		{name: "Resumo Anual", rows: [][]string{{"qualquer"}}},
	})

	result, err := service.ImportWorkbook(context.Background(), buf, "anual.xlsx", 2024)

	require.NoError(t, err)
	assert.Equal(t, 2024, result.Ano)
	require.Len(t, result.Abas, 2)
	assert.Equal(t, "Polpa Jul", result.Abas[0].Aba)
	assert.Equal(t, "Extrato Jul", result.Abas[1].Aba)
	assert.Equal(t, 3, result.TotalLinhas)
	require.Len(t, result.Erros, 1)
	assert.Contains(t, result.Erros[0], "Resumo Anual")
}

func TestService_ImportWorkbook_PartitionIsolationAcrossSheets(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockSaleRecordRepository(ctrl)
	service := NewService(repo)

	var partitions []string
	repo.EXPECT().
		ImportPartition(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(
			_ context.Context,
			tipo domain.ProductType,
			comp domain.Competence,
			records []domain.SaleRecord,
			entry *domain.UploadLedgerEntry,
		) (*domain.UploadLedgerEntry, error) {
			partitions = append(partitions, tipo.String()+"|"+comp.String())
			saved := *entry
			saved.Tipo = tipo
			saved.Competencia = comp.String()
			saved.LinhasImportadas = len(records)
			return &saved, nil
		}).
		Times(2)

	buf := workbookBuffer(t, []testSheet{
		{name: "Polpa Jul", rows: polpaSheetRows("2024-07-01")},
		{name: "Polpa Ago", rows: polpaSheetRows("2024-08-01")},
	})

	_, err := service.ImportWorkbook(context.Background(), buf, "anual.xlsx", 2024)

	require.NoError(t, err)
	// Cada aba atinge exatamente a sua partição
	assert.Equal(t, []string{"polpa|2024-07", "polpa|2024-08"}, partitions)
}

func TestService_ImportWorkbook_RejectsCSV(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := NewService(mocks.NewMockSaleRecordRepository(ctrl))

	_, err := service.ImportWorkbook(context.Background(), strings.NewReader("a,b\n"), "vendas.csv", 2024)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Erros[0], ".xlsx")
}

func TestService_ImportWorkbook_NoRecognizableSheets(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := NewService(mocks.NewMockSaleRecordRepository(ctrl))

	buf := workbookBuffer(t, []testSheet{
		{name: "Resumo", rows: [][]string{{"qualquer"}}},
		{name: "Notas", rows: [][]string{{"qualquer"}}},
	})

	_, err := service.ImportWorkbook(context.Background(), buf, "anual.xlsx", 2024)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Len(t, validationErr.Erros, 2)
	assert.Equal(t, apiErrors.ErrSheetUnrecognized, ErrorCode(err))
}

func TestService_ImportWorkbook_CancelledContext(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := NewService(mocks.NewMockSaleRecordRepository(ctrl))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	buf := workbookBuffer(t, []testSheet{
		{name: "Polpa Jul", rows: polpaSheetRows("2024-07-01")},
	})

	_, err := service.ImportWorkbook(ctx, buf, "anual.xlsx", 2024)

	assert.ErrorIs(t, err, context.Canceled)
}
