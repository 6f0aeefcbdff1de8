package reporting

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/murilozgodoy/dashboard-mangas-backend/infrastructure/repository/mocks"
	"github.com/murilozgodoy/dashboard-mangas-backend/internal/domain"
)

func newAnalyticsService(t *testing.T) (ReportService, *mocks.MockSaleRecordRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	records := mocks.NewMockSaleRecordRepository(ctrl)
	return NewService(records, mocks.NewMockUploadLedgerRepository(ctrl)), records
}

func TestService_AveragePriceByPeriod(t *testing.T) {
	service, records := newAnalyticsService(t)

	filter := domain.ReportFilter{Tipo: domain.ProductPolpa}
	records.EXPECT().
		AveragePriceByPeriod(gomock.Any(), filter).
		Return([]*domain.PricePoint{
			{Periodo: "2024-06", PrecoMedio: 12.3456, Registros: 3},
		}, nil)

	points, err := service.AveragePriceByPeriod(context.Background(), filter)

	require.NoError(t, err)
	require.Len(t, points, 1)
	assert.Equal(t, 12.35, points[0].PrecoMedio)
	assert.Equal(t, 3, points[0].Registros)
}

func TestService_PolpaDeductionsByPeriod(t *testing.T) {
	service, records := newAnalyticsService(t)

	// O tipo não vem do chamador: deduções só existem na polpa
	records.EXPECT().
		DeductionsByPeriod(gomock.Any(), domain.ReportFilter{Tipo: domain.ProductPolpa}).
		Return([]*domain.LogisticsPoint{
			{Periodo: "2024-06", LogisticaTotal: 100.005, DescontoTotal: 9.999, Registros: 2},
		}, nil)

	points, err := service.PolpaDeductionsByPeriod(context.Background(), nil, nil)

	require.NoError(t, err)
	require.Len(t, points, 1)
	assert.Equal(t, 100.01, points[0].LogisticaTotal)
	assert.Equal(t, 10.0, points[0].DescontoTotal)
}

func TestService_ExtratoConcentrationByPeriod(t *testing.T) {
	service, records := newAnalyticsService(t)

	records.EXPECT().
		ConcentrationByPeriod(gomock.Any(), domain.ReportFilter{Tipo: domain.ProductExtrato}).
		Return([]*domain.ConcentrationPoint{
			{Periodo: "2024-07", ConcentracaoMedia: 61.238, Registros: 4},
		}, nil)

	points, err := service.ExtratoConcentrationByPeriod(context.Background(), nil, nil)

	require.NoError(t, err)
	require.Len(t, points, 1)
	assert.Equal(t, 61.24, points[0].ConcentracaoMedia)
}

func TestService_RevenueQuantityByPeriod(t *testing.T) {
	service, records := newAnalyticsService(t)

	filter := domain.ReportFilter{Tipo: domain.ProductExtrato}
	records.EXPECT().
		RevenueTimeseries(gomock.Any(), filter).
		Return([]*domain.RevenuePoint{
			{Periodo: "2024-06", Receita: 500.0, Quantidade: 20.0},
		}, nil)

	points, err := service.RevenueQuantityByPeriod(context.Background(), filter)

	require.NoError(t, err)
	require.Len(t, points, 1)
	assert.Equal(t, "2024-06", points[0].Periodo)
	assert.Equal(t, 500.0, points[0].Receita)
	assert.Equal(t, 20.0, points[0].Quantidade)
}

func TestService_RevenueByPeriod_Todos(t *testing.T) {
	service, records := newAnalyticsService(t)

	records.EXPECT().
		RevenueTimeseries(gomock.Any(), domain.ReportFilter{Tipo: domain.ProductPolpa}).
		Return([]*domain.RevenuePoint{
			{Periodo: "2024-06", Receita: 100.0},
			{Periodo: "2024-07", Receita: 200.0},
		}, nil)
	records.EXPECT().
		RevenueTimeseries(gomock.Any(), domain.ReportFilter{Tipo: domain.ProductExtrato}).
		Return([]*domain.RevenuePoint{
			{Periodo: "2024-07", Receita: 50.0},
			{Periodo: "2024-08", Receita: 25.0},
		}, nil)

	points, err := service.RevenueByPeriod(context.Background(), "todos", nil, nil)

	require.NoError(t, err)
	require.Len(t, points, 3)

	// A união das competências sai ordenada, com a receita de cada tipo
	// aberta mesmo quando um dos lados não tem o período
	assert.Equal(t, "2024-06", points[0].Periodo)
	assert.Equal(t, 100.0, points[0].Receita)
	require.NotNil(t, points[0].ReceitaExtrato)
	assert.Equal(t, 0.0, *points[0].ReceitaExtrato)

	assert.Equal(t, "2024-07", points[1].Periodo)
	assert.Equal(t, 250.0, points[1].Receita)
	assert.Equal(t, 200.0, *points[1].ReceitaPolpa)
	assert.Equal(t, 50.0, *points[1].ReceitaExtrato)

	assert.Equal(t, "2024-08", points[2].Periodo)
	assert.Equal(t, 25.0, points[2].Receita)
	assert.Equal(t, 0.0, *points[2].ReceitaPolpa)
}

func TestService_RevenueByPeriod_Typed(t *testing.T) {
	service, records := newAnalyticsService(t)

	records.EXPECT().
		RevenueTimeseries(gomock.Any(), domain.ReportFilter{Tipo: domain.ProductPolpa}).
		Return([]*domain.RevenuePoint{
			{Periodo: "2024-06", Receita: 100.0, Quantidade: 40.0},
		}, nil)

	points, err := service.RevenueByPeriod(context.Background(), "polpa", nil, nil)

	require.NoError(t, err)
	require.Len(t, points, 1)
	require.NotNil(t, points[0].QuantidadeKg)
	assert.Equal(t, 40.0, *points[0].QuantidadeKg)
	assert.Nil(t, points[0].QuantidadeLitros)
	assert.Nil(t, points[0].ReceitaPolpa)
}

func TestService_RevenueByPeriod_InvalidType(t *testing.T) {
	service, _ := newAnalyticsService(t)

	_, err := service.RevenueByPeriod(context.Background(), "suco", nil, nil)

	assert.Error(t, err)
}

func TestService_TopChannelSeries(t *testing.T) {
	service, records := newAnalyticsService(t)

	filter := domain.ReportFilter{Tipo: domain.ProductPolpa}
	records.EXPECT().
		TopChannels(gomock.Any(), filter, 2).
		Return([]*domain.ChannelRevenue{
			{Canal: "Atacado", Receita: 900.0},
			{Canal: "Varejo", Receita: 400.0},
		}, nil)
	records.EXPECT().
		ChannelRevenueByPeriod(gomock.Any(), filter, []string{"Atacado", "Varejo"}).
		Return([]*domain.GroupPeriodRevenue{
			{Grupo: "Atacado", Periodo: "2024-06", Receita: 500.0},
			{Grupo: "Varejo", Periodo: "2024-06", Receita: 400.0},
			{Grupo: "Atacado", Periodo: "2024-07", Receita: 400.0},
		}, nil)

	series, err := service.TopChannelSeries(context.Background(), filter, 2)

	require.NoError(t, err)
	require.Len(t, series, 2)

	// A ordem do ranking por receita total é preservada na resposta
	assert.Equal(t, "Atacado", series[0].Canal)
	require.Len(t, series[0].Dados, 2)
	assert.Equal(t, "2024-06", series[0].Dados[0].Periodo)
	assert.Equal(t, "2024-07", series[0].Dados[1].Periodo)

	assert.Equal(t, "Varejo", series[1].Canal)
	require.Len(t, series[1].Dados, 1)
	assert.Equal(t, 400.0, series[1].Dados[0].Receita)
}

func TestService_TopChannelSeries_Empty(t *testing.T) {
	service, records := newAnalyticsService(t)

	filter := domain.ReportFilter{Tipo: domain.ProductExtrato}
	records.EXPECT().
		TopChannels(gomock.Any(), filter, 5).
		Return([]*domain.ChannelRevenue{}, nil)

	series, err := service.TopChannelSeries(context.Background(), filter, 5)

	require.NoError(t, err)
	assert.Empty(t, series)
	assert.NotNil(t, series)
}

func TestService_TopSegmentSeries(t *testing.T) {
	service, records := newAnalyticsService(t)

	filter := domain.ReportFilter{Tipo: domain.ProductPolpa}
	records.EXPECT().
		SegmentRanking(gomock.Any(), filter, 1).
		Return([]*domain.SegmentRevenue{
			{Segmento: "Indústria", Receita: 800.0, Registros: 8},
		}, nil)
	records.EXPECT().
		SegmentRevenueByPeriod(gomock.Any(), filter, []string{"Indústria"}).
		Return([]*domain.GroupPeriodRevenue{
			{Grupo: "Indústria", Periodo: "2024-06", Receita: 800.0},
		}, nil)

	series, err := service.TopSegmentSeries(context.Background(), filter, 1)

	require.NoError(t, err)
	require.Len(t, series, 1)
	assert.Equal(t, "Indústria", series[0].Segmento)
	require.Len(t, series[0].Dados, 1)
	assert.Equal(t, 800.0, series[0].Dados[0].Receita)
}

func TestService_NPSByChannel(t *testing.T) {
	service, records := newAnalyticsService(t)

	filter := domain.ReportFilter{Tipo: domain.ProductPolpa}
	records.EXPECT().
		NPSByChannel(gomock.Any(), filter, 10).
		Return([]*domain.ChannelNPS{
			{Canal: "Atacado", NPSMedio: 8.666, Receita: 900.0, Registros: 3},
		}, nil)

	channels, err := service.NPSByChannel(context.Background(), filter, 10)

	require.NoError(t, err)
	require.Len(t, channels, 1)
	assert.Equal(t, 8.67, channels[0].NPSMedio)
}

func TestService_QualityIndicesByPeriod(t *testing.T) {
	service, records := newAnalyticsService(t)

	qualidade := 87.345
	perda := 2.006
	filter := domain.ReportFilter{Tipo: domain.ProductPolpa}
	records.EXPECT().
		QualityIndicesByPeriod(gomock.Any(), filter).
		Return([]*domain.QualityIndexPoint{
			{Periodo: "2024-06", QualidadeMedia: &qualidade, PerdaMedia: &perda, Registros: 5},
		}, nil)

	points, err := service.QualityIndicesByPeriod(context.Background(), filter)

	require.NoError(t, err)
	require.Len(t, points, 1)
	assert.Equal(t, 87.35, *points[0].QualidadeMedia)
	assert.Equal(t, 2.01, *points[0].PerdaMedia)
	assert.Nil(t, points[0].CorMedia)
	assert.Nil(t, points[0].PurezaMedia)
}
