package importing

import (
	"strings"
	"time"

	"github.com/murilozgodoy/dashboard-mangas-backend/internal/domain"
	"github.com/murilozgodoy/dashboard-mangas-backend/pkg/utils"
)

// RecordNormalizer converte linhas validadas em SaleRecord tipados, derivando
// a receita e carimbando a partição (tipo, competência). Função pura e
// determinística: mesmo insumo produz sempre os mesmos registros, o que
// garante a idempotência da reimportação.
type RecordNormalizer struct{}

func NewRecordNormalizer() *RecordNormalizer {
	return &RecordNormalizer{}
}

// Normalize produz os registros na ordem das linhas de entrada. uploadedAt é
// recebido de fora para manter o normalizador livre de efeitos.
func (n *RecordNormalizer) Normalize(
	tipo domain.ProductType,
	comp domain.Competence,
	rows []RawRow,
	sourceFile string,
	uploadedAt time.Time,
) []domain.SaleRecord {
	records := make([]domain.SaleRecord, 0, len(rows))

	for _, row := range rows {
		qtyField, priceField := quantityColumns(tipo)
		date, _ := parseDate(row["data_pedido"])
		qty, _ := parseNumber(row[qtyField])
		price, _ := parseNumber(row[priceField])

		record := domain.SaleRecord{
			Tipo:            tipo,
			Competencia:     comp,
			DataPedido:      date,
			Canal:           row["canal"],
			RegiaoDestino:   row["regiao_destino"],
			ClienteSegmento: row["cliente_segmento"],
			Quantidade:      qty,
			PrecoUnitario:   price,
			NPS:             optionalNumber(row["nps_0a10"]),
			SourceFile:      sourceFile,
			UploadedAt:      uploadedAt,
		}

		if tipo == domain.ProductPolpa {
			record.LogisticaBRL = optionalNumber(row["logistica_brl"])
			record.DescontoBRL = optionalNumber(row["desconto_brl"])
			record.LoteID = optionalString(row["lote_id"])
			record.IndiceQualidade = optionalNumber(row["indice_qualidade_1a10"])
			record.PerdaProcessamentoPct = optionalNumber(row["perda_processamento_pct"])
		} else {
			record.ConcentracaoAtivaPct = optionalNumber(row["concentracao_ativa_pct"])
			record.TipoSolvente = optionalString(row["tipo_solvente"])
			record.IndiceCor = optionalNumber(row["indice_cor_1a10"])
			record.IndicePureza = optionalNumber(row["indice_pureza_1a10"])
			record.CertificacaoExigida = optionalCertification(row["certificacao_exigida"])
		}

		record.Receita = deriveRevenue(tipo, record)
		records = append(records, record)
	}

	return records
}

// deriveRevenue aplica a política de receita fixada por tipo: polpa desconta
// logística e desconto comercial do bruto; extrato não carrega essas colunas
// e fica no bruto quantidade x preço
func deriveRevenue(tipo domain.ProductType, r domain.SaleRecord) float64 {
	revenue := r.Quantidade * r.PrecoUnitario

	if tipo == domain.ProductPolpa {
		if r.LogisticaBRL != nil {
			revenue -= *r.LogisticaBRL
		}
		if r.DescontoBRL != nil {
			revenue -= *r.DescontoBRL
		}
	}

	return utils.RoundWithTwoDecimalPlace(revenue)
}

func optionalNumber(s string) *float64 {
	if s == "" {
		return nil
	}
	n, err := parseNumber(s)
	if err != nil {
		return nil
	}
	return &n
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

var truthyCertification = map[string]bool{
	"sim": true, "true": true, "verdadeiro": true, "1": true,
}

func optionalCertification(s string) *bool {
	if s == "" {
		return nil
	}
	b := truthyCertification[strings.ToLower(s)]
	return &b
}
