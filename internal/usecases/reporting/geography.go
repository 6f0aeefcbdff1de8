package reporting

import (
	"context"
	"strings"

	"github.com/murilozgodoy/dashboard-mangas-backend/internal/domain"
)

// regionMacroEntries mapeia regiao_destino (estado, sigla ou variação sem
// acento, como vem na base) para a macro região IBGE. A ordem importa: o
// casamento por substring percorre a lista de cima para baixo.
var regionMacroEntries = []struct {
	name  string
	macro string
}{
	{"norte", "Norte"},
	{"acre", "Norte"}, {"ac", "Norte"},
	{"amazonas", "Norte"}, {"am", "Norte"},
	{"amapá", "Norte"}, {"ap", "Norte"}, {"amapa", "Norte"},
	{"pará", "Norte"}, {"pa", "Norte"}, {"para", "Norte"},
	{"rondônia", "Norte"}, {"ro", "Norte"}, {"rondonia", "Norte"},
	{"roraima", "Norte"}, {"rr", "Norte"},
	{"tocantins", "Norte"}, {"to", "Norte"},

	{"nordeste", "Nordeste"},
	{"alagoas", "Nordeste"}, {"al", "Nordeste"},
	{"bahia", "Nordeste"}, {"ba", "Nordeste"},
	{"ceará", "Nordeste"}, {"ce", "Nordeste"}, {"ceara", "Nordeste"},
	{"maranhão", "Nordeste"}, {"ma", "Nordeste"}, {"maranhao", "Nordeste"},
	{"paraíba", "Nordeste"}, {"pb", "Nordeste"}, {"paraiba", "Nordeste"},
	{"pernambuco", "Nordeste"}, {"pe", "Nordeste"},
	{"piauí", "Nordeste"}, {"pi", "Nordeste"}, {"piaui", "Nordeste"},
	{"rio grande do norte", "Nordeste"}, {"rn", "Nordeste"},
	{"sergipe", "Nordeste"}, {"se", "Nordeste"},

	{"centro-oeste", "Centro-Oeste"}, {"centro oeste", "Centro-Oeste"},
	{"distrito federal", "Centro-Oeste"}, {"df", "Centro-Oeste"},
	{"goiás", "Centro-Oeste"}, {"go", "Centro-Oeste"}, {"goias", "Centro-Oeste"},
	{"mato grosso", "Centro-Oeste"}, {"mt", "Centro-Oeste"},
	{"mato grosso do sul", "Centro-Oeste"}, {"ms", "Centro-Oeste"},

	{"sudeste", "Sudeste"},
	{"espírito santo", "Sudeste"}, {"es", "Sudeste"}, {"espirito santo", "Sudeste"},
	{"minas gerais", "Sudeste"}, {"mg", "Sudeste"},
	{"rio de janeiro", "Sudeste"}, {"rj", "Sudeste"},
	{"são paulo", "Sudeste"}, {"sp", "Sudeste"}, {"sao paulo", "Sudeste"}, {"paulista", "Sudeste"},

	{"sul", "Sul"},
	{"paraná", "Sul"}, {"pr", "Sul"}, {"parana", "Sul"},
	{"rio grande do sul", "Sul"}, {"rs", "Sul"}, {"gaúcho", "Sul"}, {"gaucho", "Sul"},
	{"santa catarina", "Sul"}, {"sc", "Sul"},
}

var regionMacroExact = func() map[string]string {
	m := make(map[string]string, len(regionMacroEntries))
	for _, e := range regionMacroEntries {
		m[e.name] = e.macro
	}
	return m
}()

// Ordem fixa de apresentação das macro regiões na resposta
var macroRegionOrder = []string{"Norte", "Nordeste", "Centro-Oeste", "Sudeste", "Sul", "Outros"}

// macroRegion consolida uma regiao_destino na macro região IBGE: casamento
// exato primeiro, depois substring (siglas de duas letras só casam exato,
// para não capturar trechos de outros nomes). Regiões não reconhecidas caem
// em "Outros".
func macroRegion(regiao string) string {
	name := strings.ToLower(strings.TrimSpace(regiao))
	if name == "" {
		return "Outros"
	}

	if macro, ok := regionMacroExact[name]; ok {
		return macro
	}

	for _, e := range regionMacroEntries {
		if len(e.name) > 2 && strings.Contains(name, e.name) {
			return e.macro
		}
	}

	return "Outros"
}

// MacroRegionBreakdown consolida os totais por regiao_destino nas macro
// regiões do Brasil, na ordem fixa Norte, Nordeste, Centro-Oeste, Sudeste,
// Sul, Outros. A quantidade alimenta a chave da unidade do tipo; a outra
// fica zerada.
func (s *Service) MacroRegionBreakdown(ctx context.Context, filter domain.ReportFilter) ([]*domain.MacroRegionStats, error) {
	raw, err := s.records.RegionBreakdown(ctx, filter)
	if err != nil {
		return nil, err
	}

	totals := make(map[string]*domain.MacroRegionStats)
	for _, region := range raw {
		macro := macroRegion(region.Regiao)
		stats, ok := totals[macro]
		if !ok {
			stats = &domain.MacroRegionStats{Regiao: macro}
			totals[macro] = stats
		}

		stats.Receita += region.Receita
		stats.Registros += region.Registros
		if filter.Tipo == domain.ProductPolpa {
			stats.QuantidadeKg += region.Quantidade
		} else {
			stats.QuantidadeLitros += region.Quantidade
		}
	}

	out := make([]*domain.MacroRegionStats, 0, len(totals))
	for _, name := range macroRegionOrder {
		if stats, ok := totals[name]; ok {
			out = append(out, stats)
		}
	}

	return out, nil
}
