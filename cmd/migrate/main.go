package main

import (
	"database/sql"
	"log"
	"time"

	_ "github.com/lib/pq"
	"github.com/murilozgodoy/dashboard-mangas-backend/internal/config"
)

var statements = []struct {
	name string
	sql  string
}{
	{
		name: "tabela sale_records",
		sql: `CREATE TABLE IF NOT EXISTS sale_records (
			id                      BIGSERIAL PRIMARY KEY,
			tipo                    VARCHAR(10) NOT NULL,
			competencia             VARCHAR(7) NOT NULL,
			data_pedido             DATE NOT NULL,
			canal                   VARCHAR(100) NOT NULL,
			regiao_destino          VARCHAR(100) NOT NULL,
			cliente_segmento        VARCHAR(100) NOT NULL,
			quantidade              DOUBLE PRECISION NOT NULL,
			preco_unitario          DOUBLE PRECISION NOT NULL,
			receita                 DOUBLE PRECISION NOT NULL,
			logistica_brl           DOUBLE PRECISION,
			desconto_brl            DOUBLE PRECISION,
			lote_id                 VARCHAR(50),
			indice_qualidade        DOUBLE PRECISION,
			perda_processamento_pct DOUBLE PRECISION,
			concentracao_ativa_pct  DOUBLE PRECISION,
			tipo_solvente           VARCHAR(50),
			indice_cor              DOUBLE PRECISION,
			indice_pureza           DOUBLE PRECISION,
			certificacao_exigida    BOOLEAN,
			nps                     DOUBLE PRECISION,
			source_file             VARCHAR(255) NOT NULL,
			uploaded_at             TIMESTAMPTZ NOT NULL
		)`,
	},
	{
		name: "índice de partição de sale_records",
		sql: `CREATE INDEX IF NOT EXISTS idx_sale_records_tipo_competencia
			ON sale_records (tipo, competencia)`,
	},
	{
		name: "tabela upload_ledger",
		sql: `CREATE TABLE IF NOT EXISTS upload_ledger (
			id                  VARCHAR(12) PRIMARY KEY,
			tipo                VARCHAR(10) NOT NULL,
			competencia         VARCHAR(7) NOT NULL,
			source_file         VARCHAR(255) NOT NULL,
			sheet_name          VARCHAR(255) NOT NULL DEFAULT '',
			uploaded_at         TIMESTAMPTZ NOT NULL,
			linhas_importadas   INTEGER NOT NULL,
			linhas_substituidas INTEGER NOT NULL,
			avisos              TEXT[] NOT NULL DEFAULT '{}'
		)`,
	},
	{
		name: "índice de recência de upload_ledger",
		sql: `CREATE INDEX IF NOT EXISTS idx_upload_ledger_uploaded_at
			ON upload_ledger (uploaded_at DESC, id DESC)`,
	},
}

func main() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.Println("Iniciando script de migração...")

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("ERRO ao carregar configuração: %v", err)
	}

	db, err := sql.Open(cfg.Database.Driver, cfg.Database.DSN)
	if err != nil {
		log.Fatalf("ERRO ao conectar ao banco de dados: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("ERRO ao verificar conexão com o banco: %v", err)
	}
	log.Println("Conexão com o banco de dados estabelecida com sucesso")

	startTime := time.Now()

	tx, err := db.Begin()
	if err != nil {
		log.Fatalf("ERRO ao iniciar transação: %v", err)
	}

	for _, stmt := range statements {
		if _, err := tx.Exec(stmt.sql); err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				log.Printf("ERRO ao reverter transação: %v", rbErr)
			}
			log.Fatalf("ERRO ao aplicar %s: %v", stmt.name, err)
		}
		log.Printf("Aplicado: %s", stmt.name)
	}

	if err := tx.Commit(); err != nil {
		log.Fatalf("ERRO ao confirmar transação: %v", err)
	}

	log.Printf("Migração concluída em %v!", time.Since(startTime))
}
