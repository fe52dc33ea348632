package main

import (
	"context"
	"database/sql"
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/smartstore-sales-api/infrastructure/database/postgres"
	"github.com/vfg2006/smartstore-sales-api/internal/config"
	"github.com/vfg2006/smartstore-sales-api/internal/domain"
	"golang.org/x/crypto/bcrypt"
)

const schema = `
CREATE TABLE IF NOT EXISTS stores (
	id         VARCHAR(64)  PRIMARY KEY,
	name       VARCHAR(255) NOT NULL,
	url        VARCHAR(512) NOT NULL UNIQUE,
	created_at TIMESTAMPTZ  NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMPTZ  NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS users (
	id            SERIAL       PRIMARY KEY,
	username      VARCHAR(255) NOT NULL UNIQUE,
	password_hash VARCHAR(255) NOT NULL,
	role          VARCHAR(32)  NOT NULL DEFAULT 'user',
	created_at    TIMESTAMPTZ  NOT NULL DEFAULT NOW(),
	updated_at    TIMESTAMPTZ  NOT NULL DEFAULT NOW()
);
`

// Lojas acompanhadas desde a primeira versão do painel
var seedStores = []domain.Store{
	{ID: "honey_mk", Name: "꿀달달", URL: "https://smartstore.naver.com/honey_mk"},
	{ID: "minimalstudio", Name: "미니멀스튜디오", URL: "https://smartstore.naver.com/minimalstudio"},
	{ID: "qweasdcziuoiasjlksdwe", Name: "꿀밤선배", URL: "https://smartstore.naver.com/qweasdcziuoiasjlksdwe"},
	{ID: "codewiner", Name: "코드위너", URL: "https://smartstore.naver.com/codewiner"},
}

func setupLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
	logrus.Info("Iniciando script de migração...")
}

func createSchema(tx *sql.Tx) error {
	logrus.Info("Criando tabelas stores e users...")
	_, err := tx.Exec(schema)
	return err
}

func insertStores(tx *sql.Tx, stores []domain.Store) error {
	logrus.Infof("Iniciando inserção de %d lojas...", len(stores))
	startTime := time.Now()

	stmt, err := tx.Prepare(`INSERT INTO stores (id, name, url) VALUES ($1, $2, $3) ON CONFLICT (id) DO NOTHING`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	inserted := 0
	for i, s := range stores {
		res, err := stmt.Exec(s.ID, s.Name, s.URL)
		if err != nil {
			logrus.Errorf("ERRO ao inserir loja [%d/%d] %s: %v", i+1, len(stores), s.Name, err)
			return err
		}

		if n, _ := res.RowsAffected(); n > 0 {
			inserted++
		}
	}

	logrus.Infof("Inserção de lojas concluída em %v. Novas: %d, já existentes: %d",
		time.Since(startTime), inserted, len(stores)-inserted)

	return nil
}

// upsertAdmin cria ou promove o administrador quando MIGRATION_ADMIN_USERNAME e
// MIGRATION_ADMIN_PASSWORD estão definidos; o registro público só cria usuários comuns
func upsertAdmin(tx *sql.Tx, username, password string) error {
	username = strings.ToLower(strings.TrimSpace(username))
	if username == "" || password == "" {
		logrus.Info("Administrador não configurado, pulando")
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	_, err = tx.Exec(`
		INSERT INTO users (username, password_hash, role) VALUES ($1, $2, $3)
		ON CONFLICT (username) DO UPDATE SET password_hash = EXCLUDED.password_hash, role = EXCLUDED.role, updated_at = NOW()`,
		username, string(hash), domain.RoleAdmin,
	)
	if err != nil {
		return err
	}

	logrus.WithField("username", username).Info("Administrador criado/atualizado")
	return nil
}

func main() {
	setupLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatalf("ERRO ao carregar configuração: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.Fatalf("ERRO ao conectar ao banco de dados: %v", err)
	}
	defer conn.Close()

	startTime := time.Now()

	err = conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		if err := createSchema(tx); err != nil {
			return err
		}

		if err := insertStores(tx, seedStores); err != nil {
			return err
		}

		return upsertAdmin(tx, os.Getenv("MIGRATION_ADMIN_USERNAME"), os.Getenv("MIGRATION_ADMIN_PASSWORD"))
	})
	if err != nil {
		logrus.Fatalf("ERRO na migração, transação desfeita: %v", err)
	}

	logrus.Infof("Migração concluída com sucesso em %v", time.Since(startTime))
}
