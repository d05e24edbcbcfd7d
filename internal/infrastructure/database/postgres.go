package database

import (
	"context"
	"fmt"
	"time"

	"github.com/hugohenrick/loja-api/internal/config"
	"github.com/hugohenrick/loja-api/pkg/logger"
	pgxdecimal "github.com/jackc/pgx-shopspring-decimal"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
)

// PostgresDB gerencia a conexão com o PostgreSQL
type PostgresDB struct {
	pool   *pgxpool.Pool
	sqlx   *sqlx.DB
	config config.PostgresConfig
	log    logger.Logger
}

// NewPostgresDB cria uma nova conexão com o banco de dados PostgreSQL
func NewPostgresDB(ctx context.Context, cfg config.PostgresConfig, log logger.Logger) (*PostgresDB, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.ConnectionString())
	if err != nil {
		return nil, fmt.Errorf("erro ao analisar configuração do pool: %w", err)
	}

	// Ajustar configurações do pool
	poolConfig.MaxConns = cfg.MaxConnections
	poolConfig.MinConns = cfg.MinConnections
	poolConfig.MaxConnLifetime = cfg.MaxConnLifetime
	poolConfig.MaxConnIdleTime = 30 * time.Minute
	poolConfig.HealthCheckPeriod = 1 * time.Minute

	// NUMERIC <-> decimal.Decimal em todas as conexões
	poolConfig.AfterConnect = func(ctx context.Context, conn *pgx.Conn) error {
		pgxdecimal.Register(conn.TypeMap())
		return nil
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar pool de conexões: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("erro ao verificar conexão com o banco de dados: %w", err)
	}

	log.Info("conectado ao PostgreSQL", "host", cfg.Host, "database", cfg.Database)
	// Visão database/sql do mesmo pool, aberta uma única vez e fechada em Close
	reporting := sqlx.NewDb(stdlib.OpenDBFromPool(pool), "pgx")

	return &PostgresDB{pool: pool, sqlx: reporting, config: cfg, log: log}, nil
}

// Pool retorna o pool de conexões pgx
func (db *PostgresDB) Pool() *pgxpool.Pool {
	return db.pool
}

// SQLX retorna um *sqlx.DB apoiado no mesmo pool, usado pelas consultas de relatório
func (db *PostgresDB) SQLX() *sqlx.DB {
	return db.sqlx
}

// Close fecha a visão sqlx e o pool de conexões
func (db *PostgresDB) Close() {
	if db.sqlx != nil {
		if err := db.sqlx.Close(); err != nil {
			db.log.Warn("erro ao fechar conexão sqlx", "error", err)
		}
	}
	if db.pool != nil {
		db.pool.Close()
	}
}

// Transaction executa uma função dentro de uma transação
func (db *PostgresDB) Transaction(ctx context.Context, txFunc func(tx pgx.Tx) error) error {
	return RunInTx(ctx, db.pool, db.log, txFunc)
}

// RunInTx abre uma transação no pool, faz rollback se txFunc falhar e commit caso contrário
func RunInTx(ctx context.Context, pool *pgxpool.Pool, log logger.Logger, txFunc func(tx pgx.Tx) error) error {
	tx, err := pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("erro ao iniciar transação: %w", err)
	}

	if err := txFunc(tx); err != nil {
		// Rollback em caso de erro
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			log.Error("erro ao fazer rollback", "error", rbErr)
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("erro ao fazer commit: %w", err)
	}

	return nil
}
