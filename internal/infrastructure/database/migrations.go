package database

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	migratepgx "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/jackc/pgx/v5/stdlib"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Migrator aplica as migrações SQL embutidas no binário
type Migrator struct {
	m *migrate.Migrate
}

// NewMigrator abre uma conexão dedicada para as migrações
func NewMigrator(connString string) (*Migrator, error) {
	db, err := sql.Open("pgx", connString)
	if err != nil {
		return nil, fmt.Errorf("erro ao abrir conexão de migração: %w", err)
	}

	driver, err := migratepgx.WithInstance(db, &migratepgx.Config{})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("erro ao criar driver de migração: %w", err)
	}

	source, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return nil, fmt.Errorf("erro ao criar fonte iofs: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, "pgx5", driver)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar migrate: %w", err)
	}
	return &Migrator{m: m}, nil
}

// Up aplica todas as migrações pendentes
func (mg *Migrator) Up() error {
	if err := mg.m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("erro ao aplicar migrações: %w", err)
	}
	return nil
}

// Down desfaz a última migração aplicada
func (mg *Migrator) Down() error {
	if err := mg.m.Steps(-1); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("erro ao reverter migração: %w", err)
	}
	return nil
}

// Version retorna a versão atual do schema
func (mg *Migrator) Version() (uint, bool, error) {
	version, dirty, err := mg.m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, false, nil
	}
	return version, dirty, err
}

// Close libera a fonte e a conexão
func (mg *Migrator) Close() error {
	srcErr, dbErr := mg.m.Close()
	return errors.Join(srcErr, dbErr)
}

// RunMigrations aplica as migrações pendentes e fecha o migrator
func RunMigrations(connString string) error {
	mg, err := NewMigrator(connString)
	if err != nil {
		return err
	}
	defer mg.Close()
	return mg.Up()
}
