package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/hugohenrick/loja-api/internal/config"
	"github.com/hugohenrick/loja-api/internal/infrastructure/database"
	"github.com/joho/godotenv"
)

func main() {
	// Carregar variáveis de ambiente
	if err := godotenv.Load(); err != nil {
		log.Printf("Aviso: Arquivo .env não encontrado: %v", err)
	}

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "uso: %s [up|down|version]\n", os.Args[0])
	}
	flag.Parse()

	command := "up"
	if flag.NArg() > 0 {
		command = flag.Arg(0)
	}

	// A migração só precisa da conexão, sem as demais validações da API
	pg := config.PostgresConfig{
		URL:      os.Getenv("DATABASE_URL"),
		Host:     envOr("DB_HOST", "localhost"),
		Port:     5432,
		User:     envOr("DB_USER", "postgres"),
		Password: envOr("DB_PASSWORD", "postgres"),
		Database: envOr("DB_NAME", "loja"),
		SSLMode:  envOr("DB_SSL_MODE", "disable"),
	}
	if port := os.Getenv("DB_PORT"); port != "" {
		if _, err := fmt.Sscanf(port, "%d", &pg.Port); err != nil {
			log.Fatalf("DB_PORT inválida: %v", err)
		}
	}

	mg, err := database.NewMigrator(pg.ConnectionString())
	if err != nil {
		log.Fatalf("Erro ao conectar com o banco de dados: %v", err)
	}
	defer mg.Close()

	switch command {
	case "up":
		if err := mg.Up(); err != nil {
			log.Fatalf("Erro ao executar migrações: %v", err)
		}
		log.Println("Migrações executadas com sucesso!")
	case "down":
		if err := mg.Down(); err != nil {
			log.Fatalf("Erro ao reverter migração: %v", err)
		}
		log.Println("Última migração revertida")
	case "version":
		version, dirty, err := mg.Version()
		if err != nil {
			log.Fatalf("Erro ao consultar versão: %v", err)
		}
		log.Printf("Versão: %d (dirty=%t)", version, dirty)
	default:
		flag.Usage()
		os.Exit(2)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
