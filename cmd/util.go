package cmd

import (
	"database/sql"
	"fmt"
	"log"
	"portfoliolab/api"
	"portfoliolab/internal"
	"portfoliolab/internal/repository"

	_ "github.com/lib/pq"
)

func CloseDependencies(handler *api.ApiHandler) {
	err := handler.Db.Close()
	if err != nil {
		log.Fatalf("failed to close db: %v", err)
	}
}

func InitializeDependencies() (*api.ApiHandler, error) {
	secrets, err := internal.LoadSecrets()
	if err != nil {
		return nil, fmt.Errorf("failed to load secrets: %w", err)
	}

	gptRepository, err := repository.NewGptRepository(secrets.GptApiKey)
	if err != nil {
		return nil, err
	}

	dbConn, err := sql.Open("postgres", secrets.Db.ToConnectionStr())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to db: %w", err)
	}

	apiHandler := &api.ApiHandler{
		Db:                         dbConn,
		PortfolioSessionRepository: repository.NewPortfolioSessionRepository(dbConn),
		GptRepository:              gptRepository,
		QuoteRepository:            repository.NewQuoteRepository(),
		JwtSecret:                  secrets.JwtSecret,
	}

	return apiHandler, nil
}
