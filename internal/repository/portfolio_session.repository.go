package repository

import (
	"database/sql"
	"fmt"
	"portfoliolab/internal/db/models/postgres/public/model"
	"portfoliolab/internal/db/models/postgres/public/table"
	"time"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/google/uuid"
)

type PortfolioSessionRepository interface {
	Add(m model.PortfolioSession) (*model.PortfolioSession, error)
	Get(portfolioSessionID uuid.UUID) (*model.PortfolioSession, error)
	ListForUser(userID uuid.UUID) ([]model.PortfolioSession, error)
	Update(m model.PortfolioSession) error
}

type portfolioSessionRepositoryHandler struct {
	Db *sql.DB
}

func NewPortfolioSessionRepository(db *sql.DB) PortfolioSessionRepository {
	return portfolioSessionRepositoryHandler{Db: db}
}

func (h portfolioSessionRepositoryHandler) Add(m model.PortfolioSession) (*model.PortfolioSession, error) {
	if m.PortfolioSessionID == uuid.Nil {
		m.PortfolioSessionID = uuid.New()
	}
	m.CreatedAt = time.Now().UTC()

	query := table.PortfolioSession.
		INSERT(table.PortfolioSession.AllColumns).
		MODEL(m).
		RETURNING(table.PortfolioSession.AllColumns)

	out := model.PortfolioSession{}
	err := query.Query(h.Db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to insert portfolio session: %w", err)
	}

	return &out, nil
}

func (h portfolioSessionRepositoryHandler) Get(portfolioSessionID uuid.UUID) (*model.PortfolioSession, error) {
	query := table.PortfolioSession.
		SELECT(table.PortfolioSession.AllColumns).
		WHERE(table.PortfolioSession.PortfolioSessionID.EQ(
			postgres.UUID(portfolioSessionID),
		))

	out := model.PortfolioSession{}
	err := query.Query(h.Db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to get portfolio session %s: %w", portfolioSessionID.String(), err)
	}

	return &out, nil
}

func (h portfolioSessionRepositoryHandler) ListForUser(userID uuid.UUID) ([]model.PortfolioSession, error) {
	query := table.PortfolioSession.
		SELECT(table.PortfolioSession.AllColumns).
		WHERE(table.PortfolioSession.UserID.EQ(
			postgres.UUID(userID),
		)).
		ORDER_BY(table.PortfolioSession.CreatedAt.DESC())

	out := []model.PortfolioSession{}
	err := query.Query(h.Db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to list portfolio sessions: %w", err)
	}

	return out, nil
}

func (h portfolioSessionRepositoryHandler) Update(m model.PortfolioSession) error {
	now := time.Now().UTC()
	m.UpdatedAt = &now

	query := table.PortfolioSession.
		UPDATE(table.PortfolioSession.Name, table.PortfolioSession.PortfolioJSON, table.PortfolioSession.UpdatedAt).
		MODEL(m).
		WHERE(table.PortfolioSession.PortfolioSessionID.EQ(
			postgres.UUID(m.PortfolioSessionID),
		))

	_, err := query.Exec(h.Db)
	if err != nil {
		return fmt.Errorf("failed to update portfolio session %s: %w", m.PortfolioSessionID.String(), err)
	}

	return nil
}
