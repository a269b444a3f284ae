package api

import (
	"encoding/json"
	"fmt"
	"portfoliolab/internal"
	"portfoliolab/internal/db/models/postgres/public/model"
	"portfoliolab/internal/util"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type savePortfolioRequest struct {
	// when set, updates the existing session instead of creating one
	PortfolioSessionId *string       `json:"portfolioSessionId,omitempty"`
	Name               string        `json:"name"`
	Portfolio          portfolioJson `json:"portfolio"`
}

type portfolioSessionJson struct {
	PortfolioSessionId string        `json:"portfolioSessionId"`
	Name               string        `json:"name"`
	Portfolio          portfolioJson `json:"portfolio"`
	CreatedAt          string        `json:"createdAt"`
	UpdatedAt          *string       `json:"updatedAt,omitempty"`
}

func (m ApiHandler) savePortfolio(c *gin.Context) {
	userID, err := userIdFromContext(c)
	if err != nil {
		returnErrorJsonCode(err, c, 401)
		return
	}

	var requestBody savePortfolioRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}
	if requestBody.Name == "" {
		returnErrorJsonCode(fmt.Errorf("name is required"), c, 400)
		return
	}

	// parse before persisting so we never store a portfolio the engine
	// can't read back
	portfolio, err := requestBody.Portfolio.toDomain()
	if err != nil {
		returnErrorJsonCode(fmt.Errorf("could not parse portfolio: %w", err), c, 400)
		return
	}
	portfolioBytes, err := json.Marshal(portfolioToJson(*portfolio))
	if err != nil {
		returnErrorJson(fmt.Errorf("failed to serialize portfolio: %w", err), c)
		return
	}

	if requestBody.PortfolioSessionId != nil {
		sessionID, err := uuid.Parse(*requestBody.PortfolioSessionId)
		if err != nil {
			returnErrorJsonCode(fmt.Errorf("invalid portfolio session id: %w", err), c, 400)
			return
		}
		existing, err := m.PortfolioSessionRepository.Get(sessionID)
		if err != nil {
			returnErrorJsonCode(fmt.Errorf("failed to get portfolio session: %w", err), c, 404)
			return
		}
		if existing.UserID == nil || *existing.UserID != userID {
			returnErrorJsonCode(fmt.Errorf("portfolio session does not belong to caller"), c, 403)
			return
		}

		existing.Name = requestBody.Name
		existing.PortfolioJSON = string(portfolioBytes)
		if err := m.PortfolioSessionRepository.Update(*existing); err != nil {
			returnErrorJson(err, c)
			return
		}

		updated, err := m.PortfolioSessionRepository.Get(sessionID)
		if err != nil {
			returnErrorJson(err, c)
			return
		}
		out, err := sessionToJson(*updated)
		if err != nil {
			returnErrorJson(err, c)
			return
		}
		c.JSON(200, out)
		return
	}

	saved, err := m.PortfolioSessionRepository.Add(model.PortfolioSession{
		UserID:        &userID,
		Name:          requestBody.Name,
		PortfolioJSON: string(portfolioBytes),
	})
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	out, err := sessionToJson(*saved)
	if err != nil {
		returnErrorJson(err, c)
		return
	}
	c.JSON(200, out)
}

func (m ApiHandler) getPortfolio(c *gin.Context) {
	userID, err := userIdFromContext(c)
	if err != nil {
		returnErrorJsonCode(err, c, 401)
		return
	}

	sessionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		returnErrorJsonCode(fmt.Errorf("invalid portfolio session id: %w", err), c, 400)
		return
	}

	session, err := m.PortfolioSessionRepository.Get(sessionID)
	if err != nil {
		returnErrorJsonCode(fmt.Errorf("failed to get portfolio session: %w", err), c, 404)
		return
	}
	if session.UserID == nil || *session.UserID != userID {
		returnErrorJsonCode(fmt.Errorf("portfolio session does not belong to caller"), c, 403)
		return
	}

	out, err := sessionToJson(*session)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	// re-validate on read; validation rules may have tightened since save
	portfolio, err := out.Portfolio.toDomain()
	if err != nil {
		returnErrorJson(fmt.Errorf("stored portfolio is unreadable: %w", err), c)
		return
	}

	c.JSON(200, gin.H{
		"session":     out,
		"diagnostics": diagnosticsToJson(internal.Validate(*portfolio)),
	})
}

func (m ApiHandler) listPortfolios(c *gin.Context) {
	userID, err := userIdFromContext(c)
	if err != nil {
		returnErrorJsonCode(err, c, 401)
		return
	}

	sessions, err := m.PortfolioSessionRepository.ListForUser(userID)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	out := []portfolioSessionJson{}
	for _, session := range sessions {
		sj, err := sessionToJson(session)
		if err != nil {
			returnErrorJson(err, c)
			return
		}
		out = append(out, *sj)
	}

	c.JSON(200, out)
}

func sessionToJson(m model.PortfolioSession) (*portfolioSessionJson, error) {
	var portfolio portfolioJson
	if err := json.Unmarshal([]byte(m.PortfolioJSON), &portfolio); err != nil {
		return nil, fmt.Errorf("failed to parse stored portfolio %s: %w", m.PortfolioSessionID.String(), err)
	}

	out := portfolioSessionJson{
		PortfolioSessionId: m.PortfolioSessionID.String(),
		Name:               m.Name,
		Portfolio:          portfolio,
		CreatedAt:          m.CreatedAt.Format(time.RFC3339),
	}
	if m.UpdatedAt != nil {
		out.UpdatedAt = util.StringPointer(m.UpdatedAt.Format(time.RFC3339))
	}
	return &out, nil
}
