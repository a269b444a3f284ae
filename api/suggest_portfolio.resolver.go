package api

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/gin-gonic/gin"
)

type suggestPortfolioRequest struct {
	Description string `json:"description"`
}

type suggestPortfolioResponse struct {
	Assets []assetJson `json:"assets,omitempty"`
	// raw model output, returned when it can't be parsed as asset rows
	Raw *string `json:"raw,omitempty"`
}

func (m ApiHandler) suggestPortfolio(c *gin.Context) {
	var requestBody suggestPortfolioRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}
	if requestBody.Description == "" {
		returnErrorJsonCode(fmt.Errorf("description is required"), c, 400)
		return
	}

	suggestion, err := m.GptRepository.SuggestPortfolio(context.Background(), requestBody.Description)
	if err != nil {
		returnErrorJson(fmt.Errorf("failed to suggest portfolio: %w", err), c)
		return
	}

	assets := []assetJson{}
	if err := json.Unmarshal([]byte(suggestion), &assets); err != nil {
		c.JSON(200, suggestPortfolioResponse{Raw: &suggestion})
		return
	}

	// reject rows the engine couldn't represent rather than passing junk
	// back to the UI
	valid := []assetJson{}
	for _, a := range assets {
		if _, err := a.toDomain(); err == nil {
			valid = append(valid, a)
		}
	}

	c.JSON(200, suggestPortfolioResponse{Assets: valid})
}
