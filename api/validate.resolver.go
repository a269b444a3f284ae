package api

import (
	"fmt"
	"portfoliolab/internal"

	"github.com/gin-gonic/gin"
)

type validateResponse struct {
	Valid       bool             `json:"valid"`
	Diagnostics []diagnosticJson `json:"diagnostics"`
}

func (m ApiHandler) validate(c *gin.Context) {
	var requestBody portfolioJson
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	portfolio, err := requestBody.toDomain()
	if err != nil {
		returnErrorJsonCode(fmt.Errorf("could not parse portfolio: %w", err), c, 400)
		return
	}

	diagnostics := internal.Validate(*portfolio)

	c.JSON(200, validateResponse{
		Valid:       len(diagnostics) == 0,
		Diagnostics: diagnosticsToJson(diagnostics),
	})
}
