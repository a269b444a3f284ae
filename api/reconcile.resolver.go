package api

import (
	"fmt"
	"portfoliolab/internal"

	"github.com/gin-gonic/gin"
)

type reconcileRequest struct {
	Portfolio portfolioJson `json:"portfolio"`
	Event     eventJson     `json:"event"`
}

type reconcileResponse struct {
	Portfolio   portfolioJson    `json:"portfolio"`
	Diagnostics []diagnosticJson `json:"diagnostics"`
}

// reconcile applies a single edit event and returns the new state. The
// diagnostics ride along so the UI can show warnings live, but they never
// block the edit.
func (m ApiHandler) reconcile(c *gin.Context) {
	var requestBody reconcileRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	portfolio, err := requestBody.Portfolio.toDomain()
	if err != nil {
		returnErrorJsonCode(fmt.Errorf("could not parse portfolio: %w", err), c, 400)
		return
	}
	event, err := requestBody.Event.toDomain()
	if err != nil {
		returnErrorJsonCode(fmt.Errorf("could not parse event: %w", err), c, 400)
		return
	}

	reconciled := internal.ReconcileWithOptions(*portfolio, event, m.ReconcileOptions)

	c.JSON(200, reconcileResponse{
		Portfolio:   portfolioToJson(reconciled),
		Diagnostics: diagnosticsToJson(internal.Validate(reconciled)),
	})
}
