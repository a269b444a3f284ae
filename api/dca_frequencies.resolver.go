package api

import (
	"portfoliolab/internal/domain"

	"github.com/gin-gonic/gin"
)

type dcaFrequencyResponse struct {
	Code          string `json:"code"`
	IntervalWeeks int    `json:"intervalWeeks"`
}

func (m ApiHandler) getDcaFrequencies(c *gin.Context) {
	out := []dcaFrequencyResponse{}
	for _, frequency := range domain.AllDCAFrequencies {
		out = append(out, dcaFrequencyResponse{
			Code:          string(frequency),
			IntervalWeeks: frequency.WeekInterval(),
		})
	}

	c.JSON(200, out)
}
