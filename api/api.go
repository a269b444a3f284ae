package api

import (
	"database/sql"
	"fmt"
	"portfoliolab/internal"
	"portfoliolab/internal/logger"
	"portfoliolab/internal/repository"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type ApiHandler struct {
	Db                         *sql.DB
	PortfolioSessionRepository repository.PortfolioSessionRepository
	GptRepository              repository.GptRepository
	QuoteRepository            repository.QuoteRepository
	JwtSecret                  string
	ReconcileOptions           internal.ReconcileOptions
}

func (m ApiHandler) InitializeRouterEngine() *gin.Engine {
	router := gin.Default()
	router.Use(cors.Default())
	router.Use(logRequestMiddleware)

	router.GET("/", func(ctx *gin.Context) {
		ctx.JSON(200, map[string]string{"message": "welcome to portfoliolab"})
	})
	router.POST("/reconcile", m.reconcile)
	router.POST("/validate", m.validate)
	router.GET("/dcaFrequencies", m.getDcaFrequencies)
	router.POST("/allocationSummary", m.allocationSummary)
	router.POST("/importAssets", m.importAssets)
	router.POST("/suggestPortfolio", m.suggestPortfolio)
	router.GET("/quote", m.getQuote)
	router.POST("/login", m.login)

	authed := router.Group("/", m.authMiddleware)
	authed.POST("/savePortfolio", m.savePortfolio)
	authed.GET("/portfolio/:id", m.getPortfolio)
	authed.GET("/portfolios", m.listPortfolios)

	return router
}

func (m ApiHandler) StartApi(port int) error {
	router := m.InitializeRouterEngine()
	return router.Run(fmt.Sprintf(":%d", port))
}

func returnErrorJson(err error, c *gin.Context) {
	returnErrorJsonCode(err, c, 500)
}

func returnErrorJsonCode(err error, c *gin.Context, code int) {
	logger.Error(err)
	c.AbortWithStatusJSON(code, gin.H{
		"error": err.Error(),
	})
}

func logRequestMiddleware(ctx *gin.Context) {
	start := time.Now()
	ctx.Next()
	logger.Info("%s %s -> %d (%dms)",
		ctx.Request.Method,
		ctx.Request.URL.Path,
		ctx.Writer.Status(),
		time.Since(start).Milliseconds(),
	)
}
