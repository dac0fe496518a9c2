package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"skillbridge-backend/config"
	"skillbridge-backend/internal/delivery/http/middleware"
	"skillbridge-backend/internal/delivery/http/response"
	"skillbridge-backend/internal/domain"
	"skillbridge-backend/internal/usecase"
)

type RouterDeps struct {
	AuthUC      domain.AuthUsecase
	JobUC       domain.JobUsecase
	CandidateUC domain.CandidateUsecase
	HealthUC    usecase.HealthUsecase
	Config      *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.FrontendURL)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorHandler())

	v1 := r.Group("/v1")

	// Health Check
	v1.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", deps.HealthUC.Check(c.Request.Context()))
	})

	NewAuthHandler(v1, deps.AuthUC)
	NewJobHandler(v1, deps.JobUC)
	NewCandidateHandler(v1, deps.CandidateUC)
	NewDashboardHandler(v1, deps.JobUC, deps.CandidateUC)
	NewMetaHandler(v1)

	return r
}
