package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"skillbridge-backend/internal/delivery/http/response"
	"skillbridge-backend/internal/domain"
)

type DashboardHandler struct {
	jobUC       domain.JobUsecase
	candidateUC domain.CandidateUsecase
}

func NewDashboardHandler(rg *gin.RouterGroup, jobUC domain.JobUsecase, candidateUC domain.CandidateUsecase) {
	handler := &DashboardHandler{jobUC: jobUC, candidateUC: candidateUC}

	dashboard := rg.Group("/dashboard")
	{
		dashboard.GET("/hiring", handler.Hiring)
		dashboard.GET("/jobseeker", handler.JobSeeker)
	}
}

// Hiring returns the employer dashboard header data plus the jobs the
// employer has posted so far.
func (h *DashboardHandler) Hiring(c *gin.Context) {
	summary := h.jobUC.HiringSummary(c.Request.Context())

	jobs, err := h.jobUC.PostedJobs(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Hiring dashboard", gin.H{
		"summary":    summary,
		"postedJobs": jobs,
	})
}

// JobSeeker returns the seeker dashboard header data. The selected job is
// included when one has been chosen.
func (h *DashboardHandler) JobSeeker(c *gin.Context) {
	summary := h.candidateUC.SeekerSummary(c.Request.Context())

	payload := gin.H{"summary": summary}
	if job, ok := h.jobUC.SelectedJob(c.Request.Context()); ok {
		payload["selectedJob"] = job
	}

	response.Success(c, http.StatusOK, "Job seeker dashboard", payload)
}
