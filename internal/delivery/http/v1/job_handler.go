package v1

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"skillbridge-backend/internal/delivery/http/response"
	"skillbridge-backend/internal/domain"
	"skillbridge-backend/pkg/apperror"
)

type JobHandler struct {
	jobUC domain.JobUsecase
}

func NewJobHandler(rg *gin.RouterGroup, jobUC domain.JobUsecase) {
	handler := &JobHandler{jobUC: jobUC}

	jobs := rg.Group("/jobs")
	{
		jobs.POST("", handler.Create)            // hiring form submit
		jobs.GET("", handler.ListPosted)         // employer dashboard list
		jobs.GET("/listings", handler.Listings)  // seeker dashboard list
		jobs.GET("/selected", handler.Selected)  // seeker form prefill
		jobs.POST("/:id/select", handler.Select) // accept / apply
	}
}

// Create handles the employer hiring form. Validation failures come back
// as a field-to-message map for inline rendering.
func (h *JobHandler) Create(c *gin.Context) {
	var draft domain.HiringDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	job, err := h.jobUC.PostJob(c.Request.Context(), &draft)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Job posted", job)
}

func (h *JobHandler) ListPosted(c *gin.Context) {
	jobs, err := h.jobUC.PostedJobs(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Posted jobs", jobs)
}

func (h *JobHandler) Listings(c *gin.Context) {
	var criteria domain.FilterCriteria
	if err := c.ShouldBindQuery(&criteria); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	jobs, err := h.jobUC.Listings(c.Request.Context(), criteria)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Job listings", jobs)
}

func (h *JobHandler) Select(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid job id"))
		return
	}

	job, err := h.jobUC.SelectJob(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Job selected", job)
}

func (h *JobHandler) Selected(c *gin.Context) {
	job, ok := h.jobUC.SelectedJob(c.Request.Context())
	if !ok {
		c.Error(apperror.NotFound("No job selected"))
		return
	}
	response.Success(c, http.StatusOK, "Selected job", job)
}
