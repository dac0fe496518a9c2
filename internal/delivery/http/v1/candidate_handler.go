package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"skillbridge-backend/internal/delivery/http/response"
	"skillbridge-backend/internal/domain"
	"skillbridge-backend/pkg/apperror"
)

type CandidateHandler struct {
	candidateUC domain.CandidateUsecase
}

func NewCandidateHandler(rg *gin.RouterGroup, candidateUC domain.CandidateUsecase) {
	handler := &CandidateHandler{candidateUC: candidateUC}

	rg.GET("/candidates", handler.Browse)
	rg.POST("/seekers", handler.Submit)
}

// Browse serves the employer dashboard's candidate list with the three
// dashboard filters applied.
func (h *CandidateHandler) Browse(c *gin.Context) {
	var criteria domain.FilterCriteria
	if err := c.ShouldBindQuery(&criteria); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	seekers, err := h.candidateUC.Browse(c.Request.Context(), criteria)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Candidates", seekers)
}

// Submit handles the job seeker preference form.
func (h *CandidateHandler) Submit(c *gin.Context) {
	var draft domain.JobSeekerDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	if err := h.candidateUC.SubmitProfile(c.Request.Context(), &draft); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Profile saved", draft)
}
