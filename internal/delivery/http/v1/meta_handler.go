package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"skillbridge-backend/internal/delivery/http/response"
	"skillbridge-backend/internal/fixture"
)

// MetaHandler serves the static option lists the forms render as
// dropdowns and tag pickers.
type MetaHandler struct{}

func NewMetaHandler(rg *gin.RouterGroup) {
	handler := &MetaHandler{}

	meta := rg.Group("/meta")
	{
		meta.GET("/job-types", handler.JobTypes)
		meta.GET("/skills", handler.Skills)
	}
}

func (h *MetaHandler) JobTypes(c *gin.Context) {
	response.Success(c, http.StatusOK, "Job types", fixture.JobTypes)
}

func (h *MetaHandler) Skills(c *gin.Context) {
	response.Success(c, http.StatusOK, "Skills", fixture.CommonSkills)
}
