package v1

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"skillbridge-backend/internal/delivery/http/response"
	"skillbridge-backend/internal/domain"
	"skillbridge-backend/pkg/apperror"
)

type AuthHandler struct {
	authUC domain.AuthUsecase
}

func NewAuthHandler(rg *gin.RouterGroup, authUC domain.AuthUsecase) {
	handler := &AuthHandler{authUC: authUC}

	auth := rg.Group("/auth")
	{
		auth.POST("/register", handler.Register)
		auth.POST("/register/steps/:step", handler.ValidateStep)
		auth.POST("/login", handler.Login)
		auth.POST("/logout", handler.Logout)
		auth.GET("/me", handler.Me)
	}
}

// ValidateStep runs one wizard step's checks against the submitted draft.
// A failing step is not an HTTP error; the errors render inline.
func (h *AuthHandler) ValidateStep(c *gin.Context) {
	step, err := strconv.Atoi(c.Param("step"))
	if err != nil || step < 1 || step > domain.RegistrationSteps {
		c.Error(apperror.BadRequest("Invalid step"))
		return
	}

	var draft domain.RegistrationDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	errs := h.authUC.ValidateRegistrationStep(step, &draft)
	response.Success(c, http.StatusOK, "Step validated", gin.H{
		"valid":  len(errs) == 0,
		"errors": errs,
	})
}

func (h *AuthHandler) Register(c *gin.Context) {
	var draft domain.RegistrationDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	profile, err := h.authUC.Register(c.Request.Context(), &draft)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Registration successful! Welcome to SkillBridge!", profile)
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	user, err := h.authUC.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Login successful!", user)
}

func (h *AuthHandler) Logout(c *gin.Context) {
	h.authUC.Logout()
	response.Success(c, http.StatusOK, "Logged out", nil)
}

func (h *AuthHandler) Me(c *gin.Context) {
	user, ok := h.authUC.CurrentUser()
	if !ok {
		c.Error(apperror.Unauthorized("Not logged in"))
		return
	}
	response.Success(c, http.StatusOK, "Current user", user)
}
