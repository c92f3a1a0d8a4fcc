package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/awfaabdulkader/interior-architect-backend/internal/middleware"
	"github.com/awfaabdulkader/interior-architect-backend/internal/services"
	"github.com/awfaabdulkader/interior-architect-backend/internal/services/dto"
)

type ExperienceHandler struct {
	*BaseHandler
	experienceService services.ExperienceService
}

func NewExperienceHandler(base *BaseHandler, experienceService services.ExperienceService) *ExperienceHandler {
	return &ExperienceHandler{BaseHandler: base, experienceService: experienceService}
}

func (h *ExperienceHandler) RegisterRoutes(r *gin.RouterGroup) {
	public := r.Group("/experience")
	{
		public.GET("", h.List)
		public.GET("/:id", h.Get)
	}

	admin := r.Group("/experience")
	admin.Use(middleware.AuthMiddleware())
	{
		admin.POST("", h.Create)
		admin.PUT("/:id", h.Update)
		admin.DELETE("/:id", h.Delete)
	}
}

func (h *ExperienceHandler) Create(c *gin.Context) {
	var req dto.CreateExperienceRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	resp, err := h.experienceService.Create(c.Request.Context(), h.GetDB(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *ExperienceHandler) Get(c *gin.Context) {
	resp, err := h.experienceService.Get(c.Request.Context(), h.GetDB(c), c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ExperienceHandler) List(c *gin.Context) {
	resp, err := h.experienceService.List(c.Request.Context(), h.GetDB(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ExperienceHandler) Update(c *gin.Context) {
	var req dto.UpdateExperienceRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	resp, err := h.experienceService.Update(c.Request.Context(), h.GetDB(c), c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ExperienceHandler) Delete(c *gin.Context) {
	if err := h.experienceService.Delete(c.Request.Context(), h.GetDB(c), c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Experience entry deleted"})
}
