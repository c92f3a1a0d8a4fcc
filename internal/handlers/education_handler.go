package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/awfaabdulkader/interior-architect-backend/internal/middleware"
	"github.com/awfaabdulkader/interior-architect-backend/internal/services"
	"github.com/awfaabdulkader/interior-architect-backend/internal/services/dto"
)

type EducationHandler struct {
	*BaseHandler
	educationService services.EducationService
}

func NewEducationHandler(base *BaseHandler, educationService services.EducationService) *EducationHandler {
	return &EducationHandler{BaseHandler: base, educationService: educationService}
}

func (h *EducationHandler) RegisterRoutes(r *gin.RouterGroup) {
	public := r.Group("/education")
	{
		public.GET("", h.List)
		public.GET("/:id", h.Get)
	}

	admin := r.Group("/education")
	admin.Use(middleware.AuthMiddleware())
	{
		admin.POST("", h.Create)
		admin.PUT("/:id", h.Update)
		admin.DELETE("/:id", h.Delete)
	}
}

func (h *EducationHandler) Create(c *gin.Context) {
	var req dto.CreateEducationRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	resp, err := h.educationService.Create(c.Request.Context(), h.GetDB(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *EducationHandler) Get(c *gin.Context) {
	resp, err := h.educationService.Get(c.Request.Context(), h.GetDB(c), c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *EducationHandler) List(c *gin.Context) {
	resp, err := h.educationService.List(c.Request.Context(), h.GetDB(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *EducationHandler) Update(c *gin.Context) {
	var req dto.UpdateEducationRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	resp, err := h.educationService.Update(c.Request.Context(), h.GetDB(c), c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *EducationHandler) Delete(c *gin.Context) {
	if err := h.educationService.Delete(c.Request.Context(), h.GetDB(c), c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Education entry deleted"})
}
