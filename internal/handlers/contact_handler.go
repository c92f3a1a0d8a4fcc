package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/awfaabdulkader/interior-architect-backend/internal/middleware"
	"github.com/awfaabdulkader/interior-architect-backend/internal/services"
	"github.com/awfaabdulkader/interior-architect-backend/internal/services/dto"
)

type ContactHandler struct {
	*BaseHandler
	contactService services.ContactService
}

func NewContactHandler(base *BaseHandler, contactService services.ContactService) *ContactHandler {
	return &ContactHandler{BaseHandler: base, contactService: contactService}
}

func (h *ContactHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/contact", h.Create)

	admin := r.Group("/admin/contacts")
	admin.Use(middleware.AuthMiddleware())
	{
		admin.GET("", h.List)
		admin.DELETE("/:id", h.Delete)
	}
}

func (h *ContactHandler) Create(c *gin.Context) {
	var req dto.CreateContactRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	resp, err := h.contactService.Create(c.Request.Context(), h.GetDB(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *ContactHandler) List(c *gin.Context) {
	page, pageSize := ParsePagination(c)

	resp, err := h.contactService.List(c.Request.Context(), h.GetDB(c), page, pageSize)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ContactHandler) Delete(c *gin.Context) {
	if err := h.contactService.Delete(c.Request.Context(), h.GetDB(c), c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Message deleted"})
}
