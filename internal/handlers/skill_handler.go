package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/awfaabdulkader/interior-architect-backend/internal/middleware"
	"github.com/awfaabdulkader/interior-architect-backend/internal/services"
	"github.com/awfaabdulkader/interior-architect-backend/internal/services/dto"
)

type SkillHandler struct {
	*BaseHandler
	skillService services.SkillService
}

func NewSkillHandler(base *BaseHandler, skillService services.SkillService) *SkillHandler {
	return &SkillHandler{BaseHandler: base, skillService: skillService}
}

func (h *SkillHandler) RegisterRoutes(r *gin.RouterGroup) {
	public := r.Group("/skills")
	{
		public.GET("", h.List)
		public.GET("/:id", h.Get)
	}

	admin := r.Group("/skills")
	admin.Use(middleware.AuthMiddleware())
	{
		admin.POST("", h.Create)
		admin.PUT("/:id", h.Update)
		admin.DELETE("/:id", h.Delete)
		admin.POST("/bulk-delete", h.BulkDelete)
	}
}

// Create accepts one or many skills in a single multipart request.
// Names and logo files are matched pairwise by index.
func (h *SkillHandler) Create(c *gin.Context) {
	names := c.PostFormArray("name")
	items := make([]dto.SkillInput, 0, len(names))
	for _, name := range names {
		items = append(items, dto.SkillInput{Name: name})
	}
	for i := range items {
		if !h.validate(c, &items[i]) {
			return
		}
	}

	form, _ := c.MultipartForm()
	logos := formFiles(form, "logo")

	resp, err := h.skillService.Create(c.Request.Context(), h.GetDB(c), items, logos)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	if len(resp) == 1 {
		c.JSON(http.StatusCreated, resp[0])
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *SkillHandler) Get(c *gin.Context) {
	resp, err := h.skillService.Get(c.Request.Context(), h.GetDB(c), c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *SkillHandler) List(c *gin.Context) {
	resp, err := h.skillService.List(c.Request.Context(), h.GetDB(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *SkillHandler) Update(c *gin.Context) {
	var req dto.UpdateSkillRequest
	if name, ok := c.GetPostForm("name"); ok {
		req.Name = &name
	}
	if !h.validate(c, &req) {
		return
	}

	logo, _ := c.FormFile("logo")

	resp, err := h.skillService.Update(c.Request.Context(), h.GetDB(c), c.Param("id"), &req, logo)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *SkillHandler) Delete(c *gin.Context) {
	if err := h.skillService.Delete(c.Request.Context(), h.GetDB(c), c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Skill deleted"})
}

func (h *SkillHandler) BulkDelete(c *gin.Context) {
	var req dto.BulkDeleteRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	deleted, err := h.skillService.BulkDelete(c.Request.Context(), h.GetDB(c), req.IDs)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.BulkDeleteResponse{Deleted: deleted})
}
