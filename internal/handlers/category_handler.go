package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/awfaabdulkader/interior-architect-backend/internal/middleware"
	"github.com/awfaabdulkader/interior-architect-backend/internal/services"
	"github.com/awfaabdulkader/interior-architect-backend/internal/services/dto"
)

type CategoryHandler struct {
	*BaseHandler
	categoryService services.CategoryService
}

func NewCategoryHandler(base *BaseHandler, categoryService services.CategoryService) *CategoryHandler {
	return &CategoryHandler{BaseHandler: base, categoryService: categoryService}
}

func (h *CategoryHandler) RegisterRoutes(r *gin.RouterGroup) {
	public := r.Group("/category")
	{
		public.GET("", h.List)
		public.GET("/:id", h.Get)
		public.GET("/:id/projects", h.GetProjects)
	}

	admin := r.Group("/category")
	admin.Use(middleware.AuthMiddleware())
	{
		admin.POST("", h.Create)
		admin.PUT("/:id", h.Update)
		admin.DELETE("/:id", h.Delete)
	}
}

// Create accepts multipart form data with parallel arrays: name[],
// description[] and cover[] files, matched by index. A plain single
// set of fields is just the one-element case.
func (h *CategoryHandler) Create(c *gin.Context) {
	names := c.PostFormArray("name")
	descriptions := c.PostFormArray("description")

	items := make([]dto.CategoryInput, 0, len(names))
	for i, name := range names {
		item := dto.CategoryInput{Name: name}
		if i < len(descriptions) {
			item.Description = descriptions[i]
		}
		if !h.validate(c, &item) {
			return
		}
		items = append(items, item)
	}

	form, _ := c.MultipartForm()
	covers := formFiles(form, "cover")

	responses, err := h.categoryService.Create(c.Request.Context(), h.GetDB(c), items, covers)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	if len(responses) == 1 {
		c.JSON(http.StatusCreated, responses[0])
		return
	}
	c.JSON(http.StatusCreated, responses)
}

func (h *CategoryHandler) Get(c *gin.Context) {
	resp, err := h.categoryService.Get(c.Request.Context(), h.GetDB(c), c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *CategoryHandler) List(c *gin.Context) {
	page, pageSize := ParsePagination(c)

	resp, err := h.categoryService.List(c.Request.Context(), h.GetDB(c), page, pageSize)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *CategoryHandler) GetProjects(c *gin.Context) {
	resp, err := h.categoryService.GetProjects(c.Request.Context(), h.GetDB(c), c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *CategoryHandler) Update(c *gin.Context) {
	var req dto.UpdateCategoryRequest
	if name, ok := c.GetPostForm("name"); ok {
		req.Name = &name
	}
	if description, ok := c.GetPostForm("description"); ok {
		req.Description = &description
	}
	if !h.validate(c, &req) {
		return
	}

	cover, _ := c.FormFile("cover")

	resp, err := h.categoryService.Update(c.Request.Context(), h.GetDB(c), c.Param("id"), &req, cover)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *CategoryHandler) Delete(c *gin.Context) {
	if err := h.categoryService.Delete(c.Request.Context(), h.GetDB(c), c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Category deleted"})
}
