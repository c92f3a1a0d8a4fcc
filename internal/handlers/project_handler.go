package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/awfaabdulkader/interior-architect-backend/internal/middleware"
	"github.com/awfaabdulkader/interior-architect-backend/internal/services"
	"github.com/awfaabdulkader/interior-architect-backend/internal/services/dto"
)

type ProjectHandler struct {
	*BaseHandler
	projectService services.ProjectService
}

func NewProjectHandler(base *BaseHandler, projectService services.ProjectService) *ProjectHandler {
	return &ProjectHandler{BaseHandler: base, projectService: projectService}
}

func (h *ProjectHandler) RegisterRoutes(r *gin.RouterGroup) {
	public := r.Group("/projects")
	{
		public.GET("", h.List)
		public.GET("/:id", h.Get)
	}

	admin := r.Group("/projects")
	admin.Use(middleware.AuthMiddleware())
	{
		admin.POST("", h.Create)
		admin.PUT("/:id", h.Update)
		admin.DELETE("/:id", h.Delete)
		admin.POST("/bulk-delete", h.BulkDelete)
		admin.POST("/:id/images", h.AddImage)
		admin.DELETE("/:id/images/:imageId", h.DeleteImage)
		admin.PUT("/:id/cover", h.SetCover)
	}
}

func (h *ProjectHandler) Create(c *gin.Context) {
	req := dto.CreateProjectRequest{
		Name:        c.PostForm("name"),
		Description: c.PostForm("description"),
		CategoryID:  c.PostForm("category_id"),
	}
	if !h.validate(c, &req) {
		return
	}

	form, _ := c.MultipartForm()
	images := formFiles(form, "images")

	resp, err := h.projectService.Create(c.Request.Context(), h.GetDB(c), &req, images)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *ProjectHandler) Get(c *gin.Context) {
	resp, err := h.projectService.Get(c.Request.Context(), h.GetDB(c), c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ProjectHandler) List(c *gin.Context) {
	page, pageSize := ParsePagination(c)

	resp, err := h.projectService.List(c.Request.Context(), h.GetDB(c), page, pageSize)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ProjectHandler) Update(c *gin.Context) {
	var req dto.UpdateProjectRequest
	if name, ok := c.GetPostForm("name"); ok {
		req.Name = &name
	}
	if description, ok := c.GetPostForm("description"); ok {
		req.Description = &description
	}
	if categoryID, ok := c.GetPostForm("category_id"); ok {
		req.CategoryID = &categoryID
	}
	if !h.validate(c, &req) {
		return
	}

	form, _ := c.MultipartForm()
	newImages := formFiles(form, "images")

	resp, err := h.projectService.Update(c.Request.Context(), h.GetDB(c), c.Param("id"), &req, newImages)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ProjectHandler) Delete(c *gin.Context) {
	if err := h.projectService.Delete(c.Request.Context(), h.GetDB(c), c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Project deleted"})
}

func (h *ProjectHandler) BulkDelete(c *gin.Context) {
	var req dto.BulkDeleteRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	deleted, err := h.projectService.BulkDelete(c.Request.Context(), h.GetDB(c), req.IDs)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.BulkDeleteResponse{Deleted: deleted})
}

func (h *ProjectHandler) AddImage(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image file is required"})
		return
	}

	isCover, _ := strconv.ParseBool(c.PostForm("is_cover"))

	resp, svcErr := h.projectService.AddImage(c.Request.Context(), h.GetDB(c), c.Param("id"), file, isCover)
	if svcErr != nil {
		h.HandleServiceError(c, svcErr)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *ProjectHandler) DeleteImage(c *gin.Context) {
	err := h.projectService.DeleteImage(c.Request.Context(), h.GetDB(c), c.Param("id"), c.Param("imageId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Image deleted"})
}

func (h *ProjectHandler) SetCover(c *gin.Context) {
	var req dto.SetCoverRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	err := h.projectService.SetCover(c.Request.Context(), h.GetDB(c), c.Param("id"), req.ImageID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Cover updated"})
}
