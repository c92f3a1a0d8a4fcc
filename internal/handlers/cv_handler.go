package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/awfaabdulkader/interior-architect-backend/internal/middleware"
	"github.com/awfaabdulkader/interior-architect-backend/internal/services"
)

type CvHandler struct {
	*BaseHandler
	cvService services.CvService
}

func NewCvHandler(base *BaseHandler, cvService services.CvService) *CvHandler {
	return &CvHandler{BaseHandler: base, cvService: cvService}
}

func (h *CvHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/cv/active", h.GetActive)
	r.GET("/cvs", h.List)
	r.GET("/cvs/:id", h.Get)
	r.GET("/cvs/:id/download/:language", h.Download)

	admin := r.Group("/cvs")
	admin.Use(middleware.AuthMiddleware())
	{
		admin.POST("", h.Create)
		admin.PUT("/:id", h.Update)
		admin.DELETE("/:id", h.Delete)
	}
}

func (h *CvHandler) Create(c *gin.Context) {
	frFile, _ := c.FormFile("cv_fr")
	enFile, _ := c.FormFile("cv_en")

	userID := middleware.GetUserID(c)

	resp, err := h.cvService.Create(c.Request.Context(), h.GetDB(c), userID, frFile, enFile)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *CvHandler) Get(c *gin.Context) {
	resp, err := h.cvService.Get(c.Request.Context(), h.GetDB(c), c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *CvHandler) List(c *gin.Context) {
	resp, err := h.cvService.List(c.Request.Context(), h.GetDB(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetActive returns the most recently updated CV for the public site.
func (h *CvHandler) GetActive(c *gin.Context) {
	resp, err := h.cvService.GetActive(c.Request.Context(), h.GetDB(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *CvHandler) Download(c *gin.Context) {
	doc, err := h.cvService.Download(c.Request.Context(), h.GetDB(c), c.Param("id"), c.Param("language"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", doc.Filename))
	c.Data(http.StatusOK, doc.MimeType, doc.Data)
}

func (h *CvHandler) Update(c *gin.Context) {
	frFile, _ := c.FormFile("cv_fr")
	enFile, _ := c.FormFile("cv_en")

	resp, err := h.cvService.Update(c.Request.Context(), h.GetDB(c), c.Param("id"), frFile, enFile)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *CvHandler) Delete(c *gin.Context) {
	if err := h.cvService.Delete(c.Request.Context(), h.GetDB(c), c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "CV deleted"})
}
