package handlers

import (
	"net/http"

	portssvc "github.com/dare2earn/d2e_backend/internal/core/ports/services"
	"github.com/gin-gonic/gin"
)

// CategoryHandler handles category taxonomy requests.
type CategoryHandler struct {
	categoryService portssvc.CategorySvcFacade
}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler(cs portssvc.CategorySvcFacade) *CategoryHandler {
	return &CategoryHandler{categoryService: cs}
}

func registerCategoryRoutes(r *gin.Engine, services *portssvc.ServiceContainer) {
	h := NewCategoryHandler(services.Category)
	r.GET("/api/categories", h.ListCategories)
}

// ListCategories godoc
// @Summary List categories
// @Description Returns all dare categories sorted by name.
// @Tags categories
// @Produce json
// @Success 200 {object} []domain.Category
// @Failure 500 {object} ErrorResponse
// @Router /api/categories [get]
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	categories, err := h.categoryService.ListCategories(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to list categories")
		return
	}
	c.JSON(http.StatusOK, categories)
}
