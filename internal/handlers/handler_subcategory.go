package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/budget_planner_app/internal/core/ports/services"
	"github.com/SscSPs/budget_planner_app/internal/dto"
	"github.com/gin-gonic/gin"
)

// subcategoryHandler handles HTTP requests related to subcategories.
type subcategoryHandler struct {
	subcategoryService portssvc.SubcategorySvc
}

func newSubcategoryHandler(ss portssvc.SubcategorySvc) *subcategoryHandler {
	return &subcategoryHandler{subcategoryService: ss}
}

// registerSubcategoryRoutes registers all subcategory-related routes.
func registerSubcategoryRoutes(rg *gin.RouterGroup, subcategoryService portssvc.SubcategorySvc) {
	h := newSubcategoryHandler(subcategoryService)

	subcategories := rg.Group("/subcategories")
	{
		subcategories.POST("", h.createSubcategory)
		subcategories.PUT("/:subcategory_id", h.updateSubcategory)
		subcategories.DELETE("/:subcategory_id", h.deleteSubcategory)
	}
	rg.GET("/categories/:category_id/subcategories", h.listSubcategoriesByCategory)
}

// createSubcategory godoc
// @Summary Create a new subcategory
// @Description Creates a subcategory under a category the caller may edit.
// @Tags subcategories
// @Accept json
// @Produce json
// @Param subcategory body dto.CreateSubcategoryRequest true "Subcategory details"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /subcategories [post]
func (h *subcategoryHandler) createSubcategory(c *gin.Context) {
	userID, ok := authedUserID(c)
	if !ok {
		return
	}
	var req dto.CreateSubcategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	subcategoryID, err := h.subcategoryService.CreateSubcategory(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Subcategory created successfully", "subcategoryId": subcategoryID})
}

// listSubcategoriesByCategory godoc
// @Summary List subcategories of a category
// @Tags subcategories
// @Produce json
// @Param category_id path int true "Category ID"
// @Success 200 {object} dto.ListSubcategoriesResponse
// @Failure 403 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /categories/{category_id}/subcategories [get]
func (h *subcategoryHandler) listSubcategoriesByCategory(c *gin.Context) {
	userID, ok := authedUserID(c)
	if !ok {
		return
	}
	categoryID, ok := pathID(c, "category_id")
	if !ok {
		return
	}

	subcategories, err := h.subcategoryService.ListSubcategoriesByCategory(c.Request.Context(), categoryID, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToListSubcategoriesResponse(subcategories))
}

// updateSubcategory godoc
// @Summary Update a subcategory
// @Tags subcategories
// @Accept json
// @Produce json
// @Param subcategory_id path int true "Subcategory ID"
// @Param subcategory body dto.UpdateSubcategoryRequest true "Subcategory details"
// @Success 200 {object} dto.MessageResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /subcategories/{subcategory_id} [put]
func (h *subcategoryHandler) updateSubcategory(c *gin.Context) {
	userID, ok := authedUserID(c)
	if !ok {
		return
	}
	subcategoryID, ok := pathID(c, "subcategory_id")
	if !ok {
		return
	}
	var req dto.UpdateSubcategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	if err := h.subcategoryService.UpdateSubcategory(c.Request.Context(), subcategoryID, req, userID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Subcategory updated successfully"})
}

// deleteSubcategory godoc
// @Summary Delete a subcategory
// @Description Deletes the subcategory once no transaction is attached to it.
// @Tags subcategories
// @Produce json
// @Param subcategory_id path int true "Subcategory ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /subcategories/{subcategory_id} [delete]
func (h *subcategoryHandler) deleteSubcategory(c *gin.Context) {
	userID, ok := authedUserID(c)
	if !ok {
		return
	}
	subcategoryID, ok := pathID(c, "subcategory_id")
	if !ok {
		return
	}

	if err := h.subcategoryService.DeleteSubcategory(c.Request.Context(), subcategoryID, userID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Subcategory deleted successfully"})
}
