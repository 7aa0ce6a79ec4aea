package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/budget_planner_app/internal/core/ports/services"
	"github.com/SscSPs/budget_planner_app/internal/dto"
	"github.com/gin-gonic/gin"
)

// categoryHandler handles HTTP requests related to categories.
type categoryHandler struct {
	categoryService portssvc.CategorySvc
}

func newCategoryHandler(cs portssvc.CategorySvc) *categoryHandler {
	return &categoryHandler{categoryService: cs}
}

// registerCategoryRoutes registers all category-related routes.
func registerCategoryRoutes(rg *gin.RouterGroup, categoryService portssvc.CategorySvc) {
	h := newCategoryHandler(categoryService)

	categories := rg.Group("/categories")
	{
		categories.POST("", h.createCategory)
		categories.GET("/:category_id", h.getCategory)
		categories.PUT("/:category_id", h.updateCategory)
		categories.DELETE("/:category_id", h.deleteCategory)
	}
	rg.GET("/budgets/:budget_id/categories", h.listCategoriesByBudget)
}

// createCategory godoc
// @Summary Create a new category
// @Description Creates a category in a budget the caller is a member of.
// @Tags categories
// @Accept json
// @Produce json
// @Param category body dto.CreateCategoryRequest true "Category details"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /categories [post]
func (h *categoryHandler) createCategory(c *gin.Context) {
	userID, ok := authedUserID(c)
	if !ok {
		return
	}
	var req dto.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	categoryID, err := h.categoryService.CreateCategory(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Category created successfully", "categoryId": categoryID})
}

// getCategory godoc
// @Summary Get a category
// @Description Retrieves a category together with its subcategories.
// @Tags categories
// @Produce json
// @Param category_id path int true "Category ID"
// @Success 200 {object} dto.CategoryWithSubcategoriesResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /categories/{category_id} [get]
func (h *categoryHandler) getCategory(c *gin.Context) {
	userID, ok := authedUserID(c)
	if !ok {
		return
	}
	categoryID, ok := pathID(c, "category_id")
	if !ok {
		return
	}

	category, err := h.categoryService.GetCategoryWithSubcategories(c.Request.Context(), categoryID, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToCategoryWithSubcategoriesResponse(category))
}

// listCategoriesByBudget godoc
// @Summary List categories of a budget
// @Tags categories
// @Produce json
// @Param budget_id path int true "Budget ID"
// @Success 200 {object} dto.ListCategoriesResponse
// @Failure 403 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /budgets/{budget_id}/categories [get]
func (h *categoryHandler) listCategoriesByBudget(c *gin.Context) {
	userID, ok := authedUserID(c)
	if !ok {
		return
	}
	budgetID, ok := pathID(c, "budget_id")
	if !ok {
		return
	}

	categories, err := h.categoryService.ListCategoriesByBudget(c.Request.Context(), budgetID, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToListCategoriesResponse(categories))
}

// updateCategory godoc
// @Summary Update a category
// @Tags categories
// @Accept json
// @Produce json
// @Param category_id path int true "Category ID"
// @Param category body dto.UpdateCategoryRequest true "Category details"
// @Success 200 {object} dto.MessageResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /categories/{category_id} [put]
func (h *categoryHandler) updateCategory(c *gin.Context) {
	userID, ok := authedUserID(c)
	if !ok {
		return
	}
	categoryID, ok := pathID(c, "category_id")
	if !ok {
		return
	}
	var req dto.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	if err := h.categoryService.UpdateCategory(c.Request.Context(), categoryID, req, userID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Category updated successfully"})
}

// deleteCategory godoc
// @Summary Delete a category
// @Description Deletes the category once no transaction resolves under it.
// @Tags categories
// @Produce json
// @Param category_id path int true "Category ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /categories/{category_id} [delete]
func (h *categoryHandler) deleteCategory(c *gin.Context) {
	userID, ok := authedUserID(c)
	if !ok {
		return
	}
	categoryID, ok := pathID(c, "category_id")
	if !ok {
		return
	}

	if err := h.categoryService.DeleteCategory(c.Request.Context(), categoryID, userID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Category deleted successfully"})
}
