package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/budget_planner_app/internal/core/ports/services"
	"github.com/SscSPs/budget_planner_app/internal/dto"
	"github.com/gin-gonic/gin"
)

// budgetHandler handles HTTP requests related to budgets.
type budgetHandler struct {
	budgetService portssvc.BudgetSvc
}

func newBudgetHandler(bs portssvc.BudgetSvc) *budgetHandler {
	return &budgetHandler{budgetService: bs}
}

// registerBudgetRoutes registers all budget-related routes.
func registerBudgetRoutes(rg *gin.RouterGroup, budgetService portssvc.BudgetSvc) {
	h := newBudgetHandler(budgetService)

	budgets := rg.Group("/budgets")
	{
		budgets.POST("", h.createBudget)
		budgets.GET("", h.listBudgets)
		budgets.GET("/:budget_id", h.getBudget)
		budgets.PUT("/:budget_id", h.updateBudget)
		budgets.DELETE("/:budget_id", h.deleteBudget)
		budgets.POST("/:budget_id/users", h.addUserToBudget)
	}
}

// createBudget godoc
// @Summary Create a new budget
// @Description Creates a budget with the caller as its first member.
// @Tags budgets
// @Accept json
// @Produce json
// @Param budget body dto.CreateBudgetRequest true "Budget details"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /budgets [post]
func (h *budgetHandler) createBudget(c *gin.Context) {
	userID, ok := authedUserID(c)
	if !ok {
		return
	}
	var req dto.CreateBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	budgetID, err := h.budgetService.CreateBudget(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Budget created successfully", "budgetId": budgetID})
}

// listBudgets godoc
// @Summary List budgets
// @Description Retrieves every budget the caller is a member of.
// @Tags budgets
// @Produce json
// @Success 200 {object} dto.ListBudgetsResponse
// @Failure 401 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /budgets [get]
func (h *budgetHandler) listBudgets(c *gin.Context) {
	userID, ok := authedUserID(c)
	if !ok {
		return
	}

	budgets, err := h.budgetService.ListUserBudgets(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToListBudgetsResponse(budgets))
}

// getBudget godoc
// @Summary Get a budget
// @Description Retrieves a budget together with its accounts.
// @Tags budgets
// @Produce json
// @Param budget_id path int true "Budget ID"
// @Success 200 {object} dto.BudgetWithAccountsResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /budgets/{budget_id} [get]
func (h *budgetHandler) getBudget(c *gin.Context) {
	userID, ok := authedUserID(c)
	if !ok {
		return
	}
	budgetID, ok := pathID(c, "budget_id")
	if !ok {
		return
	}

	budget, err := h.budgetService.GetBudgetWithAccounts(c.Request.Context(), budgetID, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToBudgetWithAccountsResponse(budget))
}

// updateBudget godoc
// @Summary Update a budget
// @Description Replaces the budget's title and description.
// @Tags budgets
// @Accept json
// @Produce json
// @Param budget_id path int true "Budget ID"
// @Param budget body dto.UpdateBudgetRequest true "Budget details"
// @Success 200 {object} dto.MessageResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /budgets/{budget_id} [put]
func (h *budgetHandler) updateBudget(c *gin.Context) {
	userID, ok := authedUserID(c)
	if !ok {
		return
	}
	budgetID, ok := pathID(c, "budget_id")
	if !ok {
		return
	}
	var req dto.UpdateBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	if err := h.budgetService.UpdateBudget(c.Request.Context(), budgetID, req, userID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Budget updated successfully"})
}

// deleteBudget godoc
// @Summary Delete a budget
// @Description Deletes the budget and everything scoped under it.
// @Tags budgets
// @Produce json
// @Param budget_id path int true "Budget ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /budgets/{budget_id} [delete]
func (h *budgetHandler) deleteBudget(c *gin.Context) {
	userID, ok := authedUserID(c)
	if !ok {
		return
	}
	budgetID, ok := pathID(c, "budget_id")
	if !ok {
		return
	}

	if err := h.budgetService.DeleteBudget(c.Request.Context(), budgetID, userID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Budget deleted successfully"})
}

// addUserToBudget godoc
// @Summary Add a user to a budget
// @Description Adds another user to a budget the caller is a member of.
// @Tags budgets
// @Accept json
// @Produce json
// @Param budget_id path int true "Budget ID"
// @Param membership body dto.AddUserToBudgetRequest true "User to add"
// @Success 200 {object} dto.MessageResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /budgets/{budget_id}/users [post]
func (h *budgetHandler) addUserToBudget(c *gin.Context) {
	userID, ok := authedUserID(c)
	if !ok {
		return
	}
	budgetID, ok := pathID(c, "budget_id")
	if !ok {
		return
	}
	var req dto.AddUserToBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	if err := h.budgetService.AddUserToBudget(c.Request.Context(), userID, req.UserID, budgetID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "User added to budget successfully"})
}
