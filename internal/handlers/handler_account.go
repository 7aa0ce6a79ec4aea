package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/budget_planner_app/internal/core/ports/services"
	"github.com/SscSPs/budget_planner_app/internal/dto"
	"github.com/gin-gonic/gin"
)

// accountHandler handles HTTP requests related to accounts.
type accountHandler struct {
	accountService portssvc.AccountSvc
}

func newAccountHandler(as portssvc.AccountSvc) *accountHandler {
	return &accountHandler{accountService: as}
}

// registerAccountRoutes registers all account-related routes.
func registerAccountRoutes(rg *gin.RouterGroup, accountService portssvc.AccountSvc) {
	h := newAccountHandler(accountService)

	accounts := rg.Group("/accounts")
	{
		accounts.POST("", h.createAccount)
		accounts.GET("/:account_id", h.getAccount)
		accounts.PUT("/:account_id", h.updateAccount)
		accounts.DELETE("/:account_id", h.deleteAccount)
	}
	rg.GET("/budgets/:budget_id/accounts", h.listAccountsByBudget)
}

// createAccount godoc
// @Summary Create a new account
// @Description Creates an account in a budget the caller is a member of.
// @Tags accounts
// @Accept json
// @Produce json
// @Param account body dto.CreateAccountRequest true "Account details"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /accounts [post]
func (h *accountHandler) createAccount(c *gin.Context) {
	userID, ok := authedUserID(c)
	if !ok {
		return
	}
	var req dto.CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	accountID, err := h.accountService.CreateAccount(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Account created successfully", "accountId": accountID})
}

// getAccount godoc
// @Summary Get an account
// @Description Retrieves an account with its derived current balance.
// @Tags accounts
// @Produce json
// @Param account_id path int true "Account ID"
// @Success 200 {object} dto.AccountResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /accounts/{account_id} [get]
func (h *accountHandler) getAccount(c *gin.Context) {
	userID, ok := authedUserID(c)
	if !ok {
		return
	}
	accountID, ok := pathID(c, "account_id")
	if !ok {
		return
	}

	account, err := h.accountService.GetAccountByID(c.Request.Context(), accountID, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToAccountResponse(account))
}

// listAccountsByBudget godoc
// @Summary List accounts of a budget
// @Tags accounts
// @Produce json
// @Param budget_id path int true "Budget ID"
// @Success 200 {object} dto.ListAccountsResponse
// @Failure 403 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /budgets/{budget_id}/accounts [get]
func (h *accountHandler) listAccountsByBudget(c *gin.Context) {
	userID, ok := authedUserID(c)
	if !ok {
		return
	}
	budgetID, ok := pathID(c, "budget_id")
	if !ok {
		return
	}

	accounts, err := h.accountService.ListAccountsByBudget(c.Request.Context(), budgetID, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToListAccountsResponse(accounts))
}

// updateAccount godoc
// @Summary Update an account
// @Description Replaces the account's name, description, start date and start balance.
// @Tags accounts
// @Accept json
// @Produce json
// @Param account_id path int true "Account ID"
// @Param account body dto.UpdateAccountRequest true "Account details"
// @Success 200 {object} dto.MessageResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /accounts/{account_id} [put]
func (h *accountHandler) updateAccount(c *gin.Context) {
	userID, ok := authedUserID(c)
	if !ok {
		return
	}
	accountID, ok := pathID(c, "account_id")
	if !ok {
		return
	}
	var req dto.UpdateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	if err := h.accountService.UpdateAccount(c.Request.Context(), accountID, req, userID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Account updated successfully"})
}

// deleteAccount godoc
// @Summary Delete an account
// @Description Deletes the account and its transactions.
// @Tags accounts
// @Produce json
// @Param account_id path int true "Account ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /accounts/{account_id} [delete]
func (h *accountHandler) deleteAccount(c *gin.Context) {
	userID, ok := authedUserID(c)
	if !ok {
		return
	}
	accountID, ok := pathID(c, "account_id")
	if !ok {
		return
	}

	if err := h.accountService.DeleteAccount(c.Request.Context(), accountID, userID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Account deleted successfully"})
}
