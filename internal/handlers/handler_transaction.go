package handlers

import (
	"errors"
	"net/http"

	"github.com/SscSPs/budget_planner_app/internal/apperrors"
	portssvc "github.com/SscSPs/budget_planner_app/internal/core/ports/services"
	"github.com/SscSPs/budget_planner_app/internal/dto"
	"github.com/gin-gonic/gin"
)

// transactionHandler handles HTTP requests related to transactions.
type transactionHandler struct {
	transactionService portssvc.TransactionSvc
}

func newTransactionHandler(ts portssvc.TransactionSvc) *transactionHandler {
	return &transactionHandler{transactionService: ts}
}

// registerTransactionRoutes registers all transaction-related routes.
func registerTransactionRoutes(rg *gin.RouterGroup, transactionService portssvc.TransactionSvc) {
	h := newTransactionHandler(transactionService)

	transactions := rg.Group("/transactions")
	{
		transactions.POST("", h.createTransaction)
		transactions.PUT("/:transaction_id", h.updateTransaction)
		transactions.DELETE("/:transaction_id", h.deleteTransaction)
	}
	rg.GET("/accounts/:account_id/transactions", h.listTransactionsByAccount)
}

// mutationBody builds the success envelope for a transaction mutation. A
// balance recompute failure rides along as a nested error object without
// changing the 200 outcome.
func mutationBody(message string, result *dto.TransactionMutationResult) gin.H {
	body := gin.H{
		"message":       message,
		"transactionId": result.TransactionID,
	}
	if result.CurrentBalance != nil {
		body["currentBalance"] = result.CurrentBalance
	}
	if result.BalanceErr != nil {
		msg := result.BalanceErr.Error()
		var appErr *apperrors.AppError
		if errors.As(result.BalanceErr, &appErr) {
			msg = appErr.Message
		}
		body["error"] = dto.ErrorDetail{Message: msg}
	}
	return body
}

// createTransaction godoc
// @Summary Create a new transaction
// @Description Creates a transaction once the caller controls both the target account and subcategory.
// @Tags transactions
// @Accept json
// @Produce json
// @Param transaction body dto.CreateTransactionRequest true "Transaction details"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /transactions [post]
func (h *transactionHandler) createTransaction(c *gin.Context) {
	userID, ok := authedUserID(c)
	if !ok {
		return
	}
	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	result, err := h.transactionService.CreateTransaction(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, mutationBody("Transaction created successfully", result))
}

// listTransactionsByAccount godoc
// @Summary List transactions of an account
// @Tags transactions
// @Produce json
// @Param account_id path int true "Account ID"
// @Success 200 {object} dto.ListTransactionsResponse
// @Failure 403 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /accounts/{account_id}/transactions [get]
func (h *transactionHandler) listTransactionsByAccount(c *gin.Context) {
	userID, ok := authedUserID(c)
	if !ok {
		return
	}
	accountID, ok := pathID(c, "account_id")
	if !ok {
		return
	}

	transactions, err := h.transactionService.ListTransactionsByAccount(c.Request.Context(), accountID, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToListTransactionsResponse(transactions))
}

// updateTransaction godoc
// @Summary Update a transaction
// @Description Replaces the transaction's fields; the caller must control the transaction and both parents the update points it at.
// @Tags transactions
// @Accept json
// @Produce json
// @Param transaction_id path int true "Transaction ID"
// @Param transaction body dto.UpdateTransactionRequest true "Transaction details"
// @Success 200 {object} map[string]interface{}
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /transactions/{transaction_id} [put]
func (h *transactionHandler) updateTransaction(c *gin.Context) {
	userID, ok := authedUserID(c)
	if !ok {
		return
	}
	transactionID, ok := pathID(c, "transaction_id")
	if !ok {
		return
	}
	var req dto.UpdateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	result, err := h.transactionService.UpdateTransaction(c.Request.Context(), transactionID, req, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, mutationBody("Transaction updated successfully", result))
}

// deleteTransaction godoc
// @Summary Delete a transaction
// @Tags transactions
// @Produce json
// @Param transaction_id path int true "Transaction ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /transactions/{transaction_id} [delete]
func (h *transactionHandler) deleteTransaction(c *gin.Context) {
	userID, ok := authedUserID(c)
	if !ok {
		return
	}
	transactionID, ok := pathID(c, "transaction_id")
	if !ok {
		return
	}

	if err := h.transactionService.DeleteTransaction(c.Request.Context(), transactionID, userID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Transaction deleted successfully"})
}
