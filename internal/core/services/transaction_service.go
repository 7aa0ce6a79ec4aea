package services

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/SscSPs/budget_planner_app/internal/apperrors"
	"github.com/SscSPs/budget_planner_app/internal/core/domain"
	portsrepo "github.com/SscSPs/budget_planner_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/budget_planner_app/internal/core/ports/services"
	"github.com/SscSPs/budget_planner_app/internal/dto"
)

// transactionService implements the TransactionSvc interface
type transactionService struct {
	BaseService
	transactionRepo portsrepo.TransactionRepository
	accountRepo     portsrepo.AccountReader
	permission      portssvc.PermissionSvc
}

// NewTransactionService creates a new transaction service.
func NewTransactionService(transactionRepo portsrepo.TransactionRepository, accountRepo portsrepo.AccountReader, permission portssvc.PermissionSvc) portssvc.TransactionSvc {
	return &transactionService{
		transactionRepo: transactionRepo,
		accountRepo:     accountRepo,
		permission:      permission,
	}
}

var _ portssvc.TransactionSvc = (*transactionService)(nil)

func (s *transactionService) CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest, userID int64) (*dto.TransactionMutationResult, error) {
	if err := s.authorizeParents(ctx, userID, req.AccountID, req.SubcategoryID); err != nil {
		return nil, err
	}

	txn := domain.Transaction{
		Amount:        req.Amount,
		Description:   req.Description,
		Date:          req.Date,
		AccountID:     req.AccountID,
		SubcategoryID: req.SubcategoryID,
	}
	transactionID, err := s.transactionRepo.CreateTransaction(ctx, txn)
	if err != nil {
		s.LogError(ctx, err, "Failed to create transaction", slog.Int64("account_id", req.AccountID))
		return nil, err
	}
	s.LogInfo(ctx, "Transaction created",
		slog.Int64("transaction_id", transactionID),
		slog.Int64("account_id", req.AccountID))

	result := &dto.TransactionMutationResult{TransactionID: transactionID}
	s.attachBalance(ctx, result, req.AccountID)
	return result, nil
}

func (s *transactionService) ListTransactionsByAccount(ctx context.Context, accountID, userID int64) ([]domain.Transaction, error) {
	ok, err := s.permission.HasPermissionToEditAccount(ctx, userID, accountID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperrors.NewForbiddenError("Access denied")
	}
	return s.transactionRepo.ListTransactionsByAccountID(ctx, accountID)
}

func (s *transactionService) UpdateTransaction(ctx context.Context, transactionID int64, req dto.UpdateTransactionRequest, userID int64) (*dto.TransactionMutationResult, error) {
	// The user must control the existing transaction and both parents the
	// update points it at.
	ok, err := s.permission.HasPermissionToEditTransaction(ctx, userID, transactionID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperrors.NewForbiddenError("Access denied")
	}
	if err := s.authorizeParents(ctx, userID, req.AccountID, req.SubcategoryID); err != nil {
		return nil, err
	}

	txn := domain.Transaction{
		TransactionID: transactionID,
		Amount:        req.Amount,
		Description:   req.Description,
		Date:          req.Date,
		AccountID:     req.AccountID,
		SubcategoryID: req.SubcategoryID,
	}
	if err := s.transactionRepo.UpdateTransaction(ctx, txn); err != nil {
		s.LogError(ctx, err, "Failed to update transaction", slog.Int64("transaction_id", transactionID))
		return nil, err
	}

	result := &dto.TransactionMutationResult{TransactionID: transactionID}
	s.attachBalance(ctx, result, req.AccountID)
	return result, nil
}

func (s *transactionService) DeleteTransaction(ctx context.Context, transactionID, userID int64) error {
	ok, err := s.permission.HasPermissionToEditTransaction(ctx, userID, transactionID)
	if err != nil {
		return err
	}
	if !ok {
		return apperrors.NewForbiddenError("Access denied")
	}
	return s.transactionRepo.RemoveTransactionByID(ctx, transactionID)
}

func (s *transactionService) authorizeParents(ctx context.Context, userID, accountID, subcategoryID int64) error {
	ok, err := s.permission.CanEditTransactionParents(ctx, userID, accountID, subcategoryID)
	if err != nil {
		return err
	}
	if !ok {
		return apperrors.NewForbiddenError("Access denied")
	}
	return nil
}

// attachBalance recomputes the account balance after a successful mutation.
// The recompute is best effort: a failure lands in result.BalanceErr and
// never downgrades the mutation outcome.
func (s *transactionService) attachBalance(ctx context.Context, result *dto.TransactionMutationResult, accountID int64) {
	balance, err := s.accountRepo.CurrentBalance(ctx, accountID)
	if err != nil {
		s.LogError(ctx, err, "Failed to recompute account balance after transaction mutation",
			slog.Int64("account_id", accountID))
		result.BalanceErr = apperrors.NewAppError(http.StatusInternalServerError, "Internal server error: unable to retrieve current account balance", err)
		return
	}
	result.CurrentBalance = &balance
}
