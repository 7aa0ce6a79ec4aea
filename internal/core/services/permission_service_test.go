package services_test

import (
	"context"
	"errors"
	"testing"

	portssvc "github.com/SscSPs/budget_planner_app/internal/core/ports/services"
	"github.com/SscSPs/budget_planner_app/internal/core/services"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type PermissionServiceTestSuite struct {
	suite.Suite
	budgetRepo      *MockBudgetRepository
	accountRepo     *MockAccountRepository
	categoryRepo    *MockCategoryRepository
	subcategoryRepo *MockSubcategoryRepository
	transactionRepo *MockTransactionRepository
	svc             portssvc.PermissionSvc
}

func (s *PermissionServiceTestSuite) SetupTest() {
	s.budgetRepo = new(MockBudgetRepository)
	s.accountRepo = new(MockAccountRepository)
	s.categoryRepo = new(MockCategoryRepository)
	s.subcategoryRepo = new(MockSubcategoryRepository)
	s.transactionRepo = new(MockTransactionRepository)
	s.svc = services.NewPermissionService(
		s.budgetRepo,
		s.accountRepo,
		s.categoryRepo,
		s.subcategoryRepo,
		s.transactionRepo,
	)
}

func (s *PermissionServiceTestSuite) TestBudgetPermissionDelegatesToMembership() {
	ctx := context.Background()
	s.budgetRepo.On("CheckUserPermissions", ctx, int64(34), int64(7)).Return(true, nil)

	ok, err := s.svc.HasPermissionToEditBudget(ctx, 7, 34)
	s.NoError(err)
	s.True(ok)
	s.budgetRepo.AssertExpectations(s.T())
}

func (s *PermissionServiceTestSuite) TestBudgetPermissionDeniedForNonMember() {
	ctx := context.Background()
	s.budgetRepo.On("CheckUserPermissions", ctx, int64(34), int64(9)).Return(false, nil)

	ok, err := s.svc.HasPermissionToEditBudget(ctx, 9, 34)
	s.NoError(err)
	s.False(ok)
}

func (s *PermissionServiceTestSuite) TestTransactionParentsBothAllowed() {
	s.accountRepo.On("CheckUserPermissions", mock.Anything, int64(5), int64(7)).Return(true, nil)
	s.subcategoryRepo.On("CheckUserPermissions", mock.Anything, int64(11), int64(7)).Return(true, nil)

	ok, err := s.svc.CanEditTransactionParents(context.Background(), 7, 5, 11)
	s.NoError(err)
	s.True(ok)
}

func (s *PermissionServiceTestSuite) TestTransactionParentsDeniedWhenAccountForeign() {
	s.accountRepo.On("CheckUserPermissions", mock.Anything, int64(5), int64(7)).Return(false, nil)
	s.subcategoryRepo.On("CheckUserPermissions", mock.Anything, int64(11), int64(7)).Return(true, nil)

	ok, err := s.svc.CanEditTransactionParents(context.Background(), 7, 5, 11)
	s.NoError(err)
	s.False(ok)
}

func (s *PermissionServiceTestSuite) TestTransactionParentsDeniedWhenSubcategoryForeign() {
	s.accountRepo.On("CheckUserPermissions", mock.Anything, int64(5), int64(7)).Return(true, nil)
	s.subcategoryRepo.On("CheckUserPermissions", mock.Anything, int64(11), int64(7)).Return(false, nil)

	ok, err := s.svc.CanEditTransactionParents(context.Background(), 7, 5, 11)
	s.NoError(err)
	s.False(ok)
}

func (s *PermissionServiceTestSuite) TestTransactionParentsErrorPropagates() {
	repoErr := errors.New("connection reset")
	s.accountRepo.On("CheckUserPermissions", mock.Anything, int64(5), int64(7)).Return(false, repoErr)
	s.subcategoryRepo.On("CheckUserPermissions", mock.Anything, int64(11), int64(7)).Return(true, nil).Maybe()

	ok, err := s.svc.CanEditTransactionParents(context.Background(), 7, 5, 11)
	s.Error(err)
	s.False(ok)
}

func (s *PermissionServiceTestSuite) TestTransactionPermissionDelegates() {
	ctx := context.Background()
	s.transactionRepo.On("CheckUserPermissions", ctx, int64(99), int64(7)).Return(true, nil)

	ok, err := s.svc.HasPermissionToEditTransaction(ctx, 7, 99)
	s.NoError(err)
	s.True(ok)
}

func TestPermissionService(t *testing.T) {
	suite.Run(t, new(PermissionServiceTestSuite))
}
