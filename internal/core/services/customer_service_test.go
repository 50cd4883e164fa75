package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/samprox/erp_backend/internal/apperrors"
	"github.com/samprox/erp_backend/internal/core/domain"
	portsrepo "github.com/samprox/erp_backend/internal/core/ports/repositories"
	portssvc "github.com/samprox/erp_backend/internal/core/ports/services"
	"github.com/samprox/erp_backend/internal/core/services"
	"github.com/samprox/erp_backend/internal/dto"
	"github.com/samprox/erp_backend/internal/utils/pagination"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock CustomerRepository ---
type MockCustomerRepository struct {
	mock.Mock
}

func (m *MockCustomerRepository) FindCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

func (m *MockCustomerRepository) FindCustomerByCode(ctx context.Context, customerCode string) (*domain.Customer, error) {
	args := m.Called(ctx, customerCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

func (m *MockCustomerRepository) ListCustomers(ctx context.Context, filter portsrepo.CustomerListFilter) ([]domain.Customer, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Customer), args.Error(1)
}

func (m *MockCustomerRepository) SaveCustomer(ctx context.Context, customer domain.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}

func (m *MockCustomerRepository) UpdateCustomer(ctx context.Context, customer domain.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}

// --- Mock CodeAllocator ---
type MockCodeAllocator struct {
	mock.Mock
}

func (m *MockCodeAllocator) AllocateCustomerCode(ctx context.Context, companyID string) (string, error) {
	args := m.Called(ctx, companyID)
	return args.String(0), args.Error(1)
}

func (m *MockCodeAllocator) PreviewNextCode(ctx context.Context, companyID string) (string, error) {
	args := m.Called(ctx, companyID)
	return args.String(0), args.Error(1)
}

// --- Test Suite ---
type CustomerServiceTestSuite struct {
	suite.Suite
	mockCustomerRepo *MockCustomerRepository
	mockCompanyRepo  *MockCompanyRepository
	mockAllocator    *MockCodeAllocator
	service          portssvc.CustomerSvcFacade
}

func (suite *CustomerServiceTestSuite) SetupTest() {
	suite.mockCustomerRepo = new(MockCustomerRepository)
	suite.mockCompanyRepo = new(MockCompanyRepository)
	suite.mockAllocator = new(MockCodeAllocator)
	suite.service = services.NewCustomerService(suite.mockCustomerRepo, suite.mockCompanyRepo, suite.mockAllocator)
}

// --- Test Cases ---

func (suite *CustomerServiceTestSuite) TestCreateCustomer_Success() {
	ctx := context.Background()
	creatorUserID := uuid.NewString()
	req := dto.CreateCustomerRequest{
		Name:      "Lanka Hardware Stores",
		City:      "Kandy",
		CompanyID: testCompanyID,
	}

	suite.mockCompanyRepo.On("FindCompanyByID", ctx, testCompanyID).
		Return(&domain.Company{CompanyID: testCompanyID, CodePrefix: "E"}, nil).Once()
	suite.mockAllocator.On("AllocateCustomerCode", ctx, testCompanyID).Return("E260001", nil).Once()
	suite.mockCustomerRepo.On("SaveCustomer", ctx, mock.MatchedBy(func(c domain.Customer) bool {
		return c.CustomerCode == "E260001" && c.Name == req.Name && c.CompanyID == testCompanyID &&
			c.ManagedByUserID == creatorUserID && c.CreatedBy == creatorUserID && c.IsActive
	})).Return(nil).Once()

	customer, err := suite.service.CreateCustomer(ctx, req, creatorUserID)

	suite.Require().NoError(err)
	suite.Require().NotNil(customer)
	suite.Equal("E260001", customer.CustomerCode)
	suite.Equal(creatorUserID, customer.ManagedByUserID)
	suite.True(customer.CreditLimit.IsZero())
	suite.mockCustomerRepo.AssertExpectations(suite.T())
}

func (suite *CustomerServiceTestSuite) TestCreateCustomer_ClientSuppliedCodeIgnored() {
	ctx := context.Background()
	creatorUserID := uuid.NewString()
	req := dto.CreateCustomerRequest{
		Name:         "Hacker Mart",
		CompanyID:    testCompanyID,
		CustomerCode: "E259999",
	}

	suite.mockCompanyRepo.On("FindCompanyByID", ctx, testCompanyID).
		Return(&domain.Company{CompanyID: testCompanyID, CodePrefix: "E"}, nil).Once()
	suite.mockAllocator.On("AllocateCustomerCode", ctx, testCompanyID).Return("E260042", nil).Once()
	suite.mockCustomerRepo.On("SaveCustomer", ctx, mock.MatchedBy(func(c domain.Customer) bool {
		return c.CustomerCode == "E260042"
	})).Return(nil).Once()

	customer, err := suite.service.CreateCustomer(ctx, req, creatorUserID)

	suite.Require().NoError(err)
	suite.Equal("E260042", customer.CustomerCode)
	suite.NotEqual(req.CustomerCode, customer.CustomerCode)
	suite.mockCustomerRepo.AssertExpectations(suite.T())
}

func (suite *CustomerServiceTestSuite) TestCreateCustomer_CompanyNotFound() {
	ctx := context.Background()
	req := dto.CreateCustomerRequest{Name: "Nobody", CompanyID: "missing"}

	suite.mockCompanyRepo.On("FindCompanyByID", ctx, "missing").Return(nil, apperrors.ErrNotFound).Once()

	customer, err := suite.service.CreateCustomer(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(customer)
	suite.mockAllocator.AssertNotCalled(suite.T(), "AllocateCustomerCode", mock.Anything, mock.Anything)
}

func (suite *CustomerServiceTestSuite) TestCreateCustomer_NegativeCreditLimit() {
	ctx := context.Background()
	negative := decimal.NewFromInt(-100)
	req := dto.CreateCustomerRequest{
		Name:        "Red Balance",
		CompanyID:   testCompanyID,
		CreditLimit: &negative,
	}

	suite.mockCompanyRepo.On("FindCompanyByID", ctx, testCompanyID).
		Return(&domain.Company{CompanyID: testCompanyID}, nil).Once()

	customer, err := suite.service.CreateCustomer(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(customer)
	suite.mockAllocator.AssertNotCalled(suite.T(), "AllocateCustomerCode", mock.Anything, mock.Anything)
}

func (suite *CustomerServiceTestSuite) TestCreateCustomer_RetriesOnceOnDuplicateCode() {
	ctx := context.Background()
	creatorUserID := uuid.NewString()
	req := dto.CreateCustomerRequest{Name: "Raced Customer", CompanyID: testCompanyID}

	suite.mockCompanyRepo.On("FindCompanyByID", ctx, testCompanyID).
		Return(&domain.Company{CompanyID: testCompanyID}, nil).Once()
	suite.mockAllocator.On("AllocateCustomerCode", ctx, testCompanyID).Return("E260010", nil).Once()
	suite.mockAllocator.On("AllocateCustomerCode", ctx, testCompanyID).Return("E260011", nil).Once()
	suite.mockCustomerRepo.On("SaveCustomer", ctx, mock.MatchedBy(func(c domain.Customer) bool {
		return c.CustomerCode == "E260010"
	})).Return(apperrors.ErrDuplicate).Once()
	suite.mockCustomerRepo.On("SaveCustomer", ctx, mock.MatchedBy(func(c domain.Customer) bool {
		return c.CustomerCode == "E260011"
	})).Return(nil).Once()

	customer, err := suite.service.CreateCustomer(ctx, req, creatorUserID)

	suite.Require().NoError(err)
	suite.Equal("E260011", customer.CustomerCode)
	suite.mockAllocator.AssertNumberOfCalls(suite.T(), "AllocateCustomerCode", 2)
	suite.mockCustomerRepo.AssertExpectations(suite.T())
}

func (suite *CustomerServiceTestSuite) TestCreateCustomer_GivesUpAfterRepeatedDuplicates() {
	ctx := context.Background()
	req := dto.CreateCustomerRequest{Name: "Persistent Race", CompanyID: testCompanyID}

	suite.mockCompanyRepo.On("FindCompanyByID", ctx, testCompanyID).
		Return(&domain.Company{CompanyID: testCompanyID}, nil).Once()
	suite.mockAllocator.On("AllocateCustomerCode", ctx, testCompanyID).Return("E260010", nil).Twice()
	suite.mockCustomerRepo.On("SaveCustomer", ctx, mock.AnythingOfType("domain.Customer")).
		Return(apperrors.ErrDuplicate).Twice()

	customer, err := suite.service.CreateCustomer(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.Nil(customer)
	suite.mockCustomerRepo.AssertNumberOfCalls(suite.T(), "SaveCustomer", 2)
}

func (suite *CustomerServiceTestSuite) TestCreateCustomer_AllocationExhausted() {
	ctx := context.Background()
	req := dto.CreateCustomerRequest{Name: "Unlucky", CompanyID: testCompanyID}

	suite.mockCompanyRepo.On("FindCompanyByID", ctx, testCompanyID).
		Return(&domain.Company{CompanyID: testCompanyID}, nil).Once()
	suite.mockAllocator.On("AllocateCustomerCode", ctx, testCompanyID).
		Return("", apperrors.ErrAllocationExhausted).Once()

	customer, err := suite.service.CreateCustomer(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrAllocationExhausted)
	suite.Nil(customer)
	suite.mockCustomerRepo.AssertNotCalled(suite.T(), "SaveCustomer", mock.Anything, mock.Anything)
}

func (suite *CustomerServiceTestSuite) TestUpdateCustomer_AppliesFieldsAndKeepsCode() {
	ctx := context.Background()
	updaterUserID := uuid.NewString()
	customerID := uuid.NewString()
	existing := &domain.Customer{
		CustomerID:   customerID,
		CustomerCode: "E260001",
		Name:         "Old Name",
		City:         "Galle",
		CompanyID:    testCompanyID,
		IsActive:     true,
	}

	newName := "New Name"
	inactive := false
	req := dto.UpdateCustomerRequest{Name: &newName, IsActive: &inactive}

	suite.mockCustomerRepo.On("FindCustomerByID", ctx, customerID).Return(existing, nil).Once()
	suite.mockCustomerRepo.On("UpdateCustomer", ctx, mock.MatchedBy(func(c domain.Customer) bool {
		return c.CustomerID == customerID && c.Name == newName && !c.IsActive &&
			c.CustomerCode == "E260001" && c.LastUpdatedBy == updaterUserID
	})).Return(nil).Once()

	customer, err := suite.service.UpdateCustomer(ctx, customerID, req, updaterUserID)

	suite.Require().NoError(err)
	suite.Equal("E260001", customer.CustomerCode)
	suite.Equal(newName, customer.Name)
	suite.Equal("Galle", customer.City)
	suite.mockCustomerRepo.AssertExpectations(suite.T())
}

func (suite *CustomerServiceTestSuite) TestUpdateCustomer_NotFound() {
	ctx := context.Background()
	customerID := uuid.NewString()

	suite.mockCustomerRepo.On("FindCustomerByID", ctx, customerID).Return(nil, apperrors.ErrNotFound).Once()

	customer, err := suite.service.UpdateCustomer(ctx, customerID, dto.UpdateCustomerRequest{}, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(customer)
}

func (suite *CustomerServiceTestSuite) TestListCustomers_EmitsNextTokenOnFullPage() {
	ctx := context.Background()
	now := time.Now()
	page := make([]domain.Customer, 2)
	for i := range page {
		page[i] = domain.Customer{
			CustomerID: uuid.NewString(),
			AuditFields: domain.AuditFields{
				CreatedAt: now.Add(time.Duration(i) * time.Minute),
			},
		}
	}

	suite.mockCustomerRepo.On("ListCustomers", ctx, mock.MatchedBy(func(f portsrepo.CustomerListFilter) bool {
		return f.Limit == 2 && f.AfterCreatedAt == nil
	})).Return(page, nil).Once()

	customers, nextToken, err := suite.service.ListCustomers(ctx, dto.ListCustomersParams{Limit: 2})

	suite.Require().NoError(err)
	suite.Len(customers, 2)
	suite.Require().NotEmpty(nextToken)

	createdAt, customerID, err := pagination.DecodeCursor(nextToken)
	suite.Require().NoError(err)
	suite.Equal(page[1].CustomerID, customerID)
	suite.WithinDuration(page[1].CreatedAt, createdAt, time.Second)
}

func (suite *CustomerServiceTestSuite) TestListCustomers_NoTokenOnPartialPage() {
	ctx := context.Background()
	page := []domain.Customer{{CustomerID: uuid.NewString()}}

	suite.mockCustomerRepo.On("ListCustomers", ctx, mock.AnythingOfType("repositories.CustomerListFilter")).
		Return(page, nil).Once()

	customers, nextToken, err := suite.service.ListCustomers(ctx, dto.ListCustomersParams{Limit: 20})

	suite.Require().NoError(err)
	suite.Len(customers, 1)
	suite.Empty(nextToken)
}

func (suite *CustomerServiceTestSuite) TestListCustomers_InvalidTokenRejected() {
	ctx := context.Background()

	customers, nextToken, err := suite.service.ListCustomers(ctx, dto.ListCustomersParams{
		Limit:     20,
		NextToken: "not-a-cursor",
	})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(customers)
	suite.Empty(nextToken)
	suite.mockCustomerRepo.AssertNotCalled(suite.T(), "ListCustomers", mock.Anything, mock.Anything)
}

func TestCustomerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CustomerServiceTestSuite))
}
