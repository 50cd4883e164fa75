package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/samprox/erp_backend/internal/apperrors"
	"github.com/samprox/erp_backend/internal/core/domain"
	portssvc "github.com/samprox/erp_backend/internal/core/ports/services"
	"github.com/samprox/erp_backend/internal/core/services"
	"github.com/samprox/erp_backend/internal/dto"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite ---
type CompanyServiceTestSuite struct {
	suite.Suite
	mockRepo *MockCompanyRepository
	service  portssvc.CompanySvcFacade
}

func (suite *CompanyServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockCompanyRepository)
	suite.service = services.NewCompanyService(suite.mockRepo)
}

// --- Test Cases ---

func (suite *CompanyServiceTestSuite) TestCreateCompany_Success() {
	ctx := context.Background()
	creatorUserID := uuid.NewString()
	req := dto.CreateCompanyRequest{
		Key:        "exsol-engineering",
		Name:       "Exsol Engineering",
		CodePrefix: "E",
	}

	suite.mockRepo.On("SaveCompany", ctx, mock.MatchedBy(func(c domain.Company) bool {
		return c.Key == req.Key && c.Name == req.Name && c.CodePrefix == req.CodePrefix &&
			c.CreatedBy == creatorUserID && c.CompanyID != ""
	})).Return(nil).Once()

	company, err := suite.service.CreateCompany(ctx, req, creatorUserID)

	suite.Require().NoError(err)
	suite.Require().NotNil(company)
	suite.Equal(req.Key, company.Key)
	suite.Equal(req.CodePrefix, company.CodePrefix)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CompanyServiceTestSuite) TestCreateCompany_EmptyPrefixAllowed() {
	ctx := context.Background()
	req := dto.CreateCompanyRequest{
		Key:  "samprox",
		Name: "Samprox",
	}

	suite.mockRepo.On("SaveCompany", ctx, mock.MatchedBy(func(c domain.Company) bool {
		return c.CodePrefix == ""
	})).Return(nil).Once()

	company, err := suite.service.CreateCompany(ctx, req, uuid.NewString())

	suite.Require().NoError(err)
	suite.Empty(company.CodePrefix)
}

func (suite *CompanyServiceTestSuite) TestCreateCompany_PrefixTooLong() {
	ctx := context.Background()
	req := dto.CreateCompanyRequest{
		Key:        "long-prefix-co",
		Name:       "Long Prefix Co",
		CodePrefix: "LONGP",
	}

	company, err := suite.service.CreateCompany(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(company)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveCompany", mock.Anything, mock.Anything)
}

func (suite *CompanyServiceTestSuite) TestCreateCompany_DuplicateKey() {
	ctx := context.Background()
	req := dto.CreateCompanyRequest{Key: "exsol-engineering", Name: "Exsol Again", CodePrefix: "E"}

	suite.mockRepo.On("SaveCompany", ctx, mock.AnythingOfType("domain.Company")).
		Return(apperrors.ErrDuplicate).Once()

	company, err := suite.service.CreateCompany(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.Nil(company)
}

func (suite *CompanyServiceTestSuite) TestGetCompanyByID_Success() {
	ctx := context.Background()
	companyID := uuid.NewString()
	expected := &domain.Company{CompanyID: companyID, Key: "hello-homes", CodePrefix: "H"}

	suite.mockRepo.On("FindCompanyByID", ctx, companyID).Return(expected, nil).Once()

	company, err := suite.service.GetCompanyByID(ctx, companyID)

	suite.Require().NoError(err)
	suite.Equal(expected, company)
}

func (suite *CompanyServiceTestSuite) TestGetCompanyByID_NotFound() {
	ctx := context.Background()
	companyID := uuid.NewString()

	suite.mockRepo.On("FindCompanyByID", ctx, companyID).Return(nil, apperrors.ErrNotFound).Once()

	company, err := suite.service.GetCompanyByID(ctx, companyID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(company)
}

func (suite *CompanyServiceTestSuite) TestListCompanies_NilBecomesEmptySlice() {
	ctx := context.Background()

	suite.mockRepo.On("ListCompanies", ctx).Return(nil, nil).Once()

	companies, err := suite.service.ListCompanies(ctx)

	suite.Require().NoError(err)
	suite.NotNil(companies)
	suite.Empty(companies)
}

func TestCompanyServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CompanyServiceTestSuite))
}
