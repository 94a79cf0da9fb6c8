package service_test

import (
	"errors"
	"fmt"
	"testing"

	"crm-portal-backend/internal/database/models"
	apperrors "crm-portal-backend/internal/errors"
	"crm-portal-backend/internal/mocks"
	"crm-portal-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type LeadServiceTestSuite struct {
	suite.Suite
	ctrl                     *gomock.Controller
	mockRepo                 *mocks.MockLeadRepositoryInterface
	mockSalesChannelRepo     *mocks.MockSalesChannelRepositoryInterface
	mockMarketingChannelRepo *mocks.MockMarketingChannelRepositoryInterface
	service                  *service.LeadService
	validator                *validator.Validate
}

func (suite *LeadServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockLeadRepositoryInterface(suite.ctrl)
	suite.mockSalesChannelRepo = mocks.NewMockSalesChannelRepositoryInterface(suite.ctrl)
	suite.mockMarketingChannelRepo = mocks.NewMockMarketingChannelRepositoryInterface(suite.ctrl)
	suite.validator = validator.New()
	suite.service = service.NewLeadService(suite.mockRepo, suite.mockSalesChannelRepo, suite.mockMarketingChannelRepo, suite.validator)
}

func (suite *LeadServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *LeadServiceTestSuite) TestCreate_Success() {
	code := "dire"
	req := &service.CreateLeadRequest{
		FirstName:        "Jane",
		LastName:         "Doe",
		Email:            "Jane.Doe@Example.COM",
		Company:          "Acme GmbH",
		Status:           "Contacted",
		Source:           "LinkedIn",
		SalesChannelCode: &code,
		Tags:             []string{"enterprise", " priority "},
	}

	suite.mockRepo.EXPECT().
		GetByEmail("jane.doe@example.com").
		Return(nil, gorm.ErrRecordNotFound)
	suite.mockSalesChannelRepo.EXPECT().
		CodeExists("DIRE").
		Return(true, nil)
	suite.mockRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(lead *models.Lead) error {
			assert.Equal(suite.T(), "jane.doe@example.com", lead.Email)
			assert.Equal(suite.T(), models.LeadStatusContacted, lead.Status)
			assert.Equal(suite.T(), models.LeadSourceLinkedIn, lead.Source)
			assert.Equal(suite.T(), "enterprise,priority", lead.Tags)
			if assert.NotNil(suite.T(), lead.SalesChannelCode) {
				assert.Equal(suite.T(), "DIRE", *lead.SalesChannelCode)
			}
			return nil
		})

	resp, err := suite.service.Create(req)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), resp)
	assert.Equal(suite.T(), "jane.doe@example.com", resp.Email)
	assert.Equal(suite.T(), "Contacted", resp.Status)
	assert.Equal(suite.T(), "LinkedIn", resp.Source)
	assert.Equal(suite.T(), []string{"enterprise", "priority"}, resp.Tags)
}

func (suite *LeadServiceTestSuite) TestCreate_MissingEmail() {
	req := &service.CreateLeadRequest{
		FirstName: "Jane",
		LastName:  "Doe",
	}

	resp, err := suite.service.Create(req)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), resp)
	var fieldErrs *service.FieldErrors
	if assert.ErrorAs(suite.T(), err, &fieldErrs) {
		assert.Equal(suite.T(), "email", fieldErrs.Fields[0].Field)
	}
}

func (suite *LeadServiceTestSuite) TestCreate_DuplicateEmail() {
	req := &service.CreateLeadRequest{
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     "jane.doe@example.com",
	}

	suite.mockRepo.EXPECT().
		GetByEmail("jane.doe@example.com").
		Return(&models.Lead{Email: "jane.doe@example.com"}, nil)

	resp, err := suite.service.Create(req)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), resp)
	assert.True(suite.T(), apperrors.IsAlreadyExists(err))
}

func (suite *LeadServiceTestSuite) TestCreate_UnknownSalesChannel() {
	code := "XXXX"
	req := &service.CreateLeadRequest{
		FirstName:        "Jane",
		LastName:         "Doe",
		Email:            "jane.doe@example.com",
		SalesChannelCode: &code,
	}

	suite.mockRepo.EXPECT().
		GetByEmail("jane.doe@example.com").
		Return(nil, gorm.ErrRecordNotFound)
	suite.mockSalesChannelRepo.EXPECT().
		CodeExists("XXXX").
		Return(false, nil)

	resp, err := suite.service.Create(req)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrSalesChannelNotFound)
}

func (suite *LeadServiceTestSuite) TestCreate_UnknownMarketingChannel() {
	channelID := uuid.New()
	req := &service.CreateLeadRequest{
		FirstName:          "Jane",
		LastName:           "Doe",
		Email:              "jane.doe@example.com",
		MarketingChannelID: &channelID,
	}

	suite.mockRepo.EXPECT().
		GetByEmail("jane.doe@example.com").
		Return(nil, gorm.ErrRecordNotFound)
	suite.mockMarketingChannelRepo.EXPECT().
		GetByID(channelID).
		Return(nil, gorm.ErrRecordNotFound)

	resp, err := suite.service.Create(req)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrMarketingChannelNotFound)
}

func (suite *LeadServiceTestSuite) TestCreate_DefaultsForUnknownLabels() {
	req := &service.CreateLeadRequest{
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     "jane.doe@example.com",
		Status:    "Lukewarm",
		Source:    "Carrier Pigeon",
	}

	suite.mockRepo.EXPECT().
		GetByEmail("jane.doe@example.com").
		Return(nil, gorm.ErrRecordNotFound)
	suite.mockRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(lead *models.Lead) error {
			assert.Equal(suite.T(), models.LeadStatusNew, lead.Status)
			assert.Equal(suite.T(), models.LeadSourceOther, lead.Source)
			return nil
		})

	resp, err := suite.service.Create(req)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "New", resp.Status)
	assert.Equal(suite.T(), "Other", resp.Source)
}

func (suite *LeadServiceTestSuite) TestGetByID_NotFound() {
	id := uuid.New()

	suite.mockRepo.EXPECT().
		GetByID(id).
		Return(nil, gorm.ErrRecordNotFound)

	resp, err := suite.service.GetByID(id)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), resp)
	assert.True(suite.T(), apperrors.IsNotFound(err))
}

func (suite *LeadServiceTestSuite) TestGetAll_StatusFilter() {
	qualified := models.LeadStatusQualified

	suite.mockRepo.EXPECT().
		GetAll(&qualified, 20, 0).
		Return([]models.Lead{{FirstName: "Jane", Status: models.LeadStatusQualified}}, int64(1), nil)

	resp, err := suite.service.GetAll("Qualified", 1, 20)

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), resp.Leads, 1)
	assert.Equal(suite.T(), "Qualified", resp.Leads[0].Status)
}

func (suite *LeadServiceTestSuite) TestSearch_Paginates() {
	suite.mockRepo.EXPECT().
		Search("acme", 10, 10).
		Return([]models.Lead{}, int64(0), nil)

	resp, err := suite.service.Search("acme", 2, 10)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 2, resp.Page)
	assert.Equal(suite.T(), int64(0), resp.Total)
}

func (suite *LeadServiceTestSuite) TestUpdate_EmailChangeChecked() {
	id := uuid.New()
	newEmail := "New.Owner@Example.com"
	req := &service.UpdateLeadRequest{Email: &newEmail}

	suite.mockRepo.EXPECT().
		GetByID(id).
		Return(&models.Lead{FirstName: "Jane", Email: "jane.doe@example.com"}, nil)
	suite.mockRepo.EXPECT().
		GetByEmail("new.owner@example.com").
		Return(&models.Lead{Email: "new.owner@example.com"}, nil)

	resp, err := suite.service.Update(id, req)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), resp)
	assert.True(suite.T(), apperrors.IsAlreadyExists(err))
}

func (suite *LeadServiceTestSuite) TestUpdate_SameEmailSkipsCheck() {
	id := uuid.New()
	sameEmail := "Jane.Doe@Example.com"
	req := &service.UpdateLeadRequest{Email: &sameEmail}

	suite.mockRepo.EXPECT().
		GetByID(id).
		Return(&models.Lead{FirstName: "Jane", Email: "jane.doe@example.com"}, nil)
	suite.mockRepo.EXPECT().
		Update(gomock.Any()).
		Return(nil)

	resp, err := suite.service.Update(id, req)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "jane.doe@example.com", resp.Email)
}

func (suite *LeadServiceTestSuite) TestUpdate_StatusTransition() {
	id := uuid.New()
	status := "Converted"
	req := &service.UpdateLeadRequest{Status: &status}

	suite.mockRepo.EXPECT().
		GetByID(id).
		Return(&models.Lead{FirstName: "Jane", Email: "jane.doe@example.com", Status: models.LeadStatusQualified}, nil)
	suite.mockRepo.EXPECT().
		Update(gomock.Any()).
		DoAndReturn(func(lead *models.Lead) error {
			assert.Equal(suite.T(), models.LeadStatusConverted, lead.Status)
			return nil
		})

	resp, err := suite.service.Update(id, req)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Converted", resp.Status)
}

func (suite *LeadServiceTestSuite) TestDelete_NotFound() {
	id := uuid.New()

	suite.mockRepo.EXPECT().
		GetByID(id).
		Return(nil, gorm.ErrRecordNotFound)

	err := suite.service.Delete(id)

	assert.Error(suite.T(), err)
	assert.True(suite.T(), apperrors.IsNotFound(err))
}

func (suite *LeadServiceTestSuite) TestImport_SkipsExistingEmails() {
	leads := []service.ImportLeadInput{
		{FirstName: "Jane", LastName: "Doe", Email: "jane.doe@example.com"},
		{FirstName: "John", LastName: "Smith", Email: "John.Smith@Example.com"},
	}

	suite.mockRepo.EXPECT().
		GetByEmail("jane.doe@example.com").
		Return(&models.Lead{Email: "jane.doe@example.com"}, nil)
	suite.mockRepo.EXPECT().
		GetByEmail("john.smith@example.com").
		Return(nil, gorm.ErrRecordNotFound)
	suite.mockRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(lead *models.Lead) error {
			assert.Equal(suite.T(), "john.smith@example.com", lead.Email)
			assert.Equal(suite.T(), models.LeadStatusNew, lead.Status)
			assert.Equal(suite.T(), models.LeadSourceLinkedIn, lead.Source)
			return nil
		})

	result, err := suite.service.Import(leads, "LinkedIn")

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 1, result.Imported)
	assert.Equal(suite.T(), 1, result.Skipped)
	assert.Empty(suite.T(), result.Errors)
}

func (suite *LeadServiceTestSuite) TestImport_CollectsRowErrors() {
	leads := []service.ImportLeadInput{
		{FirstName: "Jane", LastName: "Doe", Email: "not-an-email"},
		{FirstName: "John", LastName: "Smith", Email: "john.smith@example.com"},
	}

	suite.mockRepo.EXPECT().
		GetByEmail("john.smith@example.com").
		Return(nil, gorm.ErrRecordNotFound)
	suite.mockRepo.EXPECT().
		Create(gomock.Any()).
		Return(nil)

	result, err := suite.service.Import(leads, "Website")

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 1, result.Imported)
	assert.Equal(suite.T(), 1, result.Skipped)
	if assert.Len(suite.T(), result.Errors, 1) {
		assert.Contains(suite.T(), result.Errors[0], "lead 0")
	}
}

func (suite *LeadServiceTestSuite) TestImport_RaceCountsAsSkipped() {
	leads := []service.ImportLeadInput{
		{FirstName: "Jane", LastName: "Doe", Email: "jane.doe@example.com"},
	}

	suite.mockRepo.EXPECT().
		GetByEmail("jane.doe@example.com").
		Return(nil, gorm.ErrRecordNotFound)
	suite.mockRepo.EXPECT().
		Create(gomock.Any()).
		Return(apperrors.NewAlreadyExistsError("lead", "with this email"))

	result, err := suite.service.Import(leads, "Referral")

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 0, result.Imported)
	assert.Equal(suite.T(), 1, result.Skipped)
	assert.Empty(suite.T(), result.Errors)
}

func (suite *LeadServiceTestSuite) TestGetAll_RepoError() {
	suite.mockRepo.EXPECT().
		GetAll(nil, 20, 0).
		Return(nil, int64(0), fmt.Errorf("connection reset"))

	resp, err := suite.service.GetAll("", 1, 20)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), resp)
	assert.Contains(suite.T(), err.Error(), "failed to get leads")
	assert.False(suite.T(), errors.Is(err, apperrors.ErrLeadNotFound))
}

func TestLeadServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LeadServiceTestSuite))
}
