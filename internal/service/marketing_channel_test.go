package service_test

import (
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

type MarketingChannelServiceTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	mockRepo  *mocks.MockMarketingChannelRepositoryInterface
	service   *service.MarketingChannelService
	validator *validator.Validate
}

func (suite *MarketingChannelServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockMarketingChannelRepositoryInterface(suite.ctrl)
	suite.validator = validator.New()
	suite.service = service.NewMarketingChannelService(suite.mockRepo, suite.validator)
}

func (suite *MarketingChannelServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *MarketingChannelServiceTestSuite) TestCreate_Success() {
	req := &service.CreateMarketingChannelRequest{
		Name:        "LinkedIn Campaigns",
		Medium:      "Social Media",
		CostPerLead: 4.5,
	}

	suite.mockRepo.EXPECT().
		GetByName("LinkedIn Campaigns").
		Return(nil, gorm.ErrRecordNotFound)
	suite.mockRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(channel *models.MarketingChannel) error {
			assert.Equal(suite.T(), models.ChannelMediumSocial, channel.Medium)
			assert.True(suite.T(), channel.IsActive)
			return nil
		})

	resp, err := suite.service.Create(req)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Social Media", resp.Medium)
	assert.Equal(suite.T(), 4.5, resp.CostPerLead)
}

func (suite *MarketingChannelServiceTestSuite) TestCreate_UnknownMediumFallsBack() {
	req := &service.CreateMarketingChannelRequest{
		Name:   "Skywriting",
		Medium: "Airplane",
	}

	suite.mockRepo.EXPECT().
		GetByName("Skywriting").
		Return(nil, gorm.ErrRecordNotFound)
	suite.mockRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(channel *models.MarketingChannel) error {
			assert.Equal(suite.T(), models.DefaultChannelMedium, channel.Medium)
			return nil
		})

	resp, err := suite.service.Create(req)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Email", resp.Medium)
}

func (suite *MarketingChannelServiceTestSuite) TestCreate_DuplicateName() {
	req := &service.CreateMarketingChannelRequest{Name: "LinkedIn Campaigns"}

	suite.mockRepo.EXPECT().
		GetByName("LinkedIn Campaigns").
		Return(&models.MarketingChannel{Name: "LinkedIn Campaigns"}, nil)

	resp, err := suite.service.Create(req)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), resp)
	assert.True(suite.T(), apperrors.IsAlreadyExists(err))
}

func (suite *MarketingChannelServiceTestSuite) TestCreate_NegativeCostPerLead() {
	req := &service.CreateMarketingChannelRequest{
		Name:        "LinkedIn Campaigns",
		CostPerLead: -1,
	}

	resp, err := suite.service.Create(req)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), resp)
	var fieldErrs *service.FieldErrors
	if assert.ErrorAs(suite.T(), err, &fieldErrs) {
		assert.Equal(suite.T(), "costPerLead", fieldErrs.Fields[0].Field)
	}
}

func (suite *MarketingChannelServiceTestSuite) TestGetAll_MediumFilter() {
	email := models.ChannelMediumEmail

	suite.mockRepo.EXPECT().
		GetAll(&email, 20, 0).
		Return([]models.MarketingChannel{
			{Name: "Monthly Newsletter", Medium: models.ChannelMediumEmail},
		}, int64(1), nil)

	resp, err := suite.service.GetAll("Email", 1, 20)

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), resp.MarketingChannels, 1)
	assert.Equal(suite.T(), "Email", resp.MarketingChannels[0].Medium)
}

func (suite *MarketingChannelServiceTestSuite) TestUpdate_NotFound() {
	id := uuid.New()
	name := "Renamed"

	suite.mockRepo.EXPECT().
		GetByID(id).
		Return(nil, gorm.ErrRecordNotFound)

	resp, err := suite.service.Update(id, &service.UpdateMarketingChannelRequest{Name: &name})

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), resp)
	assert.True(suite.T(), apperrors.IsNotFound(err))
}

func (suite *MarketingChannelServiceTestSuite) TestUpdate_RenameCollision() {
	id := uuid.New()
	name := "Taken"

	suite.mockRepo.EXPECT().
		GetByID(id).
		Return(&models.MarketingChannel{Name: "Original", Medium: models.ChannelMediumEmail}, nil)
	suite.mockRepo.EXPECT().
		Update(gomock.Any()).
		Return(apperrors.ErrMarketingChannelExists)

	resp, err := suite.service.Update(id, &service.UpdateMarketingChannelRequest{Name: &name})

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), resp)
	assert.True(suite.T(), apperrors.IsAlreadyExists(err))
}

func (suite *MarketingChannelServiceTestSuite) TestDelete_Success() {
	id := uuid.New()

	suite.mockRepo.EXPECT().
		GetByID(id).
		Return(&models.MarketingChannel{Name: "Monthly Newsletter"}, nil)
	suite.mockRepo.EXPECT().Delete(id).Return(nil)

	err := suite.service.Delete(id)

	assert.NoError(suite.T(), err)
}

func TestMarketingChannelServiceTestSuite(t *testing.T) {
	suite.Run(t, new(MarketingChannelServiceTestSuite))
}
