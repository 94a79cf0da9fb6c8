package service_test

import (
	"errors"
	"testing"

	"crm-portal-backend/internal/database/models"
	apperrors "crm-portal-backend/internal/errors"
	"crm-portal-backend/internal/mocks"
	"crm-portal-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type SalesChannelServiceTestSuite struct {
	suite.Suite
	ctrl                *gomock.Controller
	mockChannelRepo     *mocks.MockSalesChannelRepositoryInterface
	salesChannelService *service.SalesChannelService
	validator           *validator.Validate
}

func (suite *SalesChannelServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockChannelRepo = mocks.NewMockSalesChannelRepositoryInterface(suite.ctrl)
	suite.validator = validator.New()
	suite.salesChannelService = service.NewSalesChannelService(suite.mockChannelRepo, suite.validator)
}

func (suite *SalesChannelServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *SalesChannelServiceTestSuite) TestCreate_Success() {
	req := &service.CreateSalesChannelRequest{
		SalesChannelCode: "ab12",
		Name:             "Direct Sales",
		Description:      "Direct outbound sales",
	}

	suite.mockChannelRepo.EXPECT().CodeExists("AB12").Return(false, nil)
	suite.mockChannelRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(channel *models.SalesChannel) error {
		assert.Equal(suite.T(), "AB12", channel.Code)
		assert.Equal(suite.T(), "Direct Sales", channel.Name)
		assert.True(suite.T(), channel.IsActive)
		return nil
	})

	resp, err := suite.salesChannelService.Create(req)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), resp)
	assert.Equal(suite.T(), "AB12", resp.SalesChannelCode)
	assert.Equal(suite.T(), "Direct Sales", resp.Name)
	assert.True(suite.T(), resp.IsActive)
}

func (suite *SalesChannelServiceTestSuite) TestCreate_MissingName() {
	req := &service.CreateSalesChannelRequest{
		SalesChannelCode: "AB12",
	}

	resp, err := suite.salesChannelService.Create(req)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), resp)

	var fieldErrs *service.FieldErrors
	assert.True(suite.T(), errors.As(err, &fieldErrs))
	assert.Len(suite.T(), fieldErrs.Fields, 1)
	assert.Equal(suite.T(), "name", fieldErrs.Fields[0].Field)
	assert.Equal(suite.T(), "is required", fieldErrs.Fields[0].Message)
}

func (suite *SalesChannelServiceTestSuite) TestCreate_InvalidCodeLength() {
	req := &service.CreateSalesChannelRequest{
		SalesChannelCode: "AB123",
		Name:             "Direct Sales",
	}

	resp, err := suite.salesChannelService.Create(req)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), resp)

	var fieldErrs *service.FieldErrors
	assert.True(suite.T(), errors.As(err, &fieldErrs))
	assert.Equal(suite.T(), "salesChannelCode", fieldErrs.Fields[0].Field)
}

func (suite *SalesChannelServiceTestSuite) TestCreate_DuplicateCode() {
	req := &service.CreateSalesChannelRequest{
		SalesChannelCode: "AB12",
		Name:             "Direct Sales",
	}

	// Create must not be attempted when the pre-check reports a duplicate
	suite.mockChannelRepo.EXPECT().CodeExists("AB12").Return(true, nil)

	resp, err := suite.salesChannelService.Create(req)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), resp)
	assert.True(suite.T(), apperrors.IsAlreadyExists(err))
}

func (suite *SalesChannelServiceTestSuite) TestCreate_DuplicateRace() {
	// The unique constraint stays authoritative when two creates race past the pre-check
	req := &service.CreateSalesChannelRequest{
		SalesChannelCode: "AB12",
		Name:             "Direct Sales",
	}

	suite.mockChannelRepo.EXPECT().CodeExists("AB12").Return(false, nil)
	suite.mockChannelRepo.EXPECT().Create(gomock.Any()).Return(apperrors.ErrSalesChannelExists)

	resp, err := suite.salesChannelService.Create(req)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), resp)
	assert.True(suite.T(), apperrors.IsAlreadyExists(err))
}

func (suite *SalesChannelServiceTestSuite) TestGetByCode_Success() {
	channel := &models.SalesChannel{
		Code:     "AB12",
		Name:     "Direct Sales",
		IsActive: true,
	}
	suite.mockChannelRepo.EXPECT().GetByCode("AB12").Return(channel, nil)

	resp, err := suite.salesChannelService.GetByCode("ab12")

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "AB12", resp.SalesChannelCode)
}

func (suite *SalesChannelServiceTestSuite) TestGetByCode_NotFound() {
	suite.mockChannelRepo.EXPECT().GetByCode("ZZ99").Return(nil, gorm.ErrRecordNotFound)

	resp, err := suite.salesChannelService.GetByCode("ZZ99")

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), resp)
	assert.True(suite.T(), apperrors.IsNotFound(err))
}

func (suite *SalesChannelServiceTestSuite) TestGetAll_DefaultPagination() {
	channels := []models.SalesChannel{
		{Code: "AB12", Name: "Direct Sales", IsActive: true},
		{Code: "CD34", Name: "Partner Network", IsActive: true},
	}
	suite.mockChannelRepo.EXPECT().GetAll(20, 0).Return(channels, int64(2), nil)

	resp, err := suite.salesChannelService.GetAll(0, 0)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(2), resp.Total)
	assert.Equal(suite.T(), 1, resp.Page)
	assert.Equal(suite.T(), 20, resp.PageSize)
	assert.Len(suite.T(), resp.SalesChannels, 2)
	assert.Equal(suite.T(), "AB12", resp.SalesChannels[0].SalesChannelCode)
}

func (suite *SalesChannelServiceTestSuite) TestGetAll_CustomPagination() {
	suite.mockChannelRepo.EXPECT().GetAll(10, 10).Return([]models.SalesChannel{}, int64(11), nil)

	resp, err := suite.salesChannelService.GetAll(2, 10)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 2, resp.Page)
	assert.Equal(suite.T(), 10, resp.PageSize)
	assert.Equal(suite.T(), int64(11), resp.Total)
}

func (suite *SalesChannelServiceTestSuite) TestUpdate_Success() {
	channel := &models.SalesChannel{
		Code:     "AB12",
		Name:     "Direct Sales",
		IsActive: true,
	}
	newName := "Direct Sales EMEA"
	inactive := false

	suite.mockChannelRepo.EXPECT().GetByCode("AB12").Return(channel, nil)
	suite.mockChannelRepo.EXPECT().Update(gomock.Any()).DoAndReturn(func(updated *models.SalesChannel) error {
		assert.Equal(suite.T(), "Direct Sales EMEA", updated.Name)
		assert.False(suite.T(), updated.IsActive)
		return nil
	})

	resp, err := suite.salesChannelService.Update("AB12", &service.UpdateSalesChannelRequest{
		Name:     &newName,
		IsActive: &inactive,
	})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Direct Sales EMEA", resp.Name)
	assert.False(suite.T(), resp.IsActive)
}

func (suite *SalesChannelServiceTestSuite) TestUpdate_ImmutableCode() {
	channel := &models.SalesChannel{Code: "AB12", Name: "Direct Sales"}
	otherCode := "CD34"

	suite.mockChannelRepo.EXPECT().GetByCode("AB12").Return(channel, nil)

	resp, err := suite.salesChannelService.Update("AB12", &service.UpdateSalesChannelRequest{
		SalesChannelCode: &otherCode,
	})

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrImmutableCode)
}

func (suite *SalesChannelServiceTestSuite) TestUpdate_SameCodeAllowed() {
	// Echoing the current code back is not a code change
	channel := &models.SalesChannel{Code: "AB12", Name: "Direct Sales"}
	sameCode := "ab12"

	suite.mockChannelRepo.EXPECT().GetByCode("AB12").Return(channel, nil)
	suite.mockChannelRepo.EXPECT().Update(gomock.Any()).Return(nil)

	resp, err := suite.salesChannelService.Update("AB12", &service.UpdateSalesChannelRequest{
		SalesChannelCode: &sameCode,
	})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "AB12", resp.SalesChannelCode)
}

func (suite *SalesChannelServiceTestSuite) TestUpdate_NotFound() {
	suite.mockChannelRepo.EXPECT().GetByCode("ZZ99").Return(nil, gorm.ErrRecordNotFound)

	resp, err := suite.salesChannelService.Update("ZZ99", &service.UpdateSalesChannelRequest{})

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), resp)
	assert.True(suite.T(), apperrors.IsNotFound(err))
}

func (suite *SalesChannelServiceTestSuite) TestDelete_Success() {
	channel := &models.SalesChannel{Code: "AB12", Name: "Direct Sales"}
	suite.mockChannelRepo.EXPECT().GetByCode("AB12").Return(channel, nil)
	suite.mockChannelRepo.EXPECT().Delete("AB12").Return(nil)

	err := suite.salesChannelService.Delete("ab12")

	assert.NoError(suite.T(), err)
}

func (suite *SalesChannelServiceTestSuite) TestDelete_NotFound() {
	suite.mockChannelRepo.EXPECT().GetByCode("ZZ99").Return(nil, gorm.ErrRecordNotFound)

	err := suite.salesChannelService.Delete("ZZ99")

	assert.Error(suite.T(), err)
	assert.True(suite.T(), apperrors.IsNotFound(err))
}

func (suite *SalesChannelServiceTestSuite) TestGetAll_RepoError() {
	suite.mockChannelRepo.EXPECT().GetAll(20, 0).Return(nil, int64(0), errors.New("db failed"))

	resp, err := suite.salesChannelService.GetAll(1, 20)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), resp)
	assert.Contains(suite.T(), err.Error(), "failed to get sales channels")
}

func TestSalesChannelServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SalesChannelServiceTestSuite))
}
