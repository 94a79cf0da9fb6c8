package service_test

import (
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

type BusinessUnitServiceTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	mockRepo  *mocks.MockBusinessUnitRepositoryInterface
	service   *service.BusinessUnitService
	validator *validator.Validate
}

func (suite *BusinessUnitServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockBusinessUnitRepositoryInterface(suite.ctrl)
	suite.validator = validator.New()
	suite.service = service.NewBusinessUnitService(suite.mockRepo, suite.validator)
}

func (suite *BusinessUnitServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *BusinessUnitServiceTestSuite) TestCreate_Success() {
	req := &service.CreateBusinessUnitRequest{
		BusinessUnitCode: "emea",
		Name:             "EMEA Region",
		CostCenter:       "CC-100",
	}

	suite.mockRepo.EXPECT().CodeExists("EMEA").Return(false, nil)
	suite.mockRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(unit *models.BusinessUnit) error {
			assert.Equal(suite.T(), "EMEA", unit.Code)
			assert.Nil(suite.T(), unit.ParentCode)
			return nil
		})

	resp, err := suite.service.Create(req)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "EMEA", resp.BusinessUnitCode)
	assert.Equal(suite.T(), "CC-100", resp.CostCenter)
}

func (suite *BusinessUnitServiceTestSuite) TestCreate_WithParent() {
	parent := "corp"
	req := &service.CreateBusinessUnitRequest{
		BusinessUnitCode: "EMEA",
		Name:             "EMEA Region",
		ParentCode:       &parent,
	}

	suite.mockRepo.EXPECT().CodeExists("EMEA").Return(false, nil)
	suite.mockRepo.EXPECT().CodeExists("CORP").Return(true, nil)
	suite.mockRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(unit *models.BusinessUnit) error {
			if assert.NotNil(suite.T(), unit.ParentCode) {
				assert.Equal(suite.T(), "CORP", *unit.ParentCode)
			}
			return nil
		})

	resp, err := suite.service.Create(req)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "CORP", *resp.ParentCode)
}

func (suite *BusinessUnitServiceTestSuite) TestCreate_SelfParentRejected() {
	parent := "EMEA"
	req := &service.CreateBusinessUnitRequest{
		BusinessUnitCode: "EMEA",
		Name:             "EMEA Region",
		ParentCode:       &parent,
	}

	suite.mockRepo.EXPECT().CodeExists("EMEA").Return(false, nil)

	resp, err := suite.service.Create(req)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrParentBusinessUnitCycle)
}

func (suite *BusinessUnitServiceTestSuite) TestCreate_UnknownParent() {
	parent := "NONE"
	req := &service.CreateBusinessUnitRequest{
		BusinessUnitCode: "EMEA",
		Name:             "EMEA Region",
		ParentCode:       &parent,
	}

	suite.mockRepo.EXPECT().CodeExists("EMEA").Return(false, nil)
	suite.mockRepo.EXPECT().CodeExists("NONE").Return(false, nil)

	resp, err := suite.service.Create(req)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrBusinessUnitNotFound)
}

func (suite *BusinessUnitServiceTestSuite) TestCreate_DuplicateCode() {
	req := &service.CreateBusinessUnitRequest{
		BusinessUnitCode: "EMEA",
		Name:             "EMEA Region",
	}

	suite.mockRepo.EXPECT().CodeExists("EMEA").Return(true, nil)

	resp, err := suite.service.Create(req)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), resp)
	assert.True(suite.T(), apperrors.IsAlreadyExists(err))
}

func (suite *BusinessUnitServiceTestSuite) TestCreate_InvalidCodeLength() {
	req := &service.CreateBusinessUnitRequest{
		BusinessUnitCode: "EMEA1",
		Name:             "EMEA Region",
	}

	resp, err := suite.service.Create(req)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), resp)
	var fieldErrs *service.FieldErrors
	if assert.ErrorAs(suite.T(), err, &fieldErrs) {
		assert.Equal(suite.T(), "businessUnitCode", fieldErrs.Fields[0].Field)
	}
}

func (suite *BusinessUnitServiceTestSuite) TestGetChildren_Success() {
	parentCode := "CORP"
	suite.mockRepo.EXPECT().
		GetByCode("CORP").
		Return(&models.BusinessUnit{Code: "CORP", Name: "Corporate"}, nil)
	suite.mockRepo.EXPECT().
		GetChildren("CORP").
		Return([]models.BusinessUnit{
			{Code: "EMEA", Name: "EMEA Region", ParentCode: &parentCode},
			{Code: "AMER", Name: "Americas Region", ParentCode: &parentCode},
		}, nil)

	children, err := suite.service.GetChildren("corp")

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), children, 2)
	assert.Equal(suite.T(), "EMEA", children[0].BusinessUnitCode)
}

func (suite *BusinessUnitServiceTestSuite) TestGetChildren_ParentNotFound() {
	suite.mockRepo.EXPECT().
		GetByCode("NONE").
		Return(nil, gorm.ErrRecordNotFound)

	children, err := suite.service.GetChildren("NONE")

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), children)
	assert.True(suite.T(), apperrors.IsNotFound(err))
}

func (suite *BusinessUnitServiceTestSuite) TestUpdate_ReparentToSelfRejected() {
	parent := "emea"
	req := &service.UpdateBusinessUnitRequest{ParentCode: &parent}

	suite.mockRepo.EXPECT().
		GetByCode("EMEA").
		Return(&models.BusinessUnit{Code: "EMEA", Name: "EMEA Region"}, nil)

	resp, err := suite.service.Update("EMEA", req)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrParentBusinessUnitCycle)
}

func (suite *BusinessUnitServiceTestSuite) TestUpdate_ImmutableCode() {
	other := "AMER"
	req := &service.UpdateBusinessUnitRequest{BusinessUnitCode: &other}

	suite.mockRepo.EXPECT().
		GetByCode("EMEA").
		Return(&models.BusinessUnit{Code: "EMEA", Name: "EMEA Region"}, nil)

	resp, err := suite.service.Update("EMEA", req)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrImmutableCode)
}

func (suite *BusinessUnitServiceTestSuite) TestDelete_NotFound() {
	suite.mockRepo.EXPECT().
		GetByCode("NONE").
		Return(nil, gorm.ErrRecordNotFound)

	err := suite.service.Delete("none")

	assert.Error(suite.T(), err)
	assert.True(suite.T(), apperrors.IsNotFound(err))
}

func TestBusinessUnitServiceTestSuite(t *testing.T) {
	suite.Run(t, new(BusinessUnitServiceTestSuite))
}
