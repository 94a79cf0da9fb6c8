//go:build integration
// +build integration

package repository

import (
	"testing"

	apperrors "crm-portal-backend/internal/errors"
	"crm-portal-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// SalesChannelRepositoryTestSuite tests the SalesChannelRepository
type SalesChannelRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *SalesChannelRepository
	factories     *testutils.FactorySet
}

func (suite *SalesChannelRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewSalesChannelRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

func (suite *SalesChannelRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

func (suite *SalesChannelRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

func (suite *SalesChannelRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *SalesChannelRepositoryTestSuite) TestCreateAndGetByCode() {
	channel := suite.factories.SalesChannel.WithCode("DIRE")

	err := suite.repo.Create(channel)
	suite.NoError(err)

	retrieved, err := suite.repo.GetByCode("DIRE")
	suite.NoError(err)
	suite.NotNil(retrieved)
	suite.Equal("DIRE", retrieved.Code)
	suite.Equal(channel.Name, retrieved.Name)
	suite.True(retrieved.IsActive)
	suite.False(retrieved.CreatedAt.IsZero())
}

func (suite *SalesChannelRepositoryTestSuite) TestCreateDuplicateCode() {
	suite.NoError(suite.repo.Create(suite.factories.SalesChannel.WithCode("DIRE")))

	err := suite.repo.Create(suite.factories.SalesChannel.WithCode("DIRE"))

	suite.Error(err)
	suite.True(apperrors.IsAlreadyExists(err))
	suite.ErrorIs(err, apperrors.ErrSalesChannelExists)
}

func (suite *SalesChannelRepositoryTestSuite) TestGetByCodeNotFound() {
	channel, err := suite.repo.GetByCode("NONE")

	suite.Error(err)
	suite.Equal(gorm.ErrRecordNotFound, err)
	suite.Nil(channel)
}

func (suite *SalesChannelRepositoryTestSuite) TestGetAllOrdersByCode() {
	suite.NoError(suite.repo.Create(suite.factories.SalesChannel.WithCode("WEBS")))
	suite.NoError(suite.repo.Create(suite.factories.SalesChannel.WithCode("DIRE")))
	suite.NoError(suite.repo.Create(suite.factories.SalesChannel.WithCode("PART")))

	channels, total, err := suite.repo.GetAll(10, 0)

	suite.NoError(err)
	suite.Equal(int64(3), total)
	suite.Len(channels, 3)
	suite.Equal("DIRE", channels[0].Code)
	suite.Equal("PART", channels[1].Code)
	suite.Equal("WEBS", channels[2].Code)
}

func (suite *SalesChannelRepositoryTestSuite) TestGetAllPagination() {
	suite.NoError(suite.repo.Create(suite.factories.SalesChannel.WithCode("AAAA")))
	suite.NoError(suite.repo.Create(suite.factories.SalesChannel.WithCode("BBBB")))
	suite.NoError(suite.repo.Create(suite.factories.SalesChannel.WithCode("CCCC")))

	channels, total, err := suite.repo.GetAll(2, 2)

	suite.NoError(err)
	suite.Equal(int64(3), total)
	suite.Len(channels, 1)
	suite.Equal("CCCC", channels[0].Code)
}

func (suite *SalesChannelRepositoryTestSuite) TestCodeExists() {
	suite.NoError(suite.repo.Create(suite.factories.SalesChannel.WithCode("DIRE")))

	exists, err := suite.repo.CodeExists("DIRE")
	suite.NoError(err)
	suite.True(exists)

	exists, err = suite.repo.CodeExists("NONE")
	suite.NoError(err)
	suite.False(exists)
}

func (suite *SalesChannelRepositoryTestSuite) TestUpdate() {
	channel := suite.factories.SalesChannel.WithCode("DIRE")
	suite.NoError(suite.repo.Create(channel))

	channel.Name = "Direct Sales EMEA"
	channel.IsActive = false
	suite.NoError(suite.repo.Update(channel))

	retrieved, err := suite.repo.GetByCode("DIRE")
	suite.NoError(err)
	suite.Equal("Direct Sales EMEA", retrieved.Name)
	suite.False(retrieved.IsActive)
}

func (suite *SalesChannelRepositoryTestSuite) TestDelete() {
	suite.NoError(suite.repo.Create(suite.factories.SalesChannel.WithCode("DIRE")))

	suite.NoError(suite.repo.Delete("DIRE"))

	_, err := suite.repo.GetByCode("DIRE")
	suite.Equal(gorm.ErrRecordNotFound, err)
}

func (suite *SalesChannelRepositoryTestSuite) TestDeletedCodeCanBeReused() {
	suite.NoError(suite.repo.Create(suite.factories.SalesChannel.WithCode("DIRE")))
	suite.NoError(suite.repo.Delete("DIRE"))

	err := suite.repo.Create(suite.factories.SalesChannel.WithCode("DIRE"))
	suite.NoError(err)
}

func TestSalesChannelRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(SalesChannelRepositoryTestSuite))
}
