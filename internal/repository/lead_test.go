//go:build integration
// +build integration

package repository

import (
	"testing"

	"crm-portal-backend/internal/database/models"
	apperrors "crm-portal-backend/internal/errors"
	"crm-portal-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// LeadRepositoryTestSuite tests the LeadRepository
type LeadRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *LeadRepository
	factories     *testutils.FactorySet
}

func (suite *LeadRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewLeadRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

func (suite *LeadRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

func (suite *LeadRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

func (suite *LeadRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *LeadRepositoryTestSuite) TestCreateAndGetByEmail() {
	lead := suite.factories.Lead.WithEmail("jane.doe@example.com")

	suite.NoError(suite.repo.Create(lead))

	retrieved, err := suite.repo.GetByEmail("jane.doe@example.com")
	suite.NoError(err)
	suite.Equal(lead.ID, retrieved.ID)
	suite.Equal(models.LeadStatusNew, retrieved.Status)
}

func (suite *LeadRepositoryTestSuite) TestCreateDuplicateEmail() {
	suite.NoError(suite.repo.Create(suite.factories.Lead.WithEmail("jane.doe@example.com")))

	err := suite.repo.Create(suite.factories.Lead.WithEmail("jane.doe@example.com"))

	suite.Error(err)
	suite.ErrorIs(err, apperrors.ErrLeadExists)
}

func (suite *LeadRepositoryTestSuite) TestGetAllStatusFilter() {
	suite.NoError(suite.repo.Create(suite.factories.Lead.WithStatus(models.LeadStatusNew)))
	qualified := suite.factories.Lead.WithStatus(models.LeadStatusQualified)
	suite.NoError(suite.repo.Create(qualified))

	status := models.LeadStatusQualified
	leads, total, err := suite.repo.GetAll(&status, 10, 0)

	suite.NoError(err)
	suite.Equal(int64(1), total)
	suite.Len(leads, 1)
	suite.Equal(qualified.ID, leads[0].ID)
}

func (suite *LeadRepositoryTestSuite) TestSearchMatchesNameEmailCompany() {
	match := suite.factories.Lead.WithEmail("ada.lovelace@acme.com")
	match.Company = "Acme GmbH"
	suite.NoError(suite.repo.Create(match))
	suite.NoError(suite.repo.Create(suite.factories.Lead.WithEmail("other@elsewhere.com")))

	// case-insensitive match against the company column
	leads, total, err := suite.repo.Search("acme", 10, 0)

	suite.NoError(err)
	suite.Equal(int64(1), total)
	suite.Len(leads, 1)
	suite.Equal(match.ID, leads[0].ID)
}

func (suite *LeadRepositoryTestSuite) TestSearchNoMatches() {
	suite.NoError(suite.repo.Create(suite.factories.Lead.Create()))

	leads, total, err := suite.repo.Search("nonexistent", 10, 0)

	suite.NoError(err)
	suite.Equal(int64(0), total)
	suite.Empty(leads)
}

func (suite *LeadRepositoryTestSuite) TestUpdateDuplicateEmail() {
	suite.NoError(suite.repo.Create(suite.factories.Lead.WithEmail("taken@example.com")))
	lead := suite.factories.Lead.WithEmail("free@example.com")
	suite.NoError(suite.repo.Create(lead))

	lead.Email = "taken@example.com"
	err := suite.repo.Update(lead)

	suite.Error(err)
	suite.True(apperrors.IsAlreadyExists(err))
}

func (suite *LeadRepositoryTestSuite) TestDelete() {
	lead := suite.factories.Lead.Create()
	suite.NoError(suite.repo.Create(lead))

	suite.NoError(suite.repo.Delete(lead.ID))

	_, err := suite.repo.GetByID(lead.ID)
	suite.Equal(gorm.ErrRecordNotFound, err)
}

func TestLeadRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(LeadRepositoryTestSuite))
}
