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

// TemplateRepositoryTestSuite tests the TemplateRepository
type TemplateRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *TemplateRepository
	factories     *testutils.FactorySet
}

func (suite *TemplateRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewTemplateRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

func (suite *TemplateRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

func (suite *TemplateRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

func (suite *TemplateRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *TemplateRepositoryTestSuite) createTemplate() *models.Template {
	template := suite.factories.Template.Create()
	suite.NoError(suite.repo.Create(template))
	return template
}

func (suite *TemplateRepositoryTestSuite) TestCreateDuplicateName() {
	template := suite.createTemplate()

	err := suite.repo.Create(suite.factories.Template.WithName(template.Name))

	suite.Error(err)
	suite.ErrorIs(err, apperrors.ErrTemplateExists)
}

func (suite *TemplateRepositoryTestSuite) TestGetByName() {
	template := suite.createTemplate()

	retrieved, err := suite.repo.GetByName(template.Name)

	suite.NoError(err)
	suite.Equal(template.ID, retrieved.ID)
	suite.Equal(models.TemplateFormatTextBased, retrieved.Format)
}

func (suite *TemplateRepositoryTestSuite) TestGetAllFormatFilter() {
	suite.createTemplate()
	fileBased := suite.factories.Template.WithFormat(models.TemplateFormatFileBased)
	suite.NoError(suite.repo.Create(fileBased))

	format := models.TemplateFormatFileBased
	templates, total, err := suite.repo.GetAll(&format, 10, 0)

	suite.NoError(err)
	suite.Equal(int64(1), total)
	suite.Len(templates, 1)
	suite.Equal(fileBased.ID, templates[0].ID)
}

func (suite *TemplateRepositoryTestSuite) TestAddAttachmentAndGetByChecksum() {
	template := suite.createTemplate()
	attachment := suite.factories.Template.AttachmentFor(template.ID, "brochure.pdf", []byte("%PDF-1.4 content"))

	suite.NoError(suite.repo.AddAttachment(attachment))

	retrieved, err := suite.repo.GetAttachmentByChecksum(template.ID, attachment.Checksum)
	suite.NoError(err)
	suite.Equal(attachment.ID, retrieved.ID)
	suite.Equal("brochure.pdf", retrieved.FileName)
	suite.Equal(int64(len("%PDF-1.4 content")), retrieved.SizeBytes)
}

func (suite *TemplateRepositoryTestSuite) TestAddAttachmentDuplicateContent() {
	template := suite.createTemplate()
	content := []byte("identical bytes")
	suite.NoError(suite.repo.AddAttachment(suite.factories.Template.AttachmentFor(template.ID, "first.bin", content)))

	// same content under a different name violates the (template_id, checksum) index
	err := suite.repo.AddAttachment(suite.factories.Template.AttachmentFor(template.ID, "second.bin", content))

	suite.Error(err)
	suite.True(apperrors.IsAlreadyExists(err))
}

func (suite *TemplateRepositoryTestSuite) TestSameContentAllowedAcrossTemplates() {
	first := suite.createTemplate()
	second := suite.createTemplate()
	content := []byte("shared bytes")

	suite.NoError(suite.repo.AddAttachment(suite.factories.Template.AttachmentFor(first.ID, "a.bin", content)))
	suite.NoError(suite.repo.AddAttachment(suite.factories.Template.AttachmentFor(second.ID, "a.bin", content)))
}

func (suite *TemplateRepositoryTestSuite) TestListAttachmentsOmitsContent() {
	template := suite.createTemplate()
	suite.NoError(suite.repo.AddAttachment(suite.factories.Template.AttachmentFor(template.ID, "a.bin", []byte("aaa"))))
	suite.NoError(suite.repo.AddAttachment(suite.factories.Template.AttachmentFor(template.ID, "b.bin", []byte("bbb"))))

	attachments, err := suite.repo.ListAttachments(template.ID)

	suite.NoError(err)
	suite.Len(attachments, 2)
	for _, a := range attachments {
		suite.Empty(a.Content)
		suite.NotEmpty(a.Checksum)
		suite.NotZero(a.SizeBytes)
	}
}

func (suite *TemplateRepositoryTestSuite) TestGetAttachmentByIDIncludesContent() {
	template := suite.createTemplate()
	attachment := suite.factories.Template.AttachmentFor(template.ID, "a.bin", []byte("payload"))
	suite.NoError(suite.repo.AddAttachment(attachment))

	retrieved, err := suite.repo.GetAttachmentByID(attachment.ID)

	suite.NoError(err)
	suite.Equal([]byte("payload"), retrieved.Content)
}

func (suite *TemplateRepositoryTestSuite) TestDeleteAttachment() {
	template := suite.createTemplate()
	attachment := suite.factories.Template.AttachmentFor(template.ID, "a.bin", []byte("payload"))
	suite.NoError(suite.repo.AddAttachment(attachment))

	suite.NoError(suite.repo.DeleteAttachment(attachment.ID))

	_, err := suite.repo.GetAttachmentByID(attachment.ID)
	suite.Equal(gorm.ErrRecordNotFound, err)
}

func (suite *TemplateRepositoryTestSuite) TestGetAttachmentByChecksumNotFound() {
	template := suite.createTemplate()

	_, err := suite.repo.GetAttachmentByChecksum(template.ID, "deadbeef")

	suite.Equal(gorm.ErrRecordNotFound, err)
}

func TestTemplateRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(TemplateRepositoryTestSuite))
}
