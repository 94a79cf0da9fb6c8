package service_test

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
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

const testMaxAttachmentBytes = 1024

type TemplateServiceTestSuite struct {
	suite.Suite
	ctrl             *gomock.Controller
	mockTemplateRepo *mocks.MockTemplateRepositoryInterface
	templateService  *service.TemplateService
	validator        *validator.Validate
}

func (suite *TemplateServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockTemplateRepo = mocks.NewMockTemplateRepositoryInterface(suite.ctrl)
	suite.validator = validator.New()
	suite.templateService = service.NewTemplateService(suite.mockTemplateRepo, suite.validator, testMaxAttachmentBytes)
}

func (suite *TemplateServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *TemplateServiceTestSuite) TestCreate_Success() {
	req := &service.CreateTemplateRequest{
		Name:    "welcome-email",
		Format:  "HTML",
		Subject: "Welcome!",
		Body:    "<p>Hello</p>",
	}

	suite.mockTemplateRepo.EXPECT().GetByName("welcome-email").Return(nil, gorm.ErrRecordNotFound)
	suite.mockTemplateRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(template *models.Template) error {
		assert.Equal(suite.T(), models.TemplateFormatHTML, template.Format)
		assert.Equal(suite.T(), "en", template.Language)
		assert.True(suite.T(), template.IsActive)
		template.ID = uuid.New()
		return nil
	})

	resp, err := suite.templateService.Create(req)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "HTML", resp.Format)
	assert.Equal(suite.T(), "welcome-email", resp.Name)
}

func (suite *TemplateServiceTestSuite) TestCreate_UnknownFormatFallsBack() {
	req := &service.CreateTemplateRequest{
		Name: "plain-note",
		// unrecognized label resolves to the Text Based default
		Format: "Carrier Pigeon",
		Body:   "hello",
	}

	suite.mockTemplateRepo.EXPECT().GetByName("plain-note").Return(nil, gorm.ErrRecordNotFound)
	suite.mockTemplateRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(template *models.Template) error {
		assert.Equal(suite.T(), models.TemplateFormatTextBased, template.Format)
		return nil
	})

	resp, err := suite.templateService.Create(req)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Text Based", resp.Format)
}

func (suite *TemplateServiceTestSuite) TestCreate_FileBasedRejectsBody() {
	req := &service.CreateTemplateRequest{
		Name:   "brochure",
		Format: "File Based",
		Body:   "inline content not allowed",
	}

	resp, err := suite.templateService.Create(req)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrBodyForbiddenForFormat)
}

func (suite *TemplateServiceTestSuite) TestCreate_InlineFormatRequiresBody() {
	req := &service.CreateTemplateRequest{
		Name:   "empty-note",
		Format: "Text Based",
	}

	resp, err := suite.templateService.Create(req)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrBodyRequiredForFormat)
}

func (suite *TemplateServiceTestSuite) TestCreate_DuplicateName() {
	req := &service.CreateTemplateRequest{
		Name: "welcome-email",
		Body: "hello",
	}

	existing := &models.Template{Name: "welcome-email"}
	suite.mockTemplateRepo.EXPECT().GetByName("welcome-email").Return(existing, nil)

	resp, err := suite.templateService.Create(req)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), resp)
	assert.True(suite.T(), apperrors.IsAlreadyExists(err))
}

func (suite *TemplateServiceTestSuite) TestGetByID_NotFound() {
	id := uuid.New()
	suite.mockTemplateRepo.EXPECT().GetByID(id).Return(nil, gorm.ErrRecordNotFound)

	resp, err := suite.templateService.GetByID(id)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), resp)
	assert.True(suite.T(), apperrors.IsNotFound(err))
}

func (suite *TemplateServiceTestSuite) TestGetAll_FormatFilter() {
	html := models.TemplateFormatHTML
	templates := []models.Template{
		{Name: "welcome-email", Format: models.TemplateFormatHTML, Body: "<p>Hi</p>"},
	}
	suite.mockTemplateRepo.EXPECT().GetAll(&html, 20, 0).Return(templates, int64(1), nil)

	resp, err := suite.templateService.GetAll("HTML", 1, 20)

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), resp.Templates, 1)
	assert.Equal(suite.T(), "HTML", resp.Templates[0].Format)
}

func (suite *TemplateServiceTestSuite) TestUpdate_FormatBodyCrossCheck() {
	// Switching an inline template to File Based without clearing the body fails
	id := uuid.New()
	template := &models.Template{
		BaseModel: models.BaseModel{ID: id},
		Name:      "welcome-email",
		Format:    models.TemplateFormatTextBased,
		Body:      "hello",
	}
	fileBased := "File Based"

	suite.mockTemplateRepo.EXPECT().GetByID(id).Return(template, nil)

	resp, err := suite.templateService.Update(id, &service.UpdateTemplateRequest{Format: &fileBased})

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrBodyForbiddenForFormat)
}

func (suite *TemplateServiceTestSuite) TestUpdate_FormatSwitchWithClearedBody() {
	id := uuid.New()
	template := &models.Template{
		BaseModel: models.BaseModel{ID: id},
		Name:      "brochure",
		Format:    models.TemplateFormatTextBased,
		Body:      "hello",
	}
	fileBased := "File Based"
	empty := ""

	suite.mockTemplateRepo.EXPECT().GetByID(id).Return(template, nil)
	suite.mockTemplateRepo.EXPECT().Update(gomock.Any()).DoAndReturn(func(updated *models.Template) error {
		assert.Equal(suite.T(), models.TemplateFormatFileBased, updated.Format)
		assert.Empty(suite.T(), updated.Body)
		return nil
	})

	resp, err := suite.templateService.Update(id, &service.UpdateTemplateRequest{
		Format: &fileBased,
		Body:   &empty,
	})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "File Based", resp.Format)
}

func (suite *TemplateServiceTestSuite) TestUploadAttachment_New() {
	templateID := uuid.New()
	content := []byte("attachment bytes")
	sum := sha256.Sum256(content)
	checksum := hex.EncodeToString(sum[:])

	suite.mockTemplateRepo.EXPECT().GetByID(templateID).Return(&models.Template{}, nil)
	suite.mockTemplateRepo.EXPECT().GetAttachmentByChecksum(templateID, checksum).Return(nil, gorm.ErrRecordNotFound)
	suite.mockTemplateRepo.EXPECT().AddAttachment(gomock.Any()).DoAndReturn(func(attachment *models.TemplateAttachment) error {
		assert.Equal(suite.T(), checksum, attachment.Checksum)
		assert.Equal(suite.T(), int64(len(content)), attachment.SizeBytes)
		attachment.ID = uuid.New()
		return nil
	})

	resp, reused, err := suite.templateService.UploadAttachment(templateID, &service.AttachmentUpload{
		FileName:    "brochure.pdf",
		ContentType: "application/pdf",
		Content:     content,
	})

	assert.NoError(suite.T(), err)
	assert.False(suite.T(), reused)
	assert.Equal(suite.T(), checksum, resp.Checksum)
	assert.Equal(suite.T(), "brochure.pdf", resp.FileName)
}

func (suite *TemplateServiceTestSuite) TestUploadAttachment_IdenticalContentReused() {
	templateID := uuid.New()
	content := []byte("attachment bytes")
	sum := sha256.Sum256(content)
	checksum := hex.EncodeToString(sum[:])

	existing := &models.TemplateAttachment{
		BaseModel:  models.BaseModel{ID: uuid.New()},
		TemplateID: templateID,
		FileName:   "brochure.pdf",
		SizeBytes:  int64(len(content)),
		Checksum:   checksum,
	}

	suite.mockTemplateRepo.EXPECT().GetByID(templateID).Return(&models.Template{}, nil)
	suite.mockTemplateRepo.EXPECT().GetAttachmentByChecksum(templateID, checksum).Return(existing, nil)

	resp, reused, err := suite.templateService.UploadAttachment(templateID, &service.AttachmentUpload{
		FileName: "renamed-but-same-bytes.pdf",
		Content:  content,
	})

	assert.NoError(suite.T(), err)
	assert.True(suite.T(), reused)
	assert.Equal(suite.T(), existing.ID, resp.ID)
	assert.Equal(suite.T(), "brochure.pdf", resp.FileName)
}

func (suite *TemplateServiceTestSuite) TestUploadAttachment_RaceResolvesToWinner() {
	templateID := uuid.New()
	content := []byte("attachment bytes")
	sum := sha256.Sum256(content)
	checksum := hex.EncodeToString(sum[:])

	winner := &models.TemplateAttachment{
		BaseModel:  models.BaseModel{ID: uuid.New()},
		TemplateID: templateID,
		Checksum:   checksum,
	}

	suite.mockTemplateRepo.EXPECT().GetByID(templateID).Return(&models.Template{}, nil)
	suite.mockTemplateRepo.EXPECT().GetAttachmentByChecksum(templateID, checksum).Return(nil, gorm.ErrRecordNotFound)
	suite.mockTemplateRepo.EXPECT().AddAttachment(gomock.Any()).Return(apperrors.NewAlreadyExistsError("attachment", "with this content"))
	suite.mockTemplateRepo.EXPECT().GetAttachmentByChecksum(templateID, checksum).Return(winner, nil)

	resp, reused, err := suite.templateService.UploadAttachment(templateID, &service.AttachmentUpload{
		FileName: "brochure.pdf",
		Content:  content,
	})

	assert.NoError(suite.T(), err)
	assert.True(suite.T(), reused)
	assert.Equal(suite.T(), winner.ID, resp.ID)
}

func (suite *TemplateServiceTestSuite) TestUploadAttachment_TooLarge() {
	templateID := uuid.New()
	content := make([]byte, testMaxAttachmentBytes+1)

	resp, reused, err := suite.templateService.UploadAttachment(templateID, &service.AttachmentUpload{
		FileName: "huge.bin",
		Content:  content,
	})

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), resp)
	assert.False(suite.T(), reused)
	assert.ErrorIs(suite.T(), err, apperrors.ErrAttachmentTooLarge)
}

func (suite *TemplateServiceTestSuite) TestUploadAttachment_TemplateNotFound() {
	templateID := uuid.New()
	suite.mockTemplateRepo.EXPECT().GetByID(templateID).Return(nil, gorm.ErrRecordNotFound)

	resp, _, err := suite.templateService.UploadAttachment(templateID, &service.AttachmentUpload{
		FileName: "brochure.pdf",
		Content:  []byte("bytes"),
	})

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), resp)
	assert.True(suite.T(), apperrors.IsNotFound(err))
}

func (suite *TemplateServiceTestSuite) TestDeleteAttachment_NotFound() {
	id := uuid.New()
	suite.mockTemplateRepo.EXPECT().GetAttachmentByID(id).Return(nil, gorm.ErrRecordNotFound)

	err := suite.templateService.DeleteAttachment(id)

	assert.Error(suite.T(), err)
	assert.True(suite.T(), apperrors.IsNotFound(err))
}

func (suite *TemplateServiceTestSuite) TestListAttachments_RepoError() {
	templateID := uuid.New()
	suite.mockTemplateRepo.EXPECT().GetByID(templateID).Return(&models.Template{}, nil)
	suite.mockTemplateRepo.EXPECT().ListAttachments(templateID).Return(nil, errors.New("db failed"))

	resp, err := suite.templateService.ListAttachments(templateID)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), resp)
	assert.Contains(suite.T(), err.Error(), "failed to list attachments")
}

func TestTemplateServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TemplateServiceTestSuite))
}
