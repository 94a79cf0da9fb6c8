package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"crm-portal-backend/internal/api/handlers"
	apperrors "crm-portal-backend/internal/errors"
	"crm-portal-backend/internal/mocks"
	"crm-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// SalesChannelHandlerTestSuite defines the test suite for SalesChannelHandler
type SalesChannelHandlerTestSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	mockSvc *mocks.MockSalesChannelServiceInterface
	handler *handlers.SalesChannelHandler
	router  *gin.Engine
}

func (suite *SalesChannelHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockSvc = mocks.NewMockSalesChannelServiceInterface(suite.ctrl)
	suite.handler = handlers.NewSalesChannelHandler(suite.mockSvc)

	suite.router = gin.New()
	suite.router.GET("/sales-channels", suite.handler.ListSalesChannels)
	suite.router.POST("/sales-channels", suite.handler.CreateSalesChannel)
	suite.router.GET("/sales-channels/:code", suite.handler.GetSalesChannel)
	suite.router.PUT("/sales-channels/:code", suite.handler.UpdateSalesChannel)
	suite.router.DELETE("/sales-channels/:code", suite.handler.DeleteSalesChannel)
}

func (suite *SalesChannelHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *SalesChannelHandlerTestSuite) TestListSalesChannels_DefaultPagination() {
	resp := &service.SalesChannelListResponse{
		SalesChannels: []service.SalesChannelResponse{
			{SalesChannelCode: "DIRE", Name: "Direct Sales", IsActive: true},
		},
		Total:    1,
		Page:     1,
		PageSize: 20,
	}
	suite.mockSvc.EXPECT().GetAll(1, 20).Return(resp, nil)

	req := httptest.NewRequest(http.MethodGet, "/sales-channels", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var got service.SalesChannelListResponse
	err := json.Unmarshal(w.Body.Bytes(), &got)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(1), got.Total)
	assert.Len(suite.T(), got.SalesChannels, 1)
	assert.Equal(suite.T(), "DIRE", got.SalesChannels[0].SalesChannelCode)
}

func (suite *SalesChannelHandlerTestSuite) TestListSalesChannels_CustomPagination() {
	resp := &service.SalesChannelListResponse{
		SalesChannels: []service.SalesChannelResponse{},
		Total:         0,
		Page:          2,
		PageSize:      10,
	}
	suite.mockSvc.EXPECT().GetAll(2, 10).Return(resp, nil)

	req := httptest.NewRequest(http.MethodGet, "/sales-channels?page=2&pageSize=10", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
}

func (suite *SalesChannelHandlerTestSuite) TestCreateSalesChannel_Success() {
	body := `{"salesChannelCode":"DIRE","name":"Direct Sales"}`
	resp := &service.SalesChannelResponse{SalesChannelCode: "DIRE", Name: "Direct Sales", IsActive: true}

	suite.mockSvc.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(req *service.CreateSalesChannelRequest) (*service.SalesChannelResponse, error) {
			assert.Equal(suite.T(), "DIRE", req.SalesChannelCode)
			assert.Equal(suite.T(), "Direct Sales", req.Name)
			return resp, nil
		})

	req := httptest.NewRequest(http.MethodPost, "/sales-channels", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusCreated, w.Code)

	var got service.SalesChannelResponse
	err := json.Unmarshal(w.Body.Bytes(), &got)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "DIRE", got.SalesChannelCode)
	assert.True(suite.T(), got.IsActive)
}

func (suite *SalesChannelHandlerTestSuite) TestCreateSalesChannel_InvalidJSON() {
	req := httptest.NewRequest(http.MethodPost, "/sales-channels", bytes.NewBufferString(`{"name":`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "invalid request body")
}

func (suite *SalesChannelHandlerTestSuite) TestCreateSalesChannel_ValidationErrors() {
	suite.mockSvc.EXPECT().
		Create(gomock.Any()).
		Return(nil, &service.FieldErrors{Fields: []service.FieldError{
			{Field: "name", Message: "is required"},
		}})

	req := httptest.NewRequest(http.MethodPost, "/sales-channels", bytes.NewBufferString(`{"salesChannelCode":"DIRE"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)

	var got map[string][]service.FieldError
	err := json.Unmarshal(w.Body.Bytes(), &got)
	assert.NoError(suite.T(), err)
	if assert.Len(suite.T(), got["errors"], 1) {
		assert.Equal(suite.T(), "name", got["errors"][0].Field)
		assert.Equal(suite.T(), "is required", got["errors"][0].Message)
	}
}

func (suite *SalesChannelHandlerTestSuite) TestCreateSalesChannel_DuplicateCode() {
	suite.mockSvc.EXPECT().
		Create(gomock.Any()).
		Return(nil, apperrors.ErrSalesChannelExists)

	req := httptest.NewRequest(http.MethodPost, "/sales-channels", bytes.NewBufferString(`{"salesChannelCode":"DIRE","name":"Direct Sales"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "already exists")
}

func (suite *SalesChannelHandlerTestSuite) TestGetSalesChannel_NotFound() {
	suite.mockSvc.EXPECT().
		GetByCode("XXXX").
		Return(nil, apperrors.ErrSalesChannelNotFound)

	req := httptest.NewRequest(http.MethodGet, "/sales-channels/XXXX", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "sales channel not found")
}

func (suite *SalesChannelHandlerTestSuite) TestUpdateSalesChannel_ImmutableCode() {
	suite.mockSvc.EXPECT().
		Update("DIRE", gomock.Any()).
		Return(nil, apperrors.ErrImmutableCode)

	req := httptest.NewRequest(http.MethodPut, "/sales-channels/DIRE", bytes.NewBufferString(`{"salesChannelCode":"PART"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "cannot be changed")
}

func (suite *SalesChannelHandlerTestSuite) TestDeleteSalesChannel_Success() {
	suite.mockSvc.EXPECT().Delete("DIRE").Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/sales-channels/DIRE", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusNoContent, w.Code)
	assert.Empty(suite.T(), w.Body.String())
}

func (suite *SalesChannelHandlerTestSuite) TestDeleteSalesChannel_NotFound() {
	suite.mockSvc.EXPECT().Delete("XXXX").Return(apperrors.ErrSalesChannelNotFound)

	req := httptest.NewRequest(http.MethodDelete, "/sales-channels/XXXX", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func (suite *SalesChannelHandlerTestSuite) TestListSalesChannels_ServiceError() {
	suite.mockSvc.EXPECT().
		GetAll(1, 20).
		Return(nil, assert.AnError)

	req := httptest.NewRequest(http.MethodGet, "/sales-channels", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusInternalServerError, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "Internal server error")
	assert.NotContains(suite.T(), w.Body.String(), assert.AnError.Error())
}

func TestSalesChannelHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(SalesChannelHandlerTestSuite))
}
