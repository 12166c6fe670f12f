package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/cbfacademy/iou_api/internal/apperrors"
	"github.com/cbfacademy/iou_api/internal/core/domain"
	portssvc "github.com/cbfacademy/iou_api/internal/core/ports/services"
	"github.com/cbfacademy/iou_api/internal/dto"
	"github.com/cbfacademy/iou_api/internal/handlers"
	"github.com/cbfacademy/iou_api/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock IOUService ---
type MockIOUService struct {
	mock.Mock
}

func (m *MockIOUService) iousResult(args mock.Arguments) ([]domain.IOU, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.IOU), args.Error(1)
}

func (m *MockIOUService) iouResult(args mock.Arguments) (*domain.IOU, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.IOU), args.Error(1)
}

func (m *MockIOUService) ListIOUs(ctx context.Context) ([]domain.IOU, error) {
	return m.iousResult(m.Called(ctx))
}
func (m *MockIOUService) GetIOUByID(ctx context.Context, id uuid.UUID) (*domain.IOU, error) {
	return m.iouResult(m.Called(ctx, id))
}
func (m *MockIOUService) ListIOUsByBorrower(ctx context.Context, borrower string) ([]domain.IOU, error) {
	return m.iousResult(m.Called(ctx, borrower))
}
func (m *MockIOUService) ListIOUsByLender(ctx context.Context, lender string) ([]domain.IOU, error) {
	return m.iousResult(m.Called(ctx, lender))
}
func (m *MockIOUService) ListHighValueIOUs(ctx context.Context) ([]domain.IOU, error) {
	return m.iousResult(m.Called(ctx))
}
func (m *MockIOUService) ListLowValueIOUs(ctx context.Context) ([]domain.IOU, error) {
	return m.iousResult(m.Called(ctx))
}
func (m *MockIOUService) CreateIOU(ctx context.Context, candidate domain.IOU) (*domain.IOU, error) {
	return m.iouResult(m.Called(ctx, candidate))
}
func (m *MockIOUService) UpdateIOU(ctx context.Context, id uuid.UUID, patch domain.IOU) (*domain.IOU, error) {
	return m.iouResult(m.Called(ctx, id, patch))
}
func (m *MockIOUService) DeleteIOU(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

// Ensure mock implements the interface
var _ portssvc.IOUSvcFacade = (*MockIOUService)(nil)

// --- Test Suite ---
type IOUHandlerTestSuite struct {
	suite.Suite
	router         *gin.Engine
	mockIOUService *MockIOUService
}

func (suite *IOUHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.Require().NoError(handlers.RegisterValidators())

	suite.router = gin.New()
	suite.router.Use(middleware.StructuredLoggingMiddleware(discardLogger()))
	suite.mockIOUService = new(MockIOUService)

	api := suite.router.Group("/api")
	handlers.RegisterIOURoutes(api, suite.mockIOUService)
}

func (suite *IOUHandlerTestSuite) do(method, url string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		suite.Require().NoError(err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req, _ := http.NewRequest(method, url, reader)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *IOUHandlerTestSuite) errorBody(w *httptest.ResponseRecorder) string {
	var body dto.ErrorResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	return body.Error
}

func sampleIOU(borrower, lender string, amount int64) domain.IOU {
	return domain.IOU{
		ID:        uuid.New(),
		Borrower:  borrower,
		Lender:    lender,
		Amount:    decimal.NewFromInt(amount),
		CreatedAt: time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC),
	}
}

// --- Test Cases ---

func (suite *IOUHandlerTestSuite) TestListIOUs_NoFilter() {
	ious := []domain.IOU{sampleIOU("Alice", "Bob", 10), sampleIOU("Carol", "Dave", 20)}
	suite.mockIOUService.On("ListIOUs", mock.Anything).Return(ious, nil).Once()

	w := suite.do(http.MethodGet, "/api/ious", nil)

	suite.Equal(http.StatusOK, w.Code)
	var body []dto.IOUResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Require().Len(body, 2)
	suite.Equal(ious[0].ID.String(), body[0].ID)
	suite.True(body[1].Amount.Equal(decimal.NewFromInt(20)))
	suite.mockIOUService.AssertExpectations(suite.T())
}

func (suite *IOUHandlerTestSuite) TestListIOUs_EmptyIsArray() {
	suite.mockIOUService.On("ListIOUs", mock.Anything).Return([]domain.IOU{}, nil).Once()

	w := suite.do(http.MethodGet, "/api/ious", nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`[]`, w.Body.String())
}

func (suite *IOUHandlerTestSuite) TestListIOUs_BorrowerTakesPrecedence() {
	alice := []domain.IOU{sampleIOU("Alice", "Bob", 10)}
	suite.mockIOUService.On("ListIOUsByBorrower", mock.Anything, "Alice").Return(alice, nil).Once()

	w := suite.do(http.MethodGet, "/api/ious?borrower=Alice&lender=Bob", nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.mockIOUService.AssertExpectations(suite.T())
	suite.mockIOUService.AssertNotCalled(suite.T(), "ListIOUsByLender", mock.Anything, mock.Anything)
	suite.mockIOUService.AssertNotCalled(suite.T(), "ListIOUs", mock.Anything)
}

func (suite *IOUHandlerTestSuite) TestListIOUs_LenderFilter() {
	suite.mockIOUService.On("ListIOUsByLender", mock.Anything, "Bob").Return([]domain.IOU{}, nil).Once()

	w := suite.do(http.MethodGet, "/api/ious?lender=Bob", nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.mockIOUService.AssertExpectations(suite.T())
}

func (suite *IOUHandlerTestSuite) TestListIOUs_BlankBorrowerIgnored() {
	suite.mockIOUService.On("ListIOUsByLender", mock.Anything, "Bob").Return([]domain.IOU{}, nil).Once()

	w := suite.do(http.MethodGet, "/api/ious?borrower=%20%20&lender=Bob", nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.mockIOUService.AssertExpectations(suite.T())
}

func (suite *IOUHandlerTestSuite) TestListIOUs_ServiceErrorIs500WithMessage() {
	suite.mockIOUService.On("ListIOUs", mock.Anything).Return(nil, fmt.Errorf("connection refused")).Once()

	w := suite.do(http.MethodGet, "/api/ious", nil)

	suite.Equal(http.StatusInternalServerError, w.Code)
	suite.Equal("connection refused", suite.errorBody(w))
}

func (suite *IOUHandlerTestSuite) TestHighAndLowValueRoutes() {
	high := []domain.IOU{sampleIOU("a", "b", 30)}
	low := []domain.IOU{sampleIOU("a", "b", 20), sampleIOU("a", "b", 10)}
	suite.mockIOUService.On("ListHighValueIOUs", mock.Anything).Return(high, nil).Once()
	suite.mockIOUService.On("ListLowValueIOUs", mock.Anything).Return(low, nil).Once()

	wHigh := suite.do(http.MethodGet, "/api/ious/high", nil)
	wLow := suite.do(http.MethodGet, "/api/ious/low", nil)

	suite.Equal(http.StatusOK, wHigh.Code)
	suite.Equal(http.StatusOK, wLow.Code)
	var highBody, lowBody []dto.IOUResponse
	suite.Require().NoError(json.Unmarshal(wHigh.Body.Bytes(), &highBody))
	suite.Require().NoError(json.Unmarshal(wLow.Body.Bytes(), &lowBody))
	suite.Len(highBody, 1)
	suite.Len(lowBody, 2)
	suite.mockIOUService.AssertNotCalled(suite.T(), "GetIOUByID", mock.Anything, mock.Anything)
}

func (suite *IOUHandlerTestSuite) TestGetIOU_Success() {
	iou := sampleIOU("Alice", "Bob", 10)
	suite.mockIOUService.On("GetIOUByID", mock.Anything, iou.ID).Return(&iou, nil).Once()

	w := suite.do(http.MethodGet, "/api/ious/"+iou.ID.String(), nil)

	suite.Equal(http.StatusOK, w.Code)
	var body dto.IOUResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal(iou.ID.String(), body.ID)
	suite.Equal("Alice", body.Borrower)
	suite.True(iou.CreatedAt.Equal(body.CreatedAt))
}

func (suite *IOUHandlerTestSuite) TestGetIOU_NotFound() {
	id := uuid.New()
	suite.mockIOUService.On("GetIOUByID", mock.Anything, id).Return(nil, fmt.Errorf("wrapped: %w", apperrors.ErrNotFound)).Once()

	w := suite.do(http.MethodGet, "/api/ious/"+id.String(), nil)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.Equal("IOU Not Found", suite.errorBody(w))
}

func (suite *IOUHandlerTestSuite) TestGetIOU_MalformedID() {
	w := suite.do(http.MethodGet, "/api/ious/not-a-uuid", nil)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockIOUService.AssertNotCalled(suite.T(), "GetIOUByID", mock.Anything, mock.Anything)
}

func (suite *IOUHandlerTestSuite) TestCreateIOU_Success() {
	created := sampleIOU("Bob", "Ann", 100)
	suite.mockIOUService.On("CreateIOU", mock.Anything, mock.MatchedBy(func(iou domain.IOU) bool {
		return iou.ID == uuid.Nil && iou.Borrower == "Bob" && iou.Lender == "Ann" &&
			iou.Amount.Equal(decimal.RequireFromString("100.00")) && iou.CreatedAt.IsZero()
	})).Return(&created, nil).Once()

	w := suite.do(http.MethodPost, "/api/ious", map[string]any{
		"id":       uuid.NewString(),
		"borrower": "Bob",
		"lender":   "Ann",
		"amount":   100.00,
	})

	suite.Equal(http.StatusCreated, w.Code)
	var body dto.IOUResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal(created.ID.String(), body.ID)
	suite.mockIOUService.AssertExpectations(suite.T())
}

func (suite *IOUHandlerTestSuite) TestCreateIOU_AmountDefaultsToZero() {
	created := sampleIOU("Bob", "Ann", 0)
	suite.mockIOUService.On("CreateIOU", mock.Anything, mock.MatchedBy(func(iou domain.IOU) bool {
		return iou.Amount.IsZero()
	})).Return(&created, nil).Once()

	w := suite.do(http.MethodPost, "/api/ious", map[string]any{"borrower": "Bob", "lender": "Ann"})

	suite.Equal(http.StatusCreated, w.Code)
	suite.mockIOUService.AssertExpectations(suite.T())
}

func (suite *IOUHandlerTestSuite) TestCreateIOU_AmountAsString() {
	created := sampleIOU("Bob", "Ann", 0)
	suite.mockIOUService.On("CreateIOU", mock.Anything, mock.MatchedBy(func(iou domain.IOU) bool {
		return iou.Amount.Equal(decimal.RequireFromString("12.34"))
	})).Return(&created, nil).Once()

	w := suite.do(http.MethodPost, "/api/ious", map[string]any{"borrower": "Bob", "lender": "Ann", "amount": "12.34"})

	suite.Equal(http.StatusCreated, w.Code)
}

func (suite *IOUHandlerTestSuite) TestCreateIOU_MissingBorrowerIs400() {
	w := suite.do(http.MethodPost, "/api/ious", map[string]any{"borrower": "   ", "lender": "Ann"})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockIOUService.AssertNotCalled(suite.T(), "CreateIOU", mock.Anything, mock.Anything)
}

func (suite *IOUHandlerTestSuite) TestCreateIOU_ServiceFailureIs500() {
	storeErr := fmt.Errorf("failed to create IOU: %w: numeric field overflow", apperrors.ErrValidation)
	suite.mockIOUService.On("CreateIOU", mock.Anything, mock.AnythingOfType("domain.IOU")).Return(nil, storeErr).Once()

	w := suite.do(http.MethodPost, "/api/ious", map[string]any{"borrower": "Bob", "lender": "Ann", "amount": 1e30})

	suite.Equal(http.StatusInternalServerError, w.Code)
	suite.Equal(storeErr.Error(), suite.errorBody(w))
}

func (suite *IOUHandlerTestSuite) TestUpdateIOU_Success() {
	updated := sampleIOU("Carol", "Dave", 5)
	suite.mockIOUService.On("UpdateIOU", mock.Anything, updated.ID, mock.MatchedBy(func(iou domain.IOU) bool {
		return iou.Borrower == "Carol" && iou.Lender == "Dave" && iou.Amount.Equal(decimal.NewFromInt(5))
	})).Return(&updated, nil).Once()

	w := suite.do(http.MethodPut, "/api/ious/"+updated.ID.String(), map[string]any{
		"borrower": "Carol", "lender": "Dave", "amount": 5,
	})

	suite.Equal(http.StatusOK, w.Code)
	suite.mockIOUService.AssertExpectations(suite.T())
}

func (suite *IOUHandlerTestSuite) TestUpdateIOU_NotFound() {
	id := uuid.New()
	suite.mockIOUService.On("UpdateIOU", mock.Anything, id, mock.AnythingOfType("domain.IOU")).Return(nil, apperrors.ErrNotFound).Once()

	w := suite.do(http.MethodPut, "/api/ious/"+id.String(), map[string]any{
		"borrower": "Carol", "lender": "Dave", "amount": 5,
	})

	suite.Equal(http.StatusNotFound, w.Code)
	suite.Equal("IOU Not Found", suite.errorBody(w))
}

func (suite *IOUHandlerTestSuite) TestUpdateIOU_MissingAmountIs400() {
	w := suite.do(http.MethodPut, "/api/ious/"+uuid.NewString(), map[string]any{"borrower": "Carol", "lender": "Dave"})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockIOUService.AssertNotCalled(suite.T(), "UpdateIOU", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *IOUHandlerTestSuite) TestDeleteIOU() {
	id := uuid.New()
	suite.mockIOUService.On("DeleteIOU", mock.Anything, id).Return(nil).Once()
	suite.mockIOUService.On("DeleteIOU", mock.Anything, id).Return(apperrors.ErrNotFound).Once()

	first := suite.do(http.MethodDelete, "/api/ious/"+id.String(), nil)
	second := suite.do(http.MethodDelete, "/api/ious/"+id.String(), nil)

	suite.Equal(http.StatusNoContent, first.Code)
	suite.Empty(first.Body.String())
	suite.Equal(http.StatusNotFound, second.Code)
	suite.mockIOUService.AssertExpectations(suite.T())
}

func (suite *IOUHandlerTestSuite) TestDeleteIOU_OtherErrorIs500() {
	id := uuid.New()
	suite.mockIOUService.On("DeleteIOU", mock.Anything, id).Return(fmt.Errorf("db down")).Once()

	w := suite.do(http.MethodDelete, "/api/ious/"+id.String(), nil)

	suite.Equal(http.StatusInternalServerError, w.Code)
	suite.Equal("db down", suite.errorBody(w))
}

// --- Run Test Suite ---
func TestIOUHandler(t *testing.T) {
	suite.Run(t, new(IOUHandlerTestSuite))
}
