package offer_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"jobtrack/internal/offer"
	offererrors "jobtrack/internal/offer/errors"
	"jobtrack/internal/shared/apperror"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeOfferService struct {
	CreateFn  func(ctx context.Context, ownerID string, req offer.CreateOfferRequest) (offer.OfferResponse, error)
	GetAllFn  func(ctx context.Context, callerID string) ([]offer.OfferResponse, error)
	GetByIDFn func(ctx context.Context, id string) (offer.OfferResponse, error)
	UpdateFn  func(ctx context.Context, id string, req offer.UpdateOfferRequest, partial bool) (offer.OfferResponse, error)
	DeleteFn  func(ctx context.Context, id string) error
}

func (f *fakeOfferService) Create(ctx context.Context, ownerID string, req offer.CreateOfferRequest) (offer.OfferResponse, error) {
	return f.CreateFn(ctx, ownerID, req)
}
func (f *fakeOfferService) GetAll(ctx context.Context, callerID string) ([]offer.OfferResponse, error) {
	return f.GetAllFn(ctx, callerID)
}
func (f *fakeOfferService) GetByID(ctx context.Context, id string) (offer.OfferResponse, error) {
	return f.GetByIDFn(ctx, id)
}
func (f *fakeOfferService) Update(ctx context.Context, id string, req offer.UpdateOfferRequest, partial bool) (offer.OfferResponse, error) {
	return f.UpdateFn(ctx, id, req, partial)
}
func (f *fakeOfferService) Delete(ctx context.Context, id string) error {
	return f.DeleteFn(ctx, id)
}

func init() {
	gin.SetMode(gin.TestMode)
	apperror.Init()
}

func TestOfferHandler_Create(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		callerID := uuid.New().String()
		svc := &fakeOfferService{
			CreateFn: func(ctx context.Context, ownerID string, req offer.CreateOfferRequest) (offer.OfferResponse, error) {
				assert.Equal(t, callerID, ownerID)
				assert.Nil(t, req.CompanyID)
				return offer.OfferResponse{ID: uuid.New().String(), UserID: ownerID}, nil
			},
		}

		h := offer.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/offer",
			strings.NewReader(`{"received_at":"2026-08-20T09:00:00Z"}`))
		c.Request.Header.Set("Content-Type", "application/json")
		c.Set("user_id", callerID)

		h.Create(c)

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("missing received_at fails binding", func(t *testing.T) {
		h := offer.NewHandler(&fakeOfferService{})
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/offer", strings.NewReader(`{}`))
		c.Request.Header.Set("Content-Type", "application/json")
		c.Set("user_id", uuid.New().String())

		h.Create(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("malformed company_id fails binding", func(t *testing.T) {
		h := offer.NewHandler(&fakeOfferService{})
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/offer",
			strings.NewReader(`{"received_at":"2026-08-20T09:00:00Z","company_id":"nope"}`))
		c.Request.Header.Set("Content-Type", "application/json")
		c.Set("user_id", uuid.New().String())

		h.Create(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestOfferHandler_Delete(t *testing.T) {
	t.Run("repeat delete is not found", func(t *testing.T) {
		svc := &fakeOfferService{
			DeleteFn: func(ctx context.Context, id string) error {
				return offererrors.ErrOfferNotFound
			},
		}

		h := offer.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodDelete, "/offer/x", nil)
		c.Params = gin.Params{{Key: "id", Value: uuid.New().String()}}

		h.Delete(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
