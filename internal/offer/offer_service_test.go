package offer_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"jobtrack/internal/company"
	companyerrors "jobtrack/internal/company/errors"
	"jobtrack/internal/events"
	"jobtrack/internal/messaging/kafka"
	"jobtrack/internal/offer"
	offererrors "jobtrack/internal/offer/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{})
	assert.NoError(t, err)
	return db, mock
}

type fakeOfferRepo struct {
	CreateFn         func(ctx context.Context, o *offer.Offer) error
	FindAllFn        func(ctx context.Context) ([]offer.Offer, error)
	FindAllByOwnerFn func(ctx context.Context, ownerID string) ([]offer.Offer, error)
	FindByIDFn       func(ctx context.Context, id string) (*offer.Offer, error)
	UpdateFn         func(ctx context.Context, o *offer.Offer) error
	DeleteFn         func(ctx context.Context, id string) error
}

func (f *fakeOfferRepo) WithTx(tx *gorm.DB) offer.Repository { return f }
func (f *fakeOfferRepo) Create(ctx context.Context, o *offer.Offer) error {
	return f.CreateFn(ctx, o)
}
func (f *fakeOfferRepo) FindAll(ctx context.Context) ([]offer.Offer, error) {
	return f.FindAllFn(ctx)
}
func (f *fakeOfferRepo) FindAllByOwner(ctx context.Context, ownerID string) ([]offer.Offer, error) {
	return f.FindAllByOwnerFn(ctx, ownerID)
}
func (f *fakeOfferRepo) FindByID(ctx context.Context, id string) (*offer.Offer, error) {
	return f.FindByIDFn(ctx, id)
}
func (f *fakeOfferRepo) Update(ctx context.Context, o *offer.Offer) error {
	return f.UpdateFn(ctx, o)
}
func (f *fakeOfferRepo) Delete(ctx context.Context, id string) error {
	return f.DeleteFn(ctx, id)
}

type fakeCompanyRepo struct {
	FindByIDFn func(ctx context.Context, id string) (*company.Company, error)
	calls      int
}

func (f *fakeCompanyRepo) WithTx(tx *gorm.DB) company.Repository { return f }
func (f *fakeCompanyRepo) Create(ctx context.Context, c *company.Company) error {
	panic("not expected")
}
func (f *fakeCompanyRepo) FindAll(ctx context.Context) ([]company.Company, error) {
	panic("not expected")
}
func (f *fakeCompanyRepo) FindAllByOwner(ctx context.Context, ownerID string) ([]company.Company, error) {
	panic("not expected")
}
func (f *fakeCompanyRepo) FindByID(ctx context.Context, id string) (*company.Company, error) {
	f.calls++
	return f.FindByIDFn(ctx, id)
}
func (f *fakeCompanyRepo) Update(ctx context.Context, c *company.Company) error {
	panic("not expected")
}
func (f *fakeCompanyRepo) Delete(ctx context.Context, id string) error {
	panic("not expected")
}

type fakeOutboxRepo struct {
	events []kafka.OutboxEvent
}

func (f *fakeOutboxRepo) WithTx(tx *gorm.DB) kafka.OutboxRepository { return f }
func (f *fakeOutboxRepo) Create(ctx context.Context, event kafka.OutboxEvent) error {
	f.events = append(f.events, event)
	return nil
}
func (f *fakeOutboxRepo) ListPending(ctx context.Context, limit int) ([]kafka.OutboxEvent, error) {
	return f.events, nil
}
func (f *fakeOutboxRepo) MarkSent(ctx context.Context, id string) error { return nil }
func (f *fakeOutboxRepo) MarkFailed(ctx context.Context, id string, reason string) error {
	return nil
}

func TestOfferService_Create(t *testing.T) {
	ownerID := uuid.New().String()
	companyID := uuid.New()

	t.Run("without a company the parent lookup is skipped", func(t *testing.T) {
		db, mock := newTestDB(t)
		mock.ExpectBegin()
		mock.ExpectCommit()

		companyRepo := &fakeCompanyRepo{}
		repo := &fakeOfferRepo{
			CreateFn: func(ctx context.Context, o *offer.Offer) error { return nil },
		}

		svc := offer.NewService(db, repo, companyRepo, false)
		resp, err := svc.Create(context.Background(), ownerID, offer.CreateOfferRequest{
			ReceivedAt: "2026-08-20T09:00:00Z",
		})

		assert.NoError(t, err)
		assert.Nil(t, resp.CompanyID)
		assert.False(t, resp.IsAccepted)
		assert.Zero(t, companyRepo.calls)
	})

	t.Run("with a company the parent must exist", func(t *testing.T) {
		db, mock := newTestDB(t)
		mock.ExpectBegin()
		mock.ExpectRollback()

		companyRepo := &fakeCompanyRepo{
			FindByIDFn: func(ctx context.Context, id string) (*company.Company, error) {
				return nil, gorm.ErrRecordNotFound
			},
		}

		cid := companyID.String()
		svc := offer.NewService(db, &fakeOfferRepo{}, companyRepo, false)
		_, err := svc.Create(context.Background(), ownerID, offer.CreateOfferRequest{
			CompanyID:  &cid,
			ReceivedAt: "2026-08-20T09:00:00Z",
		})

		assert.ErrorIs(t, err, companyerrors.ErrCompanyNotFound)
	})

	t.Run("create enqueues an offer_received event", func(t *testing.T) {
		db, mock := newTestDB(t)
		mock.ExpectBegin()
		mock.ExpectCommit()

		outbox := &fakeOutboxRepo{}
		repo := &fakeOfferRepo{
			CreateFn: func(ctx context.Context, o *offer.Offer) error { return nil },
		}

		svc := offer.NewServiceWithOutbox(db, repo, &fakeCompanyRepo{}, outbox, false)
		resp, err := svc.Create(context.Background(), ownerID, offer.CreateOfferRequest{
			ReceivedAt: "2026-08-20T09:00:00Z",
			IsAccepted: true,
		})

		assert.NoError(t, err)
		assert.Len(t, outbox.events, 1)
		assert.Equal(t, events.OfferReceivedTopic, outbox.events[0].Topic)

		var event events.OfferReceivedEvent
		assert.NoError(t, json.Unmarshal(outbox.events[0].Payload, &event))
		assert.Equal(t, resp.ID, event.OfferID)
		assert.True(t, event.IsAccepted)
	})

	t.Run("non RFC3339 received_at", func(t *testing.T) {
		db, _ := newTestDB(t)

		svc := offer.NewService(db, &fakeOfferRepo{}, &fakeCompanyRepo{}, false)
		_, err := svc.Create(context.Background(), ownerID, offer.CreateOfferRequest{
			ReceivedAt: "last tuesday",
		})

		assert.ErrorIs(t, err, offererrors.ErrInvalidReceivedAt)
	})
}

func TestOfferService_Update(t *testing.T) {
	existing := offer.Offer{
		ID:         uuid.New(),
		UserID:     uuid.New(),
		ReceivedAt: time.Date(2026, 8, 20, 9, 0, 0, 0, time.UTC),
		IsAccepted: false,
	}

	t.Run("accept toggle enqueues an event", func(t *testing.T) {
		db, mock := newTestDB(t)
		mock.ExpectBegin()
		mock.ExpectCommit()

		outbox := &fakeOutboxRepo{}
		repo := &fakeOfferRepo{
			FindByIDFn: func(ctx context.Context, id string) (*offer.Offer, error) {
				o := existing
				return &o, nil
			},
			UpdateFn: func(ctx context.Context, o *offer.Offer) error { return nil },
		}

		accepted := true
		svc := offer.NewServiceWithOutbox(db, repo, &fakeCompanyRepo{}, outbox, false)
		resp, err := svc.Update(context.Background(), existing.ID.String(), offer.UpdateOfferRequest{IsAccepted: &accepted}, true)

		assert.NoError(t, err)
		assert.True(t, resp.IsAccepted)
		assert.Len(t, outbox.events, 1)
	})

	t.Run("no event when the flag does not flip", func(t *testing.T) {
		db, mock := newTestDB(t)
		mock.ExpectBegin()
		mock.ExpectCommit()

		outbox := &fakeOutboxRepo{}
		repo := &fakeOfferRepo{
			FindByIDFn: func(ctx context.Context, id string) (*offer.Offer, error) {
				o := existing
				return &o, nil
			},
			UpdateFn: func(ctx context.Context, o *offer.Offer) error { return nil },
		}

		notes := "Negotiating"
		svc := offer.NewServiceWithOutbox(db, repo, &fakeCompanyRepo{}, outbox, false)
		_, err := svc.Update(context.Background(), existing.ID.String(), offer.UpdateOfferRequest{Notes: &notes}, true)

		assert.NoError(t, err)
		assert.Empty(t, outbox.events)
	})

	t.Run("full update requires received_at", func(t *testing.T) {
		db, _ := newTestDB(t)

		svc := offer.NewService(db, &fakeOfferRepo{}, &fakeCompanyRepo{}, false)
		_, err := svc.Update(context.Background(), existing.ID.String(), offer.UpdateOfferRequest{}, false)

		assert.ErrorIs(t, err, offererrors.ErrReceivedAtRequired)
	})

	t.Run("full update resets absent optionals", func(t *testing.T) {
		db, mock := newTestDB(t)
		mock.ExpectBegin()
		mock.ExpectCommit()

		ctc := "12 LPA"
		withCTC := existing
		withCTC.CTC = &ctc

		repo := &fakeOfferRepo{
			FindByIDFn: func(ctx context.Context, id string) (*offer.Offer, error) {
				o := withCTC
				return &o, nil
			},
			UpdateFn: func(ctx context.Context, o *offer.Offer) error {
				assert.Nil(t, o.CTC)
				assert.Nil(t, o.Notes)
				return nil
			},
		}

		receivedAt := "2026-08-21T09:00:00Z"
		svc := offer.NewService(db, repo, &fakeCompanyRepo{}, false)
		resp, err := svc.Update(context.Background(), existing.ID.String(), offer.UpdateOfferRequest{ReceivedAt: &receivedAt}, false)

		assert.NoError(t, err)
		assert.Nil(t, resp.CTC)
	})
}
