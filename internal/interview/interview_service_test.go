package interview_test

import (
	"context"
	"testing"
	"time"

	"jobtrack/internal/application"
	applicationerrors "jobtrack/internal/application/errors"
	"jobtrack/internal/interview"
	interviewerrors "jobtrack/internal/interview/errors"

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

type fakeInterviewRepo struct {
	CreateFn         func(ctx context.Context, i *interview.Interview) error
	FindAllFn        func(ctx context.Context) ([]interview.Interview, error)
	FindAllByOwnerFn func(ctx context.Context, ownerID string) ([]interview.Interview, error)
	FindByIDFn       func(ctx context.Context, id string) (*interview.Interview, error)
	UpdateFn         func(ctx context.Context, i *interview.Interview) error
	DeleteFn         func(ctx context.Context, id string) error
}

func (f *fakeInterviewRepo) WithTx(tx *gorm.DB) interview.Repository { return f }
func (f *fakeInterviewRepo) Create(ctx context.Context, i *interview.Interview) error {
	return f.CreateFn(ctx, i)
}
func (f *fakeInterviewRepo) FindAll(ctx context.Context) ([]interview.Interview, error) {
	return f.FindAllFn(ctx)
}
func (f *fakeInterviewRepo) FindAllByOwner(ctx context.Context, ownerID string) ([]interview.Interview, error) {
	return f.FindAllByOwnerFn(ctx, ownerID)
}
func (f *fakeInterviewRepo) FindByID(ctx context.Context, id string) (*interview.Interview, error) {
	return f.FindByIDFn(ctx, id)
}
func (f *fakeInterviewRepo) Update(ctx context.Context, i *interview.Interview) error {
	return f.UpdateFn(ctx, i)
}
func (f *fakeInterviewRepo) Delete(ctx context.Context, id string) error {
	return f.DeleteFn(ctx, id)
}

type fakeApplicationRepo struct {
	FindByIDFn func(ctx context.Context, id string) (*application.Application, error)
}

func (f *fakeApplicationRepo) WithTx(tx *gorm.DB) application.Repository { return f }
func (f *fakeApplicationRepo) Create(ctx context.Context, a *application.Application) error {
	panic("not expected")
}
func (f *fakeApplicationRepo) FindAll(ctx context.Context) ([]application.Application, error) {
	panic("not expected")
}
func (f *fakeApplicationRepo) FindAllByOwner(ctx context.Context, ownerID string) ([]application.Application, error) {
	panic("not expected")
}
func (f *fakeApplicationRepo) FindByID(ctx context.Context, id string) (*application.Application, error) {
	return f.FindByIDFn(ctx, id)
}
func (f *fakeApplicationRepo) Update(ctx context.Context, a *application.Application) error {
	panic("not expected")
}
func (f *fakeApplicationRepo) Delete(ctx context.Context, id string) error {
	panic("not expected")
}

func TestInterviewService_Create(t *testing.T) {
	callerID := uuid.New().String()
	applicationID := uuid.New()

	parentExists := &fakeApplicationRepo{
		FindByIDFn: func(ctx context.Context, id string) (*application.Application, error) {
			return &application.Application{ID: applicationID}, nil
		},
	}

	t.Run("success", func(t *testing.T) {
		db, mock := newTestDB(t)
		mock.ExpectBegin()
		mock.ExpectCommit()

		var persisted *interview.Interview
		repo := &fakeInterviewRepo{
			CreateFn: func(ctx context.Context, i *interview.Interview) error {
				persisted = i
				return nil
			},
		}

		svc := interview.NewService(db, repo, parentExists, false)
		resp, err := svc.Create(context.Background(), callerID, interview.CreateInterviewRequest{
			ApplicationID: applicationID.String(),
			Notes:         "Phone screen",
			ScheduledAt:   "2026-09-01T10:00:00Z",
		})

		assert.NoError(t, err)
		assert.Equal(t, applicationID, persisted.ApplicationID)
		assert.Equal(t, time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC), resp.ScheduledAt)
	})

	t.Run("blank notes are rejected before the transaction", func(t *testing.T) {
		db, mock := newTestDB(t)

		svc := interview.NewService(db, &fakeInterviewRepo{}, parentExists, false)
		_, err := svc.Create(context.Background(), callerID, interview.CreateInterviewRequest{
			ApplicationID: applicationID.String(),
			Notes:         "   ",
			ScheduledAt:   "2026-09-01T10:00:00Z",
		})

		assert.ErrorIs(t, err, interviewerrors.ErrNotesRequired)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("non RFC3339 timestamp", func(t *testing.T) {
		db, _ := newTestDB(t)

		svc := interview.NewService(db, &fakeInterviewRepo{}, parentExists, false)
		_, err := svc.Create(context.Background(), callerID, interview.CreateInterviewRequest{
			ApplicationID: applicationID.String(),
			Notes:         "Phone screen",
			ScheduledAt:   "tomorrow at noon",
		})

		assert.ErrorIs(t, err, interviewerrors.ErrInvalidScheduledAt)
	})

	t.Run("absent parent application", func(t *testing.T) {
		db, mock := newTestDB(t)
		mock.ExpectBegin()
		mock.ExpectRollback()

		parentMissing := &fakeApplicationRepo{
			FindByIDFn: func(ctx context.Context, id string) (*application.Application, error) {
				return nil, gorm.ErrRecordNotFound
			},
		}

		svc := interview.NewService(db, &fakeInterviewRepo{}, parentMissing, false)
		_, err := svc.Create(context.Background(), callerID, interview.CreateInterviewRequest{
			ApplicationID: applicationID.String(),
			Notes:         "Phone screen",
			ScheduledAt:   "2026-09-01T10:00:00Z",
		})

		assert.ErrorIs(t, err, applicationerrors.ErrApplicationNotFound)
	})
}

func TestInterviewService_Update(t *testing.T) {
	round := "technical"
	existing := interview.Interview{
		ID:            uuid.New(),
		ApplicationID: uuid.New(),
		Notes:         "Scheduled",
		Round:         &round,
		ScheduledAt:   time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC),
	}

	t.Run("patching only the result leaves the rest", func(t *testing.T) {
		db, mock := newTestDB(t)
		mock.ExpectBegin()
		mock.ExpectCommit()

		repo := &fakeInterviewRepo{
			FindByIDFn: func(ctx context.Context, id string) (*interview.Interview, error) {
				i := existing
				return &i, nil
			},
			UpdateFn: func(ctx context.Context, i *interview.Interview) error {
				assert.Equal(t, "Scheduled", i.Notes)
				assert.Equal(t, "technical", *i.Round)
				assert.Equal(t, "passed", *i.Result)
				return nil
			},
		}

		result := "passed"
		svc := interview.NewService(db, repo, &fakeApplicationRepo{}, false)
		resp, err := svc.Update(context.Background(), existing.ID.String(), interview.UpdateInterviewRequest{Result: &result}, true)

		assert.NoError(t, err)
		assert.Equal(t, "passed", *resp.Result)
	})

	t.Run("full update requires scheduled_at", func(t *testing.T) {
		db, _ := newTestDB(t)

		notes := "Rescheduled"
		svc := interview.NewService(db, &fakeInterviewRepo{}, &fakeApplicationRepo{}, false)
		_, err := svc.Update(context.Background(), existing.ID.String(), interview.UpdateInterviewRequest{Notes: &notes}, false)

		assert.ErrorIs(t, err, interviewerrors.ErrScheduledAtRequired)
	})
}

func TestInterviewService_Delete(t *testing.T) {
	t.Run("unknown id", func(t *testing.T) {
		db, mock := newTestDB(t)
		mock.ExpectBegin()
		mock.ExpectRollback()

		repo := &fakeInterviewRepo{
			FindByIDFn: func(ctx context.Context, id string) (*interview.Interview, error) {
				return nil, gorm.ErrRecordNotFound
			},
		}

		svc := interview.NewService(db, repo, &fakeApplicationRepo{}, false)
		err := svc.Delete(context.Background(), uuid.New().String())

		assert.ErrorIs(t, err, interviewerrors.ErrInterviewNotFound)
	})
}
