package application

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	applicationerrors "jobtrack/internal/application/errors"
	"jobtrack/internal/company"
	companyerrors "jobtrack/internal/company/errors"
	"jobtrack/internal/events"
	"jobtrack/internal/messaging/kafka"
	"jobtrack/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Service interface {
	Create(ctx context.Context, ownerID string, req CreateApplicationRequest) (ApplicationResponse, error)
	GetAll(ctx context.Context, callerID string) ([]ApplicationResponse, error)
	GetByID(ctx context.Context, id string) (ApplicationResponse, error)
	Update(ctx context.Context, id string, req UpdateApplicationRequest, partial bool) (ApplicationResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	db          *gorm.DB
	repo        Repository
	companyRepo company.Repository
	outbox      kafka.OutboxRepository
	ownerScoped bool
	logger      *zap.Logger
}

func NewService(db *gorm.DB, repo Repository, companyRepo company.Repository, ownerScoped bool, logger ...*zap.Logger) Service {
	return NewServiceWithOutbox(db, repo, companyRepo, nil, ownerScoped, logger...)
}

// NewServiceWithOutbox additionally records an application_submitted event
// in the create transaction; the worker publishes it later.
func NewServiceWithOutbox(
	db *gorm.DB,
	repo Repository,
	companyRepo company.Repository,
	outboxRepo kafka.OutboxRepository,
	ownerScoped bool,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("application.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("application.service")
	}
	return &service{
		db:          db,
		repo:        repo,
		companyRepo: companyRepo,
		outbox:      outboxRepo,
		ownerScoped: ownerScoped,
		logger:      l,
	}
}

func (s *service) Create(ctx context.Context, ownerID string, req CreateApplicationRequest) (ApplicationResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create application requested",
		zap.String("request_id", rid),
		zap.String("owner_id", ownerID),
		zap.String("company_id", req.CompanyID),
	)

	ownerUUID, err := uuid.Parse(ownerID)
	if err != nil {
		return ApplicationResponse{}, applicationerrors.ErrInvalidOwnerID
	}
	companyUUID, err := uuid.Parse(req.CompanyID)
	if err != nil {
		return ApplicationResponse{}, applicationerrors.ErrInvalidCompanyID
	}
	if strings.TrimSpace(req.Notes) == "" {
		return ApplicationResponse{}, applicationerrors.ErrNotesRequired
	}

	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		s.logger.Error("create application begin tx failed", zap.Error(tx.Error))
		return ApplicationResponse{}, tx.Error
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if _, err := s.companyRepo.WithTx(tx).FindByID(ctx, req.CompanyID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ApplicationResponse{}, companyerrors.ErrCompanyNotFound
		}
		return ApplicationResponse{}, err
	}

	a := &Application{
		ID:        uuid.New(),
		UserID:    ownerUUID,
		CompanyID: companyUUID,
		Notes:     req.Notes,
		Source:    req.Source,
	}

	if err := qtx.Create(ctx, a); err != nil {
		s.logger.Error("create application persist failed", zap.Error(err))
		return ApplicationResponse{}, err
	}

	if s.outbox != nil {
		event := events.ApplicationSubmittedEvent{
			EventType:     "application_submitted",
			RequestID:     rid,
			ApplicationID: a.ID.String(),
			UserID:        ownerID,
			CompanyID:     req.CompanyID,
			OccurredAt:    time.Now().UTC(),
		}
		if req.Source != nil {
			event.Source = *req.Source
		}

		payload, err := json.Marshal(event)
		if err != nil {
			s.logger.Error("marshal event failed", zap.String("request_id", rid), zap.Error(err))
			return ApplicationResponse{}, err
		}

		if err := s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
			ID:            uuid.NewString(),
			RequestID:     rid,
			AggregateType: "application",
			AggregateID:   a.ID.String(),
			EventType:     event.EventType,
			Topic:         events.ApplicationSubmittedTopic,
			Payload:       payload,
			Status:        kafka.OutboxStatusPending,
		}); err != nil {
			s.logger.Error("create application outbox persist failed",
				zap.String("application_id", a.ID.String()),
				zap.Error(err),
			)
			return ApplicationResponse{}, err
		}
	}

	if err := tx.Commit().Error; err != nil {
		s.logger.Error("create application commit failed", zap.Error(err))
		return ApplicationResponse{}, err
	}

	s.logger.Info("create application success",
		zap.String("request_id", rid),
		zap.String("application_id", a.ID.String()),
	)

	return mapToResponse(*a), nil
}

func (s *service) GetAll(ctx context.Context, callerID string) ([]ApplicationResponse, error) {
	var (
		applications []Application
		err          error
	)
	if s.ownerScoped {
		applications, err = s.repo.FindAllByOwner(ctx, callerID)
	} else {
		applications, err = s.repo.FindAll(ctx)
	}
	if err != nil {
		return nil, err
	}
	return mapToListResponse(applications), nil
}

func (s *service) GetByID(ctx context.Context, id string) (ApplicationResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return ApplicationResponse{}, applicationerrors.ErrInvalidApplicationID
	}

	a, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ApplicationResponse{}, applicationerrors.ErrApplicationNotFound
		}
		return ApplicationResponse{}, err
	}
	return mapToResponse(*a), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateApplicationRequest, partial bool) (ApplicationResponse, error) {
	s.logger.Debug("update application requested",
		zap.String("application_id", id),
		zap.Bool("partial", partial),
	)

	if _, err := uuid.Parse(id); err != nil {
		return ApplicationResponse{}, applicationerrors.ErrInvalidApplicationID
	}
	if !partial && (req.Notes == nil || strings.TrimSpace(*req.Notes) == "") {
		return ApplicationResponse{}, applicationerrors.ErrNotesRequired
	}

	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		s.logger.Error("update application begin tx failed", zap.Error(tx.Error))
		return ApplicationResponse{}, tx.Error
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	a, err := qtx.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ApplicationResponse{}, applicationerrors.ErrApplicationNotFound
		}
		return ApplicationResponse{}, err
	}

	if req.Notes != nil {
		if strings.TrimSpace(*req.Notes) == "" {
			return ApplicationResponse{}, applicationerrors.ErrNotesRequired
		}
		a.Notes = *req.Notes
	}
	if req.Source != nil {
		a.Source = req.Source
	} else if !partial {
		a.Source = nil
	}

	if err := qtx.Update(ctx, a); err != nil {
		s.logger.Error("update application persist failed", zap.Error(err))
		return ApplicationResponse{}, err
	}

	if err := tx.Commit().Error; err != nil {
		s.logger.Error("update application commit failed", zap.Error(err))
		return ApplicationResponse{}, err
	}

	s.logger.Info("update application success", zap.String("application_id", id))
	return mapToResponse(*a), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	s.logger.Debug("delete application requested", zap.String("application_id", id))

	if _, err := uuid.Parse(id); err != nil {
		return applicationerrors.ErrInvalidApplicationID
	}

	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		s.logger.Error("delete application begin tx failed", zap.Error(tx.Error))
		return tx.Error
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if _, err := qtx.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return applicationerrors.ErrApplicationNotFound
		}
		return err
	}

	if err := qtx.Delete(ctx, id); err != nil {
		s.logger.Error("delete application failed", zap.Error(err))
		return err
	}

	if err := tx.Commit().Error; err != nil {
		s.logger.Error("delete application commit failed", zap.Error(err))
		return err
	}

	s.logger.Info("delete application success", zap.String("application_id", id))
	return nil
}

func mapToResponse(a Application) ApplicationResponse {
	return ApplicationResponse{
		ID:        a.ID.String(),
		UserID:    a.UserID.String(),
		CompanyID: a.CompanyID.String(),
		Notes:     a.Notes,
		Source:    a.Source,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

func mapToListResponse(applications []Application) []ApplicationResponse {
	resp := make([]ApplicationResponse, len(applications))
	for i, a := range applications {
		resp[i] = mapToResponse(a)
	}
	return resp
}
