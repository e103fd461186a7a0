package interview

import (
	"context"
	"errors"
	"strings"
	"time"

	"jobtrack/internal/application"
	applicationerrors "jobtrack/internal/application/errors"
	interviewerrors "jobtrack/internal/interview/errors"
	"jobtrack/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Service interface {
	Create(ctx context.Context, callerID string, req CreateInterviewRequest) (InterviewResponse, error)
	GetAll(ctx context.Context, callerID string) ([]InterviewResponse, error)
	GetByID(ctx context.Context, id string) (InterviewResponse, error)
	Update(ctx context.Context, id string, req UpdateInterviewRequest, partial bool) (InterviewResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	db              *gorm.DB
	repo            Repository
	applicationRepo application.Repository
	ownerScoped     bool
	logger          *zap.Logger
}

func NewService(db *gorm.DB, repo Repository, applicationRepo application.Repository, ownerScoped bool, logger ...*zap.Logger) Service {
	l := zap.L().Named("interview.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("interview.service")
	}
	return &service{
		db:              db,
		repo:            repo,
		applicationRepo: applicationRepo,
		ownerScoped:     ownerScoped,
		logger:          l,
	}
}

func (s *service) Create(ctx context.Context, callerID string, req CreateInterviewRequest) (InterviewResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create interview requested",
		zap.String("request_id", rid),
		zap.String("caller_id", callerID),
		zap.String("application_id", req.ApplicationID),
	)

	applicationUUID, err := uuid.Parse(req.ApplicationID)
	if err != nil {
		return InterviewResponse{}, interviewerrors.ErrInvalidApplicationID
	}
	if strings.TrimSpace(req.Notes) == "" {
		return InterviewResponse{}, interviewerrors.ErrNotesRequired
	}
	scheduledAt, err := parseTimestamp(req.ScheduledAt)
	if err != nil {
		return InterviewResponse{}, err
	}

	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		s.logger.Error("create interview begin tx failed", zap.Error(tx.Error))
		return InterviewResponse{}, tx.Error
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if _, err := s.applicationRepo.WithTx(tx).FindByID(ctx, req.ApplicationID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return InterviewResponse{}, applicationerrors.ErrApplicationNotFound
		}
		return InterviewResponse{}, err
	}

	i := &Interview{
		ID:            uuid.New(),
		ApplicationID: applicationUUID,
		Notes:         req.Notes,
		Round:         req.Round,
		ScheduledAt:   scheduledAt,
		Result:        req.Result,
	}

	if err := qtx.Create(ctx, i); err != nil {
		s.logger.Error("create interview persist failed", zap.Error(err))
		return InterviewResponse{}, err
	}

	if err := tx.Commit().Error; err != nil {
		s.logger.Error("create interview commit failed", zap.Error(err))
		return InterviewResponse{}, err
	}

	s.logger.Info("create interview success",
		zap.String("request_id", rid),
		zap.String("interview_id", i.ID.String()),
	)

	return mapToResponse(*i), nil
}

func (s *service) GetAll(ctx context.Context, callerID string) ([]InterviewResponse, error) {
	var (
		interviews []Interview
		err        error
	)
	if s.ownerScoped {
		interviews, err = s.repo.FindAllByOwner(ctx, callerID)
	} else {
		interviews, err = s.repo.FindAll(ctx)
	}
	if err != nil {
		return nil, err
	}
	return mapToListResponse(interviews), nil
}

func (s *service) GetByID(ctx context.Context, id string) (InterviewResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return InterviewResponse{}, interviewerrors.ErrInvalidInterviewID
	}

	i, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return InterviewResponse{}, interviewerrors.ErrInterviewNotFound
		}
		return InterviewResponse{}, err
	}
	return mapToResponse(*i), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateInterviewRequest, partial bool) (InterviewResponse, error) {
	s.logger.Debug("update interview requested",
		zap.String("interview_id", id),
		zap.Bool("partial", partial),
	)

	if _, err := uuid.Parse(id); err != nil {
		return InterviewResponse{}, interviewerrors.ErrInvalidInterviewID
	}
	if !partial {
		if req.Notes == nil || strings.TrimSpace(*req.Notes) == "" {
			return InterviewResponse{}, interviewerrors.ErrNotesRequired
		}
		if req.ScheduledAt == nil {
			return InterviewResponse{}, interviewerrors.ErrScheduledAtRequired
		}
	}

	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		s.logger.Error("update interview begin tx failed", zap.Error(tx.Error))
		return InterviewResponse{}, tx.Error
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	i, err := qtx.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return InterviewResponse{}, interviewerrors.ErrInterviewNotFound
		}
		return InterviewResponse{}, err
	}

	if req.Notes != nil {
		if strings.TrimSpace(*req.Notes) == "" {
			return InterviewResponse{}, interviewerrors.ErrNotesRequired
		}
		i.Notes = *req.Notes
	}
	if req.Round != nil {
		i.Round = req.Round
	} else if !partial {
		i.Round = nil
	}
	if req.ScheduledAt != nil {
		scheduledAt, err := parseTimestamp(*req.ScheduledAt)
		if err != nil {
			return InterviewResponse{}, err
		}
		i.ScheduledAt = scheduledAt
	}
	if req.Result != nil {
		i.Result = req.Result
	} else if !partial {
		i.Result = nil
	}

	if err := qtx.Update(ctx, i); err != nil {
		s.logger.Error("update interview persist failed", zap.Error(err))
		return InterviewResponse{}, err
	}

	if err := tx.Commit().Error; err != nil {
		s.logger.Error("update interview commit failed", zap.Error(err))
		return InterviewResponse{}, err
	}

	s.logger.Info("update interview success", zap.String("interview_id", id))
	return mapToResponse(*i), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	s.logger.Debug("delete interview requested", zap.String("interview_id", id))

	if _, err := uuid.Parse(id); err != nil {
		return interviewerrors.ErrInvalidInterviewID
	}

	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		s.logger.Error("delete interview begin tx failed", zap.Error(tx.Error))
		return tx.Error
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if _, err := qtx.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return interviewerrors.ErrInterviewNotFound
		}
		return err
	}

	if err := qtx.Delete(ctx, id); err != nil {
		s.logger.Error("delete interview failed", zap.Error(err))
		return err
	}

	if err := tx.Commit().Error; err != nil {
		s.logger.Error("delete interview commit failed", zap.Error(err))
		return err
	}

	s.logger.Info("delete interview success", zap.String("interview_id", id))
	return nil
}

func parseTimestamp(v string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		return time.Time{}, interviewerrors.ErrInvalidScheduledAt
	}
	return t, nil
}

func mapToResponse(i Interview) InterviewResponse {
	return InterviewResponse{
		ID:            i.ID.String(),
		ApplicationID: i.ApplicationID.String(),
		Notes:         i.Notes,
		Round:         i.Round,
		ScheduledAt:   i.ScheduledAt,
		Result:        i.Result,
		CreatedAt:     i.CreatedAt,
		UpdatedAt:     i.UpdatedAt,
	}
}

func mapToListResponse(interviews []Interview) []InterviewResponse {
	resp := make([]InterviewResponse, len(interviews))
	for i, iv := range interviews {
		resp[i] = mapToResponse(iv)
	}
	return resp
}
