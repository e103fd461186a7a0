package question

import (
	"context"
	"errors"
	"strings"

	"jobtrack/internal/company"
	companyerrors "jobtrack/internal/company/errors"
	questionerrors "jobtrack/internal/question/errors"
	"jobtrack/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Service interface {
	Create(ctx context.Context, ownerID string, req CreateQuestionRequest) (QuestionResponse, error)
	GetAll(ctx context.Context, callerID string) ([]QuestionResponse, error)
	GetByID(ctx context.Context, id string) (QuestionResponse, error)
	Update(ctx context.Context, id string, req UpdateQuestionRequest, partial bool) (QuestionResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	db          *gorm.DB
	repo        Repository
	companyRepo company.Repository
	ownerScoped bool
	logger      *zap.Logger
}

func NewService(db *gorm.DB, repo Repository, companyRepo company.Repository, ownerScoped bool, logger ...*zap.Logger) Service {
	l := zap.L().Named("question.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("question.service")
	}
	return &service{
		db:          db,
		repo:        repo,
		companyRepo: companyRepo,
		ownerScoped: ownerScoped,
		logger:      l,
	}
}

func (s *service) Create(ctx context.Context, ownerID string, req CreateQuestionRequest) (QuestionResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create question requested",
		zap.String("request_id", rid),
		zap.String("owner_id", ownerID),
		zap.String("company_id", req.CompanyID),
	)

	ownerUUID, err := uuid.Parse(ownerID)
	if err != nil {
		return QuestionResponse{}, questionerrors.ErrInvalidOwnerID
	}
	companyUUID, err := uuid.Parse(req.CompanyID)
	if err != nil {
		return QuestionResponse{}, questionerrors.ErrInvalidCompanyID
	}
	if strings.TrimSpace(req.Content) == "" {
		return QuestionResponse{}, questionerrors.ErrContentRequired
	}

	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		s.logger.Error("create question begin tx failed", zap.Error(tx.Error))
		return QuestionResponse{}, tx.Error
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	// the parent company must exist before anything is persisted
	if _, err := s.companyRepo.WithTx(tx).FindByID(ctx, req.CompanyID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return QuestionResponse{}, companyerrors.ErrCompanyNotFound
		}
		return QuestionResponse{}, err
	}

	q := &Question{
		ID:        uuid.New(),
		UserID:    ownerUUID,
		CompanyID: companyUUID,
		Content:   req.Content,
	}

	if err := qtx.Create(ctx, q); err != nil {
		s.logger.Error("create question persist failed", zap.Error(err))
		return QuestionResponse{}, err
	}

	if err := tx.Commit().Error; err != nil {
		s.logger.Error("create question commit failed", zap.Error(err))
		return QuestionResponse{}, err
	}

	s.logger.Info("create question success",
		zap.String("request_id", rid),
		zap.String("question_id", q.ID.String()),
	)

	return mapToResponse(*q), nil
}

func (s *service) GetAll(ctx context.Context, callerID string) ([]QuestionResponse, error) {
	var (
		questions []Question
		err       error
	)
	if s.ownerScoped {
		questions, err = s.repo.FindAllByOwner(ctx, callerID)
	} else {
		questions, err = s.repo.FindAll(ctx)
	}
	if err != nil {
		return nil, err
	}
	return mapToListResponse(questions), nil
}

func (s *service) GetByID(ctx context.Context, id string) (QuestionResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return QuestionResponse{}, questionerrors.ErrInvalidQuestionID
	}

	q, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return QuestionResponse{}, questionerrors.ErrQuestionNotFound
		}
		return QuestionResponse{}, err
	}
	return mapToResponse(*q), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateQuestionRequest, partial bool) (QuestionResponse, error) {
	s.logger.Debug("update question requested",
		zap.String("question_id", id),
		zap.Bool("partial", partial),
	)

	if _, err := uuid.Parse(id); err != nil {
		return QuestionResponse{}, questionerrors.ErrInvalidQuestionID
	}
	if !partial && (req.Content == nil || strings.TrimSpace(*req.Content) == "") {
		return QuestionResponse{}, questionerrors.ErrContentRequired
	}

	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		s.logger.Error("update question begin tx failed", zap.Error(tx.Error))
		return QuestionResponse{}, tx.Error
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	q, err := qtx.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return QuestionResponse{}, questionerrors.ErrQuestionNotFound
		}
		return QuestionResponse{}, err
	}

	if req.Content != nil {
		if strings.TrimSpace(*req.Content) == "" {
			return QuestionResponse{}, questionerrors.ErrContentRequired
		}
		q.Content = *req.Content
	}

	if err := qtx.Update(ctx, q); err != nil {
		s.logger.Error("update question persist failed", zap.Error(err))
		return QuestionResponse{}, err
	}

	if err := tx.Commit().Error; err != nil {
		s.logger.Error("update question commit failed", zap.Error(err))
		return QuestionResponse{}, err
	}

	s.logger.Info("update question success", zap.String("question_id", id))
	return mapToResponse(*q), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	s.logger.Debug("delete question requested", zap.String("question_id", id))

	if _, err := uuid.Parse(id); err != nil {
		return questionerrors.ErrInvalidQuestionID
	}

	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		s.logger.Error("delete question begin tx failed", zap.Error(tx.Error))
		return tx.Error
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if _, err := qtx.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return questionerrors.ErrQuestionNotFound
		}
		return err
	}

	if err := qtx.Delete(ctx, id); err != nil {
		s.logger.Error("delete question failed", zap.Error(err))
		return err
	}

	if err := tx.Commit().Error; err != nil {
		s.logger.Error("delete question commit failed", zap.Error(err))
		return err
	}

	s.logger.Info("delete question success", zap.String("question_id", id))
	return nil
}

func mapToResponse(q Question) QuestionResponse {
	return QuestionResponse{
		ID:        q.ID.String(),
		UserID:    q.UserID.String(),
		CompanyID: q.CompanyID.String(),
		Content:   q.Content,
		CreatedAt: q.CreatedAt,
		UpdatedAt: q.UpdatedAt,
	}
}

func mapToListResponse(questions []Question) []QuestionResponse {
	resp := make([]QuestionResponse, len(questions))
	for i, q := range questions {
		resp[i] = mapToResponse(q)
	}
	return resp
}
