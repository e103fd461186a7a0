package resume

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"strings"

	"jobtrack/internal/company"
	companyerrors "jobtrack/internal/company/errors"
	resumeerrors "jobtrack/internal/resume/errors"
	"jobtrack/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Service interface {
	Create(ctx context.Context, ownerID string, req CreateResumeRequest) (ResumeResponse, error)
	GetAll(ctx context.Context, callerID string) ([]ResumeResponse, error)
	GetByID(ctx context.Context, id string) (ResumeResponse, error)
	Update(ctx context.Context, id string, req UpdateResumeRequest, partial bool) (ResumeResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	db          *gorm.DB
	repo        Repository
	companyRepo company.Repository
	storage     Storage
	ownerScoped bool
	logger      *zap.Logger
}

func NewService(
	db *gorm.DB,
	repo Repository,
	companyRepo company.Repository,
	storage Storage,
	ownerScoped bool,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("resume.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("resume.service")
	}
	return &service{
		db:          db,
		repo:        repo,
		companyRepo: companyRepo,
		storage:     storage,
		ownerScoped: ownerScoped,
		logger:      l,
	}
}

// sniffImage rejects any payload whose detected media type is not image/*.
func sniffImage(data []byte) (string, error) {
	if len(data) == 0 {
		return "", resumeerrors.ErrFileRequired
	}
	contentType := http.DetectContentType(data)
	if !strings.HasPrefix(contentType, "image/") {
		return "", resumeerrors.ErrNotAnImage
	}
	return contentType, nil
}

func (s *service) Create(ctx context.Context, ownerID string, req CreateResumeRequest) (ResumeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create resume requested",
		zap.String("request_id", rid),
		zap.String("owner_id", ownerID),
		zap.String("company_id", req.CompanyID),
	)

	ownerUUID, err := uuid.Parse(ownerID)
	if err != nil {
		return ResumeResponse{}, resumeerrors.ErrInvalidOwnerID
	}
	companyUUID, err := uuid.Parse(req.CompanyID)
	if err != nil {
		return ResumeResponse{}, resumeerrors.ErrInvalidCompanyID
	}
	contentType, err := sniffImage(req.Data)
	if err != nil {
		return ResumeResponse{}, err
	}

	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		s.logger.Error("create resume begin tx failed", zap.Error(tx.Error))
		return ResumeResponse{}, tx.Error
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if _, err := s.companyRepo.WithTx(tx).FindByID(ctx, req.CompanyID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ResumeResponse{}, companyerrors.ErrCompanyNotFound
		}
		return ResumeResponse{}, err
	}

	res := &Resume{
		ID:          uuid.New(),
		UserID:      ownerUUID,
		CompanyID:   companyUUID,
		FileName:    req.FileName,
		FileKey:     newStorageKey(),
		ContentType: contentType,
	}

	if err := qtx.Create(ctx, res); err != nil {
		s.logger.Error("create resume persist failed", zap.Error(err))
		return ResumeResponse{}, err
	}

	if err := s.storage.Put(ctx, res.FileKey, contentType, bytes.NewReader(req.Data), int64(len(req.Data))); err != nil {
		s.logger.Error("create resume blob upload failed",
			zap.String("file_key", res.FileKey),
			zap.Error(err),
		)
		return ResumeResponse{}, err
	}

	if err := tx.Commit().Error; err != nil {
		s.logger.Error("create resume commit failed", zap.Error(err))
		return ResumeResponse{}, err
	}

	s.logger.Info("create resume success",
		zap.String("request_id", rid),
		zap.String("resume_id", res.ID.String()),
		zap.String("file_key", res.FileKey),
	)

	return mapToResponse(*res), nil
}

func (s *service) GetAll(ctx context.Context, callerID string) ([]ResumeResponse, error) {
	var (
		resumes []Resume
		err     error
	)
	if s.ownerScoped {
		resumes, err = s.repo.FindAllByOwner(ctx, callerID)
	} else {
		resumes, err = s.repo.FindAll(ctx)
	}
	if err != nil {
		return nil, err
	}
	return mapToListResponse(resumes), nil
}

func (s *service) GetByID(ctx context.Context, id string) (ResumeResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return ResumeResponse{}, resumeerrors.ErrInvalidResumeID
	}

	res, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ResumeResponse{}, resumeerrors.ErrResumeNotFound
		}
		return ResumeResponse{}, err
	}
	return mapToResponse(*res), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateResumeRequest, partial bool) (ResumeResponse, error) {
	s.logger.Debug("update resume requested",
		zap.String("resume_id", id),
		zap.Bool("partial", partial),
	)

	if _, err := uuid.Parse(id); err != nil {
		return ResumeResponse{}, resumeerrors.ErrInvalidResumeID
	}
	if !partial && len(req.Data) == 0 {
		return ResumeResponse{}, resumeerrors.ErrFileRequired
	}

	res, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ResumeResponse{}, resumeerrors.ErrResumeNotFound
		}
		return ResumeResponse{}, err
	}

	if len(req.Data) == 0 {
		return mapToResponse(*res), nil
	}

	contentType, err := sniffImage(req.Data)
	if err != nil {
		return ResumeResponse{}, err
	}

	oldKey := res.FileKey
	res.FileKey = newStorageKey()
	res.ContentType = contentType
	if req.FileName != "" {
		res.FileName = req.FileName
	}

	if err := s.storage.Put(ctx, res.FileKey, contentType, bytes.NewReader(req.Data), int64(len(req.Data))); err != nil {
		s.logger.Error("update resume blob upload failed",
			zap.String("file_key", res.FileKey),
			zap.Error(err),
		)
		return ResumeResponse{}, err
	}

	if err := s.repo.Update(ctx, res); err != nil {
		s.logger.Error("update resume persist failed", zap.Error(err))
		return ResumeResponse{}, err
	}

	// Old blob removal is best effort; an orphaned object is harmless.
	if err := s.storage.Delete(ctx, oldKey); err != nil {
		s.logger.Warn("delete replaced blob failed",
			zap.String("file_key", oldKey),
			zap.Error(err),
		)
	}

	s.logger.Info("update resume success", zap.String("resume_id", id))
	return mapToResponse(*res), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	s.logger.Debug("delete resume requested", zap.String("resume_id", id))

	if _, err := uuid.Parse(id); err != nil {
		return resumeerrors.ErrInvalidResumeID
	}

	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		s.logger.Error("delete resume begin tx failed", zap.Error(tx.Error))
		return tx.Error
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	res, err := qtx.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return resumeerrors.ErrResumeNotFound
		}
		return err
	}

	if err := qtx.Delete(ctx, id); err != nil {
		s.logger.Error("delete resume failed", zap.Error(err))
		return err
	}

	if err := tx.Commit().Error; err != nil {
		s.logger.Error("delete resume commit failed", zap.Error(err))
		return err
	}

	if err := s.storage.Delete(ctx, res.FileKey); err != nil {
		s.logger.Warn("delete blob failed",
			zap.String("file_key", res.FileKey),
			zap.Error(err),
		)
	}

	s.logger.Info("delete resume success", zap.String("resume_id", id))
	return nil
}

func mapToResponse(res Resume) ResumeResponse {
	return ResumeResponse{
		ID:          res.ID.String(),
		UserID:      res.UserID.String(),
		CompanyID:   res.CompanyID.String(),
		FileName:    res.FileName,
		FileKey:     res.FileKey,
		ContentType: res.ContentType,
		CreatedAt:   res.CreatedAt,
		UpdatedAt:   res.UpdatedAt,
	}
}

func mapToListResponse(resumes []Resume) []ResumeResponse {
	resp := make([]ResumeResponse, len(resumes))
	for i, res := range resumes {
		resp[i] = mapToResponse(res)
	}
	return resp
}
