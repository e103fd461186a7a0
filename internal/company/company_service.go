package company

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	companyerrors "jobtrack/internal/company/errors"
	"jobtrack/internal/shared/contextutil"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

const (
	listCacheKeyAll    = "companies:all"
	listCacheKeyPrefix = "companies:owner:"
	listCacheTTL       = 10 * time.Minute
)

type Service interface {
	Create(ctx context.Context, ownerID string, req CreateCompanyRequest) (CompanyResponse, error)
	GetAll(ctx context.Context, callerID string) ([]CompanyResponse, error)
	GetByID(ctx context.Context, id string) (CompanyResponse, error)
	Update(ctx context.Context, id string, req UpdateCompanyRequest, partial bool) (CompanyResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	db          *gorm.DB
	repo        Repository
	rdb         *redis.Client
	ownerScoped bool
	sf          *singleflight.Group
	logger      *zap.Logger
}

// NewService builds the company service. ownerScoped switches list results
// from the observed global scope to per-owner scope.
func NewService(db *gorm.DB, repo Repository, rdb *redis.Client, ownerScoped bool, logger ...*zap.Logger) Service {
	l := zap.L().Named("company.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("company.service")
	}
	return &service{
		db:          db,
		repo:        repo,
		rdb:         rdb,
		ownerScoped: ownerScoped,
		sf:          &singleflight.Group{},
		logger:      l,
	}
}

func (s *service) Create(ctx context.Context, ownerID string, req CreateCompanyRequest) (CompanyResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create company requested",
		zap.String("request_id", rid),
		zap.String("owner_id", ownerID),
		zap.String("name", req.Name),
	)

	ownerUUID, err := uuid.Parse(ownerID)
	if err != nil {
		return CompanyResponse{}, companyerrors.ErrInvalidOwnerID
	}
	if strings.TrimSpace(req.Name) == "" {
		return CompanyResponse{}, companyerrors.ErrNameRequired
	}

	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		s.logger.Error("create company begin tx failed", zap.Error(tx.Error))
		return CompanyResponse{}, tx.Error
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	c := &Company{
		ID:     uuid.New(),
		Name:   req.Name,
		UserID: ownerUUID,
	}

	if err := qtx.Create(ctx, c); err != nil {
		s.logger.Error("create company persist failed", zap.Error(err))
		return CompanyResponse{}, err
	}

	if err := tx.Commit().Error; err != nil {
		s.logger.Error("create company commit failed", zap.Error(err))
		return CompanyResponse{}, err
	}

	s.invalidateListCache(ctx, ownerID)
	s.logger.Info("create company success",
		zap.String("request_id", rid),
		zap.String("company_id", c.ID.String()),
	)

	return mapToResponse(*c), nil
}

func (s *service) GetAll(ctx context.Context, callerID string) ([]CompanyResponse, error) {
	cacheKey := listCacheKeyAll
	if s.ownerScoped {
		cacheKey = listCacheKeyPrefix + callerID
	}

	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, cacheKey).Result(); err == nil {
			var resp []CompanyResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	// singleflight collapses concurrent cache misses into one query
	v, err, _ := s.sf.Do(cacheKey, func() (interface{}, error) {
		var (
			companies []Company
			err       error
		)
		if s.ownerScoped {
			companies, err = s.repo.FindAllByOwner(ctx, callerID)
		} else {
			companies, err = s.repo.FindAll(ctx)
		}
		if err != nil {
			return nil, err
		}

		resp := mapToListResponse(companies)

		if s.rdb != nil {
			if jsonData, err := json.Marshal(resp); err == nil {
				s.rdb.Set(ctx, cacheKey, jsonData, listCacheTTL)
			}
		}

		return resp, nil
	})
	if err != nil {
		return nil, err
	}

	return v.([]CompanyResponse), nil
}

func (s *service) GetByID(ctx context.Context, id string) (CompanyResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return CompanyResponse{}, companyerrors.ErrInvalidCompanyID
	}

	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return CompanyResponse{}, companyerrors.ErrCompanyNotFound
		}
		return CompanyResponse{}, err
	}
	return mapToResponse(*c), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateCompanyRequest, partial bool) (CompanyResponse, error) {
	s.logger.Debug("update company requested",
		zap.String("company_id", id),
		zap.Bool("partial", partial),
	)

	if _, err := uuid.Parse(id); err != nil {
		return CompanyResponse{}, companyerrors.ErrInvalidCompanyID
	}
	if !partial && (req.Name == nil || strings.TrimSpace(*req.Name) == "") {
		return CompanyResponse{}, companyerrors.ErrNameRequired
	}

	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		s.logger.Error("update company begin tx failed", zap.Error(tx.Error))
		return CompanyResponse{}, tx.Error
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	c, err := qtx.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return CompanyResponse{}, companyerrors.ErrCompanyNotFound
		}
		return CompanyResponse{}, err
	}

	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return CompanyResponse{}, companyerrors.ErrNameRequired
		}
		c.Name = *req.Name
	}

	if err := qtx.Update(ctx, c); err != nil {
		s.logger.Error("update company persist failed", zap.Error(err))
		return CompanyResponse{}, err
	}

	if err := tx.Commit().Error; err != nil {
		s.logger.Error("update company commit failed", zap.Error(err))
		return CompanyResponse{}, err
	}

	s.invalidateListCache(ctx, c.UserID.String())
	s.logger.Info("update company success", zap.String("company_id", id))

	return mapToResponse(*c), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	s.logger.Debug("delete company requested", zap.String("company_id", id))

	if _, err := uuid.Parse(id); err != nil {
		return companyerrors.ErrInvalidCompanyID
	}

	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		s.logger.Error("delete company begin tx failed", zap.Error(tx.Error))
		return tx.Error
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	// A second delete of the same id must report not-found.
	c, err := qtx.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return companyerrors.ErrCompanyNotFound
		}
		return err
	}

	if err := qtx.Delete(ctx, id); err != nil {
		s.logger.Error("delete company failed", zap.Error(err))
		return err
	}

	if err := tx.Commit().Error; err != nil {
		s.logger.Error("delete company commit failed", zap.Error(err))
		return err
	}

	s.invalidateListCache(ctx, c.UserID.String())
	s.logger.Info("delete company success", zap.String("company_id", id))
	return nil
}

func (s *service) invalidateListCache(ctx context.Context, ownerID string) {
	if s.rdb == nil {
		return
	}
	keys := []string{listCacheKeyAll, listCacheKeyPrefix + ownerID}
	if err := s.rdb.Del(ctx, keys...).Err(); err != nil {
		s.logger.Error("failed to invalidate company list cache", zap.Error(err))
	}
}

func mapToResponse(c Company) CompanyResponse {
	return CompanyResponse{
		ID:        c.ID.String(),
		Name:      c.Name,
		UserID:    c.UserID.String(),
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func mapToListResponse(companies []Company) []CompanyResponse {
	resp := make([]CompanyResponse, len(companies))
	for i, c := range companies {
		resp[i] = mapToResponse(c)
	}
	return resp
}
