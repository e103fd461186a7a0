package offer

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"jobtrack/internal/company"
	companyerrors "jobtrack/internal/company/errors"
	"jobtrack/internal/events"
	"jobtrack/internal/messaging/kafka"
	offererrors "jobtrack/internal/offer/errors"
	"jobtrack/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Service interface {
	Create(ctx context.Context, ownerID string, req CreateOfferRequest) (OfferResponse, error)
	GetAll(ctx context.Context, callerID string) ([]OfferResponse, error)
	GetByID(ctx context.Context, id string) (OfferResponse, error)
	Update(ctx context.Context, id string, req UpdateOfferRequest, partial bool) (OfferResponse, error)
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

// NewServiceWithOutbox additionally records an offer_received event whenever
// an offer is created, in the same transaction as the insert.
func NewServiceWithOutbox(
	db *gorm.DB,
	repo Repository,
	companyRepo company.Repository,
	outboxRepo kafka.OutboxRepository,
	ownerScoped bool,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("offer.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("offer.service")
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

func (s *service) Create(ctx context.Context, ownerID string, req CreateOfferRequest) (OfferResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create offer requested",
		zap.String("request_id", rid),
		zap.String("owner_id", ownerID),
	)

	ownerUUID, err := uuid.Parse(ownerID)
	if err != nil {
		return OfferResponse{}, offererrors.ErrInvalidOwnerID
	}

	var companyUUID *uuid.UUID
	if req.CompanyID != nil {
		parsed, err := uuid.Parse(*req.CompanyID)
		if err != nil {
			return OfferResponse{}, offererrors.ErrInvalidCompanyID
		}
		companyUUID = &parsed
	}

	receivedAt, err := parseTimestamp(req.ReceivedAt)
	if err != nil {
		return OfferResponse{}, err
	}

	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		s.logger.Error("create offer begin tx failed", zap.Error(tx.Error))
		return OfferResponse{}, tx.Error
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if companyUUID != nil {
		if _, err := s.companyRepo.WithTx(tx).FindByID(ctx, companyUUID.String()); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return OfferResponse{}, companyerrors.ErrCompanyNotFound
			}
			return OfferResponse{}, err
		}
	}

	o := &Offer{
		ID:         uuid.New(),
		UserID:     ownerUUID,
		CompanyID:  companyUUID,
		Notes:      req.Notes,
		CTC:        req.CTC,
		ReceivedAt: receivedAt,
		IsAccepted: req.IsAccepted,
	}

	if err := qtx.Create(ctx, o); err != nil {
		s.logger.Error("create offer persist failed", zap.Error(err))
		return OfferResponse{}, err
	}

	if s.outbox != nil {
		if err := s.enqueueReceivedEvent(ctx, tx, rid, o); err != nil {
			return OfferResponse{}, err
		}
	}

	if err := tx.Commit().Error; err != nil {
		s.logger.Error("create offer commit failed", zap.Error(err))
		return OfferResponse{}, err
	}

	s.logger.Info("create offer success",
		zap.String("request_id", rid),
		zap.String("offer_id", o.ID.String()),
	)

	return mapToResponse(*o), nil
}

func (s *service) GetAll(ctx context.Context, callerID string) ([]OfferResponse, error) {
	var (
		offers []Offer
		err    error
	)
	if s.ownerScoped {
		offers, err = s.repo.FindAllByOwner(ctx, callerID)
	} else {
		offers, err = s.repo.FindAll(ctx)
	}
	if err != nil {
		return nil, err
	}
	return mapToListResponse(offers), nil
}

func (s *service) GetByID(ctx context.Context, id string) (OfferResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return OfferResponse{}, offererrors.ErrInvalidOfferID
	}

	o, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return OfferResponse{}, offererrors.ErrOfferNotFound
		}
		return OfferResponse{}, err
	}
	return mapToResponse(*o), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateOfferRequest, partial bool) (OfferResponse, error) {
	s.logger.Debug("update offer requested",
		zap.String("offer_id", id),
		zap.Bool("partial", partial),
	)

	if _, err := uuid.Parse(id); err != nil {
		return OfferResponse{}, offererrors.ErrInvalidOfferID
	}
	if !partial && req.ReceivedAt == nil {
		return OfferResponse{}, offererrors.ErrReceivedAtRequired
	}

	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		s.logger.Error("update offer begin tx failed", zap.Error(tx.Error))
		return OfferResponse{}, tx.Error
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	o, err := qtx.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return OfferResponse{}, offererrors.ErrOfferNotFound
		}
		return OfferResponse{}, err
	}

	wasAccepted := o.IsAccepted

	if req.Notes != nil {
		o.Notes = req.Notes
	} else if !partial {
		o.Notes = nil
	}
	if req.CTC != nil {
		o.CTC = req.CTC
	} else if !partial {
		o.CTC = nil
	}
	if req.ReceivedAt != nil {
		receivedAt, err := parseTimestamp(*req.ReceivedAt)
		if err != nil {
			return OfferResponse{}, err
		}
		o.ReceivedAt = receivedAt
	}
	if req.IsAccepted != nil {
		o.IsAccepted = *req.IsAccepted
	} else if !partial {
		o.IsAccepted = false
	}

	if err := qtx.Update(ctx, o); err != nil {
		s.logger.Error("update offer persist failed", zap.Error(err))
		return OfferResponse{}, err
	}

	if s.outbox != nil && !wasAccepted && o.IsAccepted {
		if err := s.enqueueReceivedEvent(ctx, tx, contextutil.GetRequestID(ctx), o); err != nil {
			return OfferResponse{}, err
		}
	}

	if err := tx.Commit().Error; err != nil {
		s.logger.Error("update offer commit failed", zap.Error(err))
		return OfferResponse{}, err
	}

	s.logger.Info("update offer success", zap.String("offer_id", id))
	return mapToResponse(*o), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	s.logger.Debug("delete offer requested", zap.String("offer_id", id))

	if _, err := uuid.Parse(id); err != nil {
		return offererrors.ErrInvalidOfferID
	}

	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		s.logger.Error("delete offer begin tx failed", zap.Error(tx.Error))
		return tx.Error
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if _, err := qtx.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return offererrors.ErrOfferNotFound
		}
		return err
	}

	if err := qtx.Delete(ctx, id); err != nil {
		s.logger.Error("delete offer failed", zap.Error(err))
		return err
	}

	if err := tx.Commit().Error; err != nil {
		s.logger.Error("delete offer commit failed", zap.Error(err))
		return err
	}

	s.logger.Info("delete offer success", zap.String("offer_id", id))
	return nil
}

func (s *service) enqueueReceivedEvent(ctx context.Context, tx *gorm.DB, rid string, o *Offer) error {
	event := events.OfferReceivedEvent{
		EventType:  "offer_received",
		RequestID:  rid,
		OfferID:    o.ID.String(),
		UserID:     o.UserID.String(),
		IsAccepted: o.IsAccepted,
		OccurredAt: time.Now().UTC(),
	}
	if o.CompanyID != nil {
		event.CompanyID = o.CompanyID.String()
	}

	payload, err := json.Marshal(event)
	if err != nil {
		s.logger.Error("marshal event failed", zap.String("request_id", rid), zap.Error(err))
		return err
	}

	if err := s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     rid,
		AggregateType: "offer",
		AggregateID:   o.ID.String(),
		EventType:     event.EventType,
		Topic:         events.OfferReceivedTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	}); err != nil {
		s.logger.Error("offer outbox persist failed",
			zap.String("offer_id", o.ID.String()),
			zap.Error(err),
		)
		return err
	}
	return nil
}

func parseTimestamp(v string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		return time.Time{}, offererrors.ErrInvalidReceivedAt
	}
	return t, nil
}

func mapToResponse(o Offer) OfferResponse {
	resp := OfferResponse{
		ID:         o.ID.String(),
		UserID:     o.UserID.String(),
		Notes:      o.Notes,
		CTC:        o.CTC,
		ReceivedAt: o.ReceivedAt,
		IsAccepted: o.IsAccepted,
		CreatedAt:  o.CreatedAt,
		UpdatedAt:  o.UpdatedAt,
	}
	if o.CompanyID != nil {
		id := o.CompanyID.String()
		resp.CompanyID = &id
	}
	return resp
}

func mapToListResponse(offers []Offer) []OfferResponse {
	resp := make([]OfferResponse, len(offers))
	for i, o := range offers {
		resp[i] = mapToResponse(o)
	}
	return resp
}
