package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/spec-kit/registration-service/internal/classify"
	"github.com/spec-kit/registration-service/internal/domain"
	"github.com/spec-kit/registration-service/internal/events"
	"github.com/spec-kit/registration-service/internal/persistence"
	"github.com/spec-kit/registration-service/internal/repository"
	"github.com/spec-kit/registration-service/internal/workflow"
)

const adminListVersionKey = "admin:services:version"

// ServiceView is one admin-list row: the raw record plus its derived fields.
// The derived fields are recomputed on every listing; none of them is stored.
type ServiceView struct {
	Record           domain.ServiceRecord    `json:"record"`
	CanonicalService domain.CanonicalService `json:"canonical_service"`
	StatusLabel      domain.StatusLabel      `json:"status_label"`
	Progress         domain.ProgressBucket   `json:"progress"`
}

// ServiceListFilter describes admin listing filters. Progress and Service
// filter on derived values and are applied after classification.
type ServiceListFilter struct {
	Progress   *domain.ProgressBucket
	Service    *domain.CanonicalService
	SearchTerm *string
	Limit      int
	Offset     int
}

// AdminService coordinates the admin service-list workflows.
type AdminService struct {
	records    repository.ServiceRecordRepository
	engine     *classify.Engine
	cache      *persistence.Redis
	cacheTTL   time.Duration
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// AdminDependencies bundles collaborators for the admin service.
type AdminDependencies struct {
	RecordRepo repository.ServiceRecordRepository
	Engine     *classify.Engine
	Cache      *persistence.Redis
	CacheTTL   time.Duration
	Dispatcher events.Dispatcher
	Logger     *zap.Logger
}

// NewAdminService constructs the service.
func NewAdminService(deps AdminDependencies) *AdminService {
	return &AdminService{
		records:    deps.RecordRepo,
		engine:     deps.Engine,
		cache:      deps.Cache,
		cacheTTL:   deps.CacheTTL,
		dispatcher: deps.Dispatcher,
		logger:     deps.Logger,
	}
}

// ListServices returns classified, derived views of the stored records.
func (s *AdminService) ListServices(ctx context.Context, filter ServiceListFilter) ([]ServiceView, error) {
	cacheKey, err := s.cacheKey(ctx, filter)
	if err == nil && cacheKey != "" {
		if views, ok := s.cachedViews(ctx, cacheKey); ok {
			return views, nil
		}
	}

	records, err := s.records.List(ctx, repository.ServiceRecordFilter{
		SearchTerm: filter.SearchTerm,
		Limit:      filter.Limit,
		Offset:     filter.Offset,
	})
	if err != nil {
		return nil, err
	}

	views := make([]ServiceView, 0, len(records))
	for _, rec := range records {
		view := ServiceView{
			Record:           rec,
			CanonicalService: s.engine.Classify(rec),
			StatusLabel:      workflow.DeriveStatusLabel(rec),
			Progress:         workflow.DeriveProgressBucket(rec),
		}
		if filter.Progress != nil && view.Progress != *filter.Progress {
			continue
		}
		if filter.Service != nil && view.CanonicalService != *filter.Service {
			continue
		}
		views = append(views, view)
	}

	if cacheKey != "" {
		s.storeViews(ctx, cacheKey, views)
	}
	return views, nil
}

// GetService returns the derived view for a single ticket.
func (s *AdminService) GetService(ctx context.Context, ticketID string) (*ServiceView, error) {
	rec, err := s.records.GetByTicketID(ctx, ticketID)
	if err != nil {
		return nil, err
	}
	return &ServiceView{
		Record:           *rec,
		CanonicalService: s.engine.Classify(*rec),
		StatusLabel:      workflow.DeriveStatusLabel(*rec),
		Progress:         workflow.DeriveProgressBucket(*rec),
	}, nil
}

// UpsertRecord writes a raw record and invalidates the cached list.
func (s *AdminService) UpsertRecord(ctx context.Context, rec *domain.ServiceRecord) error {
	rec.TicketID = strings.TrimSpace(rec.TicketID)
	if rec.TicketID == "" {
		return fmt.Errorf("ticket id is required")
	}
	if err := s.records.Upsert(ctx, rec); err != nil {
		return err
	}
	s.invalidateListCache(ctx)
	return nil
}

// UpdateStatus persists an admin-entered status string verbatim.
func (s *AdminService) UpdateStatus(ctx context.Context, ticketID, status string) error {
	rec, err := s.records.GetByTicketID(ctx, ticketID)
	if err != nil {
		return err
	}
	if err := s.records.UpdateStatus(ctx, ticketID, status); err != nil {
		return err
	}
	s.invalidateListCache(ctx)
	s.publishEvent(ctx, events.Event{
		Type:     events.EventServiceStatusChanged,
		TicketID: ticketID,
		Payload: events.ServiceStatusChangedPayload{
			OldStatus: rec.ServiceStatus,
			NewStatus: status,
		},
	})
	return nil
}

// UpdateProgress reduces a desired progress bucket to a status string and
// persists it. A detailed admin status that already implies the bucket is
// preserved and the write is skipped entirely.
func (s *AdminService) UpdateProgress(ctx context.Context, ticketID string, desired domain.ProgressBucket) (newStatus string, changed bool, err error) {
	rec, err := s.records.GetByTicketID(ctx, ticketID)
	if err != nil {
		return "", false, err
	}

	newStatus, changed = workflow.ReduceProgress(desired, rec.ServiceStatus)
	if !changed {
		return newStatus, false, nil
	}

	if err := s.records.UpdateStatus(ctx, ticketID, newStatus); err != nil {
		return "", false, err
	}
	s.invalidateListCache(ctx)
	s.publishEvent(ctx, events.Event{
		Type:     events.EventServiceStatusChanged,
		TicketID: ticketID,
		Payload: events.ServiceStatusChangedPayload{
			OldStatus: rec.ServiceStatus,
			NewStatus: newStatus,
			Progress:  desired,
		},
	})
	return newStatus, true, nil
}

// DeleteService removes a record permanently.
func (s *AdminService) DeleteService(ctx context.Context, ticketID string) error {
	rec, err := s.records.GetByTicketID(ctx, ticketID)
	if err != nil {
		return err
	}
	if err := s.records.Delete(ctx, ticketID); err != nil {
		return err
	}
	s.invalidateListCache(ctx)
	s.publishEvent(ctx, events.Event{
		Type:     events.EventServiceDeleted,
		TicketID: ticketID,
		Payload: events.ServiceDeletedPayload{
			CanonicalService: s.engine.Classify(*rec),
		},
	})
	return nil
}

// cacheKey builds a versioned key so invalidation is a single INCR rather
// than a key scan.
func (s *AdminService) cacheKey(ctx context.Context, filter ServiceListFilter) (string, error) {
	if s.cache == nil || s.cache.Client == nil || s.cacheTTL <= 0 {
		return "", nil
	}
	version, err := s.cache.Client.Get(ctx, adminListVersionKey).Int64()
	if err != nil && err != redis.Nil {
		return "", err
	}

	progress, svc, search := "", "", ""
	if filter.Progress != nil {
		progress = string(*filter.Progress)
	}
	if filter.Service != nil {
		svc = string(*filter.Service)
	}
	if filter.SearchTerm != nil {
		search = *filter.SearchTerm
	}
	return fmt.Sprintf("admin:services:v%d:%s|%s|%s|%d|%d", version, progress, svc, search, filter.Limit, filter.Offset), nil
}

func (s *AdminService) cachedViews(ctx context.Context, key string) ([]ServiceView, bool) {
	raw, err := s.cache.Client.Get(ctx, key).Bytes()
	if err != nil {
		return nil, false
	}
	var views []ServiceView
	if err := json.Unmarshal(raw, &views); err != nil {
		return nil, false
	}
	return views, true
}

func (s *AdminService) storeViews(ctx context.Context, key string, views []ServiceView) {
	raw, err := json.Marshal(views)
	if err != nil {
		return
	}
	if err := s.cache.Client.Set(ctx, key, raw, s.cacheTTL).Err(); err != nil {
		s.logger.Debug("cache store failed", zap.Error(err))
	}
}

func (s *AdminService) invalidateListCache(ctx context.Context) {
	if s.cache == nil || s.cache.Client == nil {
		return
	}
	if err := s.cache.Client.Incr(ctx, adminListVersionKey).Err(); err != nil {
		s.logger.Debug("cache invalidation failed", zap.Error(err))
	}
}

func (s *AdminService) publishEvent(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	event.ID = uuid.NewString()
	event.Timestamp = time.Now().UTC()
	if err := s.dispatcher.Publish(ctx, event); err != nil {
		s.logger.Warn("event publish failed", zap.String("type", string(event.Type)), zap.Error(err))
	}
}
