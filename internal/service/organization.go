// internal/service/organization.go
package service

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/crewforge/backoffice/internal/cache"
	"github.com/crewforge/backoffice/internal/domain"
	"github.com/crewforge/backoffice/internal/email"
	"github.com/crewforge/backoffice/internal/email/mailer"
	"github.com/crewforge/backoffice/internal/model"
	"github.com/crewforge/backoffice/internal/normalize"
	"github.com/crewforge/backoffice/internal/repository"
)

// ConnectionResetter evicts a cached tenant connection after the routing
// record changes. Satisfied by *tenant.Resolver.
type ConnectionResetter interface {
	Reset(orgID uuid.UUID)
}

// OrganizationService manages tenant lifecycle: creation, archival and
// datastore migration. Routing records are cached briefly; every mutation
// evicts the cache entry and resets the tenant connection where relevant.
type OrganizationService struct {
	repo         repository.OrganizationRepositoryIface
	resolver     ConnectionResetter
	events       *EventLogService
	emailService *email.Service
	orgCache     *cache.InMemoryCache
	validate     *validator.Validate
}

func NewOrganizationService(
	repo repository.OrganizationRepositoryIface,
	resolver ConnectionResetter,
	events *EventLogService,
	emailService *email.Service,
	orgCache *cache.InMemoryCache,
) *OrganizationService {
	return &OrganizationService{
		repo:         repo,
		resolver:     resolver,
		events:       events,
		emailService: emailService,
		orgCache:     orgCache,
		validate:     validator.New(),
	}
}

type CreateOrganizationInput struct {
	Name          string  `json:"name" validate:"required"`
	PrimaryDomain *string `json:"primary_domain,omitempty" validate:"omitempty,fqdn"`
	OwnerEmail    *string `json:"owner_email,omitempty" validate:"omitempty,email"`
}

// Create registers a new tenant on the shared datastore. Platform roles only.
func (s *OrganizationService) Create(ctx context.Context, actor domain.Actor, input CreateOrganizationInput) (*model.Organization, error) {
	if !actor.Privileged() {
		return nil, domain.Forbiddenf("only platform operators may create organizations")
	}
	if err := s.validate.Struct(input); err != nil {
		return nil, domain.BadRequestf("invalid organization: %v", err)
	}

	org := &model.Organization{
		Name:          strings.TrimSpace(input.Name),
		DatastoreType: model.DatastoreShared,
		Metadata:      model.JSONMap{},
		DatastoreLog:  model.DatastoreHistory{},
	}
	if input.PrimaryDomain != nil {
		d := strings.ToLower(strings.TrimSpace(*input.PrimaryDomain))
		org.PrimaryDomain = &d
	}
	if input.OwnerEmail != nil {
		e := normalize.Email(*input.OwnerEmail)
		org.OwnerEmail = &e
	}
	if actor.UserID != uuid.Nil {
		userID := actor.UserID
		org.CreatedByUserID = &userID
	}

	if err := s.repo.Create(ctx, org); err != nil {
		return nil, err
	}

	s.events.Record(ctx, EventInput{
		EventType:  "organization.created",
		Action:     "create",
		EntityType: "organization",
		EntityID:   &org.ID,
		Actor:      &actor,
		OrgID:      &org.ID,
	})
	return org, nil
}

// Get returns the organization record, served from the routing cache when
// fresh.
func (s *OrganizationService) Get(ctx context.Context, actor domain.Actor, orgID uuid.UUID) (*model.Organization, error) {
	if err := requireCoreAccess(actor, orgID); err != nil {
		return nil, err
	}
	return s.find(ctx, orgID)
}

// List returns a page of organizations. Platform roles only.
func (s *OrganizationService) List(ctx context.Context, actor domain.Actor, page, limit int) ([]*model.Organization, int64, error) {
	if !actor.Privileged() {
		return nil, 0, domain.Forbiddenf("only platform operators may list organizations")
	}
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 25
	}
	return s.repo.FindAllPaginated(ctx, (page-1)*limit, limit)
}

// RequireMutable loads the organization and rejects archived or legal-hold
// tenants. Every mutating core operation calls through here.
func (s *OrganizationService) RequireMutable(ctx context.Context, orgID uuid.UUID) (*model.Organization, error) {
	org, err := s.find(ctx, orgID)
	if err != nil {
		return nil, err
	}
	if org.ArchivedAt != nil {
		return nil, domain.Forbiddenf("organization %s is archived", orgID)
	}
	if org.LegalHold {
		return nil, domain.Forbiddenf("organization %s is under legal hold", orgID)
	}
	return org, nil
}

// Archive soft-deletes the organization. Idempotent; blocked under legal hold.
func (s *OrganizationService) Archive(ctx context.Context, actor domain.Actor, orgID uuid.UUID) (*model.Organization, error) {
	if !actor.Privileged() {
		return nil, domain.Forbiddenf("only platform operators may archive organizations")
	}
	org, err := s.repo.FindByID(ctx, orgID)
	if err != nil {
		return nil, err
	}
	if org.LegalHold {
		return nil, domain.Forbiddenf("organization %s is under legal hold", orgID)
	}
	if org.ArchivedAt != nil {
		return org, nil
	}

	now := time.Now().UTC()
	org.ArchivedAt = &now
	if err := s.repo.Update(ctx, org); err != nil {
		return nil, err
	}
	s.evict(ctx, orgID)

	s.events.Record(ctx, EventInput{
		EventType:  "organization.archived",
		Action:     "archive",
		EntityType: "organization",
		EntityID:   &org.ID,
		Actor:      &actor,
		OrgID:      &org.ID,
	})
	return org, nil
}

// Unarchive restores an archived organization. Idempotent.
func (s *OrganizationService) Unarchive(ctx context.Context, actor domain.Actor, orgID uuid.UUID) (*model.Organization, error) {
	if !actor.Privileged() {
		return nil, domain.Forbiddenf("only platform operators may unarchive organizations")
	}
	org, err := s.repo.FindByID(ctx, orgID)
	if err != nil {
		return nil, err
	}
	if org.ArchivedAt == nil {
		return org, nil
	}

	org.ArchivedAt = nil
	if err := s.repo.Update(ctx, org); err != nil {
		return nil, err
	}
	s.evict(ctx, orgID)

	s.events.Record(ctx, EventInput{
		EventType:  "organization.unarchived",
		Action:     "unarchive",
		EntityType: "organization",
		EntityID:   &org.ID,
		Actor:      &actor,
		OrgID:      &org.ID,
	})
	return org, nil
}

type SwitchDatastoreInput struct {
	DatastoreType string  `json:"datastore_type" validate:"required,oneof=shared dedicated"`
	DatabaseURI   *string `json:"database_uri,omitempty"`
	DatabaseName  *string `json:"database_name,omitempty"`
}

// SwitchDatastore repoints the organization at a different physical database,
// appends a history entry, resets the cached tenant connection and notifies
// the organization owner.
func (s *OrganizationService) SwitchDatastore(ctx context.Context, actor domain.Actor, orgID uuid.UUID, input SwitchDatastoreInput) (*model.Organization, error) {
	if !actor.Privileged() {
		return nil, domain.Forbiddenf("only platform operators may switch datastores")
	}
	if err := s.validate.Struct(input); err != nil {
		return nil, domain.BadRequestf("invalid datastore switch: %v", err)
	}

	toType := model.DatastoreType(input.DatastoreType)
	if toType == model.DatastoreDedicated && (input.DatabaseURI == nil || strings.TrimSpace(*input.DatabaseURI) == "") {
		return nil, domain.BadRequestf("a dedicated datastore requires a database URI")
	}

	org, err := s.repo.FindByID(ctx, orgID)
	if err != nil {
		return nil, err
	}
	if org.LegalHold {
		return nil, domain.Forbiddenf("organization %s is under legal hold", orgID)
	}

	now := time.Now().UTC()
	entry := model.DatastoreSwitch{
		FromType:   org.DatastoreType,
		ToType:     toType,
		FromURI:    org.DatabaseURI,
		ToURI:      input.DatabaseURI,
		SwitchedAt: now,
	}
	if actor.UserID != uuid.Nil {
		userID := actor.UserID
		entry.ActorID = &userID
	}

	org.DatastoreType = toType
	org.UseDedicatedDB = toType == model.DatastoreDedicated
	org.DatabaseURI = input.DatabaseURI
	org.DatabaseName = input.DatabaseName
	org.LastMigratedAt = &now
	org.DatastoreLog = append(org.DatastoreLog, entry)

	if err := s.repo.Update(ctx, org); err != nil {
		return nil, err
	}

	if s.resolver != nil {
		s.resolver.Reset(orgID)
	}
	s.evict(ctx, orgID)

	s.events.Record(ctx, EventInput{
		EventType:  "organization.datastore_switched",
		Action:     "switch_datastore",
		EntityType: "organization",
		EntityID:   &org.ID,
		Actor:      &actor,
		OrgID:      &org.ID,
		Metadata: model.JSONMap{
			"from_type": string(entry.FromType),
			"to_type":   string(entry.ToType),
		},
	})

	s.notifyOwnerMigrated(org, now)
	return org, nil
}

// notifyOwnerMigrated is best-effort; delivery failures never fail the switch.
func (s *OrganizationService) notifyOwnerMigrated(org *model.Organization, completedAt time.Time) {
	if s.emailService == nil || org.OwnerEmail == nil || *org.OwnerEmail == "" {
		return
	}

	ownerName := *org.OwnerEmail
	if at := strings.IndexByte(ownerName, '@'); at > 0 {
		ownerName = ownerName[:at]
	}
	err := mailer.SendDatastoreMigratedEmail(s.emailService, *org.OwnerEmail, mailer.DatastoreMigratedTemplateData{
		OwnerName:        ownerName,
		OrganizationName: org.Name,
		DatastoreType:    string(org.DatastoreType),
		CompletedAt:      completedAt.Format(time.RFC1123),
	})
	if err != nil {
		slog.Warn("sending datastore migration notice", "orgID", org.ID, "error", err)
	}
}

func (s *OrganizationService) find(ctx context.Context, orgID uuid.UUID) (*model.Organization, error) {
	key := "org:" + orgID.String()
	if s.orgCache != nil {
		if v, ok := s.orgCache.Get(ctx, key); ok {
			if org, ok := v.(*model.Organization); ok {
				return org, nil
			}
		}
	}

	org, err := s.repo.FindByID(ctx, orgID)
	if err != nil {
		return nil, err
	}
	if s.orgCache != nil {
		s.orgCache.Set(ctx, key, org)
	}
	return org, nil
}

func (s *OrganizationService) evict(ctx context.Context, orgID uuid.UUID) {
	if s.orgCache != nil {
		s.orgCache.Delete(ctx, "org:"+orgID.String())
	}
}
