// internal/service/taxonomy.go
package service

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/crewforge/backoffice/internal/domain"
	"github.com/crewforge/backoffice/internal/model"
	"github.com/crewforge/backoffice/internal/normalize"
	"github.com/crewforge/backoffice/internal/repository"
)

// NamespaceEdgeType is the controlled vocabulary gating graph edge types.
const NamespaceEdgeType = "edge_type"

// ReservedEdgeTypeKeys can never be archived through this API; they are
// re-materialized as active whenever they go missing.
var ReservedEdgeTypeKeys = []string{
	"depends_on", "supports", "works_with", "primary_for",
	"assigned_to", "reports_to", "belongs_to",
}

// reservedKeys returns the reserved set for a namespace.
func reservedKeys(namespace string) []string {
	if namespace == NamespaceEdgeType {
		return ReservedEdgeTypeKeys
	}
	return nil
}

// TaxonomyService manages per-organization controlled vocabularies. Documents
// are last-write-wins at the row level; writes only happen when state changed.
type TaxonomyService struct {
	tenants  repository.TenantRepositoriesIface
	orgs     *OrganizationService
	events   *EventLogService
	validate *validator.Validate
}

func NewTaxonomyService(
	tenants repository.TenantRepositoriesIface,
	orgs *OrganizationService,
	events *EventLogService,
) *TaxonomyService {
	return &TaxonomyService{
		tenants:  tenants,
		orgs:     orgs,
		events:   events,
		validate: validator.New(),
	}
}

// Get returns the namespace document, auto-creating it (with reserved keys)
// when absent and self-healing missing reserved keys.
func (s *TaxonomyService) Get(ctx context.Context, actor domain.Actor, orgID uuid.UUID, namespace string) (*model.OrgTaxonomy, error) {
	if err := requireCoreAccess(actor, orgID); err != nil {
		return nil, err
	}
	if _, err := s.orgs.RequireMutable(ctx, orgID); err != nil {
		return nil, err
	}

	ns := normalize.Key(namespace)
	if ns == "" {
		return nil, domain.BadRequestf("invalid taxonomy namespace %q", namespace)
	}

	repo, err := s.tenants.Taxonomies(ctx, orgID)
	if err != nil {
		return nil, err
	}
	doc, err := s.loadOrCreate(ctx, repo, orgID, ns)
	if err != nil {
		return nil, err
	}

	if restoreReserved(doc, ns) {
		if err := repo.Save(ctx, doc); err != nil {
			return nil, err
		}
	}
	return doc, nil
}

// EnsureKeysActive upserts-and-reactivates the given keys. Idempotent: a
// second call with the same input persists nothing.
func (s *TaxonomyService) EnsureKeysActive(ctx context.Context, actor domain.Actor, orgID uuid.UUID, namespace string, keys []string) (*model.OrgTaxonomy, error) {
	if err := requireCoreAccess(actor, orgID); err != nil {
		return nil, err
	}
	if _, err := s.orgs.RequireMutable(ctx, orgID); err != nil {
		return nil, err
	}

	ns := normalize.Key(namespace)
	if ns == "" {
		return nil, domain.BadRequestf("invalid taxonomy namespace %q", namespace)
	}

	// Keys that normalize to nothing are dropped, not rejected.
	normalized := make([]string, 0, len(keys))
	seen := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		nk := normalize.Key(k)
		if nk == "" {
			continue
		}
		if _, dup := seen[nk]; dup {
			continue
		}
		seen[nk] = struct{}{}
		normalized = append(normalized, nk)
	}

	repo, err := s.tenants.Taxonomies(ctx, orgID)
	if err != nil {
		return nil, err
	}
	doc, err := s.loadOrCreate(ctx, repo, orgID, ns)
	if err != nil {
		return nil, err
	}

	changed := false
	for _, key := range normalized {
		if ensureActive(doc, key) {
			changed = true
		}
	}
	if restoreReserved(doc, ns) {
		changed = true
	}

	if changed {
		if err := repo.Save(ctx, doc); err != nil {
			return nil, err
		}
	}
	return doc, nil
}

type TaxonomyValueInput struct {
	Key       string        `json:"key" validate:"required"`
	Label     string        `json:"label"`
	SortOrder *int          `json:"sort_order,omitempty"`
	Color     *string       `json:"color,omitempty"`
	Metadata  model.JSONMap `json:"metadata,omitempty"`
}

type PutTaxonomyInput struct {
	Values []TaxonomyValueInput `json:"values" validate:"required,dive"`
}

// Put reconciles the namespace to the desired value list: listed keys become
// or stay active (unspecified fields carried over from the prior value),
// unlisted keys are archived, reserved keys are force-included active.
func (s *TaxonomyService) Put(ctx context.Context, actor domain.Actor, orgID uuid.UUID, namespace string, input PutTaxonomyInput) (*model.OrgTaxonomy, error) {
	if err := requireCoreAccess(actor, orgID); err != nil {
		return nil, err
	}
	if _, err := s.orgs.RequireMutable(ctx, orgID); err != nil {
		return nil, err
	}

	ns := normalize.Key(namespace)
	if ns == "" {
		return nil, domain.BadRequestf("invalid taxonomy namespace %q", namespace)
	}
	if err := s.validate.Struct(input); err != nil {
		return nil, domain.BadRequestf("invalid taxonomy values: %v", err)
	}

	desired := make([]TaxonomyValueInput, 0, len(input.Values))
	seen := make(map[string]struct{}, len(input.Values))
	for _, v := range input.Values {
		nk := normalize.Key(v.Key)
		if nk == "" {
			continue
		}
		if _, dup := seen[nk]; dup {
			return nil, domain.BadRequestf("duplicate taxonomy key %q in request", nk)
		}
		seen[nk] = struct{}{}
		v.Key = nk
		desired = append(desired, v)
	}

	repo, err := s.tenants.Taxonomies(ctx, orgID)
	if err != nil {
		return nil, err
	}
	doc, err := s.loadOrCreate(ctx, repo, orgID, ns)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	next := make(model.TaxonomyValues, 0, len(desired))

	// Desired keys first, in request order, carrying over prior fields.
	for _, v := range desired {
		value := model.TaxonomyValue{
			Key:       v.Key,
			Label:     v.Label,
			SortOrder: v.SortOrder,
			Color:     v.Color,
			Metadata:  v.Metadata,
		}
		if prior := doc.Values.Find(v.Key); prior != nil {
			if value.Label == "" {
				value.Label = prior.Label
			}
			if value.SortOrder == nil {
				value.SortOrder = prior.SortOrder
			}
			if value.Color == nil {
				value.Color = prior.Color
			}
			if value.Metadata == nil {
				value.Metadata = prior.Metadata
			}
		}
		if value.Label == "" {
			value.Label = normalize.LabelFromKey(v.Key)
		}
		next = append(next, value)
	}

	// Unlisted keys: reserved stay active, everything else is archived.
	reserved := reservedSet(ns)
	for _, prior := range doc.Values {
		if _, listed := seen[prior.Key]; listed {
			continue
		}
		if _, isReserved := reserved[prior.Key]; isReserved {
			prior.ArchivedAt = nil
			next = append(next, prior)
			continue
		}
		if prior.ArchivedAt == nil {
			archivedAt := now
			prior.ArchivedAt = &archivedAt
		}
		next = append(next, prior)
	}

	doc.Values = next
	// Reserved keys absent from both the prior doc and the request.
	restoreReserved(doc, ns)

	if err := repo.Save(ctx, doc); err != nil {
		return nil, err
	}

	activeCount := 0
	archivedCount := 0
	for _, v := range doc.Values {
		if v.Active() {
			activeCount++
		} else {
			archivedCount++
		}
	}
	s.events.Record(ctx, EventInput{
		EventType:  "taxonomy.updated",
		Action:     "put",
		EntityType: "org_taxonomy",
		EntityID:   &doc.ID,
		Actor:      &actor,
		OrgID:      &orgID,
		Metadata: model.JSONMap{
			"namespace": ns,
			"active":    activeCount,
			"archived":  archivedCount,
			"reserved":  len(reserved),
		},
	})
	return doc, nil
}

// ActiveKeySet returns the active keys of a namespace as a lookup set.
func (s *TaxonomyService) ActiveKeySet(ctx context.Context, actor domain.Actor, orgID uuid.UUID, namespace string) (map[string]struct{}, error) {
	doc, err := s.Get(ctx, actor, orgID, namespace)
	if err != nil {
		return nil, err
	}
	set := make(map[string]struct{})
	for _, k := range doc.Values.ActiveKeys() {
		set[k] = struct{}{}
	}
	return set, nil
}

func (s *TaxonomyService) loadOrCreate(ctx context.Context, repo repository.TaxonomyRepositoryIface, orgID uuid.UUID, ns string) (*model.OrgTaxonomy, error) {
	doc, err := repo.FindByNamespace(ctx, orgID, ns)
	if err != nil {
		return nil, err
	}
	if doc != nil {
		return doc, nil
	}

	doc = &model.OrgTaxonomy{
		OrgID:     orgID,
		Namespace: ns,
		Values:    model.TaxonomyValues{},
	}
	restoreReserved(doc, ns)
	if err := repo.Create(ctx, doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// ensureActive inserts key as active or reactivates it; reports whether the
// document changed.
func ensureActive(doc *model.OrgTaxonomy, key string) bool {
	if existing := doc.Values.Find(key); existing != nil {
		if existing.ArchivedAt == nil {
			return false
		}
		existing.ArchivedAt = nil
		return true
	}
	doc.Values = append(doc.Values, model.TaxonomyValue{
		Key:   key,
		Label: normalize.LabelFromKey(key),
	})
	return true
}

// restoreReserved re-materializes any missing or archived reserved keys;
// reports whether the document changed.
func restoreReserved(doc *model.OrgTaxonomy, ns string) bool {
	changed := false
	for _, key := range reservedKeys(ns) {
		if ensureActive(doc, key) {
			changed = true
		}
	}
	return changed
}

func reservedSet(ns string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, k := range reservedKeys(ns) {
		set[k] = struct{}{}
	}
	return set
}
