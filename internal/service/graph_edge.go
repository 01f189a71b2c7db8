// internal/service/graph_edge.go
package service

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/crewforge/backoffice/internal/domain"
	"github.com/crewforge/backoffice/internal/model"
	"github.com/crewforge/backoffice/internal/normalize"
	"github.com/crewforge/backoffice/internal/repository"
)

// endpointRule is one allowed (from, to) node-type pair for an edge type.
type endpointRule struct {
	From model.NodeType
	To   model.NodeType
}

// edgeRules is the static compatibility table. An edge type with no entry
// cannot be created, active taxonomy key or not.
var edgeRules = map[string][]endpointRule{
	"depends_on":  {{From: model.NodeOrgLocation, To: model.NodeOrgLocation}},
	"supports":    {{From: model.NodeOrgLocation, To: model.NodeOrgLocation}},
	"works_with":  {{From: model.NodePerson, To: model.NodePerson}},
	"reports_to":  {{From: model.NodePerson, To: model.NodePerson}},
	"primary_for": {{From: model.NodePerson, To: model.NodeCompany}, {From: model.NodePerson, To: model.NodeCompanyLocation}},
}

// allowedDirections renders the rule list for error messages.
func allowedDirections(rules []endpointRule) string {
	parts := make([]string, 0, len(rules))
	for _, r := range rules {
		parts = append(parts, string(r.From)+" -> "+string(r.To))
	}
	return strings.Join(parts, ", ")
}

// GraphEdgeService manages typed relationships between CRM nodes. The
// application-level uniqueness check is a fast path; the partial unique index
// on the identity tuple is the authoritative guard under concurrency.
type GraphEdgeService struct {
	tenants    repository.TenantRepositoriesIface
	orgs       *OrganizationService
	taxonomies *TaxonomyService
	events     *EventLogService
	validate   *validator.Validate
}

func NewGraphEdgeService(
	tenants repository.TenantRepositoriesIface,
	orgs *OrganizationService,
	taxonomies *TaxonomyService,
	events *EventLogService,
) *GraphEdgeService {
	return &GraphEdgeService{
		tenants:    tenants,
		orgs:       orgs,
		taxonomies: taxonomies,
		events:     events,
		validate:   validator.New(),
	}
}

type CreateEdgeInput struct {
	EdgeTypeKey   string          `json:"edge_type_key" validate:"required"`
	FromNodeType  string          `json:"from_node_type" validate:"required"`
	FromNodeID    uuid.UUID       `json:"from_node_id" validate:"required"`
	ToNodeType    string          `json:"to_node_type" validate:"required"`
	ToNodeID      uuid.UUID       `json:"to_node_id" validate:"required"`
	Metadata      json.RawMessage `json:"metadata,omitempty"`
	EffectiveFrom *time.Time      `json:"effective_from,omitempty"`
	EffectiveTo   *time.Time      `json:"effective_to,omitempty"`
}

// Create validates and persists a new edge.
func (s *GraphEdgeService) Create(ctx context.Context, actor domain.Actor, orgID uuid.UUID, input CreateEdgeInput) (*model.GraphEdge, error) {
	if err := requireCoreAccess(actor, orgID); err != nil {
		return nil, err
	}
	if _, err := s.orgs.RequireMutable(ctx, orgID); err != nil {
		return nil, err
	}
	if err := s.validate.Struct(input); err != nil {
		return nil, domain.BadRequestf("invalid graph edge: %v", err)
	}

	fromType, ok := model.ParseNodeType(input.FromNodeType)
	if !ok {
		return nil, domain.BadRequestf("unknown from node type %q", input.FromNodeType)
	}
	toType, ok := model.ParseNodeType(input.ToNodeType)
	if !ok {
		return nil, domain.BadRequestf("unknown to node type %q", input.ToNodeType)
	}

	edgeTypeKey := normalize.Key(input.EdgeTypeKey)
	if edgeTypeKey == "" {
		return nil, domain.BadRequestf("invalid edge type key %q", input.EdgeTypeKey)
	}
	activeKeys, err := s.taxonomies.ActiveKeySet(ctx, actor, orgID, NamespaceEdgeType)
	if err != nil {
		return nil, err
	}
	if _, active := activeKeys[edgeTypeKey]; !active {
		return nil, domain.BadRequestf("edge type %q is not an active key in the %s namespace", edgeTypeKey, NamespaceEdgeType)
	}

	if err := checkCompatibility(edgeTypeKey, fromType, toType); err != nil {
		return nil, err
	}

	if fromType == toType && input.FromNodeID == input.ToNodeID {
		return nil, domain.BadRequestf("self-edges are not allowed (%s %s)", fromType, input.FromNodeID)
	}

	metadata, err := parseMetadata(input.Metadata)
	if err != nil {
		return nil, err
	}

	nodes, err := s.tenants.Nodes(ctx, orgID)
	if err != nil {
		return nil, err
	}
	if err := s.requireNode(ctx, nodes, orgID, fromType, input.FromNodeID); err != nil {
		return nil, err
	}
	if err := s.requireNode(ctx, nodes, orgID, toType, input.ToNodeID); err != nil {
		return nil, err
	}

	edges, err := s.tenants.GraphEdges(ctx, orgID)
	if err != nil {
		return nil, err
	}

	edge := &model.GraphEdge{
		OrgID:         orgID,
		EdgeTypeKey:   edgeTypeKey,
		FromNodeType:  fromType,
		FromNodeID:    input.FromNodeID,
		ToNodeType:    toType,
		ToNodeID:      input.ToNodeID,
		Metadata:      metadata,
		EffectiveFrom: input.EffectiveFrom,
		EffectiveTo:   input.EffectiveTo,
	}

	existing, err := edges.FindActiveByIdentity(ctx, orgID, edge.Identity(), nil)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.Conflictf("an active %s edge from %s %s to %s %s already exists",
			edgeTypeKey, fromType, input.FromNodeID, toType, input.ToNodeID)
	}

	if err := edges.Create(ctx, edge); err != nil {
		return nil, err
	}

	s.events.Record(ctx, EventInput{
		EventType:  "graph_edge.created",
		Action:     "create",
		EntityType: "graph_edge",
		EntityID:   &edge.ID,
		Actor:      &actor,
		OrgID:      &orgID,
		Metadata: model.JSONMap{
			"edge_type_key":  edgeTypeKey,
			"from_node_type": string(fromType),
			"to_node_type":   string(toType),
		},
	})
	return edge, nil
}

type ListEdgesInput struct {
	EdgeTypeKey     string
	FromNodeType    string
	FromNodeID      *uuid.UUID
	ToNodeType      string
	ToNodeID        *uuid.UUID
	IncludeArchived bool
	// Page/Limit of zero means "return all".
	Page  int
	Limit int
}

type EdgePage struct {
	Data  []*model.GraphEdge `json:"data"`
	Total int64              `json:"total"`
	Page  int                `json:"page"`
	Limit int                `json:"limit"`
}

// List returns scoped edges, newest first. When no pagination parameters are
// supplied every match is returned in one page.
func (s *GraphEdgeService) List(ctx context.Context, actor domain.Actor, orgID uuid.UUID, input ListEdgesInput) (*EdgePage, error) {
	if err := requireCoreAccess(actor, orgID); err != nil {
		return nil, err
	}
	if _, err := s.orgs.RequireMutable(ctx, orgID); err != nil {
		return nil, err
	}

	filter := repository.EdgeFilter{
		EdgeTypeKey:     normalize.Key(input.EdgeTypeKey),
		FromNodeID:      input.FromNodeID,
		ToNodeID:        input.ToNodeID,
		IncludeArchived: input.IncludeArchived,
	}
	if input.FromNodeType != "" {
		nt, ok := model.ParseNodeType(input.FromNodeType)
		if !ok {
			return nil, domain.BadRequestf("unknown from node type %q", input.FromNodeType)
		}
		filter.FromNodeType = nt
	}
	if input.ToNodeType != "" {
		nt, ok := model.ParseNodeType(input.ToNodeType)
		if !ok {
			return nil, domain.BadRequestf("unknown to node type %q", input.ToNodeType)
		}
		filter.ToNodeType = nt
	}

	edges, err := s.tenants.GraphEdges(ctx, orgID)
	if err != nil {
		return nil, err
	}

	paginated := input.Page > 0 || input.Limit > 0
	page := input.Page
	if page < 1 {
		page = 1
	}
	limit := input.Limit
	if limit < 1 {
		limit = 25
	}
	if limit > 100 {
		limit = 100
	}

	offset := (page - 1) * limit
	if !paginated {
		// "Return all" mode still goes through the paged query with an
		// effectively unbounded window.
		offset = 0
		limit = -1
	}
	rows, total, err := edges.ListPage(ctx, orgID, filter, offset, limit)
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []*model.GraphEdge{}
	}
	if !paginated {
		limit = len(rows)
	}
	return &EdgePage{Data: rows, Total: total, Page: page, Limit: limit}, nil
}

// GetByID returns one edge; archived edges require includeArchived.
func (s *GraphEdgeService) GetByID(ctx context.Context, actor domain.Actor, orgID, id uuid.UUID, includeArchived bool) (*model.GraphEdge, error) {
	if err := requireCoreAccess(actor, orgID); err != nil {
		return nil, err
	}
	if _, err := s.orgs.RequireMutable(ctx, orgID); err != nil {
		return nil, err
	}

	edges, err := s.tenants.GraphEdges(ctx, orgID)
	if err != nil {
		return nil, err
	}
	edge, err := edges.FindByID(ctx, orgID, id)
	if err != nil {
		return nil, err
	}
	if edge.ArchivedAt != nil && !includeArchived {
		return nil, domain.NotFoundf("graph edge %s not found", id)
	}
	return edge, nil
}

// Archive soft-deletes an edge. Idempotent; blocked under legal hold.
func (s *GraphEdgeService) Archive(ctx context.Context, actor domain.Actor, orgID, id uuid.UUID) (*model.GraphEdge, error) {
	if err := requireCoreAccess(actor, orgID); err != nil {
		return nil, err
	}
	if _, err := s.orgs.RequireMutable(ctx, orgID); err != nil {
		return nil, err
	}

	edges, err := s.tenants.GraphEdges(ctx, orgID)
	if err != nil {
		return nil, err
	}
	edge, err := edges.FindByID(ctx, orgID, id)
	if err != nil {
		return nil, err
	}
	if edge.LegalHold {
		return nil, domain.Forbiddenf("graph edge %s is under legal hold", id)
	}
	if edge.ArchivedAt == nil {
		now := time.Now().UTC()
		edge.ArchivedAt = &now
		if err := edges.Save(ctx, edge); err != nil {
			return nil, err
		}
	}

	// Recorded on repeat calls too; the audit trail mirrors the request stream.
	s.events.Record(ctx, EventInput{
		EventType:  "graph_edge.archived",
		Action:     "archive",
		EntityType: "graph_edge",
		EntityID:   &edge.ID,
		Actor:      &actor,
		OrgID:      &orgID,
	})
	return edge, nil
}

// Unarchive restores an edge after re-checking active-identity uniqueness.
// Idempotent; blocked under legal hold.
func (s *GraphEdgeService) Unarchive(ctx context.Context, actor domain.Actor, orgID, id uuid.UUID) (*model.GraphEdge, error) {
	if err := requireCoreAccess(actor, orgID); err != nil {
		return nil, err
	}
	if _, err := s.orgs.RequireMutable(ctx, orgID); err != nil {
		return nil, err
	}

	edges, err := s.tenants.GraphEdges(ctx, orgID)
	if err != nil {
		return nil, err
	}
	edge, err := edges.FindByID(ctx, orgID, id)
	if err != nil {
		return nil, err
	}
	if edge.LegalHold {
		return nil, domain.Forbiddenf("graph edge %s is under legal hold", id)
	}
	if edge.ArchivedAt != nil {
		collision, err := edges.FindActiveByIdentity(ctx, orgID, edge.Identity(), &edge.ID)
		if err != nil {
			return nil, err
		}
		if collision != nil {
			return nil, domain.Conflictf("unarchiving edge %s would collide with active edge %s", id, collision.ID)
		}

		edge.ArchivedAt = nil
		if err := edges.Save(ctx, edge); err != nil {
			return nil, err
		}
	}

	s.events.Record(ctx, EventInput{
		EventType:  "graph_edge.unarchived",
		Action:     "unarchive",
		EntityType: "graph_edge",
		EntityID:   &edge.ID,
		Actor:      &actor,
		OrgID:      &orgID,
	})
	return edge, nil
}

// checkCompatibility validates the (edgeTypeKey, fromType, toType) triple
// against the static table.
func checkCompatibility(edgeTypeKey string, fromType, toType model.NodeType) error {
	rules, ok := edgeRules[edgeTypeKey]
	if !ok {
		return domain.BadRequestf("edge type %q has no compatibility rule; allowed types: %s",
			edgeTypeKey, strings.Join(ruleKeys(), ", "))
	}
	for _, r := range rules {
		if r.From == fromType && r.To == toType {
			return nil
		}
	}
	return domain.BadRequestf("edge type %q does not allow %s -> %s; allowed: %s",
		edgeTypeKey, fromType, toType, allowedDirections(rules))
}

func ruleKeys() []string {
	keys := make([]string, 0, len(edgeRules))
	for _, k := range []string{"depends_on", "supports", "works_with", "reports_to", "primary_for"} {
		if _, ok := edgeRules[k]; ok {
			keys = append(keys, k)
		}
	}
	return keys
}

// parseMetadata accepts only a JSON object (or nothing).
func parseMetadata(raw json.RawMessage) (model.JSONMap, error) {
	if len(raw) == 0 {
		return model.JSONMap{}, nil
	}
	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "" || trimmed == "null" {
		return model.JSONMap{}, nil
	}
	var metadata model.JSONMap
	if err := json.Unmarshal(raw, &metadata); err != nil || metadata == nil {
		return nil, domain.BadRequestf("metadata must be a JSON object")
	}
	return metadata, nil
}

func (s *GraphEdgeService) requireNode(ctx context.Context, nodes repository.NodeRepositoryIface, orgID uuid.UUID, nodeType model.NodeType, nodeID uuid.UUID) error {
	exists, err := nodes.ExistsActive(ctx, orgID, nodeType, nodeID)
	if err != nil {
		return err
	}
	if !exists {
		return domain.NotFoundf("%s %s not found in organization scope", nodeType, nodeID)
	}
	return nil
}
