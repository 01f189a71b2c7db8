// internal/service/crm_context.go
package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/crewforge/backoffice/internal/domain"
	"github.com/crewforge/backoffice/internal/model"
	"github.com/crewforge/backoffice/internal/repository"
)

// CrmContextDocument is the uniform read-side projection handed to downstream
// retrieval consumers. Never persisted.
type CrmContextDocument struct {
	DocID       string        `json:"doc_id"`
	OrgID       uuid.UUID     `json:"org_id"`
	EntityType  string        `json:"entity_type"`
	EntityID    uuid.UUID     `json:"entity_id"`
	Title       string        `json:"title"`
	Text        string        `json:"text"`
	Metadata    model.JSONMap `json:"metadata"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
	ArchivedAt  *time.Time    `json:"archived_at,omitempty"`
	PIIStripped bool          `json:"pii_stripped"`
	LegalHold   bool          `json:"legal_hold"`
}

// DocID builds the deterministic document identifier.
func DocID(entityType string, orgID, entityID uuid.UUID) string {
	return fmt.Sprintf("crm:%s:%s:%s", entityType, orgID, entityID)
}

// ContextEntityTypes lists the exportable entity types.
var ContextEntityTypes = []string{
	"company", "company_location", "person", "org_location", "graph_edge",
}

// CrmContextService projects CRM entities into context documents.
type CrmContextService struct {
	tenants repository.TenantRepositoriesIface
	orgs    *OrganizationService
}

func NewCrmContextService(tenants repository.TenantRepositoriesIface, orgs *OrganizationService) *CrmContextService {
	return &CrmContextService{tenants: tenants, orgs: orgs}
}

type ListDocumentsInput struct {
	EntityType      string
	IncludeArchived bool
	Page            int
	Limit           int
}

type DocumentPage struct {
	Data  []*CrmContextDocument `json:"data"`
	Total int64                 `json:"total"`
	Page  int                   `json:"page"`
	Limit int                   `json:"limit"`
}

// ListDocuments exports one page of documents for an entity type, sorted most
// recently updated first with id as the tiebreaker, so identical data always
// pages identically.
func (s *CrmContextService) ListDocuments(ctx context.Context, actor domain.Actor, orgID uuid.UUID, input ListDocumentsInput) (*DocumentPage, error) {
	if err := requireCoreAccess(actor, orgID); err != nil {
		return nil, err
	}
	if _, err := s.orgs.RequireMutable(ctx, orgID); err != nil {
		return nil, err
	}

	page := input.Page
	if page < 1 {
		page = 1
	}
	limit := input.Limit
	if limit < 1 {
		limit = 100
	}
	if limit > 250 {
		limit = 250
	}
	offset := (page - 1) * limit

	var (
		docs  []*CrmContextDocument
		total int64
		err   error
	)
	switch input.EntityType {
	case "person":
		docs, total, err = s.personDocuments(ctx, orgID, input.IncludeArchived, offset, limit)
	case "company":
		docs, total, err = s.companyDocuments(ctx, orgID, input.IncludeArchived, offset, limit)
	case "company_location":
		docs, total, err = s.companyLocationDocuments(ctx, orgID, input.IncludeArchived, offset, limit)
	case "org_location":
		docs, total, err = s.officeDocuments(ctx, orgID, input.IncludeArchived, offset, limit)
	case "graph_edge":
		docs, total, err = s.edgeDocuments(ctx, orgID, offset, limit, input.IncludeArchived)
	default:
		return nil, domain.BadRequestf("unknown entity type %q; expected one of %s",
			input.EntityType, strings.Join(ContextEntityTypes, ", "))
	}
	if err != nil {
		return nil, err
	}

	if docs == nil {
		docs = []*CrmContextDocument{}
	}
	return &DocumentPage{Data: docs, Total: total, Page: page, Limit: limit}, nil
}

func (s *CrmContextService) personDocuments(ctx context.Context, orgID uuid.UUID, includeArchived bool, offset, limit int) ([]*CrmContextDocument, int64, error) {
	sources, err := s.tenants.CrmSources(ctx, orgID)
	if err != nil {
		return nil, 0, err
	}
	rows, total, err := sources.ListPersons(ctx, orgID, includeArchived, offset, limit)
	if err != nil {
		return nil, 0, err
	}
	docs := make([]*CrmContextDocument, 0, len(rows))
	for _, p := range rows {
		docs = append(docs, PersonDocument(p))
	}
	return docs, total, nil
}

func (s *CrmContextService) companyDocuments(ctx context.Context, orgID uuid.UUID, includeArchived bool, offset, limit int) ([]*CrmContextDocument, int64, error) {
	sources, err := s.tenants.CrmSources(ctx, orgID)
	if err != nil {
		return nil, 0, err
	}
	rows, total, err := sources.ListCompanies(ctx, orgID, includeArchived, offset, limit)
	if err != nil {
		return nil, 0, err
	}
	docs := make([]*CrmContextDocument, 0, len(rows))
	for _, c := range rows {
		docs = append(docs, CompanyDocument(c))
	}
	return docs, total, nil
}

func (s *CrmContextService) companyLocationDocuments(ctx context.Context, orgID uuid.UUID, includeArchived bool, offset, limit int) ([]*CrmContextDocument, int64, error) {
	sources, err := s.tenants.CrmSources(ctx, orgID)
	if err != nil {
		return nil, 0, err
	}
	rows, total, err := sources.ListCompanyLocations(ctx, orgID, includeArchived, offset, limit)
	if err != nil {
		return nil, 0, err
	}
	docs := make([]*CrmContextDocument, 0, len(rows))
	for _, l := range rows {
		docs = append(docs, CompanyLocationDocument(l))
	}
	return docs, total, nil
}

func (s *CrmContextService) officeDocuments(ctx context.Context, orgID uuid.UUID, includeArchived bool, offset, limit int) ([]*CrmContextDocument, int64, error) {
	sources, err := s.tenants.CrmSources(ctx, orgID)
	if err != nil {
		return nil, 0, err
	}
	rows, total, err := sources.ListOffices(ctx, orgID, includeArchived, offset, limit)
	if err != nil {
		return nil, 0, err
	}
	docs := make([]*CrmContextDocument, 0, len(rows))
	for _, o := range rows {
		docs = append(docs, OfficeDocument(o))
	}
	return docs, total, nil
}

func (s *CrmContextService) edgeDocuments(ctx context.Context, orgID uuid.UUID, offset, limit int, includeArchived bool) ([]*CrmContextDocument, int64, error) {
	sources, err := s.tenants.CrmSources(ctx, orgID)
	if err != nil {
		return nil, 0, err
	}
	rows, total, err := sources.ListGraphEdges(ctx, orgID, includeArchived, offset, limit)
	if err != nil {
		return nil, 0, err
	}
	docs := make([]*CrmContextDocument, 0, len(rows))
	for _, e := range rows {
		docs = append(docs, EdgeDocument(e))
	}
	return docs, total, nil
}

// textLines joins the non-empty entries with newlines. Entry order is fixed
// per entity type; determinism matters more than prose quality here.
func textLines(lines ...string) string {
	out := make([]string, 0, len(lines))
	for _, l := range lines {
		if l != "" {
			out = append(out, l)
		}
	}
	return strings.Join(out, "\n")
}

func line(label, value string) string {
	if value == "" {
		return ""
	}
	return label + ": " + value
}

func linePtr(label string, value *string) string {
	if value == nil {
		return ""
	}
	return line(label, *value)
}

func lineUUID(label string, value *uuid.UUID) string {
	if value == nil {
		return ""
	}
	return line(label, value.String())
}

func lineList(label string, values []string) string {
	if len(values) == 0 {
		return ""
	}
	return line(label, strings.Join(values, ", "))
}

// PersonDocument projects a person record.
func PersonDocument(p *model.Person) *CrmContextDocument {
	text := textLines(
		line("Name", p.DisplayName),
		line("Type", string(p.PersonType)),
		linePtr("Department", p.DepartmentKey),
		lineList("Skills", p.SkillKeys),
		lineList("Tags", p.TagKeys),
		lineUUID("Org location", p.OrgLocationID),
		lineUUID("Reports to", p.ReportsToPersonID),
		lineUUID("Company", p.CompanyID),
		lineUUID("Company location", p.CompanyLocationID),
		linePtr("Title", p.Title),
		linePtr("Email", p.PrimaryEmail),
		linePtr("Phone", p.PrimaryPhoneE164),
		linePtr("Ironworker number", p.IronworkerNumber),
		linePtr("Union local", p.UnionLocal),
		linePtr("Notes", p.Notes),
	)
	return &CrmContextDocument{
		DocID:      DocID("person", p.OrgID, p.ID),
		OrgID:      p.OrgID,
		EntityType: "person",
		EntityID:   p.ID,
		Title:      p.DisplayName,
		Text:       text,
		Metadata: model.JSONMap{
			"person_type": string(p.PersonType),
		},
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
		ArchivedAt:  p.ArchivedAt,
		PIIStripped: p.PIIStripped,
		LegalHold:   p.LegalHold,
	}
}

// CompanyDocument projects a company record.
func CompanyDocument(c *model.Company) *CrmContextDocument {
	var rating string
	if c.Rating != nil {
		rating = fmt.Sprintf("%.1f", *c.Rating)
	}
	text := textLines(
		line("Name", c.Name),
		lineList("Company types", c.CompanyTypeKeys),
		lineList("Tags", c.TagKeys),
		linePtr("Website", c.Website),
		linePtr("Email", c.MainEmail),
		linePtr("Phone", c.MainPhone),
		line("Rating", rating),
		linePtr("Notes", c.Notes),
	)
	return &CrmContextDocument{
		DocID:      DocID("company", c.OrgID, c.ID),
		OrgID:      c.OrgID,
		EntityType: "company",
		EntityID:   c.ID,
		Title:      c.Name,
		Text:       text,
		Metadata: model.JSONMap{
			"normalized_name": c.NormalizedName,
		},
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
		ArchivedAt:  c.ArchivedAt,
		PIIStripped: c.PIIStripped,
		LegalHold:   c.LegalHold,
	}
}

// CompanyLocationDocument projects a company location record.
func CompanyLocationDocument(l *model.CompanyLocation) *CrmContextDocument {
	text := textLines(
		line("Name", l.Name),
		line("Company", l.CompanyID.String()),
		linePtr("Address", l.AddressLine1),
		linePtr("Address 2", l.AddressLine2),
		linePtr("City", l.City),
		linePtr("Region", l.Region),
		linePtr("Postal", l.Postal),
		linePtr("Country", l.Country),
		linePtr("Timezone", l.Timezone),
		linePtr("Email", l.Email),
		linePtr("Phone", l.Phone),
		lineList("Tags", l.TagKeys),
		linePtr("Notes", l.Notes),
	)
	return &CrmContextDocument{
		DocID:      DocID("company_location", l.OrgID, l.ID),
		OrgID:      l.OrgID,
		EntityType: "company_location",
		EntityID:   l.ID,
		Title:      l.Name,
		Text:       text,
		Metadata: model.JSONMap{
			"company_id": l.CompanyID.String(),
		},
		CreatedAt:   l.CreatedAt,
		UpdatedAt:   l.UpdatedAt,
		ArchivedAt:  l.ArchivedAt,
		PIIStripped: l.PIIStripped,
		LegalHold:   l.LegalHold,
	}
}

// OfficeDocument projects an org location record.
func OfficeDocument(o *model.Office) *CrmContextDocument {
	text := textLines(
		line("Name", o.Name),
		linePtr("Location type", o.OrgLocationTypeKey),
		linePtr("Description", o.Description),
		linePtr("Address", o.Address),
		linePtr("Timezone", o.Timezone),
		lineList("Tags", o.TagKeys),
		lineUUID("Parent location", o.ParentOrgLocationID),
	)
	return &CrmContextDocument{
		DocID:      DocID("org_location", o.OrgID, o.ID),
		OrgID:      o.OrgID,
		EntityType: "org_location",
		EntityID:   o.ID,
		Title:      o.Name,
		Text:       text,
		Metadata: model.JSONMap{
			"normalized_name": o.NormalizedName,
		},
		CreatedAt:   o.CreatedAt,
		UpdatedAt:   o.UpdatedAt,
		ArchivedAt:  o.ArchivedAt,
		PIIStripped: o.PIIStripped,
		LegalHold:   o.LegalHold,
	}
}

// EdgeDocument projects a graph edge record.
func EdgeDocument(e *model.GraphEdge) *CrmContextDocument {
	title := fmt.Sprintf("%s: %s %s -> %s %s",
		e.EdgeTypeKey, e.FromNodeType, e.FromNodeID, e.ToNodeType, e.ToNodeID)
	var effectiveFrom, effectiveTo string
	if e.EffectiveFrom != nil {
		effectiveFrom = e.EffectiveFrom.Format(time.RFC3339)
	}
	if e.EffectiveTo != nil {
		effectiveTo = e.EffectiveTo.Format(time.RFC3339)
	}
	text := textLines(
		line("Edge type", e.EdgeTypeKey),
		line("From", string(e.FromNodeType)+" "+e.FromNodeID.String()),
		line("To", string(e.ToNodeType)+" "+e.ToNodeID.String()),
		line("Effective from", effectiveFrom),
		line("Effective to", effectiveTo),
	)
	return &CrmContextDocument{
		DocID:      DocID("graph_edge", e.OrgID, e.ID),
		OrgID:      e.OrgID,
		EntityType: "graph_edge",
		EntityID:   e.ID,
		Title:      title,
		Text:       text,
		Metadata: model.JSONMap{
			"edge_type_key": e.EdgeTypeKey,
		},
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
		ArchivedAt:  e.ArchivedAt,
		PIIStripped: e.PIIStripped,
		LegalHold:   e.LegalHold,
	}
}
