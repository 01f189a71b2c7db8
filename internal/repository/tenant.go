// internal/repository/tenant.go
package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/crewforge/backoffice/internal/tenant"
)

// TenantRepositoriesIface hands out repositories bound to the right physical
// database for an organization. Services never touch *gorm.DB directly.
type TenantRepositoriesIface interface {
	Taxonomies(ctx context.Context, orgID uuid.UUID) (TaxonomyRepositoryIface, error)
	GraphEdges(ctx context.Context, orgID uuid.UUID) (GraphEdgeRepositoryIface, error)
	Nodes(ctx context.Context, orgID uuid.UUID) (NodeRepositoryIface, error)
	CrmSources(ctx context.Context, orgID uuid.UUID) (CrmSourceRepositoryIface, error)
}

// TenantRepositories implements TenantRepositoriesIface over a tenant.Resolver.
type TenantRepositories struct {
	resolver *tenant.Resolver
}

func NewTenantRepositories(resolver *tenant.Resolver) *TenantRepositories {
	return &TenantRepositories{resolver: resolver}
}

func (t *TenantRepositories) Taxonomies(ctx context.Context, orgID uuid.UUID) (TaxonomyRepositoryIface, error) {
	db, err := t.resolver.DBForOrg(ctx, orgID)
	if err != nil {
		return nil, err
	}
	return NewTaxonomyRepository(db), nil
}

func (t *TenantRepositories) GraphEdges(ctx context.Context, orgID uuid.UUID) (GraphEdgeRepositoryIface, error) {
	db, err := t.resolver.DBForOrg(ctx, orgID)
	if err != nil {
		return nil, err
	}
	return NewGraphEdgeRepository(db), nil
}

func (t *TenantRepositories) Nodes(ctx context.Context, orgID uuid.UUID) (NodeRepositoryIface, error) {
	db, err := t.resolver.DBForOrg(ctx, orgID)
	if err != nil {
		return nil, err
	}
	return NewNodeRepository(db), nil
}

func (t *TenantRepositories) CrmSources(ctx context.Context, orgID uuid.UUID) (CrmSourceRepositoryIface, error) {
	db, err := t.resolver.DBForOrg(ctx, orgID)
	if err != nil {
		return nil, err
	}
	return NewCrmSourceRepository(db), nil
}
