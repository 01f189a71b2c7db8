// internal/repository/crm_source.go
package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/crewforge/backoffice/internal/model"
)

// CrmSourceRepositoryIface reads CRM entities in stable batches for context
// export. Every listing is ordered updated_at DESC, id ASC so identical data
// always pages identically.
type CrmSourceRepositoryIface interface {
	ListPersons(ctx context.Context, orgID uuid.UUID, includeArchived bool, offset, limit int) ([]*model.Person, int64, error)
	ListCompanies(ctx context.Context, orgID uuid.UUID, includeArchived bool, offset, limit int) ([]*model.Company, int64, error)
	ListCompanyLocations(ctx context.Context, orgID uuid.UUID, includeArchived bool, offset, limit int) ([]*model.CompanyLocation, int64, error)
	ListOffices(ctx context.Context, orgID uuid.UUID, includeArchived bool, offset, limit int) ([]*model.Office, int64, error)
	ListGraphEdges(ctx context.Context, orgID uuid.UUID, includeArchived bool, offset, limit int) ([]*model.GraphEdge, int64, error)
}

// CrmSourceRepository implements CrmSourceRepositoryIface against a
// tenant-routed connection.
type CrmSourceRepository struct {
	db *gorm.DB
}

func NewCrmSourceRepository(db *gorm.DB) *CrmSourceRepository {
	return &CrmSourceRepository{db: db}
}

func (r *CrmSourceRepository) ListPersons(ctx context.Context, orgID uuid.UUID, includeArchived bool, offset, limit int) ([]*model.Person, int64, error) {
	var rows []*model.Person
	count, err := r.page(ctx, orgID, &model.Person{}, &rows, includeArchived, offset, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("listing persons: %w", err)
	}
	return rows, count, nil
}

func (r *CrmSourceRepository) ListCompanies(ctx context.Context, orgID uuid.UUID, includeArchived bool, offset, limit int) ([]*model.Company, int64, error) {
	var rows []*model.Company
	count, err := r.page(ctx, orgID, &model.Company{}, &rows, includeArchived, offset, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("listing companies: %w", err)
	}
	return rows, count, nil
}

func (r *CrmSourceRepository) ListCompanyLocations(ctx context.Context, orgID uuid.UUID, includeArchived bool, offset, limit int) ([]*model.CompanyLocation, int64, error) {
	var rows []*model.CompanyLocation
	count, err := r.page(ctx, orgID, &model.CompanyLocation{}, &rows, includeArchived, offset, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("listing company locations: %w", err)
	}
	return rows, count, nil
}

func (r *CrmSourceRepository) ListOffices(ctx context.Context, orgID uuid.UUID, includeArchived bool, offset, limit int) ([]*model.Office, int64, error) {
	var rows []*model.Office
	count, err := r.page(ctx, orgID, &model.Office{}, &rows, includeArchived, offset, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("listing offices: %w", err)
	}
	return rows, count, nil
}

func (r *CrmSourceRepository) ListGraphEdges(ctx context.Context, orgID uuid.UUID, includeArchived bool, offset, limit int) ([]*model.GraphEdge, int64, error) {
	var rows []*model.GraphEdge
	count, err := r.page(ctx, orgID, &model.GraphEdge{}, &rows, includeArchived, offset, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("listing graph edges: %w", err)
	}
	return rows, count, nil
}

func (r *CrmSourceRepository) page(ctx context.Context, orgID uuid.UUID, sample, dest interface{}, includeArchived bool, offset, limit int) (int64, error) {
	base := r.db.WithContext(ctx).Model(sample).Where("org_id = ?", orgID)
	if !includeArchived {
		base = base.Where("archived_at IS NULL")
	}

	var count int64
	if err := base.Count(&count).Error; err != nil {
		return 0, err
	}
	err := base.Order("updated_at DESC, id ASC").Offset(offset).Limit(limit).Find(dest).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}
