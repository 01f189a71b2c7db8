// internal/repository/taxonomy.go
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/crewforge/backoffice/internal/model"
)

// TaxonomyRepositoryIface defines the interface for the taxonomy repository.
// FindByNamespace returns (nil, nil) when no document exists yet; the service
// auto-creates on first read.
type TaxonomyRepositoryIface interface {
	FindByNamespace(ctx context.Context, orgID uuid.UUID, namespace string) (*model.OrgTaxonomy, error)
	Create(ctx context.Context, doc *model.OrgTaxonomy) error
	Save(ctx context.Context, doc *model.OrgTaxonomy) error
}

// TaxonomyRepository implements TaxonomyRepositoryIface against a
// tenant-routed connection.
type TaxonomyRepository struct {
	db *gorm.DB
}

func NewTaxonomyRepository(db *gorm.DB) *TaxonomyRepository {
	return &TaxonomyRepository{db: db}
}

func (r *TaxonomyRepository) FindByNamespace(ctx context.Context, orgID uuid.UUID, namespace string) (*model.OrgTaxonomy, error) {
	var doc model.OrgTaxonomy
	err := r.db.WithContext(ctx).
		Where("org_id = ? AND namespace = ?", orgID, namespace).
		First(&doc).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("finding taxonomy %s/%s: %w", orgID, namespace, err)
	}
	return &doc, nil
}

func (r *TaxonomyRepository) Create(ctx context.Context, doc *model.OrgTaxonomy) error {
	if err := r.db.WithContext(ctx).Create(doc).Error; err != nil {
		return fmt.Errorf("creating taxonomy %s/%s: %w", doc.OrgID, doc.Namespace, err)
	}
	return nil
}

func (r *TaxonomyRepository) Save(ctx context.Context, doc *model.OrgTaxonomy) error {
	if err := r.db.WithContext(ctx).Save(doc).Error; err != nil {
		return fmt.Errorf("saving taxonomy %s/%s: %w", doc.OrgID, doc.Namespace, err)
	}
	return nil
}
