// internal/repository/node.go
package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/crewforge/backoffice/internal/model"
)

// NodeRepositoryIface checks CRM node existence for edge endpoint validation.
type NodeRepositoryIface interface {
	ExistsActive(ctx context.Context, orgID uuid.UUID, nodeType model.NodeType, nodeID uuid.UUID) (bool, error)
}

// NodeRepository implements NodeRepositoryIface against a tenant-routed
// connection.
type NodeRepository struct {
	db *gorm.DB
}

func NewNodeRepository(db *gorm.DB) *NodeRepository {
	return &NodeRepository{db: db}
}

// ExistsActive reports whether a non-archived node of the given type exists.
func (r *NodeRepository) ExistsActive(ctx context.Context, orgID uuid.UUID, nodeType model.NodeType, nodeID uuid.UUID) (bool, error) {
	var dest interface{}
	switch nodeType {
	case model.NodePerson:
		dest = &model.Person{}
	case model.NodeOrgLocation:
		dest = &model.Office{}
	case model.NodeCompany:
		dest = &model.Company{}
	case model.NodeCompanyLocation:
		dest = &model.CompanyLocation{}
	default:
		return false, fmt.Errorf("unknown node type %q", nodeType)
	}

	var count int64
	err := r.db.WithContext(ctx).Model(dest).
		Where("org_id = ? AND id = ? AND archived_at IS NULL", orgID, nodeID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("checking %s existence: %w", nodeType, err)
	}
	return count > 0, nil
}
