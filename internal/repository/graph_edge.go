// internal/repository/graph_edge.go
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/crewforge/backoffice/internal/domain"
	"github.com/crewforge/backoffice/internal/model"
)

// EdgeFilter narrows edge listings. Zero-valued fields are ignored.
type EdgeFilter struct {
	EdgeTypeKey     string
	FromNodeType    model.NodeType
	FromNodeID      *uuid.UUID
	ToNodeType      model.NodeType
	ToNodeID        *uuid.UUID
	IncludeArchived bool
}

// GraphEdgeRepositoryIface defines the interface for the graph edge repository.
type GraphEdgeRepositoryIface interface {
	Create(ctx context.Context, edge *model.GraphEdge) error
	FindByID(ctx context.Context, orgID, id uuid.UUID) (*model.GraphEdge, error)
	FindActiveByIdentity(ctx context.Context, orgID uuid.UUID, ident model.EdgeIdentity, excludeID *uuid.UUID) (*model.GraphEdge, error)
	ListPage(ctx context.Context, orgID uuid.UUID, filter EdgeFilter, offset, limit int) ([]*model.GraphEdge, int64, error)
	Save(ctx context.Context, edge *model.GraphEdge) error
}

// GraphEdgeRepository implements GraphEdgeRepositoryIface against a
// tenant-routed connection.
type GraphEdgeRepository struct {
	db *gorm.DB
}

func NewGraphEdgeRepository(db *gorm.DB) *GraphEdgeRepository {
	return &GraphEdgeRepository{db: db}
}

func (r *GraphEdgeRepository) Create(ctx context.Context, edge *model.GraphEdge) error {
	if err := r.db.WithContext(ctx).Create(edge).Error; err != nil {
		if isUniqueViolation(err, "idx_graph_edges_active_identity") {
			return domain.Conflictf("an active %s edge between these nodes already exists", edge.EdgeTypeKey)
		}
		return fmt.Errorf("creating graph edge: %w", err)
	}
	return nil
}

func (r *GraphEdgeRepository) FindByID(ctx context.Context, orgID, id uuid.UUID) (*model.GraphEdge, error) {
	var edge model.GraphEdge
	err := r.db.WithContext(ctx).
		Where("org_id = ? AND id = ?", orgID, id).
		First(&edge).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NotFoundf("graph edge %s not found", id)
		}
		return nil, fmt.Errorf("finding graph edge: %w", err)
	}
	return &edge, nil
}

// FindActiveByIdentity returns the live edge matching the identity tuple, or
// (nil, nil) when none exists. excludeID skips the edge being unarchived.
func (r *GraphEdgeRepository) FindActiveByIdentity(ctx context.Context, orgID uuid.UUID, ident model.EdgeIdentity, excludeID *uuid.UUID) (*model.GraphEdge, error) {
	q := r.db.WithContext(ctx).
		Where("org_id = ? AND archived_at IS NULL", orgID).
		Where("edge_type_key = ?", ident.EdgeTypeKey).
		Where("from_node_type = ? AND from_node_id = ?", ident.FromNodeType, ident.FromNodeID).
		Where("to_node_type = ? AND to_node_id = ?", ident.ToNodeType, ident.ToNodeID)
	if excludeID != nil {
		q = q.Where("id <> ?", *excludeID)
	}

	var edge model.GraphEdge
	if err := q.First(&edge).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("finding active graph edge: %w", err)
	}
	return &edge, nil
}

// ListPage returns a page of edges plus the total match count, newest first.
func (r *GraphEdgeRepository) ListPage(ctx context.Context, orgID uuid.UUID, filter EdgeFilter, offset, limit int) ([]*model.GraphEdge, int64, error) {
	q := r.db.WithContext(ctx).Model(&model.GraphEdge{}).Where("org_id = ?", orgID)
	if !filter.IncludeArchived {
		q = q.Where("archived_at IS NULL")
	}
	if filter.EdgeTypeKey != "" {
		q = q.Where("edge_type_key = ?", filter.EdgeTypeKey)
	}
	if filter.FromNodeType != "" {
		q = q.Where("from_node_type = ?", filter.FromNodeType)
	}
	if filter.FromNodeID != nil {
		q = q.Where("from_node_id = ?", *filter.FromNodeID)
	}
	if filter.ToNodeType != "" {
		q = q.Where("to_node_type = ?", filter.ToNodeType)
	}
	if filter.ToNodeID != nil {
		q = q.Where("to_node_id = ?", *filter.ToNodeID)
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return nil, 0, fmt.Errorf("counting graph edges: %w", err)
	}

	var edges []*model.GraphEdge
	err := q.Order("created_at DESC, id ASC").Offset(offset).Limit(limit).Find(&edges).Error
	if err != nil {
		return nil, 0, fmt.Errorf("listing graph edges: %w", err)
	}
	return edges, count, nil
}

func (r *GraphEdgeRepository) Save(ctx context.Context, edge *model.GraphEdge) error {
	if err := r.db.WithContext(ctx).Save(edge).Error; err != nil {
		if isUniqueViolation(err, "idx_graph_edges_active_identity") {
			return domain.Conflictf("an active %s edge between these nodes already exists", edge.EdgeTypeKey)
		}
		return fmt.Errorf("saving graph edge: %w", err)
	}
	return nil
}
