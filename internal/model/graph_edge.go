// internal/model/graph_edge.go
package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// NodeType enumerates the CRM entity kinds a graph edge may connect.
type NodeType string

const (
	NodePerson          NodeType = "person"
	NodeOrgLocation     NodeType = "org_location"
	NodeCompany         NodeType = "company"
	NodeCompanyLocation NodeType = "company_location"
)

// NodeTypes lists every valid node type.
var NodeTypes = []NodeType{NodePerson, NodeOrgLocation, NodeCompany, NodeCompanyLocation}

// ParseNodeType normalizes and validates a node type string.
func ParseNodeType(s string) (NodeType, bool) {
	nt := NodeType(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range NodeTypes {
		if nt == known {
			return nt, true
		}
	}
	return "", false
}

// GraphEdge is a directed, typed relationship between two CRM nodes.
// At most one active edge may exist per identity tuple; the partial unique
// index in Indexes is the authoritative guard.
type GraphEdge struct {
	ID            uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	OrgID         uuid.UUID  `gorm:"type:uuid;not null;index" json:"org_id"`
	EdgeTypeKey   string     `gorm:"type:text;not null;index" json:"edge_type_key"`
	FromNodeType  NodeType   `gorm:"type:text;not null" json:"from_node_type"`
	FromNodeID    uuid.UUID  `gorm:"type:uuid;not null" json:"from_node_id"`
	ToNodeType    NodeType   `gorm:"type:text;not null" json:"to_node_type"`
	ToNodeID      uuid.UUID  `gorm:"type:uuid;not null" json:"to_node_id"`
	Metadata      JSONMap    `gorm:"type:jsonb;not null;default:'{}'" json:"metadata"`
	EffectiveFrom *time.Time `json:"effective_from,omitempty"`
	EffectiveTo   *time.Time `json:"effective_to,omitempty"`
	ArchivedAt    *time.Time `gorm:"index" json:"archived_at,omitempty"`
	PIIStripped   bool       `gorm:"not null;default:false" json:"pii_stripped"`
	LegalHold     bool       `gorm:"not null;default:false" json:"legal_hold"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// EdgeIdentity is the uniqueness tuple for active edges.
type EdgeIdentity struct {
	EdgeTypeKey  string
	FromNodeType NodeType
	FromNodeID   uuid.UUID
	ToNodeType   NodeType
	ToNodeID     uuid.UUID
}

// Identity extracts the edge's uniqueness tuple.
func (e *GraphEdge) Identity() EdgeIdentity {
	return EdgeIdentity{
		EdgeTypeKey:  e.EdgeTypeKey,
		FromNodeType: e.FromNodeType,
		FromNodeID:   e.FromNodeID,
		ToNodeType:   e.ToNodeType,
		ToNodeID:     e.ToNodeID,
	}
}
