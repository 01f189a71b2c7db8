// internal/model/migrate.go
package model

// SharedModels are the control-plane tables that live only in the shared
// database.
var SharedModels = []any{
	&Organization{},
	&EventLog{},
}

// TenantModels are the collections that follow tenant routing: they exist in
// the shared database and are re-created in each dedicated database.
var TenantModels = []any{
	&OrgTaxonomy{},
	&GraphEdge{},
	&Person{},
	&Company{},
	&CompanyLocation{},
	&Office{},
}

// TenantIndexes are raw statements gorm's struct tags cannot express.
// The partial unique index over the edge identity tuple is the authoritative
// uniqueness guard; the in-process existence check is only a fast path.
var TenantIndexes = []string{
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_graph_edges_active_identity
		ON graph_edges (org_id, edge_type_key, from_node_type, from_node_id, to_node_type, to_node_id)
		WHERE archived_at IS NULL`,
	`CREATE INDEX IF NOT EXISTS idx_graph_edges_from
		ON graph_edges (org_id, from_node_type, from_node_id)`,
	`CREATE INDEX IF NOT EXISTS idx_graph_edges_to
		ON graph_edges (org_id, to_node_type, to_node_id)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_companies_active_name
		ON companies (org_id, normalized_name) WHERE archived_at IS NULL`,
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_persons_active_primary_email
		ON persons (org_id, primary_email) WHERE archived_at IS NULL AND primary_email IS NOT NULL`,
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_persons_active_primary_phone
		ON persons (org_id, primary_phone_e164) WHERE archived_at IS NULL AND primary_phone_e164 IS NOT NULL`,
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_persons_active_ironworker
		ON persons (org_id, ironworker_number) WHERE archived_at IS NULL AND ironworker_number IS NOT NULL`,
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_offices_active_name
		ON offices (org_id, normalized_name) WHERE archived_at IS NULL`,
}
