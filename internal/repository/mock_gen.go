// internal/repository/mock_gen.go
package repository

//go:generate mockgen -source=./organization.go -destination=../mocks/mock_organization_repository.go -package=mocks OrganizationRepositoryIface
//go:generate mockgen -source=./taxonomy.go -destination=../mocks/mock_taxonomy_repository.go -package=mocks TaxonomyRepositoryIface
//go:generate mockgen -source=./graph_edge.go -destination=../mocks/mock_graph_edge_repository.go -package=mocks GraphEdgeRepositoryIface
//go:generate mockgen -source=./node.go -destination=../mocks/mock_node_repository.go -package=mocks NodeRepositoryIface
//go:generate mockgen -source=./crm_source.go -destination=../mocks/mock_crm_source_repository.go -package=mocks CrmSourceRepositoryIface
//go:generate mockgen -source=./event_log.go -destination=../mocks/mock_event_log_repository.go -package=mocks EventLogRepositoryIface
//go:generate mockgen -source=./tenant.go -destination=../mocks/mock_tenant_repositories.go -package=mocks TenantRepositoriesIface
