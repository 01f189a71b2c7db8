package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/crewforge/backoffice/internal/domain"
	"github.com/crewforge/backoffice/internal/mocks"
	"github.com/crewforge/backoffice/internal/model"
	"github.com/crewforge/backoffice/internal/roles"
	"github.com/crewforge/backoffice/internal/service"
)

func newOrgService(orgRepo *mocks.MockOrganizationRepositoryIface) *service.OrganizationService {
	return service.NewOrganizationService(orgRepo, nil, service.NewEventLogService(nil), nil, nil)
}

func activeOrg(orgID uuid.UUID) *model.Organization {
	return &model.Organization{ID: orgID, Name: "Test Steel", DatastoreType: model.DatastoreShared}
}

func orgAdmin(orgID uuid.UUID) domain.Actor {
	return domain.Actor{UserID: uuid.New(), OrgID: orgID, Role: roles.OrgAdmin}
}

func reservedDoc(orgID uuid.UUID) *model.OrgTaxonomy {
	doc := &model.OrgTaxonomy{
		ID:        uuid.New(),
		OrgID:     orgID,
		Namespace: service.NamespaceEdgeType,
		Values:    model.TaxonomyValues{},
	}
	for _, key := range service.ReservedEdgeTypeKeys {
		doc.Values = append(doc.Values, model.TaxonomyValue{Key: key, Label: key})
	}
	return doc
}

func TestTaxonomyGet(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orgID := uuid.New()
	actor := orgAdmin(orgID)

	t.Run("fresh edge_type namespace is created with reserved keys", func(t *testing.T) {
		orgRepo := mocks.NewMockOrganizationRepositoryIface(ctrl)
		taxRepo := mocks.NewMockTaxonomyRepositoryIface(ctrl)
		tenants := mocks.NewMockTenantRepositoriesIface(ctrl)

		orgRepo.EXPECT().FindByID(gomock.Any(), orgID).Return(activeOrg(orgID), nil).AnyTimes()
		tenants.EXPECT().Taxonomies(gomock.Any(), orgID).Return(taxRepo, nil)
		taxRepo.EXPECT().FindByNamespace(gomock.Any(), orgID, service.NamespaceEdgeType).Return(nil, nil)
		taxRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		svc := service.NewTaxonomyService(tenants, newOrgService(orgRepo), service.NewEventLogService(nil))

		doc, err := svc.Get(context.Background(), actor, orgID, service.NamespaceEdgeType)
		assert.NoError(t, err)
		assert.Equal(t, service.NamespaceEdgeType, doc.Namespace)
		assert.ElementsMatch(t, service.ReservedEdgeTypeKeys, doc.Values.ActiveKeys())
	})

	t.Run("archived reserved key is restored on read", func(t *testing.T) {
		orgRepo := mocks.NewMockOrganizationRepositoryIface(ctrl)
		taxRepo := mocks.NewMockTaxonomyRepositoryIface(ctrl)
		tenants := mocks.NewMockTenantRepositoriesIface(ctrl)

		damaged := reservedDoc(orgID)
		archivedAt := time.Now().UTC()
		damaged.Values[0].ArchivedAt = &archivedAt

		orgRepo.EXPECT().FindByID(gomock.Any(), orgID).Return(activeOrg(orgID), nil).AnyTimes()
		tenants.EXPECT().Taxonomies(gomock.Any(), orgID).Return(taxRepo, nil)
		taxRepo.EXPECT().FindByNamespace(gomock.Any(), orgID, service.NamespaceEdgeType).Return(damaged, nil)
		taxRepo.EXPECT().Save(gomock.Any(), damaged).Return(nil)

		svc := service.NewTaxonomyService(tenants, newOrgService(orgRepo), service.NewEventLogService(nil))

		doc, err := svc.Get(context.Background(), actor, orgID, service.NamespaceEdgeType)
		assert.NoError(t, err)
		assert.ElementsMatch(t, service.ReservedEdgeTypeKeys, doc.Values.ActiveKeys())
	})

	t.Run("viewer role is forbidden", func(t *testing.T) {
		orgRepo := mocks.NewMockOrganizationRepositoryIface(ctrl)
		tenants := mocks.NewMockTenantRepositoriesIface(ctrl)
		svc := service.NewTaxonomyService(tenants, newOrgService(orgRepo), service.NewEventLogService(nil))

		viewer := domain.Actor{UserID: uuid.New(), OrgID: orgID, Role: roles.Viewer}
		_, err := svc.Get(context.Background(), viewer, orgID, service.NamespaceEdgeType)
		assert.True(t, errors.Is(err, domain.ErrForbidden))
	})

	t.Run("cross-org access is forbidden for org roles", func(t *testing.T) {
		orgRepo := mocks.NewMockOrganizationRepositoryIface(ctrl)
		tenants := mocks.NewMockTenantRepositoriesIface(ctrl)
		svc := service.NewTaxonomyService(tenants, newOrgService(orgRepo), service.NewEventLogService(nil))

		_, err := svc.Get(context.Background(), orgAdmin(uuid.New()), orgID, service.NamespaceEdgeType)
		assert.True(t, errors.Is(err, domain.ErrForbidden))
	})

	t.Run("archived organization is rejected", func(t *testing.T) {
		orgRepo := mocks.NewMockOrganizationRepositoryIface(ctrl)
		tenants := mocks.NewMockTenantRepositoriesIface(ctrl)

		archived := activeOrg(orgID)
		archivedAt := time.Now().UTC()
		archived.ArchivedAt = &archivedAt
		orgRepo.EXPECT().FindByID(gomock.Any(), orgID).Return(archived, nil)

		svc := service.NewTaxonomyService(tenants, newOrgService(orgRepo), service.NewEventLogService(nil))

		_, err := svc.Get(context.Background(), actor, orgID, service.NamespaceEdgeType)
		assert.True(t, errors.Is(err, domain.ErrForbidden))
	})
}

func TestTaxonomyEnsureKeysActive(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orgID := uuid.New()
	actor := orgAdmin(orgID)

	t.Run("new key is appended and persisted", func(t *testing.T) {
		orgRepo := mocks.NewMockOrganizationRepositoryIface(ctrl)
		taxRepo := mocks.NewMockTaxonomyRepositoryIface(ctrl)
		tenants := mocks.NewMockTenantRepositoriesIface(ctrl)

		existing := reservedDoc(orgID)
		orgRepo.EXPECT().FindByID(gomock.Any(), orgID).Return(activeOrg(orgID), nil).AnyTimes()
		tenants.EXPECT().Taxonomies(gomock.Any(), orgID).Return(taxRepo, nil)
		taxRepo.EXPECT().FindByNamespace(gomock.Any(), orgID, service.NamespaceEdgeType).Return(existing, nil)
		taxRepo.EXPECT().Save(gomock.Any(), existing).Return(nil)

		svc := service.NewTaxonomyService(tenants, newOrgService(orgRepo), service.NewEventLogService(nil))

		doc, err := svc.EnsureKeysActive(context.Background(), actor, orgID, service.NamespaceEdgeType, []string{"Custom Link"})
		assert.NoError(t, err)
		assert.Len(t, doc.Values.ActiveKeys(), len(service.ReservedEdgeTypeKeys)+1)
		assert.Contains(t, doc.Values.ActiveKeys(), "custom_link")
	})

	t.Run("second identical call persists nothing", func(t *testing.T) {
		orgRepo := mocks.NewMockOrganizationRepositoryIface(ctrl)
		taxRepo := mocks.NewMockTaxonomyRepositoryIface(ctrl)
		tenants := mocks.NewMockTenantRepositoriesIface(ctrl)

		existing := reservedDoc(orgID)
		existing.Values = append(existing.Values, model.TaxonomyValue{Key: "custom_link", Label: "Custom Link"})

		orgRepo.EXPECT().FindByID(gomock.Any(), orgID).Return(activeOrg(orgID), nil).AnyTimes()
		tenants.EXPECT().Taxonomies(gomock.Any(), orgID).Return(taxRepo, nil)
		taxRepo.EXPECT().FindByNamespace(gomock.Any(), orgID, service.NamespaceEdgeType).Return(existing, nil)

		svc := service.NewTaxonomyService(tenants, newOrgService(orgRepo), service.NewEventLogService(nil))

		doc, err := svc.EnsureKeysActive(context.Background(), actor, orgID, service.NamespaceEdgeType, []string{"custom_link"})
		assert.NoError(t, err)
		assert.Contains(t, doc.Values.ActiveKeys(), "custom_link")
	})

	t.Run("keys that normalize to nothing are dropped", func(t *testing.T) {
		orgRepo := mocks.NewMockOrganizationRepositoryIface(ctrl)
		taxRepo := mocks.NewMockTaxonomyRepositoryIface(ctrl)
		tenants := mocks.NewMockTenantRepositoriesIface(ctrl)

		existing := reservedDoc(orgID)
		orgRepo.EXPECT().FindByID(gomock.Any(), orgID).Return(activeOrg(orgID), nil).AnyTimes()
		tenants.EXPECT().Taxonomies(gomock.Any(), orgID).Return(taxRepo, nil)
		taxRepo.EXPECT().FindByNamespace(gomock.Any(), orgID, service.NamespaceEdgeType).Return(existing, nil)
		taxRepo.EXPECT().Save(gomock.Any(), existing).Return(nil)

		svc := service.NewTaxonomyService(tenants, newOrgService(orgRepo), service.NewEventLogService(nil))

		doc, err := svc.EnsureKeysActive(context.Background(), actor, orgID, service.NamespaceEdgeType, []string{"  !!  ", "Custom Link"})
		assert.NoError(t, err)
		assert.Contains(t, doc.Values.ActiveKeys(), "custom_link")
		assert.Len(t, doc.Values.ActiveKeys(), len(service.ReservedEdgeTypeKeys)+1)
	})

	t.Run("only unusable keys persists nothing", func(t *testing.T) {
		orgRepo := mocks.NewMockOrganizationRepositoryIface(ctrl)
		taxRepo := mocks.NewMockTaxonomyRepositoryIface(ctrl)
		tenants := mocks.NewMockTenantRepositoriesIface(ctrl)

		existing := reservedDoc(orgID)
		orgRepo.EXPECT().FindByID(gomock.Any(), orgID).Return(activeOrg(orgID), nil).AnyTimes()
		tenants.EXPECT().Taxonomies(gomock.Any(), orgID).Return(taxRepo, nil)
		taxRepo.EXPECT().FindByNamespace(gomock.Any(), orgID, service.NamespaceEdgeType).Return(existing, nil)

		svc := service.NewTaxonomyService(tenants, newOrgService(orgRepo), service.NewEventLogService(nil))

		doc, err := svc.EnsureKeysActive(context.Background(), actor, orgID, service.NamespaceEdgeType, []string{"  !!  ", "---"})
		assert.NoError(t, err)
		assert.ElementsMatch(t, service.ReservedEdgeTypeKeys, doc.Values.ActiveKeys())
	})
}

func TestTaxonomyPut(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orgID := uuid.New()
	actor := orgAdmin(orgID)

	t.Run("reconciles to the desired state", func(t *testing.T) {
		orgRepo := mocks.NewMockOrganizationRepositoryIface(ctrl)
		taxRepo := mocks.NewMockTaxonomyRepositoryIface(ctrl)
		tenants := mocks.NewMockTenantRepositoriesIface(ctrl)

		existing := &model.OrgTaxonomy{
			ID:        uuid.New(),
			OrgID:     orgID,
			Namespace: "company_type",
			Values: model.TaxonomyValues{
				{Key: "general_contractor", Label: "General Contractor"},
				{Key: "fabricator", Label: "Fabricator"},
			},
		}

		orgRepo.EXPECT().FindByID(gomock.Any(), orgID).Return(activeOrg(orgID), nil).AnyTimes()
		tenants.EXPECT().Taxonomies(gomock.Any(), orgID).Return(taxRepo, nil)
		taxRepo.EXPECT().FindByNamespace(gomock.Any(), orgID, "company_type").Return(existing, nil)
		taxRepo.EXPECT().Save(gomock.Any(), existing).Return(nil)

		svc := service.NewTaxonomyService(tenants, newOrgService(orgRepo), service.NewEventLogService(nil))

		doc, err := svc.Put(context.Background(), actor, orgID, "company_type", service.PutTaxonomyInput{
			Values: []service.TaxonomyValueInput{
				{Key: "general_contractor"},
				{Key: "erector"},
			},
		})
		assert.NoError(t, err)
		assert.Equal(t, []string{"general_contractor", "erector"}, doc.Values.ActiveKeys())

		archived := doc.Values.Find("fabricator")
		assert.NotNil(t, archived)
		assert.NotNil(t, archived.ArchivedAt)

		// Prior label carried over, new label derived from key.
		assert.Equal(t, "General Contractor", doc.Values.Find("general_contractor").Label)
		assert.Equal(t, "Erector", doc.Values.Find("erector").Label)
	})

	t.Run("reserved keys survive omission", func(t *testing.T) {
		orgRepo := mocks.NewMockOrganizationRepositoryIface(ctrl)
		taxRepo := mocks.NewMockTaxonomyRepositoryIface(ctrl)
		tenants := mocks.NewMockTenantRepositoriesIface(ctrl)

		existing := reservedDoc(orgID)
		orgRepo.EXPECT().FindByID(gomock.Any(), orgID).Return(activeOrg(orgID), nil).AnyTimes()
		tenants.EXPECT().Taxonomies(gomock.Any(), orgID).Return(taxRepo, nil)
		taxRepo.EXPECT().FindByNamespace(gomock.Any(), orgID, service.NamespaceEdgeType).Return(existing, nil)
		taxRepo.EXPECT().Save(gomock.Any(), existing).Return(nil)

		svc := service.NewTaxonomyService(tenants, newOrgService(orgRepo), service.NewEventLogService(nil))

		doc, err := svc.Put(context.Background(), actor, orgID, service.NamespaceEdgeType, service.PutTaxonomyInput{
			Values: []service.TaxonomyValueInput{{Key: "custom_link"}},
		})
		assert.NoError(t, err)

		active := doc.Values.ActiveKeys()
		assert.Contains(t, active, "custom_link")
		for _, key := range service.ReservedEdgeTypeKeys {
			assert.Contains(t, active, key)
		}
	})

	t.Run("duplicate normalized keys are rejected", func(t *testing.T) {
		orgRepo := mocks.NewMockOrganizationRepositoryIface(ctrl)
		tenants := mocks.NewMockTenantRepositoriesIface(ctrl)
		orgRepo.EXPECT().FindByID(gomock.Any(), orgID).Return(activeOrg(orgID), nil).AnyTimes()

		svc := service.NewTaxonomyService(tenants, newOrgService(orgRepo), service.NewEventLogService(nil))

		_, err := svc.Put(context.Background(), actor, orgID, "company_type", service.PutTaxonomyInput{
			Values: []service.TaxonomyValueInput{
				{Key: "Erector"},
				{Key: "erector"},
			},
		})
		assert.True(t, errors.Is(err, domain.ErrBadRequest))
	})

	t.Run("empty value list is rejected", func(t *testing.T) {
		orgRepo := mocks.NewMockOrganizationRepositoryIface(ctrl)
		tenants := mocks.NewMockTenantRepositoriesIface(ctrl)
		orgRepo.EXPECT().FindByID(gomock.Any(), orgID).Return(activeOrg(orgID), nil).AnyTimes()

		svc := service.NewTaxonomyService(tenants, newOrgService(orgRepo), service.NewEventLogService(nil))

		_, err := svc.Put(context.Background(), actor, orgID, "company_type", service.PutTaxonomyInput{})
		assert.True(t, errors.Is(err, domain.ErrBadRequest))
	})
}
