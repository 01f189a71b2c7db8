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
	"github.com/crewforge/backoffice/internal/service"
)

type edgeFixture struct {
	orgRepo  *mocks.MockOrganizationRepositoryIface
	taxRepo  *mocks.MockTaxonomyRepositoryIface
	nodeRepo *mocks.MockNodeRepositoryIface
	edgeRepo *mocks.MockGraphEdgeRepositoryIface
	tenants  *mocks.MockTenantRepositoriesIface
	svc      *service.GraphEdgeService
}

func newEdgeFixture(ctrl *gomock.Controller, orgID uuid.UUID) *edgeFixture {
	f := &edgeFixture{
		orgRepo:  mocks.NewMockOrganizationRepositoryIface(ctrl),
		taxRepo:  mocks.NewMockTaxonomyRepositoryIface(ctrl),
		nodeRepo: mocks.NewMockNodeRepositoryIface(ctrl),
		edgeRepo: mocks.NewMockGraphEdgeRepositoryIface(ctrl),
		tenants:  mocks.NewMockTenantRepositoriesIface(ctrl),
	}

	f.orgRepo.EXPECT().FindByID(gomock.Any(), orgID).Return(activeOrg(orgID), nil).AnyTimes()
	f.tenants.EXPECT().Taxonomies(gomock.Any(), orgID).Return(f.taxRepo, nil).AnyTimes()
	f.tenants.EXPECT().Nodes(gomock.Any(), orgID).Return(f.nodeRepo, nil).AnyTimes()
	f.tenants.EXPECT().GraphEdges(gomock.Any(), orgID).Return(f.edgeRepo, nil).AnyTimes()
	f.taxRepo.EXPECT().
		FindByNamespace(gomock.Any(), orgID, service.NamespaceEdgeType).
		Return(reservedDoc(orgID), nil).
		AnyTimes()

	orgs := newOrgService(f.orgRepo)
	events := service.NewEventLogService(nil)
	taxonomies := service.NewTaxonomyService(f.tenants, orgs, events)
	f.svc = service.NewGraphEdgeService(f.tenants, orgs, taxonomies, events)
	return f
}

func TestGraphEdgeCreate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orgID := uuid.New()
	actor := orgAdmin(orgID)
	fromID := uuid.New()
	toID := uuid.New()

	t.Run("works_with between two persons succeeds", func(t *testing.T) {
		f := newEdgeFixture(ctrl, orgID)

		f.nodeRepo.EXPECT().ExistsActive(gomock.Any(), orgID, model.NodePerson, fromID).Return(true, nil)
		f.nodeRepo.EXPECT().ExistsActive(gomock.Any(), orgID, model.NodePerson, toID).Return(true, nil)
		f.edgeRepo.EXPECT().FindActiveByIdentity(gomock.Any(), orgID, gomock.Any(), nil).Return(nil, nil)
		f.edgeRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, e *model.GraphEdge) error {
				e.ID = uuid.New()
				return nil
			})

		edge, err := f.svc.Create(context.Background(), actor, orgID, service.CreateEdgeInput{
			EdgeTypeKey:  "Works With",
			FromNodeType: "person",
			FromNodeID:   fromID,
			ToNodeType:   "person",
			ToNodeID:     toID,
		})
		assert.NoError(t, err)
		assert.Equal(t, "works_with", edge.EdgeTypeKey)
		assert.Equal(t, model.NodePerson, edge.FromNodeType)
		assert.NotNil(t, edge.Metadata)
	})

	t.Run("reports_to person to company is incompatible", func(t *testing.T) {
		f := newEdgeFixture(ctrl, orgID)

		_, err := f.svc.Create(context.Background(), actor, orgID, service.CreateEdgeInput{
			EdgeTypeKey:  "reports_to",
			FromNodeType: "person",
			FromNodeID:   fromID,
			ToNodeType:   "company",
			ToNodeID:     toID,
		})
		assert.True(t, errors.Is(err, domain.ErrBadRequest))
		assert.Contains(t, err.Error(), "person -> person")
	})

	t.Run("edge type without a compatibility rule is rejected", func(t *testing.T) {
		f := newEdgeFixture(ctrl, orgID)

		_, err := f.svc.Create(context.Background(), actor, orgID, service.CreateEdgeInput{
			EdgeTypeKey:  "assigned_to",
			FromNodeType: "person",
			FromNodeID:   fromID,
			ToNodeType:   "person",
			ToNodeID:     toID,
		})
		assert.True(t, errors.Is(err, domain.ErrBadRequest))
	})

	t.Run("inactive taxonomy key is rejected", func(t *testing.T) {
		f := newEdgeFixture(ctrl, orgID)

		_, err := f.svc.Create(context.Background(), actor, orgID, service.CreateEdgeInput{
			EdgeTypeKey:  "subcontracts_for",
			FromNodeType: "person",
			FromNodeID:   fromID,
			ToNodeType:   "person",
			ToNodeID:     toID,
		})
		assert.True(t, errors.Is(err, domain.ErrBadRequest))
		assert.Contains(t, err.Error(), "subcontracts_for")
	})

	t.Run("self-edge is rejected", func(t *testing.T) {
		f := newEdgeFixture(ctrl, orgID)

		_, err := f.svc.Create(context.Background(), actor, orgID, service.CreateEdgeInput{
			EdgeTypeKey:  "works_with",
			FromNodeType: "person",
			FromNodeID:   fromID,
			ToNodeType:   "person",
			ToNodeID:     fromID,
		})
		assert.True(t, errors.Is(err, domain.ErrBadRequest))
	})

	t.Run("missing endpoint yields not found", func(t *testing.T) {
		f := newEdgeFixture(ctrl, orgID)

		f.nodeRepo.EXPECT().ExistsActive(gomock.Any(), orgID, model.NodePerson, fromID).Return(false, nil)

		_, err := f.svc.Create(context.Background(), actor, orgID, service.CreateEdgeInput{
			EdgeTypeKey:  "works_with",
			FromNodeType: "person",
			FromNodeID:   fromID,
			ToNodeType:   "person",
			ToNodeID:     toID,
		})
		assert.True(t, errors.Is(err, domain.ErrNotFound))
	})

	t.Run("non-object metadata is rejected", func(t *testing.T) {
		f := newEdgeFixture(ctrl, orgID)

		_, err := f.svc.Create(context.Background(), actor, orgID, service.CreateEdgeInput{
			EdgeTypeKey:  "works_with",
			FromNodeType: "person",
			FromNodeID:   fromID,
			ToNodeType:   "person",
			ToNodeID:     toID,
			Metadata:     []byte(`["not", "an", "object"]`),
		})
		assert.True(t, errors.Is(err, domain.ErrBadRequest))
	})

	t.Run("duplicate active identity conflicts", func(t *testing.T) {
		f := newEdgeFixture(ctrl, orgID)

		f.nodeRepo.EXPECT().ExistsActive(gomock.Any(), orgID, model.NodePerson, fromID).Return(true, nil)
		f.nodeRepo.EXPECT().ExistsActive(gomock.Any(), orgID, model.NodePerson, toID).Return(true, nil)
		f.edgeRepo.EXPECT().FindActiveByIdentity(gomock.Any(), orgID, gomock.Any(), nil).
			Return(&model.GraphEdge{ID: uuid.New()}, nil)

		_, err := f.svc.Create(context.Background(), actor, orgID, service.CreateEdgeInput{
			EdgeTypeKey:  "works_with",
			FromNodeType: "person",
			FromNodeID:   fromID,
			ToNodeType:   "person",
			ToNodeID:     toID,
		})
		assert.True(t, errors.Is(err, domain.ErrConflict))
	})
}

func TestGraphEdgeArchiveUnarchive(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orgID := uuid.New()
	actor := orgAdmin(orgID)

	edgeID := uuid.New()
	baseEdge := func() *model.GraphEdge {
		return &model.GraphEdge{
			ID:           edgeID,
			OrgID:        orgID,
			EdgeTypeKey:  "works_with",
			FromNodeType: model.NodePerson,
			FromNodeID:   uuid.New(),
			ToNodeType:   model.NodePerson,
			ToNodeID:     uuid.New(),
		}
	}

	t.Run("archive stamps archived_at", func(t *testing.T) {
		f := newEdgeFixture(ctrl, orgID)

		edge := baseEdge()
		f.edgeRepo.EXPECT().FindByID(gomock.Any(), orgID, edgeID).Return(edge, nil)
		f.edgeRepo.EXPECT().Save(gomock.Any(), edge).Return(nil)

		got, err := f.svc.Archive(context.Background(), actor, orgID, edgeID)
		assert.NoError(t, err)
		assert.NotNil(t, got.ArchivedAt)
	})

	t.Run("archive is idempotent", func(t *testing.T) {
		f := newEdgeFixture(ctrl, orgID)

		edge := baseEdge()
		archivedAt := time.Now().UTC()
		edge.ArchivedAt = &archivedAt
		f.edgeRepo.EXPECT().FindByID(gomock.Any(), orgID, edgeID).Return(edge, nil)

		got, err := f.svc.Archive(context.Background(), actor, orgID, edgeID)
		assert.NoError(t, err)
		assert.Equal(t, &archivedAt, got.ArchivedAt)
	})

	t.Run("archive is blocked under legal hold", func(t *testing.T) {
		f := newEdgeFixture(ctrl, orgID)

		edge := baseEdge()
		edge.LegalHold = true
		f.edgeRepo.EXPECT().FindByID(gomock.Any(), orgID, edgeID).Return(edge, nil)

		_, err := f.svc.Archive(context.Background(), actor, orgID, edgeID)
		assert.True(t, errors.Is(err, domain.ErrForbidden))
	})

	t.Run("unarchive is blocked under legal hold", func(t *testing.T) {
		f := newEdgeFixture(ctrl, orgID)

		edge := baseEdge()
		archivedAt := time.Now().UTC()
		edge.ArchivedAt = &archivedAt
		edge.LegalHold = true
		f.edgeRepo.EXPECT().FindByID(gomock.Any(), orgID, edgeID).Return(edge, nil)

		_, err := f.svc.Unarchive(context.Background(), actor, orgID, edgeID)
		assert.True(t, errors.Is(err, domain.ErrForbidden))
		assert.NotNil(t, edge.ArchivedAt)
	})

	t.Run("unarchive restores when identity is free", func(t *testing.T) {
		f := newEdgeFixture(ctrl, orgID)

		edge := baseEdge()
		archivedAt := time.Now().UTC()
		edge.ArchivedAt = &archivedAt
		f.edgeRepo.EXPECT().FindByID(gomock.Any(), orgID, edgeID).Return(edge, nil)
		f.edgeRepo.EXPECT().FindActiveByIdentity(gomock.Any(), orgID, edge.Identity(), &edge.ID).Return(nil, nil)
		f.edgeRepo.EXPECT().Save(gomock.Any(), edge).Return(nil)

		got, err := f.svc.Unarchive(context.Background(), actor, orgID, edgeID)
		assert.NoError(t, err)
		assert.Nil(t, got.ArchivedAt)
	})

	t.Run("unarchive conflicts with a newer active edge", func(t *testing.T) {
		f := newEdgeFixture(ctrl, orgID)

		edge := baseEdge()
		archivedAt := time.Now().UTC()
		edge.ArchivedAt = &archivedAt
		replacement := baseEdge()
		replacement.ID = uuid.New()
		f.edgeRepo.EXPECT().FindByID(gomock.Any(), orgID, edgeID).Return(edge, nil)
		f.edgeRepo.EXPECT().FindActiveByIdentity(gomock.Any(), orgID, edge.Identity(), &edge.ID).Return(replacement, nil)

		_, err := f.svc.Unarchive(context.Background(), actor, orgID, edgeID)
		assert.True(t, errors.Is(err, domain.ErrConflict))
	})

	t.Run("repeat archive and unarchive still land in the audit trail", func(t *testing.T) {
		orgRepo := mocks.NewMockOrganizationRepositoryIface(ctrl)
		edgeRepo := mocks.NewMockGraphEdgeRepositoryIface(ctrl)
		tenants := mocks.NewMockTenantRepositoriesIface(ctrl)
		eventRepo := mocks.NewMockEventLogRepositoryIface(ctrl)

		orgRepo.EXPECT().FindByID(gomock.Any(), orgID).Return(activeOrg(orgID), nil).AnyTimes()
		tenants.EXPECT().GraphEdges(gomock.Any(), orgID).Return(edgeRepo, nil).AnyTimes()

		orgs := newOrgService(orgRepo)
		events := service.NewEventLogService(eventRepo)
		taxonomies := service.NewTaxonomyService(tenants, orgs, events)
		svc := service.NewGraphEdgeService(tenants, orgs, taxonomies, events)

		var recorded []string
		eventRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, e *model.EventLog) error {
				recorded = append(recorded, e.EventType)
				return nil
			}).Times(2)

		// Already archived: no write, but the event is still recorded.
		archived := baseEdge()
		archivedAt := time.Now().UTC()
		archived.ArchivedAt = &archivedAt
		edgeRepo.EXPECT().FindByID(gomock.Any(), orgID, edgeID).Return(archived, nil)

		_, err := svc.Archive(context.Background(), actor, orgID, edgeID)
		assert.NoError(t, err)

		// Already active: same for unarchive.
		active := baseEdge()
		edgeRepo.EXPECT().FindByID(gomock.Any(), orgID, edgeID).Return(active, nil)

		_, err = svc.Unarchive(context.Background(), actor, orgID, edgeID)
		assert.NoError(t, err)

		assert.Equal(t, []string{"graph_edge.archived", "graph_edge.unarchived"}, recorded)
	})

	t.Run("unknown edge yields not found", func(t *testing.T) {
		f := newEdgeFixture(ctrl, orgID)

		f.edgeRepo.EXPECT().FindByID(gomock.Any(), orgID, edgeID).
			Return(nil, domain.NotFoundf("graph edge %s not found", edgeID))

		_, err := f.svc.Archive(context.Background(), actor, orgID, edgeID)
		assert.True(t, errors.Is(err, domain.ErrNotFound))
	})
}

func TestGraphEdgeList(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orgID := uuid.New()
	actor := orgAdmin(orgID)

	t.Run("no pagination returns everything", func(t *testing.T) {
		f := newEdgeFixture(ctrl, orgID)

		rows := []*model.GraphEdge{{ID: uuid.New()}, {ID: uuid.New()}, {ID: uuid.New()}}
		f.edgeRepo.EXPECT().ListPage(gomock.Any(), orgID, gomock.Any(), 0, -1).Return(rows, int64(3), nil)

		page, err := f.svc.List(context.Background(), actor, orgID, service.ListEdgesInput{})
		assert.NoError(t, err)
		assert.Len(t, page.Data, 3)
		assert.Equal(t, int64(3), page.Total)
		assert.Equal(t, 3, page.Limit)
	})

	t.Run("explicit pagination clamps the limit", func(t *testing.T) {
		f := newEdgeFixture(ctrl, orgID)

		f.edgeRepo.EXPECT().ListPage(gomock.Any(), orgID, gomock.Any(), 100, 100).
			Return([]*model.GraphEdge{}, int64(150), nil)

		page, err := f.svc.List(context.Background(), actor, orgID, service.ListEdgesInput{Page: 2, Limit: 500})
		assert.NoError(t, err)
		assert.Equal(t, 2, page.Page)
		assert.Equal(t, 100, page.Limit)
	})

	t.Run("unknown node type filter is rejected", func(t *testing.T) {
		f := newEdgeFixture(ctrl, orgID)

		_, err := f.svc.List(context.Background(), actor, orgID, service.ListEdgesInput{FromNodeType: "robot"})
		assert.True(t, errors.Is(err, domain.ErrBadRequest))
	})
}

func TestGraphEdgeGetByID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orgID := uuid.New()
	actor := orgAdmin(orgID)
	edgeID := uuid.New()

	t.Run("archived edge is hidden by default", func(t *testing.T) {
		f := newEdgeFixture(ctrl, orgID)

		archivedAt := time.Now().UTC()
		f.edgeRepo.EXPECT().FindByID(gomock.Any(), orgID, edgeID).
			Return(&model.GraphEdge{ID: edgeID, ArchivedAt: &archivedAt}, nil).Times(2)

		_, err := f.svc.GetByID(context.Background(), actor, orgID, edgeID, false)
		assert.True(t, errors.Is(err, domain.ErrNotFound))

		edge, err := f.svc.GetByID(context.Background(), actor, orgID, edgeID, true)
		assert.NoError(t, err)
		assert.Equal(t, edgeID, edge.ID)
	})
}
