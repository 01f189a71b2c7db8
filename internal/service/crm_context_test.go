package service_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
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

func TestPersonDocument(t *testing.T) {
	orgID := uuid.New()
	personID := uuid.New()
	email := "rigger@site.example"

	t.Run("sparse record renders only populated lines", func(t *testing.T) {
		p := &model.Person{
			ID:           personID,
			OrgID:        orgID,
			PersonType:   model.PersonInternalUnion,
			DisplayName:  "Sam Rivera",
			PrimaryEmail: &email,
		}

		doc := service.PersonDocument(p)
		assert.Equal(t, fmt.Sprintf("crm:person:%s:%s", orgID, personID), doc.DocID)
		assert.Equal(t, "person", doc.EntityType)
		assert.Equal(t, "Sam Rivera", doc.Title)

		lines := strings.Split(doc.Text, "\n")
		assert.Equal(t, []string{
			"Name: Sam Rivera",
			"Type: internal_union",
			"Email: rigger@site.example",
		}, lines)
	})

	t.Run("identical input renders identical output", func(t *testing.T) {
		local := "401"
		p := &model.Person{
			ID:          personID,
			OrgID:       orgID,
			PersonType:  model.PersonInternalUnion,
			DisplayName: "Sam Rivera",
			SkillKeys:   []string{"rigging", "welding"},
			UnionLocal:  &local,
		}
		first := service.PersonDocument(p)
		second := service.PersonDocument(p)
		assert.Equal(t, first.Text, second.Text)
		assert.Contains(t, first.Text, "Skills: rigging, welding")
		assert.Contains(t, first.Text, "Union local: 401")
	})
}

func TestCompanyDocument(t *testing.T) {
	rating := 4.5
	c := &model.Company{
		ID:              uuid.New(),
		OrgID:           uuid.New(),
		Name:            "Acme Steel",
		NormalizedName:  "acme steel",
		CompanyTypeKeys: []string{"fabricator"},
		Rating:          &rating,
	}

	doc := service.CompanyDocument(c)
	assert.Equal(t, "Acme Steel", doc.Title)
	assert.Contains(t, doc.Text, "Rating: 4.5")
	assert.Contains(t, doc.Text, "Company types: fabricator")
	assert.Equal(t, "acme steel", doc.Metadata["normalized_name"])
}

func TestEdgeDocument(t *testing.T) {
	from := uuid.New()
	to := uuid.New()
	e := &model.GraphEdge{
		ID:           uuid.New(),
		OrgID:        uuid.New(),
		EdgeTypeKey:  "works_with",
		FromNodeType: model.NodePerson,
		FromNodeID:   from,
		ToNodeType:   model.NodePerson,
		ToNodeID:     to,
	}

	doc := service.EdgeDocument(e)
	assert.Equal(t, fmt.Sprintf("works_with: person %s -> person %s", from, to), doc.Title)
	assert.Contains(t, doc.Text, "Edge type: works_with")
	assert.NotContains(t, doc.Text, "Effective from")
}

func TestCrmContextListDocuments(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orgID := uuid.New()
	actor := orgAdmin(orgID)

	newFixture := func() (*mocks.MockCrmSourceRepositoryIface, *service.CrmContextService) {
		orgRepo := mocks.NewMockOrganizationRepositoryIface(ctrl)
		sources := mocks.NewMockCrmSourceRepositoryIface(ctrl)
		tenants := mocks.NewMockTenantRepositoriesIface(ctrl)

		orgRepo.EXPECT().FindByID(gomock.Any(), orgID).Return(activeOrg(orgID), nil).AnyTimes()
		tenants.EXPECT().CrmSources(gomock.Any(), orgID).Return(sources, nil).AnyTimes()

		return sources, service.NewCrmContextService(tenants, newOrgService(orgRepo))
	}

	t.Run("person export pages with default limit", func(t *testing.T) {
		sources, svc := newFixture()

		persons := []*model.Person{
			{ID: uuid.New(), OrgID: orgID, DisplayName: "Sam Rivera", PersonType: model.PersonInternalStaff},
			{ID: uuid.New(), OrgID: orgID, DisplayName: "Lee Park", PersonType: model.PersonExternal},
		}
		sources.EXPECT().ListPersons(gomock.Any(), orgID, false, 0, 100).Return(persons, int64(2), nil)

		page, err := svc.ListDocuments(context.Background(), actor, orgID, service.ListDocumentsInput{EntityType: "person"})
		assert.NoError(t, err)
		assert.Len(t, page.Data, 2)
		assert.Equal(t, int64(2), page.Total)
		assert.Equal(t, 100, page.Limit)
		assert.Equal(t, "Sam Rivera", page.Data[0].Title)
	})

	t.Run("limit clamps at 250", func(t *testing.T) {
		sources, svc := newFixture()

		sources.EXPECT().ListCompanies(gomock.Any(), orgID, true, 250, 250).Return(nil, int64(0), nil)

		page, err := svc.ListDocuments(context.Background(), actor, orgID, service.ListDocumentsInput{
			EntityType:      "company",
			IncludeArchived: true,
			Page:            2,
			Limit:           4000,
		})
		assert.NoError(t, err)
		assert.Equal(t, 250, page.Limit)
		assert.NotNil(t, page.Data)
	})

	t.Run("graph edge export pages like every other entity type", func(t *testing.T) {
		sources, svc := newFixture()

		edges := []*model.GraphEdge{
			{
				ID:           uuid.New(),
				OrgID:        orgID,
				EdgeTypeKey:  "works_with",
				FromNodeType: model.NodePerson,
				FromNodeID:   uuid.New(),
				ToNodeType:   model.NodePerson,
				ToNodeID:     uuid.New(),
			},
		}
		sources.EXPECT().ListGraphEdges(gomock.Any(), orgID, false, 0, 100).Return(edges, int64(1), nil)

		page, err := svc.ListDocuments(context.Background(), actor, orgID, service.ListDocumentsInput{EntityType: "graph_edge"})
		assert.NoError(t, err)
		assert.Len(t, page.Data, 1)
		assert.Equal(t, "graph_edge", page.Data[0].EntityType)
		assert.Equal(t, "works_with", page.Data[0].Metadata["edge_type_key"])
	})

	t.Run("unknown entity type is rejected", func(t *testing.T) {
		_, svc := newFixture()

		_, err := svc.ListDocuments(context.Background(), actor, orgID, service.ListDocumentsInput{EntityType: "invoice"})
		assert.True(t, errors.Is(err, domain.ErrBadRequest))
	})

	t.Run("archived documents carry their archive stamp", func(t *testing.T) {
		sources, svc := newFixture()

		archivedAt := time.Now().UTC()
		offices := []*model.Office{
			{ID: uuid.New(), OrgID: orgID, Name: "North Yard", ArchivedAt: &archivedAt},
		}
		sources.EXPECT().ListOffices(gomock.Any(), orgID, true, 0, 100).Return(offices, int64(1), nil)

		page, err := svc.ListDocuments(context.Background(), actor, orgID, service.ListDocumentsInput{
			EntityType:      "org_location",
			IncludeArchived: true,
		})
		assert.NoError(t, err)
		assert.Len(t, page.Data, 1)
		assert.NotNil(t, page.Data[0].ArchivedAt)
	})
}
