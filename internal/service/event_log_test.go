package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/crewforge/backoffice/internal/domain"
	"github.com/crewforge/backoffice/internal/mocks"
	"github.com/crewforge/backoffice/internal/model"
	"github.com/crewforge/backoffice/internal/repository"
	"github.com/crewforge/backoffice/internal/service"
)

func TestEventLogRecord(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("persists the event", func(t *testing.T) {
		repo := mocks.NewMockEventLogRepositoryIface(ctrl)

		orgID := uuid.New()
		actor := orgAdmin(orgID)
		entityID := uuid.New()

		var recorded *model.EventLog
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, e *model.EventLog) error {
				recorded = e
				return nil
			})

		svc := service.NewEventLogService(repo)
		svc.Record(context.Background(), service.EventInput{
			EventType:  "graph_edge.created",
			Action:     "create",
			EntityType: "graph_edge",
			EntityID:   &entityID,
			Actor:      &actor,
			OrgID:      &orgID,
		})

		assert.NotNil(t, recorded)
		assert.Equal(t, "graph_edge.created", recorded.EventType)
		assert.Equal(t, &entityID, recorded.EntityID)
		assert.Equal(t, actor.UserID, *recorded.ActorUserID)
		assert.NotNil(t, recorded.Metadata)
	})

	t.Run("write failure is swallowed", func(t *testing.T) {
		repo := mocks.NewMockEventLogRepositoryIface(ctrl)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("connection reset"))

		svc := service.NewEventLogService(repo)
		svc.Record(context.Background(), service.EventInput{EventType: "taxonomy.updated"})
	})

	t.Run("nil service is a no-op", func(t *testing.T) {
		var svc *service.EventLogService
		svc.Record(context.Background(), service.EventInput{EventType: "noop"})
	})
}

func TestEventLogList(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orgID := uuid.New()
	actor := orgAdmin(orgID)

	t.Run("filter is pinned to the caller org", func(t *testing.T) {
		repo := mocks.NewMockEventLogRepositoryIface(ctrl)

		repo.EXPECT().ListPage(gomock.Any(), gomock.Any(), 0, 25).
			DoAndReturn(func(_ context.Context, filter repository.EventFilter, _, _ int) ([]*model.EventLog, int64, error) {
				assert.Equal(t, orgID, *filter.OrgID)
				assert.Equal(t, "graph_edge.created", filter.EventType)
				return []*model.EventLog{{ID: uuid.New()}}, 1, nil
			})

		svc := service.NewEventLogService(repo)
		page, err := svc.List(context.Background(), actor, orgID, service.ListEventsInput{EventType: "graph_edge.created"})
		assert.NoError(t, err)
		assert.Len(t, page.Data, 1)
		assert.Equal(t, 25, page.Limit)
	})

	t.Run("foreman may not read the audit log", func(t *testing.T) {
		repo := mocks.NewMockEventLogRepositoryIface(ctrl)
		svc := service.NewEventLogService(repo)

		foreman := domain.Actor{UserID: uuid.New(), OrgID: orgID, Role: "foreman"}
		_, err := svc.List(context.Background(), foreman, orgID, service.ListEventsInput{})
		assert.True(t, errors.Is(err, domain.ErrForbidden))
	})
}
