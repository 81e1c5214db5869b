package service

import (
	"context"
	"testing"
	"time"

	"modern-assistant-be/internal/constant"
	"modern-assistant-be/internal/dto"
	"modern-assistant-be/internal/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTaskFixture() (ITaskService, *fakeUnitOfWork) {
	conversations := newFakeConversationRepo()
	uow := &fakeUnitOfWork{
		conversations: conversations,
		messages:      &fakeMessageRepo{conversations: conversations},
		tasks:         &fakeTaskRepo{},
		settings:      &fakeSettingsRepo{},
	}
	return NewTaskService(&fakeRepositoryFactory{uow: uow}), uow
}

func TestTaskCreateDefaultsToPending(t *testing.T) {
	svc, uow := newTaskFixture()

	res, err := svc.Create(context.Background(), &dto.CreateTaskRequest{
		Title:       "Send invoice",
		Description: "Invoice for the June batch",
	})
	require.NoError(t, err)

	assert.Equal(t, constant.TaskStatusPending, res.Status)
	assert.Nil(t, res.ConversationId)
	require.Len(t, uow.tasks.items, 1)
	assert.Equal(t, "Send invoice", uow.tasks.items[0].Title)
}

func TestTaskCreateValidatesConversation(t *testing.T) {
	svc, uow := newTaskFixture()

	missing := uuid.New()
	_, err := svc.Create(context.Background(), &dto.CreateTaskRequest{
		Title:          "Follow up",
		ConversationId: &missing,
	})
	assert.ErrorIs(t, err, ErrConversationNotFound)

	conversation := entity.Conversation{Id: uuid.New(), Title: "q3", CreatedAt: time.Now(), UpdatedAt: time.Now()}
	require.NoError(t, uow.conversations.Create(context.Background(), &conversation))

	res, err := svc.Create(context.Background(), &dto.CreateTaskRequest{
		Title:          "Follow up",
		ConversationId: &conversation.Id,
	})
	require.NoError(t, err)
	require.NotNil(t, res.ConversationId)
	assert.Equal(t, conversation.Id, *res.ConversationId)
}

func TestTaskUpdatePatchesProvidedFields(t *testing.T) {
	svc, _ := newTaskFixture()

	created, err := svc.Create(context.Background(), &dto.CreateTaskRequest{Title: "Draft deck"})
	require.NoError(t, err)

	status := constant.TaskStatusCompleted
	updated, err := svc.Update(context.Background(), &dto.UpdateTaskRequest{
		Id:     created.Id,
		Status: &status,
	})
	require.NoError(t, err)

	assert.Equal(t, constant.TaskStatusCompleted, updated.Status)
	assert.Equal(t, "Draft deck", updated.Title)
}

func TestTaskUpdateUnknownTask(t *testing.T) {
	svc, _ := newTaskFixture()

	title := "nope"
	_, err := svc.Update(context.Background(), &dto.UpdateTaskRequest{
		Id:    uuid.New(),
		Title: &title,
	})
	assert.ErrorIs(t, err, ErrTaskNotFound)
}

func TestTaskShowUnknownTask(t *testing.T) {
	svc, _ := newTaskFixture()

	_, err := svc.Show(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrTaskNotFound)
}

func TestTaskGetAllFiltersByStatus(t *testing.T) {
	svc, _ := newTaskFixture()

	first, err := svc.Create(context.Background(), &dto.CreateTaskRequest{Title: "one"})
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), &dto.CreateTaskRequest{Title: "two"})
	require.NoError(t, err)

	status := constant.TaskStatusInProgress
	_, err = svc.Update(context.Background(), &dto.UpdateTaskRequest{Id: first.Id, Status: &status})
	require.NoError(t, err)

	inProgress, err := svc.GetAll(context.Background(), constant.TaskStatusInProgress)
	require.NoError(t, err)
	require.Len(t, inProgress, 1)
	assert.Equal(t, "one", inProgress[0].Title)

	all, err := svc.GetAll(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
