package service

import (
	"context"
	"testing"

	"modern-assistant-be/internal/constant"
	"modern-assistant-be/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSettingsFixture() (ISettingsService, *fakeSettingsRepo) {
	conversations := newFakeConversationRepo()
	uow := &fakeUnitOfWork{
		conversations: conversations,
		messages:      &fakeMessageRepo{conversations: conversations},
		tasks:         &fakeTaskRepo{},
		settings:      &fakeSettingsRepo{},
	}
	return NewSettingsService(&fakeRepositoryFactory{uow: uow}), uow.settings
}

func TestSettingsGetSeedsDefaults(t *testing.T) {
	svc, repo := newSettingsFixture()

	res, err := svc.Get(context.Background())
	require.NoError(t, err)

	assert.Equal(t, constant.DefaultAssistantName, res.AssistantName)
	assert.Equal(t, constant.DefaultSystemInstructions, res.SystemInstructions)
	assert.Equal(t, 1, repo.createCalls)

	// A second read reuses the seeded row.
	_, err = svc.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, repo.createCalls)
}

func TestSettingsUpdatePatchesOnlyProvidedFields(t *testing.T) {
	svc, repo := newSettingsFixture()

	name := "Atlas"
	res, err := svc.Update(context.Background(), &dto.UpdateSettingsRequest{AssistantName: &name})
	require.NoError(t, err)

	assert.Equal(t, "Atlas", res.AssistantName)
	assert.Equal(t, constant.DefaultSystemInstructions, res.SystemInstructions)
	assert.Equal(t, "Atlas", repo.settings.AssistantName)
}

func TestSettingsUpdateNoChangeSkipsWrite(t *testing.T) {
	svc, repo := newSettingsFixture()

	first, err := svc.Get(context.Background())
	require.NoError(t, err)

	same := first.AssistantName
	res, err := svc.Update(context.Background(), &dto.UpdateSettingsRequest{AssistantName: &same})
	require.NoError(t, err)

	assert.Equal(t, first.UpdatedAt, res.UpdatedAt)
	assert.Equal(t, first.UpdatedAt, repo.settings.UpdatedAt)
}

func TestSettingsUpdateEmptyRequestIsNoop(t *testing.T) {
	svc, _ := newSettingsFixture()

	res, err := svc.Update(context.Background(), &dto.UpdateSettingsRequest{})
	require.NoError(t, err)

	assert.Equal(t, constant.DefaultAssistantName, res.AssistantName)
}
