package service

import (
	"errors"
	"testing"

	"ai-notecapture-be/internal/dto"
	"ai-notecapture-be/internal/entity"
	"ai-notecapture-be/internal/pkg/serverutils"
	"ai-notecapture-be/pkg/events"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotebookServiceCreate(t *testing.T) {
	tests := []struct {
		name      string
		req       dto.CreateNotebookRequest
		wantIcon  string
		wantColor string
		wantErr   bool
	}{
		{name: "defaults", req: dto.CreateNotebookRequest{Name: "  Research  "}, wantIcon: "📓", wantColor: "blue"},
		{name: "palette icon", req: dto.CreateNotebookRequest{Name: "Ideas", Icon: "💡", Color: "amber"}, wantIcon: "💡", wantColor: "amber"},
		{name: "unknown icon", req: dto.CreateNotebookRequest{Name: "Ideas", Icon: "🍕"}, wantErr: true},
		{name: "blank name", req: dto.CreateNotebookRequest{Name: "   "}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			res, err := f.notebookService().Create(f.ctx, &tt.req)
			if tt.wantErr {
				var appErr *serverutils.AppError
				require.True(t, errors.As(err, &appErr))
				assert.Equal(t, 400, appErr.Code)
				return
			}
			require.NoError(t, err)
			assert.NotEmpty(t, res.Id)
			assert.Equal(t, tt.wantIcon, res.Icon)
			assert.Equal(t, tt.wantColor, res.Color)
			assert.Zero(t, res.ItemCount)
			assert.Equal(t, []string{events.NotebookCreated}, f.events.types())
		})
	}

	t.Run("name is trimmed", func(t *testing.T) {
		f := newFixture(t)
		res := f.createNotebook(t, "  Research  ")
		assert.Equal(t, "Research", res.Name)
	})
}

func TestNotebookServiceGetAllFiltersByName(t *testing.T) {
	f := newFixture(t)
	f.createNotebook(t, "Go Patterns")
	f.createNotebook(t, "Recipes")
	f.createNotebook(t, "golang snippets")

	svc := f.notebookService()

	all, err := svc.GetAll(f.ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	found, err := svc.GetAll(f.ctx, "GO")
	require.NoError(t, err)
	require.Len(t, found, 2)
	assert.Equal(t, "Go Patterns", found[0].Name)
	assert.Equal(t, "golang snippets", found[1].Name)
}

func TestNotebookServiceShowAndUpdate(t *testing.T) {
	f := newFixture(t)
	svc := f.notebookService()
	nb := f.createNotebook(t, "Old")

	_, err := svc.Show(f.ctx, "missing")
	assert.ErrorIs(t, err, ErrNotebookNotFound)

	res, err := svc.Update(f.ctx, &dto.UpdateNotebookRequest{Id: nb.Id, Name: strPtr(" New "), Icon: strPtr("🎯")})
	require.NoError(t, err)
	assert.Equal(t, "New", res.Name)
	assert.Equal(t, "🎯", res.Icon)
	assert.Equal(t, "blue", res.Color)
	assert.False(t, res.UpdatedAt.Before(nb.UpdatedAt))

	_, err = svc.Update(f.ctx, &dto.UpdateNotebookRequest{Id: nb.Id, Icon: strPtr("x")})
	require.Error(t, err)

	_, err = svc.Update(f.ctx, &dto.UpdateNotebookRequest{Id: "missing", Name: strPtr("x")})
	assert.ErrorIs(t, err, ErrNotebookNotFound)
}

func TestNotebookServiceDeleteCascades(t *testing.T) {
	f := newFixture(t)
	svc := f.notebookService()

	doomed := f.createNotebook(t, "Doomed")
	kept := f.createNotebook(t, "Kept")
	f.addContent(t, doomed.Id, "a", "alpha")
	f.addContent(t, doomed.Id, "b", "beta")
	f.addContent(t, kept.Id, "c", "gamma")

	_, err := f.chat.Append(f.ctx, entity.NewChatMessage{NotebookId: doomed.Id, Role: entity.ChatRoleUser, Content: "hi"})
	require.NoError(t, err)
	_, err = f.chat.Append(f.ctx, entity.NewChatMessage{NotebookId: kept.Id, Role: entity.ChatRoleUser, Content: "hello"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(f.ctx, doomed.Id))

	_, err = svc.Show(f.ctx, doomed.Id)
	assert.ErrorIs(t, err, ErrNotebookNotFound)

	orphans, err := f.content.ListByNotebook(f.ctx, doomed.Id)
	require.NoError(t, err)
	assert.Empty(t, orphans)
	history, err := f.chat.ListByNotebook(f.ctx, doomed.Id)
	require.NoError(t, err)
	assert.Empty(t, history)

	remaining, err := f.content.ListByNotebook(f.ctx, kept.Id)
	require.NoError(t, err)
	assert.Len(t, remaining, 1)
	keptHistory, err := f.chat.ListByNotebook(f.ctx, kept.Id)
	require.NoError(t, err)
	assert.Len(t, keptHistory, 1)

	assert.Contains(t, f.events.types(), events.NotebookDeleted)
	assert.ErrorIs(t, svc.Delete(f.ctx, doomed.Id), ErrNotebookNotFound)
}
