package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/semtask/semtask-cli/internal/core/domain"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestNewStore_RunsMigrations(t *testing.T) {
	store := newTestStore(t)

	// Reopening the same directory must not re-apply migrations.
	second, err := NewStore(t.TempDir())
	require.NoError(t, err)
	defer second.Close()

	assert.NotEmpty(t, store.Path())
}

func TestUserStore_SaveGetList(t *testing.T) {
	store := newTestStore(t)
	users := store.UserStore()
	ctx := context.Background()

	require.NoError(t, users.Save(ctx, domain.User{ID: "u1", Email: "u1@example.com", Name: "One"}))
	require.NoError(t, users.Save(ctx, domain.User{ID: "u2", Email: "u2@example.com"}))

	user, err := users.Get(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "u1@example.com", user.Email)
	assert.Equal(t, "One", user.Name)
	assert.False(t, user.CreatedAt.IsZero())

	_, err = users.Get(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	all, err := users.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestUserStore_SaveIsUpsert(t *testing.T) {
	store := newTestStore(t)
	users := store.UserStore()
	ctx := context.Background()

	require.NoError(t, users.Save(ctx, domain.User{ID: "u1", Email: "old@example.com"}))
	require.NoError(t, users.Save(ctx, domain.User{ID: "u1", Email: "new@example.com"}))

	user, err := users.Get(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "new@example.com", user.Email)
}

func TestTaskStore_CRUD(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	require.NoError(t, store.UserStore().Save(ctx, domain.User{ID: "u1"}))
	tasks := store.TaskStore()

	require.NoError(t, tasks.Save(ctx, domain.Task{ID: "t1", UserID: "u1", Description: "buy milk"}))
	require.NoError(t, tasks.Save(ctx, domain.Task{ID: "t2", UserID: "u1", Description: "call mom"}))

	task, err := tasks.Get(ctx, "t1")
	require.NoError(t, err)
	assert.Equal(t, "buy milk", task.Description)

	list, err := tasks.ListByUser(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "t1", list[0].ID)

	require.NoError(t, tasks.Delete(ctx, "t1"))
	_, err = tasks.Get(ctx, "t1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, tasks.Delete(ctx, "t1"), domain.ErrNotFound)
}

func TestTaskStore_ListByUser_UnknownUser(t *testing.T) {
	store := newTestStore(t)

	_, err := store.TaskStore().ListByUser(context.Background(), "ghost")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestTaskStore_ListByUser_KnownUserNoTasks(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	require.NoError(t, store.UserStore().Save(ctx, domain.User{ID: "u1"}))

	list, err := store.TaskStore().ListByUser(ctx, "u1")

	require.NoError(t, err)
	assert.Empty(t, list)
}
