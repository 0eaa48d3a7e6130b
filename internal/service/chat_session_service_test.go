package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"ai-realestate-be/internal/constant"
	"ai-realestate-be/internal/entity"
	"ai-realestate-be/internal/pkg/apperror"
	"ai-realestate-be/internal/pkg/idgen"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newChatService(t *testing.T) (*fixture, IChatSessionService) {
	t.Helper()
	f := newFixture(t)
	frozen := time.UnixMilli(1718000000000)
	clock := idgen.NewClockAt(func() time.Time { return frozen })
	return f, NewChatSessionService(f.factory, clock, f.log)
}

func TestOpenOrCreateOutcomes(t *testing.T) {
	ctx := context.Background()
	f, svc := newChatService(t)
	p := entity.ProductCompliance

	created, err := svc.OpenOrCreate(ctx, p, "Fair Housing Laws")
	require.NoError(t, err)
	assert.Equal(t, OutcomeCreated, created.Outcome)
	assert.Equal(t, "/compliance/chat/1718000000000", created.Path)
	writes := f.notifier.count()

	reused, err := svc.OpenOrCreate(ctx, p, "  Fair Housing Laws ")
	require.NoError(t, err)
	assert.Equal(t, OutcomeReused, reused.Outcome)
	assert.Equal(t, created.Path, reused.Path)
	assert.Equal(t, writes, f.notifier.count(), "reuse writes nothing")

	_, err = svc.Hide(ctx, p, created.Path)
	require.NoError(t, err)

	revived, err := svc.OpenOrCreate(ctx, p, "Fair Housing Laws")
	require.NoError(t, err)
	assert.Equal(t, OutcomeRevived, revived.Outcome)
	assert.Equal(t, created.Path, revived.Path)

	chats, err := svc.List(ctx, p)
	require.NoError(t, err)
	require.Len(t, chats, 1)
	assert.False(t, chats[0].Hidden)
}

func TestOpenOrCreateRejectsBadTitle(t *testing.T) {
	_, svc := newChatService(t)

	for _, title := range []string{"", "  ", "line\nbreak"} {
		_, err := svc.OpenOrCreate(context.Background(), entity.ProductCoach, title)
		var verr *apperror.ValidationError
		assert.True(t, errors.As(err, &verr), "title %q", title)
	}
}

func TestOpenOrCreateConcurrentSameTitle(t *testing.T) {
	ctx := context.Background()
	_, svc := newChatService(t)

	var wg sync.WaitGroup
	paths := make([]string, 10)
	for i := range paths {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			res, err := svc.OpenOrCreate(ctx, entity.ProductCoach, "Objection Handling")
			if assert.NoError(t, err) {
				paths[i] = res.Path
			}
		}(i)
	}
	wg.Wait()

	chats, err := svc.List(ctx, entity.ProductCoach)
	require.NoError(t, err)
	require.Len(t, chats, 1)
	for _, p := range paths {
		assert.Equal(t, chats[0].Path, p)
	}
}

func TestNewChatAlwaysCreates(t *testing.T) {
	ctx := context.Background()
	_, svc := newChatService(t)
	p := entity.ProductContent

	first, err := svc.NewChat(ctx, p, "")
	require.NoError(t, err)
	second, err := svc.NewChat(ctx, p, "")
	require.NoError(t, err)

	assert.Equal(t, constant.NewChatTitle, first.Title)
	assert.NotEqual(t, first.Path, second.Path, "same millisecond still yields distinct ids")

	chats, err := svc.List(ctx, p)
	require.NoError(t, err)
	assert.Len(t, chats, 2)
}

func TestChatPinAndRename(t *testing.T) {
	ctx := context.Background()
	f, svc := newChatService(t)
	p := entity.ProductCoach

	a, err := svc.NewChat(ctx, p, "First")
	require.NoError(t, err)
	b, err := svc.NewChat(ctx, p, "Second")
	require.NoError(t, err)

	_, err = svc.TogglePin(ctx, p, b.Path)
	require.NoError(t, err)

	chats, err := svc.List(ctx, p)
	require.NoError(t, err)
	assert.Equal(t, b.Path, chats[0].Path)
	assert.Equal(t, a.Path, chats[1].Path)

	writes := f.notifier.count()
	same, err := svc.Rename(ctx, p, a.Path, "   ")
	require.NoError(t, err)
	assert.Equal(t, "First", same.Title)
	assert.Equal(t, writes, f.notifier.count())

	_, err = svc.Rename(ctx, p, a.Path, "two\nlines")
	var verr *apperror.ValidationError
	assert.True(t, errors.As(err, &verr))

	renamed, err := svc.Rename(ctx, p, a.Path, "Buyer Consultation")
	require.NoError(t, err)
	assert.Equal(t, "Buyer Consultation", renamed.Title)

	_, err = svc.Hide(ctx, p, "/coach/chat/404")
	assert.ErrorIs(t, err, apperror.ErrChatNotFound)
}

func TestResolve(t *testing.T) {
	ctx := context.Background()
	_, svc := newChatService(t)
	p := entity.ProductCompliance

	opened, err := svc.OpenOrCreate(ctx, p, "RESPA Guidelines")
	require.NoError(t, err)
	_, err = svc.Hide(ctx, p, opened.Path)
	require.NoError(t, err)

	chat, err := svc.Resolve(ctx, p, opened.Path)
	require.NoError(t, err, "hidden sessions stay addressable")
	assert.Equal(t, "RESPA Guidelines", chat.Title)

	_, err = svc.Resolve(ctx, p, "/compliance/chat/1")
	var redirect *apperror.RedirectError
	require.True(t, errors.As(err, &redirect))
	assert.Equal(t, "/compliance", redirect.To)
	assert.ErrorIs(t, err, apperror.ErrChatNotFound)
}

func TestCorruptChatCollection(t *testing.T) {
	ctx := context.Background()
	f, svc := newChatService(t)
	p := entity.ProductCoach
	key := constant.ActiveChatsKey(p)

	require.NoError(t, f.store.Set(ctx, key, []byte("not json")))

	chats, err := svc.List(ctx, p)
	require.NoError(t, err)
	assert.Empty(t, chats, "corrupt collections list as empty")

	_, err = svc.Resolve(ctx, p, "/coach/chat/1718000000000")
	var redirect *apperror.RedirectError
	require.True(t, errors.As(err, &redirect))
	assert.Equal(t, "/coach", redirect.To)
	assert.ErrorIs(t, err, apperror.ErrCorruptCollection)

	raw, found, err := f.store.Get(ctx, key)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "[]", strings.TrimSpace(string(raw)))
	assert.Equal(t, []string{key}, f.notifier.last())

	opened, err := svc.OpenOrCreate(ctx, p, "Lead Nurturing")
	require.NoError(t, err)
	assert.Equal(t, OutcomeCreated, opened.Outcome)
}

func TestCorruptResetKeepsConcurrentRepair(t *testing.T) {
	ctx := context.Background()
	f, svc := newChatService(t)
	p := entity.ProductCompliance
	key := constant.ActiveChatsKey(p)

	// Hold the write lock while the collection is corrupt.
	repair := f.factory.NewUnitOfWork(ctx)
	require.NoError(t, repair.Begin(ctx))
	require.NoError(t, f.store.Set(ctx, key, []byte("{oops")))

	done := make(chan error, 1)
	go func() {
		_, err := svc.Resolve(ctx, p, "/compliance/chat/1")
		done <- err
	}()

	time.Sleep(50 * time.Millisecond)
	repaired := []*entity.ActiveChat{{Title: "Contract Review", Path: "/compliance/chat/7"}}
	require.NoError(t, repair.ActiveChatRepository(p).SaveAll(ctx, repaired))
	require.NoError(t, repair.Commit())

	select {
	case err := <-done:
		var redirect *apperror.RedirectError
		assert.True(t, errors.As(err, &redirect))
	case <-time.After(2 * time.Second):
		t.Fatal("Resolve did not return")
	}

	chats, err := svc.List(ctx, p)
	require.NoError(t, err)
	require.Len(t, chats, 1, "reset must not wipe a collection repaired under the lock")
	assert.Equal(t, "Contract Review", chats[0].Title)
}
