package adapters

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/madrasah-accounts/backend/internal/application/adapter"
	domainerror "github.com/madrasah-accounts/backend/internal/domain/error"
)

func newTestStore(t *testing.T) (adapter.SessionStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisSessionStore(client), mr
}

func TestRedisSessionStore(t *testing.T) {
	ctx := context.Background()

	t.Run("save then get round-trips the user type", func(t *testing.T) {
		store, _ := newTestStore(t)

		if err := store.Save(ctx, "sid-1", adapter.UserTypeAdmin, time.Hour); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		userType, err := store.Get(ctx, "sid-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if userType != adapter.UserTypeAdmin {
			t.Errorf("expected admin, got %s", userType)
		}
	})

	t.Run("unknown session yields ErrSessionNotFound", func(t *testing.T) {
		store, _ := newTestStore(t)

		_, err := store.Get(ctx, "missing")
		if !errors.Is(err, domainerror.ErrSessionNotFound) {
			t.Errorf("expected ErrSessionNotFound, got %v", err)
		}
	})

	t.Run("delete revokes the session", func(t *testing.T) {
		store, _ := newTestStore(t)

		if err := store.Save(ctx, "sid-2", adapter.UserTypeTrial, time.Hour); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := store.Delete(ctx, "sid-2"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := store.Get(ctx, "sid-2"); !errors.Is(err, domainerror.ErrSessionNotFound) {
			t.Errorf("expected ErrSessionNotFound after delete, got %v", err)
		}
	})

	t.Run("deleting an unknown session is not an error", func(t *testing.T) {
		store, _ := newTestStore(t)
		if err := store.Delete(ctx, "never-existed"); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("session expires with its TTL", func(t *testing.T) {
		store, mr := newTestStore(t)

		if err := store.Save(ctx, "sid-3", adapter.UserTypeAdmin, time.Minute); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		mr.FastForward(2 * time.Minute)

		if _, err := store.Get(ctx, "sid-3"); !errors.Is(err, domainerror.ErrSessionNotFound) {
			t.Errorf("expected ErrSessionNotFound after expiry, got %v", err)
		}
	})
}
