// Package preferences persists per-user interface preferences such as the
// condensed navigation flag.
package preferences

import (
	"context"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"github.com/FACorreiaa/cms-admin/internal/app/middleware"
	"github.com/FACorreiaa/cms-admin/internal/app/navpanel"
)

// Store keeps boolean preferences keyed by owner. Unknown keys read as false.
type Store interface {
	Get(ctx context.Context, owner, key string) (bool, error)
	Set(ctx context.Context, owner, key string, value bool) error
}

// Scoped binds a Store to one owner.
type Scoped struct {
	store Store
	owner string
}

var _ navpanel.PreferenceStore = Scoped{}

func ForOwner(store Store, owner string) Scoped {
	return Scoped{store: store, owner: owner}
}

func (s Scoped) Get(ctx context.Context, key string) (bool, error) {
	return s.store.Get(ctx, s.owner, key)
}

func (s Scoped) Set(ctx context.Context, key string, value bool) error {
	return s.store.Set(ctx, s.owner, key, value)
}

// Resolver picks the preference store for the request.
type Resolver func(c *gin.Context) navpanel.PreferenceStore

// SessionResolver keeps preferences in the signed session cookie.
func SessionResolver() Resolver {
	return func(c *gin.Context) navpanel.PreferenceStore {
		return NewSessionStore(sessions.Default(c))
	}
}

// OwnerResolver keeps preferences of signed-in users in store. Anonymous
// visitors fall back to the session cookie.
func OwnerResolver(store Store) Resolver {
	return func(c *gin.Context) navpanel.PreferenceStore {
		user := middleware.GetUserFromContext(c)
		if user == nil || user.ID == "" {
			return NewSessionStore(sessions.Default(c))
		}
		return ForOwner(store, user.ID)
	}
}
