package session

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const userIDKey = "user_id"

// Manager tracks which user, if any, is authenticated for a request. The
// state lives in the cookie session installed by the sessions middleware;
// the lifetime is whatever the cookie store provides.
type Manager struct{}

func NewManager() *Manager {
	return &Manager{}
}

// CurrentUserID returns the authenticated user's id, or false when the
// request is anonymous.
func (m *Manager) CurrentUserID(c *gin.Context) (uint, bool) {
	v := sessions.Default(c).Get(userIDKey)
	if v == nil {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}

// Login binds userID to the caller's session.
func (m *Manager) Login(c *gin.Context, userID uint) error {
	sess := sessions.Default(c)
	sess.Set(userIDKey, userID)
	return sess.Save()
}

// Logout drops the session, immediately and unconditionally.
func (m *Manager) Logout(c *gin.Context) error {
	sess := sessions.Default(c)
	sess.Clear()
	return sess.Save()
}

// RequireLogin guards protected routes: anonymous requests are redirected
// to /login and aborted before any handler runs.
func (m *Manager) RequireLogin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := m.CurrentUserID(c); !ok {
			c.Redirect(http.StatusSeeOther, "/login")
			c.Abort()
			return
		}
		c.Next()
	}
}
