package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/tonygradient/tony-board/internal/config"
	"github.com/tonygradient/tony-board/pkg/apierrors"
)

const (
	SessionCookie = "board_session"

	sessionIDKey = "session_id"
)

// AuthMiddleware gates all API operations behind a shared credential: a
// bearer token from the configured list, or a session cookie set by the
// login flow. With no tokens configured, authentication is disabled and
// every request passes.
func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		setSessionID(c)

		if len(cfg.APITokens) == 0 {
			c.Next()
			return
		}

		if header := c.GetHeader("Authorization"); strings.HasPrefix(header, "Bearer ") {
			token := strings.TrimPrefix(header, "Bearer ")
			for _, allowed := range cfg.APITokens {
				if token == allowed {
					c.Next()
					return
				}
			}
		}

		if cookie, err := c.Cookie(SessionCookie); err == nil && cookie != "" {
			c.Next()
			return
		}

		lang := GetLang(c)
		c.AbortWithStatusJSON(
			http.StatusUnauthorized,
			apierrors.CreateError(http.StatusUnauthorized, apierrors.MsgUnauthorized, lang),
		)
	}
}

// setSessionID stores the correlation id for this request: the session
// cookie when one exists, otherwise a fresh uuid. Activity records use it to
// group work from one external session.
func setSessionID(c *gin.Context) {
	if cookie, err := c.Cookie(SessionCookie); err == nil && cookie != "" {
		c.Set(sessionIDKey, cookie)
		return
	}
	c.Set(sessionIDKey, uuid.NewString())
}

func GetSessionID(c *gin.Context) string {
	if value, exists := c.Get(sessionIDKey); exists {
		if s, ok := value.(string); ok {
			return s
		}
	}
	return ""
}
