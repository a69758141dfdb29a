package hosting

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/contre95/soundwell/src/features/config"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// accountIDLocal is the locals key handlers read the resolved account id
// from. Handlers that accept anonymous callers treat its absence as no
// identity.
const accountIDLocal = "accountID"

// ListenerIdentity resolves an optional account identity from a bearer
// token. Missing, malformed or unverifiable tokens never fail the request;
// the caller simply stays anonymous.
func ListenerIdentity(cfg *config.Manager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		secret := cfg.Get().Auth.Secret
		header := c.Get(fiber.HeaderAuthorization)
		if secret == "" || !strings.HasPrefix(header, "Bearer ") {
			return c.Next()
		}

		raw := strings.TrimPrefix(header, "Bearer ")
		token, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			slog.Debug("Listener token rejected, continuing anonymous", "error", err)
			return c.Next()
		}

		if sub, err := token.Claims.GetSubject(); err == nil && sub != "" {
			c.Locals(accountIDLocal, sub)
		}
		return c.Next()
	}
}
