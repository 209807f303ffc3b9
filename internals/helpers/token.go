// file: internals/helpers/token.go
package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// GetRawAccessToken devolve o access token de:
// 1) Authorization header "Bearer <token>"
// 2) cookie "access_token" (fallback)
func GetRawAccessToken(c *fiber.Ctx) string {
	auth := strings.TrimSpace(c.Get(fiber.HeaderAuthorization))
	if auth != "" {
		// split robusto: tolera espaços duplos e case do prefixo
		fields := strings.Fields(auth)
		if len(fields) >= 2 && strings.EqualFold(fields[0], "Bearer") {
			return strings.Trim(strings.TrimSpace(fields[1]), "\"'")
		}
		return ""
	}
	return strings.TrimSpace(c.Cookies("access_token"))
}
