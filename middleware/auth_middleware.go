package middleware

import (
	"github.com/gofiber/fiber/v2"
	jwtware "github.com/gofiber/jwt/v3"
	config "github.com/yogamaster/yoga_master/configs"
)

func Protected() fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey:   []byte(config.Config("JWT_SECRET")),
		ErrorHandler: jwtError,
	})
}

// A missing header and a bad token are distinct outcomes: absent credentials
// get 401, credentials that fail signature or expiry checks get 403.
func jwtError(c *fiber.Ctx, err error) error {
	if err.Error() == "Missing or malformed JWT" {
		return c.Status(fiber.StatusUnauthorized).
			JSON(fiber.Map{"error": true, "message": "unauthorized access"})
	}
	return c.Status(fiber.StatusForbidden).
		JSON(fiber.Map{"error": true, "message": "forbidden access: invalid or expired token"})
}
