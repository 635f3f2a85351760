package handlers

import "github.com/gofiber/fiber/v2"

// HandleHealthCheck reports service liveness.
//
//	@Summary	Health check
//	@Produce	json
//	@Success	200
//	@Router		/health [get]
func HandleHealthCheck(c *fiber.Ctx) error {
	return c.Status(200).JSON(fiber.Map{"status": "ok"})
}

// HandleRoot answers the unauthenticated root route.
func HandleRoot(c *fiber.Ctx) error {
	return c.SendString("Hello World")
}
