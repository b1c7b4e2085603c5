package handler

import (
	"context"
	"database/sql"
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"fricoach/internal/casebase"
	"fricoach/internal/mockdata"
	"fricoach/internal/service"
)

const defaultMatchCount = 3

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
// Handlers stay thin; the coaching pipeline lives in the service layer.
func RegisterRoutes(app *fiber.App, db *sql.DB, coachSvc service.CoachService) {
	retriever := casebase.NewRetriever()

	// Serve OpenAPI spec and Swagger UI
	app.Get("/openapi.yaml", func(c *fiber.Ctx) error {
		c.Type("yaml")
		return c.SendFile("openapi.yaml")
	})
	app.Get("/docs", func(c *fiber.Ctx) error {
		html := `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1" />
  <title>API Docs</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css" />
</head>
<body>
  <div id="swagger-ui"></div>
  <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
  <script>
    window.ui = SwaggerUIBundle({
      url: '/openapi.yaml',
      dom_id: '#swagger-ui',
      presets: [SwaggerUIBundle.presets.apis],
      layout: 'BaseLayout'
    });
  </script>
</body>
</html>`
		return c.Type("html").SendString(html)
	})

	// Health endpoint: checks DB connectivity only
	app.Get("/health", func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()
		if err := db.PingContext(ctx); err != nil {
			return writeError(c, fiber.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "dependency unavailable")
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "healthy"})
	})

	// Simple liveness probe
	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	// Full case library in fixed order
	app.Get("/cases", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"data": casebase.Library()})
	})

	// Match cases against a free-text query
	app.Get("/cases/match", func(c *fiber.Ctx) error {
		q := c.Query("q")
		if q == "" {
			return writeError(c, fiber.StatusBadRequest, "QUERY_REQUIRED", "q is required")
		}
		k := defaultMatchCount
		if kStr := c.Query("k"); kStr != "" {
			parsed, err := strconv.Atoi(kStr)
			if err != nil || parsed <= 0 {
				return writeError(c, fiber.StatusBadRequest, "INVALID_K", "invalid k")
			}
			k = parsed
		}
		matches := retriever.TopMatches(q, c.Query("occupation"), k)
		return c.JSON(fiber.Map{"data": matches})
	})

	// Demo customer profiles
	app.Get("/profiles", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"data": mockdata.Profiles()})
	})

	// FRI snapshot for one customer
	app.Get("/profiles/:id/resilience", func(c *fiber.Ctx) error {
		res, err := coachSvc.Resilience(c.UserContext(), c.Params("id"))
		if err != nil {
			if errors.Is(err, service.ErrCustomerRequired) {
				return writeError(c, fiber.StatusBadRequest, "CUSTOMER_REQUIRED", "customer id is required")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(res)
	})

	// One coaching turn
	app.Post("/coach", func(c *fiber.Ctx) error {
		var req service.AdviseRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}

		res, err := coachSvc.Advise(c.UserContext(), req)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrCustomerRequired):
				return writeError(c, fiber.StatusBadRequest, "CUSTOMER_REQUIRED", "customer_id is required")
			case errors.Is(err, service.ErrMessageRequired):
				return writeError(c, fiber.StatusBadRequest, "MESSAGE_REQUIRED", "message is required")
			default:
				return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
			}
		}
		return c.Status(fiber.StatusCreated).JSON(res)
	})

	// Recent conversation, oldest first
	app.Get("/conversations/:customer_id", func(c *fiber.Ctx) error {
		limit := 0
		if limitStr := c.Query("limit"); limitStr != "" {
			parsed, err := strconv.Atoi(limitStr)
			if err != nil {
				return writeError(c, fiber.StatusBadRequest, "INVALID_LIMIT", "invalid limit")
			}
			limit = parsed
		}

		res, err := coachSvc.History(c.UserContext(), c.Params("customer_id"), limit)
		if err != nil {
			if errors.Is(err, service.ErrCustomerRequired) {
				return writeError(c, fiber.StatusBadRequest, "CUSTOMER_REQUIRED", "customer id is required")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(res)
	})

	// Export the conversation to object storage
	app.Post("/conversations/:customer_id/archive", func(c *fiber.Ctx) error {
		res, err := coachSvc.ArchiveTranscript(c.UserContext(), c.Params("customer_id"))
		if err != nil {
			switch {
			case errors.Is(err, service.ErrCustomerRequired):
				return writeError(c, fiber.StatusBadRequest, "CUSTOMER_REQUIRED", "customer id is required")
			case errors.Is(err, service.ErrNoConversation):
				return writeError(c, fiber.StatusNotFound, "NO_CONVERSATION", "no conversation to archive")
			default:
				return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
			}
		}
		return c.Status(fiber.StatusCreated).JSON(res)
	})
}
