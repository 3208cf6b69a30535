package api

import (
	"strings"

	"github.com/example/bfhl-service/modules/compute"
	"github.com/example/bfhl-service/modules/oracle"
	"github.com/gofiber/fiber/v2"
)

// setupRoutes configures all HTTP routes.
func (m *APIModule) setupRoutes() {
	m.app.Get("/health", m.healthHandler)
	m.app.Post("/bfhl", m.bfhlHandler)

	api := m.app.Group("/api/v1")
	api.Get("/usage", m.usageHandler)
}

// healthHandler handles GET /health. Always succeeds, no data field.
func (m *APIModule) healthHandler(c *fiber.Ctx) error {
	return c.JSON(Envelope{
		IsSuccess:     true,
		OfficialEmail: m.officialEmail,
	})
}

// bfhlHandler handles POST /bfhl: validates the single-key body, dispatches
// to the matching handler, and wraps the result in the envelope.
func (m *APIModule) bfhlHandler(c *fiber.Ctx) error {
	if !strings.HasPrefix(c.Get(fiber.HeaderContentType), fiber.MIMEApplicationJSON) {
		return m.fail(c, fiber.StatusBadRequest, "Content-Type must be application/json")
	}

	cmd, verr := parseCommand(c.Body())
	if verr != nil {
		return m.fail(c, verr.Status, verr.Message)
	}

	switch cmd.Op {
	case OpFibonacci:
		seq, err := m.computePort.Fibonacci(c.UserContext(), cmd.Count)
		if err != nil {
			return m.computeError(c, err)
		}
		return m.success(c, seq)

	case OpPrime:
		primes, err := m.computePort.FilterPrimes(c.UserContext(), cmd.Numbers)
		if err != nil {
			return m.computeError(c, err)
		}
		return m.success(c, primes)

	case OpLCM:
		result, err := m.computePort.LCM(c.UserContext(), cmd.Numbers)
		if err != nil {
			return m.computeError(c, err)
		}
		return m.success(c, result)

	case OpHCF:
		result, err := m.computePort.HCF(c.UserContext(), cmd.Numbers)
		if err != nil {
			return m.computeError(c, err)
		}
		return m.success(c, result)

	case OpAI:
		answer, err := m.oraclePort.Ask(c.UserContext(), cmd.Question)
		if err != nil {
			return m.oracleError(c, err)
		}
		return m.success(c, answer)
	}

	// Unreachable after validation.
	m.logger.Error("Dispatcher reached unknown operation", "operation", cmd.Op)
	return m.fail(c, fiber.StatusInternalServerError, "Internal server error")
}

// usageHandler handles GET /api/v1/usage.
func (m *APIModule) usageHandler(c *fiber.Ctx) error {
	summary, err := m.statsPort.GetSummary(c.UserContext())
	if err != nil {
		m.logger.Error("Failed to fetch usage summary", "error", err)
		return m.fail(c, fiber.StatusInternalServerError, "Internal server error")
	}
	return m.success(c, summary)
}

// computeError maps compute port errors to the envelope: input sentinels
// become 422, anything else a generic 500.
func (m *APIModule) computeError(c *fiber.Ctx, err error) error {
	if compute.IsInputError(err) {
		return m.fail(c, fiber.StatusUnprocessableEntity, err.Error())
	}
	m.logger.Error("Compute call failed", "error", err)
	return m.fail(c, fiber.StatusInternalServerError, "Internal server error")
}

// oracleError maps oracle port errors to the envelope: question-shape
// sentinels become 422, upstream and everything else a 500 without leaking
// upstream details.
func (m *APIModule) oracleError(c *fiber.Ctx, err error) error {
	if oracle.IsInputError(err) {
		return m.fail(c, fiber.StatusUnprocessableEntity, err.Error())
	}
	m.logger.Error("Oracle call failed", "error", err)
	return m.fail(c, fiber.StatusInternalServerError, "AI service error")
}

// success writes a 200 success envelope with data.
func (m *APIModule) success(c *fiber.Ctx, data any) error {
	return c.JSON(Envelope{
		IsSuccess:     true,
		OfficialEmail: m.officialEmail,
		Data:          data,
	})
}

// fail writes an error envelope with the given status.
func (m *APIModule) fail(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(Envelope{
		IsSuccess:     false,
		OfficialEmail: m.officialEmail,
		Error:         msg,
	})
}
