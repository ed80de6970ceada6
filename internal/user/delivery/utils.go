package delivery

import (
	"bytes"
	"encoding/json"

	"github.com/gofiber/fiber/v2"
)

// respond writes body as indented JSON with the permissive CORS header set the
// API promises on every response.
func respond(ctx *fiber.Ctx, status int, body any) error {
	payload, err := json.MarshalIndent(body, "", "  ")
	if err != nil {
		return err
	}

	ctx.Set(fiber.HeaderContentType, "application/json; charset=utf-8")
	ctx.Set(fiber.HeaderAccessControlAllowOrigin, "*")
	ctx.Set(fiber.HeaderAccessControlAllowMethods, "GET, POST, PUT, DELETE, OPTIONS")
	ctx.Set(fiber.HeaderAccessControlAllowHeaders, "Content-Type, Authorization, X-Requested-With")
	ctx.Set(fiber.HeaderAccessControlMaxAge, "86400")

	return ctx.Status(status).Send(payload)
}

// parseBody decodes the request body into dest. present is false when the body
// is empty; a present but undecodable body returns an error.
func parseBody(ctx *fiber.Ctx, dest any) (present bool, err error) {
	raw := bytes.TrimSpace(ctx.Body())
	if len(raw) == 0 {
		return false, nil
	}

	if err = json.Unmarshal(raw, dest); err != nil {
		return true, err
	}

	return true, nil
}
