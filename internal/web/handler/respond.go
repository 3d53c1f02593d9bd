package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// Msg is the uniform JSON body for confirmations and errors.
type Msg struct {
	Msg string `json:"msg"`
}

// JSONMsg writes a Msg body with the given status code.
func JSONMsg(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(Msg{Msg: msg})
}

// JSONInternal writes a 500 response passing the error message through to the
// client, matching the propagation policy of every handler.
func JSONInternal(c *fiber.Ctx, err error) error {
	return JSONMsg(c, fiber.StatusInternalServerError, err.Error())
}

// ParamID parses a positive numeric route parameter. A missing, malformed or
// zero value yields ok=false and the handler responds 400.
func ParamID(c *fiber.Ctx, name string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Params(name), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}

	return id, true
}
