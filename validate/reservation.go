package validate

import (
	"fmt"

	"planetarium_api/model"
	"planetarium_api/utils"

	"github.com/gofiber/fiber/v2"
)

func CreateReservation() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateReservationInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, fmt.Sprintf("Cannot parse request: %s", err.Error()), err)
		}

		if err := validate.Struct(&input); err != nil {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, err.Error(), err, "tickets")
		}

		// biên row/seat phụ thuộc dome của từng suất — kiểm tra trong orchestrator,
		// ở đây chỉ chặn batch rỗng và session id thiếu
		c.Locals("createReservationInput", input)
		return c.Next()
	}
}
