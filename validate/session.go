package validate

import (
	"errors"
	"fmt"
	"strconv"

	"planetarium_api/constants"
	"planetarium_api/database"
	"planetarium_api/model"
	"planetarium_api/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func CreateShowSession() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateShowSessionInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, fmt.Sprintf("Cannot parse request: %s", err.Error()), err)
		}

		if err := validate.Struct(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error(), err)
		}

		var show model.AstronomyShow
		if err := database.DB.First(&show, input.AstronomyShowId).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Astronomy show does not exist", nil, "astronomyShowId")
			}
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}

		var dome model.PlanetariumDome
		if err := database.DB.First(&dome, input.PlanetariumDomeId).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Planetarium dome does not exist", nil, "planetariumDomeId")
			}
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}

		c.Locals("createShowSessionInput", input)
		return c.Next()
	}
}

func UpdateShowSession(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		params := c.Params(key)
		valueKey, err := strconv.Atoi(params)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, errors.New("params invalid"))
		}

		var input model.UpdateShowSessionInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, fmt.Sprintf("Cannot parse request: %s", err.Error()), err)
		}

		if err := validate.Struct(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error(), err)
		}

		var session model.ShowSession
		if err := database.DB.First(&session, valueKey).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.ErrorResponse(c, fiber.StatusNotFound, "Show session not found", nil)
			}
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}

		if input.AstronomyShowId != nil {
			var show model.AstronomyShow
			if err := database.DB.First(&show, *input.AstronomyShowId).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Astronomy show does not exist", nil, "astronomyShowId")
				}
				return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
			}
		}

		if input.PlanetariumDomeId != nil {
			var dome model.PlanetariumDome
			if err := database.DB.First(&dome, *input.PlanetariumDomeId).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Planetarium dome does not exist", nil, "planetariumDomeId")
				}
				return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
			}
		}

		c.Locals("updateShowSessionInput", input)
		c.Locals("showSessionId", uint(valueKey))
		return c.Next()
	}
}
