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

func CreatePlanetariumDome() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreatePlanetariumDomeInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, fmt.Sprintf("Cannot parse request: %s", err.Error()), err)
		}

		if err := validate.Struct(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error(), err)
		}

		var existing model.PlanetariumDome
		if err := database.DB.Where("name = ?", input.Name).First(&existing).Error; err == nil {
			return utils.ErrorResponseHaveKey(c, fiber.StatusConflict, "Planetarium dome name already exists", nil, "name")
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}

		c.Locals("createPlanetariumDomeInput", input)
		return c.Next()
	}
}

func UpdatePlanetariumDome(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		params := c.Params(key)
		valueKey, err := strconv.Atoi(params)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, errors.New("params invalid"))
		}

		var input model.UpdatePlanetariumDomeInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, fmt.Sprintf("Cannot parse request: %s", err.Error()), err)
		}

		if err := validate.Struct(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error(), err)
		}

		var dome model.PlanetariumDome
		if err := database.DB.First(&dome, valueKey).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.ErrorResponse(c, fiber.StatusNotFound, "Planetarium dome not found", nil)
			}
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}

		if input.Name != nil && *input.Name != dome.Name {
			var existing model.PlanetariumDome
			if err := database.DB.Where("name = ? AND id != ?", *input.Name, valueKey).First(&existing).Error; err == nil {
				return utils.ErrorResponseHaveKey(c, fiber.StatusConflict, "Planetarium dome name already exists", nil, "name")
			}
		}

		c.Locals("updatePlanetariumDomeInput", input)
		c.Locals("planetariumDomeId", uint(valueKey))
		return c.Next()
	}
}
