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

func CreateShowTheme() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateShowThemeInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, fmt.Sprintf("Cannot parse request: %s", err.Error()), err)
		}

		if err := validate.Struct(&input); err != nil {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, err.Error(), err, "name")
		}

		// tên theme phải unique (so khớp chính xác, phân biệt hoa thường)
		var existing model.ShowTheme
		if err := database.DB.Where("name = ?", input.Name).First(&existing).Error; err == nil {
			return utils.ErrorResponseHaveKey(c, fiber.StatusConflict, "Show theme name already exists", nil, "name")
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}

		c.Locals("createShowThemeInput", input)
		return c.Next()
	}
}

func UpdateShowTheme(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		params := c.Params(key)
		valueKey, err := strconv.Atoi(params)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, errors.New("params invalid"))
		}

		var input model.UpdateShowThemeInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, fmt.Sprintf("Cannot parse request: %s", err.Error()), err)
		}

		if err := validate.Struct(&input); err != nil {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, err.Error(), err, "name")
		}

		var theme model.ShowTheme
		if err := database.DB.First(&theme, valueKey).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.ErrorResponse(c, fiber.StatusNotFound, "Show theme not found", nil)
			}
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}

		if input.Name != nil && *input.Name != theme.Name {
			var existing model.ShowTheme
			if err := database.DB.Where("name = ? AND id != ?", *input.Name, valueKey).First(&existing).Error; err == nil {
				return utils.ErrorResponseHaveKey(c, fiber.StatusConflict, "Show theme name already exists", nil, "name")
			}
		}

		c.Locals("updateShowThemeInput", input)
		c.Locals("showThemeId", uint(valueKey))
		return c.Next()
	}
}
