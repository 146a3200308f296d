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

func CreateAstronomyShow() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateAstronomyShowInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, fmt.Sprintf("Cannot parse request: %s", err.Error()), err)
		}

		if err := validate.Struct(&input); err != nil {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, err.Error(), err, "title")
		}

		var existing model.AstronomyShow
		if err := database.DB.Where("title = ?", input.Title).First(&existing).Error; err == nil {
			return utils.ErrorResponseHaveKey(c, fiber.StatusConflict, "Astronomy show title already exists", nil, "title")
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}

		c.Locals("createAstronomyShowInput", input)
		return c.Next()
	}
}

func UpdateAstronomyShow(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		params := c.Params(key)
		valueKey, err := strconv.Atoi(params)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, errors.New("params invalid"))
		}

		var input model.UpdateAstronomyShowInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, fmt.Sprintf("Cannot parse request: %s", err.Error()), err)
		}

		if err := validate.Struct(&input); err != nil {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, err.Error(), err, "title")
		}

		var show model.AstronomyShow
		if err := database.DB.First(&show, valueKey).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.ErrorResponse(c, fiber.StatusNotFound, "Astronomy show not found", nil)
			}
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}

		if input.Title != nil && *input.Title != show.Title {
			var existing model.AstronomyShow
			if err := database.DB.Where("title = ? AND id != ?", *input.Title, valueKey).First(&existing).Error; err == nil {
				return utils.ErrorResponseHaveKey(c, fiber.StatusConflict, "Astronomy show title already exists", nil, "title")
			}
		}

		c.Locals("updateAstronomyShowInput", input)
		c.Locals("astronomyShowId", uint(valueKey))
		return c.Next()
	}
}

// UploadShowImage kiểm tra show tồn tại và request có file ảnh
func UploadShowImage(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		params := c.Params(key)
		valueKey, err := strconv.Atoi(params)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, errors.New("params invalid"))
		}

		var show model.AstronomyShow
		if err := database.DB.First(&show, valueKey).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.ErrorResponse(c, fiber.StatusNotFound, "Astronomy show not found", nil)
			}
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}

		file, err := c.FormFile("image")
		if err != nil {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Image file is required", err, "image")
		}

		c.Locals("astronomyShowId", uint(valueKey))
		c.Locals("imageFile", file)
		return c.Next()
	}
}
