package handler

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"planetarium_api/constants"
	"planetarium_api/database"
	"planetarium_api/helper"
	"planetarium_api/model"
	"planetarium_api/utils"

	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// UploadShowImage tải ảnh minh họa của show lên Cloudinary rồi lưu URL vào DB
func UploadShowImage(c *fiber.Ctx) error {
	showId, ok := c.Locals("astronomyShowId").(uint)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse data to locals fail"))
	}

	imageFile, ok := c.Locals("imageFile").(*multipart.FileHeader)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse data to locals fail"))
	}

	_, isAdmin, err := helper.GetInfoUserFromToken(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Invalid token", err)
	}
	if !isAdmin {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not admin"))
	}

	ext := strings.ToLower(filepath.Ext(imageFile.Filename))
	if ext != ".jpg" && ext != ".jpeg" && ext != ".png" && ext != ".webp" {
		return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Only JPG, PNG and WEBP images are supported", nil, "image")
	}
	if imageFile.Size > 5*1024*1024 {
		return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Image exceeds 5MB", nil, "image")
	}

	reader, err := imageFile.Open()
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Cannot read image file", err)
	}
	defer reader.Close()

	isPrimary := c.FormValue("isPrimary") == "true"

	cld, err := helper.InitCloudinary()
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	var image model.ShowImage
	err = database.DB.Transaction(func(tx *gorm.DB) error {
		if isPrimary {
			if err := tx.Model(&model.ShowImage{}).
				Where("show_id = ? AND is_primary = ?", showId, true).
				Update("is_primary", false).Error; err != nil {
				return err
			}
		}

		uploadResult, err := cld.Upload.Upload(context.Background(), reader, uploader.UploadParams{
			Folder:       "shows/images",
			PublicID:     fmt.Sprintf("show_%d_image_%d", showId, time.Now().Unix()),
			ResourceType: "image",
		})
		if err != nil {
			return fmt.Errorf("cloudinary upload failed: %v", err)
		}

		image = model.ShowImage{
			ShowId:    showId,
			Url:       &uploadResult.SecureURL,
			PublicID:  &uploadResult.PublicID,
			IsPrimary: isPrimary,
		}
		return tx.Create(&image).Error
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}

	var show model.AstronomyShow
	if err := database.DB.Preload("Images").First(&show, showId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, fiber.Map{
		"show":  show,
		"image": image,
	})
}

// DeleteShowImage xóa ảnh trên Cloudinary lẫn DB
func DeleteShowImage(c *fiber.Ctx) error {
	id, ok := c.Locals("inputId").(int)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse data to locals fail"))
	}

	_, isAdmin, err := helper.GetInfoUserFromToken(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Invalid token", err)
	}
	if !isAdmin {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not admin"))
	}

	var image model.ShowImage
	if err := database.DB.First(&image, id).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Show image not found", nil)
	}

	if image.PublicID != nil {
		if cld, err := helper.InitCloudinary(); err == nil {
			cld.Upload.Destroy(context.Background(), uploader.DestroyParams{PublicID: *image.PublicID})
		}
	}

	if err := database.DB.Delete(&image).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_DELETE, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"deleted": id})
}
