package handler

import (
	"errors"
	"strings"

	"planetarium_api/constants"
	"planetarium_api/database"
	"planetarium_api/helper"
	"planetarium_api/model"
	"planetarium_api/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func GetShowSessions(c *fiber.Ctx) error {
	filterInput := new(model.FilterShowSessionInput)
	if err := c.QueryParser(filterInput); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	db := database.DB

	condition := db.Model(&model.ShowSession{}).
		Joins("JOIN astronomy_shows ON astronomy_shows.id = show_sessions.astronomy_show_id").
		Joins("JOIN planetarium_domes ON planetarium_domes.id = show_sessions.planetarium_dome_id")

	if filterInput.ShowTitle != "" {
		condition = condition.Where("LOWER(astronomy_shows.title) LIKE ?", "%"+strings.ToLower(filterInput.ShowTitle)+"%")
	}
	if filterInput.DomeName != "" {
		condition = condition.Where("LOWER(planetarium_domes.name) LIKE ?", "%"+strings.ToLower(filterInput.DomeName)+"%")
	}
	if filterInput.Date != "" {
		startOfDay, endOfDay, err := utils.ParseDateParam(filterInput.Date)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error(), err)
		}
		condition = condition.Where("show_sessions.show_time >= ? AND show_sessions.show_time < ?", startOfDay, endOfDay)
	}

	var totalCount int64
	if err := condition.Session(&gorm.Session{}).Distinct("show_sessions.id").Count(&totalCount).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Count failed", err)
	}

	condition = utils.ApplyPagination(condition, filterInput.Limit, filterInput.Page)

	var sessions []model.ShowSession
	if err := condition.
		Preload("AstronomyShow").
		Preload("PlanetariumDome").
		Order("show_sessions.show_time ASC").
		Find(&sessions).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Query failed", err)
	}

	// số ghế trống đếm trực tiếp tại thời điểm truy vấn, không cache
	rows := make([]model.ShowSessionListItem, 0, len(sessions))
	for _, session := range sessions {
		available, err := helper.TicketsAvailable(db, session)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}
		rows = append(rows, model.ShowSessionListItem{
			ID:                      session.ID,
			ShowTime:                session.ShowTime,
			Status:                  session.Status,
			AstronomyShowTitle:      session.AstronomyShow.Title,
			PlanetariumDomeName:     session.PlanetariumDome.Name,
			PlanetariumDomeCapacity: session.PlanetariumDome.Capacity,
			TicketsAvailable:        available,
		})
	}

	return utils.SuccessResponse(c, fiber.StatusOK, &model.ResponseCustom{
		Rows:       rows,
		Limit:      filterInput.Limit,
		Page:       filterInput.Page,
		TotalCount: totalCount,
	})
}

func GetShowSessionById(c *fiber.Ctx) error {
	id, ok := c.Locals("inputId").(int)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse data to locals fail"))
	}

	db := database.DB

	var session model.ShowSession
	if err := db.
		Preload("AstronomyShow").
		Preload("AstronomyShow.Images").
		Preload("PlanetariumDome").
		First(&session, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Show session not found", nil)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	available, err := helper.TicketsAvailable(db, session)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, model.ShowSessionDetail{
		ShowSession:      session,
		TicketsAvailable: available,
	})
}

func CreateShowSession(c *fiber.Ctx) error {
	input, ok := c.Locals("createShowSessionInput").(model.CreateShowSessionInput)
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

	session := model.ShowSession{
		AstronomyShowId:   input.AstronomyShowId,
		PlanetariumDomeId: input.PlanetariumDomeId,
		ShowTime:          input.ShowTime,
		Status:            constants.SESSION_SCHEDULED,
	}
	if err := database.DB.Create(&session).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, session)
}

func UpdateShowSession(c *fiber.Ctx) error {
	input, ok := c.Locals("updateShowSessionInput").(model.UpdateShowSessionInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse data to locals fail"))
	}
	sessionId, _ := c.Locals("showSessionId").(uint)

	_, isAdmin, err := helper.GetInfoUserFromToken(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Invalid token", err)
	}
	if !isAdmin {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not admin"))
	}

	updates := map[string]any{}
	if input.AstronomyShowId != nil {
		updates["astronomy_show_id"] = *input.AstronomyShowId
	}
	if input.PlanetariumDomeId != nil {
		updates["planetarium_dome_id"] = *input.PlanetariumDomeId
	}
	if input.ShowTime != nil {
		updates["show_time"] = *input.ShowTime
	}
	if len(updates) == 0 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Nothing to update", nil)
	}

	if err := database.DB.Model(&model.ShowSession{DTO: model.DTO{ID: sessionId}}).Updates(updates).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, err)
	}

	var session model.ShowSession
	if err := database.DB.
		Preload("AstronomyShow").
		Preload("PlanetariumDome").
		First(&session, sessionId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, session)
}

func DeleteShowSession(c *fiber.Ctx) error {
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

	// xóa session kéo theo toàn bộ vé của nó (cascade)
	result := database.DB.Delete(&model.ShowSession{}, id)
	if result.Error != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_DELETE, result.Error)
	}
	if result.RowsAffected == 0 {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Show session not found", nil)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"deleted": id})
}
