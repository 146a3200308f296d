package handler

import (
	"errors"
	"fmt"
	"strings"

	"planetarium_api/constants"
	"planetarium_api/database"
	"planetarium_api/helper"
	"planetarium_api/model"
	"planetarium_api/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func CreateReservation(c *fiber.Ctx) error {
	input, ok := c.Locals("createReservationInput").(model.CreateReservationInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse data to locals fail"))
	}

	claim, _, err := helper.GetInfoUserFromToken(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Invalid token", err)
	}

	db := database.DB

	reservation, err := helper.CreateReservationWithTickets(db, claim.UserId, input.Tickets)
	if err != nil {
		var fieldErr *helper.FieldError
		if errors.As(err, &fieldErr) {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, fieldErr.Message, nil, fieldErr.Field)
		}
		var conflictErr *helper.SeatConflictError
		if errors.As(err, &conflictErr) {
			return utils.ErrorResponseHaveKey(c, fiber.StatusConflict, conflictErr.Error(), nil, "tickets")
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}

	// các session vừa mất ghế, báo cho client đang xem sơ đồ ghế
	notified := map[uint]bool{}
	for _, ticket := range reservation.Tickets {
		if !notified[ticket.ShowSessionId] {
			notified[ticket.ShowSessionId] = true
			go BroadcastSessionAvailability(ticket.ShowSessionId)
		}
	}

	go sendReservationEmail(claim.Email, reservation)

	return utils.SuccessResponse(c, fiber.StatusCreated, reservation)
}

// sendReservationEmail dựng nội dung xác nhận kèm QR check-in từng vé.
// Lỗi email không ảnh hưởng reservation đã commit
func sendReservationEmail(to string, reservation *model.Reservation) {
	db := database.DB

	var full model.Reservation
	if err := db.
		Preload("Tickets").
		Preload("Tickets.ShowSession").
		Preload("Tickets.ShowSession.AstronomyShow").
		Preload("Tickets.ShowSession.PlanetariumDome").
		First(&full, reservation.ID).Error; err != nil {
		return
	}
	if len(full.Tickets) == 0 {
		return
	}

	first := full.Tickets[0].ShowSession

	seats := make([]string, 0, len(full.Tickets))
	qrAttachments := make(map[string][]byte, len(full.Tickets))
	for _, ticket := range full.Tickets {
		seats = append(seats, fmt.Sprintf("row %d seat %d", ticket.Row, ticket.Seat))

		qrContent := fmt.Sprintf("%s|session:%d|row:%d|seat:%d", full.PublicCode, ticket.ShowSessionId, ticket.Row, ticket.Seat)
		qrBytes, err := utils.GenerateQRCode(qrContent, 256)
		if err != nil {
			continue
		}
		qrAttachments[fmt.Sprintf("ticket_%d.png", ticket.ID)] = qrBytes
	}

	utils.SendReservationConfirmationEmail(to, utils.ReservationConfirmationData{
		ReservationCode: full.PublicCode,
		ShowTitle:       first.AstronomyShow.Title,
		DomeName:        first.PlanetariumDome.Name,
		ShowTime:        first.ShowTime.Format("2006-01-02 15:04"),
		Seats:           strings.Join(seats, ", "),
		TicketCount:     len(full.Tickets),
		DetailLink:      fmt.Sprintf("/reservations/%d", full.ID),
	}, qrAttachments)
}

func GetMyReservations(c *fiber.Ctx) error {
	claim, _, err := helper.GetInfoUserFromToken(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Invalid token", err)
	}

	filterInput := new(model.FilterReservationInput)
	if err := c.QueryParser(filterInput); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	db := database.DB

	condition := db.Model(&model.Reservation{}).
		Where("reservations.user_id = ?", claim.UserId)

	// filter theo vé nên một reservation có thể khớp nhiều dòng, cần distinct
	if filterInput.ShowSession != 0 {
		condition = condition.
			Joins("JOIN tickets ON tickets.reservation_id = reservations.id").
			Where("tickets.show_session_id = ?", filterInput.ShowSession)
	}

	// date lọc theo ngày tạo reservation, không phải giờ chiếu của suất
	if filterInput.Date != "" {
		startOfDay, endOfDay, err := utils.ParseDateParam(filterInput.Date)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error(), err)
		}
		condition = condition.Where("reservations.created_at >= ? AND reservations.created_at < ?", startOfDay, endOfDay)
	}

	var totalCount int64
	if err := condition.Session(&gorm.Session{}).Distinct("reservations.id").Count(&totalCount).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Count failed", err)
	}

	condition = utils.ApplyPagination(condition, filterInput.Limit, filterInput.Page)

	var reservations []model.Reservation
	if err := condition.
		Distinct("reservations.*").
		Preload("Tickets").
		Preload("Tickets.ShowSession").
		Preload("Tickets.ShowSession.AstronomyShow").
		Preload("Tickets.ShowSession.PlanetariumDome").
		Order("reservations.created_at DESC").
		Find(&reservations).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Query failed", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, &model.ResponseCustom{
		Rows:       reservations,
		Limit:      filterInput.Limit,
		Page:       filterInput.Page,
		TotalCount: totalCount,
	})
}

func GetReservationById(c *fiber.Ctx) error {
	id, ok := c.Locals("inputId").(int)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse data to locals fail"))
	}

	claim, isAdmin, err := helper.GetInfoUserFromToken(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Invalid token", err)
	}

	var reservation model.Reservation
	if err := database.DB.
		Preload("Tickets").
		Preload("Tickets.ShowSession").
		Preload("Tickets.ShowSession.AstronomyShow").
		Preload("Tickets.ShowSession.PlanetariumDome").
		First(&reservation, id).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Reservation not found", nil)
	}

	if reservation.UserId != claim.UserId && !isAdmin {
		return utils.ErrorResponse(c, fiber.StatusForbidden, "Reservation belongs to another user", errors.New("not owner"))
	}

	return utils.SuccessResponse(c, fiber.StatusOK, reservation)
}

func DeleteReservation(c *fiber.Ctx) error {
	id, ok := c.Locals("inputId").(int)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse data to locals fail"))
	}

	claim, isAdmin, err := helper.GetInfoUserFromToken(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Invalid token", err)
	}

	db := database.DB

	var reservation model.Reservation
	if err := db.Preload("Tickets").First(&reservation, id).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Reservation not found", nil)
	}
	if reservation.UserId != claim.UserId && !isAdmin {
		return utils.ErrorResponse(c, fiber.StatusForbidden, "Reservation belongs to another user", errors.New("not owner"))
	}

	// hủy reservation giải phóng ghế, vé xóa theo cascade
	if err := db.Select("Tickets").Delete(&reservation).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_DELETE, err)
	}

	for _, ticket := range reservation.Tickets {
		go BroadcastSessionAvailability(ticket.ShowSessionId)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"deleted": id})
}
