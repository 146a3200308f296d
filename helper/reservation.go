package helper

import (
	"errors"
	"fmt"

	"planetarium_api/constants"
	"planetarium_api/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CreateReservationWithTickets tạo reservation và toàn bộ vé trong một transaction.
// Bất kỳ ghế nào sai là rollback hết, không để lại reservation rỗng hay vé mồ côi.
// Ghế trùng (show_session, row, seat) bị chặn bởi unique index nên hai request
// song song không thể cùng giữ một ghế — request vào sau nhận SeatConflictError
func CreateReservationWithTickets(db *gorm.DB, userId uint, selections []model.TicketSelection) (*model.Reservation, error) {
	if len(selections) == 0 {
		return nil, &FieldError{Field: "tickets", Message: "tickets must not be empty"}
	}

	tx := db.Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}

	reservation := model.Reservation{
		PublicCode: "RSV-" + uuid.New().String()[:8],
		UserId:     userId,
	}
	if err := tx.Create(&reservation).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	for _, selection := range selections {
		var session model.ShowSession
		if err := tx.Preload("PlanetariumDome").First(&session, selection.ShowSessionId).Error; err != nil {
			tx.Rollback()
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, &FieldError{
					Field:   "showSession",
					Message: fmt.Sprintf("show session %d does not exist", selection.ShowSessionId),
				}
			}
			return nil, err
		}

		if session.Status == constants.SESSION_FINISHED {
			tx.Rollback()
			return nil, &FieldError{
				Field:   "showSession",
				Message: fmt.Sprintf("show session %d has already finished", selection.ShowSessionId),
			}
		}

		if err := ValidateTicket(selection.Row, selection.Seat, session.PlanetariumDome); err != nil {
			tx.Rollback()
			return nil, err
		}

		ticket := model.Ticket{
			Row:           selection.Row,
			Seat:          selection.Seat,
			ShowSessionId: session.ID,
			ReservationId: reservation.ID,
		}
		if err := tx.Create(&ticket).Error; err != nil {
			tx.Rollback()
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return nil, &SeatConflictError{
					ShowSessionId: session.ID,
					Row:           selection.Row,
					Seat:          selection.Seat,
				}
			}
			return nil, err
		}
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	if err := db.Preload("Tickets").First(&reservation, reservation.ID).Error; err != nil {
		return nil, err
	}
	return &reservation, nil
}
