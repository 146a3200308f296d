package helper

import (
	"fmt"

	"planetarium_api/model"
)

// FieldError lỗi validate gắn với một field cụ thể của payload
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string { return e.Message }

// SeatConflictError ghế đã có người giữ trong cùng một suất chiếu
type SeatConflictError struct {
	ShowSessionId uint
	Row           int
	Seat          int
}

func (e *SeatConflictError) Error() string {
	return fmt.Sprintf("seat (row %d, seat %d) is already taken for show session %d",
		e.Row, e.Seat, e.ShowSessionId)
}

// ValidateTicket kiểm tra (row, seat) nằm trong lưới ghế của dome.
// Caller resolve sẵn dome của suất chiếu nên hàm này thuần túy,
// test được mà không cần DB
func ValidateTicket(row, seat int, dome model.PlanetariumDome) error {
	checks := []struct {
		value     int
		fieldName string
		boundName string
		bound     int
	}{
		{row, "row", "rows", dome.Rows},
		{seat, "seat", "seats", dome.SeatsInRow},
	}

	for _, check := range checks {
		if check.value < 1 || check.value > check.bound {
			return &FieldError{
				Field: check.fieldName,
				Message: fmt.Sprintf(
					"%s number must be in available range: (1, %s): (1, %d)",
					check.fieldName, check.boundName, check.bound,
				),
			}
		}
	}
	return nil
}
