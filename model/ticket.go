package model

// Ticket một ghế đã đặt. Unique index (show_session_id, row, seat)
// chặn double-booking ở tầng storage, kể cả khi hai request chạy song song
type Ticket struct {
	DTO
	Row  int `gorm:"not null;uniqueIndex:idx_ticket_session_row_seat,priority:2" json:"row"`
	Seat int `gorm:"not null;uniqueIndex:idx_ticket_session_row_seat,priority:3" json:"seat"`

	ShowSessionId uint `gorm:"not null;uniqueIndex:idx_ticket_session_row_seat,priority:1" json:"showSession"`
	ReservationId uint `gorm:"not null;index" json:"reservationId"`

	ShowSession ShowSession `gorm:"foreignKey:ShowSessionId;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	Reservation Reservation `gorm:"foreignKey:ReservationId;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
}
