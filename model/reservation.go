package model

type Reservation struct {
	DTO
	PublicCode string `gorm:"type:varchar(20);unique" json:"publicCode"`
	UserId     uint   `gorm:"not null;index" json:"userId"`

	User    User     `gorm:"foreignKey:UserId;constraint:OnDelete:CASCADE" json:"-"`
	Tickets []Ticket `gorm:"foreignKey:ReservationId;constraint:OnDelete:CASCADE" json:"tickets"`
}

// TicketSelection một ghế khách chọn khi đặt chỗ.
// Row/Seat không gắn tag validate: biên trên phụ thuộc dome của session,
// kiểm tra trong helper.ValidateTicket để trả message đúng field
type TicketSelection struct {
	Row           int  `json:"row"`
	Seat          int  `json:"seat"`
	ShowSessionId uint `json:"showSession" validate:"required,gt=0"`
}

type CreateReservationInput struct {
	Tickets []TicketSelection `json:"tickets" validate:"required,min=1,dive"`
}

type FilterReservationInput struct {
	Pagination
	Date        string `query:"date"`
	ShowSession uint   `query:"show_session"`
}
