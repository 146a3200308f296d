package model

import "time"

type ShowSession struct {
	DTO
	ShowTime time.Time `gorm:"not null;index" validate:"required" json:"showTime"`
	Status   string    `gorm:"not null;default:'SCHEDULED'" json:"status"`

	AstronomyShowId   uint `gorm:"not null;index" json:"astronomyShowId"`
	PlanetariumDomeId uint `gorm:"not null;index" json:"planetariumDomeId"`

	AstronomyShow   AstronomyShow   `gorm:"foreignKey:AstronomyShowId;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"astronomyShow"`
	PlanetariumDome PlanetariumDome `gorm:"foreignKey:PlanetariumDomeId;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"planetariumDome"`

	Tickets []Ticket `gorm:"foreignKey:ShowSessionId" json:"-"`
}

// ShowSessionListItem dòng trả về khi list, kèm số ghế còn trống
type ShowSessionListItem struct {
	ID                      uint      `json:"id"`
	ShowTime                time.Time `json:"showTime"`
	Status                  string    `json:"status"`
	AstronomyShowTitle      string    `json:"astronomyShowTitle"`
	PlanetariumDomeName     string    `json:"planetariumDomeName"`
	PlanetariumDomeCapacity int       `json:"planetariumDomeCapacity"`
	TicketsAvailable        int64     `json:"ticketsAvailable"`
}

type ShowSessionDetail struct {
	ShowSession
	TicketsAvailable int64 `json:"ticketsAvailable"`
}

type CreateShowSessionInput struct {
	AstronomyShowId   uint      `json:"astronomyShowId" validate:"required,gt=0"`
	PlanetariumDomeId uint      `json:"planetariumDomeId" validate:"required,gt=0"`
	ShowTime          time.Time `json:"showTime" validate:"required"`
}

type UpdateShowSessionInput struct {
	AstronomyShowId   *uint      `json:"astronomyShowId" validate:"omitempty,gt=0"`
	PlanetariumDomeId *uint      `json:"planetariumDomeId" validate:"omitempty,gt=0"`
	ShowTime          *time.Time `json:"showTime"`
}

type FilterShowSessionInput struct {
	Pagination
	ShowTitle string `query:"show_title"`
	DomeName  string `query:"dome_name"`
	Date      string `query:"date"`
}
