package model

import "gorm.io/gorm"

type PlanetariumDome struct {
	DTO
	Name       string `gorm:"type:varchar(255);not null;unique" validate:"required,max=255" json:"name"`
	Rows       int    `gorm:"not null" validate:"required,gt=0" json:"rows"`
	SeatsInRow int    `gorm:"not null" validate:"required,gt=0" json:"seatsInRow"`

	// Capacity luôn được tính lại từ rows × seatsInRow, không lưu DB
	Capacity int `gorm:"-" json:"capacity"`
}

func (d *PlanetariumDome) AfterFind(tx *gorm.DB) error {
	d.Capacity = d.Rows * d.SeatsInRow
	return nil
}

func (d *PlanetariumDome) AfterSave(tx *gorm.DB) error {
	d.Capacity = d.Rows * d.SeatsInRow
	return nil
}

type CreatePlanetariumDomeInput struct {
	Name       string `json:"name" validate:"required,max=255"`
	Rows       int    `json:"rows" validate:"required,gt=0"`
	SeatsInRow int    `json:"seatsInRow" validate:"required,gt=0"`
}

type UpdatePlanetariumDomeInput struct {
	Name       *string `json:"name" validate:"omitempty,max=255"`
	Rows       *int    `json:"rows" validate:"omitempty,gt=0"`
	SeatsInRow *int    `json:"seatsInRow" validate:"omitempty,gt=0"`
}

type FilterPlanetariumDomeInput struct {
	Pagination
	Name string `query:"name"`
}
