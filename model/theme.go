package model

type ShowTheme struct {
	DTO
	Name string `gorm:"type:varchar(63);not null;unique" validate:"required,max=63" json:"name"`
}

type CreateShowThemeInput struct {
	Name string `json:"name" validate:"required,max=63"`
}

type UpdateShowThemeInput struct {
	Name *string `json:"name" validate:"omitempty,max=63"`
}

type FilterShowThemeInput struct {
	Pagination
	Name string `query:"name"`
}
