package model

type AstronomyShow struct {
	DTO
	Title       string      `gorm:"type:varchar(255);not null;unique" validate:"required,max=255" json:"title"`
	Description string      `gorm:"type:text;not null" validate:"required" json:"description"`
	Slug        string      `gorm:"uniqueIndex" json:"slug"`
	IsActive    bool        `gorm:"not null;default:true" json:"isActive"`
	Images      []ShowImage `gorm:"foreignKey:ShowId;constraint:OnDelete:CASCADE" json:"images"`
}

// ShowImage ảnh minh họa lưu trên Cloudinary, chỉ giữ URL + public id
type ShowImage struct {
	DTO
	ShowId    uint    `gorm:"not null;index" json:"showId"`
	Url       *string `gorm:"type:varchar(255)" json:"url"`
	PublicID  *string `json:"-"`
	IsPrimary bool    `json:"isPrimary"`
}

type CreateAstronomyShowInput struct {
	Title       string `json:"title" validate:"required,max=255"`
	Description string `json:"description" validate:"required"`
}

type UpdateAstronomyShowInput struct {
	Title       *string `json:"title" validate:"omitempty,max=255"`
	Description *string `json:"description"`
	IsActive    *bool   `json:"isActive"`
}

type FilterAstronomyShowInput struct {
	Pagination
	Title string `query:"title"`
}
