package database

import (
	"log"
	"time"

	"planetarium_api/constants"
	"planetarium_api/model"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func SeedData(db *gorm.DB) {
	bytes, err := bcrypt.GenerateFromPassword([]byte("admin12345"), 10)
	hashPassword := string(bytes)
	if err != nil {
		log.Println("failed to hash seed password:", err)
		return
	}

	admin := model.User{
		Email:    "admin@planetarium.local",
		Password: hashPassword,
		FullName: "Administrator",
		Role:     constants.ROLE_ADMIN,
		Active:   true,
	}
	if err := db.Where(model.User{Email: admin.Email}).FirstOrCreate(&admin).Error; err != nil {
		log.Println("failed to seed admin account:", err)
	}

	themes := []model.ShowTheme{
		{Name: "Solar System"},
		{Name: "Deep Space"},
		{Name: "Cosmology"},
	}
	for _, theme := range themes {
		if err := db.Where(model.ShowTheme{Name: theme.Name}).FirstOrCreate(&theme).Error; err != nil {
			log.Println("failed to seed show theme:", theme.Name, "error:", err)
		}
	}

	shows := []model.AstronomyShow{
		{Title: "Journey to the Edge of the Universe", Description: "A tour from low Earth orbit out to the cosmic horizon.", Slug: "journey-to-the-edge-of-the-universe"},
		{Title: "Nebulae: Cradles of Stars", Description: "How clouds of gas and dust collapse into newborn suns.", Slug: "nebulae-cradles-of-stars"},
	}
	for _, show := range shows {
		if err := db.Where(model.AstronomyShow{Title: show.Title}).FirstOrCreate(&show).Error; err != nil {
			log.Println("failed to seed astronomy show:", show.Title, "error:", err)
		}
	}

	domes := []model.PlanetariumDome{
		{Name: "Main Dome", Rows: 10, SeatsInRow: 15},
		{Name: "Discovery Hall", Rows: 6, SeatsInRow: 8},
	}
	for _, dome := range domes {
		if err := db.Where(model.PlanetariumDome{Name: dome.Name}).FirstOrCreate(&dome).Error; err != nil {
			log.Println("failed to seed planetarium dome:", dome.Name, "error:", err)
		}
	}

	// một vài suất chiếu mẫu trong tuần tới
	var sessionCount int64
	db.Model(&model.ShowSession{}).Count(&sessionCount)
	if sessionCount == 0 {
		var show model.AstronomyShow
		var dome model.PlanetariumDome
		if err := db.First(&show).Error; err != nil {
			return
		}
		if err := db.First(&dome).Error; err != nil {
			return
		}
		base := time.Now().Truncate(time.Hour).Add(24 * time.Hour)
		sessions := []model.ShowSession{
			{AstronomyShowId: show.ID, PlanetariumDomeId: dome.ID, ShowTime: base.Add(18 * time.Hour), Status: constants.SESSION_SCHEDULED},
			{AstronomyShowId: show.ID, PlanetariumDomeId: dome.ID, ShowTime: base.Add(48 * time.Hour), Status: constants.SESSION_SCHEDULED},
		}
		if err := db.Create(&sessions).Error; err != nil {
			log.Println("failed to seed show sessions:", err)
		}
	}
}
