package helper

import (
	"planetarium_api/model"

	"gorm.io/gorm"
)

// TicketsAvailable = capacity − số vé đã đặt, đếm trực tiếp tại thời điểm gọi.
// Session phải được preload PlanetariumDome
func TicketsAvailable(db *gorm.DB, session model.ShowSession) (int64, error) {
	var booked int64
	if err := db.Model(&model.Ticket{}).
		Where("show_session_id = ?", session.ID).
		Count(&booked).Error; err != nil {
		return 0, err
	}

	capacity := int64(session.PlanetariumDome.Rows * session.PlanetariumDome.SeatsInRow)
	return capacity - booked, nil
}
