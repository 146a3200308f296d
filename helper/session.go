package helper

import (
	"log"
	"time"

	"planetarium_api/constants"
	"planetarium_api/database"
	"planetarium_api/model"

	"github.com/robfig/cron/v3"
)

var sessionScheduler *cron.Cron

func StartSessionScheduler() {
	sessionScheduler = cron.New(cron.WithChain(
		cron.SkipIfStillRunning(cron.DefaultLogger),
	))

	_, err := sessionScheduler.AddFunc("*/5 * * * *", closeFinishedSessions)
	if err != nil {
		log.Printf("failed to start session scheduler: %v", err)
		return
	}

	sessionScheduler.Start()
	log.Println("show session scheduler started (every 5 minutes)")
}

// closeFinishedSessions đóng các suất đã qua giờ chiếu để không nhận đặt chỗ nữa
func closeFinishedSessions() {
	now := time.Now()
	result := database.DB.Model(&model.ShowSession{}).
		Where("status = ? AND show_time < ?", constants.SESSION_SCHEDULED, now).
		Update("status", constants.SESSION_FINISHED)

	if result.Error != nil {
		log.Printf("failed to close finished sessions: %v", result.Error)
		return
	}

	if result.RowsAffected > 0 {
		log.Printf("marked %d show sessions as finished", result.RowsAffected)
	}
}

func StopSessionScheduler() {
	if sessionScheduler != nil {
		sessionScheduler.Stop()
		log.Println("show session scheduler stopped")
	}
}
