package helper

import (
	"log"
	"time"

	"planetarium_api/constants"
	"planetarium_api/database"
	"planetarium_api/model"

	"github.com/go-co-op/gocron/v2"
)

var showScheduler gocron.Scheduler

// AutoUpdateShowStatus tắt show không còn suất chiếu sắp tới, bật lại show vừa có
func AutoUpdateShowStatus() {
	log.Println("[CRON] AutoUpdateShowStatus triggered")

	db := database.DB
	now := time.Now()

	var shows []model.AstronomyShow
	if err := db.Find(&shows).Error; err != nil {
		log.Printf("failed to scan astronomy shows: %v", err)
		return
	}

	for _, show := range shows {
		var upcoming int64
		if err := db.Model(&model.ShowSession{}).
			Where("astronomy_show_id = ? AND status = ? AND show_time > ?",
				show.ID, constants.SESSION_SCHEDULED, now).
			Count(&upcoming).Error; err != nil {
			log.Printf("failed to count sessions for show '%s': %v", show.Title, err)
			continue
		}

		active := upcoming > 0
		if show.IsActive == active {
			continue
		}

		if err := db.Model(&show).Update("is_active", active).Error; err != nil {
			log.Printf("failed to update show '%s': %v", show.Title, err)
		} else {
			log.Printf("show '%s' isActive → %v", show.Title, active)
		}
	}
}

func StartShowStatusScheduler() {
	s, err := gocron.NewScheduler()
	if err != nil {
		log.Printf("failed to create show scheduler: %v", err)
		return
	}

	_, err = s.NewJob(
		gocron.DailyJob(
			1,
			gocron.NewAtTimes(
				gocron.NewAtTime(0, 5, 0),
			),
		),
		gocron.NewTask(AutoUpdateShowStatus),
	)
	if err != nil {
		log.Printf("failed to schedule show status job: %v", err)
		return
	}

	s.Start()
	showScheduler = s
	log.Println("astronomy show status scheduler started (daily 00:05)")
}

func StopShowStatusScheduler() {
	if showScheduler != nil {
		_ = showScheduler.Shutdown()
	}
}
