package helper

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"planetarium_api/constants"
	"planetarium_api/database"
	"planetarium_api/model"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	database.Migrate(db)
	return db
}

type testFixture struct {
	user    model.User
	session model.ShowSession
}

func seedSession(t *testing.T, db *gorm.DB, rows, seatsInRow int) testFixture {
	t.Helper()

	user := model.User{Email: "visitor@example.com", Password: "x", FullName: "Visitor", Role: constants.ROLE_USER, Active: true}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}

	show := model.AstronomyShow{Title: "Journey to Mars", Description: "A trip across the red planet", Slug: "journey-to-mars", IsActive: true}
	if err := db.Create(&show).Error; err != nil {
		t.Fatalf("seed show: %v", err)
	}

	dome := model.PlanetariumDome{Name: "Main Dome", Rows: rows, SeatsInRow: seatsInRow}
	if err := db.Create(&dome).Error; err != nil {
		t.Fatalf("seed dome: %v", err)
	}

	session := model.ShowSession{
		ShowTime:          time.Now().Add(24 * time.Hour),
		Status:            constants.SESSION_SCHEDULED,
		AstronomyShowId:   show.ID,
		PlanetariumDomeId: dome.ID,
	}
	if err := db.Create(&session).Error; err != nil {
		t.Fatalf("seed session: %v", err)
	}
	if err := db.Preload("PlanetariumDome").First(&session, session.ID).Error; err != nil {
		t.Fatalf("reload session: %v", err)
	}

	return testFixture{user: user, session: session}
}

func TestCreateReservationWithTickets(t *testing.T) {
	db := setupTestDB(t)
	fx := seedSession(t, db, 5, 8)

	reservation, err := CreateReservationWithTickets(db, fx.user.ID, []model.TicketSelection{
		{Row: 1, Seat: 1, ShowSessionId: fx.session.ID},
		{Row: 1, Seat: 2, ShowSessionId: fx.session.ID},
	})
	if err != nil {
		t.Fatalf("create reservation: %v", err)
	}
	if reservation.ID == 0 {
		t.Fatal("reservation was not persisted")
	}
	if reservation.PublicCode == "" {
		t.Error("reservation has no public code")
	}
	if len(reservation.Tickets) != 2 {
		t.Fatalf("tickets = %d, want 2", len(reservation.Tickets))
	}
	if reservation.UserId != fx.user.ID {
		t.Errorf("userId = %d, want %d", reservation.UserId, fx.user.ID)
	}

	available, err := TicketsAvailable(db, fx.session)
	if err != nil {
		t.Fatalf("tickets available: %v", err)
	}
	if available != 38 {
		t.Errorf("ticketsAvailable = %d, want 38", available)
	}
}

func TestCreateReservationEmptyBatch(t *testing.T) {
	db := setupTestDB(t)
	fx := seedSession(t, db, 5, 8)

	_, err := CreateReservationWithTickets(db, fx.user.ID, nil)
	var fieldErr *FieldError
	if !errors.As(err, &fieldErr) || fieldErr.Field != "tickets" {
		t.Fatalf("expected FieldError on tickets, got %v", err)
	}
}

func TestCreateReservationRollsBackOnInvalidSeat(t *testing.T) {
	db := setupTestDB(t)
	fx := seedSession(t, db, 5, 8)

	_, err := CreateReservationWithTickets(db, fx.user.ID, []model.TicketSelection{
		{Row: 2, Seat: 3, ShowSessionId: fx.session.ID},
		{Row: 6, Seat: 1, ShowSessionId: fx.session.ID},
	})
	var fieldErr *FieldError
	if !errors.As(err, &fieldErr) {
		t.Fatalf("expected FieldError, got %v", err)
	}
	if fieldErr.Field != "row" {
		t.Errorf("field = %q, want %q", fieldErr.Field, "row")
	}

	// cả batch phải rollback, không giữ lại vé hợp lệ lẫn reservation rỗng
	var ticketCount, reservationCount int64
	db.Model(&model.Ticket{}).Count(&ticketCount)
	db.Model(&model.Reservation{}).Count(&reservationCount)
	if ticketCount != 0 {
		t.Errorf("tickets persisted after rollback: %d", ticketCount)
	}
	if reservationCount != 0 {
		t.Errorf("reservations persisted after rollback: %d", reservationCount)
	}
}

func TestCreateReservationDuplicateSeat(t *testing.T) {
	db := setupTestDB(t)
	fx := seedSession(t, db, 5, 8)

	if _, err := CreateReservationWithTickets(db, fx.user.ID, []model.TicketSelection{
		{Row: 3, Seat: 4, ShowSessionId: fx.session.ID},
	}); err != nil {
		t.Fatalf("first reservation: %v", err)
	}

	_, err := CreateReservationWithTickets(db, fx.user.ID, []model.TicketSelection{
		{Row: 3, Seat: 4, ShowSessionId: fx.session.ID},
	})
	var conflictErr *SeatConflictError
	if !errors.As(err, &conflictErr) {
		t.Fatalf("expected SeatConflictError, got %v", err)
	}
	if conflictErr.Row != 3 || conflictErr.Seat != 4 {
		t.Errorf("conflict seat = (%d, %d), want (3, 4)", conflictErr.Row, conflictErr.Seat)
	}

	var reservationCount int64
	db.Model(&model.Reservation{}).Count(&reservationCount)
	if reservationCount != 1 {
		t.Errorf("reservations = %d, want 1", reservationCount)
	}
}

func TestCreateReservationDuplicateSeatWithinBatch(t *testing.T) {
	db := setupTestDB(t)
	fx := seedSession(t, db, 5, 8)

	_, err := CreateReservationWithTickets(db, fx.user.ID, []model.TicketSelection{
		{Row: 2, Seat: 2, ShowSessionId: fx.session.ID},
		{Row: 2, Seat: 2, ShowSessionId: fx.session.ID},
	})
	var conflictErr *SeatConflictError
	if !errors.As(err, &conflictErr) {
		t.Fatalf("expected SeatConflictError, got %v", err)
	}

	var ticketCount int64
	db.Model(&model.Ticket{}).Count(&ticketCount)
	if ticketCount != 0 {
		t.Errorf("tickets persisted after rollback: %d", ticketCount)
	}
}

func TestCreateReservationSameSeatDifferentSessions(t *testing.T) {
	db := setupTestDB(t)
	fx := seedSession(t, db, 5, 8)

	second := model.ShowSession{
		ShowTime:          time.Now().Add(48 * time.Hour),
		Status:            constants.SESSION_SCHEDULED,
		AstronomyShowId:   fx.session.AstronomyShowId,
		PlanetariumDomeId: fx.session.PlanetariumDomeId,
	}
	if err := db.Create(&second).Error; err != nil {
		t.Fatalf("seed second session: %v", err)
	}

	// (row, seat) chỉ unique trong cùng một session
	if _, err := CreateReservationWithTickets(db, fx.user.ID, []model.TicketSelection{
		{Row: 1, Seat: 1, ShowSessionId: fx.session.ID},
	}); err != nil {
		t.Fatalf("first session reservation: %v", err)
	}
	if _, err := CreateReservationWithTickets(db, fx.user.ID, []model.TicketSelection{
		{Row: 1, Seat: 1, ShowSessionId: second.ID},
	}); err != nil {
		t.Fatalf("second session reservation: %v", err)
	}
}

func TestCreateReservationUnknownSession(t *testing.T) {
	db := setupTestDB(t)
	fx := seedSession(t, db, 5, 8)

	_, err := CreateReservationWithTickets(db, fx.user.ID, []model.TicketSelection{
		{Row: 1, Seat: 1, ShowSessionId: fx.session.ID + 999},
	})
	var fieldErr *FieldError
	if !errors.As(err, &fieldErr) || fieldErr.Field != "showSession" {
		t.Fatalf("expected FieldError on showSession, got %v", err)
	}
}

func TestCreateReservationFinishedSession(t *testing.T) {
	db := setupTestDB(t)
	fx := seedSession(t, db, 5, 8)

	if err := db.Model(&model.ShowSession{}).Where("id = ?", fx.session.ID).
		Update("status", constants.SESSION_FINISHED).Error; err != nil {
		t.Fatalf("finish session: %v", err)
	}

	_, err := CreateReservationWithTickets(db, fx.user.ID, []model.TicketSelection{
		{Row: 1, Seat: 1, ShowSessionId: fx.session.ID},
	})
	var fieldErr *FieldError
	if !errors.As(err, &fieldErr) || fieldErr.Field != "showSession" {
		t.Fatalf("expected FieldError on showSession, got %v", err)
	}
}

func TestTicketsAvailableFullSession(t *testing.T) {
	db := setupTestDB(t)
	fx := seedSession(t, db, 2, 2)

	selections := []model.TicketSelection{
		{Row: 1, Seat: 1, ShowSessionId: fx.session.ID},
		{Row: 1, Seat: 2, ShowSessionId: fx.session.ID},
		{Row: 2, Seat: 1, ShowSessionId: fx.session.ID},
		{Row: 2, Seat: 2, ShowSessionId: fx.session.ID},
	}
	if _, err := CreateReservationWithTickets(db, fx.user.ID, selections); err != nil {
		t.Fatalf("fill session: %v", err)
	}

	available, err := TicketsAvailable(db, fx.session)
	if err != nil {
		t.Fatalf("tickets available: %v", err)
	}
	if available != 0 {
		t.Errorf("ticketsAvailable = %d, want 0", available)
	}
}
