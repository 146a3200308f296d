package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"
	"time"

	"planetarium_api/constants"
	"planetarium_api/model"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"
)

// asUser giả lập middleware.Protected bằng token đã parse sẵn
func asUser(userId uint, email string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals("user", &jwt.Token{
			Claims: jwt.MapClaims{"userId": float64(userId), "email": email},
		})
		return c.Next()
	}
}

func seedUser(t *testing.T, db *gorm.DB, email, role string) model.User {
	t.Helper()
	user := model.User{Email: email, Password: "x", FullName: email, Role: role, Active: true}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("seed user %s: %v", email, err)
	}
	return user
}

func seedReservation(t *testing.T, db *gorm.DB, userId uint, code string, session model.ShowSession, row, seat int) model.Reservation {
	t.Helper()
	reservation := model.Reservation{PublicCode: code, UserId: userId}
	if err := db.Create(&reservation).Error; err != nil {
		t.Fatalf("seed reservation %s: %v", code, err)
	}
	ticket := model.Ticket{Row: row, Seat: seat, ShowSessionId: session.ID, ReservationId: reservation.ID}
	if err := db.Create(&ticket).Error; err != nil {
		t.Fatalf("seed ticket for %s: %v", code, err)
	}
	return reservation
}

func TestGetMyReservationsScopedToOwner(t *testing.T) {
	db := setupHandlerDB(t)
	marsSession, nebulaSession := seedSessionData(t, db)

	alice := seedUser(t, db, "alice@example.com", constants.ROLE_USER)
	bob := seedUser(t, db, "bob@example.com", constants.ROLE_USER)

	seedReservation(t, db, alice.ID, "RSV-alice1", marsSession, 1, 1)
	seedReservation(t, db, alice.ID, "RSV-alice2", nebulaSession, 1, 1)
	seedReservation(t, db, bob.ID, "RSV-bob1", marsSession, 2, 2)

	app := fiber.New()
	app.Get("/reservations", asUser(alice.ID, alice.Email), GetMyReservations)

	resp, err := app.Test(httptest.NewRequest("GET", "/reservations", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var body listResponse[model.Reservation]
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(body.Data.Rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(body.Data.Rows))
	}
	for _, reservation := range body.Data.Rows {
		if reservation.UserId != alice.ID {
			t.Errorf("leaked reservation %s of user %d", reservation.PublicCode, reservation.UserId)
		}
	}
}

func TestGetMyReservationsShowSessionFilter(t *testing.T) {
	db := setupHandlerDB(t)
	marsSession, nebulaSession := seedSessionData(t, db)

	alice := seedUser(t, db, "alice@example.com", constants.ROLE_USER)
	seedReservation(t, db, alice.ID, "RSV-mars", marsSession, 1, 1)
	seedReservation(t, db, alice.ID, "RSV-nebula", nebulaSession, 1, 1)

	app := fiber.New()
	app.Get("/reservations", asUser(alice.ID, alice.Email), GetMyReservations)

	resp, err := app.Test(httptest.NewRequest("GET", fmt.Sprintf("/reservations?show_session=%d", nebulaSession.ID), nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}

	var body listResponse[model.Reservation]
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(body.Data.Rows) != 1 {
		t.Fatalf("rows = %d, want 1", len(body.Data.Rows))
	}
	if body.Data.Rows[0].PublicCode != "RSV-nebula" {
		t.Errorf("publicCode = %q, want %q", body.Data.Rows[0].PublicCode, "RSV-nebula")
	}
}

func TestGetMyReservationsDateFilterUsesCreationDate(t *testing.T) {
	db := setupHandlerDB(t)
	marsSession, nebulaSession := seedSessionData(t, db)

	alice := seedUser(t, db, "alice@example.com", constants.ROLE_USER)

	// đặt ngày 01/09 cho suất chiếu ngày 10/09
	early := model.Reservation{PublicCode: "RSV-early", UserId: alice.ID}
	early.CreatedAt = time.Date(2026, 9, 1, 10, 30, 0, 0, time.UTC)
	if err := db.Create(&early).Error; err != nil {
		t.Fatalf("seed reservation: %v", err)
	}
	if err := db.Create(&model.Ticket{Row: 1, Seat: 1, ShowSessionId: marsSession.ID, ReservationId: early.ID}).Error; err != nil {
		t.Fatalf("seed ticket: %v", err)
	}

	late := model.Reservation{PublicCode: "RSV-late", UserId: alice.ID}
	late.CreatedAt = time.Date(2026, 9, 2, 9, 0, 0, 0, time.UTC)
	if err := db.Create(&late).Error; err != nil {
		t.Fatalf("seed reservation: %v", err)
	}
	if err := db.Create(&model.Ticket{Row: 2, Seat: 1, ShowSessionId: nebulaSession.ID, ReservationId: late.ID}).Error; err != nil {
		t.Fatalf("seed ticket: %v", err)
	}

	app := fiber.New()
	app.Get("/reservations", asUser(alice.ID, alice.Email), GetMyReservations)

	cases := []struct {
		name     string
		query    string
		wantCode []string
	}{
		{name: "creation date matches", query: "?date=2026-09-01", wantCode: []string{"RSV-early"}},
		{name: "second creation date", query: "?date=2026-09-02", wantCode: []string{"RSV-late"}},
		{name: "show date does not match", query: "?date=2026-09-10", wantCode: nil},
		{name: "combined with session filter", query: fmt.Sprintf("?date=2026-09-01&show_session=%d", marsSession.ID), wantCode: []string{"RSV-early"}},
		{name: "date and session disagree", query: fmt.Sprintf("?date=2026-09-01&show_session=%d", nebulaSession.ID), wantCode: nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp, err := app.Test(httptest.NewRequest("GET", "/reservations"+tc.query, nil))
			if err != nil {
				t.Fatalf("request failed: %v", err)
			}
			if resp.StatusCode != fiber.StatusOK {
				t.Fatalf("status = %d, want 200", resp.StatusCode)
			}

			var body listResponse[model.Reservation]
			if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
				t.Fatalf("decode response: %v", err)
			}
			if len(body.Data.Rows) != len(tc.wantCode) {
				t.Fatalf("rows = %d, want %d", len(body.Data.Rows), len(tc.wantCode))
			}
			for i, code := range tc.wantCode {
				if body.Data.Rows[i].PublicCode != code {
					t.Errorf("row %d = %q, want %q", i, body.Data.Rows[i].PublicCode, code)
				}
			}
		})
	}
}

func TestGetReservationByIdOwnership(t *testing.T) {
	db := setupHandlerDB(t)
	marsSession, _ := seedSessionData(t, db)

	alice := seedUser(t, db, "alice@example.com", constants.ROLE_USER)
	bob := seedUser(t, db, "bob@example.com", constants.ROLE_USER)
	admin := seedUser(t, db, "admin@example.com", constants.ROLE_ADMIN)

	reservation := seedReservation(t, db, alice.ID, "RSV-alice1", marsSession, 1, 1)
	path := fmt.Sprintf("/reservations/%d", reservation.ID)

	cases := []struct {
		name       string
		user       model.User
		wantStatus int
	}{
		{name: "owner", user: alice, wantStatus: fiber.StatusOK},
		{name: "other user", user: bob, wantStatus: fiber.StatusForbidden},
		{name: "admin", user: admin, wantStatus: fiber.StatusOK},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			app := fiber.New()
			app.Get("/reservations/:reservationId", asUser(tc.user.ID, tc.user.Email), func(c *fiber.Ctx) error {
				c.Locals("inputId", int(reservation.ID))
				return GetReservationById(c)
			})

			resp, err := app.Test(httptest.NewRequest("GET", path, nil))
			if err != nil {
				t.Fatalf("request failed: %v", err)
			}
			if resp.StatusCode != tc.wantStatus {
				t.Errorf("status = %d, want %d", resp.StatusCode, tc.wantStatus)
			}
		})
	}
}

func TestCreateReservationHandlerConflict(t *testing.T) {
	db := setupHandlerDB(t)
	marsSession, _ := seedSessionData(t, db)
	alice := seedUser(t, db, "alice@example.com", constants.ROLE_USER)

	app := fiber.New()
	app.Post("/reservations", asUser(alice.ID, alice.Email), func(c *fiber.Ctx) error {
		var input model.CreateReservationInput
		if err := c.BodyParser(&input); err != nil {
			return err
		}
		c.Locals("createReservationInput", input)
		return CreateReservation(c)
	})

	payload, _ := json.Marshal(model.CreateReservationInput{
		Tickets: []model.TicketSelection{{Row: 1, Seat: 1, ShowSessionId: marsSession.ID}},
	})

	first := httptest.NewRequest("POST", "/reservations", bytes.NewReader(payload))
	first.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(first)
	if err != nil {
		t.Fatalf("first request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("first status = %d, want 201", resp.StatusCode)
	}

	second := httptest.NewRequest("POST", "/reservations", bytes.NewReader(payload))
	second.Header.Set("Content-Type", "application/json")
	resp, err = app.Test(second)
	if err != nil {
		t.Fatalf("second request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusConflict {
		t.Fatalf("second status = %d, want 409", resp.StatusCode)
	}

	var body struct {
		KeyError string `json:"keyError"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.KeyError != "tickets" {
		t.Errorf("keyError = %q, want %q", body.KeyError, "tickets")
	}
}

func TestCreateReservationHandlerBadSeat(t *testing.T) {
	db := setupHandlerDB(t)
	marsSession, _ := seedSessionData(t, db)
	alice := seedUser(t, db, "alice@example.com", constants.ROLE_USER)

	app := fiber.New()
	app.Post("/reservations", asUser(alice.ID, alice.Email), func(c *fiber.Ctx) error {
		var input model.CreateReservationInput
		if err := c.BodyParser(&input); err != nil {
			return err
		}
		c.Locals("createReservationInput", input)
		return CreateReservation(c)
	})

	payload, _ := json.Marshal(model.CreateReservationInput{
		Tickets: []model.TicketSelection{{Row: 0, Seat: 1, ShowSessionId: marsSession.ID}},
	})
	req := httptest.NewRequest("POST", "/reservations", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}

	var body struct {
		Message  string `json:"message"`
		KeyError string `json:"keyError"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.KeyError != "row" {
		t.Errorf("keyError = %q, want %q", body.KeyError, "row")
	}
	if body.Message != "row number must be in available range: (1, rows): (1, 4)" {
		t.Errorf("message = %q", body.Message)
	}
}
