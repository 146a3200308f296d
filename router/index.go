package router

import (
	"planetarium_api/handler"
	"planetarium_api/middleware"
	"planetarium_api/validate"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func SetupRoutes(app *fiber.App) {
	api := app.Group("/api", logger.New())
	v1 := api.Group("/v1", logger.New())

	auth := v1.Group("/auth")
	auth.Post("/register", validate.Register(), handler.Register)
	auth.Post("/login", handler.Login)
	auth.Post("/refresh-token", handler.RefreshToken)
	auth.Get("/me", middleware.Protected(), handler.Me)
	auth.Post("/forgot-password", validate.ForgotPassword(), handler.ForgotPassword)
	auth.Post("/reset-password", validate.ResetPassword(), handler.ResetPassword)

	theme := v1.Group("/show-themes", logger.New())
	theme.Get("/", middleware.Protected(), handler.GetShowThemes)
	theme.Get("/:showThemeId", middleware.Protected(), validate.GetById("showThemeId"), handler.GetShowThemeById)
	theme.Post("/", middleware.Protected(), validate.CreateShowTheme(), handler.CreateShowTheme)
	theme.Put("/:showThemeId", middleware.Protected(), validate.UpdateShowTheme("showThemeId"), handler.UpdateShowTheme)
	theme.Patch("/:showThemeId", middleware.Protected(), validate.UpdateShowTheme("showThemeId"), handler.UpdateShowTheme)
	theme.Delete("/", middleware.Protected(), validate.Delete(), handler.DeleteShowThemes)
	theme.Delete("/:showThemeId", middleware.Protected(), validate.GetById("showThemeId"), handler.DeleteShowTheme)

	show := v1.Group("/astronomy-shows", logger.New())
	show.Get("/", middleware.Protected(), handler.GetAstronomyShows)
	show.Get("/:astronomyShowId", middleware.Protected(), validate.GetById("astronomyShowId"), handler.GetAstronomyShowById)
	show.Post("/", middleware.Protected(), validate.CreateAstronomyShow(), handler.CreateAstronomyShow)
	show.Put("/:astronomyShowId", middleware.Protected(), validate.UpdateAstronomyShow("astronomyShowId"), handler.UpdateAstronomyShow)
	show.Patch("/:astronomyShowId", middleware.Protected(), validate.UpdateAstronomyShow("astronomyShowId"), handler.UpdateAstronomyShow)
	show.Delete("/:astronomyShowId", middleware.Protected(), validate.GetById("astronomyShowId"), handler.DeleteAstronomyShow)
	show.Post("/:astronomyShowId/images", middleware.Protected(), validate.UploadShowImage("astronomyShowId"), handler.UploadShowImage)
	show.Delete("/images/:imageId", middleware.Protected(), validate.GetById("imageId"), handler.DeleteShowImage)

	dome := v1.Group("/planetarium-domes", logger.New())
	dome.Get("/", middleware.Protected(), handler.GetPlanetariumDomes)
	dome.Get("/:planetariumDomeId", middleware.Protected(), validate.GetById("planetariumDomeId"), handler.GetPlanetariumDomeById)
	dome.Post("/", middleware.Protected(), validate.CreatePlanetariumDome(), handler.CreatePlanetariumDome)
	dome.Put("/:planetariumDomeId", middleware.Protected(), validate.UpdatePlanetariumDome("planetariumDomeId"), handler.UpdatePlanetariumDome)
	dome.Patch("/:planetariumDomeId", middleware.Protected(), validate.UpdatePlanetariumDome("planetariumDomeId"), handler.UpdatePlanetariumDome)
	dome.Delete("/:planetariumDomeId", middleware.Protected(), validate.GetById("planetariumDomeId"), handler.DeletePlanetariumDome)

	session := v1.Group("/show-sessions", logger.New())
	session.Get("/", middleware.Protected(), handler.GetShowSessions)
	session.Get("/:showSessionId", middleware.Protected(), validate.GetById("showSessionId"), handler.GetShowSessionById)
	session.Post("/", middleware.Protected(), validate.CreateShowSession(), handler.CreateShowSession)
	session.Put("/:showSessionId", middleware.Protected(), validate.UpdateShowSession("showSessionId"), handler.UpdateShowSession)
	session.Patch("/:showSessionId", middleware.Protected(), validate.UpdateShowSession("showSessionId"), handler.UpdateShowSession)
	session.Delete("/:showSessionId", middleware.Protected(), validate.GetById("showSessionId"), handler.DeleteShowSession)

	session.Get("/:id/availability", websocket.New(handler.WebSocketConnection))

	reservation := v1.Group("/reservations", logger.New())
	reservation.Get("/", middleware.Protected(), handler.GetMyReservations)
	reservation.Get("/:reservationId", middleware.Protected(), validate.GetById("reservationId"), handler.GetReservationById)
	reservation.Post("/", middleware.Protected(), validate.CreateReservation(), handler.CreateReservation)
	reservation.Delete("/:reservationId", middleware.Protected(), validate.GetById("reservationId"), handler.DeleteReservation)
}
