package main

import (
	"log"

	"planetarium_api/database"
	"planetarium_api/helper"
	"planetarium_api/router"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	app := fiber.New(fiber.Config{
		BodyLimit: 10 * 1024 * 1024,
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins:     "http://localhost:5173",
		AllowMethods:     "GET,POST,PUT,DELETE,PATCH,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Authorization, Accept",
		AllowCredentials: true,
		ExposeHeaders:    "Set-Cookie",
		MaxAge:           600,
	}))

	database.ConnectDB()

	helper.StartSessionScheduler()
	defer helper.StopSessionScheduler()
	helper.StartShowStatusScheduler()
	defer helper.StopShowStatusScheduler()

	router.SetupRoutes(app)
	log.Fatal(app.Listen(":8001"))
}
