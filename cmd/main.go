package main

import (
	"log"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/shvendra/bookmyworker-back/config"
	"github.com/shvendra/bookmyworker-back/database"
	"github.com/shvendra/bookmyworker-back/handlers"
	"github.com/shvendra/bookmyworker-back/routes"
)

func main() {
	cfg := config.Load()

	// fail fast if either store is down
	database.Connect(cfg)
	database.ConnectRedis(cfg)

	e := echo.New()
	e.HideBanner = true
	e.Validator = handlers.NewValidator()
	e.Use(middleware.Recover())
	e.Use(middleware.Logger())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{cfg.FrontendURL},
		AllowMethods:     []string{echo.GET, echo.POST, echo.PUT, echo.DELETE},
		AllowCredentials: true,
	}))

	routes.Register(e, cfg)

	addr := ":" + cfg.AppPort
	log.Printf("server listening at %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
