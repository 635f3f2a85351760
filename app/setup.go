package app

import (
	"os"

	"github.com/YashSharma412/Todo-app-full-stack-ejs/config"
	"github.com/YashSharma412/Todo-app-full-stack-ejs/database"
	"github.com/YashSharma412/Todo-app-full-stack-ejs/handlers"
	"github.com/YashSharma412/Todo-app-full-stack-ejs/middleware"
	"github.com/YashSharma412/Todo-app-full-stack-ejs/router"
	"github.com/YashSharma412/Todo-app-full-stack-ejs/session"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// SetupAndRunApp wires config, database, session store, handlers and routes,
// then starts the HTTP listener.
func SetupAndRunApp() error {
	err := config.LoadENV()
	if err != nil {
		return err
	}

	err = database.StartPostgreSQL()
	if err != nil {
		return err
	}
	defer database.ClosePostgreSQL()

	db := database.GetDB()
	sessions, err := session.NewPostgresStore(db)
	if err != nil {
		return err
	}

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
	}))

	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format: "[${ip}]:${port} ${status} - ${method} ${path} ${latency}\n",
	}))

	// every request gets a chance to carry a session; protected routes
	// are gated behind middleware.RequireAuth in the router
	app.Use(middleware.LoadSession(sessions))

	authHandler := handlers.NewAuthHandler(db, sessions, config.BcryptCost(), config.SessionTTL())
	todoHandler := handlers.NewTodoHandler(db)
	router.SetupRoutes(app, authHandler, todoHandler)

	config.AddSwaggerRoutes(app)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}

	return app.Listen(":" + port)
}
