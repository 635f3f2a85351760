package router

import (
	"github.com/YashSharma412/Todo-app-full-stack-ejs/handlers"
	"github.com/YashSharma412/Todo-app-full-stack-ejs/middleware"
	"github.com/gofiber/fiber/v2"
)

func SetupRoutes(app *fiber.App, auth *handlers.AuthHandler, todos *handlers.TodoHandler) {
	app.Get("/", handlers.HandleRoot)
	app.Get("/health", handlers.HandleHealthCheck)

	app.Post("/register", auth.Register)
	app.Post("/login", auth.Login)

	app.Get("/dashboard", middleware.RequireAuth, auth.Dashboard)
	app.Post("/logout", middleware.RequireAuth, auth.Logout)
	app.Post("/logout_from_all_devices", middleware.RequireAuth, auth.LogoutAllDevices)

	app.Post("/create-todo", middleware.RequireAuth, todos.Create)
	app.Get("/read-todos", middleware.RequireAuth, todos.ReadAll)
	app.Post("/edit-todo", middleware.RequireAuth, todos.Edit)
}
