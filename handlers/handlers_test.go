package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/YashSharma412/Todo-app-full-stack-ejs/middleware"
	"github.com/YashSharma412/Todo-app-full-stack-ejs/session"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

// newTestApp builds a Fiber app with the real route table, a sqlmock-backed
// database and an in-memory session store.
func newTestApp(t *testing.T) (*fiber.App, sqlmock.Sqlmock, *session.MemoryStore) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New() error: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	store := session.NewMemoryStore()
	auth := NewAuthHandler(db, store, bcrypt.MinCost, time.Hour)
	todos := NewTodoHandler(db)

	app := fiber.New()
	app.Use(middleware.LoadSession(store))

	app.Post("/register", auth.Register)
	app.Post("/login", auth.Login)
	app.Get("/dashboard", middleware.RequireAuth, auth.Dashboard)
	app.Post("/logout", middleware.RequireAuth, auth.Logout)
	app.Post("/logout_from_all_devices", middleware.RequireAuth, auth.LogoutAllDevices)
	app.Post("/create-todo", middleware.RequireAuth, todos.Create)
	app.Get("/read-todos", middleware.RequireAuth, todos.ReadAll)
	app.Post("/edit-todo", middleware.RequireAuth, todos.Edit)

	return app, mock, store
}

func jsonRequest(method, target, body string) *http.Request {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("{}")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	return req
}

// seedSession puts an authenticated session for tester1 into the store and
// returns a request decorator attaching its cookie.
func seedSession(t *testing.T, store *session.MemoryStore, token string) func(*http.Request) *http.Request {
	t.Helper()
	err := store.Create(context.Background(), session.Session{
		Token:  token,
		IsAuth: true,
		User: session.User{
			UserID:   7,
			Username: "tester1",
			Email:    "tester1@example.com",
		},
		CreatedAt: time.Now(),
		ExpiresAt: time.Now().Add(time.Hour),
	})
	if err != nil {
		t.Fatalf("seed session: %v", err)
	}
	return func(req *http.Request) *http.Request {
		req.AddCookie(&http.Cookie{Name: session.CookieName, Value: token})
		return req
	}
}

func mustHash(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	return string(hash)
}

func sessionCookie(resp *http.Response) string {
	for _, c := range resp.Cookies() {
		if c.Name == session.CookieName && c.Value != "" {
			return c.Value
		}
	}
	return ""
}
