package handlers

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/YashSharma412/Todo-app-full-stack-ejs/middleware"
	"github.com/YashSharma412/Todo-app-full-stack-ejs/models"
	"github.com/YashSharma412/Todo-app-full-stack-ejs/validators"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// TodoHandler serves the per-user to-do endpoints. All of them sit behind
// the session guard, so the owner is always taken from the session.
type TodoHandler struct {
	db *sql.DB
}

func NewTodoHandler(db *sql.DB) *TodoHandler {
	return &TodoHandler{db: db}
}

// Create persists a new to-do owned by the current user.
//
//	@Summary	Create a to-do
//	@Accept		json
//	@Produce	json
//	@Param		body	body	validators.TodoData	true	"to-do payload"
//	@Success	201
//	@Failure	403
//	@Router		/create-todo [post]
func (h *TodoHandler) Create(c *fiber.Ctx) error {
	var payload validators.TodoData
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(403).JSON(fiber.Map{"status": 403, "message": err.Error()})
	}
	if err := validators.ValidateTodoData(payload); err != nil {
		return c.Status(403).JSON(fiber.Map{"status": 403, "message": err.Error()})
	}

	sess, _ := middleware.CurrentSession(c)
	todo := models.Todo{
		ID:            uuid.NewString(),
		Title:         payload.Title,
		Description:   payload.Description,
		Completed:     false,
		CreatedAtTime: time.Now(),
		UserID:        sess.User.UserID,
		Username:      sess.User.Username,
	}

	_, err := h.db.ExecContext(c.UserContext(),
		"INSERT INTO todos (id, title, description, completed, created_at, user_id, username) VALUES ($1, $2, $3, $4, $5, $6, $7)",
		todo.ID, todo.Title, todo.Description, todo.Completed, todo.CreatedAtTime, todo.UserID, todo.Username)
	if err != nil {
		return dbError(c, err)
	}

	return c.Status(201).JSON(fiber.Map{
		"status":  201,
		"message": "todo created successfully",
		"data":    todo,
	})
}

// ReadAll lists the current user's to-dos, newest first.
//
//	@Summary	List the current user's to-dos
//	@Produce	json
//	@Success	200
//	@Failure	401
//	@Router		/read-todos [get]
func (h *TodoHandler) ReadAll(c *fiber.Ctx) error {
	sess, _ := middleware.CurrentSession(c)

	rows, err := h.db.QueryContext(c.UserContext(),
		"SELECT id, title, description, completed, created_at, user_id, username FROM todos WHERE username = $1 ORDER BY created_at DESC",
		sess.User.Username)
	if err != nil {
		return dbError(c, err)
	}
	defer rows.Close()

	todos := []models.Todo{}
	for rows.Next() {
		var todo models.Todo
		if err := rows.Scan(&todo.ID, &todo.Title, &todo.Description, &todo.Completed,
			&todo.CreatedAtTime, &todo.UserID, &todo.Username); err != nil {
			return dbError(c, err)
		}
		todos = append(todos, todo)
	}
	if err := rows.Err(); err != nil {
		return dbError(c, err)
	}

	return c.Status(200).JSON(fiber.Map{
		"status":  200,
		"message": fmt.Sprintf("todos fetched successfully for %s", sess.User.Username),
		"data":    todos,
	})
}

type editTodoRequest struct {
	TodoID   string `json:"todoId" form:"todoId"`
	NewTitle string `json:"newTitle" form:"newTitle"`
	NewDesc  string `json:"newDesc" form:"newDesc"`
}

// Edit applies newTitle/newDesc to one of the current user's to-dos. The
// merged result has to satisfy the same rules as a fresh to-do.
//
//	@Summary	Edit a to-do
//	@Accept		json
//	@Produce	json
//	@Param		body	body	editTodoRequest	true	"edit payload"
//	@Success	200
//	@Failure	403
//	@Failure	404
//	@Router		/edit-todo [post]
func (h *TodoHandler) Edit(c *fiber.Ctx) error {
	var req editTodoRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(403).JSON(fiber.Map{"status": 403, "message": err.Error()})
	}
	if req.TodoID == "" {
		return c.Status(403).JSON(fiber.Map{
			"status":  403,
			"message": "Missing todoId, please check and try again",
		})
	}

	// lookup is scoped to the session's username so nobody edits somebody
	// else's to-do by guessing ids
	sess, _ := middleware.CurrentSession(c)
	var todo models.Todo
	err := h.db.QueryRowContext(c.UserContext(),
		"SELECT id, title, description, completed, created_at, user_id, username FROM todos WHERE id = $1 AND username = $2",
		req.TodoID, sess.User.Username).
		Scan(&todo.ID, &todo.Title, &todo.Description, &todo.Completed,
			&todo.CreatedAtTime, &todo.UserID, &todo.Username)
	if errors.Is(err, sql.ErrNoRows) {
		return c.Status(404).JSON(fiber.Map{"status": 404, "message": "Todo not found"})
	}
	if err != nil {
		return dbError(c, err)
	}

	if req.NewTitle != "" {
		todo.Title = req.NewTitle
	}
	if req.NewDesc != "" {
		todo.Description = req.NewDesc
	}
	if err := validators.ValidateTodoData(validators.TodoData{Title: todo.Title, Description: todo.Description}); err != nil {
		return c.Status(403).JSON(fiber.Map{"status": 403, "message": err.Error()})
	}

	_, err = h.db.ExecContext(c.UserContext(),
		"UPDATE todos SET title = $1, description = $2 WHERE id = $3",
		todo.Title, todo.Description, todo.ID)
	if err != nil {
		return dbError(c, err)
	}

	return c.Status(200).JSON(fiber.Map{
		"status":  200,
		"message": "todo updated successfully",
		"data":    todo,
	})
}
