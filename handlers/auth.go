package handlers

import (
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/YashSharma412/Todo-app-full-stack-ejs/middleware"
	"github.com/YashSharma412/Todo-app-full-stack-ejs/models"
	"github.com/YashSharma412/Todo-app-full-stack-ejs/session"
	"github.com/YashSharma412/Todo-app-full-stack-ejs/utils"
	"github.com/YashSharma412/Todo-app-full-stack-ejs/validators"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/crypto/bcrypt"
)

// sessionTokenBytes gives 64 hex characters per token.
const sessionTokenBytes = 32

// AuthHandler serves registration, login and session lifecycle endpoints.
type AuthHandler struct {
	db         *sql.DB
	sessions   session.Store
	bcryptCost int
	sessionTTL time.Duration
}

func NewAuthHandler(db *sql.DB, sessions session.Store, bcryptCost int, sessionTTL time.Duration) *AuthHandler {
	return &AuthHandler{
		db:         db,
		sessions:   sessions,
		bcryptCost: bcryptCost,
		sessionTTL: sessionTTL,
	}
}

// Register creates a new user account.
//
//	@Summary	Register a new user
//	@Accept		json
//	@Produce	json
//	@Param		body	body	validators.UserData	true	"registration payload"
//	@Success	201
//	@Failure	406
//	@Failure	422
//	@Router		/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var payload validators.UserData
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(422).JSON(fiber.Map{
			"status":  422,
			"message": "Failed to register due to Invalid credentials",
			"err":     err.Error(),
		})
	}
	if err := validators.ValidateUserData(payload); err != nil {
		return c.Status(422).JSON(fiber.Map{
			"status":  422,
			"message": "Failed to register due to Invalid credentials",
			"err":     err.Error(),
		})
	}

	// pre-checks give friendlier conflict errors; the unique indexes on
	// users.email and users.username are the actual guarantee
	var existingEmail string
	err := h.db.QueryRowContext(c.UserContext(),
		"SELECT email FROM users WHERE email = $1", payload.Email).Scan(&existingEmail)
	if err == nil {
		return c.Status(406).JSON(fiber.Map{
			"status":  406,
			"message": "Email already in use, try another email or try login!",
			"email":   existingEmail,
		})
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return dbError(c, err)
	}

	var takenEmail string
	err = h.db.QueryRowContext(c.UserContext(),
		"SELECT email FROM users WHERE username = $1", payload.Username).Scan(&takenEmail)
	if err == nil {
		return c.Status(406).JSON(fiber.Map{
			"status":  406,
			"message": "Username already in use, try another name",
			"email":   takenEmail,
		})
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return dbError(c, err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(payload.Password), h.bcryptCost)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"status": 500, "message": "could not hash password"})
	}

	user := models.User{
		Name:     payload.Name,
		Email:    payload.Email,
		Username: payload.Username,
		Password: string(hashedPassword),
	}
	err = h.db.QueryRowContext(c.UserContext(),
		"INSERT INTO users (name, email, username, password) VALUES ($1, $2, $3, $4) RETURNING id",
		user.Name, user.Email, user.Username, user.Password).Scan(&user.ID)
	if err != nil {
		// two concurrent registrations can both pass the pre-checks; the
		// unique index turns the loser into a conflict, not a 500
		if pgErr, ok := uniqueViolation(err); ok {
			message := "Email already in use, try another email or try login!"
			if strings.Contains(pgErr.ConstraintName, "username") {
				message = "Username already in use, try another name"
			}
			return c.Status(406).JSON(fiber.Map{
				"status":  406,
				"message": message,
			})
		}
		return dbError(c, err)
	}

	return c.Status(201).JSON(fiber.Map{
		"status":  201,
		"data":    user,
		"message": "User registered successfully!",
	})
}

type loginRequest struct {
	LoginID  string `json:"loginId" form:"loginId"`
	Password string `json:"password" form:"password"`
}

// Login authenticates by email or username and establishes a session.
//
//	@Summary	Log in with email or username
//	@Accept		json
//	@Produce	json
//	@Param		body	body	loginRequest	true	"login payload"
//	@Success	302
//	@Failure	403
//	@Failure	404
//	@Router		/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(403).JSON(fiber.Map{
			"status":  403,
			"message": "Missing Login Id, please check and try again",
		})
	}
	if req.LoginID == "" {
		return c.Status(403).JSON(fiber.Map{
			"status":  403,
			"message": "Missing Login Id, please check and try again",
		})
	}
	if req.Password == "" {
		return c.Status(403).JSON(fiber.Map{
			"status":  403,
			"message": "Missing Login password, please check and try again",
		})
	}

	// an email-shaped loginId is looked up by email, anything else by username
	const selectUser = "SELECT id, name, email, username, password FROM users WHERE "
	var user models.User
	var err error
	if validators.IsValidEmail(req.LoginID) {
		err = h.db.QueryRowContext(c.UserContext(), selectUser+"email = $1", req.LoginID).
			Scan(&user.ID, &user.Name, &user.Email, &user.Username, &user.Password)
	} else {
		err = h.db.QueryRowContext(c.UserContext(), selectUser+"username = $1", req.LoginID).
			Scan(&user.ID, &user.Name, &user.Email, &user.Username, &user.Password)
	}
	if errors.Is(err, sql.ErrNoRows) {
		return c.Status(404).JSON(fiber.Map{
			"status":  404,
			"message": "User not found. Please Check credentials or try Sign in",
		})
	}
	if err != nil {
		return dbError(c, err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return c.Status(403).JSON(fiber.Map{
			"status":  403,
			"message": "Invalid Login password, please check and try again",
		})
	}

	token, err := utils.GenerateToken(sessionTokenBytes)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"status": 500, "message": "could not generate session token"})
	}

	now := time.Now()
	sess := session.Session{
		Token:  token,
		IsAuth: true,
		User: session.User{
			UserID:   user.ID,
			Username: user.Username,
			Email:    user.Email,
		},
		CreatedAt: now,
		ExpiresAt: now.Add(h.sessionTTL),
	}
	if err := h.sessions.Create(c.UserContext(), sess); err != nil {
		return dbError(c, err)
	}

	c.Cookie(&fiber.Cookie{
		Name:     session.CookieName,
		Value:    token,
		Expires:  sess.ExpiresAt,
		HTTPOnly: true,
		SameSite: "Lax",
	})
	return c.Redirect("/dashboard")
}

// Dashboard returns the identity of the logged-in user.
//
//	@Summary	Current user's dashboard data
//	@Produce	json
//	@Success	200
//	@Failure	401
//	@Router		/dashboard [get]
func (h *AuthHandler) Dashboard(c *fiber.Ctx) error {
	sess, _ := middleware.CurrentSession(c)
	return c.Status(200).JSON(fiber.Map{
		"status": 200,
		"user":   sess.User,
	})
}

// Logout destroys the current session and clears the cookie.
//
//	@Summary	Log out the current session
//	@Produce	json
//	@Success	302
//	@Failure	500
//	@Router		/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	sess, _ := middleware.CurrentSession(c)
	if err := h.sessions.Delete(c.UserContext(), sess.Token); err != nil && !errors.Is(err, session.ErrNotFound) {
		return c.Status(500).JSON(fiber.Map{
			"message": "Error ocurred from database while trying to logout. Please try again.",
			"err":     err.Error(),
		})
	}

	clearSessionCookie(c)
	return c.Redirect("/login")
}

// LogoutAllDevices deletes every session carrying the current user's email,
// including ones created on other devices.
//
//	@Summary	Log out from all devices
//	@Produce	json
//	@Success	200
//	@Failure	500
//	@Router		/logout_from_all_devices [post]
func (h *AuthHandler) LogoutAllDevices(c *fiber.Ctx) error {
	sess, _ := middleware.CurrentSession(c)
	deleted, err := h.sessions.DeleteByEmail(c.UserContext(), sess.User.Email)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{
			"message": "Error occurred logging out from all devices",
			"err":     err.Error(),
		})
	}

	clearSessionCookie(c)
	return c.Status(200).JSON(fiber.Map{
		"status":        200,
		"message":       "Successfully logged out from all devices",
		"deleted_count": deleted,
	})
}

func clearSessionCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     session.CookieName,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: "Lax",
	})
}

// dbError maps a store failure to the generic 500 response, keeping the
// underlying error for diagnostics.
func dbError(c *fiber.Ctx, err error) error {
	return c.Status(500).JSON(fiber.Map{
		"status":  500,
		"message": "Internal Server error. DB error",
		"err":     err.Error(),
	})
}

// uniqueViolation unwraps a PostgreSQL unique-index violation so the caller
// can pick a conflict message off the violated constraint.
func uniqueViolation(err error) (*pgconn.PgError, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return pgErr, true
	}
	return nil, false
}
