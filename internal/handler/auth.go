package handler

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/welcomehome/inventory/internal/config"
	"github.com/welcomehome/inventory/internal/model"
	"github.com/welcomehome/inventory/internal/service"
	"github.com/welcomehome/inventory/internal/utils"
)

// AuthHandler bundles dependencies for auth endpoints.
type AuthHandler struct {
	Cfg config.Config
	App *service.App
}

func NewAuthHandler(cfg config.Config, app *service.App) *AuthHandler {
	return &AuthHandler{Cfg: cfg, App: app}
}

// ----- DTOs -----

type registerReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"` // client | staff | volunteer | admin
}
type loginReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type tokenPart struct {
	Token   string    `json:"token"`
	Expires time.Time `json:"expires"`
}
type userPart struct {
	Username string `json:"username"`
	Role     string `json:"role"`
}
type authResp struct {
	User    userPart  `json:"user"`
	Session tokenPart `json:"session"`
}

// Register: create a user account. No session is established; clients
// log in afterwards.
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Username = strings.TrimSpace(req.Username)
	if req.Username == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "username/password required"})
	}
	// An omitted role defaults to client; anything outside the
	// enumeration is rejected rather than coerced.
	role := model.RoleClient
	if v := strings.ToLower(strings.TrimSpace(req.Role)); v != "" {
		parsed, err := model.ParseRole(v)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "unknown role"})
		}
		role = parsed
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.App.Register(ctx, req.Username, req.Password, role); err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusCreated, echo.Map{
		"user": userPart{Username: req.Username, Role: string(role)},
	})
}

// Login: verify credentials, establish a session and return its token.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Username = strings.TrimSpace(req.Username)
	if req.Username == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "username/password required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	sess, err := h.App.Authenticate(ctx, req.Username, req.Password)
	if err != nil {
		return respondErr(c, err)
	}
	token, err := utils.NewSessionToken(h.Cfg.JWTSecret, sess.Username, string(sess.Role), sess.ID, h.Cfg.SessionTTLMin)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "issue token failed"})
	}
	return c.JSON(http.StatusOK, authResp{
		User:    userPart{Username: sess.Username, Role: string(sess.Role)},
		Session: tokenPart{Token: token.Token, Expires: token.Exp},
	})
}

// Logout: clear the session referenced by the token (protected).
func (h *AuthHandler) Logout(c echo.Context) error {
	if sid, ok := c.Get("session_id").(string); ok && sid != "" {
		h.App.Logout(sid)
	}
	return c.NoContent(http.StatusNoContent)
}

// Me: simple protected endpoint.
func (h *AuthHandler) Me(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"username": c.Get("username"),
		"role":     c.Get("role"),
	})
}
