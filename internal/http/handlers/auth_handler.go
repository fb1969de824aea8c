package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"shopdrive/internal/log"
	"shopdrive/internal/services"
	"shopdrive/internal/validate"
)

type AuthHandler struct {
	Auth *services.AuthService
}

func ensureSID(c *fiber.Ctx) string {
	sid := c.Cookies("sid")
	if sid == "" {
		sid = uuid.NewString()
		c.Cookie(&fiber.Cookie{
			Name:     "sid",
			Value:    sid,
			Path:     "/",
			HTTPOnly: true,
			SameSite: fiber.CookieSameSiteLaxMode,
		})
	}
	return sid
}

func (h *AuthHandler) LoginForm(c *fiber.Ctx) error {
	return render(c, "login", fiber.Map{"Err": ""})
}

func (h *AuthHandler) loginFailed(c *fiber.Ctx, email, reason string) error {
	log.Security(c, "auth.login.fail", map[string]any{"email": email, "reason": reason})
	return render(c.Status(fiber.StatusUnauthorized), "login", fiber.Map{"Err": "Invalid email or password"})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	sid := ensureSID(c)
	email := c.FormValue("email")
	pass := c.FormValue("password")
	if _, ok := validate.Email(email); !ok {
		return h.loginFailed(c, email, "bad_format")
	}
	if !validate.Password(pass) {
		return h.loginFailed(c, email, "bad_password_format")
	}
	if _, err := h.Auth.Login(c.UserContext(), sid, email, pass); err != nil {
		return h.loginFailed(c, email, "bad_credentials")
	}

	log.Audit(c, "auth.login.success", map[string]any{"email": email})
	return c.Redirect("/search")
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	sid := ensureSID(c)
	_ = h.Auth.Logout(c.UserContext(), sid)
	c.Cookie(&fiber.Cookie{
		Name:     "sid",
		Value:    "",
		Path:     "/",
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Expires:  time.Now().Add(-1 * time.Hour),
	})
	log.Audit(c, "auth.logout", nil)
	return c.Redirect("/search")
}
