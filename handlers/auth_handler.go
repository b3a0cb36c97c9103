package handlers

import (
	"crypto/rand"
	"encoding/hex"
	"net/http"

	"gistpress/config"
	"gistpress/helper"
	"gistpress/middleware"
	"gistpress/models"
	"gistpress/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const stateCookie = "oauth_state"

type AuthHandler struct {
	authService services.AuthService
	Helper      *helper.HTTPHelper
	cfg         *config.Config
	l           *zap.Logger
}

func NewAuthHandler(authService services.AuthService, h *helper.HTTPHelper, cfg *config.Config, l *zap.Logger) *AuthHandler {
	return &AuthHandler{authService: authService, Helper: h, cfg: cfg, l: l}
}

// Login redirects the browser to the GitHub authorize page.
func (h *AuthHandler) Login(c *gin.Context) {
	state := randomState()
	c.SetCookie(stateCookie, state, 300, "/", "", false, true)
	c.Redirect(http.StatusFound, h.authService.LoginURL(state))
}

// Authorized is the OAuth callback. It verifies the CSRF state, exchanges
// the code for a bearer token, and opens the session.
func (h *AuthHandler) Authorized(c *gin.Context) {
	code := c.Query("code")
	if code == "" {
		c.String(http.StatusForbidden, "Access denied: reason=%s error=%s",
			c.Query("error"), c.Query("error_description"))
		return
	}

	wantState, err := c.Cookie(stateCookie)
	if err != nil || wantState == "" || wantState != c.Query("state") {
		c.String(http.StatusForbidden, "Access denied: state mismatch")
		return
	}
	helper.ClearCookie(c, stateCookie)

	token, err := h.authService.Exchange(c.Request.Context(), code)
	if err != nil {
		h.l.Error("oauth exchange failed", zap.Error(err))
		helper.SetFlash(c, "Login failed, please try again")
		c.Redirect(http.StatusFound, "/")
		return
	}

	h.setSession(c, models.Session{Token: token})
	c.Redirect(http.StatusFound, "/user/")
}

func (h *AuthHandler) Logout(c *gin.Context) {
	helper.ClearCookie(c, middleware.SessionCookie)
	c.Redirect(http.StatusFound, "/")
}

// Profile fetches the GitHub profile for the session token, reconciles the
// local user record, and caches login and display name in the session.
func (h *AuthHandler) Profile(c *gin.Context) {
	sess, _ := middleware.CurrentSession(c)

	profile, err := h.authService.ResolveProfile(c.Request.Context(), sess.Token)
	if err != nil {
		h.l.Error("failed resolving profile", zap.Error(err))
		helper.SetFlash(c, "Failed loading your GitHub profile")
		c.Redirect(http.StatusFound, "/")
		return
	}

	h.setSession(c, models.Session{
		Login: profile.Login,
		Name:  profile.Name,
		Token: sess.Token,
	})

	c.HTML(http.StatusOK, "profile.html", gin.H{
		"profile": profile,
		"notice":  profile.Notice,
	})
}

func (h *AuthHandler) setSession(c *gin.Context, sess models.Session) {
	signed, err := h.authService.SignSession(sess)
	if err != nil {
		h.l.Error("failed signing session", zap.Error(err))
		return
	}
	c.SetCookie(middleware.SessionCookie, signed, int(h.cfg.SessionTTL.Seconds()), "/", "", false, true)
}

func randomState() string {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return ""
	}
	return hex.EncodeToString(b)
}
