package helper

import (
	"net/url"

	"github.com/gin-gonic/gin"
)

const flashCookie = "flash"

// SetFlash stores a one-shot notice that survives exactly one redirect.
func SetFlash(c *gin.Context, message string) {
	c.SetCookie(flashCookie, url.QueryEscape(message), 60, "/", "", false, true)
}

// PopFlash returns the pending notice, if any, and clears it.
func PopFlash(c *gin.Context) string {
	raw, err := c.Cookie(flashCookie)
	if err != nil || raw == "" {
		return ""
	}

	c.SetCookie(flashCookie, "", -1, "/", "", false, true)

	message, err := url.QueryUnescape(raw)
	if err != nil {
		return ""
	}
	return message
}

// ClearCookie expires a cookie by name.
func ClearCookie(c *gin.Context, name string) {
	c.SetCookie(name, "", -1, "/", "", false, true)
}
