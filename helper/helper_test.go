package helper

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"gistpress/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestUnderscore(t *testing.T) {
	assert.Equal(t, "title", Underscore("Title"))
	assert.Equal(t, "github_id", Underscore("GithubID"))
	assert.Equal(t, "author_id", Underscore("AuthorID"))
	assert.Equal(t, "content", Underscore("Content"))
}

func TestGetStatusCode(t *testing.T) {
	h := &HTTPHelper{}

	assert.Equal(t, http.StatusOK, h.GetStatusCode(nil))
	assert.Equal(t, http.StatusUnauthorized, h.GetStatusCode(models.ErrorUnauthorized{}))
	assert.Equal(t, http.StatusNotFound, h.GetStatusCode(models.ErrorNotFound{}))
	assert.Equal(t, http.StatusBadRequest, h.GetStatusCode(models.ErrorBadRequest{}))
	assert.Equal(t, http.StatusBadGateway, h.GetStatusCode(models.ErrorRemoteWrite{Status: 500}))
	assert.Equal(t, http.StatusInternalServerError, h.GetStatusCode(errors.New("boom")))
}

func TestFlashRoundtrip(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	SetFlash(c, "Failed creating gist: 500")

	// carry the cookie into a second request, as the browser would
	w2 := httptest.NewRecorder()
	c2, _ := gin.CreateTestContext(w2)
	c2.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	for _, cookie := range w.Result().Cookies() {
		c2.Request.AddCookie(cookie)
	}

	assert.Equal(t, "Failed creating gist: 500", PopFlash(c2))
}
