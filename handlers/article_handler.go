package handlers

import (
	"fmt"
	"net/http"

	"gistpress/helper"
	"gistpress/middleware"
	"gistpress/models"
	"gistpress/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gopkg.in/go-playground/validator.v9"
)

type ArticleHandler struct {
	articleService services.ArticleService
	Helper         *helper.HTTPHelper
	l              *zap.Logger
}

func NewArticleHandler(articleService services.ArticleService, h *helper.HTTPHelper, l *zap.Logger) *ArticleHandler {
	return &ArticleHandler{articleService: articleService, Helper: h, l: l}
}

// Index renders the landing page with the most recent articles.
func (h *ArticleHandler) Index(c *gin.Context) {
	articles, _, err := h.articleService.GetArticles(models.ArticleListParams{Page: 1, Limit: 20})
	if err != nil {
		h.l.Error("failed listing articles", zap.Error(err))
	}

	sess, _ := middleware.CurrentSession(c)

	c.HTML(http.StatusOK, "index.html", gin.H{
		"articles": articles,
		"flash":    helper.PopFlash(c),
		"login":    sess.Login,
	})
}

// ListArticles is the JSON listing used by API consumers.
func (h *ArticleHandler) ListArticles(c *gin.Context) {
	var params models.ArticleListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	if params.Page == 0 {
		params.Page = 1
	}
	if params.Limit == 0 {
		params.Limit = 10
	}

	articles, total, err := h.articleService.GetArticles(params)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	h.Helper.SendSuccess(c, "articles loaded", gin.H{
		"articles": articles,
		"paging":   h.Helper.GeneratePaging(c, params.Limit, params.Page, int(total)),
	})
}

// Write renders the editor, optionally preloaded with an existing article's
// remote content.
func (h *ArticleHandler) Write(c *gin.Context) {
	sess, _ := middleware.CurrentSession(c)

	content, err := h.articleService.EditorContent(c.Request.Context(), sess, c.Param("github_id"))
	if err != nil {
		c.String(h.Helper.GetStatusCode(err), err.Error())
		return
	}

	// The path tells the editor what its local storage file is called. The
	// file is overwritten if it exists, so the fixed name is fine.
	c.HTML(http.StatusOK, "editor.html", gin.H{
		"path":         "myfile",
		"github_id":    content.GithubID,
		"title":        content.Title,
		"article_text": content.Text,
	})
}

// Save runs the save workflow and renders the confirmation page, or maps
// the workflow error to the right user-visible behavior.
func (h *ArticleHandler) Save(c *gin.Context) {
	sess, _ := middleware.CurrentSession(c)

	var req models.SaveArticleRequest
	if err := c.ShouldBind(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}
	if err := h.Helper.Validate.Struct(req); err != nil {
		if ve, ok := err.(validator.ValidationErrors); ok {
			h.Helper.SendValidationError(c, ve)
			return
		}
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	result, err := h.articleService.Save(c.Request.Context(), sess, req)
	if err != nil {
		switch e := err.(type) {
		case models.ErrorUnauthorized:
			c.Redirect(http.StatusFound, "/login")
		case models.ErrorBadRequest:
			h.Helper.SendBadRequest(c, e.Message, h.Helper.EmptyJsonMap())
		case models.ErrorNotFound:
			h.Helper.SendNotFoundError(c, e.Message, h.Helper.EmptyJsonMap())
		case models.ErrorRemoteWrite:
			helper.SetFlash(c, fmt.Sprintf("Failed creating gist: %d", e.Status))
			c.Redirect(http.StatusFound, "/")
		default:
			h.l.Error("save failed", zap.Error(err))
			c.String(http.StatusInternalServerError, "internal error")
		}
		return
	}

	c.HTML(http.StatusOK, "article.html", gin.H{
		"title":    result.Article.Title,
		"gist_url": result.GistURL,
	})
}
