package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"gistpress/githubapi"
	"gistpress/models"
	"gistpress/repositories"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type ArticleService interface {
	// Save persists the editor form: the body goes to the gist store, the
	// bookkeeping row to the local database. The row is written only after
	// the remote write succeeded.
	Save(ctx context.Context, sess models.Session, req models.SaveArticleRequest) (*models.SaveResult, error)
	// EditorContent loads what the editor should show: empty for a new
	// article, the stored title plus the remote body for an existing one.
	EditorContent(ctx context.Context, sess models.Session, githubID string) (*models.EditorContent, error)
	GetArticles(params models.ArticleListParams) ([]models.Article, int64, error)
}

type articleService struct {
	userRepo    repositories.UserRepository
	articleRepo repositories.ArticleRepository
	gists       githubapi.GistStore
	l           *zap.Logger
}

func NewArticleService(userRepo repositories.UserRepository, articleRepo repositories.ArticleRepository, gists githubapi.GistStore, l *zap.Logger) ArticleService {
	return &articleService{
		userRepo:    userRepo,
		articleRepo: articleRepo,
		gists:       gists,
		l:           l,
	}
}

func (s *articleService) Save(ctx context.Context, sess models.Session, req models.SaveArticleRequest) (*models.SaveResult, error) {
	if sess.Login == "" {
		return nil, models.ErrorUnauthorized{Message: "no user found in session"}
	}

	user, err := s.userRepo.GetByGithubUsername(sess.Login)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrorUnauthorized{Message: "no user found in session"}
		}
		return nil, err
	}

	body, err := decodeEditorPayload(req.Content)
	if err != nil {
		return nil, models.ErrorBadRequest{Message: err.Error()}
	}

	if req.GithubID == "" {
		return s.create(ctx, sess, user, req.Title, body)
	}
	return s.update(ctx, sess, req.GithubID, req.Title, body)
}

func (s *articleService) create(ctx context.Context, sess models.Session, user *models.User, title, body string) (*models.SaveResult, error) {
	res, err := s.gists.Create(ctx, sess.Token, title, body)
	if err != nil {
		s.l.Error("gist create failed", zap.String("login", sess.Login), zap.Error(err))
		return nil, models.ErrorRemoteWrite{Status: 0}
	}
	if res.Status != http.StatusCreated {
		return nil, models.ErrorRemoteWrite{Status: res.Status}
	}

	article := &models.Article{
		Title:    title,
		AuthorID: user.ID,
		GithubID: res.ID,
	}
	if err := s.articleRepo.Create(article); err != nil {
		return nil, err
	}

	s.l.Info("article saved",
		zap.String("login", sess.Login),
		zap.String("github_id", res.ID))

	return &models.SaveResult{
		Article: article,
		GistURL: gistURL(sess.Login, res.ID),
	}, nil
}

func (s *articleService) update(ctx context.Context, sess models.Session, githubID, title, body string) (*models.SaveResult, error) {
	article, err := s.articleRepo.GetByGithubID(githubID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrorNotFound{Message: "no article found in database"}
		}
		return nil, err
	}

	res, err := s.gists.Update(ctx, sess.Token, githubID, body)
	if err != nil {
		s.l.Error("gist update failed", zap.String("github_id", githubID), zap.Error(err))
		return nil, models.ErrorRemoteWrite{Status: 0}
	}
	if res.Status != http.StatusOK {
		return nil, models.ErrorRemoteWrite{Status: res.Status}
	}

	article.Title = title
	if err := s.articleRepo.Update(article); err != nil {
		return nil, err
	}

	return &models.SaveResult{
		Article: article,
		GistURL: gistURL(sess.Login, githubID),
	}, nil
}

func (s *articleService) EditorContent(ctx context.Context, sess models.Session, githubID string) (*models.EditorContent, error) {
	if githubID == "" {
		return &models.EditorContent{}, nil
	}

	article, err := s.articleRepo.GetByGithubID(githubID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrorNotFound{Message: "no article found in database"}
		}
		return nil, err
	}

	content := &models.EditorContent{
		GithubID: githubID,
		Title:    article.Title,
	}

	res, err := s.gists.Fetch(ctx, sess.Token, githubID)
	if err != nil {
		s.l.Warn("gist fetch failed", zap.String("github_id", githubID), zap.Error(err))
		return content, nil
	}
	if res.Status == http.StatusOK {
		content.Text = res.Content
	}

	return content, nil
}

func (s *articleService) GetArticles(params models.ArticleListParams) ([]models.Article, int64, error) {
	return s.articleRepo.GetList(params)
}

// decodeEditorPayload extracts the article body from the editor form field,
// which holds JSON with the real data under the content key.
func decodeEditorPayload(raw string) (string, error) {
	var payload struct {
		Content *string `json:"content"`
	}
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return "", fmt.Errorf("content is not valid JSON: %w", err)
	}
	if payload.Content == nil {
		return "", errors.New("content key missing from payload")
	}
	return *payload.Content, nil
}

func gistURL(login, id string) string {
	if id == "" {
		return ""
	}
	return fmt.Sprintf("https://gist.github.com/%s/%s", login, id)
}
