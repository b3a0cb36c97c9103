package services

import (
	"context"

	"gistpress/githubapi"
	"gistpress/models"

	"gorm.io/gorm"
)

type fakeUserRepo struct {
	users  map[string]*models.User
	nextID uint
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*models.User{}, nextID: 1}
}

func (f *fakeUserRepo) Create(user *models.User) error {
	user.ID = f.nextID
	f.nextID++
	f.users[user.GithubUsername] = user
	return nil
}

func (f *fakeUserRepo) GetByID(id uint) (*models.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepo) GetByGithubUsername(login string) (*models.User, error) {
	u, ok := f.users[login]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) Update(user *models.User) error {
	f.users[user.GithubUsername] = user
	return nil
}

type fakeArticleRepo struct {
	articles []*models.Article
	nextID   uint
}

func newFakeArticleRepo() *fakeArticleRepo {
	return &fakeArticleRepo{nextID: 1}
}

func (f *fakeArticleRepo) Create(article *models.Article) error {
	article.ID = f.nextID
	f.nextID++
	f.articles = append(f.articles, article)
	return nil
}

func (f *fakeArticleRepo) GetByID(id uint) (*models.Article, error) {
	for _, a := range f.articles {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeArticleRepo) GetByGithubID(githubID string) (*models.Article, error) {
	for _, a := range f.articles {
		if a.GithubID == githubID {
			return a, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeArticleRepo) GetList(params models.ArticleListParams) ([]models.Article, int64, error) {
	var out []models.Article
	for _, a := range f.articles {
		out = append(out, *a)
	}
	return out, int64(len(out)), nil
}

func (f *fakeArticleRepo) Update(article *models.Article) error {
	for i, a := range f.articles {
		if a.ID == article.ID {
			f.articles[i] = article
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

type fakeGists struct {
	createResult githubapi.GistResult
	createErr    error
	createCalls  int

	updateResult githubapi.GistResult
	updateErr    error
	updateCalls  int

	fetchResult githubapi.GistResult
	fetchErr    error

	lastToken string
	lastTitle string
	lastBody  string
}

func (f *fakeGists) Create(ctx context.Context, token, title, body string) (githubapi.GistResult, error) {
	f.createCalls++
	f.lastToken = token
	f.lastTitle = title
	f.lastBody = body
	return f.createResult, f.createErr
}

func (f *fakeGists) Update(ctx context.Context, token, id, body string) (githubapi.GistResult, error) {
	f.updateCalls++
	f.lastToken = token
	f.lastBody = body
	return f.updateResult, f.updateErr
}

func (f *fakeGists) Fetch(ctx context.Context, token, id string) (githubapi.GistResult, error) {
	return f.fetchResult, f.fetchErr
}

type fakeProfiles struct {
	profile    *githubapi.UserProfile
	profileErr error

	email       *string
	emailStatus int
	emailErr    error
}

func (f *fakeProfiles) Profile(ctx context.Context, token string) (*githubapi.UserProfile, error) {
	return f.profile, f.profileErr
}

func (f *fakeProfiles) PrimaryEmail(ctx context.Context, token string) (*string, int, error) {
	return f.email, f.emailStatus, f.emailErr
}
