package handlers

import (
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
