package models

// Session carries the per-request view of the browser session cookie. The
// access token is the GitHub bearer credential obtained during the OAuth
// callback; Login and Name are cached from the profile fetch.
type Session struct {
	Login string `json:"login"`
	Name  string `json:"name"`
	Token string `json:"token"`
}

// SaveArticleRequest is the editor form. Content holds a JSON document whose
// "content" key carries the actual article body.
type SaveArticleRequest struct {
	GithubID string `form:"github_id"`
	Title    string `form:"title" validate:"required,min=1,max=255"`
	Content  string `form:"content" validate:"required"`
}

type SaveResult struct {
	Article *Article `json:"article"`
	GistURL string   `json:"gist_url"`
}

// EditorContent is what the editor view renders: empty for a new article,
// the stored title plus the remote gist body for an existing one.
type EditorContent struct {
	GithubID string `json:"github_id"`
	Title    string `json:"title"`
	Text     string `json:"text"`
}

type Profile struct {
	Login  string  `json:"login"`
	Name   string  `json:"name"`
	Email  *string `json:"email"`
	Notice string  `json:"notice,omitempty"`
}

type ArticleListParams struct {
	AuthorID  uint   `form:"author_id"`
	Page      int    `form:"page,default=1"`
	Limit     int    `form:"limit,default=10"`
	SortBy    string `form:"sort_by,default=created_at"`
	SortOrder string `form:"sort_order,default=desc"`
}
