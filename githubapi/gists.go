package githubapi

import (
	"context"

	"github.com/google/go-github/github"
)

// GistFile is the fixed filename the article body is stored under inside
// each gist.
const GistFile = "article.md"

// GistResult is the decoded outcome of a gist call. Status is the upstream
// HTTP status; ID and Content are filled when the response carried them.
type GistResult struct {
	Status  int
	ID      string
	Content string
}

// GistStore is the content-store surface the article workflow depends on.
type GistStore interface {
	Create(ctx context.Context, token, title, body string) (GistResult, error)
	Update(ctx context.Context, token, id, body string) (GistResult, error)
	Fetch(ctx context.Context, token, id string) (GistResult, error)
}

func (c *Client) Create(ctx context.Context, token, title, body string) (GistResult, error) {
	gh, err := c.api(ctx, token)
	if err != nil {
		return GistResult{}, err
	}

	gist := &github.Gist{
		Description: github.String(title),
		Public:      github.Bool(true),
		Files: map[github.GistFilename]github.GistFile{
			GistFile: {Content: github.String(body)},
		},
	}

	var res GistResult
	res.Status, err = c.do(ctx, "gist.create", func() (*github.Response, error) {
		created, resp, err := gh.Gists.Create(ctx, gist)
		if created != nil {
			res.ID = created.GetID()
		}
		return resp, err
	})
	if err != nil {
		return GistResult{}, err
	}

	return res, nil
}

func (c *Client) Update(ctx context.Context, token, id, body string) (GistResult, error) {
	gh, err := c.api(ctx, token)
	if err != nil {
		return GistResult{}, err
	}

	gist := &github.Gist{
		Files: map[github.GistFilename]github.GistFile{
			GistFile: {Content: github.String(body)},
		},
	}

	res := GistResult{ID: id}
	res.Status, err = c.do(ctx, "gist.update", func() (*github.Response, error) {
		_, resp, err := gh.Gists.Edit(ctx, id, gist)
		return resp, err
	})
	if err != nil {
		return GistResult{}, err
	}

	return res, nil
}

func (c *Client) Fetch(ctx context.Context, token, id string) (GistResult, error) {
	gh, err := c.api(ctx, token)
	if err != nil {
		return GistResult{}, err
	}

	res := GistResult{ID: id}
	res.Status, err = c.do(ctx, "gist.fetch", func() (*github.Response, error) {
		gist, resp, err := gh.Gists.Get(ctx, id)
		if gist != nil {
			if file, ok := gist.Files[GistFile]; ok {
				res.Content = file.GetContent()
			}
		}
		return resp, err
	})
	if err != nil {
		return GistResult{}, err
	}

	return res, nil
}
