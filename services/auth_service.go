package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"gistpress/config"
	"gistpress/githubapi"
	"gistpress/models"
	"gistpress/repositories"

	"github.com/golang-jwt/jwt/v4"
	"go.uber.org/zap"
	"golang.org/x/oauth2"
	"gorm.io/gorm"
)

// githubEndpoint is the OAuth2 authorization-code endpoint pair for GitHub.
var githubEndpoint = oauth2.Endpoint{
	AuthURL:  "https://github.com/login/oauth/authorize",
	TokenURL: "https://github.com/login/oauth/access_token",
}

type SessionClaims struct {
	Login string `json:"login"`
	Name  string `json:"name"`
	Token string `json:"token"`
	jwt.RegisteredClaims
}

type AuthService interface {
	// LoginURL builds the GitHub authorize redirect for the given CSRF state.
	LoginURL(state string) string
	// Exchange trades the callback code for a bearer token.
	Exchange(ctx context.Context, code string) (string, error)
	// ResolveProfile fetches the provider profile and primary email for the
	// token, reconciles the local User record, and reports any user-visible
	// notice (e.g. no primary email on file).
	ResolveProfile(ctx context.Context, token string) (*models.Profile, error)
	// UpsertUser creates the user on first login and updates the stored
	// email when the provider reports a different one. Idempotent.
	UpsertUser(login string, email *string) (*models.User, error)
	SignSession(sess models.Session) (string, error)
	VerifySession(tokenString string) (*models.Session, error)
}

type authService struct {
	userRepo repositories.UserRepository
	profiles githubapi.ProfileSource
	oauth    *oauth2.Config
	secret   []byte
	ttl      time.Duration
	l        *zap.Logger
}

func NewAuthService(userRepo repositories.UserRepository, profiles githubapi.ProfileSource, cfg *config.Config, l *zap.Logger) AuthService {
	return &authService{
		userRepo: userRepo,
		profiles: profiles,
		oauth: &oauth2.Config{
			ClientID:     cfg.GithubClientID,
			ClientSecret: cfg.GithubSecret,
			Endpoint:     githubEndpoint,
			Scopes:       []string{"gist", "user:email"},
			RedirectURL:  cfg.BaseURL + "/github/authorized",
		},
		secret: cfg.SessionSecret,
		ttl:    cfg.SessionTTL,
		l:      l,
	}
}

func (s *authService) LoginURL(state string) string {
	return s.oauth.AuthCodeURL(state)
}

func (s *authService) Exchange(ctx context.Context, code string) (string, error) {
	tok, err := s.oauth.Exchange(ctx, code)
	if err != nil {
		return "", fmt.Errorf("oauth exchange failed: %w", err)
	}
	return tok.AccessToken, nil
}

func (s *authService) ResolveProfile(ctx context.Context, token string) (*models.Profile, error) {
	me, err := s.profiles.Profile(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("fetch github profile: %w", err)
	}

	profile := &models.Profile{Login: me.Login, Name: me.Name}

	email, status, err := s.profiles.PrimaryEmail(ctx, token)
	switch {
	case err != nil || status != http.StatusOK:
		s.l.Warn("failed reading user email addresses",
			zap.Int("status", status), zap.Error(err))
		profile.Notice = fmt.Sprintf("Failed reading user email addresses: %d", status)
	case email == nil:
		profile.Notice = "No primary email address found"
	default:
		profile.Email = email
	}

	if _, err := s.UpsertUser(me.Login, profile.Email); err != nil {
		return nil, err
	}

	return profile, nil
}

func (s *authService) UpsertUser(login string, email *string) (*models.User, error) {
	user, err := s.userRepo.GetByGithubUsername(login)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		user = &models.User{GithubUsername: login, Email: email}
		if err := s.userRepo.Create(user); err != nil {
			return nil, err
		}
		s.l.Info("created user", zap.String("login", login))
		return user, nil
	}

	if emailChanged(user.Email, email) {
		user.Email = email
		if err := s.userRepo.Update(user); err != nil {
			return nil, err
		}
	}

	return user, nil
}

func emailChanged(stored, reported *string) bool {
	if stored == nil || reported == nil {
		return stored != reported
	}
	return *stored != *reported
}

func (s *authService) SignSession(sess models.Session) (string, error) {
	now := time.Now()

	claims := SessionClaims{
		Login: sess.Login,
		Name:  sess.Name,
		Token: sess.Token,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

func (s *authService) VerifySession(tokenString string) (*models.Session, error) {
	claims := &SessionClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("token is not valid")
	}

	return &models.Session{
		Login: claims.Login,
		Name:  claims.Name,
		Token: claims.Token,
	}, nil
}
