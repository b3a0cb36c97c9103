package main

import (
	"log"
	"net/http"

	"gistpress/config"
	"gistpress/githubapi"
	"gistpress/handlers"
	"gistpress/helper"
	"gistpress/middleware"
	"gistpress/repositories"
	"gistpress/services"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gopkg.in/go-playground/validator.v9"
	entranslations "gopkg.in/go-playground/validator.v9/translations/en"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	// Initialize logger
	var l *zap.Logger
	var err error
	if gin.Mode() == gin.ReleaseMode {
		l, err = zap.NewProduction()
	} else {
		l, err = zap.NewDevelopment()
	}
	if err != nil {
		log.Fatal("error initializing logger: ", err)
	}
	defer l.Sync()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		l.Fatal("error loading config", zap.Error(err))
	}

	// Initialize database
	db, err := config.InitDB()
	if err != nil {
		l.Fatal("error initializing DB connection", zap.Error(err))
	}

	// GitHub API client (gists + profile)
	github := githubapi.NewClient(cfg.GithubAPIURL, cfg.GistTimeout, cfg.GistMaxRetries, l)

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	articleRepo := repositories.NewArticleRepository(db)

	// Initialize services
	authService := services.NewAuthService(userRepo, github, cfg, l)
	articleService := services.NewArticleService(userRepo, articleRepo, github, l)

	// Request validation with translated messages
	validate := validator.New()
	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)
	trans, _ := uni.GetTranslator("en")
	if err := entranslations.RegisterDefaultTranslations(validate, trans); err != nil {
		l.Fatal("error registering validator translations", zap.Error(err))
	}
	httpHelper := &helper.HTTPHelper{Validate: validate, Translator: trans}

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService, httpHelper, cfg, l)
	articleHandler := handlers.NewArticleHandler(articleService, httpHelper, l)

	// Setup router
	router := gin.Default()
	router.LoadHTMLGlob("templates/*")
	router.Use(middleware.Session(authService))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	// Public routes
	router.GET("/", articleHandler.Index)
	router.GET("/login", authHandler.Login)
	router.GET("/logout", authHandler.Logout)
	router.GET("/github/authorized", authHandler.Authorized)
	router.GET("/api/articles", articleHandler.ListArticles)

	// Session-required routes
	protected := router.Group("/")
	protected.Use(middleware.AuthRequired())
	{
		protected.GET("/user/", authHandler.Profile)
		protected.GET("/write", articleHandler.Write)
		protected.GET("/write/:github_id", articleHandler.Write)
		protected.POST("/save", articleHandler.Save)
	}

	// Start server
	l.Info("server starting", zap.String("port", cfg.Port))
	if err := http.ListenAndServe(":"+cfg.Port, router); err != nil {
		l.Fatal("server exited", zap.Error(err))
	}
}
