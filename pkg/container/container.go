// Package container wires every layer of the application together:
// config, infrastructure, repositories, services, handlers.
package container

import (
	"context"
	"errors"
	"fmt"
	"time"

	"titledb-backend/internal/config"
	"titledb-backend/internal/infrastructure/database"
	"titledb-backend/internal/infrastructure/email"
	"titledb-backend/internal/shared/auth"
	"titledb-backend/pkg/confirm"
	"titledb-backend/pkg/jwt"
	"titledb-backend/pkg/logger"

	"titledb-backend/internal/domains/comment"
	commentHandler "titledb-backend/internal/domains/comment/handler"
	commentRepo "titledb-backend/internal/domains/comment/repository"
	commentService "titledb-backend/internal/domains/comment/service"
	"titledb-backend/internal/domains/review"
	reviewHandler "titledb-backend/internal/domains/review/handler"
	reviewRepo "titledb-backend/internal/domains/review/repository"
	reviewService "titledb-backend/internal/domains/review/service"
	"titledb-backend/internal/domains/taxonomy"
	taxonomyHandler "titledb-backend/internal/domains/taxonomy/handler"
	taxonomyRepo "titledb-backend/internal/domains/taxonomy/repository"
	taxonomyService "titledb-backend/internal/domains/taxonomy/service"
	"titledb-backend/internal/domains/title"
	titleHandler "titledb-backend/internal/domains/title/handler"
	titleRepo "titledb-backend/internal/domains/title/repository"
	titleService "titledb-backend/internal/domains/title/service"
	"titledb-backend/internal/domains/user"
	userHandler "titledb-backend/internal/domains/user/handler"
	userRepo "titledb-backend/internal/domains/user/repository"
	userService "titledb-backend/internal/domains/user/service"
)

type Container struct {
	Config     *config.Config
	DB         *database.PostgresDB
	JWTManager *jwt.Manager
	Codes      *confirm.Generator
	Email      email.EmailService

	UserRepo     user.Repository
	CategoryRepo taxonomy.Repository
	GenreRepo    taxonomy.Repository
	TitleRepo    title.Repository
	ReviewRepo   review.Repository
	CommentRepo  comment.Repository

	UserService     user.Service
	CategoryService taxonomy.Service
	GenreService    taxonomy.Service
	TitleService    title.Service
	ReviewService   review.Service
	CommentService  comment.Service

	AuthHandler     *userHandler.AuthHandler
	UserHandler     *userHandler.UserHandler
	CategoryHandler *taxonomyHandler.TermHandler
	GenreHandler    *taxonomyHandler.TermHandler
	TitleHandler    *titleHandler.TitleHandler
	ReviewHandler   *reviewHandler.ReviewHandler
	CommentHandler  *commentHandler.CommentHandler
}

func NewContainer(cfg *config.Config) (*Container, error) {
	c := &Container{Config: cfg}

	if err := c.initInfrastructure(); err != nil {
		return nil, fmt.Errorf("failed to init infrastructure: %w", err)
	}

	c.initRepositories()
	c.initServices()
	c.initHandlers()

	if err := c.bootstrapAdmin(); err != nil {
		return nil, fmt.Errorf("failed to bootstrap admin user: %w", err)
	}

	logger.Info("container initialized", map[string]interface{}{
		"environment": cfg.App.Environment,
	})

	return c, nil
}

func (c *Container) initInfrastructure() error {
	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	c.DB = database.NewPostgresDB(dbConfig)
	if err := c.DB.Connect(ctx); err != nil {
		return err
	}
	if err := c.DB.EnsureSchema(ctx); err != nil {
		return err
	}

	c.JWTManager = jwt.NewManager(c.Config.JWT.Secret, c.Config.JWT.AccessTokenExpiry)
	c.Codes = confirm.NewGenerator(c.Config.Confirm.Secret, time.Duration(c.Config.Confirm.TTL)*time.Hour)

	if c.Config.Email.SMTPHost != "" {
		c.Email = email.NewSMTPEmailService(c.Config.Email.SMTPHost, c.Config.Email.SMTPPort, c.Config.Email.From)
	} else {
		c.Email = email.NewLogEmailService()
	}

	return nil
}

func (c *Container) initRepositories() {
	pool := c.DB.Pool

	c.UserRepo = userRepo.NewPostgresUserRepository(pool)
	c.CategoryRepo = taxonomyRepo.NewPostgresTermRepository(pool, taxonomy.Category)
	c.GenreRepo = taxonomyRepo.NewPostgresTermRepository(pool, taxonomy.Genre)
	c.TitleRepo = titleRepo.NewPostgresTitleRepository(pool)
	c.ReviewRepo = reviewRepo.NewPostgresReviewRepository(pool)
	c.CommentRepo = commentRepo.NewPostgresCommentRepository(pool)
}

func (c *Container) initServices() {
	codeTTL := fmt.Sprintf("%d hours", c.Config.Confirm.TTL)

	c.UserService = userService.NewUserService(c.UserRepo, c.Email, c.Codes, c.JWTManager, codeTTL)
	c.CategoryService = taxonomyService.NewTermService(c.CategoryRepo)
	c.GenreService = taxonomyService.NewTermService(c.GenreRepo)
	c.TitleService = titleService.NewTitleService(c.TitleRepo, c.CategoryRepo, c.GenreRepo)
	c.ReviewService = reviewService.NewReviewService(c.ReviewRepo, c.TitleRepo)
	c.CommentService = commentService.NewCommentService(c.CommentRepo, c.ReviewRepo, c.TitleRepo)
}

func (c *Container) initHandlers() {
	pageSize := c.Config.Pagination.PageSize

	c.AuthHandler = userHandler.NewAuthHandler(c.UserService)
	c.UserHandler = userHandler.NewUserHandler(c.UserService, pageSize)
	c.CategoryHandler = taxonomyHandler.NewTermHandler(c.CategoryService, taxonomy.Category, pageSize)
	c.GenreHandler = taxonomyHandler.NewTermHandler(c.GenreService, taxonomy.Genre, pageSize)
	c.TitleHandler = titleHandler.NewTitleHandler(c.TitleService, pageSize)
	c.ReviewHandler = reviewHandler.NewReviewHandler(c.ReviewService, pageSize)
	c.CommentHandler = commentHandler.NewCommentHandler(c.CommentService, pageSize)
}

// bootstrapAdmin seeds the configured superuser so a fresh deployment
// has someone able to manage the catalog. Existing rows are left alone.
func (c *Container) bootstrapAdmin() error {
	admin := c.Config.Admin
	if admin.Username == "" || admin.Email == "" {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := c.UserRepo.GetByUsername(ctx, admin.Username)
	if err == nil {
		return nil
	}
	if !errors.Is(err, user.ErrUserNotFound) {
		return err
	}

	u := &user.User{
		Username:  admin.Username,
		Email:     admin.Email,
		Role:      auth.RoleAdmin,
		Superuser: true,
	}
	if err := c.UserRepo.Create(ctx, u); err != nil {
		return err
	}

	logger.Info("bootstrap superuser created", map[string]interface{}{
		"username": admin.Username,
	})
	return nil
}

func (c *Container) Cleanup() {
	if c.DB != nil {
		if err := c.DB.Close(); err != nil {
			logger.Error("failed to close database", err)
		}
	}
}
