package container

import (
	"log/slog"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/joshua-takyi/sociogram/internal/config"
	"github.com/joshua-takyi/sociogram/internal/models"
	"github.com/joshua-takyi/sociogram/internal/services"
	"go.mongodb.org/mongo-driver/mongo"
)

// Container holds all application dependencies
type Container struct {
	Logger        *slog.Logger
	Config        *config.Config
	MongoDBClient *mongo.Client
	Repo          *models.MongodbRepo
	AuthService   *services.AuthService
	UserService   *services.UserService
	PostService   *services.PostService
}

// NewContainer creates a new dependency injection container. cld may be
// nil when Cloudinary is not configured.
func NewContainer(
	logger *slog.Logger,
	cfg *config.Config,
	mongoDBClient *mongo.Client,
	cld *cloudinary.Cloudinary,
) *Container {
	repo := models.MongodbNewRepo(mongoDBClient, cfg.MongoDBName)

	authService := services.NewAuthService(repo, cfg.JWTSecret)
	userService := services.NewUserService(repo)
	postService := services.NewPostService(repo, repo, cld)

	return &Container{
		Logger:        logger,
		Config:        cfg,
		MongoDBClient: mongoDBClient,
		Repo:          repo,
		AuthService:   authService,
		UserService:   userService,
		PostService:   postService,
	}
}
