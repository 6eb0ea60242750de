package api

import (
	"context"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/vectore-agency/vectore-api/docs"
	v1 "github.com/vectore-agency/vectore-api/internal/api/handler/v1"
	"github.com/vectore-agency/vectore-api/internal/api/middleware"
	"github.com/vectore-agency/vectore-api/internal/config"
	"github.com/vectore-agency/vectore-api/internal/repository"
	"github.com/vectore-agency/vectore-api/internal/repository/dao"
	"github.com/vectore-agency/vectore-api/internal/service"
)

type Server struct {
	Config *config.AppConfig
	Router *gin.Engine

	authSvc *service.AuthService
}

func NewServer(conf *config.AppConfig, db *gorm.DB) *Server {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()

	s := &Server{
		Config: conf,
		Router: engine,
	}

	s.MountMiddlewares()

	userSvc := s.initUserService(db)
	s.authSvc = service.NewAuthService(repository.NewUserRepository(dao.NewUserDAO(db)))

	authHandler := v1.NewAuthHandler(s.Config.API, s.authSvc)
	eventHandler := s.initEventHandler(db, userSvc)
	projectHandler := s.initProjectHandler(db, userSvc)
	testimonialHandler := s.initTestimonialHandler(db, userSvc)
	s.MountHandlers(authHandler, eventHandler, projectHandler, testimonialHandler)

	return s
}

func (s *Server) initUserService(db *gorm.DB) *service.UserService {
	userDAO := dao.NewUserDAO(db)
	repo := repository.NewUserRepository(userDAO)

	return service.NewUserService(repo)
}

func (s *Server) initEventHandler(db *gorm.DB, userSvc *service.UserService) *v1.EventHandler {
	eventRepo := repository.NewEventRepository(dao.NewEventDAO(db))
	participantRepo := repository.NewParticipantRepository(dao.NewParticipantDAO(db))
	svc := service.NewGiveawayService(eventRepo, participantRepo)

	return v1.NewEventHandler(svc, userSvc)
}

func (s *Server) initProjectHandler(db *gorm.DB, userSvc *service.UserService) *v1.ProjectHandler {
	repo := repository.NewProjectRepository(dao.NewProjectDAO(db))
	svc := service.NewProjectService(repo)

	return v1.NewProjectHandler(svc, userSvc)
}

func (s *Server) initTestimonialHandler(db *gorm.DB, userSvc *service.UserService) *v1.TestimonialHandler {
	repo := repository.NewTestimonialRepository(dao.NewTestimonialDAO(db))
	svc := service.NewTestimonialService(repo)

	return v1.NewTestimonialHandler(svc, userSvc)
}

// SeedAdmin creates the configured dashboard administrator on first boot.
func (s *Server) SeedAdmin() error {
	return s.authSvc.SeedAdmin(context.Background(), s.Config.API.AdminEmail, s.Config.API.AdminPassword)
}

func (s *Server) MountMiddlewares() {
	// Logger and Recovery are needed unless we use gin.Default().
	s.Router.Use(gin.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
}

func (s *Server) MountHandlers(
	authHandler *v1.AuthHandler,
	eventHandler *v1.EventHandler,
	projectHandler *v1.ProjectHandler,
	testimonialHandler *v1.TestimonialHandler,
) {
	const basePath = "/api/v1"

	public := s.Router.Group(basePath)
	{
		public.POST("/auth/login", authHandler.HandleLogin)

		public.GET("/events/active", eventHandler.HandleGetActiveEvent)
		public.POST("/events/:eventID/join", eventHandler.HandleJoinEvent)

		public.GET("/projects", projectHandler.HandleListProjects)
		public.GET("/testimonials", testimonialHandler.HandleListTestimonials)
	}

	admin := s.Router.Group(basePath, middleware.NewAuthenticator(s.Config.API.JWTSigningKey).VerifyJWT())
	{
		admin.GET("/events", eventHandler.HandleListEvents)
		admin.POST("/events", eventHandler.HandleCreateEvent)
		admin.PUT("/events/:eventID", eventHandler.HandleUpdateEvent)
		admin.GET("/events/:eventID/stats", eventHandler.HandleGetEventStats)
		admin.POST("/events/:eventID/draw", eventHandler.HandleDrawWinner)

		admin.POST("/projects", projectHandler.HandleCreateProject)
		admin.PUT("/projects/:projectID", projectHandler.HandleUpdateProject)
		admin.DELETE("/projects/:projectID", projectHandler.HandleDeleteProject)

		admin.GET("/testimonials/all", testimonialHandler.HandleListAllTestimonials)
		admin.POST("/testimonials", testimonialHandler.HandleCreateTestimonial)
		admin.PUT("/testimonials/:testimonialID", testimonialHandler.HandleUpdateTestimonial)
		admin.DELETE("/testimonials/:testimonialID", testimonialHandler.HandleDeleteTestimonial)
	}

	s.Router.GET("/", v1.HandleHealthcheck)

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.BasePath = basePath
	docs.SwaggerInfo.Title = "Vectore API"
	docs.SwaggerInfo.Description = "Marketing site and giveaway API for the Vectore design studio."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}
