package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/yukikurage/task-tracker/internal/auth"
	"github.com/yukikurage/task-tracker/internal/constants"
	apierrors "github.com/yukikurage/task-tracker/internal/errors"
	"github.com/yukikurage/task-tracker/internal/graph"
	"github.com/yukikurage/task-tracker/internal/middleware"
	"github.com/yukikurage/task-tracker/internal/services"
)

// maxUploadBody leaves room for multipart framing around a full upload.
const maxUploadBody = constants.MaxFilesPerUpload*constants.MaxFileSize + 1<<20

// Services groups the services the router dispatches to.
type Services struct {
	Auth        *services.AuthService
	Tasks       *services.TaskService
	Attachments *services.AttachmentService
}

// RouterConfig holds the transport-level collaborators of the router.
type RouterConfig struct {
	Codec         *auth.TokenCodec
	SecureCookies bool
	Log           *logrus.Logger
}

// NewRouter builds the gin engine serving the GraphQL endpoint, the REST
// API, file uploads and public blob reads.
func NewRouter(svc Services, cfg RouterConfig) *gin.Engine {
	sessions := middleware.NewSessions(cfg.Codec, cfg.SecureCookies)

	authHandler := NewAuthHandler(svc.Auth, sessions)
	taskHandler := NewTaskHandler(svc.Tasks)
	fileHandler := NewFileHandler(svc.Attachments)
	resolver := graph.NewResolver(svc.Auth, svc.Tasks, svc.Attachments, sessions, cfg.Log)

	r := gin.New()
	r.Use(middleware.RequestLogger(cfg.Log), gin.Recovery(), middleware.ResolveIdentity(cfg.Codec))
	r.NoRoute(func(c *gin.Context) {
		apierrors.Respond(c, apierrors.ErrNotFound)
	})

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Task Tracker API is running",
		})
	})

	r.POST("/graphql", graph.Handler(graph.NewSchema(resolver)))

	// Public blob reads
	r.GET(constants.PublicBlobPath+":key", fileHandler.Serve)

	files := r.Group("/files")
	files.Use(middleware.RequireAuth())
	{
		files.POST("/upload/:task_id", middleware.LimitBody(maxUploadBody), middleware.RequireIDParam("task_id"), fileHandler.Upload)
		files.DELETE("/:id", middleware.RequireIDParam("id"), fileHandler.Delete)
	}

	api := r.Group("/api")
	{
		// Auth routes (public)
		authRoutes := api.Group("/auth")
		{
			authRoutes.POST("/register", authHandler.Register)
			authRoutes.POST("/login", authHandler.Login)
			authRoutes.POST("/logout", authHandler.Logout)
			authRoutes.GET("/me", middleware.RequireAuth(), authHandler.GetCurrentUser)
		}

		// Task routes (protected)
		tasks := api.Group("/tasks")
		tasks.Use(middleware.RequireAuth())
		{
			tasks.GET("", taskHandler.ListTasks)
			tasks.POST("", taskHandler.CreateTask)
			tasks.GET("/:id", middleware.RequireIDParam("id"), taskHandler.GetTask)
			tasks.PATCH("/:id", middleware.RequireIDParam("id"), taskHandler.UpdateTask)
			tasks.DELETE("/:id", middleware.RequireIDParam("id"), taskHandler.DeleteTask)
		}
	}

	return r
}
