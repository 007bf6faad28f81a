package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dimasadrian/portfolio/internal/application/service"
	"github.com/dimasadrian/portfolio/pkg/auth"
	"github.com/dimasadrian/portfolio/pkg/logger"
)

type Handlers struct {
	Auth      *AuthHandler
	Profile   *ProfileHandler
	Article   *ArticleHandler
	Project   *ProjectHandler
	Activity  *ActivityHandler
	Dashboard *DashboardHandler
	Public    *PublicHandler
}

type RouterConfig struct {
	JWT            *auth.JWTService
	Sessions       service.SessionStore
	AllowedOrigins []string
	Logger         logger.Logger
}

func NewRouter(cfg RouterConfig, h Handlers) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(RequestLogger(cfg.Logger))
	router.Use(CORS(cfg.AllowedOrigins))
	router.Use(ErrorMiddleware(cfg.Logger))

	authMiddleware := AuthMiddleware(cfg.JWT, cfg.Sessions, cfg.Logger)

	api := router.Group("/api")
	{
		admin := api.Group("/admin")
		{
			admin.POST("/auth/login", h.Auth.Login)

			adminPrivate := admin.Group("/")
			adminPrivate.Use(authMiddleware)
			{
				adminPrivate.POST("/auth/logout", h.Auth.Logout)
				adminPrivate.GET("/session", h.Auth.Session)

				adminPrivate.GET("/profile", h.Profile.GetProfile)
				adminPrivate.PUT("/profile", h.Profile.UpdateProfile)
				adminPrivate.PUT("/profile/avatar", h.Profile.UploadAvatar)
				adminPrivate.DELETE("/profile/avatar", h.Profile.DeleteAvatar)

				adminPrivate.GET("/stats", h.Dashboard.Stats)
				adminPrivate.GET("/orphans", h.Dashboard.ListOrphans)

				articles := adminPrivate.Group("/articles")
				{
					articles.GET("", h.Article.ListArticles)
					articles.POST("", h.Article.CreateArticle)
					articles.GET("/:id", h.Article.GetArticle)
					articles.PUT("/:id", h.Article.UpdateArticle)
					articles.DELETE("/:id", h.Article.DeleteArticle)
				}

				projects := adminPrivate.Group("/projects")
				{
					projects.GET("", h.Project.ListProjects)
					projects.POST("", h.Project.CreateProject)
					projects.GET("/:id", h.Project.GetProject)
					projects.PUT("/:id", h.Project.UpdateProject)
					projects.DELETE("/:id", h.Project.DeleteProject)
				}

				activities := adminPrivate.Group("/activities")
				{
					activities.GET("", h.Activity.ListActivities)
					activities.POST("", h.Activity.CreateActivity)
					activities.GET("/export", h.Activity.ExportActivities)
					activities.GET("/:id", h.Activity.GetActivity)
					activities.PUT("/:id", h.Activity.UpdateActivity)
					activities.DELETE("/:id", h.Activity.DeleteActivity)
				}
			}
		}

		public := api.Group("/")
		{
			public.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "UP"}) })
			public.GET("/home", h.Public.Home)
			public.GET("/profile", h.Profile.GetPublicProfile)
			public.GET("/articles", h.Article.ListArticles)
			public.GET("/articles/:slug", h.Article.GetPublicArticle)
			public.GET("/projects", h.Project.ListProjects)
			public.GET("/activities", h.Activity.ListActivities)
			public.GET("/rss.xml", h.Public.RSS)
			public.GET("/search/articles", h.Public.SearchArticles)
		}
	}

	return router
}
