package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/khoahotran/professional-ladder/pkg/logger"
)

type Handlers struct {
	Auth     *AuthHandler
	Profile  *ProfileHandler
	Document *DocumentHandler
}

func NewRouter(h Handlers, authMiddleware gin.HandlerFunc, log logger.Logger) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), RequestLogger(log), ErrorMiddleware(log))

	api := router.Group("/api")
	{
		api.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "UP"}) })

		authGroup := api.Group("/auth")
		authGroup.POST("/signup", h.Auth.Signup)
		authGroup.POST("/login", h.Auth.Login)
		authGroup.POST("/logout", authMiddleware, h.Auth.Logout)

		private := api.Group("/")
		private.Use(authMiddleware)
		{
			profile := private.Group("/profile")
			{
				profile.GET("", h.Profile.GetProfile)
				profile.PATCH("/personal-info", h.Profile.UpdatePersonalInfo)
				profile.POST("/load", h.Profile.Load)
				profile.POST("/save", h.Profile.Save)
				profile.GET("/stats", h.Profile.Stats)
				profile.GET("/preview", h.Profile.Preview)
				profile.GET("/share-link", h.Profile.ShareLink)

				items := profile.Group("/items/:category")
				items.GET("", h.Profile.ListItems)
				items.POST("", h.Profile.AddItem)
				items.PATCH("/:id/visibility", h.Profile.ToggleVisibility)
				items.DELETE("/:id", h.Profile.DeleteItem)
			}

			documents := private.Group("/documents")
			{
				documents.GET("/resume", h.Document.Resume)
				documents.POST("/cover-letter", h.Document.CoverLetter)
			}
		}
	}

	return router
}
