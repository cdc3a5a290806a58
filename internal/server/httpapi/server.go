// Package httpapi exposes the backend over HTTP. Handlers stay thin: bind
// the request, call the matching service, map sentinel errors to status
// codes. No internal error detail ever reaches the client.
package httpapi

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mealgenie/backend/internal/logging"
	"github.com/mealgenie/backend/internal/server/ai"
	"github.com/mealgenie/backend/internal/server/config"
	"github.com/mealgenie/backend/internal/server/grocery"
	"github.com/mealgenie/backend/internal/server/nutrition"
	"github.com/mealgenie/backend/internal/server/pantry"
	"github.com/mealgenie/backend/internal/server/recipes"
	"github.com/mealgenie/backend/internal/server/users"
)

type Server struct {
	cfg       *config.Config
	log       logging.Logger
	users     *users.Service
	pantry    *pantry.Service
	grocery   *grocery.Service
	recipes   *recipes.Service
	nutrition *nutrition.Service
	ai        *ai.Client
}

func NewServer(
	cfg *config.Config,
	log logging.Logger,
	us *users.Service,
	ps *pantry.Service,
	gs *grocery.Service,
	rs *recipes.Service,
	ns *nutrition.Service,
	aiClient *ai.Client,
) *Server {
	return &Server{
		cfg:       cfg,
		log:       log.With("module", "httpapi"),
		users:     us,
		pantry:    ps,
		grocery:   gs,
		recipes:   rs,
		nutrition: ns,
		ai:        aiClient,
	}
}

func (s *Server) InitRoutes() *gin.Engine {
	if s.cfg.Env == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "MealGenie Backend Working")
	})

	router.POST("/register", s.Register)
	router.POST("/login", s.Login)
	router.POST("/forgot-password", s.ForgotPassword)
	router.PUT("/reset-password/:token", s.ResetPassword)

	authorized := router.Group("/")
	authorized.Use(s.sessionGuard())
	{
		authorized.GET("/me", s.GetMe)
		authorized.PUT("/me", s.UpdateMe)

		authorized.GET("/pantry", s.ListPantry)
		authorized.POST("/pantry", s.AddPantryItem)
		authorized.PUT("/pantry/:id", s.UpdatePantryItem)
		authorized.DELETE("/pantry/:id", s.DeletePantryItem)

		authorized.GET("/grocery", s.ListGrocery)
		authorized.POST("/grocery", s.AddGroceryItem)
		authorized.PUT("/grocery/:id", s.UpdateGroceryItem)
		authorized.DELETE("/grocery/:id", s.DeleteGroceryItem)

		authorized.GET("/recipes", s.ListRecipes)
		authorized.POST("/recipes", s.SaveRecipe)
		authorized.DELETE("/recipes/:id", s.DeleteRecipe)
		authorized.POST("/recipes/image-upload", s.RecipeImageUpload)
		authorized.GET("/recipes/:id/image", s.RecipeImageURL)

		authorized.GET("/nutrition", s.GetNutritionDay)
		authorized.POST("/nutrition", s.LogNutrition)

		authorized.POST("/ai/recipe", s.AIRecipe)
		authorized.POST("/ai/search", s.AISearch)
	}

	return router
}

// Run serves the API until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {

	srv := &http.Server{
		Addr:         s.cfg.HTTPServer.Address,
		Handler:      s.InitRoutes(),
		ReadTimeout:  s.cfg.HTTPServer.ReadTimeout,
		WriteTimeout: s.cfg.HTTPServer.WriteTimeout,
		IdleTimeout:  s.cfg.HTTPServer.IdleTimeout,
	}

	go func() {
		<-ctx.Done()
		s.log.Info(ctx, "Stopping HTTP server...")
		_ = srv.Shutdown(context.Background())
	}()

	s.log.Info(ctx, "Starting HTTP server", "address", s.cfg.HTTPServer.Address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
