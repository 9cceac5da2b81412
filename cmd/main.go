package main

import (
	"context"
	"net/http"
	"time"

	"github.com/davltran/cinequiz/config"
	_ "github.com/davltran/cinequiz/docs" // Swagger docs - auto-generated
	"github.com/davltran/cinequiz/internal/controller"
	"github.com/davltran/cinequiz/internal/logger"
	"github.com/davltran/cinequiz/internal/service"
	"github.com/davltran/cinequiz/internal/tmdb"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
)

// @title Cinequiz API
// @version 1.0
// @description Movie poster trivia sessions backed by the TMDB catalog. Guess the title, keep a score, switch languages mid-game.
// @contact.name API Support
// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
func main() {
	logger.Init()

	app := fx.New(
		fx.Provide(
			config.NewConfig,
			NewGinEngine,
			tmdb.NewClient,
			service.NewQuestionService,
			service.NewTranslationService,
			func(cfg *config.Config, questions service.QuestionService, translations service.TranslationService, catalog tmdb.Client) service.SessionService {
				return service.NewSessionService(cfg, questions, translations, catalog)
			},
			controller.NewSessionController,
		),
		fx.Invoke(RegisterRoutesAndStartServer),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")
}

func NewGinEngine() *gin.Engine {
	r := gin.New()

	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return ""
	}))
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// RegisterRoutesAndStartServer configures API routes and manages server lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	sessions service.SessionService,
	sessionCtrl *controller.SessionController,
) {
	api := router.Group("/api/v1")
	{
		api.GET("/languages", sessionCtrl.GetLanguages)

		sessionGroup := api.Group("/sessions")
		sessionGroup.POST("", sessionCtrl.CreateSession)
		sessionGroup.GET("/:session_id", sessionCtrl.GetSession)
		sessionGroup.POST("/:session_id/answer", sessionCtrl.SubmitAnswer)
		sessionGroup.POST("/:session_id/language", sessionCtrl.ChangeLanguage)
		sessionGroup.POST("/:session_id/next", sessionCtrl.NextQuestion)
		sessionGroup.POST("/:session_id/sound/toggle", sessionCtrl.ToggleSound)
		sessionGroup.POST("/:session_id/selector/toggle", sessionCtrl.ToggleSelector)
	}

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("Cinequiz API server starting on port %s", cfg.Server.Port)
			log.Info().Msgf("Swagger UI available at http://localhost:%s/swagger/index.html", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			sessions.Close()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	})
}
