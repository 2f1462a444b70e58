package bootstrap

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/just-manoj/PathoAi-API/internal/analyses"
	"github.com/just-manoj/PathoAi-API/internal/shared/config"
	"github.com/just-manoj/PathoAi-API/internal/shared/server"
	"github.com/just-manoj/PathoAi-API/internal/shared/storage/mongodb"
	"github.com/just-manoj/PathoAi-API/internal/shared/telemetry"
	"github.com/just-manoj/PathoAi-API/internal/usage"
	"github.com/just-manoj/PathoAi-API/internal/vision"
	"github.com/just-manoj/PathoAi-API/internal/vision/gemini"
	"github.com/just-manoj/PathoAi-API/internal/vision/openai"
)

// App holds shared dependencies.
type App struct {
	Config  config.Config
	Router  *gin.Engine
	Gateway *mongodb.Gateway

	UsageService    *usage.Service
	AnalysesService *analyses.Service
	AnalysesHandler *analyses.Handler
	UsageHandler    *usage.Handler
}

// Build prepares shared dependencies and wires routes.
func Build(cfg config.Config) (*App, error) {
	if err := telemetry.Init(cfg.Debug); err != nil {
		return nil, err
	}

	gateway := mongodb.NewGateway(cfg.MongoURI, cfg.MongoDB)
	if err := gateway.Connect(context.Background()); err != nil {
		return nil, err
	}

	usageSvc := usage.NewService(usage.NewMongoStore(gateway))

	analysesSvc := &analyses.Service{
		Repo:  analyses.NewMongoRepo(gateway),
		Usage: usageSvc,
		Providers: map[vision.Tier]vision.Analyzer{
			vision.TierJR: openai.NewClient(cfg.OpenAIToken, cfg.OpenAIModel),
			vision.TierSR: gemini.New(cfg.GeminiToken, cfg.GeminiModel),
		},
	}

	app := &App{
		Config:          cfg,
		Gateway:         gateway,
		UsageService:    usageSvc,
		AnalysesService: analysesSvc,
		AnalysesHandler: analyses.NewHandler(analysesSvc),
		UsageHandler:    usage.NewHandler(usageSvc),
	}

	app.Router = server.NewRouter(cfg, server.RouterDeps{
		AnalysesHandler: app.AnalysesHandler,
		UsageHandler:    app.UsageHandler,
	})

	return app, nil
}
