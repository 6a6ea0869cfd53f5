package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/ahmedroou/scoreverse0-sub000/internal/adapters"
	"github.com/ahmedroou/scoreverse0-sub000/internal/bootstrap"
	aiDelivery "github.com/ahmedroou/scoreverse0-sub000/internal/delivery/ai"
	authDelivery "github.com/ahmedroou/scoreverse0-sub000/internal/delivery/auth"
	gameDelivery "github.com/ahmedroou/scoreverse0-sub000/internal/delivery/game"
	"github.com/ahmedroou/scoreverse0-sub000/internal/delivery/live"
	matchDelivery "github.com/ahmedroou/scoreverse0-sub000/internal/delivery/match"
	playerDelivery "github.com/ahmedroou/scoreverse0-sub000/internal/delivery/player"
	scoreDelivery "github.com/ahmedroou/scoreverse0-sub000/internal/delivery/score"
	spaceDelivery "github.com/ahmedroou/scoreverse0-sub000/internal/delivery/space"
	tournamentDelivery "github.com/ahmedroou/scoreverse0-sub000/internal/delivery/tournament"
	ownMiddleware "github.com/ahmedroou/scoreverse0-sub000/internal/middleware"
	"github.com/ahmedroou/scoreverse0-sub000/internal/repository"
	stateUC "github.com/ahmedroou/scoreverse0-sub000/internal/usecase/state"
)

type mainDeliveryHandler struct {
	auth       *authDelivery.AuthHandler
	player     *playerDelivery.PlayerHandler
	game       *gameDelivery.GameHandler
	match      *matchDelivery.MatchHandler
	space      *spaceDelivery.SpaceHandler
	tournament *tournamentDelivery.TournamentHandler
	score      *scoreDelivery.ScoreHandler
	ai         *aiDelivery.AiHandler
	hub        *live.Hub
}

type dataBaseAdapters struct {
	redisAdapter *adapters.AdapterRedis
	mongoAdapter *adapters.AdapterMongo
}

func main() {
	logger := NewLogger()
	cfg, err := bootstrap.Setup(".env")
	if err != nil {
		logger.Error("Failed to setup configuration", zap.Error(err))
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go handleShutdown(cancel, logger)

	databaseAdapters := initDatabaseAdapters(ctx, logger, cfg)
	defer databaseAdapters.mongoAdapter.Close(ctx)
	defer databaseAdapters.redisAdapter.Close(ctx)

	llmAdapter := adapters.NewLlmAdapter(cfg.MistralApiKey, cfg.MistralAgentKey)

	r := chi.NewRouter()
	handlers := initializeDeliveryHandlers(cfg, logger, llmAdapter, databaseAdapters)
	handlers.Router(r, cfg.IsLocalCors)

	port := ":" + cfg.ServerPort
	logger.Infof("Server is running on port %s", port)
	if err := http.ListenAndServe(port, r); err != nil {
		logger.Fatal("Failed to start server", zap.Error(err))
	}
}

func NewLogger() *zap.SugaredLogger {
	logger, err := zap.NewProduction()
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	return logger.Sugar()
}

func (h *mainDeliveryHandler) Router(r *chi.Mux, isLocalCors bool) {
	if isLocalCors {
		r.Use(ownMiddleware.CORS)
	}
	r.Use(middleware.Logger)

	r.Post("/register", h.auth.Register)
	r.Post("/login", h.auth.Login)
	r.Delete("/logout", h.auth.Logout)

	r.Post("/players", h.player.HandleCreate)
	r.Get("/players", h.player.HandleList)
	r.Post("/players/update", h.player.HandleUpdate)
	r.Delete("/players/{id}", h.player.HandleDelete)
	r.Get("/players/{id}/stats", h.score.HandlePlayerStats)

	r.Post("/games", h.game.HandleCreate)
	r.Get("/games", h.game.HandleList)
	r.Post("/games/update", h.game.HandleUpdate)
	r.Delete("/games/{id}", h.game.HandleDelete)

	r.Post("/matches", h.match.HandleRecord)
	r.Get("/matches", h.match.HandleList)
	r.Post("/matches/update", h.match.HandleCorrect)

	r.Post("/spaces", h.space.HandleCreate)
	r.Get("/spaces", h.space.HandleList)
	r.Delete("/spaces/{id}", h.space.HandleDelete)
	r.Post("/spaces/activate", h.space.HandleActivate)

	r.Post("/tournaments", h.tournament.HandleCreate)
	r.Get("/tournaments", h.tournament.HandleList)

	r.Get("/leaderboard", h.score.HandleLeaderboard)
	r.Get("/leaderboard/pdf", h.score.HandleLeaderboardPDF)

	r.Post("/ai/handicaps", h.ai.HandleHandicaps)
	r.Post("/ai/matchups", h.ai.HandleMatchups)

	r.Get("/live", h.hub.HandleLive)
}

func initDatabaseAdapters(ctx context.Context, log *zap.SugaredLogger, cfg *bootstrap.Config) *dataBaseAdapters {
	mongoAdapter := adapters.NewAdapterMongo(cfg)
	if err := mongoAdapter.Init(ctx); err != nil {
		log.Fatal("Failed to initialize MongoDB", zap.Error(err))
	}

	redisAdapter := adapters.NewAdapterRedis(cfg)
	if err := redisAdapter.Init(ctx); err != nil {
		log.Fatal("Failed to initialize Redis", zap.Error(err))
	}

	log.Info("Database adapters initialized")
	return &dataBaseAdapters{
		redisAdapter: redisAdapter,
		mongoAdapter: mongoAdapter,
	}
}

func initializeDeliveryHandlers(
	cfg *bootstrap.Config,
	log *zap.SugaredLogger,
	llmAdapter *adapters.LlmAdapter,
	databaseAdapters *dataBaseAdapters,
) *mainDeliveryHandler {
	mongoAdapter := databaseAdapters.mongoAdapter

	authDeliveryHandler := authDelivery.NewAuthHandler(databaseAdapters.redisAdapter, mongoAdapter, log)

	snapshotState := stateUC.NewStateUseCase(
		repository.NewPlayerRepository(log, mongoAdapter.Database),
		repository.NewGameRepository(log, mongoAdapter.Database),
		repository.NewMatchRepository(cfg, log, mongoAdapter.Database),
		repository.NewSpaceRepository(log, mongoAdapter.Database),
		repository.NewTournamentRepository(log, mongoAdapter.Database),
	)
	hub := live.NewHub(snapshotState, authDeliveryHandler, log)

	return &mainDeliveryHandler{
		auth:       authDeliveryHandler,
		player:     playerDelivery.NewPlayerHandler(log, mongoAdapter, authDeliveryHandler, hub),
		game:       gameDelivery.NewGameHandler(cfg, log, mongoAdapter, authDeliveryHandler, hub),
		match:      matchDelivery.NewMatchHandler(cfg, log, mongoAdapter, authDeliveryHandler, hub),
		space:      spaceDelivery.NewSpaceHandler(log, mongoAdapter, authDeliveryHandler, hub),
		tournament: tournamentDelivery.NewTournamentHandler(cfg, log, mongoAdapter, authDeliveryHandler, hub),
		score:      scoreDelivery.NewScoreHandler(cfg, log, mongoAdapter, authDeliveryHandler),
		ai:         aiDelivery.NewAiHandler(cfg, log, mongoAdapter, llmAdapter, authDeliveryHandler),
		hub:        hub,
	}
}

func handleShutdown(cancelFunc context.CancelFunc, log *zap.SugaredLogger) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	<-sigs
	log.Info("Received shutdown signal")
	cancelFunc()
	time.Sleep(1 * time.Second)
}
