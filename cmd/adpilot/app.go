package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	goredis "github.com/redis/go-redis/v9"

	"adpilot/internal/adapter/graph"
	"adpilot/internal/adapter/interpreter"
	"adpilot/internal/adapter/postgres"
	"adpilot/internal/adapter/redis"
	"adpilot/internal/adapter/usecase"
	"adpilot/internal/config"
	"adpilot/internal/config/configs"
	"adpilot/internal/core/domain"
	"adpilot/internal/db"
	"adpilot/internal/metrics"
)

// app holds every wired component. close releases connections.
type app struct {
	cfg       config.Config
	logger    *slog.Logger
	metrics   *metrics.Metrics
	pool      *pgxpool.Pool
	redis     *goredis.Client
	assistant *usecase.Assistant
	publisher *usecase.Publisher
	drafts    *postgres.DraftRepository
	labels    *postgres.LabelRepository
	notifier  *redis.Notifier
}

func newLogger(cfg configs.Logger) *slog.Logger {
	var handler slog.Handler
	opts := &slog.HandlerOptions{Level: cfg.SlogLevel()}
	switch cfg.SlogFormat() {
	case "json":
		handler = slog.NewJSONHandler(os.Stdout, opts)
	default:
		handler = slog.NewTextHandler(os.Stdout, opts)
	}
	return slog.New(handler)
}

// loadConfig reads the environment and builds the logger.
func loadConfig() (config.Config, *slog.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return cfg, nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, newLogger(cfg.Log), nil
}

func newApp(ctx context.Context, cfg config.Config, logger *slog.Logger) (*app, error) {
	a := &app{cfg: cfg, logger: logger, metrics: metrics.New()}

	pool, err := db.NewPostgresPool(ctx, cfg.Psql)
	if err != nil {
		return nil, fmt.Errorf("database connection: %w", err)
	}
	a.pool = pool

	a.redis = goredis.NewClient(&goredis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err = a.redis.Ping(ctx).Err(); err != nil {
		a.close()
		return nil, fmt.Errorf("redis connection: %w", err)
	}

	interp, err := interpreter.New(ctx, cfg.Interpreter, logger.With(slog.String("component", "interpreter")))
	if err != nil {
		a.close()
		return nil, err
	}

	msgs, err := usecase.NewMessages()
	if err != nil {
		a.close()
		return nil, fmt.Errorf("message templates: %w", err)
	}

	platform := graph.NewClient(cfg.Graph, logger.With(slog.String("component", "graph")))
	a.drafts = postgres.NewDraftRepository(pool)
	a.labels = postgres.NewLabelRepository(pool)
	a.notifier = redis.NewNotifier(a.redis, cfg.Redis.Channel, logger)
	sessions := redis.NewSessionStore(a.redis, cfg.Redis.SessionTTL, cfg.Redis.LockTTL, logger)

	pipeline := usecase.NewPipeline(platform, platform, logger, a.metrics)
	dialogue := usecase.NewDialogue(interp, platform, pipeline, msgs, usecase.DialogueConfig{
		MinBudget:          cfg.Dialogue.MinBudget,
		DefaultObjective:   cfg.Dialogue.DefaultObjective,
		InterpreterTimeout: cfg.Interpreter.Timeout,
	}, logger, a.metrics)
	matcher := usecase.NewMatcher(platform, platform, a.labels, a.notifier, msgs, logger, a.metrics)

	a.assistant = usecase.NewAssistant(sessions, dialogue, matcher, msgs, logger, a.metrics)
	a.publisher = usecase.NewPublisher(a.drafts, usecase.NewQueue(pipeline, cfg.Queue.Delay, logger, a.metrics), logger, a.metrics)
	return a, nil
}

// defaultAccount is the account used when a request carries none.
func (a *app) defaultAccount() domain.Account {
	return domain.Account{
		AccessToken: a.cfg.Graph.AccessToken,
		AdAccountID: a.cfg.Graph.AdAccountID,
		PageID:      a.cfg.Graph.PageID,
	}
}

func (a *app) close() {
	if a.publisher != nil {
		a.publisher.Shutdown()
	}
	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			a.logger.Warn("close redis", slog.Any("error", err))
		}
	}
	if a.pool != nil {
		a.pool.Close()
	}
}
