package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/srs-review-backend/internal/adapter/dataloader"
	"github.com/heartmarshall/srs-review-backend/internal/adapter/postgres"
	"github.com/heartmarshall/srs-review-backend/internal/adapter/postgres/attempt"
	"github.com/heartmarshall/srs-review-backend/internal/adapter/postgres/card"
	"github.com/heartmarshall/srs-review-backend/internal/adapter/postgres/clockoffset"
	"github.com/heartmarshall/srs-review-backend/internal/adapter/postgres/folder"
	"github.com/heartmarshall/srs-review-backend/internal/adapter/postgres/item"
	"github.com/heartmarshall/srs-review-backend/internal/adapter/postgres/wronganswer"
	"github.com/heartmarshall/srs-review-backend/internal/auth"
	"github.com/heartmarshall/srs-review-backend/internal/clock"
	"github.com/heartmarshall/srs-review-backend/internal/config"
	"github.com/heartmarshall/srs-review-backend/internal/notify"
	"github.com/heartmarshall/srs-review-backend/internal/service/odatnote"
	"github.com/heartmarshall/srs-review-backend/internal/service/study"
	"github.com/heartmarshall/srs-review-backend/internal/service/timemachine"
	"github.com/heartmarshall/srs-review-backend/internal/transport/middleware"
	"github.com/heartmarshall/srs-review-backend/internal/transport/rest"
)

const rateLimitIdleTTL = 10 * time.Minute

// Stack is the wired application: the HTTP handler plus the pieces the
// background jobs drive.
type Stack struct {
	Handler     http.Handler
	Clock       *clock.Source
	Sweeper     *Sweeper
	TimeMachine *timemachine.Service
	Tokens      *auth.TokenManager

	closers []func()
}

// Close releases resources held by the stack.
func (s *Stack) Close() {
	for i := len(s.closers) - 1; i >= 0; i-- {
		s.closers[i]()
	}
}

// Build wires repositories, services and the HTTP handler on top of pool.
// The clock source is loaded with the persisted day offset.
func Build(ctx context.Context, cfg *config.Config, logger *slog.Logger, pool *pgxpool.Pool) (*Stack, error) {
	// Repositories.
	txm := postgres.NewTxManager(pool)
	cardRepo := card.New(pool)
	attemptRepo := attempt.New(pool)
	folderRepo := folder.New(pool)
	itemRepo := item.New(pool)
	wrongRepo := wronganswer.New(pool)
	offsetRepo := clockoffset.New(pool)

	clk := clock.New(nil)
	bus := notify.New(0)

	tokens, err := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.SessionTTL)
	if err != nil {
		return nil, fmt.Errorf("token manager: %w", err)
	}

	// Services.
	studyService := study.NewService(
		logger, cardRepo, attemptRepo, folderRepo, wrongRepo,
		dataloader.NewSource(itemRepo), bus, clk, txm,
		cfg.SRS.Policy(),
		study.RetryConfig{MaxRetries: cfg.SRS.MaxWriteRetries, BaseDelay: cfg.SRS.RetryBaseDelay},
	)

	noteService, err := odatnote.NewService(
		logger, wrongRepo, cardRepo, attemptRepo, folderRepo,
		studyService, bus, clk, txm, cfg.SRS.SessionGap,
	)
	if err != nil {
		return nil, fmt.Errorf("notebook service: %w", err)
	}

	timeMachine := timemachine.NewService(logger, offsetRepo, cardRepo, clk)
	if err := timeMachine.Refresh(ctx); err != nil {
		return nil, err
	}

	// HTTP.
	mux := newMux(handlers{
		health: rest.NewHealthHandler(pool, clk, BuildVersion()),
		study:  rest.NewStudyHandler(studyService, clk, logger),
		notes:  rest.NewNoteHandler(noteService, clk, logger),
		clock:  rest.NewTimeMachineHandler(timeMachine, logger),
		events: rest.NewEventsHandler(bus, logger),
	})

	st := &Stack{
		Clock:       clk,
		Sweeper:     NewSweeper(logger, cardRepo, clk),
		TimeMachine: timeMachine,
		Tokens:      tokens,
	}

	mws := []middleware.Middleware{
		middleware.Recovery(logger),
		middleware.RequestID,
		middleware.CORS(cfg.CORS),
		middleware.Auth(tokens, cfg.Auth.SessionCookie),
		middleware.Unless(middleware.IsProbe, middleware.Logger(logger)),
	}
	if cfg.RateLimit.Enabled {
		limiter := middleware.NewRateLimiter(rateLimitIdleTTL)
		st.closers = append(st.closers, limiter.Stop)
		mws = append(mws, middleware.Unless(middleware.IsProbe, limiter.Limit(cfg.RateLimit.Limit, cfg.RateLimit.Window)))
	}
	mws = append(mws, dataloader.Middleware(itemRepo))

	st.Handler = middleware.Chain(mws...)(mux)
	return st, nil
}

// Run is the application entry point. It loads configuration, connects to
// the database, wires services and serves HTTP until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()

	st, err := Build(ctx, cfg, logger, pool)
	if err != nil {
		return err
	}
	defer st.Close()

	// Background jobs.
	if cfg.Scheduler.Enabled {
		sched, err := StartScheduler(ctx, logger, cfg.Scheduler, st.Sweeper, st.TimeMachine)
		if err != nil {
			return err
		}
		defer sched.Stop()
	}

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      st.Handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		logger.Info("shutting down")
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
