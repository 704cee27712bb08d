package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"

	"github.com/go-redis/redis_rate/v10"
	"github.com/google/uuid"
	"github.com/ijalalfrz/ticket-analysis-service/internal/app/config"
	"github.com/ijalalfrz/ticket-analysis-service/internal/app/dto"
	"github.com/ijalalfrz/ticket-analysis-service/internal/app/endpoints"
	"github.com/ijalalfrz/ticket-analysis-service/internal/app/service"
	"github.com/ijalalfrz/ticket-analysis-service/internal/app/transport"
	"github.com/ijalalfrz/ticket-analysis-service/internal/pkg/analysis"
	"github.com/ijalalfrz/ticket-analysis-service/internal/pkg/logger"
	"github.com/ijalalfrz/ticket-analysis-service/internal/pkg/ticket"
	"github.com/ijalalfrz/ticket-analysis-service/internal/pkg/ticketreader"
	httptransport "github.com/ijalalfrz/ticket-analysis-service/internal/pkg/transport/http"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/pflag"
)

type options struct {
	configFile string
	file       string
	format     string
	sort       string
	serve      bool
}

func parseFlags(args []string) (options, error) {
	var opts options

	flags := pflag.NewFlagSet("ticket-analysis", pflag.ContinueOnError)
	flags.StringVar(&opts.configFile, "config", ".env", "path to the .env config file")
	flags.StringVarP(&opts.file, "file", "f", "", "ticket document to analyse (prompted when empty)")
	flags.StringVar(&opts.format, "format", dto.FormatText, "output format: text, json or yaml")
	flags.StringVar(&opts.sort, "sort", analysis.SortByCarrier, "carrier order: carrier or duration")
	flags.BoolVar(&opts.serve, "serve", false, "run the HTTP API instead of a single analysis")

	if err := flags.Parse(args); err != nil {
		return options{}, err
	}

	return opts, nil
}

func main() {
	opts, err := parseFlags(os.Args[1:])
	if errors.Is(err, pflag.ErrHelp) {
		return
	}
	if err != nil {
		os.Exit(2)
	}

	cfg := config.MustInitConfig(opts.configFile)

	if opts.serve {
		logger.InitStructuredLogger(cfg.LogLevel, os.Stdout)
		slog.Debug("config loaded successfully", slog.Any("config", cfg))
		runApp(cfg)
		return
	}

	logger.InitStructuredLogger(cfg.LogLevel, os.Stderr)
	os.Exit(runCLI(cfg, opts, os.Stdin, os.Stdout, os.Stderr))
}

// runCLI performs one analysis and returns the process exit code.
// The prompt goes to errOut so out only carries the result.
func runCLI(cfg config.Config, opts options, in io.Reader, out, errOut io.Writer) int {
	ctx := context.WithValue(context.Background(), logger.RunIDKey, uuid.New().String())

	path := opts.file
	if path == "" {
		fmt.Fprint(errOut, "Path to ticket file: ")

		line, err := bufio.NewReader(in).ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			slog.ErrorContext(ctx, "failed to read file path", slog.String("error", err.Error()))
			return 1
		}
		path = strings.TrimSpace(line)
	}

	analysisService, err := makeAnalysisService(ctx, &cfg)
	if err != nil {
		slog.ErrorContext(ctx, "failed to init analysis", slog.String("error", err.Error()))
		return 1
	}

	result, err := analysisService.Analyze(ctx, path)
	if err != nil {
		if errors.Is(err, service.ErrNoTicketsFound) {
			fmt.Fprintln(out, "no data")
			return 1
		}

		slog.ErrorContext(ctx, "analysis failed", slog.String("error", err.Error()))
		return 1
	}

	rendered, err := dto.NewAnalysisResponse(result, opts.sort).Render(opts.format)
	if err != nil {
		slog.ErrorContext(ctx, "failed to render result", slog.String("error", err.Error()))
		return 1
	}

	if _, err := out.Write(rendered); err != nil {
		return 1
	}

	return 0
}

func runApp(cfg config.Config) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	slog.InfoContext(ctx, "starting...", slog.String("log_level", string(cfg.LogLevel)))

	var waitGroup sync.WaitGroup
	// Starts the server in a go routine
	waitGroup.Add(1)
	go func() {
		defer waitGroup.Done()
		startHTTPServer(ctx, cfg)
	}()

	sigChannel := make(chan os.Signal, 1)
	signal.Notify(sigChannel, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)

	select {
	case sig := <-sigChannel:
		cancel()
		slog.InfoContext(ctx, "received OS signal. Exiting...", slog.String("signal", sig.String()))
	case <-ctx.Done():
		slog.ErrorContext(ctx, "failed to start HTTP server")
	}

	waitGroup.Wait()
	slog.InfoContext(ctx, "All service closed...")
}

func startHTTPServer(ctx context.Context, cfg config.Config) {
	if err := dto.InitValidator(); err != nil {
		slog.ErrorContext(ctx, "failed to init validator", slog.String("error", err.Error()))
		panic(err)
	}

	analysisService, err := makeAnalysisService(ctx, &cfg)
	if err != nil {
		slog.ErrorContext(ctx, "failed to init analysis", slog.String("error", err.Error()))
		panic(err)
	}

	var limiter httptransport.RateLimiter
	if redisClient := newRedisClient(&cfg); redisClient != nil {
		limiter = redis_rate.NewLimiter(redisClient)
	}

	endpts := endpoints.Endpoints{
		AnalysisEndpoint: endpoints.MakeAnalysisEndpoint(analysisService, cfg.Tickets.DataDir),
	}
	router := transport.MakeHTTPRouter(&cfg, endpts, limiter)
	server := &http.Server{
		Handler:      router,
		Addr:         fmt.Sprintf(":%d", cfg.HTTP.Port),
		WriteTimeout: cfg.HTTP.Timeout,
		ReadTimeout:  cfg.HTTP.Timeout,
	}

	slog.Info("running HTTP server...", slog.Int("port", cfg.HTTP.Port))

	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.ErrorContext(ctx, "failed to start HTTP server", slog.String("error", err.Error()))
		}
	}()

	<-ctx.Done()

	if err := server.Shutdown(context.Background()); err != nil {
		slog.ErrorContext(ctx, "failed to shutdown HTTP server", slog.String("error", err.Error()))
	}

	slog.InfoContext(ctx, "HTTP server shutdown gracefully")
}

func makeAnalysisService(ctx context.Context, cfg *config.Config) (*service.AnalysisService, error) {
	settings := cfg.Settings()

	// init validator
	validator, err := ticket.NewValidator(settings)
	if err != nil {
		return nil, fmt.Errorf("ticket validator: %w", err)
	}

	reader := ticketreader.NewReader(settings, validator, nil)

	// cache is optional
	var cache service.ResultCacher
	if redisClient := newRedisClient(cfg); redisClient != nil {
		cache = analysis.NewResultCache(redisClient)
		slog.DebugContext(ctx, "analysis cache enabled", slog.String("redis_addr", cfg.Redis.Addr))
	}

	return service.NewAnalysisService(settings, reader, cache,
		cfg.Analysis.CacheExpiration, cfg.Analysis.LockTimeout), nil
}

var (
	redisOnce   sync.Once
	redisShared *redis.Client
)

// newRedisClient returns the shared client, or nil when REDIS_ADDR is unset.
func newRedisClient(cfg *config.Config) *redis.Client {
	if cfg.Redis.Addr == "" {
		return nil
	}

	redisOnce.Do(func() {
		redisShared = redis.NewClient(&redis.Options{
			Addr:        cfg.Redis.Addr,
			Password:    cfg.Redis.Password,
			DB:          cfg.Redis.DB,
			ReadTimeout: cfg.Redis.Timeout,
		})
	})

	return redisShared
}
