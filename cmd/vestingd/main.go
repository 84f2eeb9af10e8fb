package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/iov-one/vesting"
	"github.com/iov-one/vesting/app"
	"github.com/iov-one/vesting/errors"
	"github.com/iov-one/vesting/store/iavl"
	"github.com/tendermint/tendermint/libs/log"
)

// configuration is read from the environment first. Command line flags
// override it.
type configuration struct {
	Home           string        `env:"VESTING_HOME"`
	HTTP           string        `env:"VESTING_HTTP" envDefault:":8000"`
	Owner          string        `env:"VESTING_OWNER"`
	PayoutInterval time.Duration `env:"VESTING_PAYOUT_INTERVAL" envDefault:"5s"`
	PayoutURL      string        `env:"VESTING_PAYOUT_URL"`
	LogLevel       string        `env:"VESTING_LOG_LEVEL" envDefault:"info"`
}

func main() {
	conf, err := parseConfiguration(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(2)
	}

	logger, err := newLogger(conf.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(2)
	}

	if err := run(conf, logger); err != nil {
		logger.Error("vestingd stopped", "err", fmt.Sprintf("%+v", err))
		os.Exit(1)
	}
}

func parseConfiguration(args []string) (configuration, error) {
	var conf configuration
	if err := env.Parse(&conf); err != nil {
		return conf, errors.Wrap(errors.ErrInput, err.Error())
	}
	if conf.Home == "" {
		conf.Home = filepath.Join(os.ExpandEnv("$HOME"), ".vestingd")
	}

	fl := flag.NewFlagSet("vestingd", flag.ContinueOnError)
	fl.StringVar(&conf.Home, "home", conf.Home, "directory to store files under")
	fl.StringVar(&conf.HTTP, "http", conf.HTTP, "address the HTTP server listens on")
	fl.StringVar(&conf.Owner, "owner", conf.Owner, "initialize the contract with this owner if it was not initialized yet")
	fl.DurationVar(&conf.PayoutInterval, "payout-interval", conf.PayoutInterval, "how often the payout queue is drained")
	fl.StringVar(&conf.PayoutURL, "payout-url", conf.PayoutURL, "webhook that executes payouts, if empty payouts are only logged")
	fl.StringVar(&conf.LogLevel, "log-level", conf.LogLevel, "one of debug, info, error or none")
	if err := fl.Parse(args); err != nil {
		return conf, errors.Wrap(errors.ErrInput, err.Error())
	}
	if conf.PayoutInterval <= 0 {
		return conf, errors.Wrap(errors.ErrInput, "payout interval must be positive")
	}
	if conf.Owner != "" {
		if _, err := vesting.ParseAccountID(conf.Owner); err != nil {
			return conf, errors.Wrap(err, "owner")
		}
	}
	return conf, nil
}

func newLogger(level string) (log.Logger, error) {
	opt, err := log.AllowLevel(level)
	if err != nil {
		return nil, errors.Wrap(errors.ErrInput, err.Error())
	}
	logger := log.NewTMLogger(log.NewSyncWriter(os.Stdout)).
		With("module", "vestingd")
	return log.NewFilter(logger, opt), nil
}

func run(conf configuration, logger log.Logger) error {
	if err := os.MkdirAll(conf.Home, 0700); err != nil {
		return errors.Wrap(errors.ErrDatabase, err.Error())
	}
	cs, err := iavl.NewCommitStore(conf.Home, "vesting")
	if err != nil {
		return errors.Wrap(err, "open store")
	}
	a, err := app.New(cs, vesting.SystemClock)
	if err != nil {
		return errors.Wrap(err, "create app")
	}
	a = a.WithLogger(logger.With("module", "app"))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if conf.Owner != "" {
		switch err := a.Initialize(ctx, vesting.AccountID(conf.Owner)); {
		case err == nil:
			logger.Info("contract initialized", "owner", conf.Owner)
		case errors.ErrAlreadyInitialized.Is(err):
			logger.Debug("contract already initialized")
		default:
			return errors.Wrap(err, "initialize")
		}
	}

	var payer app.Payer = &logPayer{logger: logger.With("module", "payer")}
	if conf.PayoutURL != "" {
		payer = newWebhookPayer(conf.PayoutURL, 10*time.Second)
	}
	worker := app.NewPayoutWorker(a, payer, conf.PayoutInterval)
	go func() {
		if err := worker.Run(ctx); err != nil && err != context.Canceled {
			logger.Error("payout worker stopped", "err", err)
		}
	}()

	srv := &http.Server{
		Addr:              conf.HTTP,
		Handler:           newRouter(a, logger.With("module", "http")),
		ReadHeaderTimeout: 10 * time.Second,
	}

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigc
		logger.Info("shutting down", "signal", sig.String())
		cancel()
		shutdownCtx, done := context.WithTimeout(context.Background(), 10*time.Second)
		defer done()
		_ = srv.Shutdown(shutdownCtx)
	}()

	logger.Info("HTTP server listening", "addr", conf.HTTP, "version", vesting.Version())
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return errors.Wrap(errors.ErrInternal, err.Error())
	}
	return nil
}
