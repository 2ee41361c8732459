package main

import (
	"context"
	"flag"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	nested "github.com/antonfisher/nested-logrus-formatter"
	"github.com/kelseyhightower/envconfig"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"go.elastic.co/ecslogrus"

	"github.com/lueurxax/forwardlist/internal/log"
	"github.com/lueurxax/forwardlist/internal/server"
	"github.com/lueurxax/forwardlist/internal/snapshot"
	"github.com/lueurxax/forwardlist/internal/store"
)

var version = "dev"

const pkgKey = "pkg"

type config struct {
	LoggerLevel      logrus.Level  `envconfig:"LOG_LEVEL" default:"info"`
	LogToEcs         bool          `envconfig:"LOG_TO_ECS" default:"false"`
	RedisAddr        string        `envconfig:"REDIS_ADDR"` // empty disables persistence
	SnapshotInterval time.Duration `envconfig:"SNAPSHOT_INTERVAL" default:"30s"`
}

func main() {
	printVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *printVersion {
		fmt.Println(version)
		return
	}

	// init main config
	cfg := new(config)
	if err := envconfig.Process("", cfg); err != nil {
		panic(err)
	}

	// init logger
	logrusLogger := logrus.New()
	logrusLogger.SetLevel(cfg.LoggerLevel)
	logrusLogger.SetFormatter(&nested.Formatter{
		FieldsOrder:     []string{pkgKey},
		TimestampFormat: "01-02|15:04:05",
	})

	if cfg.LogToEcs {
		logrusLogger.SetFormatter(&ecslogrus.Formatter{})
	}

	logger := log.NewLogger(logrusLogger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	st := store.NewStore()

	if cfg.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		if err := client.Ping(ctx).Err(); err != nil {
			panic(err)
		}

		snap := snapshot.NewSnapshotter(client, st, cfg.SnapshotInterval, logger.WithField(pkgKey, "snapshot"))
		if err := snap.Restore(ctx); err != nil {
			panic(err)
		}

		snap.Start(ctx)

		defer func() {
			if err := snap.Stop(); err != nil {
				logger.Error(err)
			}
		}()
	}

	srv, err := server.New(server.GetConfig(), store.NewMetricsMiddleware(st), logger.WithField(pkgKey, "server"))
	if err != nil {
		panic(err)
	}

	logger.Info("service started")

	if err = srv.ListenAndServe(ctx); err != nil {
		panic(err)
	}
}
