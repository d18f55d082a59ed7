package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"hiring-stream/pkg/env_config"
	"hiring-stream/pkg/eventlog"
	"hiring-stream/pkg/hiring"
	"hiring-stream/pkg/redis_client"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func init() {
	logLevel := os.Getenv("LOG_LEVEL")
	if level, err := zerolog.ParseLevel(logLevel); err == nil {
		zerolog.SetGlobalLevel(level)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
}

func newLogFunc() hiring.NewLogFunc {
	if len(env_config.RedisAddr()) != 0 {
		clients := redis_client.GetRedisClients()
		return func(topicName string, numPartition uint8) eventlog.EventLog {
			return eventlog.NewRedisEventLog(topicName, numPartition, clients)
		}
	}
	log.Warn().Msg("REDIS_ADDR not set; using in-memory event logs")
	return func(topicName string, numPartition uint8) eventlog.EventLog {
		return eventlog.NewInMemoryEventLog(topicName, numPartition)
	}
}

func main() {
	cfg, err := hiring.PipelineConfigFromEnv()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid pipeline config")
	}
	pipeline, err := hiring.NewPipeline(cfg, newLogFunc(), clockwork.NewRealClock())
	if err != nil {
		log.Fatal().Err(err).Msg("fail to build pipeline")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	log.Info().
		Str("jobs", cfg.JobsTopic).
		Str("applications", cfg.ApplicationsTopic).
		Str("scores", cfg.ScoresTopic).
		Str("output", cfg.OutputTopic).
		Uint8("partitions", cfg.NumPartition).
		Msg("starting hiring pipeline")
	if err := pipeline.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("pipeline exited with error")
	}
	log.Info().Msg("pipeline stopped")
}
