package hiring

import (
	"time"

	"hiring-stream/pkg/commtypes"
	"hiring-stream/pkg/env_config"
)

type PipelineConfig struct {
	JoinWindows         *commtypes.JoinWindows
	JobsTopic           string
	ApplicationsTopic   string
	ScoresTopic         string
	OutputTopic         string
	TableChangelogTopic string
	SweepInterval       time.Duration
	PollInterval        time.Duration
	NumPartition        uint8
	SerdeFormat         commtypes.SerdeFormat
}

// DefaultPipelineConfig accepts scores whose event time falls in
// [applicationTs, applicationTs+1h], with five extra minutes of grace for
// out-of-order arrivals before per-key state is reclaimed.
func DefaultPipelineConfig() (PipelineConfig, error) {
	jw, err := NewScoreWindow(time.Hour, 5*time.Minute)
	if err != nil {
		return PipelineConfig{}, err
	}
	return PipelineConfig{
		JoinWindows:         jw,
		JobsTopic:           "jobs",
		ApplicationsTopic:   "applications",
		ScoresTopic:         "scores",
		OutputTopic:         "scored_applications",
		TableChangelogTopic: "jobs-table-changelog",
		SweepInterval:       10 * time.Second,
		PollInterval:        5 * time.Millisecond,
		NumPartition:        1,
		SerdeFormat:         commtypes.JSON,
	}, nil
}

// NewScoreWindow builds the join window for the score join: a score joins
// an application only when the score's event time is at or after the
// application's, and no more than windowSize after it.
func NewScoreWindow(windowSize time.Duration, grace time.Duration) (*commtypes.JoinWindows, error) {
	jw, err := commtypes.NewJoinWindowsWithGrace(windowSize, grace)
	if err != nil {
		return nil, err
	}
	return jw.Before(0)
}

func PipelineConfigFromEnv() (PipelineConfig, error) {
	windowSize := env_config.DurationFromEnv("SCORE_WINDOW", time.Hour)
	grace := env_config.DurationFromEnv("SCORE_WINDOW_GRACE", 5*time.Minute)
	jw, err := NewScoreWindow(windowSize, grace)
	if err != nil {
		return PipelineConfig{}, err
	}
	return PipelineConfig{
		JoinWindows:         jw,
		JobsTopic:           env_config.StringFromEnv("JOBS_TOPIC", "jobs"),
		ApplicationsTopic:   env_config.StringFromEnv("APPLICATIONS_TOPIC", "applications"),
		ScoresTopic:         env_config.StringFromEnv("SCORES_TOPIC", "scores"),
		OutputTopic:         env_config.StringFromEnv("OUTPUT_TOPIC", "scored_applications"),
		TableChangelogTopic: env_config.StringFromEnv("TABLE_CHANGELOG_TOPIC", "jobs-table-changelog"),
		SweepInterval:       env_config.DurationFromEnv("SWEEP_INTERVAL", 10*time.Second),
		PollInterval:        env_config.DurationFromEnv("POLL_INTERVAL", 5*time.Millisecond),
		NumPartition:        env_config.Uint8FromEnv("NUM_PARTITION", 1),
		SerdeFormat:         env_config.SerdeFormatFromEnv("SERDE_FORMAT", commtypes.JSON),
	}, nil
}
