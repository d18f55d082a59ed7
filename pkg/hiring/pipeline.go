package hiring

import (
	"context"

	"hiring-stream/pkg/common_errors"
	"hiring-stream/pkg/commtypes"
	"hiring-stream/pkg/env_config"
	"hiring-stream/pkg/eventlog"
	"hiring-stream/pkg/hashfuncs"
	"hiring-stream/pkg/hiring/types"
	"hiring-stream/pkg/optional"
	"hiring-stream/pkg/processor"
	"hiring-stream/pkg/store"
	"hiring-stream/pkg/store_with_changelog"
	"hiring-stream/pkg/utils/syncutils"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// NewLogFunc creates the backing event log for one topic.
type NewLogFunc func(topicName string, numPartition uint8) eventlog.EventLog

// Pipeline wires the three-stage hiring topology:
//
//	jobs ----------> table
//	applications --> inner join against table --> windowed left outer join --> scored_applications
//	scores ----------------------------------->/
//
// An application that finds its job is emitted right away with a null
// score; if a matching score shows up inside the join window the same key
// is emitted once more with the score attached. Applications referencing
// an unknown job produce nothing.
type Pipeline struct {
	cfg     PipelineConfig
	clock   clockwork.Clock
	running syncutils.AtomicBool

	jobsLog   eventlog.EventLog
	appsLog   eventlog.EventLog
	scoresLog eventlog.EventLog
	outLog    eventlog.EventLog

	jobMsgSerde    commtypes.MessageSerde[uint64, types.Job]
	appMsgSerde    commtypes.MessageSerde[uint64, types.Application]
	scoreMsgSerde  commtypes.MessageSerde[uint64, types.Score]
	scoredMsgSerde commtypes.MessageSerde[uint64, types.ScoredApplication]

	jobTab *store_with_changelog.KeyValueStoreWithChangelog[uint64, commtypes.ValueTimestamp[types.Job]]

	tableSource     *processor.TableSourceProcessor[uint64, types.Job]
	selectJobID     *processor.StreamSelectKeyProcessor[uint64, types.Application, uint64]
	streamTableJoin *processor.StreamTableJoinProcessor[uint64, types.Application, types.Job, types.JoinedApplication]
	selectAppID     *processor.StreamSelectKeyProcessor[uint64, types.JoinedApplication, uint64]
	scoreJoin       *processor.WindowedLeftOuterJoinProcessor[uint64, types.JoinedApplication, types.Score, types.ScoredApplication]

	jobsConsumer   *eventlog.ShardedConsumer[uint64, types.Job]
	appsConsumer   *eventlog.ShardedConsumer[uint64, types.Application]
	scoresConsumer *eventlog.ShardedConsumer[uint64, types.Score]
	outProducer    *eventlog.ShardedProducer[uint64, types.ScoredApplication]
}

func NewPipeline(cfg PipelineConfig, newLog NewLogFunc, clock clockwork.Clock) (*Pipeline, error) {
	if cfg.NumPartition == 0 {
		return nil, common_errors.ErrInvalidPartition
	}
	keySerde := commtypes.Uint64Serde{}
	jobSerde, err := types.GetJobSerde(cfg.SerdeFormat)
	if err != nil {
		return nil, err
	}
	appSerde, err := types.GetApplicationSerde(cfg.SerdeFormat)
	if err != nil {
		return nil, err
	}
	scoreSerde, err := types.GetScoreSerde(cfg.SerdeFormat)
	if err != nil {
		return nil, err
	}
	scoredSerde, err := types.GetScoredApplicationSerde(cfg.SerdeFormat)
	if err != nil {
		return nil, err
	}
	jobMsgSerde, err := commtypes.GetMsgSerde[uint64, types.Job](cfg.SerdeFormat, keySerde, jobSerde)
	if err != nil {
		return nil, err
	}
	appMsgSerde, err := commtypes.GetMsgSerde[uint64, types.Application](cfg.SerdeFormat, keySerde, appSerde)
	if err != nil {
		return nil, err
	}
	scoreMsgSerde, err := commtypes.GetMsgSerde[uint64, types.Score](cfg.SerdeFormat, keySerde, scoreSerde)
	if err != nil {
		return nil, err
	}
	scoredMsgSerde, err := commtypes.GetMsgSerde[uint64, types.ScoredApplication](cfg.SerdeFormat, keySerde, scoredSerde)
	if err != nil {
		return nil, err
	}
	jobTsSerde, err := commtypes.GetValueTsSerde[types.Job](cfg.SerdeFormat, jobSerde)
	if err != nil {
		return nil, err
	}
	changelogMsgSerde, err := commtypes.GetMsgSerde[uint64, commtypes.ValueTimestamp[types.Job]](cfg.SerdeFormat, keySerde, jobTsSerde)
	if err != nil {
		return nil, err
	}

	hasher := hashfuncs.IntegerHasher[uint64]{}
	jobTab := store_with_changelog.NewKeyValueStoreWithChangelog[uint64, commtypes.ValueTimestamp[types.Job]](
		store.NewInMemorySkipmapKeyValueStore[uint64, commtypes.ValueTimestamp[types.Job]](
			"jobs-table", store.IntegerLessFunc[uint64]),
		newLog(cfg.TableChangelogTopic, cfg.NumPartition),
		changelogMsgSerde, hasher, false)

	stateStore := store.NewJoinStateStore[uint64, types.JoinedApplication](
		"application-join-state", store.IntegerCompare[uint64])
	scoreBuffer := store.NewInMemorySkipMapWindowStore[uint64, types.Score](
		"scores-window", cfg.JoinWindows.MaxSize()+cfg.JoinWindows.GracePeriodMs(),
		cfg.JoinWindows.MaxSize(), store.IntegerCompare[uint64])

	innerJoiner := processor.ValueJoinerWithKeyFunc[uint64, types.Application, types.Job, types.JoinedApplication](
		func(readOnlyKey uint64, app types.Application, job types.Job) optional.Option[types.JoinedApplication] {
			return optional.Some(types.NewJoinedApplication(&app, &job))
		})
	outerJoiner := processor.ValueJoinerWithKeyTsFunc[uint64, types.JoinedApplication, types.Score, types.ScoredApplication](
		func(readOnlyKey uint64, joined types.JoinedApplication, sc optional.Option[types.Score],
			leftTs int64, otherTs int64,
		) types.ScoredApplication {
			if s, ok := sc.Take(); ok {
				ts := leftTs
				if otherTs > ts {
					ts = otherTs
				}
				return types.NewScoredApplication(&joined, &s, ts)
			}
			return types.NewUnscoredApplication(&joined)
		})

	jobsLog := newLog(cfg.JobsTopic, cfg.NumPartition)
	appsLog := newLog(cfg.ApplicationsTopic, cfg.NumPartition)
	scoresLog := newLog(cfg.ScoresTopic, cfg.NumPartition)
	outLog := newLog(cfg.OutputTopic, cfg.NumPartition)

	return &Pipeline{
		cfg:            cfg,
		clock:          clock,
		jobsLog:        jobsLog,
		appsLog:        appsLog,
		scoresLog:      scoresLog,
		outLog:         outLog,
		jobMsgSerde:    jobMsgSerde,
		appMsgSerde:    appMsgSerde,
		scoreMsgSerde:  scoreMsgSerde,
		scoredMsgSerde: scoredMsgSerde,
		jobTab:         jobTab,
		tableSource:    processor.NewTableSourceProcessor[uint64, types.Job](jobTab),
		selectJobID: processor.NewStreamSelectKeyProcessor[uint64, types.Application, uint64]("selectJobId",
			func(key uint64, app types.Application) uint64 { return app.JobID }),
		streamTableJoin: processor.NewStreamTableJoinProcessor[uint64, types.Application, types.Job, types.JoinedApplication](jobTab, innerJoiner),
		selectAppID: processor.NewStreamSelectKeyProcessor[uint64, types.JoinedApplication, uint64]("selectApplicationId",
			func(key uint64, joined types.JoinedApplication) uint64 { return joined.ID }),
		scoreJoin: processor.NewWindowedLeftOuterJoinProcessor[uint64, types.JoinedApplication, types.Score, types.ScoredApplication](
			"applicationScoreJoin", stateStore, scoreBuffer, cfg.JoinWindows, outerJoiner),
		jobsConsumer:   eventlog.NewShardedConsumer[uint64, types.Job](jobsLog, jobMsgSerde),
		appsConsumer:   eventlog.NewShardedConsumer[uint64, types.Application](appsLog, appMsgSerde),
		scoresConsumer: eventlog.NewShardedConsumer[uint64, types.Score](scoresLog, scoreMsgSerde),
		outProducer:    eventlog.NewShardedProducer[uint64, types.ScoredApplication](outLog, scoredMsgSerde, hasher),
	}, nil
}

// JobsProducer keys job upserts by job id.
func (p *Pipeline) JobsProducer() *eventlog.ShardedProducer[uint64, types.Job] {
	return eventlog.NewShardedProducer[uint64, types.Job](p.jobsLog, p.jobMsgSerde, hashfuncs.IntegerHasher[uint64]{})
}

// ApplicationsProducer keys applications by application id.
func (p *Pipeline) ApplicationsProducer() *eventlog.ShardedProducer[uint64, types.Application] {
	return eventlog.NewShardedProducer[uint64, types.Application](p.appsLog, p.appMsgSerde, hashfuncs.IntegerHasher[uint64]{})
}

// ScoresProducer keys scores by application id so a score lands on the same
// partition as its application.
func (p *Pipeline) ScoresProducer() *eventlog.ShardedProducer[uint64, types.Score] {
	return eventlog.NewShardedProducer[uint64, types.Score](p.scoresLog, p.scoreMsgSerde, hashfuncs.IntegerHasher[uint64]{})
}

func (p *Pipeline) OutputConsumer() *eventlog.ShardedConsumer[uint64, types.ScoredApplication] {
	return eventlog.NewShardedConsumer[uint64, types.ScoredApplication](p.outLog, p.scoredMsgSerde)
}

func (p *Pipeline) handleJob(ctx context.Context, msg commtypes.Message[uint64, types.Job]) error {
	if err := msg.ExtractEventTimeFromVal(); err != nil {
		return err
	}
	_, err := p.tableSource.ProcessAndReturn(ctx, msg)
	return err
}

func (p *Pipeline) handleApplication(ctx context.Context, msg commtypes.Message[uint64, types.Application]) error {
	if err := msg.ExtractEventTimeFromVal(); err != nil {
		return err
	}
	keyed, err := p.selectJobID.ProcessAndReturn(ctx, msg)
	if err != nil {
		return err
	}
	for _, km := range keyed {
		joined, err := p.streamTableJoin.ProcessAndReturn(ctx, km)
		if err != nil {
			return err
		}
		for _, jm := range joined {
			rekeyed, err := p.selectAppID.ProcessAndReturn(ctx, jm)
			if err != nil {
				return err
			}
			for _, rm := range rekeyed {
				outs, err := p.scoreJoin.ProcessLeft(ctx, rm)
				if err != nil {
					return err
				}
				if err := p.produceOutputs(ctx, outs); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func (p *Pipeline) handleScore(ctx context.Context, msg commtypes.Message[uint64, types.Score]) error {
	if err := msg.ExtractEventTimeFromVal(); err != nil {
		return err
	}
	outs, err := p.scoreJoin.ProcessRight(ctx, msg)
	if err != nil {
		return err
	}
	return p.produceOutputs(ctx, outs)
}

func (p *Pipeline) produceOutputs(ctx context.Context, msgs []commtypes.Message[uint64, types.ScoredApplication]) error {
	for _, m := range msgs {
		if err := p.outProducer.Produce(ctx, m); err != nil {
			return err
		}
	}
	return nil
}

// Run restores the jobs table, then consumes every partition of the three
// input topics until ctx is canceled. A background sweeper reclaims join
// state for keys whose window elapsed without any further traffic.
func (p *Pipeline) Run(ctx context.Context) error {
	if p.running.Swap(true) {
		return common_errors.ErrAlreadyRunning
	}
	defer p.running.Set(false)
	if err := p.jobTab.RestoreFromChangelog(ctx); err != nil {
		return err
	}
	g, gctx := errgroup.WithContext(ctx)
	for parNum := uint8(0); parNum < p.cfg.NumPartition; parNum++ {
		parNum := parNum
		g.Go(func() error {
			return consumeLoop(gctx, p.clock, p.jobsConsumer, parNum, p.cfg, p.handleJob)
		})
		g.Go(func() error {
			return consumeLoop(gctx, p.clock, p.appsConsumer, parNum, p.cfg, p.handleApplication)
		})
		g.Go(func() error {
			return consumeLoop(gctx, p.clock, p.scoresConsumer, parNum, p.cfg, p.handleScore)
		})
	}
	g.Go(func() error {
		return p.sweepLoop(gctx)
	})
	return g.Wait()
}

func (p *Pipeline) sweepLoop(ctx context.Context) error {
	ticker := p.clock.NewTicker(p.cfg.SweepInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.Chan():
			n, err := p.scoreJoin.ExpireUpTo(ctx, p.clock.Now().UnixMilli())
			if err != nil {
				return err
			}
			if n > 0 {
				log.Debug().Msgf("reclaimed %d elapsed join windows", n)
			}
			if env_config.DEBUG_CHECK {
				outstanding, err := p.scoreJoin.OutstandingWindows()
				if err != nil {
					return err
				}
				log.Debug().Msgf("%d join windows still open", outstanding)
			}
		}
	}
}

func consumeLoop[K, V any](ctx context.Context, clock clockwork.Clock,
	consumer *eventlog.ShardedConsumer[K, V], parNum uint8, cfg PipelineConfig,
	handle func(ctx context.Context, msg commtypes.Message[K, V]) error,
) error {
	for {
		msg, err := consumer.Consume(ctx, parNum)
		if common_errors.IsStreamEmptyError(err) {
			select {
			case <-ctx.Done():
				return nil
			case <-clock.After(cfg.PollInterval):
			}
			continue
		}
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return err
		}
		if err := handle(ctx, msg); err != nil {
			return err
		}
	}
}
