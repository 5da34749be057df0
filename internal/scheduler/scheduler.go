// Package scheduler drives the periodic collect and process passes of the
// pipeline.
package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/xLang1234/PythonBE/internal/domain/content"
	"github.com/xLang1234/PythonBE/internal/domain/feed"
	"github.com/xLang1234/PythonBE/internal/pkg/logger"
)

// Pipeline schedules collection every interval and analysis every two
// intervals, with an immediate first run of both.
type Pipeline struct {
	cron            *cron.Cron
	collector       feed.CollectionService
	analysis        content.AnalysisService
	interval        time.Duration
	processingLimit int
	logger          logger.Logger
}

// NewPipeline creates a pipeline scheduler
func NewPipeline(
	collector feed.CollectionService,
	analysis content.AnalysisService,
	interval time.Duration,
	processingLimit int,
	log logger.Logger,
) (*Pipeline, error) {
	if interval < time.Second {
		return nil, fmt.Errorf("interval must be at least one second, got %s", interval)
	}
	if processingLimit < 1 {
		return nil, fmt.Errorf("processing limit must be positive, got %d", processingLimit)
	}

	return &Pipeline{
		cron:            cron.New(),
		collector:       collector,
		analysis:        analysis,
		interval:        interval,
		processingLimit: processingLimit,
		logger:          log,
	}, nil
}

// Start registers the jobs and begins scheduling. Both passes also run
// once immediately so a fresh deployment produces data right away.
func (p *Pipeline) Start(ctx context.Context) error {
	p.cron.Schedule(cron.Every(p.interval), cron.FuncJob(func() {
		p.runCollect(ctx)
	}))
	p.cron.Schedule(cron.Every(2*p.interval), cron.FuncJob(func() {
		p.runProcess(ctx)
	}))

	go func() {
		p.runCollect(ctx)
		p.runProcess(ctx)
	}()

	p.cron.Start()
	p.logger.Info("Pipeline scheduler started, collecting every ", p.interval)
	return nil
}

// Stop halts scheduling and waits for running jobs to finish
func (p *Pipeline) Stop() {
	stopCtx := p.cron.Stop()
	<-stopCtx.Done()
	p.logger.Info("Pipeline scheduler stopped")
}

func (p *Pipeline) runCollect(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}
	if _, err := p.collector.CollectAll(ctx); err != nil {
		p.logger.Error("Collection pass failed: ", err)
	}
}

func (p *Pipeline) runProcess(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}
	if _, err := p.analysis.ProcessUnprocessed(ctx, p.processingLimit); err != nil {
		p.logger.Error("Processing pass failed: ", err)
	}
}
