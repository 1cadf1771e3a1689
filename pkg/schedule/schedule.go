package schedule

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/robfig/cron/v3"

	"github.com/hatcher/genui/pkg/logs"
	"github.com/hatcher/genui/pkg/safego"
)

const (
	TypeCron       = "cron"
	TypeFixedDelay = "fixed_delay"
)

type ScheduledConfig struct {
	Enabled bool   `json:"enabled" yaml:"enabled" mapstructure:"enabled"`
	Type    string `json:"type" yaml:"type" mapstructure:"type"`    // cron or fixed_delay
	Value   string `json:"value" yaml:"value" mapstructure:"value"` // cron spec with seconds, or delay in seconds
}

// Scheduler runs named tasks on cron specs or fixed delays. Tasks registered
// before Start begin with it; Stop waits for running tasks to return.
type Scheduler struct {
	cron    *cron.Cron
	quit    chan struct{}
	wg      sync.WaitGroup
	mu      sync.Mutex
	running bool
	delays  []fixedDelay
}

type fixedDelay struct {
	name     string
	interval time.Duration
	method   func()
}

func NewScheduler() *Scheduler {
	return &Scheduler{
		cron: cron.New(cron.WithSeconds(), cron.WithChain(cron.Recover(cronLogger{}))),
		quit: make(chan struct{}),
	}
}

// AddScheduledTask 添加定时任务. A disabled config is logged and skipped.
func (s *Scheduler) AddScheduledTask(name string, config ScheduledConfig, method func()) error {
	if !config.Enabled {
		logs.Infof("%s scheduled task is disabled", name)
		return nil
	}
	if config.Value == "" {
		return errors.Errorf("%s scheduled task has no value, type: %s", name, config.Type)
	}
	switch config.Type {
	case TypeCron:
		return s.AddCronTask(name, config.Value, method)
	case TypeFixedDelay:
		seconds, err := strconv.ParseInt(config.Value, 10, 64)
		if err != nil || seconds <= 0 {
			return errors.Errorf("%s scheduled task delay must be a positive number of seconds, got %q", name, config.Value)
		}
		s.AddFixDelayTask(name, time.Duration(seconds)*time.Second, method)
		return nil
	default:
		return errors.Errorf("%s scheduled task type %q is illegal, expect %s or %s", name, config.Type, TypeCron, TypeFixedDelay)
	}
}

// AddCronTask 添加cron任务, spec uses the six-field form with seconds.
func (s *Scheduler) AddCronTask(name, spec string, method func()) error {
	if _, err := s.cron.AddFunc(spec, method); err != nil {
		return errors.WithMessagef(err, "%s cron spec %q", name, spec)
	}
	logs.Infof("%s scheduled with cron %q", name, spec)
	return nil
}

// AddFixDelayTask 添加固定延迟任务
func (s *Scheduler) AddFixDelayTask(name string, interval time.Duration, method func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d := fixedDelay{name: name, interval: interval, method: method}
	s.delays = append(s.delays, d)
	if s.running {
		s.runFixedDelay(d)
	}
	logs.Infof("%s scheduled every %v", name, interval)
}

func (s *Scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		return
	}
	s.running = true
	s.cron.Start()
	for _, d := range s.delays {
		s.runFixedDelay(d)
	}
}

func (s *Scheduler) runFixedDelay(d fixedDelay) {
	s.wg.Add(1)
	safego.Go(context.Background(), func() {
		defer s.wg.Done()
		timer := time.NewTimer(d.interval)
		defer timer.Stop()
		for {
			select {
			case <-s.quit:
				return
			case <-timer.C:
				s.invoke(d)
				timer.Reset(d.interval)
			}
		}
	})
}

func (s *Scheduler) invoke(d fixedDelay) {
	defer safego.Recovery(context.Background())
	d.method()
}

// Stop halts scheduling and waits for running tasks or ctx, whichever ends first.
func (s *Scheduler) Stop(ctx context.Context) error {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return nil
	}
	s.running = false
	close(s.quit)
	s.mu.Unlock()

	cronDone := s.cron.Stop()
	done := make(chan struct{})
	go func() {
		<-cronDone.Done()
		s.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

type cronLogger struct{}

func (cronLogger) Info(msg string, keysAndValues ...interface{}) {
	logs.Debugf("cron: %s %v", msg, keysAndValues)
}

func (cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	logs.Errorf("cron: %s: %v %v", msg, err, keysAndValues)
}
