package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/hatcher/genui/api"
	"github.com/hatcher/genui/chart"
	"github.com/hatcher/genui/config"
	"github.com/hatcher/genui/pkg/hertzx"
	"github.com/hatcher/genui/pkg/logs"
	"github.com/hatcher/genui/pkg/pubsub"
	"github.com/hatcher/genui/pkg/schedule"
	"github.com/hatcher/genui/todo"
)

func main() {
	configPath := flag.String("config", "etc/genui.yaml", "path to the YAML config file")
	showVersion := flag.Bool("version", false, "print the version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println(api.Version)
		return
	}
	if err := run(*configPath); err != nil {
		logs.Errorf("genui exited: %+v", err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	c, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if err := logs.InitLogger(c.Log, "genui.log"); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := todo.Open(ctx, c.Store)
	if err != nil {
		return err
	}
	defer func() {
		if err := store.Close(); err != nil {
			logs.Warnf("close store: %v", err)
		}
	}()

	scheduler := schedule.NewScheduler()
	if mem, ok := store.(*todo.MemoryStore); ok && c.Store.Snapshot.Path != "" {
		if err := setupSnapshot(mem, c.Store.Snapshot, scheduler); err != nil {
			return err
		}
	}
	scheduler.Start()

	broker := pubsub.NewBroker[todo.List]()
	svc := todo.NewService(store, todo.WithPublisher(broker))
	srv := api.NewServer(chart.NewSeededGenerator(c.Chart.Seed), svc, broker)

	h := hertzx.WebEngine(c.Web)
	srv.Register(h)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logs.Infof("genui %s listening on %s (store: %s)", api.Version, c.Web.Addr(), c.Store.Type)
		return h.Run()
	})
	g.Go(func() error {
		<-gctx.Done()
		logs.Infof("shutting down")
		broker.Shutdown()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(c.Web.ShutdownTimeout)*time.Millisecond)
		defer cancel()
		return h.Shutdown(shutdownCtx)
	})
	runErr := g.Wait()

	stopCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := scheduler.Stop(stopCtx); err != nil {
		logs.Warnf("stop scheduler: %v", err)
	}
	if mem, ok := store.(*todo.MemoryStore); ok && c.Store.Snapshot.Path != "" {
		if err := mem.SaveSnapshot(c.Store.Snapshot.Path); err != nil {
			logs.Errorf("final snapshot failed: %v", err)
		}
	}
	return runErr
}

// setupSnapshot restores the memory store from disk and schedules saves.
func setupSnapshot(mem *todo.MemoryStore, sc todo.SnapshotConfig, scheduler *schedule.Scheduler) error {
	n, err := mem.LoadSnapshot(sc.Path)
	if err != nil {
		return err
	}
	logs.Infof("restored %d todo lists from %s", n, sc.Path)
	return scheduler.AddScheduledTask("todo-snapshot", sc.Schedule, func() {
		if err := mem.SaveSnapshot(sc.Path); err != nil {
			logs.Errorf("todo snapshot failed: %v", err)
			return
		}
		logs.Debugf("saved %d todo lists to %s", mem.Len(), sc.Path)
	})
}
