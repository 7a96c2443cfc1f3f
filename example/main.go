/*
example wires up tlog the way an application would:

(1) reading settings from .env, the environment and an optional tlog.json5;
(2) owning a root Logger with console, file and metrics Transports;
(3) handing prefixed child Loggers to its components;
(4) and timing work through those children.
*/
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/afero"
	"github.com/xy-planning-network/tlog"
	"github.com/xy-planning-network/tlog/config"
	"github.com/xy-planning-network/tlog/logger"
	"github.com/xy-planning-network/tlog/transport"
)

const configFile = "tlog.json5"

func main() {
	fsys := afero.NewOsFs()

	file, err := config.Load(fsys, tlog.EnvVarOrString("LOG_CONFIG", configFile))
	if err != nil && !errors.Is(err, tlog.ErrNotExist) {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	cfg := file.Merge(config.FromEnv())

	metrics := transport.NewMetrics()
	prometheus.MustRegister(metrics.Collectors()...)

	root := logger.New(cfg.Options()...)
	root.AddTransport(transport.NewConsole())
	root.AddTransport(metrics)
	if cfg.File != nil {
		root.AddTransport(transport.NewFile(*cfg.File, transport.WithFs(fsys)))
	}
	defer func() {
		if err := root.Destroy(); err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
	}()

	ctx := logger.NewContext(context.Background(), root.CreatePrefixedLogger("[worker]"))
	work(ctx)

	db := root.CreatePrefixedLogger("[db]")
	_, err = logger.TimeValue(db, tlog.LevelLog, []any{"counting users"}, func(_, _ func()) (int, error) {
		time.Sleep(15 * time.Millisecond)
		return 0, errors.New("connection refused")
	})
	if err != nil {
		db.Error("counting users:", err)
	}

	throttled := transport.NewThrottle(transport.NewConsole(), time.Second, 3)
	poller := logger.New(
		logger.WithPrefix("[poller]"),
		logger.WithLevel(tlog.LevelTrace),
		logger.WithTransports(throttled),
	)
	defer poller.Destroy()

	for i := 0; i < 10; i++ {
		poller.Trace("poll", i)
	}
	root.Log("poller dropped", throttled.Dropped(), "records")
}

func work(ctx context.Context) {
	l := logger.FromContext(ctx)

	stop := l.TimeStart(tlog.LevelLog, "building index")
	time.Sleep(25 * time.Millisecond)
	stop()

	l.Warn("index is stale", map[string]any{"age": "3h", "entries": 1024})

	in := make(chan string)
	go func() {
		time.Sleep(10 * time.Millisecond)
		in <- "ok"
	}()

	done := logger.TimeAsync(l, tlog.LevelInfo, []any{"warming cache"}, func(_, _ func()) <-chan string {
		return in
	})
	if done != nil {
		<-done
	}
}
