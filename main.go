package main

import (
	"context"
	"net/http"
	"os"
	"sync"
	"syscall"
	"time"

	"github.com/aukilabs/go-tooling/pkg/cli"
	"github.com/aukilabs/go-tooling/pkg/errors"
	"github.com/aukilabs/go-tooling/pkg/logs"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/segmentio/encoding/json"

	"isgt/pkg/game/config"
	"isgt/pkg/game/devtools"
	"isgt/pkg/game/props"
	"isgt/pkg/game/renderer"
	"isgt/pkg/game/room"
)

func main() {
	conf := config.Default()

	ctx, cancel := cli.ContextWithSignals(context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer cancel()

	cli.Register().
		Help("Generates furnished indoor rooms and writes their handoff files.").
		Options(&conf)
	cli.Load()

	logs.SetLevel(logs.ParseLevel(conf.LogLevel))
	logs.Encoder = json.Marshal
	if conf.LogIndent {
		logs.Encoder = func(v any) ([]byte, error) {
			return json.MarshalIndent(v, "", "  ")
		}
	}

	errors.Encoder = json.Marshal

	if err := conf.Validate(); err != nil {
		logs.Fatal(err)
	}

	catalog, err := loadCatalog(conf)
	if err != nil {
		logs.Fatal(err)
	}

	if conf.MetricsAddr != "" {
		stop := serveMetrics(conf.MetricsAddr)
		defer stop()
	}

	var preview *renderer.Preview
	if conf.Preview {
		preview = renderer.NewForTerminal()
	}
	var printMu sync.Mutex

	batch := room.Batch{
		Config:  conf,
		Catalog: catalog,
		OnRoom: func(ctx context.Context, r *room.ClassicRoom, h *room.Handoff) error {
			if conf.OutputDir != "" {
				if _, err := room.WriteHandoff(conf.OutputDir, h); err != nil {
					return err
				}
				if conf.Dump {
					if _, err := devtools.DumpLayoutToFile(conf.OutputDir, r.Layout()); err != nil {
						return err
					}
				}
			}
			if preview != nil {
				printMu.Lock()
				defer printMu.Unlock()
				return preview.Write(os.Stdout, r.Layout())
			}
			return nil
		},
	}

	logs.WithTag("rooms", conf.RoomCount).
		WithTag("concurrency", conf.Concurrency).
		WithTag("seed", conf.Seed).
		WithTag("catalog", catalog.Name).
		WithTag("log_level", conf.LogLevel).
		Info("starting room generation")

	res, err := batch.Generate(ctx)
	if err != nil {
		logs.Fatal(errors.New("room generation interrupted").Wrap(err))
	}

	logs.WithTag("generated", len(res.Handoffs)).
		WithTag("failed", len(res.Failures)).
		Info("room generation done")

	if len(res.Failures) != 0 {
		os.Exit(1)
	}
}

func loadCatalog(conf config.Config) (*props.Catalog, error) {
	catalog := props.DefaultCatalog()
	if conf.CatalogPath != "" {
		var err error
		if catalog, err = props.LoadCatalog(conf.CatalogPath); err != nil {
			return nil, err
		}
	}
	return catalog.Restrict(conf.Categories)
}

// serveMetrics exposes the prometheus registry on addr until the returned
// function is called.
func serveMetrics(addr string) func() {
	var mux http.ServeMux
	mux.Handle("/metrics", promhttp.Handler())

	server := &http.Server{Addr: addr, Handler: &mux}
	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logs.Warn(errors.New("serving metrics failed").
				WithTag("addr", addr).
				Wrap(err))
		}
	}()

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
		defer cancel()
		server.Shutdown(ctx)
	}
}
