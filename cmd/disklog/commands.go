package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/urfave/cli/v3"

	"github.com/lixenwraith/disklog"
	"github.com/lixenwraith/disklog/metrics"
)

const shutdownTimeout = 5 * time.Second

var levels = []int64{
	disklog.LevelDebug,
	disklog.LevelInfo,
	disklog.LevelWarn,
	disklog.LevelError,
}

func createPipeCommand() *cli.Command {
	return &cli.Command{
		Name:  "pipe",
		Usage: "append each line read from stdin as one record",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "tag",
				Usage: "tag attached to every record",
			},
			&cli.StringFlag{
				Name:  "level",
				Usage: "level attached to every record",
				Value: "info",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			level, err := disklog.Level(cmd.String("level"))
			if err != nil {
				return err
			}

			sink, err := disklog.New(cfg)
			if err != nil {
				return err
			}

			errPipe := pipe(ctx, sink, os.Stdin, level, cmd.String("tag"))
			return errors.Join(errPipe, sink.Shutdown(shutdownTimeout))
		},
	}
}

// pipe submits lines until EOF or cancellation. Lines keep their terminator.
func pipe(ctx context.Context, sink *disklog.Sink, in *os.File, level int64, tag string) error {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)

	for scanner.Scan() {
		if ctx.Err() != nil {
			return nil
		}
		if err := sink.Submit(level, tag, scanner.Text()+"\n"); err != nil {
			return err
		}
	}
	return scanner.Err()
}

func createStressCommand() *cli.Command {
	return &cli.Command{
		Name:  "stress",
		Usage: "submit random records concurrently and print the sink counters",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "workers",
				Usage: "concurrent submitting goroutines",
				Value: 16,
			},
			&cli.IntFlag{
				Name:  "records",
				Usage: "records per worker",
				Value: 1000,
			},
			&cli.IntFlag{
				Name:  "max-message",
				Usage: "upper bound of the random message length",
				Value: 512,
			},
			&cli.StringFlag{
				Name:  "metrics-addr",
				Usage: "serve Prometheus metrics on this address while running, e.g. :9100",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			sink, err := disklog.New(cfg)
			if err != nil {
				return err
			}

			if addr := cmd.String("metrics-addr"); addr != "" {
				srv := serveMetrics(sink, addr)
				defer srv.Close()
			}

			start := time.Now()
			stress(ctx, sink, cmd.Int("workers"), cmd.Int("records"), cmd.Int("max-message"))
			errShutdown := sink.Shutdown(shutdownTimeout)

			printStats(sink.Stats(), time.Since(start))
			return errShutdown
		},
	}
}

func stress(ctx context.Context, sink *disklog.Sink, workers, records, maxMessage int) {
	if maxMessage < 1 {
		maxMessage = 1
	}

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			rnd := rand.New(rand.NewSource(time.Now().UnixNano() + int64(worker)))
			for i := 0; i < records; i++ {
				if ctx.Err() != nil {
					return
				}
				level := levels[rnd.Intn(len(levels))]
				msg := generateRandomMessage(rnd, rnd.Intn(maxMessage)+1)
				_ = sink.Log(level, "stress", msg, "wkr", worker, "seq", i)
			}
		}(w)
	}
	wg.Wait()
}

func generateRandomMessage(rnd *rand.Rand, size int) string {
	const chars = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789 "
	var sb strings.Builder
	sb.Grow(size)
	for i := 0; i < size; i++ {
		sb.WriteByte(chars[rnd.Intn(len(chars))])
	}
	return sb.String()
}

func serveMetrics(sink *disklog.Sink, addr string) *http.Server {
	reg := prometheus.NewRegistry()
	reg.MustRegister(metrics.NewCollector(sink, nil))

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			fmt.Fprintf(os.Stderr, "disklog: metrics server: %v\n", err)
		}
	}()
	return srv
}

func printStats(s disklog.Stats, elapsed time.Duration) {
	fmt.Printf("elapsed:        %v\n", elapsed.Round(time.Millisecond))
	fmt.Printf("submitted:      %d\n", s.Submitted)
	fmt.Printf("written:        %d\n", s.Written)
	fmt.Printf("dropped:        %d\n", s.Dropped)
	fmt.Printf("write failures: %d\n", s.WriteFailures)
	fmt.Printf("rotations:      %d\n", s.Rotations)
	fmt.Printf("bytes written:  %d\n", s.BytesWritten)
}
