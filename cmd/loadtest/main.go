// Command loadtest measures message throughput of the runtime: W echo
// workers receive N messages round-robin and acknowledge each one back
// to the root process.
//
// Prometheus metrics are served on PROM_PORT while the run is active.
package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	promadapter "github.com/codewandler/actio-go/adapters/prometheus"
	"github.com/codewandler/actio-go/core/actor"
	"github.com/codewandler/actio-go/core/eff"
)

// === Config ===

var (
	logLevel = slog.LevelInfo
	N        = getEnvInt("N", 100_000)
	W        = getEnvInt("W", 8)
	promOn   = getEnvBool("PROM", true)
	promPort = getEnvInt("PROM_PORT", 2121)
)

func getEnvBool(key string, fallback bool) bool {
	v := getEnv(key, "")
	if v == "" {
		return fallback
	}
	return v == "1" || strings.ToLower(v) == "true"
}

func getEnv(key, fallback string) string {
	v, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	return v
}

func getEnvInt(key string, fallback int) int {
	v, err := strconv.Atoi(getEnv(key, fmt.Sprintf("%d", fallback)))
	if err != nil {
		return fallback
	}
	return v
}

//

func main() {
	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))

	opt := actor.Options{Logger: log}

	if promOn {
		reg := prometheus.NewRegistry()
		opt.Metrics = promadapter.NewRuntimeMetrics(reg)

		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
		go func() {
			log.Info("prometheus metrics server starting", slog.Int("port", promPort))
			if err := http.ListenAndServe(fmt.Sprintf(":%d", promPort), mux); err != nil {
				log.Error("prometheus server error", slog.Any("error", err))
			}
		}()
	}

	fmt.Printf("messages: %d\n", N)
	fmt.Printf(" workers: %d\n", W)

	startAt := time.Now()
	actor.RunProgram(root(log), opt)

	took := time.Since(startAt)
	fmt.Println("==========================================")
	fmt.Printf("total runtime: %.3f seconds\n", took.Seconds())
	fmt.Printf("    avg msg/s: %d\n", int(float64(2*N)/took.Seconds()))
}

// root spawns the echo workers, floods them round-robin and waits for
// every acknowledgement. Each message crosses two inboxes, worker and
// root, so a run moves 2*N messages in total.
func root(log *slog.Logger) func(in *actor.Inbox[int]) eff.IO[string, eff.Unit] {
	return func(in *actor.Inbox[int]) eff.IO[string, eff.Unit] {
		echo := func(v int) eff.IO[string, eff.Unit] {
			return actor.Send[string](v, in.Address())
		}

		spawns := make([]eff.IO[string, actor.Address[int]], W)
		for i := range spawns {
			spawns[i] = actor.SpawnWorker(echo, actor.ExitOnError[string, eff.Unit]())
		}

		return eff.AndThen(eff.Sequence(spawns), func(workers []actor.Address[int]) eff.IO[string, eff.Unit] {
			sends := make([]eff.IO[string, eff.Unit], N)
			for i := range sends {
				sends[i] = actor.Send[string](i, workers[i%W])
			}

			acks := make([]eff.IO[string, int], N)
			for i := range acks {
				acks[i] = actor.Receive[string](in)
			}

			return eff.Then(
				eff.Batch(sends),
				eff.Then(
					eff.Batch(acks),
					eff.Suspend(func(ex eff.Executor, k func(eff.Result[string, eff.Unit])) {
						log.Info("all messages acknowledged", slog.Int("count", N))
						k(eff.Ok[string](eff.UnitValue))
					}),
				),
			)
		})
	}
}
