// Command swalign prints the best local alignment of two sequences.
//
//	swalign [flags] QUERY TARGET
//	swalign -bench 10ms [-engine simd]
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"os"
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/segmentio/asm/ascii"

	"github.com/mhr3/swalign/sw"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("swalign", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		engineName  = fs.String("engine", "auto", "alignment engine: scalar, blocked, wavefront, simd, lowmem or auto")
		threads     = fs.Int("threads", runtime.GOMAXPROCS(0), "worker goroutines for the wavefront engine")
		gap         = fs.Int("gap", 1, "gap penalty")
		match       = fs.Int("match", 2, "match reward")
		miss        = fs.Int("miss", 1, "mismatch penalty")
		matrix      = fs.Bool("matrix", false, "also print the score matrix")
		asJSON      = fs.Bool("json", false, "print the result as JSON")
		bench       = fs.Duration("bench", 0, "benchmark cell updates per second, growing inputs until one alignment takes this long")
		metricsAddr = fs.String("metrics-addr", "", "serve Prometheus metrics on this address while running")
		verbose     = fs.Bool("v", false, "debug logging")
	)
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "usage: swalign [flags] QUERY TARGET")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	sw.SetLogger(log)
	defer sw.SetLogger(nil)

	eng, err := newEngine(*engineName, *threads)
	if err != nil {
		log.Error("bad flags", "err", err)
		return 2
	}
	scores := sw.Scores{Gap: *gap, Match: *match, Miss: *miss}
	if err := scores.Validate(); err != nil {
		log.Error("bad flags", "err", err)
		return 2
	}
	log.Debug("engine selected", "engine", eng.Name(), "lanes", sw.LaneWidth(), "kernel", sw.LaneKernel())

	if *metricsAddr != "" {
		srv, err := serveMetrics(*metricsAddr, log)
		if err != nil {
			log.Error("metrics listener", "addr", *metricsAddr, "err", err)
			return 1
		}
		defer srv.Close()
	}

	ctx := context.Background()
	if *bench > 0 {
		cups, err := benchmark(ctx, eng, *bench, 4, 2, benchCells)
		if err != nil {
			log.Error("benchmark failed", "err", err)
			return 1
		}
		fmt.Fprintf(stdout, "%s: %.1f MCUPS\n", eng.Name(), cups/1e6)
		return 0
	}

	if fs.NArg() != 2 {
		fs.Usage()
		return 2
	}
	query, target := fs.Arg(0), fs.Arg(1)
	for _, in := range [...]struct{ name, seq string }{{"query", query}, {"target", target}} {
		if !ascii.ValidString(in.seq) {
			log.Warn("input is not ASCII, symbols are compared byte by byte", "input", in.name)
		}
	}

	res, err := sw.Run(ctx, eng, []byte(query), []byte(target), scores)
	if err != nil {
		log.Error("alignment failed", "err", err)
		return 1
	}
	if *asJSON {
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(res); err != nil {
			log.Error("write result", "err", err)
			return 1
		}
	} else {
		fmt.Fprint(stdout, res.String())
	}
	if *matrix {
		if err := sw.Dump(stdout, []byte(query), []byte(target), scores); err != nil {
			log.Error("write matrix", "err", err)
			return 1
		}
	}
	return 0
}

func newEngine(name string, threads int) (sw.Engine, error) {
	switch name {
	case "scalar":
		return sw.Scalar{}, nil
	case "blocked":
		return sw.Blocked{}, nil
	case "wavefront":
		return sw.Wavefront{Threads: threads}, nil
	case "simd":
		return sw.SIMD{}, nil
	case "lowmem":
		return sw.LowMemory{}, nil
	case "auto":
		return sw.Auto{}, nil
	}
	return nil, fmt.Errorf("unknown engine %q", name)
}

func serveMetrics(addr string, log *slog.Logger) (*http.Server, error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, err
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	srv := &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("metrics server", "err", err)
		}
	}()
	log.Info("serving metrics", "addr", ln.Addr().String())
	return srv, nil
}
