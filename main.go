package main

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/irydacea/wescoco/config"
	"github.com/irydacea/wescoco/processor"
	"github.com/irydacea/wescoco/sources"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid arguments: %v", err)
	}

	// An interrupt means the user is done watching; quit without fuss.
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-c
		os.Exit(0)
	}()

	if cfg.MetricsPort > 0 {
		go serveMetrics(cfg.MetricsPort)
	}

	proc := processor.New(os.Stderr, cfg.Color)

	for _, src := range buildSources(cfg) {
		if cfg.Verbose {
			log.Printf("Reading from %s", src.Name())
		}
		if err := run(src, proc); err != nil {
			log.Printf("Error reading from %s: %v", src.Name(), err)
		}
	}
}

func buildSources(cfg *config.Config) []sources.LogSource {
	if cfg.Command != "" {
		parts := strings.Fields(cfg.Command)
		return []sources.LogSource{sources.NewCommandSource(parts[0], parts[1:]...)}
	}

	if len(cfg.Files) > 0 {
		srcs := make([]sources.LogSource, 0, len(cfg.Files))
		for _, path := range cfg.Files {
			srcs = append(srcs, sources.NewFileSource(path, cfg.Follow))
		}
		return srcs
	}

	return []sources.LogSource{sources.NewStdinSource()}
}

// run feeds every line of the source through the processor. Lines keep
// their terminator so unclassified input can pass through byte for byte.
func run(src sources.LogSource, proc *processor.Processor) error {
	reader, err := src.Stream()
	if err != nil {
		return err
	}
	defer src.Close()

	br := bufio.NewReader(reader)
	for {
		line, err := br.ReadString('\n')
		if line != "" {
			proc.ProcessLine(line)
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func serveMetrics(port int) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	addr := fmt.Sprintf(":%d", port)
	if err := http.ListenAndServe(addr, mux); err != nil {
		log.Printf("Metrics server error: %v", err)
	}
}
