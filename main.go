package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"picamrec/internal/camera"
	"picamrec/internal/config"
	"picamrec/internal/output"
	"picamrec/internal/record"
)

func usage(w io.Writer, prog string) {
	fmt.Fprintf(w, "Usage: %s <duration_ms> <fps> <hd|qhd> <on|off>\n", prog)
}

func main() {
	os.Exit(run(os.Args[0], os.Args[1:]))
}

func run(prog string, args []string) int {
	cfg, err := config.Load()
	if err != nil {
		log.Printf("[CRITICAL] %v", err)
		return 1
	}
	cleanup, err := config.ConfigureLogging(cfg)
	if err != nil {
		log.Printf("[CRITICAL] %v", err)
		return 1
	}
	defer cleanup()

	opts, err := config.ParseArgs(args)
	if err != nil {
		if errors.Is(err, config.ErrUsage) {
			usage(os.Stderr, prog)
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		return 1
	}

	printSettings(os.Stdout, opts, cfg)

	if err := output.EnsureDir(cfg.OutputDir); err != nil {
		log.Printf("[ERROR] %v", err)
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sensor, err := camera.SensorSizeOrDefault(ctx)
	if err != nil {
		log.Printf("[WARNING] sensor size unknown, assuming %s: %v", sensor, err)
	}
	geometry := config.NewGeometry(opts.RecordSize, sensor, opts.FPS, cfg.PreviewMaxWidth)
	log.Printf("[DEBUG] sensor %s, capture %s, frame duration %dus", sensor, geometry.Capture, geometry.FrameDurationUs)

	recorder := record.NewRecorder(opts, cfg, geometry)
	report, err := recorder.Run(ctx)
	if err != nil {
		log.Printf("[CRITICAL] recording failed: %v", err)
	}
	log.Printf("[INFO] %s", report)
	log.Printf("[INFO] program finished")

	return 0
}

func printSettings(w io.Writer, opts config.Options, cfg *config.Config) {
	previewState := "disabled"
	if opts.PreviewOn {
		previewState = "enabled"
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "--- Recording settings ---")
	fmt.Fprintf(w, "  Duration: %.1fs (%dms)\n", opts.Duration().Seconds(), opts.DurationMs)
	fmt.Fprintf(w, "  Frame rate: %d fps\n", opts.FPS)
	fmt.Fprintf(w, "  Size: %s (%s)\n", strings.ToUpper(opts.SizeKey), opts.RecordSize)
	fmt.Fprintf(w, "  Preview width: %dpx\n", config.PreviewWidth(opts.RecordSize, cfg.PreviewMaxWidth))
	fmt.Fprintf(w, "  Preview: %s\n", previewState)
	if opts.PreviewOn {
		fmt.Fprintln(w, "  Keys: 'p' all previews, '1' normal, '2' grid, 'q' quit")
	}
	fmt.Fprintln(w, "  Stop safely with Ctrl+C")
	fmt.Fprintf(w, "  Output base: %s\n", cfg.OutputDir)
	fmt.Fprintln(w, "--------------------------")
	fmt.Fprintln(w)
}
