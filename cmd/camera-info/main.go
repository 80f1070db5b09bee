package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"picamrec/internal/camera"
	"picamrec/internal/config"
	"picamrec/internal/video"
)

func main() {
	var sizeKey string
	var fps int

	flag.StringVar(&sizeKey, "size", "hd", "Record size (hd, qhd)")
	flag.IntVar(&fps, "fps", 30, "Target frame rate")
	flag.Parse()

	record, ok := config.RecordSize(sizeKey)
	if !ok {
		fmt.Printf("Error: unknown record size %q\n", sizeKey)
		os.Exit(1)
	}
	if fps <= 0 {
		fmt.Println("Error: fps must be positive")
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Error: unable to load config: %v\n", err)
	}

	sensor, err := camera.QuerySensorSize(context.Background())
	if err != nil {
		fmt.Printf("Sensor: unknown (%v), assuming %s\n", err, config.DefaultSensorSize)
		sensor = config.DefaultSensorSize
	} else {
		fmt.Printf("Sensor: %s\n", sensor)
	}

	geometry := config.NewGeometry(record, sensor, fps, cfg.PreviewMaxWidth)
	fmt.Printf("Capture: %s\n", geometry.Capture)
	fmt.Printf("Record: %s\n", geometry.Record)
	fmt.Printf("Preview: %s\n", geometry.Preview)
	fmt.Printf("Frame duration: %dus\n", geometry.FrameDurationUs)
	fmt.Printf("Pipeline: %s\n", video.Pipeline(cfg.CameraSource, record, fps))
}
