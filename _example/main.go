package main

import (
	"fmt"
	"log"
	"time"

	"github.com/itanoss/utid"
)

func main() {
	size := 1_000_000

	metrics := &utid.BasicMetricsCollector{}

	composer, err := utid.Compose().
		Timestamp(41, utid.Milliseconds, utid.TwitterEpoch).
		Constant(10, 42).
		Random(12).
		Metrics(metrics).
		Build()
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println("--- Generate ---")
	fmt.Println("Width:", composer.Width())
	fmt.Println("Size:", size)

	start := time.Now()

	var last utid.ID
	for i := 0; i < size; i++ {
		id, err := composer.Generate()
		if err != nil {
			log.Fatal(err)
		}
		last = id
	}

	end := time.Since(start)

	fmt.Printf("Seconds: %.2f\n", end.Seconds())

	stats := metrics.GetStats()
	fmt.Printf("Generated: %d, Avg latency: %dns\n\n", stats.GenerateCount, stats.GenerateAvgNanos)

	fmt.Println("--- Decompose ---")
	fmt.Println("ID:", last)
	fmt.Println("Hex:", last.Hex())

	values, err := composer.Decompose(last)
	if err != nil {
		log.Fatal(err)
	}

	for i, v := range values {
		if !v.Instant.IsZero() {
			fmt.Printf("Segment %d: %s\n", i, v.Instant.UTC().Format(time.RFC3339Nano))
			continue
		}
		fmt.Printf("Segment %d: %d\n", i, v.Uint64())
	}

	fmt.Println()
	fmt.Println("--- Presets ---")

	for _, preset := range []struct {
		name     string
		segments []utid.Segment
	}{
		{"snowflake", utid.SnowflakeLayout(42)},
		{"sonyflake", utid.SonyflakeLayout(42)},
		{"ulid", utid.ULIDLayout()},
		{"uuidv7", utid.UUIDv7Layout()},
	} {
		c, err := utid.New(preset.segments)
		if err != nil {
			log.Fatal(err)
		}

		id, err := c.Generate()
		if err != nil {
			log.Fatal(err)
		}

		if preset.name == "uuidv7" {
			fmt.Printf("%-10s %s\n", preset.name, id.UUID())
			continue
		}
		fmt.Printf("%-10s %s\n", preset.name, id)
	}
}
