package main

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/jjansson/ringlog"
)

const configFile = "simple_config.toml"

// Example TOML content
var tomlContent = `
# Example simple_config.toml
[ringlog]
  file_path = "./simple_logs/app.log"
  max_file_bytes = 1048576
  buffer_size = 1024
  level = "trace"
  enable_console = true
  console_color = true
  console_target = "stderr"
  flush_interval_ms = 100
`

func main() {
	fmt.Println("--- Simple Logger Example ---")

	if err := os.WriteFile(configFile, []byte(tomlContent), 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to write example config: %v\n", err)
		os.Exit(1)
	}
	if err := os.MkdirAll("./simple_logs", 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create log directory: %v\n", err)
		os.Exit(1)
	}

	cfg, err := ringlog.NewConfigFromFile(configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	if err := ringlog.Init(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("Logger initialized.")

	ringlog.Info("MAIN", "Application starting, pid %d", os.Getpid())
	ringlog.Debug("MAIN", "Loaded config from %s", configFile)
	ringlog.Warn("MAIN", "Disk usage at %d%%", 83)
	ringlog.Error("MAIN", "Simulated failure: %v", os.ErrPermission)

	// Logging from worker goroutines, each with its own category.
	var wg sync.WaitGroup
	for i := 1; i <= 2; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			cat := fmt.Sprintf("TH-%d", id)
			ringlog.Info(cat, "Worker started")
			for j := 1; j <= 3; j++ {
				ringlog.Debug(cat, "Step %d of 3", j)
				time.Sleep(20 * time.Millisecond)
			}
			sub := fmt.Sprintf("SUB-%d", id)
			ringlog.Trace(sub, "Nested task complete")
			ringlog.Info(cat, "Worker finished")
		}(i)
	}
	wg.Wait()

	if err := ringlog.Flush(time.Second); err != nil {
		fmt.Fprintf(os.Stderr, "Flush failed: %v\n", err)
	}

	stats := ringlog.GetStats()
	ringlog.Info("MAIN", "Processed %d records, dropped %d", stats.Processed, stats.Dropped)

	fmt.Println("Shutting down logger...")
	if err := ringlog.Shutdown(); err != nil {
		fmt.Fprintf(os.Stderr, "Logger shutdown error: %v\n", err)
	}

	fmt.Println("--- Example Finished ---")
	fmt.Println("Check log files in './simple_logs'.")
}
