package main

import (
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"strings"
	"sync"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/jjansson/ringlog"
)

const (
	numWorkers   = 8
	totalBursts  = 100
	logsPerBurst = 500
	maxMsgSize   = 800
)

var attempted atomic.Uint64

func generateRandomMessage(size int) string {
	const chars = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789 "
	var sb strings.Builder
	sb.Grow(size)
	for i := 0; i < size; i++ {
		sb.WriteByte(chars[rand.Intn(len(chars))])
	}
	return sb.String()
}

func worker(logger *ringlog.Logger, id int, bursts <-chan int, wg *sync.WaitGroup) {
	defer wg.Done()
	cat := fmt.Sprintf("W%02d", id)

	for burst := range bursts {
		for i := 0; i < logsPerBurst; i++ {
			msg := generateRandomMessage(rand.Intn(maxMsgSize) + 1)
			attempted.Add(1)
			switch rand.Intn(4) {
			case 0:
				logger.Debug(cat, "burst %d seq %d: %s", burst, i, msg)
			case 1:
				logger.Info(cat, "burst %d seq %d: %s", burst, i, msg)
			case 2:
				logger.Warn(cat, "burst %d seq %d: %s", burst, i, msg)
			default:
				logger.Error(cat, "burst %d seq %d: %s", burst, i, msg)
			}
		}
		time.Sleep(time.Duration(rand.Intn(10)) * time.Millisecond)
	}
}

func main() {
	fmt.Println("--- Logger Stress Test ---")

	if err := os.MkdirAll("./stress_logs", 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create log directory: %v\n", err)
		os.Exit(1)
	}

	logger, err := ringlog.NewBuilder().
		FilePath("./stress_logs/stress.log").
		MaxFileBytes(1 << 20). // 1MB, forces frequent rotation
		BufferSize(512).       // small ring, forces drops under load
		Level(ringlog.LevelDebug).
		FlushIntervalMs(50).
		Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	bursts := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < numWorkers; w++ {
		wg.Add(1)
		go worker(logger, w, bursts, &wg)
	}

	start := time.Now()
loop:
	for b := 0; b < totalBursts; b++ {
		select {
		case bursts <- b:
		case sig := <-sigCh:
			fmt.Printf("\nReceived %v, stopping early\n", sig)
			break loop
		}
	}
	close(bursts)
	wg.Wait()
	elapsed := time.Since(start)

	if err := logger.Shutdown(); err != nil {
		fmt.Fprintf(os.Stderr, "Logger shutdown error: %v\n", err)
	}

	stats := logger.Stats()
	total := attempted.Load()
	fmt.Printf("Attempted:  %d records in %v (%.0f/s)\n",
		total, elapsed.Round(time.Millisecond), float64(total)/elapsed.Seconds())
	fmt.Printf("Processed:  %d\n", stats.Processed)
	fmt.Printf("Dropped:    %d (%.2f%%)\n", stats.Dropped, 100*float64(stats.Dropped)/float64(total))
	fmt.Printf("FileDrops:  %d\n", stats.FileDrops)
	fmt.Printf("Rotations:  %d\n", stats.Rotations)
}
