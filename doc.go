// Package ringlog is an in-process logging engine built around a
// bounded ring buffer. Producer goroutines encode leveled, categorized
// records and hand them to a single writer task that performs all file
// and console I/O, so logging calls never block on the disk. A full
// ring drops the newest record rather than stalling the producer;
// bounded, predictable producer latency is the central design
// trade-off, and it is preferred over lossless delivery under
// sustained overload.
//
// The file sink rotates to <base>.<YYYYMMDD_HHMMSS> when a size
// threshold is crossed; rotated files are never deleted by the engine.
//
//	cfg := ringlog.DefaultConfig()
//	cfg.FilePath = "/var/log/app.log"
//	cfg.MaxFileBytes = 10 << 20
//	if err := ringlog.Init(cfg); err != nil {
//		// handle startup failure
//	}
//	defer ringlog.Shutdown()
//
//	ringlog.Info("HTTP", "Request from %s", addr)
//
// Logging calls made before Init or after Shutdown are silent no-ops
// by contract: the engine must never be able to crash its host.
package ringlog
