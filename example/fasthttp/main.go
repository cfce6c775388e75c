package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/valyala/fasthttp"

	"github.com/jjansson/ringlog"
	"github.com/jjansson/ringlog/compat"
)

var logger *ringlog.Logger

func main() {
	var err error
	logger, err = ringlog.NewBuilder().
		FilePath("/var/log/fasthttp/server.log").
		MaxFileBytes(16 << 20).
		BufferSize(2048).
		Build()
	if err != nil {
		panic(err)
	}
	defer logger.Shutdown()

	// fasthttp only exposes Printf, so the adapter classifies messages.
	fasthttpAdapter := compat.NewFastHTTPAdapter(
		logger,
		compat.WithDefaultLevel(ringlog.LevelInfo),
		compat.WithLevelDetector(customLevelDetector),
	)

	server := &fasthttp.Server{
		Handler: requestHandler,
		Logger:  fasthttpAdapter,

		Name:              "ringlog-example",
		Concurrency:       fasthttp.DefaultConcurrency,
		ReadTimeout:       5 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       120 * time.Second,
		TCPKeepalive:      true,
		ReduceMemoryUsage: true,
	}

	fmt.Println("Starting server on :8080")
	if err := server.ListenAndServe(":8080"); err != nil {
		panic(err)
	}
}

func requestHandler(ctx *fasthttp.RequestCtx) {
	logger.Info("HTTP", "%s %s from %s", ctx.Method(), ctx.Path(), ctx.RemoteAddr())
	ctx.SetContentType("text/plain")
	fmt.Fprintf(ctx, "Hello, world! Path: %s\n", ctx.Path())
}

func customLevelDetector(msg string) (ringlog.Level, bool) {
	if strings.Contains(msg, "connection cannot be served") {
		return ringlog.LevelWarn, true
	}
	if strings.Contains(msg, "error when serving connection") {
		return ringlog.LevelError, true
	}
	return compat.DetectLogLevel(msg)
}
