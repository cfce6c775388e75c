package main

import (
	"github.com/panjf2000/gnet/v2"

	"github.com/jjansson/ringlog"
	"github.com/jjansson/ringlog/compat"
)

// Example gnet event handler
type echoServer struct {
	gnet.BuiltinEventEngine

	logger *ringlog.Logger
}

func (es *echoServer) OnOpen(c gnet.Conn) ([]byte, gnet.Action) {
	es.logger.Info("ECHO", "connection from %s", c.RemoteAddr())
	return nil, gnet.None
}

func (es *echoServer) OnTraffic(c gnet.Conn) gnet.Action {
	buf, _ := c.Next(-1)
	es.logger.Debug("ECHO", "echoing %d bytes to %s", len(buf), c.RemoteAddr())
	c.Write(buf)
	return gnet.None
}

func main() {
	logger, err := ringlog.NewBuilder().
		FilePath("/var/log/gnet/echo.log").
		Level(ringlog.LevelDebug).
		EnableConsole(true).
		ConsoleColor(true).
		Build()
	if err != nil {
		panic(err)
	}
	defer logger.Shutdown()

	gnetAdapter := compat.NewGnetAdapter(logger)

	// gnet's own engine messages and the handler's records end up in
	// the same files, tagged by category.
	err = gnet.Run(
		&echoServer{logger: logger},
		"tcp://127.0.0.1:9000",
		gnet.WithMulticore(true),
		gnet.WithLogger(gnetAdapter),
		gnet.WithReusePort(true),
	)
	if err != nil {
		panic(err)
	}
}
