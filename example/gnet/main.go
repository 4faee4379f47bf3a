// FILE: example/gnet/main.go
package main

import (
	"github.com/panjf2000/gnet/v2"

	"github.com/lixenwraith/disklog"
	"github.com/lixenwraith/disklog/compat"
)

// Example gnet event handler
type echoServer struct {
	gnet.BuiltinEventEngine
	sink *disklog.Sink
}

func (es *echoServer) OnTraffic(c gnet.Conn) gnet.Action {
	buf, _ := c.Next(-1)
	_ = es.sink.Debug("echo", c.RemoteAddr(), len(buf))
	c.Write(buf)
	return gnet.None
}

func main() {
	cfg := disklog.DefaultConfig()
	err := cfg.ApplyOverride(
		"directory=/var/log/gnet",
		"name=gnet",
		"level=debug",
	)
	if err != nil {
		panic(err)
	}

	sink, err := disklog.New(cfg)
	if err != nil {
		panic(err)
	}
	defer sink.Shutdown()

	gnetAdapter := compat.NewGnetAdapter(sink)

	err = gnet.Run(
		&echoServer{sink: sink},
		"tcp://127.0.0.1:9000",
		gnet.WithMulticore(true),
		gnet.WithLogger(gnetAdapter),
		gnet.WithReusePort(true),
	)
	if err != nil {
		panic(err)
	}
}
