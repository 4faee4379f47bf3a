// FILE: example/fasthttp/main.go
package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/valyala/fasthttp"

	"github.com/lixenwraith/disklog"
	"github.com/lixenwraith/disklog/compat"
)

func main() {
	sink, err := disklog.NewBuilder().
		Directory("/var/log/fasthttp").
		Name("access").
		Format("txt").
		Extension("log").
		LevelString("info").
		BufferSize(2048).
		Build()
	if err != nil {
		panic(err)
	}
	defer sink.Shutdown()

	fasthttpAdapter := compat.NewFastHTTPAdapter(
		sink,
		compat.WithDefaultLevel(disklog.LevelInfo),
		compat.WithLevelDetector(customLevelDetector),
	)

	server := &fasthttp.Server{
		Handler: func(ctx *fasthttp.RequestCtx) {
			ctx.SetContentType("text/plain")
			fmt.Fprintf(ctx, "Hello, world! Path: %s\n", ctx.Path())
			_ = sink.Info("http", string(ctx.Method()), string(ctx.Path()), ctx.RemoteIP())
		},
		Logger: fasthttpAdapter,

		Name:         "disklog-example",
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	fmt.Println("Starting server on :8080")
	if err := server.ListenAndServe(":8080"); err != nil {
		panic(err)
	}
}

func customLevelDetector(msg string) int64 {
	if strings.Contains(msg, "connection cannot be served") {
		return disklog.LevelWarn
	}
	if strings.Contains(msg, "error when serving connection") {
		return disklog.LevelError
	}
	return compat.DetectLogLevel(msg)
}
