// FILE: example/sink/main.go
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/lixenwraith/disklog"
)

func main() {
	dir, err := os.MkdirTemp("", "disklog-example")
	if err != nil {
		panic(err)
	}
	defer os.RemoveAll(dir)

	// A 10 byte threshold rotates after nearly every record
	sink, err := disklog.NewBuilder().
		Directory(dir).
		MaxFileSizeBytes(10).
		Build()
	if err != nil {
		panic(err)
	}

	for _, msg := range []string{"hello\n", "world!\n", "next\n"} {
		if err := sink.Submit(disklog.LevelInfo, "example", msg); err != nil {
			panic(err)
		}
	}

	// Formatted records through the helpers
	_ = sink.Info("example", "formatted", 42, time.Second)

	if err := sink.Shutdown(); err != nil {
		panic(err)
	}

	files, _ := filepath.Glob(filepath.Join(dir, "logs_*.csv"))
	for _, f := range files {
		data, _ := os.ReadFile(f)
		fmt.Printf("%s: %q\n", filepath.Base(f), data)
	}
	fmt.Printf("%+v\n", sink.Stats())
}
