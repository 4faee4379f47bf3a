// FILE: lixenwraith/disklog/constant.go
package disklog

import (
	"os"
	"time"
)

// Log level constants
const (
	LevelDebug int64 = -4
	LevelInfo  int64 = 0
	LevelWarn  int64 = 4
	LevelError int64 = 8
)

// Size accounting units for the rotation counter
const (
	SizeUnitBytes = "bytes" // Encoded UTF-8 length of the content
	SizeUnitChars = "chars" // Rune count of the content
)

// Storage
const (
	// Permissions for created log files and directories
	logFileMode os.FileMode = 0644
	logDirMode  os.FileMode = 0755
	// Size multiplier for KB
	sizeMultiplier = 1024
)

// Timers
const (
	// Minimum wait time used throughout the package
	minWaitTime = 10 * time.Millisecond
	// Shutdown wait when no timeout is given
	defaultShutdownTimeout = 2 * time.Second
)
