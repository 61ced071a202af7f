// internal/config/options.go
package config

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// Options holds the settings that can change between runs.
type Options struct {
	MineCount int
	Seed      int64
	LogLevel  string
	StartMenu bool
	PprofAddr string
}

// DefaultOptions returns the settings used when no flags are given.
func DefaultOptions() Options {
	return Options{
		MineCount: DefaultMineCount,
		LogLevel:  "info",
	}
}

// ClampMineCount keeps n inside [0, MaxMineCount].
func ClampMineCount(n int) int {
	if n < 0 {
		return 0
	}
	if n > MaxMineCount {
		return MaxMineCount
	}
	return n
}

// Validate clamps the mine count and parses the log level.
func (o *Options) Validate() (logrus.Level, error) {
	o.MineCount = ClampMineCount(o.MineCount)
	level, err := logrus.ParseLevel(o.LogLevel)
	if err != nil {
		return logrus.InfoLevel, fmt.Errorf("invalid log level %q: %w", o.LogLevel, err)
	}
	return level, nil
}
