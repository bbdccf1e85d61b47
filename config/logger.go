package config

import (
	"github.com/MonkyMars/gecho"
)

var logger gecho.Logger

// InitializeLogger builds the process-wide logger. The level tracks the
// environment (debug outside production) and the caller is reported so
// service logs point at the call site.
func InitializeLogger() *gecho.Logger {
	logger = *gecho.NewLogger(gecho.NewConfig(
		gecho.WithShowCaller(true),
		gecho.WithLogLevel(gecho.ParseLogLevel(GetLogLevel())),
	))
	return &logger
}

func GetLogger() *gecho.Logger {
	return &logger
}
