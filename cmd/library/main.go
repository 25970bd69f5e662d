package main

import (
	"time"

	"github.com/edmarfarias/library-api/app"
	"github.com/edmarfarias/library-api/config"
	"github.com/joho/godotenv"
	"go.uber.org/zap/zapcore"
)

func main() {
	_ = godotenv.Load()
	cfg := config.NewConfig(
		config.WithLogLevel(zapcore.DebugLevel),
		config.WithWriteTimeout(time.Minute),
	)

	app.Run(cfg)
}
