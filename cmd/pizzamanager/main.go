package main

import (
	"context"
	"errors"
	"io/fs"

	"github.com/joho/godotenv"
	"go.llib.dev/frameless/pkg/cli"
	"go.llib.dev/frameless/pkg/logger"
	"go.llib.dev/frameless/pkg/logging"

	"pizzamanager/adapter/console"
)

func main() {
	ctx := logging.ContextWith(context.Background(), logging.Field("app", "pizzamanager"))
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		logger.Warn(ctx, "failed to load .env file", logging.ErrField(err))
	}
	cli.Main(ctx, console.Command{})
}
