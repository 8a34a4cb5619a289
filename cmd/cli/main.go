package main

import (
	"io"
	"log"
	"os"

	"go.uber.org/zap"

	"github.com/cubny/rideshare"
	"github.com/cubny/rideshare/internal/config"
	"github.com/cubny/rideshare/internal/logger"
	"github.com/cubny/rideshare/internal/sample"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %s\n", err)
	}

	appLogger, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("logger: %s\n", err)
	}
	defer func() {
		_ = appLogger.Sync()
	}()

	if err := run(os.Stdout, appLogger); err != nil {
		appLogger.Fatal("run", zap.Error(err))
	}
}

// run builds the sample session and writes its report to out
func run(out io.Writer, appLogger *zap.Logger) error {
	rides, err := sample.Rides()
	if err != nil {
		return err
	}

	system := rideshare.NewSystem(appLogger)
	for _, ride := range rides {
		if err := system.AddRide(ride); err != nil {
			return err
		}
	}

	return system.Run(out, sample.Driver(), sample.Rider())
}
