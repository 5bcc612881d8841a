package main

import (
	"context"
	"dnsimple-client/internal"
	"dnsimple-client/internal/cli"
	"errors"
	"github.com/Al2Klimov/FUeL.go"
	log "github.com/sirupsen/logrus"
	"os"
	"syscall"
)

func main() {
	internal.SetupLogging(log.InfoLevel)

	if err := run(); err != nil && !errors.Is(err, context.Canceled) {
		log.WithError(err).Fatal()
	}
}

func run() error {
	signalCtx, termSignal := fuel.SignalsToContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)

	err := cli.NewRootCommand().ExecuteContext(signalCtx)
	if errors.Is(err, context.Canceled) {
		logTermSig(termSignal)
	}

	return err
}

func logTermSig(termSignal <-chan os.Signal) {
	select {
	case sig := <-termSignal:
		if sig != nil {
			log.WithField("signal", sig).Info("terminating")
		}
	default:
	}
}
