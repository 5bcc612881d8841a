package main

import (
	"dnsimple-client/internal"
	log "github.com/sirupsen/logrus"
	"os"
	"syscall"
)

const (
	exe    = "/dnsimple-client"
	config = "/dnsimple-client.yml"
	state  = "/data/dnsimple-client.json"
)

func main() {
	internal.SetupLogging(log.InfoLevel)

	if err := run(); err != nil {
		log.WithError(err).Fatal()
	}
}

func run() error {
	if err := os.WriteFile(config, []byte(os.Getenv("DNSIMPLE_CLIENT_CONFIG")), 0600); err != nil {
		return err
	}

	args := append([]string{exe, "--config", config, "--state-file", state}, os.Args[1:]...)
	return syscall.Exec(exe, args, os.Environ())
}
