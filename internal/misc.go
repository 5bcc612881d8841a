package internal

import (
	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/ssh/terminal"
	"os"
)

// SetupLogging sends the logs to stderr, leaving stdout to the command output.
func SetupLogging(level log.Level) {
	log.SetLevel(level)
	log.SetOutput(os.Stderr)

	if !terminal.IsTerminal(int(os.Stderr.Fd())) {
		log.SetFormatter(&log.JSONFormatter{DisableHTMLEscape: true})
	}
}
