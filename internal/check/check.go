// Package check implements the --check flow: a getMe call that proves the
// bot credential works before any upload run.
package check

import (
	"github.com/backmassage/bookpost/internal/config"
	"github.com/backmassage/bookpost/internal/telegram"
)

// Logger is the minimal logging interface needed by RunCheck. Defined here
// (rather than importing the logging package) so that check stays
// dependency-light and testable with a mock logger.
type Logger interface {
	Info(string, ...interface{})
	Success(string, ...interface{})
	Warn(string, ...interface{})
	Error(string, ...interface{})
}

// RunCheck validates the configured credential against the Bot API and
// reports the bot identity. Returns false when the credential is unusable.
func RunCheck(cfg *config.Config, client *telegram.Client, log Logger) bool {
	log.Info("=== Credential check ===")

	me, err := client.GetMe()
	if err != nil {
		log.Error("getMe failed: %v", err)
		return false
	}

	log.Success("Bot: @%s (%s, id %d)", me.Username, me.FirstName, me.ID)
	if cfg.ChannelID != "" {
		log.Info("Target channel: %s", cfg.ChannelID)
	} else {
		log.Warn("CHANNEL_ID is not set")
	}
	return true
}
