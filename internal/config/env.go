// Package config reads the CLI's configuration: environment toggles and
// optional schedule files.
package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/scrama/croncon/internal/pp"
)

// Getenv reads an environment variable and trims the space around it.
func Getenv(key string) string {
	return strings.TrimSpace(os.Getenv(key))
}

// ReadEmoji reads an environment variable as emoji/no-emoji.
func ReadEmoji(key string, ppfmt *pp.PP) bool {
	val := Getenv(key)
	if val == "" {
		return true
	}

	emoji, err := strconv.ParseBool(val)
	if err != nil {
		(*ppfmt).Noticef(pp.EmojiUserError, "%s (%q) is not a boolean: %v", key, val, err)
		return false
	}

	*ppfmt = (*ppfmt).SetEmoji(emoji)
	return true
}

// ReadQuiet reads an environment variable as quiet/verbose.
func ReadQuiet(key string, ppfmt *pp.PP) bool {
	val := Getenv(key)
	if val == "" {
		return true
	}

	quiet, err := strconv.ParseBool(val)
	if err != nil {
		(*ppfmt).Noticef(pp.EmojiUserError, "%s (%q) is not a boolean: %v", key, val, err)
		return false
	}

	if quiet {
		*ppfmt = (*ppfmt).SetVerbosity(pp.Quiet)
	} else {
		*ppfmt = (*ppfmt).SetVerbosity(pp.Verbose)
	}
	return true
}
