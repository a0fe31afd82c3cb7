package main

import (
	"time"

	"github.com/scrama/croncon/internal/pp"
)

const countdownUnit = time.Second

// printCountdown tells how far away an upcoming occurrence is.
func printCountdown(ppfmt pp.PP, now, target time.Time) {
	gap := target.Sub(now)
	if gap < countdownUnit {
		ppfmt.Infof(pp.EmojiNow, "due now . . .")
		return
	}
	ppfmt.Infof(pp.EmojiNow, "in about %v", gap.Round(countdownUnit))
}
