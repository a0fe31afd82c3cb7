// Package main is the entry point of the croncon schedule previewer.
package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/pflag"

	"github.com/scrama/croncon/internal/config"
	"github.com/scrama/croncon/internal/cron"
	"github.com/scrama/croncon/internal/pp"
)

// Version is the version shown in the output. It is overwritten by the
// linker argument -X main.Version=version.
var Version string //nolint:gochecknoglobals

func formatName() string {
	if Version == "" {
		return "croncon"
	}
	return fmt.Sprintf("croncon (%s)", Version)
}

type options struct {
	count int
	start string
	end   string
	file  string
	quiet bool
}

func newFlagSet(opts *options) *pflag.FlagSet {
	flagSet := pflag.NewFlagSet("croncon", pflag.ContinueOnError)
	flagSet.IntVarP(&opts.count, "count", "n", 10, "occurrences to print per schedule")
	flagSet.StringVar(&opts.start, "start", "", "RFC 3339 instant to search from (default: now)")
	flagSet.StringVar(&opts.end, "end", "", "RFC 3339 exclusive upper bound of the search (default: none)")
	flagSet.StringVarP(&opts.file, "file", "f", "", "YAML schedule file to preview")
	flagSet.BoolVarP(&opts.quiet, "quiet", "q", false, "only print occurrences and errors")
	return flagSet
}

// parseOptions reads the command line; the non-flag arguments joined together
// form the cron expression, so the expression does not have to be quoted.
func parseOptions(ppfmt pp.PP, args []string) (options, string, bool) {
	var opts options
	flagSet := newFlagSet(&opts)
	if err := flagSet.Parse(args); err != nil {
		if err != pflag.ErrHelp {
			ppfmt.Noticef(pp.EmojiUserError, "%v", err)
		}
		ppfmt.Noticef(pp.EmojiBullet, "Usage: croncon [flags] [expression]\n%s", flagSet.FlagUsages())
		return opts, "", false
	}

	return opts, strings.Join(flagSet.Args(), " "), true
}

// parseInstant reads an optional RFC 3339 flag value, falling back to def.
func parseInstant(ppfmt pp.PP, name, val string, def time.Time) (time.Time, bool) {
	if val == "" {
		return def, true
	}

	t, err := time.Parse(time.RFC3339, val)
	if err != nil {
		ppfmt.Noticef(pp.EmojiUserError, "--%s (%q) is not an RFC 3339 instant: %v", name, val, err)
		return time.Time{}, false
	}
	return t, true
}

// preview prints the next occurrences of one schedule, feeding every result
// back as the next search floor. When now is nonzero, the first occurrence
// also gets a countdown relative to it.
func preview(ppfmt pp.PP, entry config.Entry, start, end time.Time, count int, now time.Time) bool {
	ppfmt.Infof(pp.EmojiCalendar, "%s", entry.Name)
	inner := ppfmt.Indent()

	current := start
	for i := 0; i < count; i++ {
		next, err := cron.NextFire(entry.Expression, current, end)
		if err != nil {
			inner.Noticef(pp.EmojiUserError, "%q is not a cron expression: %v", entry.Expression, err)
			return false
		}
		if next.Equal(end) {
			inner.Noticef(pp.EmojiNever, "No further occurrence")
			break
		}

		inner.Noticef(pp.EmojiAlarm, "%s (%s)", next.Format("2006-01-02 15:04:05"), next.Weekday())
		if i == 0 && !now.IsZero() {
			printCountdown(inner.Indent(), now, next)
		}
		current = next
	}

	return true
}

func realMain() int {
	ppfmt := pp.New(os.Stdout)
	if !config.ReadEmoji("EMOJI", &ppfmt) || !config.ReadQuiet("QUIET", &ppfmt) {
		ppfmt.Noticef(pp.EmojiBye, "Bye!")
		return 1
	}

	opts, expression, ok := parseOptions(ppfmt, os.Args[1:])
	if !ok {
		return 1
	}
	if opts.quiet {
		ppfmt = ppfmt.SetVerbosity(pp.Quiet)
	}
	ppfmt.Infof(pp.EmojiStar, "%s", formatName())

	var entries []config.Entry
	if opts.file != "" {
		fileEntries, ok := config.ReadScheduleFile(ppfmt, opts.file)
		if !ok {
			return 1
		}
		entries = fileEntries
	}
	if expression != "" {
		entries = append(entries, config.Entry{Name: expression, Expression: expression})
	}
	if len(entries) == 0 {
		ppfmt.Noticef(pp.EmojiUserError, "No schedule given; pass an expression or --file")
		return 1
	}

	now := time.Now()
	start, ok := parseInstant(ppfmt, "start", opts.start, now)
	if !ok {
		return 1
	}
	end, ok := parseInstant(ppfmt, "end", opts.end, cron.EndOfTime)
	if !ok {
		return 1
	}
	if opts.start != "" {
		now = time.Time{} // countdowns only make sense from the present
	}

	for _, entry := range entries {
		if !preview(ppfmt, entry, start, end, opts.count, now) {
			return 1
		}
	}
	return 0
}

func main() {
	os.Exit(realMain())
}
