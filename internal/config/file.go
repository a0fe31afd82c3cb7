package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/scrama/croncon/internal/cron"
	"github.com/scrama/croncon/internal/pp"
)

// Entry is one named schedule in a schedule file.
type Entry struct {
	Name       string `yaml:"name"`
	Expression string `yaml:"expression"`
}

type scheduleFile struct {
	Schedules []Entry `yaml:"schedules"`
}

// ReadScheduleFile reads a YAML schedule file and validates every expression
// in it. An entry without a name is named after its expression.
//
//	schedules:
//	  - name: backup
//	    expression: "0 3 * * *"
func ReadScheduleFile(ppfmt pp.PP, path string) ([]Entry, bool) {
	raw, err := os.ReadFile(path)
	if err != nil {
		ppfmt.Noticef(pp.EmojiUserError, "Failed to read %q: %v", path, err)
		return nil, false
	}

	var file scheduleFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		ppfmt.Noticef(pp.EmojiUserError, "Failed to parse %q: %v", path, err)
		return nil, false
	}
	if len(file.Schedules) == 0 {
		ppfmt.Noticef(pp.EmojiUserError, "%q contains no schedules", path)
		return nil, false
	}

	for i, entry := range file.Schedules {
		if _, err := cron.Parse(entry.Expression); err != nil {
			ppfmt.Noticef(pp.EmojiUserError, "Schedule %q in %q is not a cron expression: %v",
				entry.Name, path, err)
			return nil, false
		}
		if entry.Name == "" {
			file.Schedules[i].Name = entry.Expression
		}
	}

	return file.Schedules, true
}
