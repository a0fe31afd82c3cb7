package pp

import (
	"fmt"
	"io"
	"strings"
)

type formatter struct {
	writer    io.Writer
	emoji     bool
	indent    int
	verbosity Verbosity
}

// New creates a new pretty printer writing to writer.
func New(writer io.Writer) PP {
	return formatter{
		writer:    writer,
		emoji:     true,
		indent:    0,
		verbosity: DefaultVerbosity,
	}
}

// SetEmoji sets whether emojis should be printed.
func (f formatter) SetEmoji(emoji bool) PP {
	f.emoji = emoji
	return f
}

// SetVerbosity sets messages of what verbosity levels should be printed.
func (f formatter) SetVerbosity(v Verbosity) PP {
	f.verbosity = v
	return f
}

// IsShowing checks whether a message of verbosity level v will be printed.
func (f formatter) IsShowing(v Verbosity) bool {
	return v >= f.verbosity
}

// Indent returns a new printer that indents the messages more than the input printer.
func (f formatter) Indent() PP {
	f.indent++
	return f
}

func (f formatter) printf(v Verbosity, emoji Emoji, format string, args ...any) {
	if v < f.verbosity {
		return
	}

	line := strings.Repeat(indentPrefix, f.indent)
	if f.emoji {
		line += string(emoji) + " "
	}
	line += strings.TrimSuffix(fmt.Sprintf(format, args...), "\n")
	fmt.Fprintln(f.writer, line)
}

// Infof formats and sends a message at the level [Info].
func (f formatter) Infof(emoji Emoji, format string, args ...any) {
	f.printf(Info, emoji, format, args...)
}

// Noticef formats and sends a message at the level [Notice].
func (f formatter) Noticef(emoji Emoji, format string, args ...any) {
	f.printf(Notice, emoji, format, args...)
}
