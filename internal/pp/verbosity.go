package pp

// Verbosity is the type of message levels.
type Verbosity int

// Messages at a level below the printer's verbosity are dropped. Quiet mode
// keeps only notices (results and errors); verbose mode shows everything.
const (
	Info             Verbosity = iota // supplementary information
	Notice                            // results, warnings, and errors
	Verbose          Verbosity = Info
	Quiet            Verbosity = Notice
	DefaultVerbosity Verbosity = Verbose
)
