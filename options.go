package undent

// Default configuration values.
const (
	// DefaultIndentChar is the character used to render indentation units.
	DefaultIndentChar = ' '

	// DefaultNewline splits input lines and joins output lines.
	DefaultNewline = "\n"

	// DefaultValueStart opens a placeholder key.
	DefaultValueStart = "{{"

	// DefaultValueEnd closes a placeholder key.
	DefaultValueEnd = "}}"
)

// Markers recognized at the end of input lines.
const (
	// TrailingSpaceMarker protects the whitespace before it from
	// trailing-whitespace trimming. The marker itself is removed.
	TrailingSpaceMarker = '|'

	// ContinuationMarker suppresses the line break after its line.
	// The marker is removed and the next line is appended directly.
	ContinuationMarker = '\\'
)

// Options configures a formatting pass. Options are read-only during
// formatting; the same Options value can be reused across calls and
// goroutines.
type Options struct {
	indent     int
	indentChar rune
	newline    string
	valueStart string
	valueEnd   string
}

// New creates formatting options with default settings: no
// re-indentation, "\n" line separation, and {{ }} placeholder
// delimiters.
func New() *Options {
	return &Options{
		indentChar: DefaultIndentChar,
		newline:    DefaultNewline,
		valueStart: DefaultValueStart,
		valueEnd:   DefaultValueEnd,
	}
}

// WithIndent sets how many indentation units are prepended to the
// output and to every line after a join. Negative counts are treated
// as zero.
func (o *Options) WithIndent(n int) *Options {
	if n < 0 {
		n = 0
	}
	o.indent = n
	return o
}

// WithIndentChar sets the character used to render indentation units.
func (o *Options) WithIndentChar(c rune) *Options {
	o.indentChar = c
	return o
}

// WithNewline sets the token that both delimits input lines during
// splitting and separates output lines during joining.
func (o *Options) WithNewline(nl string) *Options {
	o.newline = nl
	return o
}

// WithDelimiters sets the strings that bracket a placeholder key.
func (o *Options) WithDelimiters(start, end string) *Options {
	o.valueStart = start
	o.valueEnd = end
	return o
}

// Indent returns the configured indentation unit count.
func (o *Options) Indent() int {
	return o.indent
}

// IndentChar returns the character used to render indentation units.
func (o *Options) IndentChar() rune {
	return o.indentChar
}

// Newline returns the line separator token.
func (o *Options) Newline() string {
	return o.newline
}

// Delimiters returns the placeholder delimiter pair.
func (o *Options) Delimiters() (start, end string) {
	return o.valueStart, o.valueEnd
}
