// Package undent normalizes indented multiline string literals.
//
// When multiline text (HTML, SQL, templates) is embedded directly in
// source code, the literal carries the surrounding code's indentation.
// undent strips that shared indentation so the text can be written
// readably in source and used cleanly at runtime:
//
//	query := undent.Format(`
//	    SELECT id, name
//	    FROM users
//	    WHERE active = true
//	`)
//	// "SELECT id, name\nFROM users\nWHERE active = true"
//
// The common indentation is the minimum leading-whitespace run across
// all non-empty lines. Each line loses exactly that much, so relative
// indentation inside the block is preserved. A newline immediately
// after the opening delimiter and a blank line left by a closing
// delimiter on its own line are both absorbed.
//
// # Markers
//
// Trailing whitespace is trimmed from every line. To keep significant
// trailing whitespace, end the line with a pipe; the pipe is removed
// and the whitespace before it survives:
//
//	undent.Format(`
//	    Blocked   |
//	    Text      |
//	`)
//	// "Blocked   \nText      "
//
// To join two source lines without a line break in the output, end the
// first with a backslash; the backslash is removed and the next line
// is appended directly:
//
//	undent.Format(`
//	    Hello, World! \
//	    I am me.
//	`)
//	// "Hello, World! I am me."
//
// # Re-indentation
//
// The output can be re-indented with a configurable count and
// character. The first line and every line after a join each receive
// the configured prefix:
//
//	undent.New().WithIndent(4).Format("A\n B\n  C")
//	// "    A\n     B\n      C"
//
// Lines joined by a continuation marker are not re-indented.
//
// # Placeholder Values
//
// FormatValues substitutes {{key}} placeholders after normalization.
// Substitution is literal and sequential: each pair is applied in
// argument order with a plain substring replace, so a later key can
// match text produced by an earlier value. There are no conditionals,
// loops, or nested templates.
//
//	undent.FormatValues(`
//	    Hello {{name}},
//	    Goodbye
//	`, undent.Value{Key: "name", Value: "Chris"})
//	// "Hello Chris,\nGoodbye"
//
// The delimiters default to {{ and }} and can be changed with
// WithDelimiters.
//
// # Configuration
//
// All knobs hang off Options:
//
//	opts := undent.New().
//	    WithIndent(2).
//	    WithIndentChar('\t').
//	    WithNewline("\r\n")
//	result := opts.Format(text)
//
// Every operation is total: any input string, including the empty
// string, produces a defined output. Formatting is a pure function of
// its inputs, so concurrent use is safe. Note that formatting is not
// idempotent — markers are consumed on the first pass and re-applied
// indentation is treated as content by a second pass.
package undent
