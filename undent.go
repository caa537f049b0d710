package undent

import (
	"strings"
	"unicode"
)

// Format normalizes text using default options: the common indentation
// is stripped, trailing whitespace trimmed, and markers applied.
func Format(text string) string {
	return New().Format(text)
}

// Format normalizes text: split on the newline token, strip the common
// indentation, trim trailing whitespace, apply markers, and join with
// re-indentation.
func (o *Options) Format(text string) string {
	lines := o.splitLines(text)
	width := commonIndent(lines)
	for i, line := range lines {
		lines[i] = trimLine(line, width)
	}
	// A closing delimiter on its own line leaves one empty trailer.
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	return o.joinLines(lines)
}

// splitLines splits text on the configured newline token. A single
// newline immediately after the opening delimiter is absorbed.
func (o *Options) splitLines(text string) []string {
	text = strings.TrimPrefix(text, o.newline)
	return strings.Split(text, o.newline)
}

// commonIndent returns the minimum leading-whitespace run length
// across all non-empty lines. Empty lines do not constrain the
// minimum; with no contributing line the indent is 0.
func commonIndent(lines []string) int {
	width := -1
	for _, line := range lines {
		if line == "" {
			continue
		}
		run := leadingRun(line)
		if width < 0 || run < width {
			width = run
		}
	}
	if width < 0 {
		return 0
	}
	return width
}

// leadingRun counts the whitespace characters at the start of line.
func leadingRun(line string) int {
	n := 0
	for _, r := range line {
		if !unicode.IsSpace(r) {
			break
		}
		n++
	}
	return n
}

// trimLine strips the common indentation, trims trailing whitespace,
// and drops a trailing-space marker. The right-trim runs against the
// marker-terminated line, so whitespace before the marker survives.
func trimLine(line string, width int) string {
	line = trimIndent(line, width)
	line = strings.TrimRightFunc(line, unicode.IsSpace)
	if strings.HasSuffix(line, string(TrailingSpaceMarker)) {
		line = line[:len(line)-1]
	}
	return line
}

// trimIndent drops exactly width leading characters when the line
// starts with width spaces or width tabs (two homogeneous prefixes,
// never a mix). A line indented with anything else loses all its
// leading whitespace.
func trimIndent(line string, width int) string {
	if strings.HasPrefix(line, strings.Repeat(" ", width)) ||
		strings.HasPrefix(line, strings.Repeat("\t", width)) {
		return line[width:]
	}
	return strings.TrimLeftFunc(line, unicode.IsSpace)
}

// joinLines folds the trimmed lines into a single string. A line
// ending in the continuation marker absorbs the next line with no
// separator and no padding; every other join inserts the newline token
// and the indent prefix. The whole result receives the indent prefix
// once more, so the first line is padded too.
func (o *Options) joinLines(lines []string) string {
	pad := strings.Repeat(string(o.indentChar), o.indent)

	// A blank line right after the opening delimiter is dropped.
	if len(lines) > 1 && lines[0] == "" {
		lines = lines[1:]
	}
	if len(lines) == 0 {
		return pad
	}

	joined := lines[0]
	for _, line := range lines[1:] {
		if strings.HasSuffix(joined, string(ContinuationMarker)) {
			joined = joined[:len(joined)-1] + line
			continue
		}
		joined += o.newline + pad + line
	}
	return pad + joined
}
