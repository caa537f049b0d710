package undent

import "strings"

// Value is a single placeholder substitution pair. Pairs are applied
// in argument order, so a later key can match text produced by an
// earlier replacement.
type Value struct {
	Key   string
	Value string
}

// FormatValues normalizes text using default options, then replaces
// each {{key}} placeholder with its value.
func FormatValues(text string, values ...Value) string {
	return New().FormatValues(text, values...)
}

// FormatValues normalizes text and then substitutes the given
// placeholder values, sequentially in argument order.
func (o *Options) FormatValues(text string, values ...Value) string {
	return o.substitute(o.Format(text), values)
}

// substitute performs literal, ordered placeholder replacement.
// Placeholders with no matching key are left intact.
func (o *Options) substitute(text string, values []Value) string {
	for _, v := range values {
		text = strings.ReplaceAll(text, o.valueStart+v.Key+o.valueEnd, v.Value)
	}
	return text
}
