package cmd

import (
	"github.com/fatih/color"

	"github.com/cwbudde/go-exprcore/internal/value"
)

var (
	colorBool = color.New(color.FgGreen)
	colorNum  = color.New(color.FgCyan)
	colorStr  = color.New(color.FgYellow)
	colorNull = color.New(color.Faint)
)

// colorize renders v.Format() using the dynamic-type coloring scheme:
// green for bool, cyan for numbers, yellow for strings/blobs, dimmed
// for null.
func colorize(v value.Value) string {
	s := v.Format()
	switch v.Kind() {
	case value.KindBool:
		return colorBool.Sprint(s)
	case value.KindPrimitive:
		return colorNum.Sprint(s)
	case value.KindString, value.KindBlob:
		return colorStr.Sprint(s)
	default:
		return colorNull.Sprint(s)
	}
}
