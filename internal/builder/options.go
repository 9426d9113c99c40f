package builder

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/dgallion1/pptx-export-mcp/internal/pptx"
)

// options is an element's open key/value bag. Lookups are lenient: a value
// of the wrong type reads as absent.
type options map[string]any

func (o options) float(key string) (float64, bool) {
	return toFloat(o[key])
}

func (o options) floatOr(key string, def float64) float64 {
	if v, ok := o.float(key); ok {
		return v
	}
	return def
}

func (o options) str(key string) string {
	s, _ := o[key].(string)
	return s
}

func (o options) boolean(key string) bool {
	switch v := o[key].(type) {
	case bool:
		return v
	case string:
		b, _ := strconv.ParseBool(v)
		return b
	}
	return false
}

// nested returns a sub-bag such as a text run's "options" object.
func (o options) nested(key string) options {
	m, _ := o[key].(map[string]any)
	return options(m)
}

// payloadOptions reads an element's options field. Absent options are an
// empty bag; anything but an object is an error.
func payloadOptions(v any) (options, error) {
	switch m := v.(type) {
	case nil:
		return options{}, nil
	case map[string]any:
		return options(m), nil
	}
	return nil, fmt.Errorf("options is %T, want an object", v)
}

// payloadString reads an optional string field; absent reads as "".
func payloadString(field string, v any) (string, error) {
	switch s := v.(type) {
	case nil:
		return "", nil
	case string:
		return s, nil
	}
	return "", fmt.Errorf("%s is %T, want a string", field, v)
}

// payloadArray reads an optional array field; absent reads as nil.
func payloadArray(field string, v any) ([]any, error) {
	switch a := v.(type) {
	case nil:
		return nil, nil
	case []any:
		return a, nil
	}
	return nil, fmt.Errorf("%s is %T, want an array", field, v)
}

// box is a default position and size in inches.
type box struct {
	x, y, w, h float64
}

var (
	textBox  = box{x: 1, y: 1, w: 8, h: 1}
	tableBox = box{x: 1, y: 1, w: 8, h: 3}
	chartBox = box{x: 1, y: 1, w: 8, h: 5}
	shapeBox = box{x: 1, y: 1, w: 2, h: 2}
)

// rect reads x, y, w and h (inches) from the bag, falling back to def.
func (o options) rect(def box) pptx.Rect {
	return pptx.Rect{
		X: pptx.Inches(o.floatOr("x", def.x)),
		Y: pptx.Inches(o.floatOr("y", def.y)),
		W: pptx.Inches(o.floatOr("w", def.w)),
		H: pptx.Inches(o.floatOr("h", def.h)),
	}
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		return f, err == nil
	}
	return 0, false
}

// formatValue renders a JSON scalar for display in a text run or cell.
func formatValue(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(x)
	case json.Number:
		return x.String()
	}
	return fmt.Sprint(v)
}
