package hxel

import (
	"strconv"
	"strings"
)

// Safe is markup that has already been escaped. It is written verbatim.
type Safe string

// JavaScript is a script body. Like Safe it is never escaped.
type JavaScript string

var htmlEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

// Escape escapes the characters that would otherwise start markup or an
// entity. Quotes are left alone.
func Escape(s string) string {
	return htmlEscaper.Replace(s)
}

// isPrimitive reports whether v is a text-like child.
func isPrimitive(v any) bool {
	switch v.(type) {
	case string, Safe, JavaScript, bool,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return true
	}
	return false
}

// primitiveText converts a primitive child to text, escaping plain strings
// when escape is set.
func primitiveText(v any, escape bool) string {
	switch val := v.(type) {
	case string:
		if escape {
			return Escape(val)
		}
		return val
	case Safe:
		return string(val)
	case JavaScript:
		return string(val)
	case bool:
		return strconv.FormatBool(val)
	case float32:
		return strconv.FormatFloat(float64(val), 'f', -1, 32)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case int:
		return strconv.Itoa(val)
	case int8:
		return strconv.FormatInt(int64(val), 10)
	case int16:
		return strconv.FormatInt(int64(val), 10)
	case int32:
		return strconv.FormatInt(int64(val), 10)
	case int64:
		return strconv.FormatInt(val, 10)
	case uint:
		return strconv.FormatUint(uint64(val), 10)
	case uint8:
		return strconv.FormatUint(uint64(val), 10)
	case uint16:
		return strconv.FormatUint(uint64(val), 10)
	case uint32:
		return strconv.FormatUint(uint64(val), 10)
	case uint64:
		return strconv.FormatUint(val, 10)
	}
	return ""
}
