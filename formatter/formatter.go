// Package formatter renders log arguments into the single pre-formatted line
// a disklog sink appends to its files.
package formatter

import (
	"bytes"
	"fmt"
	"strconv"
	"time"
	"unicode/utf8"

	"github.com/davecgh/go-spew/spew"

	"github.com/lixenwraith/disklog/sanitizer"
)

// Field separator for the csv format
const defaultSeparator = ","

// Formatter manages the buffered formatting of log lines.
// A Formatter is not safe for concurrent use.
type Formatter struct {
	sanitizer       *sanitizer.Sanitizer
	format          string
	timestampFormat string
	separator       string
	buf             []byte
}

// New creates a formatter with the provided sanitizer
func New(s ...*sanitizer.Sanitizer) *Formatter {
	var san *sanitizer.Sanitizer
	if len(s) > 0 && s[0] != nil {
		san = s[0]
	} else {
		san = sanitizer.New() // Default passthrough sanitizer
	}
	return &Formatter{
		sanitizer:       san,
		format:          "csv",
		timestampFormat: "2006.01.02 15:04:05.000",
		separator:       defaultSeparator,
		buf:             make([]byte, 0, 1024),
	}
}

// Type sets the output format ("csv", "txt", or "raw")
func (f *Formatter) Type(format string) *Formatter {
	f.format = format
	return f
}

// TimestampFormat sets the timestamp format string
func (f *Formatter) TimestampFormat(format string) *Formatter {
	if format != "" {
		f.timestampFormat = format
	}
	return f
}

// Separator sets the csv field separator
func (f *Formatter) Separator(sep string) *Formatter {
	if sep != "" {
		f.separator = sep
	}
	return f
}

// Format renders one log line. The returned slice is reused by the next call.
//
//	csv: <unix millis>,<timestamp>,<LEVEL>,<tag>,<args...>\n
//	txt: <timestamp> <LEVEL> [<tag>] <args...>\n
//	raw: <args...>
func (f *Formatter) Format(timestamp time.Time, level int64, tag string, args []any) []byte {
	f.Reset()

	switch f.format {
	case "raw":
		f.appendArgs(args)
		return f.buf

	case "txt":
		f.buf = timestamp.AppendFormat(f.buf, f.timestampFormat)
		f.buf = append(f.buf, ' ')
		f.buf = append(f.buf, LevelToString(level)...)
		if tag != "" {
			f.buf = append(f.buf, " ["...)
			f.buf = append(f.buf, f.sanitizer.Sanitize(tag)...)
			f.buf = append(f.buf, ']')
		}
		if len(args) > 0 {
			f.buf = append(f.buf, ' ')
			f.appendArgs(args)
		}
		f.buf = append(f.buf, '\n')
		return f.buf

	default:
		f.buf = strconv.AppendInt(f.buf, timestamp.UnixMilli(), 10)
		f.buf = append(f.buf, f.separator...)
		f.buf = timestamp.AppendFormat(f.buf, f.timestampFormat)
		f.buf = append(f.buf, f.separator...)
		f.buf = append(f.buf, LevelToString(level)...)
		f.buf = append(f.buf, f.separator...)
		f.buf = append(f.buf, f.sanitizer.Sanitize(tag)...)
		f.buf = append(f.buf, f.separator...)
		f.appendArgs(args)
		f.buf = append(f.buf, '\n')
		return f.buf
	}
}

// FormatArgs formats multiple arguments as space-separated values
func (f *Formatter) FormatArgs(args ...any) []byte {
	f.Reset()
	f.appendArgs(args)
	return f.buf
}

// Reset clears the formatter buffer for reuse
func (f *Formatter) Reset() {
	f.buf = f.buf[:0]
}

// LevelToString converts integer level values to string
func LevelToString(level int64) string {
	switch level {
	case -4:
		return "DEBUG"
	case 0:
		return "INFO"
	case 4:
		return "WARN"
	case 8:
		return "ERROR"
	default:
		return fmt.Sprintf("LEVEL(%d)", level)
	}
}

func (f *Formatter) appendArgs(args []any) {
	for i, arg := range args {
		if i > 0 {
			f.buf = append(f.buf, ' ')
		}
		f.convertValue(arg)
	}
}

// convertValue provides unified type conversion
func (f *Formatter) convertValue(v any) {
	switch val := v.(type) {
	case string:
		f.buf = append(f.buf, f.sanitizer.Sanitize(val)...)

	case []byte:
		f.buf = append(f.buf, f.sanitizer.Sanitize(string(val))...)

	case rune:
		var runeStr [utf8.UTFMax]byte
		n := utf8.EncodeRune(runeStr[:], val)
		f.buf = append(f.buf, f.sanitizer.Sanitize(string(runeStr[:n]))...)

	case int:
		f.buf = strconv.AppendInt(f.buf, int64(val), 10)

	case int64:
		f.buf = strconv.AppendInt(f.buf, val, 10)

	case uint:
		f.buf = strconv.AppendUint(f.buf, uint64(val), 10)

	case uint64:
		f.buf = strconv.AppendUint(f.buf, val, 10)

	case float32:
		f.buf = strconv.AppendFloat(f.buf, float64(val), 'f', -1, 32)

	case float64:
		f.buf = strconv.AppendFloat(f.buf, val, 'f', -1, 64)

	case bool:
		f.buf = strconv.AppendBool(f.buf, val)

	case nil:
		f.buf = append(f.buf, "nil"...)

	case time.Time:
		f.buf = val.AppendFormat(f.buf, f.timestampFormat)

	case error:
		f.buf = append(f.buf, f.sanitizer.Sanitize(val.Error())...)

	case fmt.Stringer:
		f.buf = append(f.buf, f.sanitizer.Sanitize(val.String())...)

	default:
		f.writeComplex(val)
	}
}

// writeComplex renders structs, maps and pointers. Raw output keeps spew's
// type and size information for debugging, line formats use %+v.
func (f *Formatter) writeComplex(v any) {
	if f.format == "raw" {
		var b bytes.Buffer
		dumper := &spew.ConfigState{
			Indent:                  " ",
			MaxDepth:                10,
			DisablePointerAddresses: true,
			DisableCapacities:       true,
			SortKeys:                true,
		}
		dumper.Fdump(&b, v)
		f.buf = append(f.buf, bytes.TrimSpace(b.Bytes())...)
		return
	}
	f.buf = append(f.buf, f.sanitizer.Sanitize(fmt.Sprintf("%+v", v))...)
}
