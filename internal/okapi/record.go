package okapi

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// Field positions within a data line
const (
	FieldIDA       = 0
	FieldIDB       = 1
	FieldFrequency = 2
	FieldWeight    = 3
	FieldUnused    = 4
	FieldLength    = 5

	// MinFields is the number of fields a data line must carry
	MinFields = FieldLength + 1

	firstNumeric = FieldFrequency
)

// Record is one parsed data line
type Record struct {
	Line   int // 1-based line number in the input
	IDA    string
	IDB    string
	Values []float64 // Values[i] holds field i+2
}

// Field returns the numeric value at the given field position
func (r Record) Field(pos int) float64 {
	return r.Values[pos-firstNumeric]
}

// Frequency returns the frequency term (field 2)
func (r Record) Frequency() float64 { return r.Field(FieldFrequency) }

// Weight returns the weight multiplier (field 3)
func (r Record) Weight() float64 { return r.Field(FieldWeight) }

// Length returns the length normalization term (field 5)
func (r Record) Length() float64 { return r.Field(FieldLength) }

// ParseLine parses the line at the given 0-based index.
// Index 0 is the header and yields ok=false with no error.
func ParseLine(index int, line string) (rec Record, ok bool, err error) {
	if index == 0 {
		return Record{}, false, nil
	}
	lineNo := index + 1

	fields := strings.Split(strings.TrimRightFunc(line, unicode.IsSpace), ",")
	if len(fields) < MinFields {
		return Record{}, false, &LineError{
			Line:  lineNo,
			Field: -1,
			Err:   fmt.Errorf("%w: expected at least %d fields, got %d", ErrParse, MinFields, len(fields)),
		}
	}

	rec = Record{
		Line:   lineNo,
		IDA:    fields[FieldIDA],
		IDB:    fields[FieldIDB],
		Values: make([]float64, 0, len(fields)-firstNumeric),
	}
	for pos := firstNumeric; pos < len(fields); pos++ {
		v, err := parseNumber(fields[pos])
		if err != nil {
			return Record{}, false, &LineError{
				Line:  lineNo,
				Field: pos,
				Err:   fmt.Errorf("%w: invalid number %q", ErrParse, fields[pos]),
			}
		}
		rec.Values = append(rec.Values, v)
	}

	return rec, true, nil
}

// parseNumber parses a decimal float field. Values out of float64 range
// become ±Inf or a denormal. Hex literals are rejected.
func parseNumber(field string) (float64, error) {
	s := strings.TrimSpace(field)
	digits := strings.TrimLeft(s, "+-")
	if len(digits) > 1 && digits[0] == '0' && (digits[1] == 'x' || digits[1] == 'X') {
		return 0, strconv.ErrSyntax
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, err
	}
	return v, nil
}
