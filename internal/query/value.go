package query

import (
	"cmp"
	"strconv"
	"strings"
	"time"
)

// Kind identifies the natural ordering used to compare a field's values.
type Kind int

// Value kinds.
const (
	KindString Kind = iota
	KindNumber
	KindTime
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindTime:
		return "time"
	default:
		return "unknown"
	}
}

// Value is a sortable field value.
type Value struct {
	at   time.Time
	str  string
	num  float64
	kind Kind
}

// Text wraps a string value. ISO-like date strings sort chronologically as text.
func Text(s string) Value {
	return Value{kind: KindString, str: s}
}

// Number wraps a numeric value.
func Number(n float64) Value {
	return Value{kind: KindNumber, num: n}
}

// Time wraps a timestamp value.
func Time(t time.Time) Value {
	return Value{kind: KindTime, at: t}
}

// Zero returns the sentinel used when a record has no value for a field.
func Zero(kind Kind) Value {
	return Value{kind: kind}
}

// Kind returns the value kind.
func (v Value) Kind() Kind {
	return v.kind
}

// String renders the value for search and display.
func (v Value) String() string {
	switch v.kind {
	case KindNumber:
		return strings.TrimRight(strings.TrimRight(formatFloat(v.num), "0"), ".")
	case KindTime:
		if v.at.IsZero() {
			return ""
		}
		return v.at.Format(time.RFC3339)
	default:
		return v.str
	}
}

// Compare orders two values. Values of different kinds order by kind.
func Compare(a, b Value) int {
	if a.kind != b.kind {
		return cmp.Compare(a.kind, b.kind)
	}

	switch a.kind {
	case KindNumber:
		return cmp.Compare(a.num, b.num)
	case KindTime:
		return a.at.Compare(b.at)
	default:
		return strings.Compare(a.str, b.str)
	}
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', 6, 64)
}
