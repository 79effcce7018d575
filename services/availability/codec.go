package availability

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

// DateLayout is the date-only format used on the wire.
const DateLayout = "2006-01-02"

// wireIndex is the nested year → month → day → booked mapping. Months are
// zero-based (0 = January) to stay compatible with calendar clients.
type wireIndex map[string]map[string]map[string]any

// ParseDate parses a YYYY-MM-DD value into a UTC date.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, strings.TrimSpace(s), time.UTC)
}

// Encode serializes the index into its textual transport form.
func Encode(ix *Index) (string, error) {
	b, err := json.Marshal(ix.toWire())
	if err != nil {
		return "", fmt.Errorf("availability: encode index: %w", err)
	}
	return string(b), nil
}

// Decode parses the textual transport form. Blank input yields an empty index.
func Decode(s string) (*Index, error) {
	s = strings.TrimSpace(s)
	if s == "" || s == "null" {
		return New(), nil
	}
	var w wireIndex
	if err := json.Unmarshal([]byte(s), &w); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedIndex, err)
	}
	return fromWire(w)
}

// MarshalJSON encodes the nested mapping.
func (ix *Index) MarshalJSON() ([]byte, error) {
	return json.Marshal(ix.toWire())
}

// UnmarshalJSON decodes the nested mapping.
func (ix *Index) UnmarshalJSON(b []byte) error {
	decoded, err := Decode(string(b))
	if err != nil {
		return err
	}
	ix.days = decoded.days
	return nil
}

// MarshalBSONValue stores the index as a nested sub-document on the listing.
func (ix *Index) MarshalBSONValue() (bsontype.Type, []byte, error) {
	return bson.MarshalValue(ix.toWire())
}

// UnmarshalBSONValue reads the nested sub-document back.
func (ix *Index) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	if t == bsontype.Null || t == bsontype.Undefined {
		ix.days = make(map[int64]struct{})
		return nil
	}
	var w wireIndex
	if err := (bson.RawValue{Type: t, Value: data}).Unmarshal(&w); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedIndex, err)
	}
	decoded, err := fromWire(w)
	if err != nil {
		return err
	}
	ix.days = decoded.days
	return nil
}

func (ix *Index) toWire() wireIndex {
	w := wireIndex{}
	if ix == nil {
		return w
	}
	for n := range ix.days {
		y, m, d := fromDayNumber(n).Date()
		year := strconv.Itoa(y)
		month := strconv.Itoa(int(m) - 1)
		if w[year] == nil {
			w[year] = map[string]map[string]any{}
		}
		if w[year][month] == nil {
			w[year][month] = map[string]any{}
		}
		w[year][month][strconv.Itoa(d)] = true
	}
	return w
}

func fromWire(w wireIndex) (*Index, error) {
	ix := New()
	for yk, months := range w {
		year, err := canonicalInt(yk)
		if err != nil {
			return nil, fmt.Errorf("%w: year key %q", ErrMalformedIndex, yk)
		}
		for mk, days := range months {
			month, err := canonicalInt(mk)
			if err != nil || month < 0 || month > 11 {
				return nil, fmt.Errorf("%w: month key %q", ErrMalformedIndex, mk)
			}
			for dk, booked := range days {
				day, err := canonicalInt(dk)
				if err != nil || day < 1 || day > 31 {
					return nil, fmt.Errorf("%w: day key %q", ErrMalformedIndex, dk)
				}
				date := Date(year, time.Month(month+1), day)
				if date.Day() != day {
					return nil, fmt.Errorf("%w: %d-%02d-%02d is not a calendar day", ErrMalformedIndex, year, month+1, day)
				}
				if truthy(booked) {
					ix.days[dayNumber(date)] = struct{}{}
				}
			}
		}
	}
	return ix, nil
}

// canonicalInt parses a key only in the form Encode writes it, so that
// decoding and re-encoding leaves the blob unchanged.
func canonicalInt(key string) (int, error) {
	n, err := strconv.Atoi(key)
	if err != nil {
		return 0, err
	}
	if strconv.Itoa(n) != key {
		return 0, fmt.Errorf("non-canonical key %q", key)
	}
	return n, nil
}

func truthy(v any) bool {
	switch t := v.(type) {
	case bool:
		return t
	case float64:
		return t != 0
	case int32:
		return t != 0
	case int64:
		return t != 0
	case string:
		return t != ""
	default:
		return v != nil
	}
}
