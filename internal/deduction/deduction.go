// Package deduction resolves the manual salary deductions that apply to a
// pay cycle.
package deduction

import (
	"bytes"
	"encoding/json"
	"errors"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

type Kind string

const (
	KindFixed  Kind = "FIXED"
	KindScoped Kind = "SCOPED"
)

// Entry is either Fixed (applies to every cycle) or Scoped to one
// (Month, Year). A Scoped entry with Month or Year of 0 never applies.
type Entry struct {
	Kind   Kind
	Label  string
	Amount decimal.Decimal
	Month  int
	Year   int
}

func Fixed(label string, amount decimal.Decimal) Entry {
	return Entry{Kind: KindFixed, Label: label, Amount: amount}
}

func Scoped(label string, amount decimal.Decimal, month, year int) Entry {
	return Entry{Kind: KindScoped, Label: label, Amount: amount, Month: month, Year: year}
}

func (e Entry) AppliesTo(month, year int) bool {
	if e.Kind != KindScoped {
		return true
	}
	return e.Month != 0 && e.Year != 0 && e.Month == month && e.Year == year
}

type Resolution struct {
	Applied []Entry
	Total   decimal.Decimal
}

// Resolve keeps the entries that apply to (month, year) in input order and
// sums their amounts.
func Resolve(entries []Entry, month, year int) Resolution {
	res := Resolution{Applied: []Entry{}, Total: decimal.Zero}
	for _, e := range entries {
		if !e.AppliesTo(month, year) {
			continue
		}
		res.Applied = append(res.Applied, e)
		res.Total = res.Total.Add(e.Amount)
	}
	return res
}

// Record is the stored JSON shape. Everything except Label is kept raw
// because legacy rows hold numbers, numeric strings or garbage.
type Record struct {
	Label   string          `json:"label"`
	Amount  json.RawMessage `json:"amount,omitempty"`
	IsFixed json.RawMessage `json:"isFixed,omitempty"`
	Month   json.RawMessage `json:"month,omitempty"`
	Year    json.RawMessage `json:"year,omitempty"`
}

// Normalize converts a stored record into an Entry. It never fails: a missing
// or unreadable isFixed means Fixed, a non-numeric amount is zero and a
// non-numeric month/year produces a Scoped entry that never applies.
func Normalize(r Record) Entry {
	amount := coerceDecimal(r.Amount)
	if fixed, ok := coerceBool(r.IsFixed); !ok || fixed {
		return Fixed(r.Label, amount)
	}
	month, okMonth := coerceInt(r.Month)
	year, okYear := coerceInt(r.Year)
	if !okMonth || !okYear {
		month, year = 0, 0
	}
	return Scoped(r.Label, amount, month, year)
}

func NormalizeAll(records []Record) []Entry {
	entries := make([]Entry, 0, len(records))
	for _, r := range records {
		entries = append(entries, Normalize(r))
	}
	return entries
}

// Parse decodes a stored JSON array. Input that is not an array yields no
// entries and the decode error so the caller can log it. Inside the array each
// element is read on its own: elements that are not objects are skipped and
// odd field types never drop their neighbours.
func Parse(raw []byte) ([]Entry, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return []Entry{}, nil
	}
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return []Entry{}, err
	}
	records := make([]Record, 0, len(items))
	for _, item := range items {
		if r, ok := decodeRecord(item); ok {
			records = append(records, r)
		}
	}
	return NormalizeAll(records), nil
}

func decodeRecord(raw json.RawMessage) (Record, bool) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil || fields == nil {
		return Record{}, false
	}
	label, _ := scalar(fields["label"])
	return Record{
		Label:   label,
		Amount:  fields["amount"],
		IsFixed: fields["isFixed"],
		Month:   fields["month"],
		Year:    fields["year"],
	}, true
}

var (
	ErrScopeRequired = errors.New("cycle-specific deduction requires month and year")
	ErrMonthRange    = errors.New("deduction month must be between 1 and 12")
	ErrNegative      = errors.New("deduction amount must not be negative")
)

// Validate enforces the write-side invariant: entries that are not fixed
// carry a valid (month, year).
func Validate(e Entry) error {
	if e.Amount.IsNegative() {
		return ErrNegative
	}
	if e.Kind != KindScoped {
		return nil
	}
	if e.Month == 0 || e.Year == 0 {
		return ErrScopeRequired
	}
	if e.Month < 1 || e.Month > 12 {
		return ErrMonthRange
	}
	return nil
}

// ToRecord is the canonical stored form; isFixed is always written.
func ToRecord(e Entry) Record {
	fixed := e.Kind != KindScoped
	r := Record{
		Label:   e.Label,
		Amount:  json.RawMessage(e.Amount.String()),
		IsFixed: json.RawMessage(strconv.FormatBool(fixed)),
	}
	if !fixed {
		r.Month = json.RawMessage(strconv.Itoa(e.Month))
		r.Year = json.RawMessage(strconv.Itoa(e.Year))
	}
	return r
}

func Marshal(entries []Entry) ([]byte, error) {
	records := make([]Record, 0, len(entries))
	for _, e := range entries {
		records = append(records, ToRecord(e))
	}
	return json.Marshal(records)
}

func coerceDecimal(raw json.RawMessage) decimal.Decimal {
	s, ok := scalar(raw)
	if !ok {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

func coerceInt(raw json.RawMessage) (int, bool) {
	s, ok := scalar(raw)
	if !ok {
		return 0, false
	}
	d, err := decimal.NewFromString(s)
	if err != nil || !d.Equal(d.Truncate(0)) {
		return 0, false
	}
	return int(d.IntPart()), true
}

// coerceBool reads true/false, "true"/"false" and 0/1.
func coerceBool(raw json.RawMessage) (bool, bool) {
	s, ok := scalar(raw)
	if !ok {
		s = strings.TrimSpace(string(raw))
	}
	switch strings.ToLower(s) {
	case "true", "1":
		return true, true
	case "false", "0":
		return false, true
	}
	return false, false
}

// scalar unwraps a JSON number or string into its trimmed text.
func scalar(raw json.RawMessage) (string, bool) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return "", false
	}
	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return "", false
		}
		s = strings.TrimSpace(s)
		return s, s != ""
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err != nil {
		return "", false
	}
	return n.String(), true
}
