package finbook

import (
	"encoding/json"
	"errors"
	"testing"
	"time"
)

// TestTime asserts that time() is canonical and gives comparable times.
func TestTime(t *testing.T) {
	d1 := NewDate(2024, time.January, 1)
	d2 := NewDate(2024, time.January, 1)

	if d1.time() != d2.time() {
		// time.Time values are usually not comparable (the timezone is a
		// pointer); this checks the property holds for canonical dates.
		t.Errorf("invalid time() function: same day gives two different times")
	}
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		input    string
		expected Date
		err      bool
	}{
		{"01 01 2024", NewDate(2024, time.January, 1), false},
		{"31 12 1999", NewDate(1999, time.December, 31), false},
		{"29 02 2024", NewDate(2024, time.February, 29), false}, // leap day
		{"5 3 2024", NewDate(2024, time.March, 5), false},       // no leading zeros
		{"", Date{}, true},
		{"2024 01 01", Date{}, true}, // wrong field order
		{"01-01-2024", Date{}, true}, // wrong separator
		{"01 01 24", Date{}, true},   // 2-digit year
		{"32 01 2024", Date{}, true}, // day out of range
		{"01 13 2024", Date{}, true}, // month out of range
		{"yesterday", Date{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseDate(tt.input)
			if tt.err {
				if err == nil {
					t.Fatalf("ParseDate(%q) should have failed", tt.input)
				}
				if !errors.Is(err, ErrValidation) {
					t.Errorf("ParseDate(%q) error is not ErrValidation: %v", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseDate(%q) failed: %v", tt.input, err)
			}
			if got != tt.expected {
				t.Errorf("ParseDate(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestDateString(t *testing.T) {
	d := NewDate(2024, time.January, 1)
	if got, want := d.String(), "01 01 2024"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestDateJSONRoundTrip(t *testing.T) {
	d := NewDate(2024, time.February, 29)

	data, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if got, want := string(data), `"29 02 2024"`; got != want {
		t.Errorf("Marshal = %s, want %s", got, want)
	}

	var back Date
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if back != d {
		t.Errorf("round trip = %v, want %v", back, d)
	}

	var bad Date
	if err := json.Unmarshal([]byte(`"not a date"`), &bad); err == nil {
		t.Error("Unmarshal of an invalid date should fail")
	}
}

func TestDateOrdering(t *testing.T) {
	early := NewDate(2024, time.January, 1)
	late := early.Add(31)

	if got, want := late, NewDate(2024, time.February, 1); got != want {
		t.Errorf("Add(31) = %v, want %v", got, want)
	}
	if !early.Before(late) || late.Before(early) {
		t.Error("Before() is inconsistent")
	}
	if !late.After(early) || early.After(late) {
		t.Error("After() is inconsistent")
	}
}
