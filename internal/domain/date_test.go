package domain

import (
	"encoding/json"
	"testing"
)

func TestNewDate_ValidatesCalendar(t *testing.T) {
	d, ok := NewDate(2015, 2, 5)
	if !ok || d.String() != "2015-02-05" {
		t.Fatalf("got %v %v", d, ok)
	}
	// Leap day.
	if _, ok := NewDate(2016, 2, 29); !ok {
		t.Fatalf("2016-02-29 is a real date")
	}
	for _, c := range [][3]int{
		{2015, 2, 30},
		{2015, 2, 29},
		{2015, 13, 1},
		{2015, 0, 1},
		{2015, 4, 31},
		{0, 1, 1},
	} {
		if _, ok := NewDate(c[0], c[1], c[2]); ok {
			t.Fatalf("%v should be rejected", c)
		}
	}
}

func TestDate_JSONRoundTrip(t *testing.T) {
	d, _ := NewDate(1999, 12, 31)
	b, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != `"1999-12-31"` {
		t.Fatalf("got %s", b)
	}
	var back Date
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if back.String() != "1999-12-31" {
		t.Fatalf("round trip lost the date: %v", back)
	}
}

func TestDate_UnmarshalRejectsBadInput(t *testing.T) {
	var d Date
	for _, raw := range []string{`"31/12/1999"`, `"1999-13-01"`, `1999`, `"x"`} {
		if err := json.Unmarshal([]byte(raw), &d); err == nil {
			t.Fatalf("%s should not parse", raw)
		}
	}
}

// TestProduct_MissingFieldsOmitted: nil pointers must disappear from the
// bulk payload instead of serializing as null, while the stock fields are
// always present.
func TestProduct_MissingFieldsOmitted(t *testing.T) {
	b, err := json.Marshal(Product{UniqID: "p1", TypeStock: "no"})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(m) != 3 {
		t.Fatalf("want only uniq_id, stock and type_stock, got %#v", m)
	}
	for _, k := range []string{"uniq_id", "stock", "type_stock"} {
		if _, ok := m[k]; !ok {
			t.Fatalf("missing %q in %#v", k, m)
		}
	}
}

func TestReview_MissingDateOmitted(t *testing.T) {
	b, err := json.Marshal(Review{UniqID: "p1", NumReview: 2})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if _, ok := m["date_clean"]; ok {
		t.Fatalf("nil date must be omitted: %#v", m)
	}
	if _, ok := m["num_review"]; !ok {
		t.Fatalf("ordinal must always be present: %#v", m)
	}
}
