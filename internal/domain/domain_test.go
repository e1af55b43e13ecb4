package domain

import (
	"encoding/json"
	"testing"
	"time"
)

func TestTrendJSON(t *testing.T) {
	for _, trend := range Trends {
		b, err := json.Marshal(trend)
		if err != nil {
			t.Fatalf("json.Marshal(%v): %v", trend, err)
		}
		if got, want := string(b), `"`+trend.String()+`"`; got != want {
			t.Errorf("json.Marshal(%v) = %s, want %s", trend, got, want)
		}

		var back Trend
		if err := json.Unmarshal(b, &back); err != nil {
			t.Fatalf("json.Unmarshal(%s): %v", b, err)
		}
		if back != trend {
			t.Errorf("json.Unmarshal(%s) = %v, want %v", b, back, trend)
		}
	}

	if _, err := json.Marshal(Trend(9)); err == nil {
		t.Error("json.Marshal(Trend(9)) succeeded, want error")
	}
	var bad Trend
	if err := json.Unmarshal([]byte(`"flat"`), &bad); err == nil {
		t.Error(`json.Unmarshal("flat") succeeded, want error`)
	}
}

func TestParseISOTime(t *testing.T) {
	tests := []struct {
		desc string
		in   string
		want time.Time
	}{
		{
			desc: "wire layout",
			in:   "2025-01-02T03:04:05.123456+03:00",
			want: time.Date(2025, 1, 2, 3, 4, 5, 123456000, time.FixedZone("", 3*3600)),
		},
		{
			desc: "RFC3339",
			in:   "2025-01-02T03:04:05Z",
			want: time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC),
		},
		{
			desc: "naive isoformat with micros",
			in:   "2025-01-02T03:04:05.500000",
			want: time.Date(2025, 1, 2, 3, 4, 5, 500000000, time.UTC),
		},
		{
			desc: "naive isoformat",
			in:   "2025-01-02T03:04:05",
			want: time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC),
		},
	}

	for _, test := range tests {
		got, err := ParseISOTime(test.in)
		if err != nil {
			t.Errorf("TestParseISOTime(%s): unexpected error: %v", test.desc, err)
			continue
		}
		if !got.Equal(test.want) {
			t.Errorf("TestParseISOTime(%s): got %v, want %v", test.desc, got, test.want)
		}
	}

	if _, err := ParseISOTime("yesterday"); err == nil {
		t.Error("ParseISOTime(yesterday) succeeded, want error")
	}
}

func TestISOTimeRoundTrip(t *testing.T) {
	orig := NewISOTime(time.Date(2025, 6, 1, 10, 30, 0, 250000000, time.UTC))

	b, err := json.Marshal(orig)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := string(b), `"2025-06-01T10:30:00.250000Z"`; got != want {
		t.Errorf("json.Marshal = %s, want %s", got, want)
	}

	var back ISOTime
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatal(err)
	}
	if !back.Equal(orig.Time) {
		t.Errorf("round trip = %v, want %v", back, orig)
	}
}

func TestISOTimeNull(t *testing.T) {
	var ack TradeExecution
	if err := json.Unmarshal([]byte(`{"success":true,"message":"Trade executed","timestamp":null}`), &ack); err != nil {
		t.Fatalf("json.Unmarshal(null timestamp): %v", err)
	}
	if !ack.Timestamp.IsZero() {
		t.Errorf("Timestamp = %v, want zero time", ack.Timestamp)
	}

	var ts ISOTime
	if err := json.Unmarshal([]byte(`""`), &ts); err == nil {
		t.Error(`json.Unmarshal("") succeeded, want error`)
	}
}
