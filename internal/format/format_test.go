package format

import "testing"

func TestCount(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "below ten thousand plain", raw: "999", want: "999"},
		{name: "below ten thousand grouped", raw: "9999", want: "9,999"},
		{name: "zero", raw: "0", want: "0"},
		{name: "ten thousand boundary", raw: "10000", want: "1.0만"},
		{name: "ten thousands", raw: "12345", want: "1.2만"},
		{name: "large ten thousands", raw: "1234567", want: "123.5만"},
		{name: "hundred million boundary", raw: "100000000", want: "1.0억"},
		{name: "hundred millions", raw: "250000000", want: "2.5억"},
		{name: "non numeric passthrough", raw: "abc", want: "abc"},
		{name: "empty passthrough", raw: "", want: ""},
		{name: "surrounding whitespace", raw: " 12345 ", want: "1.2만"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Count(tt.raw); got != tt.want {
				t.Errorf("Count(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestCountInt(t *testing.T) {
	tests := []struct {
		v    int64
		want string
	}{
		{v: 1234, want: "1,234"},
		{v: 54321, want: "5.4만"},
		{v: 999999999, want: "10.0억"},
	}

	for _, tt := range tests {
		if got := CountInt(tt.v); got != tt.want {
			t.Errorf("CountInt(%d) = %q, want %q", tt.v, got, tt.want)
		}
	}
}
