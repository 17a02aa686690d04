package date

import (
	"testing"
)

func TestParseDue(t *testing.T) {
	now := tuesday
	tests := []struct {
		name    string
		args    []string
		want    string
		wantErr bool
	}{
		{"Case Insensitive", []string{"ToDAY"}, "2026-10-20", false},
		{"today", []string{"today", "tod"}, "2026-10-20", false},
		{"tomorrow", []string{"tomorrow", "tom", "1", "+1", "in 1 day", "1d", "1day", "1 day"}, "2026-10-21", false},
		{"yesterday", []string{"1 day ago", "1d ago", "-1"}, "2026-10-19", false},
		{"7 days", []string{"7 day", "7 days", "1 week", "7"}, "2026-10-27", false},
		{"iso", []string{"2026-12-01", " 2026-12-01 "}, "2026-12-01", false},
		{"absolute", []string{"20/04/26", "20/04/2026", "20 April 2026", "20 Apr 2026"}, "2026-04-20", false},
		{"monday", []string{"mon", "monday", "MON"}, "2026-10-26", false},
		{"tuesday", []string{"tue", "tues", "tuesday"}, "2026-10-27", false},
		{"wednesday", []string{"wed", "wednesday"}, "2026-10-21", false},
		{"thursday", []string{"thu", "thur", "thurs", "thursday"}, "2026-10-22", false},
		{"friday", []string{"fri", "friday"}, "2026-10-23", false},
		{"saturday", []string{"sat", "saturday"}, "2026-10-24", false},
		{"sunday", []string{"sun", "sunday"}, "2026-10-25", false},
		{"invalid", []string{"", "someday", "1 fortnight", "2026-13-01"}, "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, arg := range tt.args {
				got, err := ParseDue(arg, now)
				if (err != nil) != tt.wantErr {
					t.Errorf("ParseDue(%q) error = %v, wantErr %v", arg, err, tt.wantErr)
					return
				}
				if err == nil && Format(got) != tt.want {
					t.Errorf("ParseDue(%q) = %v, want %v", arg, Format(got), tt.want)
				}
			}
		})
	}
}
