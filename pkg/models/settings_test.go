package models

import "testing"

func TestParseBool(t *testing.T) {
	tests := []struct {
		in       string
		fallback bool
		want     bool
	}{
		{"true", false, true},
		{"false", true, false},
		{"1", false, true},
		{"", true, true},
		{"maybe", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := ParseBool(tt.in, tt.fallback); got != tt.want {
				t.Errorf("ParseBool(%q, %v) = %v, want %v", tt.in, tt.fallback, got, tt.want)
			}
		})
	}
}

func TestViewSettingsFields(t *testing.T) {
	v := DefaultViewSettings()
	fields := v.Fields()
	if len(fields) != 3 {
		t.Fatalf("expected 3 fields, got %d", len(fields))
	}

	*fields[0].Value = true
	if !v.CollapseAll {
		t.Errorf("expected field pointer to write through to CollapseAll")
	}
	if fields[1].Key != KeyShowDescription || fields[2].Key != KeyShowAlias {
		t.Errorf("unexpected key order: %s, %s", fields[1].Key, fields[2].Key)
	}
}
