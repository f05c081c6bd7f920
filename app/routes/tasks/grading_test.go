package tasks

import (
	"encoding/json"
	"math"
	"testing"
)

func TestParseScore(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    float64
		wantErr bool
	}{
		{name: "json number", raw: `85`, want: 85},
		{name: "json decimal", raw: `85.5`, want: 85.5},
		{name: "numeric string", raw: `"90"`, want: 90},
		{name: "decimal string", raw: `"90.25"`, want: 90.25},
		{name: "non-numeric string", raw: `"abc"`, wantErr: true},
		{name: "empty string", raw: `""`, wantErr: true},
		{name: "null", raw: `null`, wantErr: true},
		{name: "object", raw: `{}`, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseScore(json.RawMessage(tt.raw))
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseScore(%s) error = %v, wantErr %v", tt.raw, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("parseScore(%s) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}

// ParseFloat accepts "NaN" and "Inf" spellings, so a string score can carry
// a non-finite value past parseScore; validateScore must stop it.
func TestNonFiniteStringScoreRejected(t *testing.T) {
	for _, raw := range []string{`"NaN"`, `"Inf"`, `"-Inf"`} {
		got, err := parseScore(json.RawMessage(raw))
		if err != nil {
			t.Fatalf("parseScore(%s) error = %v", raw, err)
		}
		if err := validateScore(got, 100); err == nil {
			t.Errorf("validateScore accepted %s", raw)
		}
	}
}

func TestValidateScore(t *testing.T) {
	tests := []struct {
		name        string
		score       float64
		totalPoints float64
		wantErr     bool
	}{
		{name: "negative", score: -1, totalPoints: 100, wantErr: true},
		{name: "above total", score: 101, totalPoints: 100, wantErr: true},
		{name: "at total", score: 100, totalPoints: 100},
		{name: "zero", score: 0, totalPoints: 100},
		{name: "within range", score: 72.5, totalPoints: 100},
		{name: "small total", score: 11, totalPoints: 10, wantErr: true},
		{name: "nan", score: math.NaN(), totalPoints: 100, wantErr: true},
		{name: "positive infinity", score: math.Inf(1), totalPoints: 100, wantErr: true},
		{name: "negative infinity", score: math.Inf(-1), totalPoints: 100, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateScore(tt.score, tt.totalPoints)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateScore(%v, %v) error = %v, wantErr %v", tt.score, tt.totalPoints, err, tt.wantErr)
			}
		})
	}
}
