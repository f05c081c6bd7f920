package models

import (
	"testing"
	"time"
)

func TestDeriveDeliveryStatus(t *testing.T) {
	dueDate := time.Date(2024, 1, 10, 23, 59, 0, 0, time.UTC)

	submittedAt := func(ts time.Time) *Submission {
		return &Submission{SubmittedAt: &ts}
	}

	tests := []struct {
		name string
		sub  *Submission
		now  time.Time
		want DeliveryStatus
	}{
		{
			name: "no submission before due date",
			sub:  nil,
			now:  time.Date(2024, 1, 9, 12, 0, 0, 0, time.UTC),
			want: DeliveryPending,
		},
		{
			name: "no submission after due date",
			sub:  nil,
			now:  time.Date(2024, 1, 11, 12, 0, 0, 0, time.UTC),
			want: DeliveryDidNotSubmit,
		},
		{
			name: "submitted before due date",
			sub:  submittedAt(time.Date(2024, 1, 10, 20, 0, 0, 0, time.UTC)),
			now:  time.Date(2024, 1, 12, 0, 0, 0, 0, time.UTC),
			want: DeliveryOnTime,
		},
		{
			name: "submitted exactly at due date",
			sub:  submittedAt(dueDate),
			now:  time.Date(2024, 1, 12, 0, 0, 0, 0, time.UTC),
			want: DeliveryOnTime,
		},
		{
			name: "submitted after due date",
			sub:  submittedAt(time.Date(2024, 1, 11, 0, 1, 0, 0, time.UTC)),
			now:  time.Date(2024, 1, 12, 0, 0, 0, 0, time.UTC),
			want: DeliveryLate,
		},
		{
			name: "synthesized grade carrier counts as not submitted",
			sub:  &Submission{Status: SubmissionStatusGradedWithoutSubmission},
			now:  time.Date(2024, 1, 11, 12, 0, 0, 0, time.UTC),
			want: DeliveryDidNotSubmit,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DeriveDeliveryStatus(tt.sub, dueDate, tt.now); got != tt.want {
				t.Errorf("DeriveDeliveryStatus() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDeriveGradingStatus(t *testing.T) {
	score := 85.0
	ts := time.Now()

	tests := []struct {
		name string
		sub  *Submission
		want GradingStatus
	}{
		{name: "no submission", sub: nil, want: PendingGrade},
		{name: "submission without score", sub: &Submission{SubmittedAt: &ts}, want: PendingGrade},
		{name: "submission with score", sub: &Submission{SubmittedAt: &ts, Score: &score}, want: Graded},
		{name: "graded without submission", sub: &Submission{Score: &score}, want: Graded},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DeriveGradingStatus(tt.sub); got != tt.want {
				t.Errorf("DeriveGradingStatus() = %q, want %q", got, tt.want)
			}
		})
	}
}

// Grading status must not care about lateness: a late submission is still
// gradeable and a graded one stays graded.
func TestGradingIndependentOfDelivery(t *testing.T) {
	dueDate := time.Date(2024, 1, 10, 23, 59, 0, 0, time.UTC)
	late := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	score := 70.0

	sub := &Submission{SubmittedAt: &late, Score: &score}

	if got := DeriveDeliveryStatus(sub, dueDate, late.Add(time.Hour)); got != DeliveryLate {
		t.Errorf("DeriveDeliveryStatus() = %q, want %q", got, DeliveryLate)
	}
	if got := DeriveGradingStatus(sub); got != Graded {
		t.Errorf("DeriveGradingStatus() = %q, want %q", got, Graded)
	}
}
