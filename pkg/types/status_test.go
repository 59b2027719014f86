package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusCanTransition(t *testing.T) {
	tests := []struct {
		name string
		from Status
		to   Status
		want bool
	}{
		{name: "draft to validated", from: StatusDraft, to: StatusValidated, want: true},
		{name: "draft to canceled", from: StatusDraft, to: StatusCanceled, want: true},
		{name: "draft to draft", from: StatusDraft, to: StatusDraft, want: false},
		{name: "validated is terminal", from: StatusValidated, to: StatusCanceled, want: false},
		{name: "canceled is terminal", from: StatusCanceled, to: StatusValidated, want: false},
		{name: "no way back to draft", from: StatusValidated, to: StatusDraft, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransition(tt.to))
		})
	}
}

func TestStatusLabel(t *testing.T) {
	assert.Equal(t, "StatusDraft", StatusDraft.Label())
	assert.Equal(t, "StatusValidated", StatusValidated.Label())
	assert.Equal(t, "StatusCanceled", StatusCanceled.Label())
	assert.Equal(t, "StatusUnknown", Status(42).Label())
}
