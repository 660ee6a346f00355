package stripe

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeStripeStatus(t *testing.T) {
	ptr := func(s string) *string { return &s }

	tests := []struct {
		name string
		in   *string
		want string
	}{
		{name: "nil", in: nil, want: "none"},
		{name: "empty", in: ptr(""), want: "none"},
		{name: "whitespace", in: ptr("   "), want: "none"},
		{name: "active", in: ptr("active"), want: "active"},
		{name: "trialing", in: ptr("trialing"), want: "trialing"},
		{name: "past_due", in: ptr("past_due"), want: "past_due"},
		{name: "unpaid folds into past_due", in: ptr("unpaid"), want: "past_due"},
		{name: "canceled", in: ptr("canceled"), want: "canceled"},
		{name: "incomplete_expired folds into canceled", in: ptr("incomplete_expired"), want: "canceled"},
		{name: "unknown passes through trimmed", in: ptr(" incomplete "), want: "incomplete"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeStripeStatus(tt.in))
		})
	}
}
