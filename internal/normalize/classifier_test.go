package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/finscore-dev/finscore/internal/model"
)

func TestInferCategory(t *testing.T) {
	tests := []struct {
		name        string
		description string
		want        model.Category
	}{
		{
			name:        "airtime purchase",
			description: "Airtime purchase 0712345678",
			want:        model.CategoryAirtime,
		},
		{
			name:        "send money",
			description: "Sent to JOHN DOE",
			want:        model.CategorySend,
		},
		{
			name:        "transfer keyword",
			description: "Funds transfer to savings",
			want:        model.CategorySend,
		},
		{
			name:        "agent withdrawal",
			description: "Withdraw cash from agent 48291",
			want:        model.CategoryWithdraw,
		},
		{
			name:        "cash keyword",
			description: "Agent cash out",
			want:        model.CategoryWithdraw,
		},
		{
			name:        "till payment",
			description: "Paid to till 832100",
			want:        model.CategoryPayment,
		},
		{
			name:        "salary",
			description: "ACME LTD salary November",
			want:        model.CategoryIncome,
		},
		{
			name:        "deposit",
			description: "Customer deposit at agent",
			want:        model.CategoryIncome,
		},
		{
			name:        "case insensitive",
			description: "AIRTIME TOP-UP",
			want:        model.CategoryAirtime,
		},
		{
			name:        "airtime outranks send when both match",
			description: "send money for airtime",
			want:        model.CategoryAirtime,
		},
		{
			name:        "send outranks payment when both match",
			description: "sent payment to vendor",
			want:        model.CategorySend,
		},
		{
			name:        "no keyword",
			description: "buy goods",
			want:        model.CategoryUnknown,
		},
		{
			name:        "empty description",
			description: "",
			want:        model.CategoryUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, InferCategory(tt.description))
		})
	}
}
