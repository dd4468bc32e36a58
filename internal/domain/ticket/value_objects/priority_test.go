package value_objects

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPriority(t *testing.T) {
	tests := []struct {
		input   string
		want    Priority
		wantErr bool
	}{
		{input: "Baixa", want: PriorityLow},
		{input: "Média", want: PriorityMedium},
		{input: "Alta", want: PriorityHigh},
		{input: "Crítica", want: PriorityCritical},
		{input: "Media", wantErr: true},
		{input: "alta", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := NewPriority(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.True(t, got.IsValid())
		})
	}
}

func TestAllPriorities_UrgencyOrder(t *testing.T) {
	assert.Equal(t, []Priority{PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical}, AllPriorities())
}

func TestPriority_Predicates(t *testing.T) {
	assert.True(t, PriorityLow.IsLow())
	assert.True(t, PriorityMedium.IsMedium())
	assert.True(t, PriorityHigh.IsHigh())
	assert.True(t, PriorityCritical.IsCritical())
	assert.False(t, PriorityLow.IsCritical())
	assert.Equal(t, "Crítica", PriorityCritical.String())
}
