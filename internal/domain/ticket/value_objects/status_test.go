package value_objects

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTicketStatus(t *testing.T) {
	tests := []struct {
		input   string
		want    TicketStatus
		wantErr bool
	}{
		{input: "Aberto", want: StatusOpen},
		{input: "Em Andamento", want: StatusInProgress},
		{input: "Resolvido", want: StatusResolved},
		{input: "Fechado", want: StatusClosed},
		{input: "aberto", wantErr: true},
		{input: "Open", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := NewTicketStatus(tt.input)
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

func TestAllStatuses_DisplayOrder(t *testing.T) {
	assert.Equal(t, []TicketStatus{StatusOpen, StatusInProgress, StatusResolved, StatusClosed}, AllStatuses())
}

func TestTicketStatus_Predicates(t *testing.T) {
	assert.True(t, StatusOpen.IsOpen())
	assert.True(t, StatusInProgress.IsInProgress())
	assert.True(t, StatusResolved.IsResolved())
	assert.True(t, StatusClosed.IsClosed())
	assert.False(t, StatusOpen.IsClosed())
	assert.Equal(t, "Em Andamento", StatusInProgress.String())
}
