package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "helpdesk/internal/domain/ticket/value_objects"
)

func TestGetStatisticsUseCase_Execute_ZeroFilledOnEmptyStore(t *testing.T) {
	useCase := NewGetStatisticsUseCase(&mockTicketRepository{}, &mockLogger{})

	result, err := useCase.Execute(context.Background(), GetStatisticsQuery{})

	require.NoError(t, err)
	assert.Equal(t, int64(0), result.Total)

	require.Len(t, result.ByStatus, len(vo.AllStatuses()))
	for _, status := range vo.AllStatuses() {
		count, ok := result.ByStatus[status.String()]
		assert.True(t, ok, "missing status bucket %q", status)
		assert.Equal(t, int64(0), count)
	}

	require.Len(t, result.ByPriority, len(vo.AllPriorities()))
	for _, priority := range vo.AllPriorities() {
		count, ok := result.ByPriority[priority.String()]
		assert.True(t, ok, "missing priority bucket %q", priority)
		assert.Equal(t, int64(0), count)
	}
}

func TestGetStatisticsUseCase_Execute_MergesStoredCounts(t *testing.T) {
	mockRepo := &mockTicketRepository{
		CountFunc: func(ctx context.Context) (int64, error) {
			return 7, nil
		},
		CountByStatusFunc: func(ctx context.Context) (map[vo.TicketStatus]int64, error) {
			return map[vo.TicketStatus]int64{
				vo.StatusOpen:     4,
				vo.StatusResolved: 3,
			}, nil
		},
		CountByPriorityFunc: func(ctx context.Context) (map[vo.Priority]int64, error) {
			return map[vo.Priority]int64{
				vo.PriorityMedium:   5,
				vo.PriorityCritical: 2,
			}, nil
		},
	}

	useCase := NewGetStatisticsUseCase(mockRepo, &mockLogger{})
	result, err := useCase.Execute(context.Background(), GetStatisticsQuery{})

	require.NoError(t, err)
	assert.Equal(t, int64(7), result.Total)
	assert.Equal(t, int64(4), result.ByStatus[vo.StatusOpen.String()])
	assert.Equal(t, int64(3), result.ByStatus[vo.StatusResolved.String()])
	assert.Equal(t, int64(0), result.ByStatus[vo.StatusInProgress.String()])
	assert.Equal(t, int64(0), result.ByStatus[vo.StatusClosed.String()])
	assert.Equal(t, int64(5), result.ByPriority[vo.PriorityMedium.String()])
	assert.Equal(t, int64(2), result.ByPriority[vo.PriorityCritical.String()])
	assert.Equal(t, int64(0), result.ByPriority[vo.PriorityLow.String()])
	assert.Equal(t, int64(0), result.ByPriority[vo.PriorityHigh.String()])
}
