package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helpdesk/internal/shared/errors"
)

func TestDeleteTicketUseCase_Execute_RemovesRowsAndFiles(t *testing.T) {
	mockRepo := &mockTicketRepository{
		DeleteFunc: func(ctx context.Context, ticketID uint) (int64, []string, error) {
			assert.Equal(t, uint(5), ticketID)
			return 4, []string{"173000-ab12.pdf", "173001-cd34.png"}, nil
		},
	}

	var removed []string
	mockFiles := &mockFileStore{
		RemoveFunc: func(fileName string) error {
			removed = append(removed, fileName)
			return nil
		},
	}

	useCase := NewDeleteTicketUseCase(mockRepo, mockFiles, &mockLogger{})
	result, err := useCase.Execute(context.Background(), DeleteTicketCommand{TicketID: 5})

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, int64(4), result.RowsRemoved)
	assert.Equal(t, []string{"173000-ab12.pdf", "173001-cd34.png"}, removed)
}

func TestDeleteTicketUseCase_Execute_NotFound(t *testing.T) {
	mockRepo := &mockTicketRepository{
		DeleteFunc: func(ctx context.Context, ticketID uint) (int64, []string, error) {
			return 0, nil, nil
		},
	}

	removeCalled := false
	mockFiles := &mockFileStore{
		RemoveFunc: func(fileName string) error {
			removeCalled = true
			return nil
		},
	}

	useCase := NewDeleteTicketUseCase(mockRepo, mockFiles, &mockLogger{})
	result, err := useCase.Execute(context.Background(), DeleteTicketCommand{TicketID: 42})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, errors.IsNotFoundError(err))
	assert.False(t, removeCalled)
}

func TestDeleteTicketUseCase_Execute_FileRemovalFailureIsLoggedOnly(t *testing.T) {
	mockRepo := &mockTicketRepository{
		DeleteFunc: func(ctx context.Context, ticketID uint) (int64, []string, error) {
			return 2, []string{"gone.pdf"}, nil
		},
	}
	mockFiles := &mockFileStore{
		RemoveFunc: func(fileName string) error {
			return errors.NewInternalError("disk error")
		},
	}

	useCase := NewDeleteTicketUseCase(mockRepo, mockFiles, &mockLogger{})
	result, err := useCase.Execute(context.Background(), DeleteTicketCommand{TicketID: 5})

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, int64(2), result.RowsRemoved)
}
