package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/shared/errors"
)

func TestAddAnnotationUseCase_Execute_Success(t *testing.T) {
	stored := newStoredTicket(t, 3)
	originalUpdatedAt := stored.UpdatedAt()

	var savedAnnotation *ticket.Annotation
	var ticketUpdated bool

	mockRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
			return stored, nil
		},
		UpdateFunc: func(ctx context.Context, tkt *ticket.Ticket) error {
			ticketUpdated = true
			return nil
		},
	}
	mockAnnotations := &mockAnnotationRepository{
		SaveFunc: func(ctx context.Context, annotation *ticket.Annotation) error {
			savedAnnotation = annotation
			return annotation.SetID(11)
		},
	}

	useCase := NewAddAnnotationUseCase(mockRepo, mockAnnotations, &mockTxManager{}, &mockLogger{})
	result, err := useCase.Execute(context.Background(), AddAnnotationCommand{
		TicketID: 3,
		Text:     "Técnico acionado",
		Author:   "OPERADOR",
	})

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, uint(11), result.AnnotationID)
	assert.Equal(t, "OPERADOR", result.Author)

	require.NotNil(t, savedAnnotation)
	assert.Equal(t, "Técnico acionado", savedAnnotation.Text())
	assert.True(t, ticketUpdated, "the parent updatedAt bump must be persisted")
	assert.True(t, !stored.UpdatedAt().Before(originalUpdatedAt))
}

func TestAddAnnotationUseCase_Execute_DefaultsAuthor(t *testing.T) {
	mockRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
			return newStoredTicket(t, ticketID), nil
		},
	}
	mockAnnotations := &mockAnnotationRepository{
		SaveFunc: func(ctx context.Context, annotation *ticket.Annotation) error {
			return annotation.SetID(1)
		},
	}

	useCase := NewAddAnnotationUseCase(mockRepo, mockAnnotations, &mockTxManager{}, &mockLogger{})
	result, err := useCase.Execute(context.Background(), AddAnnotationCommand{
		TicketID: 3,
		Text:     "Sem identificação",
	})

	require.NoError(t, err)
	assert.Equal(t, ticket.AnonymousAuthor, result.Author)
}

func TestAddAnnotationUseCase_Execute_EmptyTextRejected(t *testing.T) {
	mockRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
			return newStoredTicket(t, ticketID), nil
		},
	}

	saveCalled := false
	mockAnnotations := &mockAnnotationRepository{
		SaveFunc: func(ctx context.Context, annotation *ticket.Annotation) error {
			saveCalled = true
			return nil
		},
	}

	useCase := NewAddAnnotationUseCase(mockRepo, mockAnnotations, &mockTxManager{}, &mockLogger{})
	result, err := useCase.Execute(context.Background(), AddAnnotationCommand{
		TicketID: 3,
		Text:     "   ",
	})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, errors.IsValidationError(err))
	assert.False(t, saveCalled)
}

func TestAddAnnotationUseCase_Execute_TicketNotFound(t *testing.T) {
	mockRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
			return nil, errors.NewNotFoundError("ticket not found")
		},
	}

	useCase := NewAddAnnotationUseCase(mockRepo, &mockAnnotationRepository{}, &mockTxManager{}, &mockLogger{})
	result, err := useCase.Execute(context.Background(), AddAnnotationCommand{
		TicketID: 404,
		Text:     "Teste",
	})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestDeleteAnnotationUseCase_Execute_ScopedToTicket(t *testing.T) {
	mockRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
			return newStoredTicket(t, ticketID), nil
		},
	}
	mockAnnotations := &mockAnnotationRepository{
		DeleteFunc: func(ctx context.Context, ticketID, annotationID uint) (int64, error) {
			// annotation 9 belongs to another ticket
			if ticketID == 3 && annotationID == 9 {
				return 0, nil
			}
			return 1, nil
		},
	}

	useCase := NewDeleteAnnotationUseCase(mockRepo, mockAnnotations, &mockTxManager{}, &mockLogger{})

	result, err := useCase.Execute(context.Background(), DeleteAnnotationCommand{TicketID: 3, AnnotationID: 9})
	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, errors.IsNotFoundError(err))

	result, err = useCase.Execute(context.Background(), DeleteAnnotationCommand{TicketID: 3, AnnotationID: 7})
	require.NoError(t, err)
	assert.Equal(t, uint(7), result.AnnotationID)
}

func TestDeleteAnnotationUseCase_Execute_BumpsTicketUpdatedAt(t *testing.T) {
	stored := newStoredTicket(t, 3)
	originalUpdatedAt := stored.UpdatedAt()

	var ticketUpdated bool
	mockRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
			return stored, nil
		},
		UpdateFunc: func(ctx context.Context, tkt *ticket.Ticket) error {
			ticketUpdated = true
			return nil
		},
	}
	mockAnnotations := &mockAnnotationRepository{
		DeleteFunc: func(ctx context.Context, ticketID, annotationID uint) (int64, error) {
			return 1, nil
		},
	}

	useCase := NewDeleteAnnotationUseCase(mockRepo, mockAnnotations, &mockTxManager{}, &mockLogger{})
	result, err := useCase.Execute(context.Background(), DeleteAnnotationCommand{TicketID: 3, AnnotationID: 7})

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, ticketUpdated, "the parent updatedAt bump must be persisted")
	assert.True(t, !stored.UpdatedAt().Before(originalUpdatedAt))
}

func TestDeleteAnnotationUseCase_Execute_TicketNotFound(t *testing.T) {
	mockRepo := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
			return nil, errors.NewNotFoundError("ticket not found")
		},
	}
	deleteCalled := false
	mockAnnotations := &mockAnnotationRepository{
		DeleteFunc: func(ctx context.Context, ticketID, annotationID uint) (int64, error) {
			deleteCalled = true
			return 1, nil
		},
	}

	useCase := NewDeleteAnnotationUseCase(mockRepo, mockAnnotations, &mockTxManager{}, &mockLogger{})
	result, err := useCase.Execute(context.Background(), DeleteAnnotationCommand{TicketID: 404, AnnotationID: 7})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, errors.IsNotFoundError(err))
	assert.False(t, deleteCalled)
}
