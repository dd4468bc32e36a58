package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/value_objects"
	"helpdesk/internal/shared/errors"
)

func TestListTicketsUseCase_Execute_FilterWildcards(t *testing.T) {
	tests := []struct {
		name         string
		query        ListTicketsQuery
		wantStatus   *vo.TicketStatus
		wantPriority *vo.Priority
		wantSearch   string
	}{
		{
			name:  "no filters",
			query: ListTicketsQuery{},
		},
		{
			name:  "all wildcard ignored",
			query: ListTicketsQuery{Status: "all", Priority: "ALL"},
		},
		{
			name:       "exact status",
			query:      ListTicketsQuery{Status: vo.StatusOpen.String()},
			wantStatus: &[]vo.TicketStatus{vo.StatusOpen}[0],
		},
		{
			name:         "priority and trimmed search",
			query:        ListTicketsQuery{Priority: vo.PriorityCritical.String(), Search: "  impressora  "},
			wantPriority: &[]vo.Priority{vo.PriorityCritical}[0],
			wantSearch:   "impressora",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotFilter ticket.TicketFilter
			mockRepo := &mockTicketRepository{
				ListFunc: func(ctx context.Context, filter ticket.TicketFilter) ([]*ticket.Ticket, error) {
					gotFilter = filter
					return nil, nil
				},
			}

			useCase := NewListTicketsUseCase(mockRepo, &mockLogger{})
			result, err := useCase.Execute(context.Background(), tt.query)

			require.NoError(t, err)
			assert.Equal(t, 0, result.Total)
			assert.Equal(t, tt.wantStatus, gotFilter.Status)
			assert.Equal(t, tt.wantPriority, gotFilter.Priority)
			assert.Equal(t, tt.wantSearch, gotFilter.Search)
		})
	}
}

func TestListTicketsUseCase_Execute_InvalidFilterValues(t *testing.T) {
	listCalled := false
	mockRepo := &mockTicketRepository{
		ListFunc: func(ctx context.Context, filter ticket.TicketFilter) ([]*ticket.Ticket, error) {
			listCalled = true
			return nil, nil
		},
	}

	useCase := NewListTicketsUseCase(mockRepo, &mockLogger{})

	_, err := useCase.Execute(context.Background(), ListTicketsQuery{Status: "Pendente"})
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))

	_, err = useCase.Execute(context.Background(), ListTicketsQuery{Priority: "Urgente"})
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))

	assert.False(t, listCalled)
}

func TestListTicketsUseCase_Execute_SummaryItemsCarryCounts(t *testing.T) {
	stored := newStoredTicket(t, 3)

	annotation, err := ticket.NewAnnotation(3, "Primeira tratativa", "OPERADOR")
	require.NoError(t, err)
	require.NoError(t, annotation.SetID(1))
	require.NoError(t, stored.AddAnnotation(annotation))

	attachment, err := ticket.NewAttachment(3, "f-1.png", "tela.png", 99, "image/png")
	require.NoError(t, err)
	require.NoError(t, attachment.SetID(1))
	require.NoError(t, stored.AddAttachment(attachment))

	mockRepo := &mockTicketRepository{
		ListFunc: func(ctx context.Context, filter ticket.TicketFilter) ([]*ticket.Ticket, error) {
			return []*ticket.Ticket{stored}, nil
		},
	}

	useCase := NewListTicketsUseCase(mockRepo, &mockLogger{})
	result, err := useCase.Execute(context.Background(), ListTicketsQuery{})

	require.NoError(t, err)
	require.Len(t, result.Tickets, 1)
	item := result.Tickets[0]
	assert.Equal(t, "TK0010", item.Number)
	assert.Equal(t, 1, item.AnnotationCount)
	assert.Equal(t, 1, item.AttachmentCount)
	assert.Equal(t, 1, result.Total)
}
