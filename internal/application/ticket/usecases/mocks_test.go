package usecases

import (
	"context"
	"io"

	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/value_objects"
	"helpdesk/internal/shared/logger"
)

type mockTicketRepository struct {
	SaveFunc            func(ctx context.Context, t *ticket.Ticket) error
	UpdateFunc          func(ctx context.Context, t *ticket.Ticket) error
	DeleteFunc          func(ctx context.Context, ticketID uint) (int64, []string, error)
	GetByIDFunc         func(ctx context.Context, ticketID uint) (*ticket.Ticket, error)
	GetByNumberFunc     func(ctx context.Context, number string) (*ticket.Ticket, error)
	ListFunc            func(ctx context.Context, filter ticket.TicketFilter) ([]*ticket.Ticket, error)
	CountFunc           func(ctx context.Context) (int64, error)
	CountByStatusFunc   func(ctx context.Context) (map[vo.TicketStatus]int64, error)
	CountByPriorityFunc func(ctx context.Context) (map[vo.Priority]int64, error)
}

func (m *mockTicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) Delete(ctx context.Context, ticketID uint) (int64, []string, error) {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, ticketID)
	}
	return 0, nil, nil
}

func (m *mockTicketRepository) GetByID(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, ticketID)
	}
	return nil, nil
}

func (m *mockTicketRepository) GetByNumber(ctx context.Context, number string) (*ticket.Ticket, error) {
	if m.GetByNumberFunc != nil {
		return m.GetByNumberFunc(ctx, number)
	}
	return nil, nil
}

func (m *mockTicketRepository) List(ctx context.Context, filter ticket.TicketFilter) ([]*ticket.Ticket, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, nil
}

func (m *mockTicketRepository) Count(ctx context.Context) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	return 0, nil
}

func (m *mockTicketRepository) CountByStatus(ctx context.Context) (map[vo.TicketStatus]int64, error) {
	if m.CountByStatusFunc != nil {
		return m.CountByStatusFunc(ctx)
	}
	return map[vo.TicketStatus]int64{}, nil
}

func (m *mockTicketRepository) CountByPriority(ctx context.Context) (map[vo.Priority]int64, error) {
	if m.CountByPriorityFunc != nil {
		return m.CountByPriorityFunc(ctx)
	}
	return map[vo.Priority]int64{}, nil
}

type mockAnnotationRepository struct {
	SaveFunc           func(ctx context.Context, annotation *ticket.Annotation) error
	ListByTicketIDFunc func(ctx context.Context, ticketID uint) ([]*ticket.Annotation, error)
	DeleteFunc         func(ctx context.Context, ticketID, annotationID uint) (int64, error)
}

func (m *mockAnnotationRepository) Save(ctx context.Context, annotation *ticket.Annotation) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, annotation)
	}
	return nil
}

func (m *mockAnnotationRepository) ListByTicketID(ctx context.Context, ticketID uint) ([]*ticket.Annotation, error) {
	if m.ListByTicketIDFunc != nil {
		return m.ListByTicketIDFunc(ctx, ticketID)
	}
	return nil, nil
}

func (m *mockAnnotationRepository) Delete(ctx context.Context, ticketID, annotationID uint) (int64, error) {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, ticketID, annotationID)
	}
	return 0, nil
}

type mockAttachmentRepository struct {
	SaveFunc           func(ctx context.Context, attachment *ticket.Attachment) error
	ListByTicketIDFunc func(ctx context.Context, ticketID uint) ([]*ticket.Attachment, error)
}

func (m *mockAttachmentRepository) Save(ctx context.Context, attachment *ticket.Attachment) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, attachment)
	}
	return nil
}

func (m *mockAttachmentRepository) ListByTicketID(ctx context.Context, ticketID uint) ([]*ticket.Attachment, error) {
	if m.ListByTicketIDFunc != nil {
		return m.ListByTicketIDFunc(ctx, ticketID)
	}
	return nil, nil
}

type mockNumberGenerator struct {
	NextFunc func(ctx context.Context) (string, error)
}

func (m *mockNumberGenerator) Next(ctx context.Context) (string, error) {
	if m.NextFunc != nil {
		return m.NextFunc(ctx)
	}
	return "TK0001", nil
}

// mockTxManager runs the function inline; failures surface exactly as a
// real rolled-back transaction would.
type mockTxManager struct {
	RunFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (m *mockTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.RunFunc != nil {
		return m.RunFunc(ctx, fn)
	}
	return fn(ctx)
}

type mockFileStore struct {
	StoreFunc  func(originalName string, content io.Reader) (string, error)
	RemoveFunc func(fileName string) error
	PathFunc   func(fileName string) string
}

func (m *mockFileStore) Store(originalName string, content io.Reader) (string, error) {
	if m.StoreFunc != nil {
		return m.StoreFunc(originalName, content)
	}
	return "stored-file.bin", nil
}

func (m *mockFileStore) Remove(fileName string) error {
	if m.RemoveFunc != nil {
		return m.RemoveFunc(fileName)
	}
	return nil
}

func (m *mockFileStore) Path(fileName string) string {
	if m.PathFunc != nil {
		return m.PathFunc(fileName)
	}
	return "/tmp/" + fileName
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)                     {}
func (m *mockLogger) Info(msg string, args ...any)                      {}
func (m *mockLogger) Warn(msg string, args ...any)                      {}
func (m *mockLogger) Error(msg string, args ...any)                     {}
func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{})   {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})    {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})    {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{})   {}
func (m *mockLogger) With(args ...any) logger.Interface                 { return m }
func (m *mockLogger) Named(name string) logger.Interface                { return m }
