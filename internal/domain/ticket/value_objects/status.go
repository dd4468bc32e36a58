package value_objects

import "fmt"

// TicketStatus is the triage state of a ticket. The labels are the
// Portuguese vocabulary the clients display verbatim.
type TicketStatus string

const (
	StatusOpen       TicketStatus = "Aberto"
	StatusInProgress TicketStatus = "Em Andamento"
	StatusResolved   TicketStatus = "Resolvido"
	StatusClosed     TicketStatus = "Fechado"
)

var validTicketStatuses = map[TicketStatus]bool{
	StatusOpen:       true,
	StatusInProgress: true,
	StatusResolved:   true,
	StatusClosed:     true,
}

// AllStatuses returns every status in display order. Statistics zero-fill
// from this list so no vocabulary value is ever omitted.
func AllStatuses() []TicketStatus {
	return []TicketStatus{StatusOpen, StatusInProgress, StatusResolved, StatusClosed}
}

func (ts TicketStatus) String() string {
	return string(ts)
}

func (ts TicketStatus) IsValid() bool {
	return validTicketStatuses[ts]
}

func (ts TicketStatus) IsOpen() bool {
	return ts == StatusOpen
}

func (ts TicketStatus) IsInProgress() bool {
	return ts == StatusInProgress
}

func (ts TicketStatus) IsResolved() bool {
	return ts == StatusResolved
}

func (ts TicketStatus) IsClosed() bool {
	return ts == StatusClosed
}

func NewTicketStatus(s string) (TicketStatus, error) {
	ts := TicketStatus(s)
	if !ts.IsValid() {
		return "", fmt.Errorf("invalid ticket status: %s", s)
	}
	return ts, nil
}
