package ui

import (
	"gqldoc/internal/eventbus"
)

// EventMsg wraps a domain event for delivery into the Bubble Tea loop
type EventMsg struct {
	Event eventbus.DomainEvent
}

// pagerDoneMsg signals that the external pager has exited
type pagerDoneMsg struct {
	err error
}

// clearStatusMsg clears a transient status message
type clearStatusMsg struct{}
