package notification

import "errors"

var (
	ErrNotificationNotFound = errors.New("notification not found")
	ErrAssigneeRequired     = errors.New("assignee id is required")
	ErrLeadRequired         = errors.New("lead id is required")
	ErrInvalidRole          = errors.New("invalid role")
	ErrInvalidType          = errors.New("invalid notification type")
	ErrTitleRequired        = errors.New("title is required")
	ErrInvalidPayload       = errors.New("invalid event payload")
	ErrQueueFull            = errors.New("dispatch queue full")
	ErrDispatcherClosed     = errors.New("dispatcher closed")
)
