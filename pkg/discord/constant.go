package discord

import "time"

const (
	defaultBaseURL = "https://discord.com/api/webhooks"

	ColorInfo    = 3447003
	ColorWarning = 16776960
	ColorError   = 15158332

	MaxDescriptionLen = 4096
	MaxFieldValueLen  = 1024

	DefaultTimeout    = 10 * time.Second
	DefaultRetryCount = 2
	DefaultRetryDelay = 500 * time.Millisecond

	DefaultUsername = "Lead Notifications"
	UserAgent       = "lead-notification-srv/1.0"
	ReportBugTitle  = "Service Error Report"
)
