package response

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"runtime"
	"strings"

	"lead-notification-srv/pkg/discord"

	"github.com/gin-gonic/gin"
)

func captureStackTrace() []string {
	var pcs [DefaultStackTraceDepth]uintptr
	n := runtime.Callers(3, pcs[:])
	if n == 0 {
		return nil
	}
	frames := runtime.CallersFrames(pcs[:n])
	var stack []string
	for {
		f, more := frames.Next()
		stack = append(stack, fmt.Sprintf("%s:%d %s", f.File, f.Line, f.Function))
		if !more {
			break
		}
	}
	return stack
}

// reportBug posts the report in Discord-sized chunks off the request goroutine.
func reportBug(c *gin.Context, d discord.IDiscord, message string) {
	chunks := splitMessage(message, DiscordMaxMessageLen)
	go func() {
		for _, msg := range chunks {
			if err := d.ReportBug(context.Background(), msg); err != nil {
				log.Printf("pkg.response.reportBug.ReportBug: %v\n", err)
			}
		}
	}()
}

func splitMessage(message string, maxLen int) []string {
	var chunks []string
	var current strings.Builder
	for _, line := range strings.Split(message, "\n") {
		line += "\n"
		if current.Len()+len(line) > maxLen {
			if current.Len() > 0 {
				chunks = append(chunks, strings.TrimSuffix(current.String(), "\n"))
				current.Reset()
			}
			for len(line) > maxLen {
				chunks = append(chunks, line[:maxLen])
				line = line[maxLen:]
			}
		}
		current.WriteString(line)
	}
	if current.Len() > 0 {
		chunks = append(chunks, strings.TrimSuffix(current.String(), "\n"))
	}
	return chunks
}

func buildBugReport(c *gin.Context, errString string, backtrace []string) string {
	var body []byte
	if c.Request.Body != nil {
		body, _ = io.ReadAll(c.Request.Body)
		c.Request.Body = io.NopCloser(bytes.NewBuffer(body))
	}

	var sb strings.Builder
	sb.WriteString("============ LEAD NOTIFICATION SERVICE ERROR ============\n")
	fmt.Fprintf(&sb, "Route   : %s\n", c.Request.URL.Path)
	fmt.Fprintf(&sb, "Method  : %s\n", c.Request.Method)
	if q := c.Request.URL.Query().Encode(); q != "" {
		fmt.Fprintf(&sb, "Params  : %s\n", q)
	}
	for key, values := range c.Request.Header {
		if redactedHeaders[key] {
			continue
		}
		fmt.Fprintf(&sb, "Header  : %s: %s\n", key, strings.Join(values, ", "))
	}
	if len(body) > 0 {
		fmt.Fprintf(&sb, "Body    : %s\n", body)
	}
	fmt.Fprintf(&sb, "Error   : %s\n", errString)
	for i, line := range backtrace {
		fmt.Fprintf(&sb, "[%d]: %s\n", i, line)
	}
	return sb.String()
}
