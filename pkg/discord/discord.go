package discord

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

func newHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			MaxIdleConns:        10,
			MaxIdleConnsPerHost: 10,
			IdleConnTimeout:     30 * time.Second,
		},
	}
}

func (d *discordImpl) ReportBug(ctx context.Context, message string) error {
	return d.send(ctx, Embed{
		Title:       ReportBugTitle,
		Description: truncate(message, MaxDescriptionLen),
		Color:       ColorError,
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
	})
}

func (d *discordImpl) SendError(ctx context.Context, title, description string, err error) error {
	embed := Embed{
		Title:       title,
		Description: truncate(description, MaxDescriptionLen),
		Color:       ColorError,
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
	}
	if err != nil {
		embed.Fields = []EmbedField{{Name: "Error", Value: truncate(err.Error(), MaxFieldValueLen)}}
	}
	return d.send(ctx, embed)
}

func (d *discordImpl) SendWarning(ctx context.Context, title, description string) error {
	return d.send(ctx, Embed{
		Title:       title,
		Description: truncate(description, MaxDescriptionLen),
		Color:       ColorWarning,
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
	})
}

func (d *discordImpl) Close() error {
	d.client.CloseIdleConnections()
	return nil
}

func (d *discordImpl) webhookURL() string {
	return fmt.Sprintf("%s/%s/%s", d.config.BaseURL, d.id, d.token)
}

func (d *discordImpl) send(ctx context.Context, embed Embed) error {
	payload := WebhookPayload{Username: d.config.Username, Embeds: []Embed{embed}}

	var lastErr error
	for attempt := 0; attempt <= d.config.RetryCount; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(d.config.RetryDelay):
			}
		}
		if lastErr = d.sendRequest(ctx, payload); lastErr == nil {
			return nil
		}
		if d.l != nil {
			d.l.Warnf(ctx, "pkg.discord.send: attempt %d failed: %v", attempt+1, lastErr)
		}
	}
	return fmt.Errorf("discord: failed after %d attempts: %w", d.config.RetryCount+1, lastErr)
}

func (d *discordImpl) sendRequest(ctx context.Context, payload WebhookPayload) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.webhookURL(), bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", UserAgent)

	resp, err := d.client.Do(req)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("webhook returned status %d: %s", resp.StatusCode, body)
	}
	return nil
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
