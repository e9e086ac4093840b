package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"lead-notification-srv/internal/campaign/repository"
	"lead-notification-srv/internal/model"
	notifRepo "lead-notification-srv/internal/notification/repository"
	userRepo "lead-notification-srv/internal/user/repository"
)

type fakeNotificationRepo struct {
	mu      sync.Mutex
	created []model.Notification
	failFor map[string]bool
	seq     int

	markReadErr error
}

func (f *fakeNotificationRepo) Create(_ context.Context, opts notifRepo.CreateOptions) (model.Notification, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failFor[opts.UserID] {
		return model.Notification{}, errors.New("insert failed")
	}
	f.seq++
	n := model.Notification{
		ID:        fmt.Sprintf("n-%d", f.seq),
		UserID:    opts.UserID,
		Type:      opts.Type,
		Title:     opts.Title,
		Message:   opts.Message,
		LeadID:    opts.LeadID,
		CreatedAt: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	f.created = append(f.created, n)
	return n, nil
}

func (f *fakeNotificationRepo) List(_ context.Context, opts notifRepo.ListOptions) ([]model.Notification, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []model.Notification
	for i := len(f.created) - 1; i >= 0; i-- {
		if f.created[i].UserID == opts.UserID {
			out = append(out, f.created[i])
		}
	}
	return out, nil
}

func (f *fakeNotificationRepo) CountUnread(_ context.Context, userID string) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	count := 0
	for _, n := range f.created {
		if n.UserID == userID && !n.Read {
			count++
		}
	}
	return count, nil
}

func (f *fakeNotificationRepo) MarkRead(_ context.Context, opts notifRepo.MarkReadOptions) (model.Notification, error) {
	if f.markReadErr != nil {
		return model.Notification{}, f.markReadErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, n := range f.created {
		if n.ID == opts.ID && n.UserID == opts.UserID {
			f.created[i].Read = true
			return f.created[i], nil
		}
	}
	return model.Notification{}, notifRepo.ErrNotFound
}

func (f *fakeNotificationRepo) MarkAllRead(_ context.Context, userID string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var n int64
	for i := range f.created {
		if f.created[i].UserID == userID && !f.created[i].Read {
			f.created[i].Read = true
			n++
		}
	}
	return n, nil
}

func (f *fakeNotificationRepo) rows() []model.Notification {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]model.Notification(nil), f.created...)
}

type fakeUsers struct {
	users   []model.User
	listErr error
}

func (f *fakeUsers) Detail(_ context.Context, id string) (model.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return model.User{}, userRepo.ErrNotFound
}

func (f *fakeUsers) ListByRole(_ context.Context, role model.Role) ([]model.User, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []model.User
	for _, u := range f.users {
		if u.Role == role {
			out = append(out, u)
		}
	}
	return out, nil
}

type fakeCampaigns struct {
	names map[string]string
	err   error
}

func (f *fakeCampaigns) Detail(_ context.Context, id string) (model.Campaign, error) {
	if f.err != nil {
		return model.Campaign{}, f.err
	}
	name, ok := f.names[id]
	if !ok {
		return model.Campaign{}, repository.ErrNotFound
	}
	return model.Campaign{ID: id, Name: name}, nil
}

type fakeNotifier struct {
	mu     sync.Mutex
	online map[string]bool
	sent   []model.Notification
	roles  map[model.Role]int
}

func (f *fakeNotifier) SendToUser(_ context.Context, userID string, n model.Notification) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.online[userID] {
		return false
	}
	f.sent = append(f.sent, n)
	return true
}

func (f *fakeNotifier) BroadcastToRole(_ context.Context, role model.Role, n model.Notification) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, n)
	return f.roles[role]
}
