package httpserver

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	campaignRepo "lead-notification-srv/internal/campaign/repository"
	"lead-notification-srv/internal/identity"
	"lead-notification-srv/internal/model"
	"lead-notification-srv/internal/notification"
	"lead-notification-srv/internal/notification/dispatcher"
	"lead-notification-srv/internal/notification/repository"
	notificationUC "lead-notification-srv/internal/notification/usecase"
	wsHTTP "lead-notification-srv/internal/websocket/delivery/http"
	wsUC "lead-notification-srv/internal/websocket/usecase"
	userRepo "lead-notification-srv/internal/user/repository"
	"lead-notification-srv/pkg/log"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	gorilla "github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memNotifications struct {
	mu   sync.Mutex
	rows []model.Notification
}

func (r *memNotifications) Create(_ context.Context, opts repository.CreateOptions) (model.Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := model.Notification{
		ID:        uuid.NewString(),
		UserID:    opts.UserID,
		Type:      opts.Type,
		Title:     opts.Title,
		Message:   opts.Message,
		LeadID:    opts.LeadID,
		CreatedAt: time.Now(),
	}
	r.rows = append(r.rows, n)
	return n, nil
}

func (r *memNotifications) List(context.Context, repository.ListOptions) ([]model.Notification, error) {
	return nil, nil
}

func (r *memNotifications) CountUnread(context.Context, string) (int, error) { return 0, nil }

func (r *memNotifications) MarkRead(context.Context, repository.MarkReadOptions) (model.Notification, error) {
	return model.Notification{}, repository.ErrNotFound
}

func (r *memNotifications) MarkAllRead(context.Context, string) (int64, error) { return 0, nil }

func (r *memNotifications) forUser(userID string) []model.Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []model.Notification
	for _, n := range r.rows {
		if n.UserID == userID {
			out = append(out, n)
		}
	}
	return out
}

type memUsers map[string]model.User

func (u memUsers) Detail(_ context.Context, id string) (model.User, error) {
	if user, ok := u[id]; ok {
		return user, nil
	}
	return model.User{}, userRepo.ErrNotFound
}

func (u memUsers) ListByRole(_ context.Context, role model.Role) ([]model.User, error) {
	var out []model.User
	for _, id := range []string{"u-1", "u-2", "u-3"} {
		if user, ok := u[id]; ok && user.Role == role {
			out = append(out, user)
		}
	}
	return out, nil
}

type memCampaigns map[string]string

func (c memCampaigns) Detail(_ context.Context, id string) (model.Campaign, error) {
	if name, ok := c[id]; ok {
		return model.Campaign{ID: id, Name: name}, nil
	}
	return model.Campaign{}, campaignRepo.ErrNotFound
}

type scenarioFrame struct {
	Type string              `json:"type"`
	Data *model.Notification `json:"data"`
}

type scenario struct {
	repo *memNotifications
	uc   notification.UseCase
	url  string
}

// newScenario runs the real gateway and producer over in-memory storage.
// u-1 and u-3 are support assistants, u-2 is an admin.
func newScenario(t *testing.T) *scenario {
	t.Helper()
	gin.SetMode(gin.TestMode)
	l := log.NewNop()

	users := memUsers{
		"u-1": {ID: "u-1", Username: "sam", Role: model.RoleSupportAssistant},
		"u-2": {ID: "u-2", Username: "alex", Role: model.RoleAdmin},
		"u-3": {ID: "u-3", Username: "kim", Role: model.RoleSupportAssistant},
	}
	resolver := identity.ResolverFunc(func(_ context.Context, raw string) (identity.Identity, error) {
		id := strings.TrimPrefix(raw, "connect.sid=")
		user, ok := users[id]
		if !ok {
			return identity.Identity{}, identity.ErrSessionNotFound
		}
		return identity.Identity{UserID: user.ID, Role: user.Role}, nil
	})

	gateway := wsUC.New(l, resolver, wsUC.Config{})
	go gateway.Run()

	engine := gin.New()
	engine.RedirectTrailingSlash = false
	wsHTTP.New(l, gateway, wsHTTP.Config{}).RegisterRoutes(engine)
	srv := httptest.NewServer(engine)

	repo := &memNotifications{}
	uc := notificationUC.New(l, repo, users, memCampaigns{"c-1": "Spring Promo"}, gateway)

	t.Cleanup(func() {
		srv.Close()
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = gateway.Shutdown(ctx)
	})

	return &scenario{
		repo: repo,
		uc:   uc,
		url:  "ws" + strings.TrimPrefix(srv.URL, "http") + wsHTTP.Path,
	}
}

// connect dials as userID and consumes the connected ack.
func (s *scenario) connect(t *testing.T, userID string) *gorilla.Conn {
	t.Helper()
	header := http.Header{}
	header.Set("Cookie", "connect.sid="+userID)
	conn, _, err := gorilla.DefaultDialer.Dial(s.url, header)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	f := readFrame(t, conn)
	require.Equal(t, "connected", f.Type)
	return conn
}

func readFrame(t *testing.T, conn *gorilla.Conn) scenarioFrame {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, data, err := conn.ReadMessage()
	require.NoError(t, err)
	var f scenarioFrame
	require.NoError(t, json.Unmarshal(data, &f))
	return f
}

func assertSilent(t *testing.T, conn *gorilla.Conn) {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(150*time.Millisecond)))
	_, _, err := conn.ReadMessage()
	assert.Error(t, err)
}

func TestScenarioAssignmentReachesEveryConnectionOfAssignee(t *testing.T) {
	s := newScenario(t)
	first := s.connect(t, "u-1")
	second := s.connect(t, "u-1")
	admin := s.connect(t, "u-2")

	out, err := s.uc.NotifyAssignment(context.Background(), notification.AssignmentInput{
		Lead:       model.Lead{ID: "l-9", Name: "Jane Doe", CampaignID: "c-1"},
		AssigneeID: "u-1",
	})
	require.NoError(t, err)
	assert.Equal(t, notification.NotifyOutput{Created: 1, Delivered: 1}, out)

	rows := s.repo.forUser("u-1")
	require.Len(t, rows, 1)

	for _, conn := range []*gorilla.Conn{first, second} {
		f := readFrame(t, conn)
		assert.Equal(t, "notification", f.Type)
		require.NotNil(t, f.Data)
		assert.Equal(t, rows[0].ID, f.Data.ID)
		assert.Equal(t, model.NotificationTypeLeadAssigned, f.Data.Type)
		assert.Equal(t, `Lead "Jane Doe" from campaign "Spring Promo" has been assigned to you`, f.Data.Message)
	}
	assertSilent(t, admin)
	assert.Empty(t, s.repo.forUser("u-2"))
}

func TestScenarioNewLeadsThroughDispatcher(t *testing.T) {
	s := newScenario(t)
	support := s.connect(t, "u-1")
	admin := s.connect(t, "u-2")

	d := dispatcher.New(log.NewNop(), s.uc, nil, dispatcher.Config{Workers: 1})
	d.Start()
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = d.Shutdown(ctx)
	}()

	require.NoError(t, d.LeadsCreated(context.Background(), notification.NewLeadInput{
		Leads: []model.Lead{
			{ID: "l-1", Name: "A", CampaignID: "c-1"},
			{ID: "l-2", Name: "B", CampaignID: "c-1"},
		},
		CampaignID: "c-1",
	}))

	f := readFrame(t, support)
	assert.Equal(t, "notification", f.Type)
	require.NotNil(t, f.Data)
	assert.Equal(t, "2 New Leads Available", f.Data.Title)
	assert.Equal(t, `2 new leads imported to campaign "Spring Promo"`, f.Data.Message)
	require.NotNil(t, f.Data.LeadID)
	assert.Equal(t, "l-1", *f.Data.LeadID)

	assertSilent(t, admin)

	// the offline support assistant still gets a stored row
	require.Eventually(t, func() bool { return len(s.repo.forUser("u-3")) == 1 }, time.Second, 10*time.Millisecond)
	assert.Len(t, s.repo.forUser("u-1"), 1)
	assert.Empty(t, s.repo.forUser("u-2"))
}
