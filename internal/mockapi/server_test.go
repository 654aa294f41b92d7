package mockapi_test

import (
	"context"
	"errors"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quickbird-app/quickbird-go/internal/api"
	"github.com/quickbird-app/quickbird-go/internal/cache"
	"github.com/quickbird-app/quickbird-go/internal/domain"
	"github.com/quickbird-app/quickbird-go/internal/mockapi"
	"github.com/quickbird-app/quickbird-go/internal/session"
	"github.com/quickbird-app/quickbird-go/internal/storage"
)

func newTestStack(t *testing.T, opts ...api.Option) (*mockapi.Server, *api.Client, storage.Storage) {
	t.Helper()
	srv := mockapi.New()
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)

	store := storage.NewMemoryStorage()
	client, err := api.New(ts.URL, store, opts...)
	require.NoError(t, err)
	return srv, client, store
}

func register(t *testing.T, client *api.Client) *domain.AuthSession {
	t.Helper()
	auth, err := client.Register(context.Background(), domain.RegisterRequest{
		Email: "dev@example.com", Password: "hunter2", Username: "dev",
	})
	require.NoError(t, err)
	return auth
}

func TestAuthFlow(t *testing.T) {
	_, client, _ := newTestStack(t)
	ctx := context.Background()

	t.Run("register then me", func(t *testing.T) {
		auth := register(t, client)
		assert.NotEmpty(t, auth.AccessToken)
		assert.Equal(t, "bearer", auth.TokenType)
		assert.Equal(t, domain.TierFree, auth.User.SubscriptionTier)

		me, err := client.CurrentUser(ctx)
		require.NoError(t, err)
		assert.Equal(t, auth.User.ID, me.ID)
	})

	t.Run("duplicate email rejected", func(t *testing.T) {
		_, err := client.Register(ctx, domain.RegisterRequest{
			Email: "dev@example.com", Password: "x", Username: "dev2",
		})
		require.Error(t, err)
		assert.Equal(t, "Email already registered", api.ErrorMessage(err, ""))
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := client.Login(ctx, "dev@example.com", "wrong")
		require.Error(t, err)
		assert.Equal(t, "Incorrect email or password", api.ErrorMessage(err, ""))
	})

	t.Run("missing fields come back as a field list", func(t *testing.T) {
		_, err := client.Register(ctx, domain.RegisterRequest{Email: "x@example.com"})
		require.Error(t, err)
		msg := api.ErrorMessage(err, "")
		assert.Contains(t, msg, "password: field required")
		assert.Contains(t, msg, "username: field required")
	})

	t.Run("refresh rotates the credential", func(t *testing.T) {
		_, err := client.Login(ctx, "dev@example.com", "hunter2")
		require.NoError(t, err)
		rotated, err := client.RefreshToken(ctx)
		require.NoError(t, err)
		assert.NotEmpty(t, rotated.AccessToken)

		// The rotated token authenticates the next call.
		_, err = client.CurrentUser(ctx)
		require.NoError(t, err)
	})
}

func TestProjectAndTaskFlow(t *testing.T) {
	_, client, _ := newTestStack(t)
	ctx := context.Background()
	register(t, client)

	project, err := client.CreateProject(ctx, domain.CreateProjectRequest{Title: "Website redesign"})
	require.NoError(t, err)
	assert.NotZero(t, project.ID)
	assert.Equal(t, domain.ProjectActive, project.Status)

	task, err := client.CreateTask(ctx, domain.CreateTaskRequest{Title: "Wireframes", ProjectID: &project.ID})
	require.NoError(t, err)
	assert.Equal(t, domain.TaskPending, task.Status)
	assert.Equal(t, domain.PriorityMedium, task.Priority)

	status := domain.TaskCompleted
	updated, err := client.UpdateTask(ctx, task.ID, domain.UpdateTaskRequest{Status: &status})
	require.NoError(t, err)
	assert.Equal(t, domain.TaskCompleted, updated.Status)
	assert.NotNil(t, updated.UpdatedAt)

	// Completing a task produces a notification.
	unread, err := client.ListNotifications(ctx, domain.NotificationFilter{UnreadOnly: true})
	require.NoError(t, err)
	require.Len(t, unread, 1)
	assert.Equal(t, domain.NotifyTaskCompleted, unread[0].Type)

	_, err = client.MarkAllNotificationsRead(ctx)
	require.NoError(t, err)
	stats, err := client.NotificationStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, stats.UnreadNotifications)

	filtered, err := client.ListTasks(ctx, &project.ID)
	require.NoError(t, err)
	require.Len(t, filtered, 1)

	require.NoError(t, client.DeleteTask(ctx, task.ID))
	remaining, err := client.ListTasks(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, remaining)
}

func TestInvoiceLifecycle(t *testing.T) {
	_, client, _ := newTestStack(t)
	ctx := context.Background()
	register(t, client)

	inv, err := client.CreateInvoice(ctx, domain.CreateInvoiceRequest{
		ClientName:  "Acme Corp",
		ClientEmail: "billing@acme.test",
		TaxRate:     10,
		Items: []domain.CreateInvoiceItemRequest{
			{Description: "Design", Quantity: 10, Rate: 50},
			{Description: "Development", Quantity: 20, Rate: 75},
		},
	})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(inv.InvoiceNumber, "INV-"))
	assert.Equal(t, domain.InvoiceDraft, inv.Status)
	assert.Equal(t, 2000.0, inv.Subtotal)
	assert.Equal(t, 200.0, inv.TaxAmount)
	assert.Equal(t, 2200.0, inv.TotalAmount)
	require.Len(t, inv.Items, 2)
	assert.Equal(t, 500.0, inv.Items[0].Amount)

	require.NoError(t, client.SendInvoice(ctx, inv.ID, domain.SendInvoiceRequest{}))
	sent, err := client.GetInvoice(ctx, inv.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.InvoiceSent, sent.Status)
	assert.NotNil(t, sent.SentDate)

	ack, err := client.UpdateInvoiceStatus(ctx, inv.ID, domain.InvoicePaid)
	require.NoError(t, err)
	assert.Equal(t, "Invoice status updated to paid", ack.Message)

	paid, err := client.GetInvoice(ctx, inv.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.InvoicePaid, paid.Status)
	assert.NotNil(t, paid.PaidDate)

	pdf, err := client.GenerateInvoicePDF(ctx, inv.ID)
	require.NoError(t, err)
	assert.Equal(t, inv.InvoiceNumber+".pdf", pdf.Filename)
}

func TestMilestoneProgress(t *testing.T) {
	_, client, _ := newTestStack(t)
	ctx := context.Background()
	register(t, client)

	project, err := client.CreateProject(ctx, domain.CreateProjectRequest{Title: "Launch"})
	require.NoError(t, err)
	m, err := client.CreateMilestone(ctx, domain.CreateMilestoneRequest{Title: "Beta", ProjectID: project.ID})
	require.NoError(t, err)
	assert.Equal(t, domain.MilestoneNotStarted, m.Status)

	ack, err := client.UpdateMilestoneProgress(ctx, m.ID, 50)
	require.NoError(t, err)
	assert.Equal(t, "Milestone progress updated to 50%", ack.Message)
	half, err := client.GetMilestone(ctx, m.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.MilestoneInProgress, half.Status)
	assert.Equal(t, 50, half.Progress)

	ack, err = client.UpdateMilestoneProgress(ctx, m.ID, 100)
	require.NoError(t, err)
	assert.Equal(t, "Milestone progress updated to 100%", ack.Message)
	done, err := client.GetMilestone(ctx, m.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.MilestoneCompleted, done.Status)
	assert.NotNil(t, done.CompletedDate)
}

func TestAIUsageLimit(t *testing.T) {
	_, client, _ := newTestStack(t)
	ctx := context.Background()
	register(t, client)

	stats, err := client.UsageStats(ctx)
	require.NoError(t, err)
	require.Equal(t, 10, stats.UsageLimit)

	for i := 0; i < stats.UsageLimit; i++ {
		resp, err := client.GenerateContent(ctx, domain.AIRequest{Tool: domain.ToolProposal, Prompt: "draft"})
		require.NoError(t, err)
		assert.Equal(t, i+1, resp.UsageCount)
	}

	_, err = client.GenerateContent(ctx, domain.AIRequest{Tool: domain.ToolProposal, Prompt: "one too many"})
	require.Error(t, err)
	assert.Equal(t, "Daily usage limit exceeded. Please upgrade your plan.", api.ErrorMessage(err, ""))

	stats, err = client.UsageStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, stats.RemainingRequests)
}

func TestUpload(t *testing.T) {
	_, client, _ := newTestStack(t)
	ctx := context.Background()
	register(t, client)

	out, err := client.UploadFile(ctx, "brief.pdf", strings.NewReader("%PDF-1.4"), domain.UploadProject)
	require.NoError(t, err)
	assert.Equal(t, "brief.pdf", out.Filename)
	assert.Contains(t, out.URL, "/uploads/project/")

	_, err = client.UploadFile(ctx, "malware.exe", strings.NewReader("MZ"), domain.UploadProject)
	require.Error(t, err)
	assert.Contains(t, api.ErrorMessage(err, ""), "not allowed")
}

func TestRevokedCredentialTriggersUnauthorizedPolicy(t *testing.T) {
	var invalidated bool
	srv := mockapi.New()
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)

	store := storage.NewMemoryStorage()
	client, err := api.New(ts.URL, store)
	require.NoError(t, err)
	sess := session.New(client, session.NopNotifier{})
	client.SetUnauthorizedHook(func() {
		invalidated = true
		sess.Invalidate()
	})

	ctx := context.Background()
	require.NoError(t, sess.Register(ctx, domain.RegisterRequest{
		Email: "dev@example.com", Password: "hunter2", Username: "dev",
	}))
	require.True(t, sess.IsAuthenticated())

	srv.RevokeAllTokens()

	_, err = client.ListProjects(ctx)
	require.True(t, api.IsUnauthorized(err))
	assert.True(t, invalidated)
	assert.False(t, sess.IsAuthenticated())
	assert.False(t, storage.HasToken(store))

	// Logging back in starts a clean session.
	require.NoError(t, sess.Login(ctx, "dev@example.com", "hunter2"))
	_, err = client.ListProjects(ctx)
	require.NoError(t, err)
}

func TestOfflineCreateTaskRollsBack(t *testing.T) {
	// A server that is already gone stands in for the backend being
	// unreachable.
	ts := httptest.NewServer(nil)
	url := ts.URL
	ts.Close()

	client, err := api.New(url, storage.NewMemoryStorage())
	require.NoError(t, err)

	tasks := cache.NewCollection(func(tk domain.Task) int64 { return tk.ID })
	tasks.SetAll([]domain.Task{{ID: 1, Title: "existing"}})

	tempID := tasks.BeginPending(domain.Task{Title: "drafted offline"})
	created, err := client.CreateTask(context.Background(), domain.CreateTaskRequest{Title: "drafted offline"})
	require.Error(t, err)
	require.Nil(t, created)
	tasks.Rollback(tempID)

	// A transport failure never carries a backend error payload.
	var apiErr *api.APIError
	assert.False(t, errors.As(err, &apiErr))
	snap := tasks.Snapshot()
	require.Len(t, snap, 1)
	assert.Equal(t, "existing", snap[0].Title)
}

func TestOwnershipIsolation(t *testing.T) {
	srv := mockapi.New()
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	ctx := context.Background()

	alice, err := api.New(ts.URL, storage.NewMemoryStorage())
	require.NoError(t, err)
	_, err = alice.Register(ctx, domain.RegisterRequest{Email: "alice@example.com", Password: "pw", Username: "alice"})
	require.NoError(t, err)
	project, err := alice.CreateProject(ctx, domain.CreateProjectRequest{Title: "Private"})
	require.NoError(t, err)

	bob, err := api.New(ts.URL, storage.NewMemoryStorage())
	require.NoError(t, err)
	_, err = bob.Register(ctx, domain.RegisterRequest{Email: "bob@example.com", Password: "pw", Username: "bob"})
	require.NoError(t, err)

	list, err := bob.ListProjects(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)

	_, err = bob.GetProject(ctx, project.ID)
	require.Error(t, err)
	assert.Equal(t, "Project not found", api.ErrorMessage(err, ""))
}
