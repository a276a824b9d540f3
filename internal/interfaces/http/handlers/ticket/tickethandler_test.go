package ticket

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ticketdto "github.com/chamados/servicedesk/internal/application/ticket/dto"
	"github.com/chamados/servicedesk/internal/application/ticket/usecases"
	"github.com/chamados/servicedesk/internal/interfaces/http/handlers/testutil"
	"github.com/chamados/servicedesk/internal/shared/errors"
)

// =====================================================================
// Mock use cases
// =====================================================================

type mockCreateTicketUC struct {
	result  *ticketdto.TicketDTO
	err     error
	lastCmd usecases.CreateTicketCommand
	called  bool
}

func (m *mockCreateTicketUC) Execute(_ context.Context, cmd usecases.CreateTicketCommand) (*ticketdto.TicketDTO, error) {
	m.called = true
	m.lastCmd = cmd
	return m.result, m.err
}

type mockGetTicketUC struct {
	result    *ticketdto.TicketDTO
	err       error
	lastQuery usecases.GetTicketQuery
}

func (m *mockGetTicketUC) Execute(_ context.Context, query usecases.GetTicketQuery) (*ticketdto.TicketDTO, error) {
	m.lastQuery = query
	return m.result, m.err
}

type mockListTicketsUC struct {
	result    []*ticketdto.TicketDTO
	err       error
	lastQuery usecases.ListTicketsQuery
}

func (m *mockListTicketsUC) Execute(_ context.Context, query usecases.ListTicketsQuery) ([]*ticketdto.TicketDTO, error) {
	m.lastQuery = query
	return m.result, m.err
}

type mockPatchTicketUC struct {
	result  *ticketdto.TicketDTO
	err     error
	lastCmd usecases.PatchTicketCommand
	called  bool
}

func (m *mockPatchTicketUC) Execute(_ context.Context, cmd usecases.PatchTicketCommand) (*ticketdto.TicketDTO, error) {
	m.called = true
	m.lastCmd = cmd
	return m.result, m.err
}

type mockDeleteTicketUC struct {
	err     error
	lastCmd usecases.DeleteTicketCommand
}

func (m *mockDeleteTicketUC) Execute(_ context.Context, cmd usecases.DeleteTicketCommand) error {
	m.lastCmd = cmd
	return m.err
}

type mockAddAttachmentsUC struct {
	result  []ticketdto.AttachmentDTO
	err     error
	lastCmd usecases.AddAttachmentsCommand
	called  bool
}

func (m *mockAddAttachmentsUC) Execute(_ context.Context, cmd usecases.AddAttachmentsCommand) ([]ticketdto.AttachmentDTO, error) {
	m.called = true
	m.lastCmd = cmd
	return m.result, m.err
}

type mockRemoveAttachmentUC struct {
	err     error
	lastCmd usecases.RemoveAttachmentCommand
}

func (m *mockRemoveAttachmentUC) Execute(_ context.Context, cmd usecases.RemoveAttachmentCommand) error {
	m.lastCmd = cmd
	return m.err
}

type mockAddInteractionUC struct {
	result  *ticketdto.TicketDTO
	err     error
	lastCmd usecases.AddInteractionCommand
	called  bool
}

func (m *mockAddInteractionUC) Execute(_ context.Context, cmd usecases.AddInteractionCommand) (*ticketdto.TicketDTO, error) {
	m.called = true
	m.lastCmd = cmd
	return m.result, m.err
}

type mockAssignTicketUC struct {
	result  *ticketdto.TicketDTO
	err     error
	lastCmd usecases.AssignTicketCommand
}

func (m *mockAssignTicketUC) Execute(_ context.Context, cmd usecases.AssignTicketCommand) (*ticketdto.TicketDTO, error) {
	m.lastCmd = cmd
	return m.result, m.err
}

// =====================================================================
// Test helper
// =====================================================================

type testDeps struct {
	create   *mockCreateTicketUC
	get      *mockGetTicketUC
	list     *mockListTicketsUC
	patch    *mockPatchTicketUC
	del      *mockDeleteTicketUC
	attach   *mockAddAttachmentsUC
	detach   *mockRemoveAttachmentUC
	interact *mockAddInteractionUC
	assign   *mockAssignTicketUC
}

func newTestTicketHandler() (*TicketHandler, testDeps) {
	deps := testDeps{
		create:   &mockCreateTicketUC{},
		get:      &mockGetTicketUC{},
		list:     &mockListTicketsUC{},
		patch:    &mockPatchTicketUC{},
		del:      &mockDeleteTicketUC{},
		attach:   &mockAddAttachmentsUC{},
		detach:   &mockRemoveAttachmentUC{},
		interact: &mockAddInteractionUC{},
		assign:   &mockAssignTicketUC{},
	}
	h := NewTicketHandler(
		deps.create,
		deps.get,
		deps.list,
		deps.patch,
		deps.del,
		deps.attach,
		deps.detach,
		deps.interact,
		deps.assign,
		testutil.NewMockLogger(),
	)
	return h, deps
}

func validTicketFields() map[string]string {
	return map[string]string{
		"title":       "Printer offline",
		"client":      "Acme Ltda",
		"category":    "Hardware - Printers",
		"description": "The 3rd floor printer does not answer.",
		"priority":    "High",
		"requester":   "Carla",
	}
}

// =====================================================================
// Listing
// =====================================================================

func TestTicketHandler_ListTickets_Scopes(t *testing.T) {
	tests := []struct {
		name  string
		call  func(h *TicketHandler) gin.HandlerFunc
		scope usecases.ListScope
	}{
		{"queue", func(h *TicketHandler) gin.HandlerFunc { return h.ListTickets }, usecases.ScopeQueue},
		{"mine", func(h *TicketHandler) gin.HandlerFunc { return h.ListMyTickets }, usecases.ScopeMine},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, deps := newTestTicketHandler()
			deps.list.result = []*ticketdto.TicketDTO{{ID: "1712000000001", Title: "Printer offline"}}

			c, w := testutil.NewTestContext(http.MethodGet, "/api/tickets", nil)
			testutil.SetAuthContext(c, testutil.Analyst)
			tt.call(handler)(c)

			require.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, tt.scope, deps.list.lastQuery.Scope)
			assert.Equal(t, testutil.Analyst, deps.list.lastQuery.Actor)
		})
	}
}

func TestTicketHandler_ListTickets_NotAuthenticated(t *testing.T) {
	handler, _ := newTestTicketHandler()

	c, w := testutil.NewTestContext(http.MethodGet, "/api/tickets", nil)
	handler.ListTickets(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

// =====================================================================
// Get
// =====================================================================

func TestTicketHandler_GetTicket_RenderFormat(t *testing.T) {
	tests := []struct {
		name   string
		query  map[string]string
		render bool
	}{
		{"plain", nil, false},
		{"html", map[string]string{"format": "html"}, true},
		{"other format", map[string]string{"format": "json"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, deps := newTestTicketHandler()
			deps.get.result = &ticketdto.TicketDTO{ID: "1712000000001"}

			c, w := testutil.NewTestContext(http.MethodGet, "/api/tickets/1712000000001", nil)
			testutil.SetAuthContext(c, testutil.Analyst)
			testutil.SetURLParam(c, "id", "1712000000001")
			if tt.query != nil {
				testutil.SetQueryParams(c, tt.query)
			}
			handler.GetTicket(c)

			require.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, "1712000000001", deps.get.lastQuery.TicketID)
			assert.Equal(t, tt.render, deps.get.lastQuery.RenderHTML)
		})
	}
}

func TestTicketHandler_GetTicket_NotFound(t *testing.T) {
	handler, deps := newTestTicketHandler()
	deps.get.err = errors.NewNotFoundError("ticket not found")

	c, w := testutil.NewTestContext(http.MethodGet, "/api/tickets/404", nil)
	testutil.SetURLParam(c, "id", "404")
	handler.GetTicket(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

// =====================================================================
// Create
// =====================================================================

func TestTicketHandler_CreateTicket_WithAttachments(t *testing.T) {
	handler, deps := newTestTicketHandler()
	deps.create.result = &ticketdto.TicketDTO{ID: "1712000000001", Status: "Open"}

	files := []testutil.UploadFile{
		{Field: "attachments", Filename: "screen.png", Content: []byte("\x89PNG\r\n\x1a\n")},
		{Field: "attachments", Filename: "invoice.pdf", Content: []byte("%PDF-1.4")},
	}
	c, w := testutil.NewMultipartContext(http.MethodPost, "/api/tickets", validTicketFields(), files)
	testutil.SetAuthContext(c, testutil.Analyst)
	handler.CreateTicket(c)

	require.Equal(t, http.StatusCreated, w.Code)
	cmd := deps.create.lastCmd
	assert.Equal(t, "Printer offline", cmd.Title)
	assert.Equal(t, "High", cmd.Priority)
	assert.Equal(t, testutil.Analyst, cmd.Actor)
	require.Len(t, cmd.Files, 2)
	assert.Equal(t, "screen.png", cmd.Files[0].Filename)

	rc, err := cmd.Files[1].Open()
	require.NoError(t, err)
	defer rc.Close()
	content, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.4", string(content))
}

func TestTicketHandler_CreateTicket_ValidationFailures(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(f map[string]string)
		details string
	}{
		{"missing title", func(f map[string]string) { delete(f, "title") }, "title is required"},
		{"unknown priority", func(f map[string]string) { f["priority"] = "Critical" }, "priority is not a valid ticket priority"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, deps := newTestTicketHandler()
			fields := validTicketFields()
			tt.mutate(fields)

			c, w := testutil.NewMultipartContext(http.MethodPost, "/api/tickets", fields, nil)
			testutil.SetAuthContext(c, testutil.Analyst)
			handler.CreateTicket(c)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.False(t, deps.create.called)
			var resp testutil.APIResponse
			require.NoError(t, testutil.ParseResponse(w, &resp))
			require.NotNil(t, resp.Error)
			assert.Contains(t, resp.Error.Details, tt.details)
		})
	}
}

// =====================================================================
// Patch
// =====================================================================

func TestTicketHandler_PatchTicket_PassesEveryField(t *testing.T) {
	handler, deps := newTestTicketHandler()
	deps.patch.result = &ticketdto.TicketDTO{ID: "1712000000001", Status: "Resolved"}

	body := map[string]string{"status": "Resolved", "title": "New title"}
	c, w := testutil.NewTestContext(http.MethodPatch, "/api/tickets/1712000000001", body)
	testutil.SetAuthContext(c, testutil.Analyst)
	testutil.SetURLParam(c, "id", "1712000000001")
	handler.PatchTicket(c)

	require.Equal(t, http.StatusOK, w.Code)
	fields := deps.patch.lastCmd.Fields
	require.NotNil(t, fields.Status)
	assert.Equal(t, "Resolved", *fields.Status)
	// narrowing to the caller's role happens in the use case
	require.NotNil(t, fields.Title)
	assert.Nil(t, fields.Priority)
	assert.Equal(t, testutil.Analyst, deps.patch.lastCmd.Actor)
}

func TestTicketHandler_PatchTicket_UnknownStatus(t *testing.T) {
	handler, deps := newTestTicketHandler()

	c, w := testutil.NewTestContext(http.MethodPatch, "/api/tickets/1", map[string]string{"status": "Done"})
	testutil.SetAuthContext(c, testutil.Admin)
	testutil.SetURLParam(c, "id", "1")
	handler.PatchTicket(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, deps.patch.called)
}

// =====================================================================
// Delete
// =====================================================================

func TestTicketHandler_DeleteTicket(t *testing.T) {
	handler, deps := newTestTicketHandler()

	c, w := testutil.NewTestContext(http.MethodDelete, "/api/tickets/1712000000001", nil)
	testutil.SetAuthContext(c, testutil.Admin)
	testutil.SetURLParam(c, "id", "1712000000001")
	handler.DeleteTicket(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "1712000000001", deps.del.lastCmd.TicketID)
}

// =====================================================================
// Attachments
// =====================================================================

func TestTicketHandler_AddAttachments(t *testing.T) {
	handler, deps := newTestTicketHandler()
	deps.attach.result = []ticketdto.AttachmentDTO{{OriginalName: "screen.png", StoredName: "1712000000000-abc.png"}}

	files := []testutil.UploadFile{{Field: "attachments", Filename: "screen.png", Content: []byte("\x89PNG\r\n\x1a\n")}}
	c, w := testutil.NewMultipartContext(http.MethodPost, "/api/tickets/1/attachments", nil, files)
	testutil.SetAuthContext(c, testutil.Analyst)
	testutil.SetURLParam(c, "id", "1")
	handler.AddAttachments(c)

	require.Equal(t, http.StatusCreated, w.Code)
	require.Len(t, deps.attach.lastCmd.Files, 1)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	var attachments []ticketdto.AttachmentDTO
	require.NoError(t, json.Unmarshal(resp.Data, &attachments))
	assert.Equal(t, "1712000000000-abc.png", attachments[0].StoredName)
}

func TestTicketHandler_AddAttachments_NoFiles(t *testing.T) {
	handler, deps := newTestTicketHandler()

	c, w := testutil.NewMultipartContext(http.MethodPost, "/api/tickets/1/attachments", map[string]string{"note": "x"}, nil)
	testutil.SetAuthContext(c, testutil.Analyst)
	testutil.SetURLParam(c, "id", "1")
	handler.AddAttachments(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, deps.attach.called)
}

func TestTicketHandler_RemoveAttachment_Unknown(t *testing.T) {
	handler, deps := newTestTicketHandler()
	deps.detach.err = errors.NewNotFoundError("attachment not found")

	c, w := testutil.NewTestContext(http.MethodDelete, "/api/tickets/1/attachments/missing.png", nil)
	testutil.SetAuthContext(c, testutil.Admin)
	testutil.SetURLParam(c, "id", "1")
	testutil.SetURLParam(c, "storedName", "missing.png")
	handler.RemoveAttachment(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "missing.png", deps.detach.lastCmd.StoredName)
}

// =====================================================================
// Interactions and assignment
// =====================================================================

func TestTicketHandler_AddInteraction(t *testing.T) {
	handler, deps := newTestTicketHandler()
	deps.interact.result = &ticketdto.TicketDTO{ID: "1", Status: "In Progress"}

	c, w := testutil.NewTestContext(http.MethodPost, "/api/tickets/1/interactions", map[string]string{"message": "On my way"})
	testutil.SetAuthContext(c, testutil.Analyst)
	testutil.SetURLParam(c, "id", "1")
	handler.AddInteraction(c)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "On my way", deps.interact.lastCmd.Message)
}

func TestTicketHandler_AddInteraction_MissingMessage(t *testing.T) {
	handler, deps := newTestTicketHandler()

	c, w := testutil.NewTestContext(http.MethodPost, "/api/tickets/1/interactions", map[string]string{})
	testutil.SetAuthContext(c, testutil.Analyst)
	testutil.SetURLParam(c, "id", "1")
	handler.AddInteraction(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, deps.interact.called)
}

func TestTicketHandler_AssignTicket(t *testing.T) {
	t.Run("empty body assigns the caller", func(t *testing.T) {
		handler, deps := newTestTicketHandler()
		deps.assign.result = &ticketdto.TicketDTO{ID: "1", AssignedAnalyst: "Bia Souza"}

		c, w := testutil.NewTestContext(http.MethodPut, "/api/tickets/1/assignee", nil)
		testutil.SetAuthContext(c, testutil.Analyst)
		testutil.SetURLParam(c, "id", "1")
		handler.AssignTicket(c)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, deps.assign.lastCmd.Login)
	})

	t.Run("other login is forbidden for analysts", func(t *testing.T) {
		handler, deps := newTestTicketHandler()
		deps.assign.err = errors.NewForbiddenError("analysts can only assign themselves")

		c, w := testutil.NewTestContext(http.MethodPut, "/api/tickets/1/assignee", map[string]string{"login": "rui"})
		testutil.SetAuthContext(c, testutil.Analyst)
		testutil.SetURLParam(c, "id", "1")
		handler.AssignTicket(c)

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Equal(t, "rui", deps.assign.lastCmd.Login)
	})
}
