package reference

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	refdto "github.com/chamados/servicedesk/internal/application/reference/dto"
	"github.com/chamados/servicedesk/internal/application/reference/usecases"
	"github.com/chamados/servicedesk/internal/interfaces/http/handlers/testutil"
	"github.com/chamados/servicedesk/internal/shared/errors"
)

type mockListUC[D any] struct {
	result    []D
	err       error
	lastQuery usecases.ListQuery
}

func (m *mockListUC[D]) Execute(_ context.Context, query usecases.ListQuery) ([]D, error) {
	m.lastQuery = query
	return m.result, m.err
}

type mockDeleteUC struct {
	err     error
	lastCmd usecases.DeleteCommand
}

func (m *mockDeleteUC) Execute(_ context.Context, cmd usecases.DeleteCommand) error {
	m.lastCmd = cmd
	return m.err
}

type mockCreateClientUC struct {
	result  *refdto.ClientDTO
	err     error
	lastCmd usecases.CreateClientCommand
	called  bool
}

func (m *mockCreateClientUC) Execute(_ context.Context, cmd usecases.CreateClientCommand) (*refdto.ClientDTO, error) {
	m.called = true
	m.lastCmd = cmd
	return m.result, m.err
}

type mockUpdateClientUC struct {
	result  *refdto.ClientDTO
	err     error
	lastCmd usecases.UpdateClientCommand
}

func (m *mockUpdateClientUC) Execute(_ context.Context, cmd usecases.UpdateClientCommand) (*refdto.ClientDTO, error) {
	m.lastCmd = cmd
	return m.result, m.err
}

type mockCreateCategoryUC struct {
	result  *refdto.CategoryDTO
	err     error
	lastCmd usecases.CreateCategoryCommand
}

func (m *mockCreateCategoryUC) Execute(_ context.Context, cmd usecases.CreateCategoryCommand) (*refdto.CategoryDTO, error) {
	m.lastCmd = cmd
	return m.result, m.err
}

type mockUpdateCategoryUC struct {
	result  *refdto.CategoryDTO
	err     error
	lastCmd usecases.UpdateCategoryCommand
}

func (m *mockUpdateCategoryUC) Execute(_ context.Context, cmd usecases.UpdateCategoryCommand) (*refdto.CategoryDTO, error) {
	m.lastCmd = cmd
	return m.result, m.err
}

type mockCreateGroupUC struct {
	result *refdto.GroupDTO
	err    error
}

func (m *mockCreateGroupUC) Execute(_ context.Context, _ usecases.CreateGroupCommand) (*refdto.GroupDTO, error) {
	return m.result, m.err
}

type mockUpdateGroupUC struct {
	result  *refdto.GroupDTO
	err     error
	lastCmd usecases.UpdateGroupCommand
}

func (m *mockUpdateGroupUC) Execute(_ context.Context, cmd usecases.UpdateGroupCommand) (*refdto.GroupDTO, error) {
	m.lastCmd = cmd
	return m.result, m.err
}

func TestClientHandler_List_ActiveParameter(t *testing.T) {
	tests := []struct {
		name       string
		query      map[string]string
		activeOnly bool
	}{
		{"no parameter", nil, false},
		{"numeric flag", map[string]string{"active": "1"}, true},
		{"word flag", map[string]string{"active": "true"}, true},
		{"explicit false", map[string]string{"active": "0"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			list := &mockListUC[refdto.ClientDTO]{result: []refdto.ClientDTO{{ID: "1712000000000", Name: "Acme Ltda"}}}
			handler := NewClientHandler(list, &mockCreateClientUC{}, &mockUpdateClientUC{}, &mockDeleteUC{}, testutil.NewMockLogger())

			c, w := testutil.NewTestContext(http.MethodGet, "/api/clients", nil)
			testutil.SetAuthContext(c, testutil.Admin)
			if tt.query != nil {
				testutil.SetQueryParams(c, tt.query)
			}
			handler.List(c)

			require.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, tt.activeOnly, list.lastQuery.ActiveOnly)
			assert.Equal(t, testutil.Admin, list.lastQuery.Actor)
		})
	}
}

func TestClientHandler_List_InvalidActiveParameter(t *testing.T) {
	list := &mockListUC[refdto.ClientDTO]{}
	handler := NewClientHandler(list, &mockCreateClientUC{}, &mockUpdateClientUC{}, &mockDeleteUC{}, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodGet, "/api/clients", nil)
	testutil.SetAuthContext(c, testutil.Admin)
	testutil.SetQueryParams(c, map[string]string{"active": "maybe"})
	handler.List(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestClientHandler_Create(t *testing.T) {
	create := &mockCreateClientUC{result: &refdto.ClientDTO{ID: "1712000000000", Name: "Acme Ltda", CNPJDigits: "11222333000181"}}
	handler := NewClientHandler(&mockListUC[refdto.ClientDTO]{}, create, &mockUpdateClientUC{}, &mockDeleteUC{}, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodPost, "/api/clients", map[string]string{"name": "Acme Ltda", "cnpj": "11.222.333/0001-81"})
	handler.Create(c)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, usecases.CreateClientCommand{Name: "Acme Ltda", CNPJ: "11.222.333/0001-81"}, create.lastCmd)
}

func TestClientHandler_Create_Conflict(t *testing.T) {
	create := &mockCreateClientUC{err: errors.NewConflictError("client with this CNPJ already exists")}
	handler := NewClientHandler(&mockListUC[refdto.ClientDTO]{}, create, &mockUpdateClientUC{}, &mockDeleteUC{}, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodPost, "/api/clients", map[string]string{"name": "Acme", "cnpj": "11222333000181"})
	handler.Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	require.NotNil(t, resp.Error)
	assert.Equal(t, "conflict", resp.Error.Type)
}

func TestClientHandler_Create_MissingCNPJ(t *testing.T) {
	create := &mockCreateClientUC{}
	handler := NewClientHandler(&mockListUC[refdto.ClientDTO]{}, create, &mockUpdateClientUC{}, &mockDeleteUC{}, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodPost, "/api/clients", map[string]string{"name": "Acme"})
	handler.Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, create.called)
}

func TestClientHandler_Update_PartialFields(t *testing.T) {
	update := &mockUpdateClientUC{result: &refdto.ClientDTO{ID: "7", Active: false}}
	handler := NewClientHandler(&mockListUC[refdto.ClientDTO]{}, &mockCreateClientUC{}, update, &mockDeleteUC{}, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodPut, "/api/clients/7", map[string]bool{"active": false})
	testutil.SetURLParam(c, "id", "7")
	handler.Update(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "7", update.lastCmd.ID)
	assert.Nil(t, update.lastCmd.Changes.Name)
	assert.Nil(t, update.lastCmd.Changes.CNPJ)
	require.NotNil(t, update.lastCmd.Changes.Active)
	assert.False(t, *update.lastCmd.Changes.Active)
}

func TestCategoryHandler_CreateAndUpdate(t *testing.T) {
	create := &mockCreateCategoryUC{result: &refdto.CategoryDTO{ID: "1", Group: "Hardware", Name: "Printers", Key: "hardware::printers"}}
	update := &mockUpdateCategoryUC{result: &refdto.CategoryDTO{ID: "1", Group: "Hardware", Name: "Impressoras"}}
	handler := NewCategoryHandler(&mockListUC[refdto.CategoryDTO]{}, create, update, &mockDeleteUC{}, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodPost, "/api/categories", map[string]string{"group": "Hardware", "name": "Printers"})
	handler.Create(c)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, usecases.CreateCategoryCommand{Group: "Hardware", Name: "Printers"}, create.lastCmd)

	c, w = testutil.NewTestContext(http.MethodPut, "/api/categories/1", map[string]string{"name": "Impressoras"})
	testutil.SetURLParam(c, "id", "1")
	handler.Update(c)
	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, update.lastCmd.Changes.Name)
	assert.Equal(t, "Impressoras", *update.lastCmd.Changes.Name)
	assert.Nil(t, update.lastCmd.Changes.Group)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	var category refdto.CategoryDTO
	require.NoError(t, json.Unmarshal(resp.Data, &category))
	assert.Equal(t, "Impressoras", category.Name)
}

func TestGroupHandler_List_AnalystCaller(t *testing.T) {
	list := &mockListUC[refdto.GroupDTO]{result: []refdto.GroupDTO{{ID: "1", Name: "Hardware", Active: true}}}
	handler := NewGroupHandler(list, &mockCreateGroupUC{}, &mockUpdateGroupUC{}, &mockDeleteUC{}, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodGet, "/api/groups", nil)
	testutil.SetAuthContext(c, testutil.Analyst)
	handler.List(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, testutil.Analyst, list.lastQuery.Actor)
}

func TestGroupHandler_Delete_NotFound(t *testing.T) {
	del := &mockDeleteUC{err: errors.NewNotFoundError("group not found")}
	handler := NewGroupHandler(&mockListUC[refdto.GroupDTO]{}, &mockCreateGroupUC{}, &mockUpdateGroupUC{}, del, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodDelete, "/api/groups/404", nil)
	testutil.SetURLParam(c, "id", "404")
	handler.Delete(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "404", del.lastCmd.ID)
}
