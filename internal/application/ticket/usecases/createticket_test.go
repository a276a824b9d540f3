package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chamados/servicedesk/internal/domain/ticket"
	"github.com/chamados/servicedesk/internal/infrastructure/upload"
	"github.com/chamados/servicedesk/internal/shared/errors"
)

func validCreateCommand(f *ticketFixture) CreateTicketCommand {
	return CreateTicketCommand{
		Title:       "Impressora parada",
		Client:      "Acme",
		Category:    "Hardware",
		Description: "Não imprime desde ontem",
		Priority:    "medium",
		Requester:   "Joana",
		Actor:       f.analyst,
	}
}

func TestCreateTicket_WithAttachments(t *testing.T) {
	f := newTicketFixture(t)
	f.files.SaveFunc = func(_ context.Context, files []upload.File, uploader string) ([]ticket.Attachment, error) {
		assert.Equal(t, "Bia Souza", uploader)
		return []ticket.Attachment{{
			OriginalName: files[0].Filename,
			StoredName:   "1-abc.png",
			Path:         "/uploads/1-abc.png",
			UploadedAt:   f.clock.Now(),
			UploadedBy:   uploader,
		}}, nil
	}
	cmd := validCreateCommand(f)
	cmd.Files = []upload.File{{Filename: "print.png", ContentType: "image/png", Size: 10}}

	created, err := NewCreateTicketUseCase(f.tickets, f.files, f.clock, f.log).Execute(context.Background(), cmd)

	require.NoError(t, err)
	assert.Equal(t, "Open", created.Status)
	assert.Equal(t, "Medium", created.Priority)
	assert.Equal(t, "Bia Souza", created.CreatedBy)
	assert.Equal(t, f.analyst.ID, created.CreatedByID)
	require.Len(t, created.Attachments, 1)
	assert.Equal(t, "print.png", created.Attachments[0].OriginalName)

	stored := f.get(t, created.ID)
	assert.Len(t, stored.Attachments(), 1)
}

func TestCreateTicket_InvalidFormWritesNoFiles(t *testing.T) {
	f := newTicketFixture(t)
	cmd := validCreateCommand(f)
	cmd.Requester = " "
	cmd.Files = []upload.File{{Filename: "print.png"}}

	_, err := NewCreateTicketUseCase(f.tickets, f.files, f.clock, f.log).Execute(context.Background(), cmd)

	requireErrType(t, err, errors.ErrorTypeValidation, 400)
	assert.Equal(t, 0, f.files.saveCalls)
}

func TestCreateTicket_RejectedUpload(t *testing.T) {
	f := newTicketFixture(t)
	f.files.SaveFunc = func(context.Context, []upload.File, string) ([]ticket.Attachment, error) {
		return nil, errors.NewValidationError("file type not allowed")
	}
	cmd := validCreateCommand(f)
	cmd.Files = []upload.File{{Filename: "run.exe"}}

	_, err := NewCreateTicketUseCase(f.tickets, f.files, f.clock, f.log).Execute(context.Background(), cmd)

	requireErrType(t, err, errors.ErrorTypeValidation, 400)
	tickets, err := f.tickets.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, tickets)
}
