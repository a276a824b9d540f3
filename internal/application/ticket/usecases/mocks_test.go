package usecases

import (
	"context"

	"github.com/chamados/servicedesk/internal/domain/ticket"
	"github.com/chamados/servicedesk/internal/infrastructure/upload"
)

type mockAttachmentStore struct {
	SaveFunc      func(ctx context.Context, files []upload.File, uploader string) ([]ticket.Attachment, error)
	RemoveFunc    func(storedName string) error
	RemoveAllFunc func(attachments []ticket.Attachment)

	saveCalls   int
	removed     []string
	removedAlls [][]ticket.Attachment
}

func (m *mockAttachmentStore) Save(ctx context.Context, files []upload.File, uploader string) ([]ticket.Attachment, error) {
	m.saveCalls++
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, files, uploader)
	}
	return nil, nil
}

func (m *mockAttachmentStore) Remove(storedName string) error {
	m.removed = append(m.removed, storedName)
	if m.RemoveFunc != nil {
		return m.RemoveFunc(storedName)
	}
	return nil
}

func (m *mockAttachmentStore) RemoveAll(attachments []ticket.Attachment) {
	m.removedAlls = append(m.removedAlls, attachments)
	if m.RemoveAllFunc != nil {
		m.RemoveAllFunc(attachments)
	}
}

type mockRenderer struct {
	ToHTMLSanitizedFunc func(markdown string) (string, error)
}

func (m *mockRenderer) ToHTMLSanitized(markdown string) (string, error) {
	if m.ToHTMLSanitizedFunc != nil {
		return m.ToHTMLSanitizedFunc(markdown)
	}
	return "<p>" + markdown + "</p>", nil
}
