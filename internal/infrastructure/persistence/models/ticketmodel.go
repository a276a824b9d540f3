package models

import "time"

type TicketModel struct {
	ID              string             `json:"id"`
	Title           string             `json:"title"`
	Client          string             `json:"client"`
	Category        string             `json:"category"`
	Description     string             `json:"description"`
	Priority        string             `json:"priority"`
	Requester       string             `json:"requester"`
	Status          string             `json:"status"`
	CreatedAt       time.Time          `json:"createdAt"`
	UpdatedAt       time.Time          `json:"updatedAt"`
	CreatedBy       string             `json:"createdBy"`
	CreatedByID     int64              `json:"createdById,omitempty"`
	AssignedAnalyst string             `json:"assignedAnalyst"`
	Interactions    []InteractionModel `json:"interactions"`
	Attachments     []AttachmentModel  `json:"attachments"`
}

type InteractionModel struct {
	Timestamp time.Time `json:"timestamp"`
	Author    string    `json:"author"`
	Role      string    `json:"role"`
	Message   string    `json:"message"`
}

type AttachmentModel struct {
	OriginalName string    `json:"originalName"`
	StoredName   string    `json:"storedName"`
	Path         string    `json:"path"`
	UploadedAt   time.Time `json:"uploadedAt"`
	UploadedBy   string    `json:"uploadedBy"`
}
