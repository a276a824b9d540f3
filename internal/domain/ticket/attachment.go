package ticket

import "time"

// Attachment describes an uploaded file. StoredName is the collision-free name on disk;
// OriginalName is what the uploader called it.
type Attachment struct {
	OriginalName string
	StoredName   string
	Path         string
	UploadedAt   time.Time
	UploadedBy   string
}
