package uploads

import "time"

const (
	KindImage  = "image"
	KindResume = "resume"
)

// Upload is a stored admin asset: a portfolio image or the canonical
// resume PDF.
type Upload struct {
	ID           string
	Kind         string
	FileName     string
	MimeType     string
	SizeBytes    int64
	StorageKey   string
	ThumbnailKey string
	PageCount    int
	UploadedBy   string
	CreatedAt    time.Time
}
