package response

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/orris-inc/complaintdesk/internal/shared/biztime"
)

// ErrAttachmentOwner is returned when an attachment does not have exactly one owner.
var ErrAttachmentOwner = errors.New("attachment must belong to exactly one of complaint or response")

const maxAttachmentSize = 25 << 20

// Attachment is a file reference owned by a complaint or by a response, never both.
type Attachment struct {
	id          uint
	fileName    string
	fileURL     string
	mimeType    string
	size        int64
	complaintID *uint
	responseID  *uint
	createdAt   time.Time
}

func NewAttachment(fileName, fileURL, mimeType string, size int64, complaintID, responseID *uint) (*Attachment, error) {
	if (complaintID == nil) == (responseID == nil) {
		return nil, ErrAttachmentOwner
	}
	if (complaintID != nil && *complaintID == 0) || (responseID != nil && *responseID == 0) {
		return nil, ErrAttachmentOwner
	}

	fileName = strings.TrimSpace(fileName)
	if fileName == "" {
		return nil, fmt.Errorf("file name is required")
	}
	if len(fileName) > 255 {
		return nil, fmt.Errorf("file name exceeds maximum length of 255 characters")
	}
	u, err := url.Parse(fileURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid file URL: %s", fileURL)
	}
	if strings.TrimSpace(mimeType) == "" {
		return nil, fmt.Errorf("mime type is required")
	}
	if size <= 0 || size > maxAttachmentSize {
		return nil, fmt.Errorf("file size must be between 1 and %d bytes", maxAttachmentSize)
	}

	return &Attachment{
		fileName:    fileName,
		fileURL:     fileURL,
		mimeType:    mimeType,
		size:        size,
		complaintID: complaintID,
		responseID:  responseID,
		createdAt:   biztime.NowUTC(),
	}, nil
}

func ReconstructAttachment(id uint, fileName, fileURL, mimeType string, size int64, complaintID, responseID *uint, createdAt time.Time) *Attachment {
	return &Attachment{
		id:          id,
		fileName:    fileName,
		fileURL:     fileURL,
		mimeType:    mimeType,
		size:        size,
		complaintID: complaintID,
		responseID:  responseID,
		createdAt:   createdAt,
	}
}

func (a *Attachment) ID() uint             { return a.id }
func (a *Attachment) FileName() string     { return a.fileName }
func (a *Attachment) FileURL() string      { return a.fileURL }
func (a *Attachment) MimeType() string     { return a.mimeType }
func (a *Attachment) Size() int64          { return a.size }
func (a *Attachment) ComplaintID() *uint   { return a.complaintID }
func (a *Attachment) ResponseID() *uint    { return a.responseID }
func (a *Attachment) CreatedAt() time.Time { return a.createdAt }

func (a *Attachment) SetID(id uint) error {
	if a.id != 0 {
		return fmt.Errorf("attachment ID is already set")
	}
	a.id = id
	return nil
}
