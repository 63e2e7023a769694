package services

import (
	"context"
	"errors"
	"io"
	"mime"

	"github.com/gabriel-vasile/mimetype"
	"github.com/sirupsen/logrus"
	"github.com/yukikurage/task-tracker/internal/blobstore"
	"github.com/yukikurage/task-tracker/internal/constants"
	"github.com/yukikurage/task-tracker/internal/models"
	"github.com/yukikurage/task-tracker/internal/repository"
	"github.com/yukikurage/task-tracker/internal/utils"
	"gorm.io/gorm"
)

const defaultMimeType = "application/octet-stream"

// AttachmentService stores uploaded files for owned tasks and removes them.
type AttachmentService struct {
	taskRepo       repository.TaskRepository
	attachmentRepo repository.AttachmentRepository
	blobs          blobstore.Store
	log            logrus.FieldLogger
	newKey         func(originalName string) string
}

// NewAttachmentService creates a new AttachmentService
func NewAttachmentService(taskRepo repository.TaskRepository, attachmentRepo repository.AttachmentRepository, blobs blobstore.Store, log logrus.FieldLogger) *AttachmentService {
	return &AttachmentService{
		taskRepo:       taskRepo,
		attachmentRepo: attachmentRepo,
		blobs:          blobs,
		log:            log,
		newKey:         utils.NewStorageKey,
	}
}

// UploadedFile is one file of an upload request. Size is the size the
// client declared; the stored size is measured from the content.
type UploadedFile struct {
	Name     string
	MimeType string
	Size     int64
	Open     func() (io.ReadSeekCloser, error)
}

// Upload stores files for an owned task and returns the created attachments.
// Blobs are written before any row is inserted and without a transaction
// open; if anything fails, every blob written so far is removed again.
func (s *AttachmentService) Upload(ctx context.Context, ownerID, taskID uint64, files []UploadedFile) ([]models.Attachment, error) {
	if ownerID == 0 {
		return nil, ErrUnauthorized
	}
	if len(files) == 0 {
		return nil, ErrNoFiles
	}
	if len(files) > constants.MaxFilesPerUpload {
		return nil, ErrTooManyFiles
	}
	for _, f := range files {
		if f.Size > constants.MaxFileSize {
			return nil, ErrFileTooLarge
		}
	}

	if _, err := s.taskRepo.FindOwned(ctx, ownerID, taskID); err != nil {
		return nil, taskLookupError("find task", err)
	}

	attachments := make([]models.Attachment, 0, len(files))
	committed := false
	defer func() {
		if !committed {
			s.removeBlobs(context.WithoutCancel(ctx), attachments)
		}
	}()

	for _, f := range files {
		attachment, err := s.store(ctx, f)
		if attachment != nil {
			attachments = append(attachments, *attachment)
		}
		if err != nil {
			return nil, err
		}
	}

	if err := s.attachmentRepo.CreateForOwnedTask(ctx, ownerID, taskID, attachments); err != nil {
		return nil, taskLookupError("save attachments", err)
	}

	committed = true
	return attachments, nil
}

// store writes one file to the blob store. A non-nil attachment is returned
// whenever a blob may have been written, so the caller can clean it up.
func (s *AttachmentService) store(ctx context.Context, f UploadedFile) (*models.Attachment, error) {
	body, err := f.Open()
	if err != nil {
		return nil, storeFailure("open upload", err)
	}
	defer body.Close()

	size, err := body.Seek(0, io.SeekEnd)
	if err != nil {
		return nil, storeFailure("measure upload", err)
	}
	if size > constants.MaxFileSize {
		return nil, ErrFileTooLarge
	}
	if _, err := body.Seek(0, io.SeekStart); err != nil {
		return nil, storeFailure("rewind upload", err)
	}

	mimeType, err := detectMimeType(f.MimeType, body)
	if err != nil {
		return nil, storeFailure("detect file type", err)
	}

	name := utils.DisplayName(f.Name)
	key := s.newKey(name)
	if name == "" {
		name = key
	}

	attachment := &models.Attachment{
		StoredName:   key,
		OriginalName: name,
		MimeType:     mimeType,
		Size:         size,
	}
	if err := s.blobs.Put(ctx, key, body, size, mimeType); err != nil {
		return attachment, storeFailure("store file", err)
	}
	return attachment, nil
}

// detectMimeType trusts the declared type unless it is missing or generic,
// in which case the content is sniffed and body rewound.
func detectMimeType(declared string, body io.ReadSeeker) (string, error) {
	if mediaType, _, err := mime.ParseMediaType(declared); err == nil && mediaType != defaultMimeType {
		return declared, nil
	}

	detected, err := mimetype.DetectReader(body)
	if err != nil {
		return "", err
	}
	if _, err := body.Seek(0, io.SeekStart); err != nil {
		return "", err
	}
	return detected.String(), nil
}

func (s *AttachmentService) removeBlobs(ctx context.Context, attachments []models.Attachment) {
	for _, attachment := range attachments {
		if err := s.blobs.Delete(ctx, attachment.StoredName); err != nil {
			s.log.WithError(err).WithField("key", attachment.StoredName).Warn("failed to remove blob of aborted upload")
		}
	}
}

// DeleteAttachment removes an attachment whose task is owned by ownerID.
// The blob is removed first; a missing blob or a failed removal is logged
// and the row is deleted regardless.
func (s *AttachmentService) DeleteAttachment(ctx context.Context, ownerID, attachmentID uint64) error {
	if ownerID == 0 {
		return ErrUnauthorized
	}

	attachment, err := s.attachmentRepo.FindOwned(ctx, ownerID, attachmentID)
	if err != nil {
		return attachmentLookupError("find file", err)
	}

	if err := s.blobs.Delete(ctx, attachment.StoredName); err != nil {
		s.log.WithError(err).WithFields(logrus.Fields{
			"attachment_id": attachment.ID,
			"key":           attachment.StoredName,
		}).Warn("failed to delete blob")
	}

	if err := s.attachmentRepo.DeleteOwned(ctx, ownerID, attachmentID); err != nil {
		return attachmentLookupError("delete file", err)
	}
	return nil
}

// OpenFile opens the blob stored under storedName. The content type is the
// one recorded at upload, not a guess from the key.
func (s *AttachmentService) OpenFile(ctx context.Context, storedName string) (*blobstore.Object, error) {
	attachment, err := s.attachmentRepo.FindByStoredName(ctx, storedName)
	if err != nil {
		return nil, attachmentLookupError("find file", err)
	}

	object, err := s.blobs.Get(ctx, attachment.StoredName)
	if errors.Is(err, blobstore.ErrNotFound) || errors.Is(err, blobstore.ErrInvalidKey) {
		return nil, ErrAttachmentNotFound
	}
	if err != nil {
		return nil, storeFailure("open file", err)
	}

	object.ContentType = attachment.MimeType
	return object, nil
}

func attachmentLookupError(op string, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrAttachmentNotFound
	}
	return storeFailure(op, err)
}
