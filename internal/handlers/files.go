package handlers

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/task-tracker/internal/constants"
	"github.com/yukikurage/task-tracker/internal/dto"
	apierrors "github.com/yukikurage/task-tracker/internal/errors"
	"github.com/yukikurage/task-tracker/internal/middleware"
	"github.com/yukikurage/task-tracker/internal/services"
)

var errInvalidMultipart = apierrors.NewAPIError(apierrors.ErrCodeInvalidInput, "Invalid multipart body")

// FileHandler serves uploads, attachment deletion and blob reads.
type FileHandler struct {
	attachmentService *services.AttachmentService
}

func NewFileHandler(attachmentService *services.AttachmentService) *FileHandler {
	return &FileHandler{
		attachmentService: attachmentService,
	}
}

// Upload stores the "files" parts of a multipart body on the task in :task_id.
func (h *FileHandler) Upload(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	spool := &uploadSpool{}
	defer spool.remove()

	files, err := spool.read(c.Request)
	if err != nil {
		respondError(c, err)
		return
	}

	attachments, err := h.attachmentService.Upload(c.Request.Context(), userID, middleware.GetIDParam(c, "task_id"), files)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"files": dto.ToFileDTOs(attachments),
	})
}

// uploadSpool copies file parts to temporary files one at a time. Reading
// stops at the first part over the size limit or past the file count, so
// the rest of the body is never parsed.
type uploadSpool struct {
	paths []string
}

func (s *uploadSpool) read(r *http.Request) ([]services.UploadedFile, error) {
	reader, err := r.MultipartReader()
	if err != nil {
		return nil, errInvalidMultipart
	}

	var files []services.UploadedFile
	for {
		part, err := reader.NextPart()
		if err == io.EOF {
			return files, nil
		}
		if err != nil {
			return nil, bodyError(err)
		}
		if part.FormName() != constants.UploadFormField || part.FileName() == "" {
			part.Close()
			continue
		}
		if len(files) == constants.MaxFilesPerUpload {
			return nil, services.ErrTooManyFiles
		}

		file, err := s.spool(part)
		if err != nil {
			return nil, err
		}
		files = append(files, file)
	}
}

// spool copies one part to a temporary file. An oversized part is left
// unread past the limit.
func (s *uploadSpool) spool(part *multipart.Part) (services.UploadedFile, error) {
	tmp, err := os.CreateTemp("", "upload-*")
	if err != nil {
		return services.UploadedFile{}, err
	}
	path := tmp.Name()
	s.paths = append(s.paths, path)

	n, err := io.Copy(tmp, io.LimitReader(part, constants.MaxFileSize+1))
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return services.UploadedFile{}, bodyError(err)
	}
	if n > constants.MaxFileSize {
		return services.UploadedFile{}, services.ErrFileTooLarge
	}

	return services.UploadedFile{
		Name:     part.FileName(),
		MimeType: part.Header.Get("Content-Type"),
		Size:     n,
		Open: func() (io.ReadSeekCloser, error) {
			return os.Open(path)
		},
	}, nil
}

func (s *uploadSpool) remove() {
	for _, path := range s.paths {
		os.Remove(path)
	}
}

// bodyError maps a failure reading the request body to an API error.
func bodyError(err error) error {
	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		return services.ErrFileTooLarge
	}
	return errInvalidMultipart
}

// Delete removes one attachment and its blob
func (h *FileHandler) Delete(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	if err := h.attachmentService.DeleteAttachment(c.Request.Context(), userID, middleware.GetIDParam(c, "id")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
	})
}

// Serve streams a stored blob by key with the MIME type recorded at upload.
// Keys are unguessable, so no identity is required.
func (h *FileHandler) Serve(c *gin.Context) {
	object, err := h.attachmentService.OpenFile(c.Request.Context(), c.Param("key"))
	if err != nil {
		respondError(c, err)
		return
	}
	defer object.Body.Close()

	c.DataFromReader(http.StatusOK, object.Size, object.ContentType, object.Body, map[string]string{
		"Cache-Control":          "private, max-age=86400",
		"X-Content-Type-Options": "nosniff",
	})
}
