package services

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/suite"
	"github.com/yukikurage/task-tracker/internal/blobstore"
	"github.com/yukikurage/task-tracker/internal/constants"
	"github.com/yukikurage/task-tracker/internal/database"
	apierrors "github.com/yukikurage/task-tracker/internal/errors"
	"github.com/yukikurage/task-tracker/internal/models"
	"github.com/yukikurage/task-tracker/internal/repository"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type memFile struct {
	*bytes.Reader
}

func (memFile) Close() error { return nil }

func upload(name, mimeType string, content []byte) UploadedFile {
	return UploadedFile{
		Name:     name,
		MimeType: mimeType,
		Size:     int64(len(content)),
		Open: func() (io.ReadSeekCloser, error) {
			return memFile{bytes.NewReader(content)}, nil
		},
	}
}

// failingDeletes wraps a store so Delete always fails.
type failingDeletes struct {
	blobstore.Store
}

func (failingDeletes) Delete(context.Context, string) error {
	return errors.New("bucket unavailable")
}

// failingPuts accepts the first n writes and fails the rest.
type failingPuts struct {
	blobstore.Store
	n int
}

func (f *failingPuts) Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) error {
	if f.n == 0 {
		return errors.New("disk full")
	}
	f.n--
	return f.Store.Put(ctx, key, r, size, contentType)
}

type ServicesTestSuite struct {
	suite.Suite
	ctx        context.Context
	db         *gorm.DB
	dir        string
	blobs      blobstore.Store
	logHook    *logtest.Hook
	log        *logrus.Logger
	authSvc    *AuthService
	taskSvc    *TaskService
	attachSvc  *AttachmentService
	taskRepo   repository.TaskRepository
	attachRepo repository.AttachmentRepository
	alice      *models.User
	bob        *models.User
}

func (s *ServicesTestSuite) SetupTest() {
	db, err := database.OpenInMemory()
	s.Require().NoError(err)
	s.db = db
	s.ctx = context.Background()

	s.dir = s.T().TempDir()
	disk, err := blobstore.NewDiskStore(s.dir)
	s.Require().NoError(err)
	s.blobs = disk

	s.log, s.logHook = logtest.NewNullLogger()

	s.taskRepo = repository.NewTaskRepository(db)
	s.attachRepo = repository.NewAttachmentRepository(db)

	s.authSvc = NewAuthService(repository.NewUserRepository(db))
	s.authSvc.cost = bcrypt.MinCost
	s.taskSvc = NewTaskService(s.taskRepo, s.blobs, s.log)
	s.attachSvc = NewAttachmentService(s.taskRepo, s.attachRepo, s.blobs, s.log)

	s.alice = s.register("alice", "password")
	s.bob = s.register("bob", "password")
}

func (s *ServicesTestSuite) TearDownTest() {
	s.Require().NoError(database.Close(s.db))
}

func (s *ServicesTestSuite) register(username, password string) *models.User {
	user, err := s.authSvc.Register(s.ctx, RegisterInput{Username: username, Password: password})
	s.Require().NoError(err)
	return user
}

func (s *ServicesTestSuite) createTask(ownerID uint64, title string) *models.Task {
	task, err := s.taskSvc.CreateTask(s.ctx, CreateTaskInput{OwnerID: ownerID, Title: title})
	s.Require().NoError(err)
	return task
}

func (s *ServicesTestSuite) blobCount() int {
	entries, err := os.ReadDir(s.dir)
	s.Require().NoError(err)
	return len(entries)
}

func (s *ServicesTestSuite) attachmentCount() int64 {
	var count int64
	s.Require().NoError(s.db.Model(&models.Attachment{}).Count(&count).Error)
	return count
}

// Credential store

func (s *ServicesTestSuite) TestRegister_StoresVerifierNotPassword() {
	user := s.register("carol", "secret123")

	s.NotZero(user.ID)
	s.Equal("carol", user.Username)
	s.NotEqual("secret123", user.PasswordHash)
	s.NoError(bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("secret123")))
}

func (s *ServicesTestSuite) TestRegister_Validation() {
	_, err := s.authSvc.Register(s.ctx, RegisterInput{Username: "a", Password: "12345"})
	s.ErrorIs(err, ErrPasswordTooShort)
	s.True(apierrors.Is(err, apierrors.ErrCodeInvalidInput))

	s.register("a", "123456")

	_, err = s.authSvc.Register(s.ctx, RegisterInput{Username: "a", Password: "other-password"})
	s.ErrorIs(err, ErrUsernameTaken)
	s.True(apierrors.Is(err, apierrors.ErrCodeInvalidInput))

	_, err = s.authSvc.Register(s.ctx, RegisterInput{Username: "   ", Password: "123456"})
	s.ErrorIs(err, ErrUsernameRequired)
}

func (s *ServicesTestSuite) TestRegister_UsernameIsCaseSensitive() {
	user := s.register("Alice", "password")
	s.NotEqual(s.alice.ID, user.ID)
}

func (s *ServicesTestSuite) TestLogin_UniformFailure() {
	user, err := s.authSvc.Login(s.ctx, LoginInput{Username: "alice", Password: "password"})
	s.Require().NoError(err)
	s.Equal(s.alice.ID, user.ID)

	_, wrongPassword := s.authSvc.Login(s.ctx, LoginInput{Username: "alice", Password: "nope-nope"})
	_, unknownUser := s.authSvc.Login(s.ctx, LoginInput{Username: "mallory", Password: "password"})

	s.ErrorIs(wrongPassword, ErrInvalidCredentials)
	s.ErrorIs(unknownUser, ErrInvalidCredentials)
	s.Equal(wrongPassword.Error(), unknownUser.Error())
}

func (s *ServicesTestSuite) TestGetUser() {
	user, err := s.authSvc.GetUser(s.ctx, s.bob.ID)
	s.Require().NoError(err)
	s.Equal("bob", user.Username)

	_, err = s.authSvc.GetUser(s.ctx, 9999)
	s.ErrorIs(err, ErrUserNotFound)
}

// Tasks

func (s *ServicesTestSuite) TestCreateThenGet_Defaults() {
	task := s.createTask(s.alice.ID, "x")

	got, err := s.taskSvc.GetTask(s.ctx, s.alice.ID, task.ID)
	s.Require().NoError(err)
	s.Equal("x", got.Title)
	s.Equal(models.TaskStatusPending, got.Status)
	s.Equal("", got.Description)
	s.Nil(got.DueDate)
	s.False(got.CreatedAt.IsZero())
	s.Empty(got.Attachments)
}

func (s *ServicesTestSuite) TestCreate_Validation() {
	_, err := s.taskSvc.CreateTask(s.ctx, CreateTaskInput{OwnerID: s.alice.ID, Title: "  "})
	s.ErrorIs(err, ErrTitleRequired)

	_, err = s.taskSvc.CreateTask(s.ctx, CreateTaskInput{OwnerID: s.alice.ID, Title: "t", Status: "archived"})
	s.ErrorIs(err, ErrInvalidStatus)
}

func (s *ServicesTestSuite) TestAnonymousCallerIsUnauthorized() {
	task := s.createTask(s.alice.ID, "private")

	_, err := s.taskSvc.ListTasks(s.ctx, 0, nil)
	s.ErrorIs(err, ErrUnauthorized)
	_, err = s.taskSvc.GetTask(s.ctx, 0, task.ID)
	s.ErrorIs(err, ErrUnauthorized)
	_, err = s.taskSvc.CreateTask(s.ctx, CreateTaskInput{Title: "t"})
	s.ErrorIs(err, ErrUnauthorized)
	_, err = s.taskSvc.UpdateTask(s.ctx, 0, task.ID, UpdateTaskInput{Title: Value("t")})
	s.ErrorIs(err, ErrUnauthorized)
	s.ErrorIs(s.taskSvc.DeleteTask(s.ctx, 0, task.ID), ErrUnauthorized)
	_, err = s.attachSvc.Upload(s.ctx, 0, task.ID, []UploadedFile{upload("a.txt", "text/plain", []byte("a"))})
	s.ErrorIs(err, ErrUnauthorized)
	s.ErrorIs(s.attachSvc.DeleteAttachment(s.ctx, 0, 1), ErrUnauthorized)
}

func (s *ServicesTestSuite) TestOtherOwnerSeesNotFound() {
	task := s.createTask(s.alice.ID, "alice's")

	_, err := s.taskSvc.GetTask(s.ctx, s.bob.ID, task.ID)
	s.ErrorIs(err, ErrTaskNotFound)

	_, err = s.taskSvc.UpdateTask(s.ctx, s.bob.ID, task.ID, UpdateTaskInput{Title: Value("mine now")})
	s.ErrorIs(err, ErrTaskNotFound)

	s.ErrorIs(s.taskSvc.DeleteTask(s.ctx, s.bob.ID, task.ID), ErrTaskNotFound)

	_, err = s.attachSvc.Upload(s.ctx, s.bob.ID, task.ID, []UploadedFile{upload("a.txt", "text/plain", []byte("a"))})
	s.ErrorIs(err, ErrTaskNotFound)

	_, missing := s.taskSvc.GetTask(s.ctx, s.bob.ID, task.ID+1000)
	s.Equal(err.Error(), missing.Error())

	got, err := s.taskSvc.GetTask(s.ctx, s.alice.ID, task.ID)
	s.Require().NoError(err)
	s.Equal("alice's", got.Title)
}

func (s *ServicesTestSuite) TestListTasks_FilterAndOrder() {
	day := func(d int) *time.Time {
		t := time.Date(2026, 1, d, 0, 0, 0, 0, time.UTC)
		return &t
	}
	create := func(owner uint64, title string, status models.TaskStatus, due *time.Time) {
		_, err := s.taskSvc.CreateTask(s.ctx, CreateTaskInput{OwnerID: owner, Title: title, Status: status, DueDate: due})
		s.Require().NoError(err)
	}
	create(s.alice.ID, "none", models.TaskStatusDone, nil)
	create(s.alice.ID, "third", models.TaskStatusDone, day(20))
	create(s.alice.ID, "first", models.TaskStatusDone, day(2))
	create(s.alice.ID, "open", models.TaskStatusPending, day(1))
	create(s.bob.ID, "bob's", models.TaskStatusDone, day(1))

	done := models.TaskStatusDone
	tasks, err := s.taskSvc.ListTasks(s.ctx, s.alice.ID, &done)
	s.Require().NoError(err)

	titles := make([]string, len(tasks))
	for i, task := range tasks {
		s.Equal(models.TaskStatusDone, task.Status)
		s.Equal(s.alice.ID, task.OwnerID)
		titles[i] = task.Title
	}
	s.Equal([]string{"first", "third", "none"}, titles)

	bogus := models.TaskStatus("later")
	_, err = s.taskSvc.ListTasks(s.ctx, s.alice.ID, &bogus)
	s.ErrorIs(err, ErrInvalidStatus)
}

func (s *ServicesTestSuite) TestUpdateTask_SparsePatch() {
	due := time.Date(2026, 2, 14, 0, 0, 0, 0, time.UTC)
	task, err := s.taskSvc.CreateTask(s.ctx, CreateTaskInput{
		OwnerID:     s.alice.ID,
		Title:       "draft",
		Description: "keep me",
		DueDate:     &due,
	})
	s.Require().NoError(err)

	updated, err := s.taskSvc.UpdateTask(s.ctx, s.alice.ID, task.ID, UpdateTaskInput{
		Status: Value(models.TaskStatusInProgress),
	})
	s.Require().NoError(err)
	s.Equal(models.TaskStatusInProgress, updated.Status)
	s.Equal("draft", updated.Title)
	s.Equal("keep me", updated.Description)
	s.Require().NotNil(updated.DueDate)
	s.True(due.Equal(*updated.DueDate))

	updated, err = s.taskSvc.UpdateTask(s.ctx, s.alice.ID, task.ID, UpdateTaskInput{
		Description: Null[string](),
		DueDate:     Null[time.Time](),
	})
	s.Require().NoError(err)
	s.Equal("", updated.Description)
	s.Nil(updated.DueDate)
	s.Equal(models.TaskStatusInProgress, updated.Status)
}

func (s *ServicesTestSuite) TestUpdateTask_Validation() {
	task := s.createTask(s.alice.ID, "keep")

	tests := []struct {
		name  string
		input UpdateTaskInput
		want  error
	}{
		{"null title", UpdateTaskInput{Title: Null[string]()}, ErrTitleRequired},
		{"blank title", UpdateTaskInput{Title: Value(" ")}, ErrTitleRequired},
		{"null status", UpdateTaskInput{Status: Null[models.TaskStatus]()}, ErrInvalidStatus},
		{"unknown status", UpdateTaskInput{Status: Value(models.TaskStatus("blocked"))}, ErrInvalidStatus},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			_, err := s.taskSvc.UpdateTask(s.ctx, s.alice.ID, task.ID, tt.input)
			s.ErrorIs(err, tt.want)
		})
	}

	got, err := s.taskSvc.GetTask(s.ctx, s.alice.ID, task.ID)
	s.Require().NoError(err)
	s.Equal("keep", got.Title)
	s.Equal(models.TaskStatusPending, got.Status)
}

func (s *ServicesTestSuite) TestDeleteTask_CascadesRowsAndBlobs() {
	task := s.createTask(s.alice.ID, "with files")
	attachments, err := s.attachSvc.Upload(s.ctx, s.alice.ID, task.ID, []UploadedFile{
		upload("one.txt", "text/plain", []byte("one")),
		upload("two.txt", "text/plain", []byte("two")),
	})
	s.Require().NoError(err)
	s.Require().Len(attachments, 2)
	s.Equal(2, s.blobCount())

	s.Require().NoError(s.taskSvc.DeleteTask(s.ctx, s.alice.ID, task.ID))

	s.Equal(0, s.blobCount())
	s.Zero(s.attachmentCount())
	for _, attachment := range attachments {
		_, err := s.attachRepo.FindOwned(s.ctx, s.alice.ID, attachment.ID)
		s.ErrorIs(err, gorm.ErrRecordNotFound)
		s.ErrorIs(s.attachSvc.DeleteAttachment(s.ctx, s.alice.ID, attachment.ID), ErrAttachmentNotFound)
	}
}

func (s *ServicesTestSuite) TestDeleteTask_Twice() {
	task := s.createTask(s.alice.ID, "once")

	s.Require().NoError(s.taskSvc.DeleteTask(s.ctx, s.alice.ID, task.ID))

	err := s.taskSvc.DeleteTask(s.ctx, s.alice.ID, task.ID)
	s.ErrorIs(err, ErrTaskNotFound)
	s.True(apierrors.Is(err, apierrors.ErrCodeNotFound))
}

func (s *ServicesTestSuite) TestDeleteTask_BlobFailureDoesNotBlockRows() {
	task := s.createTask(s.alice.ID, "stuck blob")
	_, err := s.attachSvc.Upload(s.ctx, s.alice.ID, task.ID, []UploadedFile{
		upload("one.txt", "text/plain", []byte("one")),
	})
	s.Require().NoError(err)

	svc := NewTaskService(s.taskRepo, failingDeletes{s.blobs}, s.log)
	s.Require().NoError(svc.DeleteTask(s.ctx, s.alice.ID, task.ID))

	s.Zero(s.attachmentCount())
	_, err = s.taskSvc.GetTask(s.ctx, s.alice.ID, task.ID)
	s.ErrorIs(err, ErrTaskNotFound)

	entry := s.logHook.LastEntry()
	s.Require().NotNil(entry)
	s.Equal(logrus.WarnLevel, entry.Level)
	s.Equal("failed to delete blob", entry.Message)
}

// Attachments

func (s *ServicesTestSuite) TestUpload_StoresBlobAndMetadata() {
	task := s.createTask(s.alice.ID, "docs")

	attachments, err := s.attachSvc.Upload(s.ctx, s.alice.ID, task.ID, []UploadedFile{
		upload("notes.txt", "text/plain", []byte("hello")),
	})
	s.Require().NoError(err)
	s.Require().Len(attachments, 1)

	attachment := attachments[0]
	s.NotZero(attachment.ID)
	s.Equal(task.ID, attachment.TaskID)
	s.Equal("notes.txt", attachment.OriginalName)
	s.Equal("text/plain", attachment.MimeType)
	s.Equal(int64(5), attachment.Size)
	s.True(strings.HasSuffix(attachment.StoredName, ".txt"))
	s.NotEqual("notes.txt", attachment.StoredName)

	content, err := os.ReadFile(filepath.Join(s.dir, attachment.StoredName))
	s.Require().NoError(err)
	s.Equal("hello", string(content))

	got, err := s.taskSvc.GetTask(s.ctx, s.alice.ID, task.ID)
	s.Require().NoError(err)
	s.Len(got.Attachments, 1)
}

func (s *ServicesTestSuite) TestUpload_SniffsMissingMimeType() {
	task := s.createTask(s.alice.ID, "image")
	png := []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x06\x00\x00\x00")

	attachments, err := s.attachSvc.Upload(s.ctx, s.alice.ID, task.ID, []UploadedFile{
		upload("pixel", "application/octet-stream", png),
	})
	s.Require().NoError(err)
	s.Equal("image/png", attachments[0].MimeType)

	content, err := os.ReadFile(filepath.Join(s.dir, attachments[0].StoredName))
	s.Require().NoError(err)
	s.Equal(png, content)
}

func (s *ServicesTestSuite) TestUpload_OversizedFileRejectedBeforeAnyWrite() {
	task := s.createTask(s.alice.ID, "big")
	big := make([]byte, constants.MaxFileSize+1)

	_, err := s.attachSvc.Upload(s.ctx, s.alice.ID, task.ID, []UploadedFile{
		upload("small.txt", "text/plain", []byte("ok")),
		upload("big.bin", "application/octet-stream", big),
	})
	s.ErrorIs(err, ErrFileTooLarge)
	s.True(apierrors.Is(err, apierrors.ErrCodeFileTooLarge))
	s.Zero(s.attachmentCount())
	s.Equal(0, s.blobCount())
}

func (s *ServicesTestSuite) TestUpload_UnderstatedSizeIsMeasured() {
	task := s.createTask(s.alice.ID, "liar")
	file := upload("big.bin", "application/octet-stream", make([]byte, constants.MaxFileSize+1))
	file.Size = 10

	_, err := s.attachSvc.Upload(s.ctx, s.alice.ID, task.ID, []UploadedFile{file})
	s.ErrorIs(err, ErrFileTooLarge)
	s.Zero(s.attachmentCount())
	s.Equal(0, s.blobCount())
}

func (s *ServicesTestSuite) TestUpload_ExactlyAtLimit() {
	task := s.createTask(s.alice.ID, "edge")

	attachments, err := s.attachSvc.Upload(s.ctx, s.alice.ID, task.ID, []UploadedFile{
		upload("edge.bin", "application/zip", make([]byte, constants.MaxFileSize)),
	})
	s.Require().NoError(err)
	s.Equal(constants.MaxFileSize, attachments[0].Size)
}

func (s *ServicesTestSuite) TestUpload_FileCount() {
	task := s.createTask(s.alice.ID, "count")

	_, err := s.attachSvc.Upload(s.ctx, s.alice.ID, task.ID, nil)
	s.ErrorIs(err, ErrNoFiles)

	files := make([]UploadedFile, constants.MaxFilesPerUpload+1)
	for i := range files {
		files[i] = upload("f.txt", "text/plain", []byte("x"))
	}
	_, err = s.attachSvc.Upload(s.ctx, s.alice.ID, task.ID, files)
	s.ErrorIs(err, ErrTooManyFiles)
}

func (s *ServicesTestSuite) TestUpload_FailedWriteRemovesEarlierBlobs() {
	task := s.createTask(s.alice.ID, "partial")
	svc := NewAttachmentService(s.taskRepo, s.attachRepo, &failingPuts{Store: s.blobs, n: 1}, s.log)

	_, err := svc.Upload(s.ctx, s.alice.ID, task.ID, []UploadedFile{
		upload("a.txt", "text/plain", []byte("a")),
		upload("b.txt", "text/plain", []byte("b")),
	})
	s.Require().Error(err)
	s.Equal(apierrors.ErrCodeInternalError, apierrors.FromError(err).Code)
	s.Zero(s.attachmentCount())
	s.Equal(0, s.blobCount())
}

func (s *ServicesTestSuite) TestUpload_TaskDeletedMidUploadLeavesNothing() {
	task := s.createTask(s.alice.ID, "vanishing")

	svc := NewAttachmentService(s.taskRepo, s.attachRepo, s.blobs, s.log)
	svc.newKey = func(string) string {
		// The task disappears after ownership was checked but before rows are inserted.
		s.Require().NoError(s.taskRepo.DeleteOwned(s.ctx, s.alice.ID, task.ID))
		return "first.txt"
	}

	_, err := svc.Upload(s.ctx, s.alice.ID, task.ID, []UploadedFile{
		upload("a.txt", "text/plain", []byte("a")),
	})
	s.ErrorIs(err, ErrTaskNotFound)
	s.Zero(s.attachmentCount())
	s.Equal(0, s.blobCount())
}

func (s *ServicesTestSuite) TestDeleteAttachment() {
	task := s.createTask(s.alice.ID, "files")
	attachments, err := s.attachSvc.Upload(s.ctx, s.alice.ID, task.ID, []UploadedFile{
		upload("a.txt", "text/plain", []byte("a")),
	})
	s.Require().NoError(err)
	id := attachments[0].ID

	s.ErrorIs(s.attachSvc.DeleteAttachment(s.ctx, s.bob.ID, id), ErrAttachmentNotFound)
	s.Equal(1, s.blobCount())

	s.Require().NoError(s.attachSvc.DeleteAttachment(s.ctx, s.alice.ID, id))
	s.Equal(0, s.blobCount())
	s.Zero(s.attachmentCount())

	s.ErrorIs(s.attachSvc.DeleteAttachment(s.ctx, s.alice.ID, id), ErrAttachmentNotFound)
}

func (s *ServicesTestSuite) TestDeleteAttachment_MissingBlobTolerated() {
	task := s.createTask(s.alice.ID, "files")
	attachments, err := s.attachSvc.Upload(s.ctx, s.alice.ID, task.ID, []UploadedFile{
		upload("a.txt", "text/plain", []byte("a")),
	})
	s.Require().NoError(err)
	s.Require().NoError(os.Remove(filepath.Join(s.dir, attachments[0].StoredName)))

	s.Require().NoError(s.attachSvc.DeleteAttachment(s.ctx, s.alice.ID, attachments[0].ID))
	s.Zero(s.attachmentCount())
	s.Empty(s.logHook.AllEntries())
}

func (s *ServicesTestSuite) TestDeleteAttachment_BlobFailureStillRemovesRow() {
	task := s.createTask(s.alice.ID, "files")
	attachments, err := s.attachSvc.Upload(s.ctx, s.alice.ID, task.ID, []UploadedFile{
		upload("a.txt", "text/plain", []byte("a")),
	})
	s.Require().NoError(err)

	svc := NewAttachmentService(s.taskRepo, s.attachRepo, failingDeletes{s.blobs}, s.log)
	s.Require().NoError(svc.DeleteAttachment(s.ctx, s.alice.ID, attachments[0].ID))
	s.Zero(s.attachmentCount())
	s.Require().NotNil(s.logHook.LastEntry())
	s.Equal(logrus.WarnLevel, s.logHook.LastEntry().Level)
}

func (s *ServicesTestSuite) TestOpenFile_UsesRecordedMimeType() {
	task := s.createTask(s.alice.ID, "files")
	attachments, err := s.attachSvc.Upload(s.ctx, s.alice.ID, task.ID, []UploadedFile{
		upload("photo", "image/png", []byte("not really a png")),
	})
	s.Require().NoError(err)
	key := attachments[0].StoredName
	s.NotContains(key, ".")

	object, err := s.attachSvc.OpenFile(s.ctx, key)
	s.Require().NoError(err)
	defer object.Body.Close()
	s.Equal("image/png", object.ContentType)
	s.Equal(int64(16), object.Size)

	_, err = s.attachSvc.OpenFile(s.ctx, "unknown.txt")
	s.ErrorIs(err, ErrAttachmentNotFound)

	s.Require().NoError(os.Remove(filepath.Join(s.dir, key)))
	_, err = s.attachSvc.OpenFile(s.ctx, key)
	s.ErrorIs(err, ErrAttachmentNotFound)
}

func TestServicesTestSuite(t *testing.T) {
	suite.Run(t, new(ServicesTestSuite))
}
