package graph

import (
	"context"
	"errors"

	graphql "github.com/graph-gophers/graphql-go"
	"github.com/sirupsen/logrus"
	"github.com/yukikurage/task-tracker/internal/auth"
	"github.com/yukikurage/task-tracker/internal/dto"
	apierrors "github.com/yukikurage/task-tracker/internal/errors"
	"github.com/yukikurage/task-tracker/internal/middleware"
	"github.com/yukikurage/task-tracker/internal/models"
	"github.com/yukikurage/task-tracker/internal/services"
)

// Resolver is the root resolver for both queries and mutations. Identity
// comes from the request context; ownership is enforced by the services.
type Resolver struct {
	authService       *services.AuthService
	taskService       *services.TaskService
	attachmentService *services.AttachmentService
	sessions          *middleware.Sessions
	log               logrus.FieldLogger
}

func NewResolver(authService *services.AuthService, taskService *services.TaskService, attachmentService *services.AttachmentService, sessions *middleware.Sessions, log logrus.FieldLogger) *Resolver {
	return &Resolver{
		authService:       authService,
		taskService:       taskService,
		attachmentService: attachmentService,
		sessions:          sessions,
		log:               log,
	}
}

func callerID(ctx context.Context) uint64 {
	identity, ok := auth.FromContext(ctx)
	if !ok {
		return 0
	}
	return identity.ID
}

// fail converts err to a caller-facing error. Store failures are logged and
// replaced by a generic error.
func (r *Resolver) fail(err error) error {
	var apiErr *apierrors.APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}
	r.log.WithError(err).Error("graphql operation failed")
	return apierrors.ErrInternalError
}

// Queries

func (r *Resolver) Me(ctx context.Context) *userResolver {
	identity, ok := auth.FromContext(ctx)
	if !ok {
		return nil
	}
	return &userResolver{user: dto.IdentityToUserDTO(identity)}
}

func (r *Resolver) Tasks(ctx context.Context, args struct{ Status *string }) ([]*taskResolver, error) {
	var status *models.TaskStatus
	if args.Status != nil && *args.Status != "" {
		s := models.TaskStatus(*args.Status)
		status = &s
	}

	tasks, err := r.taskService.ListTasks(ctx, callerID(ctx), status)
	if err != nil {
		return nil, r.fail(err)
	}
	return toTaskResolvers(tasks), nil
}

func (r *Resolver) Task(ctx context.Context, args struct{ ID graphql.ID }) (*taskResolver, error) {
	task, err := r.taskService.GetTask(ctx, callerID(ctx), parseID(args.ID))
	if err != nil {
		return nil, r.fail(err)
	}
	return &taskResolver{task: *task}, nil
}

// Mutations

type credentialsArgs struct {
	Username string
	Password string
}

func (r *Resolver) Register(ctx context.Context, args credentialsArgs) (*userResolver, error) {
	user, err := r.authService.Register(ctx, services.RegisterInput{
		Username: args.Username,
		Password: args.Password,
	})
	if err != nil {
		return nil, r.fail(err)
	}
	return r.startSession(ctx, user)
}

func (r *Resolver) Login(ctx context.Context, args credentialsArgs) (*userResolver, error) {
	user, err := r.authService.Login(ctx, services.LoginInput{
		Username: args.Username,
		Password: args.Password,
	})
	if err != nil {
		return nil, r.fail(err)
	}
	return r.startSession(ctx, user)
}

func (r *Resolver) startSession(ctx context.Context, user *models.User) (*userResolver, error) {
	if c := ginContext(ctx); c != nil {
		if err := r.sessions.Start(c, services.IdentityOf(user)); err != nil {
			return nil, r.fail(err)
		}
	}
	return &userResolver{user: dto.ToUserDTO(*user)}, nil
}

func (r *Resolver) Logout(ctx context.Context) bool {
	if c := ginContext(ctx); c != nil {
		r.sessions.End(c)
	}
	return true
}

type createTaskArgs struct {
	Title       string
	Description *string
	Status      *string
	DueDate     *string
}

func (r *Resolver) CreateTask(ctx context.Context, args createTaskArgs) (*taskResolver, error) {
	input, err := dto.CreateTaskRequest{
		Title:       args.Title,
		Description: args.Description,
		Status:      args.Status,
		DueDate:     args.DueDate,
	}.ToInput(callerID(ctx))
	if err != nil {
		return nil, r.fail(err)
	}

	task, err := r.taskService.CreateTask(ctx, input)
	if err != nil {
		return nil, r.fail(err)
	}
	return &taskResolver{task: *task}, nil
}

type updateTaskArgs struct {
	ID          graphql.ID
	Title       graphql.NullString
	Description graphql.NullString
	Status      graphql.NullString
	DueDate     graphql.NullString
}

func (r *Resolver) UpdateTask(ctx context.Context, args updateTaskArgs) (*taskResolver, error) {
	input := services.UpdateTaskInput{
		Title:       stringField(args.Title),
		Description: stringField(args.Description),
	}

	status := stringField(args.Status)
	input.Status.Set = status.Set
	if status.Value != nil {
		s := models.TaskStatus(*status.Value)
		input.Status.Value = &s
	}

	due, err := dto.DueDateField(stringField(args.DueDate))
	if err != nil {
		return nil, r.fail(err)
	}
	input.DueDate = due

	task, err := r.taskService.UpdateTask(ctx, callerID(ctx), parseID(args.ID), input)
	if err != nil {
		return nil, r.fail(err)
	}
	return &taskResolver{task: *task}, nil
}

func stringField(v graphql.NullString) services.Field[string] {
	return services.Field[string]{Set: v.Set, Value: v.Value}
}

func (r *Resolver) DeleteTask(ctx context.Context, args struct{ ID graphql.ID }) (bool, error) {
	if err := r.taskService.DeleteTask(ctx, callerID(ctx), parseID(args.ID)); err != nil {
		return false, r.fail(err)
	}
	return true, nil
}

func (r *Resolver) DeleteFile(ctx context.Context, args struct{ ID graphql.ID }) (bool, error) {
	if err := r.attachmentService.DeleteAttachment(ctx, callerID(ctx), parseID(args.ID)); err != nil {
		return false, r.fail(err)
	}
	return true, nil
}
