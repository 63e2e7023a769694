package graph

import (
	"strconv"
	"time"

	graphql "github.com/graph-gophers/graphql-go"
	"github.com/yukikurage/task-tracker/internal/dto"
	"github.com/yukikurage/task-tracker/internal/models"
)

func toID(id uint64) graphql.ID {
	return graphql.ID(strconv.FormatUint(id, 10))
}

// parseID returns 0 for IDs that cannot name a row.
func parseID(id graphql.ID) uint64 {
	n, err := strconv.ParseUint(string(id), 10, 64)
	if err != nil {
		return 0
	}
	return n
}

type userResolver struct {
	user dto.UserDTO
}

func (r *userResolver) ID() graphql.ID   { return toID(r.user.ID) }
func (r *userResolver) Username() string { return r.user.Username }

type fileResolver struct {
	file dto.FileDTO
}

func (r *fileResolver) ID() graphql.ID { return toID(r.file.ID) }
func (r *fileResolver) URL() string    { return r.file.URL }
func (r *fileResolver) Name() *string  { return &r.file.Name }
func (r *fileResolver) Mime() *string  { return &r.file.Mime }

func (r *fileResolver) Size() *int32 {
	size := int32(r.file.Size)
	return &size
}

type taskResolver struct {
	task models.Task
}

func (r *taskResolver) ID() graphql.ID       { return toID(r.task.ID) }
func (r *taskResolver) Title() string        { return r.task.Title }
func (r *taskResolver) Description() *string { return &r.task.Description }

func (r *taskResolver) Status() *string {
	status := string(r.task.Status)
	return &status
}

func (r *taskResolver) DueDate() *string {
	if r.task.DueDate == nil {
		return nil
	}
	due := dto.FormatDueDate(*r.task.DueDate)
	return &due
}

func (r *taskResolver) CreatedAt() *string {
	created := r.task.CreatedAt.UTC().Format(time.RFC3339)
	return &created
}

func (r *taskResolver) Files() []*fileResolver {
	files := make([]*fileResolver, len(r.task.Attachments))
	for i, attachment := range r.task.Attachments {
		files[i] = &fileResolver{file: dto.ToFileDTO(attachment)}
	}
	return files
}

func toTaskResolvers(tasks []models.Task) []*taskResolver {
	resolvers := make([]*taskResolver, len(tasks))
	for i := range tasks {
		resolvers[i] = &taskResolver{task: tasks[i]}
	}
	return resolvers
}
