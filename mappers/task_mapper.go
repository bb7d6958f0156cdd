// file: mappers/task_mapper.go
package mappers

import (
	"time"

	"github.com/rohansachinpatil/TEC-ECellMET/models"
)

// TaskView 参赛方看到的任务视图，is_expired 为展示时派生字段
type TaskView struct {
	ID          uint32    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Deadline    time.Time `json:"deadline"`
	MaxMarks    int       `json:"max_marks"`
	PhaseID     uint32    `json:"phase_id"`
	PhaseName   string    `json:"phase_name,omitempty"`
	IsActive    bool      `json:"is_active"`
	IsExpired   bool      `json:"is_expired"`
}

func ToTaskView(task models.Task) TaskView {
	return TaskView{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		Deadline:    task.Deadline,
		MaxMarks:    task.MaxMarks,
		PhaseID:     task.PhaseID,
		PhaseName:   task.Phase.Name,
		IsActive:    task.IsActive,
		IsExpired:   task.IsExpired(),
	}
}

func ToTaskViews(tasks []models.Task) []TaskView {
	views := make([]TaskView, 0, len(tasks))
	for _, task := range tasks {
		views = append(views, ToTaskView(task))
	}
	return views
}
