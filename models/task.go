// file: models/task.go
package models

import (
	"time"
)

type Task struct {
	ID          uint32    `gorm:"primarykey" json:"id"`
	Title       string    `gorm:"size:200;not null" json:"title"`
	Description string    `gorm:"type:text;not null" json:"description"`
	Deadline    time.Time `gorm:"not null" json:"deadline"`
	MaxMarks    int       `gorm:"not null;default:100" json:"max_marks"`
	PhaseID     uint32    `gorm:"not null" json:"phase_id"`
	Phase       Phase     `gorm:"foreignKey:PhaseID" json:"phase,omitempty"`
	IsActive    bool      `gorm:"default:true" json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (Task) TableName() string {
	return "tec_task"
}

// IsExpired 截止时间是否已过，只在展示时派生，不落库
func (t *Task) IsExpired() bool {
	return time.Now().After(t.Deadline)
}
