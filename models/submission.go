// file: models/submission.go
package models

import (
	"time"
)

// 自定义提交状态类型
type SubmissionStatus string

const (
	SubmissionStatusPending SubmissionStatus = "pending"
	SubmissionStatusGraded  SubmissionStatus = "graded"
)

type Submission struct {
	ID          uint32           `gorm:"primarykey" json:"id"`
	TeamID      uint32           `gorm:"uniqueIndex:unique_team_task;not null" json:"team_id"`
	Team        Team             `gorm:"foreignKey:TeamID" json:"team,omitempty"`
	TaskID      uint32           `gorm:"uniqueIndex:unique_team_task;not null" json:"task_id"`
	FileName    string           `gorm:"size:255;not null" json:"file_name"`
	FileURL     string           `gorm:"size:512;not null" json:"file_url"`
	SubmittedAt time.Time        `json:"submitted_at"`
	Marks       int              `gorm:"default:0" json:"marks"`
	Remarks     string           `gorm:"type:text" json:"remarks"`
	Status      SubmissionStatus `gorm:"size:20;not null;default:'pending'" json:"status"`
}

func (Submission) TableName() string {
	return "tec_submission"
}
