// file: dto/admin.go
package dto

import "time"

type CreatePhaseReq struct {
	Name        string    `json:"name" binding:"required"`
	Description string    `json:"description"`
	StartDate   time.Time `json:"startDate" binding:"required" time_format:"2006-01-02T15:04:05Z07:00"`
	EndDate     time.Time `json:"endDate" binding:"required" time_format:"2006-01-02T15:04:05Z07:00"`
}

type CreateTaskReq struct {
	Title       string    `json:"title" binding:"required"`
	Description string    `json:"description" binding:"required"`
	Deadline    time.Time `json:"deadline" binding:"required" time_format:"2006-01-02T15:04:05Z07:00"`
	MaxMarks    int       `json:"maxMarks"`
	PhaseID     uint32    `json:"phaseId" binding:"required"`
}
