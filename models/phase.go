// file: models/phase.go
package models

import (
	"time"
)

type Phase struct {
	ID          uint32    `gorm:"primarykey" json:"id"`
	Name        string    `gorm:"size:100;unique;not null" json:"name"`
	Description string    `gorm:"type:text" json:"description,omitempty"`
	StartDate   time.Time `gorm:"not null" json:"start_date"`
	EndDate     time.Time `gorm:"not null" json:"end_date"`
	IsActive    bool      `gorm:"default:false" json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (Phase) TableName() string {
	return "tec_phase"
}

// IsCurrent 按时间窗口判断阶段是否正在进行（与 IsActive 标志无关）
func (p *Phase) IsCurrent() bool {
	now := time.Now()
	return !now.Before(p.StartDate) && !now.After(p.EndDate)
}
