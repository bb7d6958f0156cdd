// file: models/team.go
package models

import (
	"time"

	"gorm.io/gorm"
)

type Team struct {
	ID          uint32    `gorm:"primarykey" json:"id"`
	TeamName    string    `gorm:"size:100;unique;not null" json:"team_name"`
	TeamCode    string    `gorm:"size:20;unique;not null" json:"team_code"`
	CollegeName string    `gorm:"size:200;not null" json:"college_name"`
	LeaderID    uint32    `gorm:"not null" json:"leader_id"`
	Leader      User      `gorm:"foreignKey:LeaderID" json:"leader,omitempty"`
	Members     []User    `gorm:"foreignKey:TeamID" json:"members,omitempty"`
	TotalPoints int       `gorm:"default:0" json:"total_points"`
	Rank        int       `gorm:"column:ranking;default:0" json:"rank"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (Team) TableName() string {
	return "tec_team"
}

// CalculateRank 排名 = 总分严格高于本队的队伍数 + 1
func (t *Team) CalculateRank(tx *gorm.DB) (int, error) {
	var higher int64
	err := tx.Model(&Team{}).Where("total_points > ?", t.TotalPoints).Count(&higher).Error
	if err != nil {
		return 0, err
	}
	t.Rank = int(higher) + 1
	return t.Rank, nil
}
