// file: models/counter.go
package models

import (
	"time"
)

// CounterTeamCode 队伍编号计数器的名字
const CounterTeamCode = "team_code"

// Counter 单行计数器表，用数据库原子更新代替"查最大值再加一"的分配方式
type Counter struct {
	Name      string `gorm:"primarykey;size:50"`
	Value     int    `gorm:"not null"`
	UpdatedAt time.Time
}

func (Counter) TableName() string {
	return "tec_counter"
}
