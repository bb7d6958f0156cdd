// file: models/user.go
package models

import (
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// 自定义类型 UserRole
type UserRole string

const (
	RoleSuperAdmin UserRole = "super_admin"
	RoleAdmin      UserRole = "admin"
	RoleEvaluator  UserRole = "evaluator"
	RoleLeader     UserRole = "leader"
	RoleMember     UserRole = "member"
)

type User struct {
	ID            uint32    `gorm:"primarykey" json:"id"`
	Name          string    `gorm:"size:100;not null" json:"name"`
	Email         string    `gorm:"size:100;unique;not null" json:"email"`
	Phone         string    `gorm:"size:20;unique;not null" json:"phone"`
	City          string    `gorm:"size:100" json:"city,omitempty"`
	Year          string    `gorm:"size:20" json:"year,omitempty"`
	Branch        string    `gorm:"size:100" json:"branch,omitempty"`
	Instagram     string    `gorm:"size:255" json:"instagram,omitempty"`
	Linkedin      string    `gorm:"size:255" json:"linkedin,omitempty"`
	Password      string    `gorm:"size:255;not null" json:"-"`
	Role          UserRole  `gorm:"size:20;not null;default:'leader'" json:"role"`
	TeamID        *uint32   `json:"team_id,omitempty"`
	InstituteName string    `gorm:"size:200" json:"institute_name,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (User) TableName() string {
	return "tec_user"
}

// BeforeSave GORM Hook，在保存用户前自动哈希密码
func (u *User) BeforeSave(tx *gorm.DB) (err error) {
	// 在新用户创建时 (ID=0) 或在老用户更新密码时，都执行哈希
	if u.ID == 0 || tx.Statement.Changed("Password") {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		u.Password = string(hashedPassword)
	}
	return
}

// CheckPassword 校验密码是否正确 (bcrypt 恒定时间比较)
func (u *User) CheckPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password))
	return err == nil
}
