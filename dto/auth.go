// file: dto/auth.go
package dto

// RegisterLeaderReq 队长报名：注册用户的同时建队
type RegisterLeaderReq struct {
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Phone       string `json:"phone" binding:"required"`
	City        string `json:"city"`
	Year        string `json:"year"`
	Branch      string `json:"branch"`
	Instagram   string `json:"instagram"`
	Linkedin    string `json:"linkedin"`
	Password    string `json:"password" binding:"required,min=6"`
	TeamName    string `json:"teamName" binding:"required"`
	CollegeName string `json:"collegeName" binding:"required"`
}

// RegisterMemberReq 队员报名：凭队伍编号入队
type RegisterMemberReq struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone" binding:"required"`
	Year     string `json:"year"`
	Branch   string `json:"branch"`
	Password string `json:"password" binding:"required,min=6"`
	TeamCode string `json:"teamCode" binding:"required"`
}

type LoginReq struct {
	Phone    string `json:"phone" binding:"required"`
	Password string `json:"password" binding:"required"`
}
