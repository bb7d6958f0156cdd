// file: controllers/auth_controller.go
package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rohansachinpatil/TEC-ECellMET/config"
	"github.com/rohansachinpatil/TEC-ECellMET/database"
	"github.com/rohansachinpatil/TEC-ECellMET/dto"
	"github.com/rohansachinpatil/TEC-ECellMET/middlewares"
	"github.com/rohansachinpatil/TEC-ECellMET/models"
	"github.com/rohansachinpatil/TEC-ECellMET/services"
	"github.com/rohansachinpatil/TEC-ECellMET/utils"
	"gorm.io/gorm"
)

func userSummary(user *models.User) gin.H {
	return gin.H{
		"id":      user.ID,
		"name":    user.Name,
		"role":    user.Role,
		"team_id": user.TeamID,
	}
}

func teamSummary(team *models.Team) gin.H {
	if team == nil {
		return nil
	}
	return gin.H{
		"id":           team.ID,
		"team_name":    team.TeamName,
		"team_code":    team.TeamCode,
		"college_name": team.CollegeName,
		"total_points": team.TotalPoints,
		"rank":         team.Rank,
	}
}

// RegisterLeader 队长报名：建用户 + 分配队伍编号 + 建队 + 回填 team_id，
// 全部在一个事务里完成
func RegisterLeader(c *gin.Context) {
	var req dto.RegisterLeaderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "Please provide all required fields")
		return
	}

	var existingUser models.User
	if err := database.DB.Where("email = ? OR phone = ?", req.Email, req.Phone).First(&existingUser).Error; err == nil {
		utils.Error(c, http.StatusBadRequest, "User with this email or phone already exists")
		return
	}

	var existingTeam models.Team
	if err := database.DB.Where("team_name = ?", req.TeamName).First(&existingTeam).Error; err == nil {
		utils.Error(c, http.StatusBadRequest, "Team name already taken")
		return
	}

	newUser := models.User{
		Name:          req.Name,
		Email:         req.Email,
		Phone:         req.Phone,
		City:          req.City,
		Year:          req.Year,
		Branch:        req.Branch,
		Instagram:     req.Instagram,
		Linkedin:      req.Linkedin,
		Password:      req.Password,
		Role:          models.RoleLeader,
		InstituteName: req.CollegeName,
	}
	var newTeam models.Team

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&newUser).Error; err != nil {
			return err
		}

		teamCode, err := services.AllocateTeamCode(tx)
		if err != nil {
			return err
		}

		newTeam = models.Team{
			TeamName:    req.TeamName,
			TeamCode:    teamCode,
			CollegeName: req.CollegeName,
			LeaderID:    newUser.ID,
		}
		if err := tx.Create(&newTeam).Error; err != nil {
			return err
		}

		// 队长同时是首位队员：把 team_id 回填到用户上
		return tx.Model(&newUser).Update("team_id", newTeam.ID).Error
	})
	if err != nil {
		log.Println("Leader registration error:", err)
		utils.Error(c, http.StatusInternalServerError, "Server error during registration")
		return
	}
	newUser.TeamID = &newTeam.ID

	token, err := utils.GenerateToken(newUser)
	if err != nil {
		log.Println("Token generation error:", err)
		utils.Error(c, http.StatusInternalServerError, "Server error during registration")
		return
	}

	utils.Success(c, http.StatusCreated, "Team registered successfully", gin.H{
		"token":    token,
		"teamCode": newTeam.TeamCode, // 只在此处展示给队长
		"user":     userSummary(&newUser),
	})
}

// RegisterMember 队员报名：凭队伍编号入队，学校沿用队伍的
func RegisterMember(c *gin.Context) {
	var req dto.RegisterMemberReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "Please provide all required fields")
		return
	}

	var existingUser models.User
	if err := database.DB.Where("email = ? OR phone = ?", req.Email, req.Phone).First(&existingUser).Error; err == nil {
		utils.Error(c, http.StatusBadRequest, "User with this email or phone already exists")
		return
	}

	var team models.Team
	if err := database.DB.Where("team_code = ?", req.TeamCode).First(&team).Error; err != nil {
		utils.Error(c, http.StatusNotFound, "Invalid Team Code")
		return
	}

	var memberCount int64
	if err := database.DB.Model(&models.User{}).Where("team_id = ?", team.ID).Count(&memberCount).Error; err != nil {
		log.Println("Member registration error:", err)
		utils.Error(c, http.StatusInternalServerError, "Server error during registration")
		return
	}
	if memberCount >= int64(config.C.TeamMaxSize) {
		utils.Error(c, http.StatusBadRequest, "Team is full (Max 5 members)")
		return
	}

	newUser := models.User{
		Name:          req.Name,
		Email:         req.Email,
		Phone:         req.Phone,
		Year:          req.Year,
		Branch:        req.Branch,
		Password:      req.Password,
		Role:          models.RoleMember,
		TeamID:        &team.ID,
		InstituteName: team.CollegeName,
	}
	if err := database.DB.Create(&newUser).Error; err != nil {
		log.Println("Member registration error:", err)
		utils.Error(c, http.StatusInternalServerError, "Server error during registration")
		return
	}

	token, err := utils.GenerateToken(newUser)
	if err != nil {
		log.Println("Token generation error:", err)
		utils.Error(c, http.StatusInternalServerError, "Server error during registration")
		return
	}

	utils.Success(c, http.StatusCreated, "Joined team successfully", gin.H{
		"token": token,
		"user":  userSummary(&newUser),
	})
}

// Login 手机号 + 密码登录。查无此人和密码错误返回完全相同的报文，
// 不让调用方探测哪个字段不对
func Login(c *gin.Context) {
	var req dto.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "Please provide phone number and password")
		return
	}

	// 唯一需要密码哈希的查询
	var user models.User
	if err := database.DB.Where("phone = ?", req.Phone).First(&user).Error; err != nil {
		utils.Error(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	if !user.CheckPassword(req.Password) {
		utils.Error(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := utils.GenerateToken(user)
	if err != nil {
		log.Println("Token generation error:", err)
		utils.Error(c, http.StatusInternalServerError, "Server error during login")
		return
	}

	var team *models.Team
	if user.TeamID != nil {
		var t models.Team
		if err := database.DB.First(&t, *user.TeamID).Error; err == nil {
			team = &t
		}
	}

	// 会话 cookie 变体：token 同时写入 http-only cookie
	c.SetCookie("token", token, int(utils.TokenValidity.Seconds()), "/", "", false, true)

	utils.Success(c, http.StatusOK, "Login successful", gin.H{
		"token": token,
		"user": gin.H{
			"id":      user.ID,
			"name":    user.Name,
			"role":    user.Role,
			"phone":   user.Phone,
			"team_id": user.TeamID,
		},
		"team": teamSummary(team),
	})
}

// GetMe 返回当前登录用户及其队伍概要
func GetMe(c *gin.Context) {
	user := middlewares.CurrentUser(c)

	var team *models.Team
	if user.TeamID != nil {
		var t models.Team
		if err := database.DB.First(&t, *user.TeamID).Error; err == nil {
			team = &t
		}
	}

	utils.Success(c, http.StatusOK, "", gin.H{
		"user": gin.H{
			"id":      user.ID,
			"name":    user.Name,
			"email":   user.Email,
			"phone":   user.Phone,
			"role":    user.Role,
			"team_id": user.TeamID,
		},
		"team": teamSummary(team),
	})
}
