// file: controllers/admin_controller.go
package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rohansachinpatil/TEC-ECellMET/database"
	"github.com/rohansachinpatil/TEC-ECellMET/dto"
	"github.com/rohansachinpatil/TEC-ECellMET/mappers"
	"github.com/rohansachinpatil/TEC-ECellMET/models"
	"github.com/rohansachinpatil/TEC-ECellMET/utils"
	"gorm.io/gorm"
)

// GetStats 后台看板统计，每次请求现算，不做缓存
func GetStats(c *gin.Context) {
	var totalTeams, totalUsers, totalEvaluators, leaders, members int64

	db := database.DB
	counts := []struct {
		dst *int64
		q   *gorm.DB
	}{
		{&totalTeams, db.Model(&models.Team{})},
		{&totalUsers, db.Model(&models.User{})},
		{&totalEvaluators, db.Model(&models.User{}).Where("role = ?", models.RoleEvaluator)},
		{&leaders, db.Model(&models.User{}).Where("role = ?", models.RoleLeader)},
		{&members, db.Model(&models.User{}).Where("role = ?", models.RoleMember)},
	}
	for _, s := range counts {
		if err := s.q.Count(s.dst).Error; err != nil {
			log.Println("Admin stats error:", err)
			utils.Error(c, http.StatusInternalServerError, "Server error fetching stats")
			return
		}
	}

	currentPhaseName := "No Active Phase"
	var currentPhase models.Phase
	if err := db.Where("is_active = ?", true).First(&currentPhase).Error; err == nil {
		currentPhaseName = currentPhase.Name
	}

	utils.Success(c, http.StatusOK, "", gin.H{
		"stats": gin.H{
			"totalTeams":        totalTeams,
			"totalParticipants": leaders + members,
			"totalEvaluators":   totalEvaluators,
			"totalUsers":        totalUsers,
			"currentPhase":      currentPhaseName,
		},
	})
}

// GetAllTeams 全部队伍，带队长和队员名单，新队在前
func GetAllTeams(c *gin.Context) {
	var teams []models.Team
	if err := database.DB.Preload("Leader").Preload("Members").
		Order("created_at desc").Find(&teams).Error; err != nil {
		log.Println("Get all teams error:", err)
		utils.Error(c, http.StatusInternalServerError, "Server error fetching teams")
		return
	}

	utils.Success(c, http.StatusOK, "", gin.H{
		"count": len(teams),
		"teams": teams,
	})
}

// --- 阶段管理 ---

func CreatePhase(c *gin.Context) {
	var req dto.CreatePhaseReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "Please provide name, start date and end date")
		return
	}

	var existing models.Phase
	if err := database.DB.Where("name = ?", req.Name).First(&existing).Error; err == nil {
		utils.Error(c, http.StatusBadRequest, "Phase with this name already exists")
		return
	}

	phase := models.Phase{
		Name:        req.Name,
		Description: req.Description,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
	}
	if err := database.DB.Create(&phase).Error; err != nil {
		log.Println("Create phase error:", err)
		utils.Error(c, http.StatusInternalServerError, "Server error creating phase")
		return
	}

	utils.Success(c, http.StatusCreated, "", gin.H{
		"phase": phase,
	})
}

func GetPhases(c *gin.Context) {
	var phases []models.Phase
	if err := database.DB.Order("start_date asc").Find(&phases).Error; err != nil {
		log.Println("Get phases error:", err)
		utils.Error(c, http.StatusInternalServerError, "Server error fetching phases")
		return
	}

	utils.Success(c, http.StatusOK, "", gin.H{
		"count":  len(phases),
		"phases": phases,
	})
}

// ActivatePhase 切换活动阶段。"先全部下线，再上线目标"放在同一个
// 事务里，保证任何时刻最多一个阶段处于活动状态
func ActivatePhase(c *gin.Context) {
	phaseID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "Invalid phase id")
		return
	}

	var phase models.Phase
	err = database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&phase, phaseID).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Phase{}).Where("is_active = ?", true).
			Update("is_active", false).Error; err != nil {
			return err
		}
		return tx.Model(&models.Phase{}).Where("id = ?", phaseID).
			Update("is_active", true).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.Error(c, http.StatusNotFound, "Phase not found")
			return
		}
		log.Println("Activate phase error:", err)
		utils.Error(c, http.StatusInternalServerError, "Server error activating phase")
		return
	}
	phase.IsActive = true

	utils.Success(c, http.StatusOK, "Phase "+phase.Name+" is now active", gin.H{
		"phase": phase,
	})
}

// --- 任务管理 ---

func CreateTask(c *gin.Context) {
	var req dto.CreateTaskReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "Please provide title, description, deadline and phase")
		return
	}

	var phase models.Phase
	if err := database.DB.First(&phase, req.PhaseID).Error; err != nil {
		utils.Error(c, http.StatusNotFound, "Phase not found")
		return
	}

	maxMarks := req.MaxMarks
	if maxMarks <= 0 {
		maxMarks = 100
	}

	task := models.Task{
		Title:       req.Title,
		Description: req.Description,
		Deadline:    req.Deadline,
		MaxMarks:    maxMarks,
		PhaseID:     req.PhaseID,
		IsActive:    true,
	}
	if err := database.DB.Create(&task).Error; err != nil {
		log.Println("Create task error:", err)
		utils.Error(c, http.StatusInternalServerError, "Server error creating task")
		return
	}

	utils.Success(c, http.StatusCreated, "", gin.H{
		"task": task,
	})
}

// GetAllTasks 后台任务列表，带所属阶段名
func GetAllTasks(c *gin.Context) {
	var tasks []models.Task
	if err := database.DB.Preload("Phase").Find(&tasks).Error; err != nil {
		log.Println("Get tasks error:", err)
		utils.Error(c, http.StatusInternalServerError, "Server error fetching tasks")
		return
	}

	utils.Success(c, http.StatusOK, "", gin.H{
		"count": len(tasks),
		"tasks": mappers.ToTaskViews(tasks),
	})
}
