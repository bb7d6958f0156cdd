// file: controllers/task_controller.go
package controllers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rohansachinpatil/TEC-ECellMET/database"
	"github.com/rohansachinpatil/TEC-ECellMET/mappers"
	"github.com/rohansachinpatil/TEC-ECellMET/models"
	"github.com/rohansachinpatil/TEC-ECellMET/utils"
)

// ListTasks 参赛方任务列表：只取启用的任务，按截止时间升序，
// 带派生的 is_expired 标志
func ListTasks(c *gin.Context) {
	var tasks []models.Task
	if err := database.DB.Preload("Phase").Where("is_active = ?", true).
		Order("deadline asc").Find(&tasks).Error; err != nil {
		log.Println("Get tasks error:", err)
		utils.Error(c, http.StatusInternalServerError, "Server error fetching tasks")
		return
	}

	views := mappers.ToTaskViews(tasks)
	utils.Success(c, http.StatusOK, "", gin.H{
		"count": len(views),
		"tasks": views,
	})
}

// GetTask 单个任务详情
func GetTask(c *gin.Context) {
	taskID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "Invalid task id")
		return
	}

	var task models.Task
	if err := database.DB.Preload("Phase").First(&task, taskID).Error; err != nil {
		utils.Error(c, http.StatusNotFound, "Task not found")
		return
	}

	utils.Success(c, http.StatusOK, "", gin.H{
		"task": mappers.ToTaskView(task),
	})
}
