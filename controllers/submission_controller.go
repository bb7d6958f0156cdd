// file: controllers/submission_controller.go
package controllers

import (
	"errors"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

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

func submissionUploadDir() string {
	return filepath.Join(config.C.UploadDir, "submissions")
}

// localSubmissionPath 把存库的相对 URL 还原成磁盘路径
func localSubmissionPath(fileName string) string {
	return filepath.Join(submissionUploadDir(), fileName)
}

// SubmitTask 提交任务 (单个 PDF，≤5MB)。
// 截止时间之后一律拒收；同一 (队伍, 任务) 只保留一份提交，重交时
// 先删旧文件再覆盖记录，状态退回 pending；文件已落盘而写库失败时
// 删掉孤儿文件再报错
func SubmitTask(c *gin.Context) {
	user := middlewares.CurrentUser(c)
	if user.TeamID == nil {
		utils.Error(c, http.StatusBadRequest, "You are not part of any team")
		return
	}
	teamID := *user.TeamID

	taskID, err := strconv.Atoi(c.Param("taskId"))
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "Invalid task id")
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "Please upload a PDF file")
		return
	}
	if file.Size > config.C.MaxUploadSize {
		utils.Error(c, http.StatusBadRequest, "File too large (Max 5MB)")
		return
	}
	contentType := file.Header.Get("Content-Type")
	if contentType != "application/pdf" || !strings.HasSuffix(strings.ToLower(file.Filename), ".pdf") {
		utils.Error(c, http.StatusBadRequest, "Only PDF files are allowed")
		return
	}

	var task models.Task
	if err := database.DB.First(&task, taskID).Error; err != nil {
		utils.Error(c, http.StatusNotFound, "Task not found")
		return
	}

	// 过了截止时间直接拒绝，此时文件尚未落盘，无需清理
	if time.Now().After(task.Deadline) {
		utils.Error(c, http.StatusBadRequest, "Deadline has passed")
		return
	}

	if err := os.MkdirAll(submissionUploadDir(), 0o755); err != nil {
		log.Println("Submission error:", err)
		utils.Error(c, http.StatusInternalServerError, "Server error dealing with submission")
		return
	}
	storedName := utils.GenerateStoredFileName(file.Filename)
	dst := localSubmissionPath(storedName)
	if err := c.SaveUploadedFile(file, dst); err != nil {
		log.Println("Submission error:", err)
		utils.Error(c, http.StatusInternalServerError, "Server error dealing with submission")
		return
	}

	var submission models.Submission
	err = database.DB.Where("team_id = ? AND task_id = ?", teamID, taskID).First(&submission).Error
	switch {
	case err == nil:
		// 重复提交：旧文件删掉，记录原地覆盖；此前的评分/评语保留，
		// 但状态退回 pending，等待对新文件重新评分
		oldPath := localSubmissionPath(submission.FileName)
		if _, statErr := os.Stat(oldPath); statErr == nil {
			_ = os.Remove(oldPath)
		}

		updates := map[string]interface{}{
			"file_name":    storedName,
			"file_url":     "/uploads/submissions/" + storedName,
			"submitted_at": time.Now(),
			"status":       models.SubmissionStatusPending,
		}
		if err := database.DB.Model(&submission).Updates(updates).Error; err != nil {
			_ = os.Remove(dst)
			log.Println("Submission error:", err)
			utils.Error(c, http.StatusInternalServerError, "Server error dealing with submission")
			return
		}
		if err := database.DB.Where("team_id = ? AND task_id = ?", teamID, taskID).
			First(&submission).Error; err != nil {
			log.Println("Submission error:", err)
			utils.Error(c, http.StatusInternalServerError, "Server error dealing with submission")
			return
		}

	case errors.Is(err, gorm.ErrRecordNotFound):
		submission = models.Submission{
			TeamID:      teamID,
			TaskID:      uint32(taskID),
			FileName:    storedName,
			FileURL:     "/uploads/submissions/" + storedName,
			SubmittedAt: time.Now(),
			Status:      models.SubmissionStatusPending,
		}
		if err := database.DB.Create(&submission).Error; err != nil {
			// 写库失败：补偿动作，避免留下孤儿文件
			_ = os.Remove(dst)
			log.Println("Submission error:", err)
			utils.Error(c, http.StatusInternalServerError, "Server error dealing with submission")
			return
		}

	default:
		_ = os.Remove(dst)
		log.Println("Submission error:", err)
		utils.Error(c, http.StatusInternalServerError, "Server error dealing with submission")
		return
	}

	utils.Success(c, http.StatusOK, "Task submitted successfully", gin.H{
		"submission": submission,
	})
}

// GetMySubmission 本队在某任务下的提交
func GetMySubmission(c *gin.Context) {
	user := middlewares.CurrentUser(c)
	if user.TeamID == nil {
		utils.Error(c, http.StatusBadRequest, "You are not part of any team")
		return
	}

	taskID, err := strconv.Atoi(c.Param("taskId"))
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "Invalid task id")
		return
	}

	var submission models.Submission
	if err := database.DB.Where("team_id = ? AND task_id = ?", *user.TeamID, taskID).
		First(&submission).Error; err != nil {
		utils.Error(c, http.StatusNotFound, "No submission found")
		return
	}

	utils.Success(c, http.StatusOK, "", gin.H{
		"submission": submission,
	})
}

// GetAllMySubmissions 本队的全部提交
func GetAllMySubmissions(c *gin.Context) {
	user := middlewares.CurrentUser(c)
	if user.TeamID == nil {
		utils.Error(c, http.StatusBadRequest, "You are not part of any team")
		return
	}

	var submissions []models.Submission
	if err := database.DB.Where("team_id = ?", *user.TeamID).Find(&submissions).Error; err != nil {
		log.Println("Get submissions error:", err)
		utils.Error(c, http.StatusInternalServerError, "Server error fetching submissions")
		return
	}

	utils.Success(c, http.StatusOK, "", gin.H{
		"submissions": submissions,
	})
}

// GetSubmissionsByTask 评审视角：某任务下所有队伍的提交，最新在前
func GetSubmissionsByTask(c *gin.Context) {
	taskID, err := strconv.Atoi(c.Param("taskId"))
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "Invalid task id")
		return
	}

	var submissions []models.Submission
	if err := database.DB.Preload("Team").Where("task_id = ?", taskID).
		Order("submitted_at desc").Find(&submissions).Error; err != nil {
		log.Println("Get submissions by task error:", err)
		utils.Error(c, http.StatusInternalServerError, "Server error fetching submissions")
		return
	}

	utils.Success(c, http.StatusOK, "", gin.H{
		"count":       len(submissions),
		"submissions": submissions,
	})
}

// GradeSubmission 评分：分数必须落在 [0, 任务满分] 内，
// 评完状态置为 graded 并刷新排行榜
func GradeSubmission(c *gin.Context) {
	submissionID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "Invalid submission id")
		return
	}

	var req dto.GradeSubmissionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "Please provide marks")
		return
	}

	var submission models.Submission
	if err := database.DB.First(&submission, submissionID).Error; err != nil {
		utils.Error(c, http.StatusNotFound, "Submission not found")
		return
	}

	var task models.Task
	if err := database.DB.First(&task, submission.TaskID).Error; err != nil {
		log.Println("Grade submission error:", err)
		utils.Error(c, http.StatusInternalServerError, "Server error grading submission")
		return
	}

	marks := *req.Marks
	if marks < 0 || marks > task.MaxMarks {
		utils.Error(c, http.StatusBadRequest, "Marks must be between 0 and the task's max marks")
		return
	}

	updates := map[string]interface{}{
		"marks":   marks,
		"remarks": req.Remarks,
		"status":  models.SubmissionStatusGraded,
	}
	if err := database.DB.Model(&submission).Updates(updates).Error; err != nil {
		log.Println("Grade submission error:", err)
		utils.Error(c, http.StatusInternalServerError, "Server error grading submission")
		return
	}
	if err := database.DB.First(&submission, submissionID).Error; err != nil {
		log.Println("Grade submission error:", err)
		utils.Error(c, http.StatusInternalServerError, "Server error grading submission")
		return
	}

	if err := services.RefreshLeaderboard(); err != nil {
		// 排行榜刷新失败不影响评分结果，下次评分或查询会再算
		log.Println("Leaderboard refresh error:", err)
	}

	utils.Success(c, http.StatusOK, "Submission graded successfully", gin.H{
		"submission": submission,
	})
}
