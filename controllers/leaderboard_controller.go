// file: controllers/leaderboard_controller.go
package controllers

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rohansachinpatil/TEC-ECellMET/database"
	"github.com/rohansachinpatil/TEC-ECellMET/services"
	"github.com/rohansachinpatil/TEC-ECellMET/utils"
)

const leaderboardCacheKey = "leaderboard:overall"

// GetLeaderboard 公共排行榜。优先读 Redis 缓存，未命中从库里取并回填，
// 缓存 15 秒，保证准实时
func GetLeaderboard(c *gin.Context) {
	if database.RDB != nil {
		if val, err := database.RDB.Get(database.Ctx, leaderboardCacheKey).Result(); err == nil {
			var entries []services.LeaderboardEntry
			if json.Unmarshal([]byte(val), &entries) == nil {
				utils.Success(c, http.StatusOK, "", gin.H{
					"count":       len(entries),
					"leaderboard": entries,
				})
				return
			}
		}
	}

	entries, err := services.GetLeaderboard()
	if err != nil {
		log.Println("Get leaderboard error:", err)
		utils.Error(c, http.StatusInternalServerError, "Server error fetching leaderboard")
		return
	}

	if database.RDB != nil {
		if jsonData, err := json.Marshal(entries); err == nil {
			database.RDB.Set(database.Ctx, leaderboardCacheKey, jsonData, 15*time.Second)
		}
	}

	utils.Success(c, http.StatusOK, "", gin.H{
		"count":       len(entries),
		"leaderboard": entries,
	})
}
