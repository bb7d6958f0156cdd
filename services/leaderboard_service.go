// file: services/leaderboard_service.go
package services

import (
	"log"
	"sort"

	"github.com/rohansachinpatil/TEC-ECellMET/database"
	"github.com/rohansachinpatil/TEC-ECellMET/models"
	"gorm.io/gorm"
)

// LeaderboardEntry 排行榜单行
type LeaderboardEntry struct {
	TeamID      uint32 `json:"team_id"`
	TeamName    string `json:"team_name"`
	CollegeName string `json:"college_name"`
	TotalPoints int    `json:"total_points"`
	Rank        int    `json:"rank"`
}

// RefreshLeaderboard 重算所有队伍的总分和排名。
// 总分 = 该队所有已评分提交的得分之和；排名按"总分严格高于本队的
// 队伍数 + 1"计算，同分队伍共享名次。整体在一个事务里重写，
// 之后清掉 Redis 里的排行榜缓存。
func RefreshLeaderboard() error {
	type teamTotal struct {
		TeamID uint32
		Total  int
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var totals []teamTotal
		if err := tx.Model(&models.Submission{}).
			Select("team_id, SUM(marks) as total").
			Where("status = ?", models.SubmissionStatusGraded).
			Group("team_id").
			Scan(&totals).Error; err != nil {
			return err
		}

		pointsByTeam := make(map[uint32]int, len(totals))
		for _, t := range totals {
			pointsByTeam[t.TeamID] = t.Total
		}

		var teams []models.Team
		if err := tx.Find(&teams).Error; err != nil {
			return err
		}

		// 先按分数排序，一次遍历算出共享名次
		sort.Slice(teams, func(i, j int) bool {
			return pointsByTeam[teams[i].ID] > pointsByTeam[teams[j].ID]
		})

		for i := range teams {
			points := pointsByTeam[teams[i].ID]
			rank := 1
			for _, other := range teams {
				if pointsByTeam[other.ID] > points {
					rank++
				}
			}
			if err := tx.Model(&models.Team{}).Where("id = ?", teams[i].ID).
				Updates(map[string]interface{}{"total_points": points, "ranking": rank}).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	InvalidateLeaderboardCache()
	return nil
}

// GetLeaderboard 按总分降序返回排行榜。名次在读取时现算：
// 上次重算之后才注册的队伍 ranking 还是零值，不能按存库名次排
func GetLeaderboard() ([]LeaderboardEntry, error) {
	var teams []models.Team
	if err := database.DB.Order("total_points desc, team_name asc").Find(&teams).Error; err != nil {
		return nil, err
	}

	entries := make([]LeaderboardEntry, 0, len(teams))
	rank := 1
	for i, t := range teams {
		if i > 0 && t.TotalPoints < teams[i-1].TotalPoints {
			rank = i + 1
		}
		entries = append(entries, LeaderboardEntry{
			TeamID:      t.ID,
			TeamName:    t.TeamName,
			CollegeName: t.CollegeName,
			TotalPoints: t.TotalPoints,
			Rank:        rank,
		})
	}
	return entries, nil
}

// InvalidateLeaderboardCache 清掉 Redis 排行榜缓存；缓存是尽力而为，
// Redis 不可用时直接跳过
func InvalidateLeaderboardCache() {
	if database.RDB == nil {
		return
	}
	keys, err := database.RDB.Keys(database.Ctx, "leaderboard:*").Result()
	if err == nil && len(keys) > 0 {
		database.RDB.Del(database.Ctx, keys...)
		log.Printf("Cleared %d leaderboard cache keys from Redis.", len(keys))
	}
}
