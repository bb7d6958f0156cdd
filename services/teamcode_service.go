// file: services/teamcode_service.go
package services

import (
	"strconv"

	"github.com/rohansachinpatil/TEC-ECellMET/config"
	"github.com/rohansachinpatil/TEC-ECellMET/models"
	"gorm.io/gorm"
)

// AllocateTeamCode 在事务内分配下一个队伍编号。
// 编号从固定基数 (默认 12300) 开始单调递增，由 tec_counter 单行
// 计数器的原子自增产生；计数器行首次使用时按历史最大编号播种。
// 分配后仍做一次存在性复查，作为旧数据/手工插入情况下的保险。
func AllocateTeamCode(tx *gorm.DB) (string, error) {
	code, err := nextCounterValue(tx)
	if err != nil {
		return "", err
	}

	// 复查唯一性，冲突则继续递增（正常情况下一次都不会进循环）
	for {
		var count int64
		if err := tx.Model(&models.Team{}).Where("team_code = ?", strconv.Itoa(code)).Count(&count).Error; err != nil {
			return "", err
		}
		if count == 0 {
			break
		}
		code++
		if err := tx.Model(&models.Counter{}).Where("name = ?", models.CounterTeamCode).
			Update("value", code).Error; err != nil {
			return "", err
		}
	}

	return strconv.Itoa(code), nil
}

// nextCounterValue 原子自增计数器并读取结果；UPDATE 持有的行锁
// 保证并发注册在提交前串行化，消除了旧实现里的读-改-写竞态
func nextCounterValue(tx *gorm.DB) (int, error) {
	res := tx.Model(&models.Counter{}).Where("name = ?", models.CounterTeamCode).
		Update("value", gorm.Expr("value + 1"))
	if res.Error != nil {
		return 0, res.Error
	}

	if res.RowsAffected == 0 {
		// 计数器还不存在：用已发放过的最大编号播种
		seed, err := seedFromExistingCodes(tx)
		if err != nil {
			return 0, err
		}
		counter := models.Counter{Name: models.CounterTeamCode, Value: seed}
		if err := tx.Create(&counter).Error; err != nil {
			// 并发初始化丢了先手，退回自增路径
			res = tx.Model(&models.Counter{}).Where("name = ?", models.CounterTeamCode).
				Update("value", gorm.Expr("value + 1"))
			if res.Error != nil {
				return 0, res.Error
			}
		} else {
			return counter.Value, nil
		}
	}

	var counter models.Counter
	if err := tx.Where("name = ?", models.CounterTeamCode).First(&counter).Error; err != nil {
		return 0, err
	}
	return counter.Value, nil
}

func seedFromExistingCodes(tx *gorm.DB) (int, error) {
	var codes []string
	if err := tx.Model(&models.Team{}).Pluck("team_code", &codes).Error; err != nil {
		return 0, err
	}

	next := config.C.TeamCodeBase
	for _, raw := range codes {
		if n, err := strconv.Atoi(raw); err == nil && n+1 > next {
			next = n + 1
		}
	}
	return next, nil
}
