// file: services/teamcode_service_test.go
package services

import (
	"strconv"
	"testing"

	"github.com/rohansachinpatil/TEC-ECellMET/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllocateTeamCodeStartsAtBase(t *testing.T) {
	db := setupTestDB(t)

	code, err := AllocateTeamCode(db)
	require.NoError(t, err)
	assert.Equal(t, "12300", code)
}

func TestAllocateTeamCodeMonotonic(t *testing.T) {
	db := setupTestDB(t)

	var codes []string
	for i := 0; i < 3; i++ {
		code, err := AllocateTeamCode(db)
		require.NoError(t, err)
		codes = append(codes, code)

		// 模拟每次分配后都真的建了队
		team := models.Team{
			TeamName:    "team-" + code,
			TeamCode:    code,
			CollegeName: "MIT",
			LeaderID:    uint32(i + 1),
		}
		require.NoError(t, db.Create(&team).Error)
	}

	assert.Equal(t, []string{"12300", "12301", "12302"}, codes)
}

func TestAllocateTeamCodeSeedsFromExistingCodes(t *testing.T) {
	db := setupTestDB(t)

	// 历史数据里已有更大的编号，计数器要从它之后开始
	require.NoError(t, db.Create(&models.Team{
		TeamName: "legacy", TeamCode: "12500", CollegeName: "MIT", LeaderID: 1,
	}).Error)

	code, err := AllocateTeamCode(db)
	require.NoError(t, err)
	assert.Equal(t, "12501", code)
}

func TestAllocateTeamCodeSkipsCollisions(t *testing.T) {
	db := setupTestDB(t)

	// 计数器落后于真实数据时，复查循环要跳过已占用的编号
	require.NoError(t, db.Create(&models.Counter{Name: models.CounterTeamCode, Value: 12300}).Error)
	require.NoError(t, db.Create(&models.Team{
		TeamName: "secondteam", TeamCode: "12301", CollegeName: "MIT", LeaderID: 1,
	}).Error)

	code, err := AllocateTeamCode(db)
	require.NoError(t, err)
	assert.Equal(t, "12302", code)

	n, err := strconv.Atoi(code)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, n, 12300)
}
