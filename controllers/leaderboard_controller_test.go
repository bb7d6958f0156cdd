// file: controllers/leaderboard_controller_test.go
package controllers_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rohansachinpatil/TEC-ECellMET/database"
	"github.com/rohansachinpatil/TEC-ECellMET/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLeaderboardIsPublic(t *testing.T) {
	r := setupServer(t)
	registerLeader(t, r, "Rocket", "9000000001", "a@example.com")

	w := doJSON(t, r, http.MethodGet, "/api/leaderboard", nil, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	body := decodeBody(t, w)
	assert.EqualValues(t, 1, body["count"])
}

func TestLeaderboardRanksLateRegistrationsByPoints(t *testing.T) {
	r := setupServer(t)
	token, _ := registerLeader(t, r, "Winner", "9000000001", "a@example.com")
	task := seedTask(t, time.Now().Add(24*time.Hour))
	doUpload(t, r, "/api/submissions/"+itoa(task.ID), "report.pdf", "application/pdf", pdfContent, token)

	var submission models.Submission
	require.NoError(t, database.DB.First(&submission).Error)
	_, evalToken := seedUser(t, models.RoleEvaluator, "9100000002", "eval@example.com")
	w := doJSON(t, r, http.MethodPut, "/api/submissions/"+itoa(submission.ID)+"/grade", gin.H{
		"marks": 100,
	}, evalToken)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// 榜单重算之后才注册的新队，存库名次还是零值
	registerLeader(t, r, "Latecomer", "9000000002", "b@example.com")

	w = doJSON(t, r, http.MethodGet, "/api/leaderboard", nil, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	body := decodeBody(t, w)
	assert.EqualValues(t, 2, body["count"])
	entries := body["leaderboard"].([]interface{})
	require.Len(t, entries, 2)

	first := entries[0].(map[string]interface{})
	second := entries[1].(map[string]interface{})
	assert.Equal(t, "Winner", first["team_name"])
	assert.EqualValues(t, 1, first["rank"])
	assert.EqualValues(t, 100, first["total_points"])
	assert.Equal(t, "Latecomer", second["team_name"])
	assert.EqualValues(t, 2, second["rank"])
	assert.EqualValues(t, 0, second["total_points"])
}
