// file: controllers/controller_test_helpers_test.go
package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strconv"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rohansachinpatil/TEC-ECellMET/config"
	"github.com/rohansachinpatil/TEC-ECellMET/database"
	"github.com/rohansachinpatil/TEC-ECellMET/models"
	"github.com/rohansachinpatil/TEC-ECellMET/routes"
	"github.com/rohansachinpatil/TEC-ECellMET/utils"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupServer 每个测试一套独立的内存库 + 路由
func setupServer(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Team{},
		&models.Phase{},
		&models.Task{},
		&models.Submission{},
		&models.Counter{},
	))

	database.DB = db
	database.RDB = nil
	config.C.UploadDir = t.TempDir()

	return routes.SetupRouter()
}

func itoa(id uint32) string {
	return strconv.FormatUint(uint64(id), 10)
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

// doUpload 构造 multipart 提交请求，file 字段带给定的 Content-Type
func doUpload(t *testing.T, r *gin.Engine, path, fileName, contentType string, content []byte, token string) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename="%s"`, fileName))
	header.Set("Content-Type", contentType)
	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// registerLeader 走真实注册接口，返回 token 和队伍编号
func registerLeader(t *testing.T, r *gin.Engine, teamName, phone, email string) (string, string) {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/api/auth/register-leader", gin.H{
		"name":        "Leader of " + teamName,
		"email":       email,
		"phone":       phone,
		"password":    "secret123",
		"teamName":    teamName,
		"collegeName": "MIT",
	}, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	body := decodeBody(t, w)
	return body["token"].(string), body["teamCode"].(string)
}

// seedUser 直接落库造用户（密码由 BeforeSave Hook 哈希），返回其 token
func seedUser(t *testing.T, role models.UserRole, phone, email string) (models.User, string) {
	t.Helper()
	user := models.User{
		Name:     string(role) + " user",
		Email:    email,
		Phone:    phone,
		Password: "secret123",
		Role:     role,
	}
	require.NoError(t, database.DB.Create(&user).Error)
	token, err := utils.GenerateToken(user)
	require.NoError(t, err)
	return user, token
}
