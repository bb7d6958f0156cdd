// file: utils/filename.go
package utils

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// GenerateStoredFileName 生成随机化的落盘文件名，保留原始扩展名
// 形如 submission-1700000000000-1a2b3c4d.pdf，避免同名覆盖
func GenerateStoredFileName(originalName string) string {
	ext := strings.ToLower(filepath.Ext(originalName))
	suffix := strings.Replace(uuid.New().String(), "-", "", -1)[:8]
	return fmt.Sprintf("submission-%d-%s%s", time.Now().UnixMilli(), suffix, ext)
}
