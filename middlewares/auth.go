// file: middlewares/auth.go
package middlewares

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rohansachinpatil/TEC-ECellMET/database"
	"github.com/rohansachinpatil/TEC-ECellMET/models"
	"github.com/rohansachinpatil/TEC-ECellMET/utils"
)

// extractToken 先取 Authorization: Bearer，取不到再退回 http-only cookie
func extractToken(c *gin.Context) string {
	authHeader := c.Request.Header.Get("Authorization")
	if authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && parts[0] == "Bearer" {
			return parts[1]
		}
		return ""
	}
	if cookie, err := c.Cookie("token"); err == nil {
		return cookie
	}
	return ""
}

// JWTAuthMiddleware 验证用户是否登录，并把用户加载进请求上下文
func JWTAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			utils.Error(c, http.StatusUnauthorized, "Not authorized to access this route")
			c.Abort()
			return
		}

		claims, err := utils.ParseToken(token)
		if err != nil {
			utils.Error(c, http.StatusUnauthorized, "Not authorized, token failed")
			c.Abort()
			return
		}

		// Token 只带用户 ID，用户资料每次从库里取（密码哈希不出库）
		var user models.User
		if err := database.DB.Omit("password").First(&user, claims.UserID).Error; err != nil {
			utils.Error(c, http.StatusNotFound, "User not found")
			c.Abort()
			return
		}

		c.Set("user", &user)
		c.Set("user_id", user.ID)
		c.Set("user_role", user.Role)
		c.Next()
	}
}

// RoleAuthMiddleware 验证用户角色权限，super_admin 拥有所有权限
func RoleAuthMiddleware(requiredRoles ...models.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		roleAny, exists := c.Get("user_role")
		if !exists {
			utils.Error(c, http.StatusForbidden, "Unable to resolve user role")
			c.Abort()
			return
		}

		role := roleAny.(models.UserRole)

		hasPermission := false
		for _, requiredRole := range requiredRoles {
			if role == requiredRole {
				hasPermission = true
				break
			}
		}

		if role == models.RoleSuperAdmin {
			hasPermission = true
		}

		if !hasPermission {
			utils.Error(c, http.StatusForbidden, "Forbidden: insufficient role")
			c.Abort()
			return
		}
		c.Next()
	}
}

// CurrentUser 从上下文取登录用户，仅在 JWTAuthMiddleware 之后可用
func CurrentUser(c *gin.Context) *models.User {
	userAny, _ := c.Get("user")
	user, _ := userAny.(*models.User)
	return user
}
