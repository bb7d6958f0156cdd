// file: scripts/deleteuser/main.go
package main

import (
	"flag"
	"log"

	"github.com/rohansachinpatil/TEC-ECellMET/config"
	"github.com/rohansachinpatil/TEC-ECellMET/database"
	"github.com/rohansachinpatil/TEC-ECellMET/models"
)

// 管理脚本：按手机号删除用户，这是删除用户的唯一途径。
// 队长不允许在此删除（需要先处理整个队伍）:
//
//	go run ./scripts/deleteuser -phone 9876543210
func main() {
	phone := flag.String("phone", "", "phone number of the user to delete")
	flag.Parse()
	if *phone == "" {
		log.Fatal("usage: deleteuser -phone <phone>")
	}

	config.Load()
	database.Connect()

	var user models.User
	if err := database.DB.Where("phone = ?", *phone).First(&user).Error; err != nil {
		log.Fatal("User not found with phone:", *phone)
	}

	if user.Role == models.RoleLeader {
		log.Fatal("Refusing to delete a team leader; delete or reassign the team first.")
	}

	// 队员离队即删号，队伍名单随之缩一人 (名单靠 team_id 外键派生)
	if err := database.DB.Delete(&user).Error; err != nil {
		log.Fatal("Error deleting user:", err)
	}

	log.Printf("User %s (%s) deleted.", user.Name, *phone)
}
