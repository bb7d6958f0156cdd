// file: scripts/seedadmin/main.go
package main

import (
	"log"

	"github.com/rohansachinpatil/TEC-ECellMET/config"
	"github.com/rohansachinpatil/TEC-ECellMET/database"
	"github.com/rohansachinpatil/TEC-ECellMET/models"
)

// 幂等的 super_admin 初始化脚本:
//
//	go run ./scripts/seedadmin
func main() {
	config.Load()
	database.Connect()
	database.MigrateTables()

	phone := "9999999999"
	password := "adminpassword"

	var existing models.User
	if err := database.DB.Where("phone = ?", phone).First(&existing).Error; err == nil {
		log.Println("Admin user already exists with phone:", phone)
		return
	}

	admin := models.User{
		Name:          "Super Admin",
		Email:         "admin@tecpune.com",
		Phone:         phone,
		Password:      password, // BeforeSave Hook 负责哈希
		Role:          models.RoleSuperAdmin,
		City:          "Pune",
		Year:          "Faculty",
		Branch:        "Admin",
		InstituteName: "VIT Pune",
	}
	if err := database.DB.Create(&admin).Error; err != nil {
		log.Fatal("Error seeding admin:", err)
	}

	log.Println("Super Admin created.")
	log.Println("Phone:", phone)
	log.Println("Password:", password)
}
