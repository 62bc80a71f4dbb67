package main

import (
	"flag"
	"fmt"
	"log"

	"natura-http-service/internal/domain/models"
	"natura-http-service/internal/domain/services"
	"natura-http-service/internal/infrastructure/config"
	"natura-http-service/internal/infrastructure/database"

	"github.com/joho/godotenv"
)

// 命令行工具：创建或重置管理员账户
// 用法: create_admin -username admin -password secret
func main() {
	username := flag.String("username", "admin", "管理员用户名")
	password := flag.String("password", "", "管理员密码（必填）")
	flag.Parse()

	if *password == "" {
		log.Fatal("必须通过 -password 指定密码")
	}

	// 加载.env文件
	if err := godotenv.Load(); err != nil {
		log.Printf("无法加载.env文件: %v", err)
	}

	cfg := config.GetConfig()

	pool, err := database.NewConnectionPool(cfg)
	if err != nil {
		log.Fatalf("无法连接数据库: %v", err)
	}
	defer pool.Close()

	db := pool.GetDB()
	if err := db.AutoMigrate(&models.Admin{}); err != nil {
		log.Fatalf("迁移管理员表失败: %v", err)
	}

	adminService := services.NewAdminService(db, cfg)
	admin, err := adminService.UpsertAdmin(*username, *password)
	if err != nil {
		log.Fatalf("创建管理员失败: %v", err)
	}

	fmt.Printf("管理员账户已就绪: %s (id=%d)\n", admin.Username, admin.ID)
}
