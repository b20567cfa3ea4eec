package main

import (
	"fmt"
	"log"

	"github.com/portfolio/internal/config"
	"github.com/portfolio/internal/db"
	"github.com/portfolio/internal/service"
)

// 测试数据生成器，方便本地开发时快速填充站点内容
func main() {
	cfg := config.Load()
	if err := db.Init(cfg.DatabasePath); err != nil {
		log.Fatal("数据库初始化失败:", err)
	}

	fmt.Println("开始生成测试数据...")

	createTestProjects()
	createTestSkills()
	createTestCertificates()
	createTestAchievements()
	createTestBlogs()

	fmt.Println("测试数据生成完成！")
}

func createTestProjects() {
	var count int64
	db.DB.Model(&db.Project{}).Count(&count)
	if count > 0 {
		fmt.Println("项目已存在，跳过创建")
		return
	}

	svc := service.NewProjectService(db.DB)
	inputs := []service.ProjectInput{
		{
			Title:       "Portfolio Backend",
			Description: "Gin + GORM powered personal site backend",
			Details:     "REST API with an admin panel, contact pipeline and image uploads.",
			Tech:        []string{"Go", "Gin", "SQLite"},
		},
		{
			Title:       "Chat Bot",
			Description: "Slack bot for team standups",
			Tech:        []string{"Go", "Slack API"},
		},
	}
	for _, input := range inputs {
		if _, err := svc.Create(input); err != nil {
			log.Fatal("创建项目失败:", err)
		}
	}
	fmt.Println("✅ 测试项目创建完成")
}

func createTestSkills() {
	var count int64
	db.DB.Model(&db.Skill{}).Count(&count)
	if count > 0 {
		fmt.Println("技能已存在，跳过创建")
		return
	}

	svc := service.NewSkillService(db.DB)
	inputs := []service.SkillInput{
		{Name: "Go", Category: "Backend", Proficiency: service.ProficiencyExpert},
		{Name: "PostgreSQL", Category: "Database", Proficiency: service.ProficiencyAdvanced},
		{Name: "Docker", Category: "Infrastructure"},
		{Name: "React", Category: "Frontend", Proficiency: service.ProficiencyIntermediate},
	}
	for _, input := range inputs {
		if _, err := svc.Create(input); err != nil {
			log.Fatal("创建技能失败:", err)
		}
	}
	fmt.Println("✅ 测试技能创建完成")
}

func createTestCertificates() {
	var count int64
	db.DB.Model(&db.Certificate{}).Count(&count)
	if count > 0 {
		fmt.Println("证书已存在，跳过创建")
		return
	}

	svc := service.NewCertificateService(db.DB)
	inputs := []service.CertificateInput{
		{Title: "Certified Kubernetes Administrator", Issuer: "CNCF", IssueDate: "2024-03-10", ExpiryDate: "2027-03-10"},
		{Title: "AWS Solutions Architect", Issuer: "Amazon", IssueDate: "2023-11-02"},
	}
	for _, input := range inputs {
		if _, err := svc.Create(input); err != nil {
			log.Fatal("创建证书失败:", err)
		}
	}
	fmt.Println("✅ 测试证书创建完成")
}

func createTestAchievements() {
	var count int64
	db.DB.Model(&db.Achievement{}).Count(&count)
	if count > 0 {
		fmt.Println("成就已存在，跳过创建")
		return
	}

	svc := service.NewAchievementService(db.DB)
	inputs := []service.AchievementInput{
		{Title: "Hackathon Winner", Description: "First place at the regional hackathon", AchievementDate: "2024-06-15"},
		{Title: "Open Source Contributor", Description: "Merged patches into a major Go project", AchievementDate: "2023-09-01"},
	}
	for _, input := range inputs {
		if _, err := svc.Create(input); err != nil {
			log.Fatal("创建成就失败:", err)
		}
	}
	fmt.Println("✅ 测试成就创建完成")
}

func createTestBlogs() {
	var count int64
	db.DB.Model(&db.Blog{}).Count(&count)
	if count > 0 {
		fmt.Println("博客已存在，跳过创建")
		return
	}

	svc := service.NewBlogService(db.DB)
	inputs := []service.BlogInput{
		{
			Title:       "Why I Rebuilt My Portfolio in Go",
			Description: "Notes from moving to a single Gin binary",
			Content:     "# Why I Rebuilt My Portfolio in Go\n\nA single binary beats a pile of serverless functions.",
			Published:   true,
		},
		{
			Title:       "Draft: Ideas for 2026",
			Description: "Unpublished notes",
			Content:     "# Ideas\n\n- TBD",
		},
	}
	for _, input := range inputs {
		if _, err := svc.Create(input); err != nil {
			log.Fatal("创建博客失败:", err)
		}
	}
	fmt.Println("✅ 测试博客创建完成")
}
