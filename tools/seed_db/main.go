package main

import (
	"database/sql"
	"fmt"
	"log"
	"os"

	_ "github.com/go-sql-driver/mysql"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Database struct {
		Host     string `yaml:"host"`
		Port     int    `yaml:"port"`
		Username string `yaml:"username"`
		Password string `yaml:"password"`
		Database string `yaml:"database"`
		Charset  string `yaml:"charset"`
	} `yaml:"database"`
}

func main() {
	// Load configuration
	config := loadConfig()

	// Build DSN
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=True&loc=Local",
		config.Database.Username,
		config.Database.Password,
		config.Database.Host,
		config.Database.Port,
		config.Database.Database,
		config.Database.Charset,
	)

	// Connect DB
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		log.Fatalf("Database connection failed: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("Database connection test failed: %v", err)
	}

	fmt.Println("Database connected successfully")
	fmt.Printf("Database: %s\n", config.Database.Database)

	// Confirm
	fmt.Print("\nWARNING: This operation will CLEAR ALL DATA in tables [post_category, post, profile, category, user]!\n")
	fmt.Print("Type 'YES' to confirm: ")
	var confirm string
	fmt.Scanln(&confirm)
	if confirm != "YES" {
		fmt.Println("Operation cancelled")
		return
	}

	// Disable FK checks to avoid constraint issues
	_, _ = db.Exec("SET FOREIGN_KEY_CHECKS=0")

	// Clear data (child tables first)
	tables := []string{"post_category", "post", "profile", "category", "user"}
	for _, table := range tables {
		fmt.Printf("Clearing table %s... ", table)
		if _, err := db.Exec(fmt.Sprintf("DELETE FROM %s", table)); err != nil {
			fmt.Printf("Failed: %v\n", err)
		} else {
			fmt.Println("Success")
		}
	}

	// Reset auto-increment ids (join table has a composite key, nothing to reset)
	fmt.Println("\nResetting auto-increment IDs...")
	for _, table := range []string{"post", "profile", "category", "user"} {
		fmt.Printf("Resetting %s auto-increment... ", table)
		if _, err := db.Exec(fmt.Sprintf("ALTER TABLE %s AUTO_INCREMENT = 1", table)); err != nil {
			fmt.Printf("Failed: %v\n", err)
		} else {
			fmt.Println("Success")
		}
	}

	// Re-enable FK checks
	_, _ = db.Exec("SET FOREIGN_KEY_CHECKS=1")

	// Seed sample rows so the API has something to serve.
	// Password below is the bcrypt digest of "changeme123".
	fmt.Println("\nSeeding sample data...")
	seed := []string{
		`INSERT INTO user (username, password_hash, is_active, role, created_at, updated_at)
		 VALUES ('admin', '$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy', 1, 'ADMIN', NOW(), NOW())`,
		`INSERT INTO profile (email, address, phone, user_id, created_at, updated_at)
		 VALUES ('admin@example.com', '1 Example Street', '+1 555 0100', 1, NOW(), NOW())`,
		`INSERT INTO category (name, created_at) VALUES ('general', NOW())`,
		`INSERT INTO category (name, created_at) VALUES ('announcements', NOW())`,
		`INSERT INTO post (title, content, published, author_id, view_count, tags, created_at, updated_at)
		 VALUES ('Hello, world', 'First post.', 1, 1, 0, '["welcome"]', NOW(), NOW())`,
		`INSERT INTO post_category (post_id, category_id, assigned_at, assigned_by)
		 VALUES (1, 1, NOW(), 'admin')`,
	}
	for _, stmt := range seed {
		if _, err := db.Exec(stmt); err != nil {
			fmt.Printf("Seed failed: %v\n", err)
		}
	}

	fmt.Println("\nDatabase seed completed!")
	fmt.Println("Tables cleared, auto-increment IDs reset, sample rows inserted")
}

func loadConfig() *Config {
	data, err := os.ReadFile("config/config.yaml")
	if err != nil {
		fmt.Println("Config file not found, using default config")
		return &Config{Database: struct {
			Host     string `yaml:"host"`
			Port     int    `yaml:"port"`
			Username string `yaml:"username"`
			Password string `yaml:"password"`
			Database string `yaml:"database"`
			Charset  string `yaml:"charset"`
		}{
			Host:     "localhost",
			Port:     3306,
			Username: "blog_user",
			Password: "blog_pass",
			Database: "blog_api",
			Charset:  "utf8mb4",
		}}
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		log.Fatalf("Config file parsing failed: %v", err)
	}
	return &cfg
}
