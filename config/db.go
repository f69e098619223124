package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"strings"
	"time"

	"hotel-platform/models"
	"hotel-platform/services"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

func envOrDefault(key, def string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	return value
}

func mysqlDSNFromURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}

	user := u.User.Username()
	pass, _ := u.User.Password()
	host := u.Hostname()
	port := u.Port()
	if port == "" {
		port = "3306"
	}

	dbName := strings.TrimPrefix(u.Path, "/")
	if dbName == "" {
		return "", fmt.Errorf("mysql url missing database name")
	}

	q := u.Query()
	if q.Get("charset") == "" {
		q.Set("charset", "utf8mb4")
	}
	if q.Get("parseTime") == "" {
		q.Set("parseTime", "True")
	}
	if q.Get("loc") == "" {
		q.Set("loc", "UTC")
	}

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?%s", user, pass, host, port, dbName, q.Encode()), nil
}

func resolveMySQLDSN() (string, error) {
	raw := strings.TrimSpace(os.Getenv("MYSQL_URL"))
	if raw == "" {
		raw = strings.TrimSpace(os.Getenv("DATABASE_URL"))
	}

	if raw != "" {
		if strings.HasPrefix(raw, "mysql://") {
			return mysqlDSNFromURL(raw)
		}
		return raw, nil
	}

	user := envOrDefault("DB_USER", "root")
	pass := envOrDefault("DB_PASS", "")
	host := envOrDefault("DB_HOST", "127.0.0.1")
	port := envOrDefault("DB_PORT", "3306")
	dbName := envOrDefault("DB_NAME", "hotel_db")

	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
		user, pass, host, port, dbName,
	)
	return dsn, nil
}

func ConnectDatabase() error {
	dsn, err := resolveMySQLDSN()
	if err != nil {
		return err
	}

	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold: time.Second,
			LogLevel:      logger.Warn,
			Colorful:      true,
		},
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger:         newLogger,
		TranslateError: true,
	})
	if err != nil {
		return err
	}

	DB = db

	// AutoMigrate in parent->child order so FK and unique constraints land
	// before any child rows exist.
	if err := DB.AutoMigrate(
		&models.Admin{},
		&models.Hotel{},
		&models.RoomType{},
		&models.RateAdjustment{},
	); err != nil {
		return err
	}

	SeedDatabase()
	return nil
}

// SeedDatabase fills an empty database with a default admin and a couple of
// sample hotels, room types and adjustments. Every block is idempotent.
func SeedDatabase() {
	// ---------------- Admins ----------------
	var adminCount int64
	DB.Model(&models.Admin{}).Count(&adminCount)
	if adminCount == 0 {
		hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
		if err != nil {
			log.Printf("warning: failed to hash default admin password: %v", err)
		} else {
			admin := models.Admin{
				FullName:    "Admin User",
				Email:       "admin@example.com",
				Password:    string(hash),
				IsActive:    true,
				IsSuperuser: true,
			}
			if err := DB.Create(&admin).Error; err != nil {
				log.Printf("warning: failed to create default admin: %v", err)
			} else {
				log.Println("Default admin seeded")
			}
		}
	}

	// ---------------- Hotels / RoomTypes ----------------
	var hotelCount int64
	DB.Model(&models.Hotel{}).Count(&hotelCount)
	if hotelCount > 0 {
		log.Println("Hotels already seeded")
		return
	}

	hotels := []models.Hotel{
		{
			Name:        "Grand Plaza Hotel",
			Location:    "New York, NY",
			Rating:      4.5,
			Description: "A luxury hotel in the heart of the city.",
			RoomTypes: []models.RoomType{
				{Name: "Deluxe King", BasePrice: 250.0, Capacity: 2, Description: "Spacious room with a king-sized bed.", Amenities: datatypes.JSON([]byte(`["WiFi","Minibar","City View"]`))},
				{Name: "Double Queen", BasePrice: 280.0, Capacity: 4, Description: "Perfect for families.", Amenities: datatypes.JSON([]byte(`["WiFi","Crib Available"]`))},
			},
		},
		{
			Name:        "Sunset Resort",
			Location:    "Miami, FL",
			Rating:      4.8,
			Description: "Beachfront paradise with stunning views.",
			RoomTypes: []models.RoomType{
				{Name: "Ocean View Suite", BasePrice: 450.0, Capacity: 2, Description: "Wake up to the sound of the waves."},
				{Name: "Poolside Cabana", BasePrice: 350.0, Capacity: 3, Description: "Direct access to the pool."},
			},
		},
	}

	if err := DB.Create(&hotels).Error; err != nil {
		log.Printf("warning: failed to seed hotels: %v", err)
		return
	}
	log.Println("Hotels and room types seeded")

	// ---------------- Sample rate adjustments ----------------
	if len(hotels) > 0 && len(hotels[0].RoomTypes) > 0 {
		rt := hotels[0].RoomTypes[0]
		reason := "Holiday season pricing"
		adjustments := []models.RateAdjustment{
			{
				RoomTypeID:       rt.ID,
				AdjustmentAmount: 50.0,
				EffectiveDate:    services.NormalizeDate(time.Now()),
				Reason:           &reason,
			},
		}
		if err := DB.Create(&adjustments).Error; err != nil {
			log.Printf("warning: failed to seed rate adjustments: %v", err)
		} else {
			log.Println("Rate adjustments seeded")
		}
	}
}
