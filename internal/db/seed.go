package db

import (
	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

// DefaultServices is the starter catalogue of a new salon.
var DefaultServices = []models.Service{
	{
		Name:        "Cắt tóc nam",
		Description: "Cắt tóc nam theo yêu cầu, bao gồm gội đầu và tạo kiểu",
		Price:       100000,
		DurationMin: 30,
	},
	{
		Name:        "Uốn tóc",
		Description: "Uốn tóc theo yêu cầu, bao gồm tư vấn kiểu tóc phù hợp",
		Price:       500000,
		DurationMin: 120,
	},
	{
		Name:        "Nhuộm tóc",
		Description: "Nhuộm tóc theo yêu cầu, bao gồm tư vấn màu phù hợp",
		Price:       700000,
		DurationMin: 90,
	},
	{
		Name:        "Gội đầu massage",
		Description: "Gội đầu kèm massage thư giãn",
		Price:       80000,
		DurationMin: 45,
	},
}

// SeedServices inserts DefaultServices into an empty services table and
// returns how many rows it wrote.
func SeedServices(db *gorm.DB) (int, error) {
	var count int64
	if err := db.Model(&models.Service{}).Count(&count).Error; err != nil {
		return 0, err
	}
	if count > 0 {
		return 0, nil
	}

	services := make([]models.Service, len(DefaultServices))
	copy(services, DefaultServices)

	if err := db.Create(&services).Error; err != nil {
		return 0, err
	}
	return len(services), nil
}
