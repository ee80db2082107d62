package repository

import "time"

type User struct {
	ID       uint   `gorm:"primaryKey"`
	Username string `gorm:"type:varchar(255);uniqueIndex;not null"`
	Password string `gorm:"type:varchar(255);not null"` // bcrypt hash
	Role     string `gorm:"type:varchar(50);not null;default:admin"`
}

type Post struct {
	ID        uint      `gorm:"primaryKey"`
	Title     string    `gorm:"size:100;not null"`
	Content   string    `gorm:"type:text;not null"` // sanitized html
	ImagePath string    `gorm:"size:255;not null"`
	CreatedAt time.Time `gorm:"not null;index"`
}
