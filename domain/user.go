package domain

import "time"

type User struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	FullName  string    `gorm:"column:full_name;type:text" json:"full_name"`
	Email     string    `gorm:"column:email;type:text;uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"column:password;type:text;not null" json:"-"`
	Role      string    `gorm:"column:role;type:text;default:owner" json:"role"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}
