package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	ID             uint           `json:"id" gorm:"primarykey"`
	GithubUsername string         `json:"github_username" gorm:"uniqueIndex;not null"`
	Email          *string        `json:"email"`
	Articles       []Article      `json:"articles,omitempty" gorm:"foreignKey:AuthorID"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `json:"-" gorm:"index"`
}
