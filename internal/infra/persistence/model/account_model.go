package model

import "time"

// AccountModel mirrors the 'accounts' table. The identifier is the primary
// key, so the uniqueness check is atomic with every insert.
type AccountModel struct {
	Identifier   string `gorm:"type:varchar(100);primary_key"`
	PasswordHash string `gorm:"type:varchar(255);not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (AccountModel) TableName() string {
	return "accounts"
}
