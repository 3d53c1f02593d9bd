// Package models contains database model definitions.
package models

import "time"

// Setting represents a key/value configuration setting stored in the database.
type Setting struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	Key       string    `gorm:"unique;size:100;not null" json:"key"`
	Value     string    `gorm:"type:text;not null" json:"value"`
	GroupName string    `gorm:"column:group_name;size:100" json:"group_name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName specifies the database table name for the Setting model.
func (Setting) TableName() string {
	return "settings"
}
