package model

import "time"

// Assignment tblAssignment; CreatedAt is filled by the column default
type Assignment struct {
	AssignmentID int       `gorm:"column:AssignmentID;primaryKey;autoIncrement" json:"AssignmentID"`
	Title        string    `gorm:"column:Title;not null"                        json:"Title"`
	Instructions string    `gorm:"column:Instructions"                          json:"Instructions"`
	CreatedAt    time.Time `gorm:"column:CreatedAt;default:SYSUTCDATETIME()"    json:"CreatedAt"`
	DueDate      time.Time `gorm:"column:DueDate;not null"                      json:"DueDate"`
	ModuleID     int       `gorm:"column:ModuleID;not null"                     json:"ModuleID"`
}

func (Assignment) TableName() string { return "tblAssignment" }
