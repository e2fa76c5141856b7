package model

// Enrollment tblStudentModuleEnrollment
type Enrollment struct {
	EnrollmentID int `gorm:"column:EnrollmentID;primaryKey;autoIncrement" json:"EnrollmentID"`
	StudentID    int `gorm:"column:StudentID;not null"                    json:"StudentID"`
	ModuleID     int `gorm:"column:ModuleID;not null"                     json:"ModuleID"`
}

func (Enrollment) TableName() string { return "tblStudentModuleEnrollment" }
