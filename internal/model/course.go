package model

// Course tblCourse
type Course struct {
	CourseID   int    `gorm:"column:CourseID;primaryKey;autoIncrement" json:"CourseID"`
	CourseCode string `gorm:"column:CourseCode;not null"               json:"CourseCode"`
	CourseName string `gorm:"column:CourseName;not null"               json:"CourseName"`
	Duration   int    `gorm:"column:Duration"                          json:"Duration"`
	Year       int    `gorm:"column:Year"                              json:"Year"`
}

func (Course) TableName() string { return "tblCourse" }
