package model

// Module tblModule
type Module struct {
	ModuleID    int    `gorm:"column:ModuleID;primaryKey;autoIncrement" json:"ModuleID"`
	ModuleCode  string `gorm:"column:ModuleCode;not null"               json:"ModuleCode"`
	ModuleName  string `gorm:"column:ModuleName;not null"               json:"ModuleName"`
	Description string `gorm:"column:Description"                       json:"Description"`
	Lecturer    *int   `gorm:"column:Lecturer"                          json:"Lecturer"`
}

func (Module) TableName() string { return "tblModule" }

// ModuleOnCourse tblModuleOnCourse
type ModuleOnCourse struct {
	ID       int `gorm:"column:ID;primaryKey;autoIncrement" json:"ID"`
	CourseID int `gorm:"column:CourseID;not null"           json:"CourseID"`
	ModuleID int `gorm:"column:ModuleID;not null"           json:"ModuleID"`
}

func (ModuleOnCourse) TableName() string { return "tblModuleOnCourse" }
