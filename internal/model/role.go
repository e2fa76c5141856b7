package model

// Role tblRole; the seeded lookup of role names
type Role struct {
	RoleID   int    `gorm:"column:RoleID;primaryKey;autoIncrement" json:"RoleID"`
	RoleName string `gorm:"column:RoleName;not null"               json:"RoleName"`
}

func (Role) TableName() string { return "tblRole" }
