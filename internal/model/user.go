package model

// User tblUser
type User struct {
	UserID       int    `gorm:"column:UserID;primaryKey;autoIncrement" json:"UserID"`
	UserNumber   int    `gorm:"column:UserNumber;uniqueIndex;not null" json:"UserNumber"`
	PasswordHash string `gorm:"column:PasswordHash;not null"           json:"-"`
	FirstName    string `gorm:"column:FirstName;not null"              json:"FirstName"`
	LastName     string `gorm:"column:LastName;not null"               json:"LastName"`
	Email        string `gorm:"column:Email;not null"                  json:"Email"`
	UserRole     string `gorm:"column:UserRole;not null"               json:"UserRole"`
	CourseID     *int   `gorm:"column:CourseID"                        json:"CourseID"`
}

// TableName table name
func (User) TableName() string { return "tblUser" }

// FullName "First Last"
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}
