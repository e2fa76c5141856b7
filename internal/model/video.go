package model

// Video tblVideo; VideoURL holds the object URL plus a read token
type Video struct {
	VideoID    int    `gorm:"column:VideoID;primaryKey;autoIncrement" json:"VideoID"`
	VideoTitle string `gorm:"column:VideoTitle;not null"              json:"VideoTitle"`
	VideoURL   string `gorm:"column:VideoURL;not null"                json:"VideoURL"`
}

func (Video) TableName() string { return "tblVideo" }
