package model

// Feedback tblFeedback; one per submission
type Feedback struct {
	FeedbackID   int    `gorm:"column:FeedbackID;primaryKey;autoIncrement" json:"FeedbackID"`
	SubmissionID int    `gorm:"column:SubmissionID;not null"               json:"SubmissionID"`
	LectureID    int    `gorm:"column:Lecture_ID;not null"                 json:"Lecture_ID"`
	FeedbackText string `gorm:"column:FeedbackText"                        json:"FeedbackText"`
	Mark         int    `gorm:"column:Mark"                                json:"Mark"`
}

func (Feedback) TableName() string { return "tblFeedback" }
