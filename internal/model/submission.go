package model

// Submission tblSubmission
type Submission struct {
	SubmissionID   int    `gorm:"column:SubmissionID;primaryKey;autoIncrement" json:"SubmissionID"`
	StudentID      int    `gorm:"column:StudentID;not null"                    json:"StudentID"`
	AssignmentID   int    `gorm:"column:AssignmentID;not null"                 json:"AssignmentID"`
	SubmissionText string `gorm:"column:SubmissionText"                        json:"SubmissionText"`
	VideoID        *int   `gorm:"column:VideoID"                               json:"VideoID"`
	Status         string `gorm:"column:Status;not null"                       json:"Status"`
}

func (Submission) TableName() string { return "tblSubmission" }
