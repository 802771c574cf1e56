package models

type Question struct {
	ID         int    `gorm:"primaryKey;autoIncrement" json:"id"`
	Question   string `gorm:"type:text;not null" json:"question"`
	Answer     string `gorm:"type:text;not null" json:"answer"`
	Category   int    `gorm:"index;not null" json:"category"`
	Difficulty int    `gorm:"not null" json:"difficulty"`
}
