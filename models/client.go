package models

// Client is a salon client. Birthday is stored as "YYYY-MM-DD" so that
// lexicographic comparison matches chronological order.
type Client struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"not null" json:"name"`
	Email    string `gorm:"not null" json:"email"`
	Phone    string `json:"phone,omitempty"` // E.164 when set
	IsLoyal  bool   `gorm:"default:false" json:"isLoyal"`
	Birthday string `json:"birthday"`
	PhotoURL string `json:"photoUrl,omitempty"`
}
