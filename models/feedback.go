package models

// Feedback is a client rating. ClientID is zero for anonymous entries;
// ClientName is denormalized so feedback survives client deletion.
type Feedback struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	Rating     int    `gorm:"not null" json:"rating"` // 1..5
	Comment    string `json:"comment"`
	Date       string `gorm:"not null" json:"date"` // YYYY-MM-DD
	ClientName string `json:"clientName,omitempty"`
	ClientID   uint   `gorm:"index" json:"clientId,omitempty"`
}
