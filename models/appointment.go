package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
)

const (
	StatusConfirmed = "confirmed"
	StatusPending   = "pending"
	StatusCancelled = "cancelled"
)

// ValidStatus reports whether s is one of the three appointment states.
func ValidStatus(s string) bool {
	return s == StatusConfirmed || s == StatusPending || s == StatusCancelled
}

// Appointment references a Client and a Service by id. Either referent may
// be deleted afterwards; readers must tolerate dangling references.
type Appointment struct {
	ID            uint          `gorm:"primaryKey" json:"id"`
	ClientID      uint          `gorm:"index;not null" json:"clientId"`
	ServiceID     uint          `gorm:"index;not null" json:"serviceId"`
	Date          string        `gorm:"not null" json:"date"` // YYYY-MM-DD
	Time          string        `gorm:"not null" json:"time"` // HH:MM
	Status        string        `gorm:"type:varchar(20);not null" json:"status"`
	Questionnaire Questionnaire `gorm:"type:text" json:"questionnaire"`
}

// Answer is a ternary intake answer: "yes", "no" or unset ("").
type Answer string

const (
	AnswerYes Answer = "yes"
	AnswerNo  Answer = "no"
)

// Questionnaire is the pre-appointment intake form, persisted as a JSON
// column on the appointment.
type Questionnaire struct {
	Pregnancy        Answer   `json:"pregnancy"`
	BitesNails       Answer   `json:"bitesNails"`
	Allergy          Answer   `json:"allergy"`
	RemoveCuticle    Answer   `json:"removeCuticle"`
	Fungus           Answer   `json:"fungus"`
	Medication       Answer   `json:"medication"`
	PhysicalActivity Answer   `json:"physicalActivity"`
	PoolBeach        Answer   `json:"poolBeach"`
	Diabetes         Answer   `json:"diabetes"`
	IngrownNail      Answer   `json:"ingrownNail"`
	NailPlate        []string `json:"nailPlate"` // peeling, detachment, spots, ridges
	Notes            string   `json:"notes"`
}

func (q Questionnaire) Value() (driver.Value, error) {
	return json.Marshal(q)
}

func (q *Questionnaire) Scan(value interface{}) error {
	if value == nil {
		*q = Questionnaire{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, q)
	case string:
		return json.Unmarshal([]byte(v), q)
	default:
		return errors.New("unsupported questionnaire column type")
	}
}
