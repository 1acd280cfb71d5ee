// internal/domain/models/member.go
package models

import "time"

// Member is a single registrant record.
//
// Mobile is always stored as exactly 8 digits (no separators) and Email is
// always stored lowercase; normalization happens before the store is touched.
// Both carry unique indexes, so no two members can share either value.
type Member struct {
	ID               uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name             string    `gorm:"column:name;not null" json:"name"`
	Surname          string    `gorm:"column:surname;not null" json:"surname"`
	Mobile           string    `gorm:"column:mobile;not null;uniqueIndex:idx_members_mobile" json:"mobile"`
	Email            string    `gorm:"column:email;not null;uniqueIndex:idx_members_email" json:"email"`
	RegistrationDate time.Time `gorm:"column:registration_date" json:"registration_date"`
}

// TableName keeps the table name stable regardless of GORM's pluralization.
func (Member) TableName() string {
	return "members"
}

// FullName returns "Name Surname" for display and welcome messages.
func (m Member) FullName() string {
	return m.Name + " " + m.Surname
}
