package models

import "time"

// 留言意向类型
const (
	InterestGeneral   = "general"
	InterestWholesale = "wholesale"
	InterestVisit     = "visit"
	InterestOrder     = "order"
)

// Contact represents a contact form submission
type Contact struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(100);not null" json:"name"`
	Email     string    `gorm:"type:varchar(100);not null" json:"email"`
	Phone     string    `gorm:"type:varchar(20);default:''" json:"phone"`
	Message   string    `gorm:"type:text;not null" json:"message"`
	Interest  string    `gorm:"type:varchar(20);default:'general'" json:"interest"` // general, wholesale, visit, order
	CreatedAt time.Time `json:"created_at"`
}

// TableName specifies the table name for Contact
func (Contact) TableName() string {
	return "contacts"
}

// ValidInterest reports whether the interest value is one of the accepted types
func ValidInterest(interest string) bool {
	switch interest {
	case InterestGeneral, InterestWholesale, InterestVisit, InterestOrder:
		return true
	}
	return false
}
