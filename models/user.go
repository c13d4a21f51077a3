package models

import (
	"fmt"
	"time"
)

type UserRole string

const (
	RoleAdmin          UserRole = "ADMIN"
	RoleManager        UserRole = "MANAGER"
	RoleFrontDesk      UserRole = "FRONT_DESK"
	RolePaymentOfficer UserRole = "PAYMENT_OFFICER"
	RoleGuest          UserRole = "GUEST"
)

// UserRoles is the closed role set, in the order the admin UI lists it.
var UserRoles = []UserRole{RoleAdmin, RoleManager, RoleFrontDesk, RolePaymentOfficer, RoleGuest}

// ParseUserRole matches raw exactly (case-sensitive) against UserRoles.
func ParseUserRole(raw string) (UserRole, error) {
	for _, r := range UserRoles {
		if string(r) == raw {
			return r, nil
		}
	}
	return "", fmt.Errorf("unknown user role %q", raw)
}

type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"uniqueIndex;size:150;not null" json:"username"`
	Email     string    `gorm:"uniqueIndex;size:255;not null" json:"email"`
	Password  string    `gorm:"size:255;not null" json:"-"` // bcrypt hash
	FirstName string    `gorm:"size:100" json:"firstName"`
	LastName  string    `gorm:"size:100" json:"lastName"`
	Phone     string    `gorm:"size:50" json:"phone"`
	Role      UserRole  `gorm:"size:32;not null" json:"role"`
	IsActive  bool      `gorm:"not null" json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// FullName is first and last name joined by a single space.
func (u User) FullName() string {
	return u.FirstName + " " + u.LastName
}
