package domain

import "time"

// Gender values accepted at sign-up.
const (
	GenderMale   = "male"
	GenderFemale = "female"
	GenderOther  = "other"
)

// ValidGender reports whether g is one of the accepted gender values.
func ValidGender(g string) bool {
	return g == GenderMale || g == GenderFemale || g == GenderOther
}

// User models a registered account. Username, email and phone number
// are unique across the platform; username and email uniqueness is
// case-insensitive (enforced on normalized shadow keys at the store).
type User struct {
	ID             string    `json:"id"`
	Username       string    `json:"username"`
	Email          string    `json:"email"`
	PhoneNumber    string    `json:"phoneNumber"`
	Gender         string    `json:"gender"`
	PasswordHash   string    `json:"-"`
	IsAdmin        bool      `json:"isAdmin"`
	ProfilePicture string    `json:"profilePicture,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
}

// UserUpdate is a partial update of mutable user fields. Nil pointers
// leave the stored value untouched. ProfilePicture distinguishes
// "unset" (nil) from "remove" (pointer to empty string).
type UserUpdate struct {
	Username       *string
	Email          *string
	PhoneNumber    *string
	Gender         *string
	IsAdmin        *bool
	ProfilePicture *string
}

// Empty reports whether the update carries no changes.
func (u UserUpdate) Empty() bool {
	return u.Username == nil && u.Email == nil && u.PhoneNumber == nil &&
		u.Gender == nil && u.IsAdmin == nil && u.ProfilePicture == nil
}
