package domain

import "time"

// Clearance level bounds for passes and place requirements.
const (
	MinPassLevel = 1
	MaxPassLevel = 5
)

// ValidLevel reports whether the supplied clearance level is within bounds.
func ValidLevel(level int) bool {
	return level >= MinPassLevel && level <= MaxPassLevel
}

// Pass is a numeric clearance credential owned by reference from a user.
type Pass struct {
	ID        string
	Level     int
	CreatedAt time.Time
	UpdatedAt *time.Time
}

// User mirrors the persisted representation in the users table. PassID is nil
// after the referenced pass has been deleted.
type User struct {
	ID           string
	FirstName    string
	LastName     string
	Age          int
	PhoneNumber  string
	Address      string
	PasswordHash string
	PassID       *string
}

// Place is an access-controlled location with minimum clearance requirements.
type Place struct {
	ID                string
	Address           string
	PhoneNumber       string
	RequiredPassLevel int
	RequiredAgeLevel  int
}

// Eligible applies the access rule: the pass level and the holder's age must
// both meet the place's minimums, inclusively.
func Eligible(user User, pass Pass, place Place) bool {
	return pass.Level >= place.RequiredPassLevel && user.Age >= place.RequiredAgeLevel
}
