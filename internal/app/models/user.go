package models

// User defines the user model based on the 'users' table
type User struct {
	ID       int64  `json:"id" db:"id"`
	Email    string `json:"email" db:"email"`
	Password string `json:"-" db:"password"` // stored as given

	// Relations (populated when needed)
	Profile *Profile `json:"profile,omitempty"`
}

// Profile is the 1:1 extension of a User.
type Profile struct {
	ID     int64  `json:"id" db:"id"`
	Bio    string `json:"bio" db:"bio"`
	UserID int64  `json:"user_id" db:"user_id"`
}
