// Package models defines the marketplace records exchanged with the remote
// API. JSON tags follow the server's snake_case wire format.
package models

// User is the account record returned by login, register and the profile
// endpoints. The optional profile fields are empty strings until the user
// fills them in.
type User struct {
	ID         string `json:"id"`
	Username   string `json:"username"`
	Email      string `json:"email"`
	FullName   string `json:"full_name,omitempty"`
	ProfilePic string `json:"profile_pic,omitempty"`
	Location   string `json:"location,omitempty"`
	Bio        string `json:"bio,omitempty"`
	IsActive   bool   `json:"is_active"`
}

// UserRating is the aggregate reputation of a user.
type UserRating struct {
	AverageRating float64 `json:"average_rating"`
	TotalRatings  int     `json:"total_ratings"`
}

// CompletedNeed is a finished task shown on a user's profile.
type CompletedNeed struct {
	ID        string  `json:"id"`
	Title     string  `json:"title"`
	Budget    float64 `json:"budget"`
	CreatedAt string  `json:"created_at"`
}
