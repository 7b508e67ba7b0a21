package domain

import "time"

// User represents a player account/session. The store replaces it wholesale
// on login/logout; it is never partially shared between sessions.
type User struct {
	ID             string    `json:"id"`
	Username       string    `json:"username"`
	IsAdmin        bool      `json:"isAdmin"`
	AccountScore   int       `json:"accountScore"`
	TotalXenocoins int       `json:"totalXenocoins"`
	CreatedAt      time.Time `json:"createdAt"`
	LastLogin      time.Time `json:"lastLogin"`
}
