package model

import "time"

// AdminText is a keyed content override for copy shown in the app. Lookups
// fall back to a hardcoded default per call site when the key is absent.
type AdminText struct {
	ID       string `json:"id"`
	Key      string `json:"key"`
	Content  string `json:"content"`
	Location string `json:"location"`
}

type Notification struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
	IsRead    bool      `json:"isRead"`
}
