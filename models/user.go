package models

import "time"

const (
	GroupManager      = "manager"
	GroupDeliveryCrew = "delivery-crew"
)

type User struct {
	ID        int       `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Password  string    `json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Group struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}
