package domain

// Status is the lifecycle state of a user account.
type Status string

const (
	StatusActive   Status = "Active"
	StatusInactive Status = "Inactive"
)

type User struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	Status Status `json:"status"`
}

type Role struct {
	ID          int64        `json:"id"`
	Name        string       `json:"name"`
	Permissions []Permission `json:"permissions"`
}

// Deleted is the payload returned by delete operations.
type Deleted struct {
	DeletedID int64 `json:"deletedId"`
}
