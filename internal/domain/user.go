package domain

import "time"

type UserStatus string

const (
	UserActive    UserStatus = "ACTIVE"
	UserInactive  UserStatus = "INACTIVE"
	UserSuspended UserStatus = "SUSPENDED"
)

type User struct {
	ID           string     `json:"id"`
	Email        string     `json:"email"`
	FirstName    string     `json:"firstName"`
	LastName     string     `json:"lastName"`
	Role         *Role      `json:"role,omitempty"`
	Status       UserStatus `json:"status"`
	DepartmentID *string    `json:"departmentId,omitempty"`
	ManagerID    *string    `json:"managerId,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    *time.Time `json:"updatedAt,omitempty"`
}

type CreateUser struct {
	Email        string  `json:"email"`
	Password     string  `json:"password"`
	FirstName    string  `json:"firstName"`
	LastName     string  `json:"lastName"`
	RoleID       string  `json:"roleId"`
	DepartmentID *string `json:"departmentId,omitempty"`
	ManagerID    *string `json:"managerId,omitempty"`
}

type UpdateUser struct {
	Email        *string     `json:"email,omitempty"`
	FirstName    *string     `json:"firstName,omitempty"`
	LastName     *string     `json:"lastName,omitempty"`
	RoleID       *string     `json:"roleId,omitempty"`
	Status       *UserStatus `json:"status,omitempty"`
	DepartmentID *string     `json:"departmentId,omitempty"`
	ManagerID    *string     `json:"managerId,omitempty"`
}

type Role struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Permissions []string `json:"permissions,omitempty"`
}

type Department struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	ManagerID *string `json:"managerId,omitempty"`
	ParentID  *string `json:"parentId,omitempty"`
}
