// Package session holds user identity, roles and the permissive login
// that maps a chosen role to a canned user record.
package session

type Role string

const (
	RoleAdmin   Role = "admin"
	RoleTeacher Role = "teacher"
	RoleStudent Role = "student"
)

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleTeacher, RoleStudent:
		return true
	}
	return false
}

type User struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Role         Role   `json:"role"`
	Avatar       string `json:"avatar,omitempty"`
	PasswordHash []byte `json:"passwordHash,omitempty"`
}

func (u User) EntityID() string       { return u.ID }
func (u *User) SetEntityID(id string) { u.ID = id }

// Public strips credentials for API responses.
func (u User) Public() User {
	u.PasswordHash = nil
	return u
}

func SeedUsers() []User {
	return []User{
		{ID: "u1", Name: "Admin User", Email: "admin@gmail.com", Role: RoleAdmin, Avatar: "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?ixlib=rb-1.2.1&auto=format&fit=facearea&facepad=2&w=256&h=256&q=80"},
		{ID: "u2", Name: "Sarah Teacher", Email: "teacher@gmail.com", Role: RoleTeacher, Avatar: "https://images.unsplash.com/photo-1494790108377-be9c29b29330?ixlib=rb-1.2.1&auto=format&fit=facearea&facepad=2&w=256&h=256&q=80"},
		{ID: "u3", Name: "John Student", Email: "student@gmail.com", Role: RoleStudent, Avatar: "https://images.unsplash.com/photo-1599566150163-29194dcaad36?ixlib=rb-1.2.1&auto=format&fit=facearea&facepad=2&w=256&h=256&q=80"},
	}
}
