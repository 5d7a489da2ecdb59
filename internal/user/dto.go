package user

// ExposedUser is the wire shape for creating, updating and reading a single user.
type ExposedUser struct {
	Name string `json:"name"`
	Age  int    `json:"age"`
}

type UserResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Age  int    `json:"age"`
}
