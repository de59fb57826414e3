package user

// RegisterUserCommand carries the signup input.
type RegisterUserCommand struct {
	Name     string
	Email    string
	Password string
	Role     string // "admin" | "user", empty defaults to "user"
}

// LoginCommand carries the login input.
type LoginCommand struct {
	Email    string
	Password string
}
