package entity

// RegisteredUser is the projection returned after a successful write or
// lookup. It never carries the password digest and is trusted to be built only
// from repository-returned data, so it performs no validation. Equality is
// structural.
type RegisteredUser struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Fullname string `json:"fullname"`
	Role     string `json:"role"`
}
