package types

// User is a guest account commands can be run as.
type User struct {
	Name string
}

// RootUser runs commands directly, without an `su` wrapper.
var RootUser = User{Name: "root"}

// NewUser returns the guest user with the given login name.
func NewUser(name string) User {
	return User{Name: name}
}

// IsRoot reports whether u is the guest's root account.
// The zero User is treated as root.
func (u User) IsRoot() bool {
	return u.Name == "" || u == RootUser
}
