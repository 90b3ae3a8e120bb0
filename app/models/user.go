package models

// Clone returns a copy of the user.
func (u *User) Clone() *User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

// Apply overwrites the user's writable fields with the input. The ID
// is left untouched.
func (u *User) Apply(in UserInput) {
	u.Name = in.Name
	u.Email = in.Email
	u.Age = in.Age
}
