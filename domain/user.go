package domain

// UserProfile is a workspace member record from the user directory.
type UserProfile struct {
	ID          string
	Username    string
	DisplayName string
}

// Name returns the best displayable name for the user.
func (u UserProfile) Name() string {
	if u.DisplayName != "" {
		return u.DisplayName
	}
	return u.Username
}
