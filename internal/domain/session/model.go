package session

// User es el usuario de la sesión. Hay cero o uno a la vez.
// Los tags JSON siguen el formato del blob persistido bajo "user".
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`

	Phone     string `json:"phone,omitempty"`
	Address   string `json:"address,omitempty"`
	AvatarURL string `json:"avatarUrl,omitempty"`
}
