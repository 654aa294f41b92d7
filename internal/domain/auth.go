package domain

// AuthSession is the payload returned by login, register and refresh: the
// bearer credential pair plus the authoritative user profile.
type AuthSession struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	User         User   `json:"user"`
}
