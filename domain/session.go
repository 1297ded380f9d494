package domain

import "time"

// Session is the authenticated state handed to a client after sign-in:
// a short-lived access token, the refresh token that can renew it, and the
// identity it is bound to.
type Session struct {
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	ExpiresAt    time.Time `json:"expires_at"`
	User         User      `json:"user"`
}

func (s *Session) IsExpired(reference time.Time) bool {
	if s == nil {
		return true
	}
	if reference.IsZero() {
		reference = time.Now()
	}
	return !s.ExpiresAt.After(reference)
}

// ExpiresWithin reports whether the access token runs out inside the given
// margin, i.e. whether the refresher should act now.
func (s *Session) ExpiresWithin(margin time.Duration, reference time.Time) bool {
	if s == nil {
		return false
	}
	if reference.IsZero() {
		reference = time.Now()
	}
	return !s.ExpiresAt.After(reference.Add(margin))
}

// RefreshGrant is the server-side record behind a refresh token. It lives in
// the session store with a TTL matching ExpiresAt.
type RefreshGrant struct {
	Token     string    `json:"token"`
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

func (g *RefreshGrant) IsExpired(reference time.Time) bool {
	if g == nil {
		return true
	}
	if reference.IsZero() {
		reference = time.Now()
	}
	return !g.ExpiresAt.After(reference)
}
