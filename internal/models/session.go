package models

// SessionKeyMode selects how session keys in the key-value store are derived.
type SessionKeyMode string

const (
	// SessionKeyByToken keys sessions by bearer token. The session record is a
	// revocable presence marker with a sliding TTL: signout deletes it, and a
	// token without a session record does not authenticate.
	SessionKeyByToken SessionKeyMode = "token"

	// SessionKeyByUser keys sessions by user id. The record holds profile data
	// (avatar, cart) shared across devices and survives signout.
	SessionKeyByUser SessionKeyMode = "user"
)

// CartItem is a single entry of a user's shopping cart.
type CartItem struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// Session is the server-side session payload stored in Redis. One shape
// serves both key modes; the mode decides which fields get populated.
type Session struct {
	UserID    int64      `json:"user_id"`
	Username  string     `json:"username,omitempty"`
	Email     string     `json:"email,omitempty"`
	AvatarURL string     `json:"avatar_url,omitempty"`
	Cart      []CartItem `json:"cart,omitempty"`
}
