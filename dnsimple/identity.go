package dnsimple

import "context"

// User is a DNSimple user.
type User struct {
	ID        int64  `json:"id"`
	Email     string `json:"email"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// WhoamiData tells who the token belongs to. A user token yields User,
// an account token Account.
type WhoamiData struct {
	User    *User    `json:"user"`
	Account *Account `json:"account"`
}

// IdentityService handles https://developer.dnsimple.com/v2/identity/
type IdentityService struct {
	client *Client
}

// Whoami retrieves the entity the client authenticates as.
func (s *IdentityService) Whoami(ctx context.Context) (*Response[WhoamiData], error) {
	return decodeData[WhoamiData](s.client.Get(ctx, "/whoami", nil))
}
