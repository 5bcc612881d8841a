package dnsimple

import "context"

// Account is a DNSimple account.
type Account struct {
	ID             int64  `json:"id"`
	Email          string `json:"email"`
	PlanIdentifier string `json:"plan_identifier"`
	CreatedAt      string `json:"created_at"`
	UpdatedAt      string `json:"updated_at"`
}

// AccountsService handles https://developer.dnsimple.com/v2/accounts/
type AccountsService struct {
	client *Client
}

// ListAccounts lists the accounts the authenticated user has access to.
func (s *AccountsService) ListAccounts(ctx context.Context, opts *ListOptions) (*Response[[]Account], error) {
	return decodeData[[]Account](s.client.Get(ctx, "/accounts", opts))
}
