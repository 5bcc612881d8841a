package dnsimple

import "context"

// Domain is a domain in an account, registered or only hosted.
type Domain struct {
	ID           int64   `json:"id"`
	AccountID    int64   `json:"account_id"`
	RegistrantID *int64  `json:"registrant_id"`
	Name         string  `json:"name"`
	UnicodeName  string  `json:"unicode_name"`
	State        string  `json:"state"`
	AutoRenew    bool    `json:"auto_renew"`
	PrivateWhois bool    `json:"private_whois"`
	ExpiresOn    *string `json:"expires_on"`
	ExpiresAt    *string `json:"expires_at"`
	CreatedAt    string  `json:"created_at"`
	UpdatedAt    string  `json:"updated_at"`
}

// DomainsService handles https://developer.dnsimple.com/v2/domains/
//
// domain arguments accept a domain name or a domain ID.
type DomainsService struct {
	client *Client
}

func (s *DomainsService) ListDomains(ctx context.Context, accountID int64, opts *DomainListOptions) (*Response[[]Domain], error) {
	return decodeData[[]Domain](s.client.Get(ctx, accountPath(accountID)+"/domains", opts))
}

// CreateDomain adds a domain to the account without registering it.
func (s *DomainsService) CreateDomain(ctx context.Context, accountID int64, name string) (*Response[Domain], error) {
	body := struct {
		Name string `json:"name"`
	}{name}

	return decodeData[Domain](s.client.Post(ctx, accountPath(accountID)+"/domains", body))
}

func (s *DomainsService) GetDomain(ctx context.Context, accountID int64, domain string) (*Response[Domain], error) {
	return decodeData[Domain](s.client.Get(ctx, domainPath(accountID, domain), nil))
}

// DeleteDomain removes the domain and all its records. The API answers 204.
func (s *DomainsService) DeleteDomain(ctx context.Context, accountID int64, domain string) (*EmptyResponse, error) {
	return s.client.Delete(ctx, domainPath(accountID, domain))
}
