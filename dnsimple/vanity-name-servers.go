package dnsimple

import (
	"context"
	"fmt"
	"net/url"
)

// VanityNameServer is a name server under the customer's own domain.
type VanityNameServer struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	IPv4      string `json:"ipv4"`
	IPv6      string `json:"ipv6"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// VanityNameServersService handles https://developer.dnsimple.com/v2/vanity/
type VanityNameServersService struct {
	client *Client
}

func vanityPath(accountID int64, domain string) string {
	return fmt.Sprintf("%s/vanity/%s", accountPath(accountID), url.PathEscape(domain))
}

// EnableVanityNameServers returns the name servers now serving the domain.
func (s *VanityNameServersService) EnableVanityNameServers(ctx context.Context, accountID int64, domain string) (*Response[[]VanityNameServer], error) {
	return decodeData[[]VanityNameServer](s.client.Put(ctx, vanityPath(accountID, domain), nil))
}

func (s *VanityNameServersService) DisableVanityNameServers(ctx context.Context, accountID int64, domain string) (*EmptyResponse, error) {
	return s.client.Delete(ctx, vanityPath(accountID, domain))
}
