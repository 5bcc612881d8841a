package dnsimple

import "context"

// Delegation is the list of name servers a registered domain delegates to.
type Delegation []string

// payload encodes a nil list as [] rather than null.
func (d Delegation) payload() Delegation {
	if d == nil {
		return Delegation{}
	}

	return d
}

// RegistrarService handles the delegation part of
// https://developer.dnsimple.com/v2/registrar/delegation/
type RegistrarService struct {
	client *Client
}

func (s *RegistrarService) GetDomainDelegation(ctx context.Context, accountID int64, domain string) (*Response[Delegation], error) {
	return decodeData[Delegation](s.client.Get(ctx, delegationPath(accountID, domain), nil))
}

// ChangeDomainDelegation points the domain to the given name servers.
func (s *RegistrarService) ChangeDomainDelegation(ctx context.Context, accountID int64, domain string, nameServers Delegation) (*Response[Delegation], error) {
	return decodeData[Delegation](s.client.Put(ctx, delegationPath(accountID, domain), nameServers.payload()))
}

// ChangeDomainDelegationToVanity delegates the domain to vanity name servers
// with the given names.
func (s *RegistrarService) ChangeDomainDelegationToVanity(ctx context.Context, accountID int64, domain string, nameServers Delegation) (*Response[[]VanityNameServer], error) {
	return decodeData[[]VanityNameServer](s.client.Put(ctx, delegationPath(accountID, domain)+"/vanity", nameServers.payload()))
}

// ChangeDomainDelegationFromVanity reverts to the default name servers.
func (s *RegistrarService) ChangeDomainDelegationFromVanity(ctx context.Context, accountID int64, domain string) (*EmptyResponse, error) {
	return s.client.Delete(ctx, delegationPath(accountID, domain)+"/vanity")
}
