package dnsimple

import (
	"fmt"
	"net/url"
)

// ListOptions selects a page and the sort order of a list endpoint.
// Zero values are not sent.
type ListOptions struct {
	Page    int    `url:"page,omitempty"`
	PerPage int    `url:"per_page,omitempty"`
	Sort    string `url:"sort,omitempty"`
}

// DomainListOptions filters ListDomains.
type DomainListOptions struct {
	ListOptions

	NameLike     string `url:"name_like,omitempty"`
	RegistrantID int64  `url:"registrant_id,omitempty"`
}

// path segment helpers

func accountPath(accountID int64) string {
	return fmt.Sprintf("/%d", accountID)
}

func domainPath(accountID int64, domain string) string {
	return fmt.Sprintf("%s/domains/%s", accountPath(accountID), url.PathEscape(domain))
}

func delegationPath(accountID int64, domain string) string {
	return fmt.Sprintf("%s/registrar/domains/%s/delegation", accountPath(accountID), url.PathEscape(domain))
}
