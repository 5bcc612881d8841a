package dnsimple

import (
	"context"
	"net/url"
)

// Tld describes a top-level domain supported for registration.
type Tld struct {
	Tld                 string `json:"tld"`
	TldType             int    `json:"tld_type"`
	WhoisPrivacy        bool   `json:"whois_privacy"`
	AutoRenewOnly       bool   `json:"auto_renew_only"`
	Idn                 bool   `json:"idn"`
	MinimumRegistration int    `json:"minimum_registration"`
	RegistrationEnabled bool   `json:"registration_enabled"`
	RenewalEnabled      bool   `json:"renewal_enabled"`
	TransferEnabled     bool   `json:"transfer_enabled"`
	DnssecInterfaceType string `json:"dnssec_interface_type"`
}

// TldExtendedAttribute is an additional registrant attribute a TLD requires
// or accepts. Options is empty for free-form attributes.
type TldExtendedAttribute struct {
	Name        string                       `json:"name"`
	Description string                       `json:"description"`
	Required    bool                         `json:"required"`
	Options     []TldExtendedAttributeOption `json:"options"`
}

type TldExtendedAttributeOption struct {
	Title       string `json:"title"`
	Value       string `json:"value"`
	Description string `json:"description"`
}

// TldsService handles https://developer.dnsimple.com/v2/tlds/
type TldsService struct {
	client *Client
}

func (s *TldsService) ListTlds(ctx context.Context, opts *ListOptions) (*Response[[]Tld], error) {
	return decodeData[[]Tld](s.client.Get(ctx, "/tlds", opts))
}

func (s *TldsService) GetTld(ctx context.Context, tld string) (*Response[Tld], error) {
	return decodeData[Tld](s.client.Get(ctx, "/tlds/"+url.PathEscape(tld), nil))
}

func (s *TldsService) GetTldExtendedAttributes(ctx context.Context, tld string) (*Response[[]TldExtendedAttribute], error) {
	return decodeData[[]TldExtendedAttribute](s.client.Get(ctx, "/tlds/"+url.PathEscape(tld)+"/extended_attributes", nil))
}
