package dnsimple

import (
	"context"
	"fmt"
)

// Collaborator is a user invited to work on a domain. Until the invitation is
// accepted UserID and AcceptedAt are nil.
type Collaborator struct {
	ID         int64   `json:"id"`
	DomainID   int64   `json:"domain_id"`
	DomainName string  `json:"domain_name"`
	UserID     *int64  `json:"user_id"`
	UserEmail  string  `json:"user_email"`
	Invitation bool    `json:"invitation"`
	CreatedAt  string  `json:"created_at"`
	UpdatedAt  string  `json:"updated_at"`
	AcceptedAt *string `json:"accepted_at"`
}

func (s *DomainsService) ListCollaborators(ctx context.Context, accountID int64, domain string, opts *ListOptions) (*Response[[]Collaborator], error) {
	return decodeData[[]Collaborator](s.client.Get(ctx, domainPath(accountID, domain)+"/collaborators", opts))
}

// AddCollaborator shares the domain with email. An unknown address gets an
// invitation.
func (s *DomainsService) AddCollaborator(ctx context.Context, accountID int64, domain, email string) (*Response[Collaborator], error) {
	body := struct {
		Email string `json:"email"`
	}{email}

	return decodeData[Collaborator](s.client.Post(ctx, domainPath(accountID, domain)+"/collaborators", body))
}

func (s *DomainsService) RemoveCollaborator(ctx context.Context, accountID int64, domain string, collaboratorID int64) (*EmptyResponse, error) {
	return s.client.Delete(ctx, fmt.Sprintf("%s/collaborators/%d", domainPath(accountID, domain), collaboratorID))
}
