// Package magiclink implements email lookup and magic-link issuance.
package magiclink

import (
	"context"
	"errors"
	"fmt"
	"time"

	"founderdesk/pkg/roster"
	"founderdesk/pkg/sendemail"
	"founderdesk/pkg/token"
)

var (
	ErrEmailNotFound       = errors.New("email not found in our records")
	ErrNoStartupAssociated = errors.New("no startup associated with this email")
	ErrStartupNotFound     = errors.New("startup not found")
)

// Link is the outcome of a successful lookup.
type Link struct {
	URL       string    `json:"redirectUrl"`
	ExpiresAt time.Time `json:"expiresAt"`
}

type MagicLinkService interface {
	LookupEmail(ctx context.Context, email string) (Link, error)
}

type magicLinkService struct {
	startups roster.StartupRepository
	members  roster.TeamMemberRepository
	tokens   token.Service
	email    sendemail.EmailService
	baseURL  string
	ttl      time.Duration
	now      func() time.Time
}

// NewMagicLinkService wires the lookup flow. baseURL is the externally
// reachable origin the dashboard link is built on; ttl is the token lifetime.
func NewMagicLinkService(
	startups roster.StartupRepository,
	members roster.TeamMemberRepository,
	tokens token.Service,
	email sendemail.EmailService,
	baseURL string,
	ttl time.Duration,
) MagicLinkService {
	return &magicLinkService{
		startups: startups,
		members:  members,
		tokens:   tokens,
		email:    email,
		baseURL:  baseURL,
		ttl:      ttl,
		now:      time.Now,
	}
}

// LookupEmail resolves an email to a startup, issues a fresh token, persists
// the link on the startup record and emails it. Emails are matched exactly as
// stored, no normalization.
func (s *magicLinkService) LookupEmail(ctx context.Context, email string) (Link, error) {
	startup, err := s.resolveStartup(ctx, email)
	if err != nil {
		return Link{}, err
	}

	signed, err := s.tokens.Issue(startup.ID, startup.Name, email, s.ttl)
	if err != nil {
		return Link{}, fmt.Errorf("issue token: %w", err)
	}

	link := Link{
		URL:       s.baseURL + "/dashboard/" + signed,
		ExpiresAt: s.now().Add(s.ttl),
	}

	// Last-issued-wins: the stored link always reflects the newest token.
	if err := s.startups.SaveMagicLink(ctx, startup.ID, roster.MagicLink{
		URL:       link.URL,
		ExpiresAt: link.ExpiresAt,
	}); err != nil {
		return Link{}, fmt.Errorf("save magic link: %w", err)
	}

	if err := s.sendLinkEmail(email, startup.Name, link); err != nil {
		return Link{}, fmt.Errorf("send magic link email: %w", err)
	}

	return link, nil
}

// resolveStartup finds the startup for an email: directly by primary contact,
// otherwise through a team member's startup backlink.
func (s *magicLinkService) resolveStartup(ctx context.Context, email string) (roster.Startup, error) {
	startup, err := s.startups.GetByPrimaryContact(ctx, email)
	if err == nil {
		return startup, nil
	}
	if !errors.Is(err, roster.ErrStartupNotFound) {
		return roster.Startup{}, err
	}

	member, err := s.members.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, roster.ErrMemberNotFound) {
			return roster.Startup{}, ErrEmailNotFound
		}
		return roster.Startup{}, err
	}
	if member.StartupName == "" {
		return roster.Startup{}, ErrNoStartupAssociated
	}

	startup, err = s.startups.GetByName(ctx, member.StartupName)
	if err != nil {
		if errors.Is(err, roster.ErrStartupNotFound) {
			return roster.Startup{}, ErrStartupNotFound
		}
		return roster.Startup{}, err
	}
	return startup, nil
}

func (s *magicLinkService) sendLinkEmail(toEmail, startupName string, link Link) error {
	subject := "Your dashboard link for " + startupName
	minutes := int(time.Until(link.ExpiresAt).Round(time.Minute) / time.Minute)
	plainTextContent := fmt.Sprintf("Your dashboard link: %s (valid for about %d minutes)", link.URL, minutes)
	htmlContent := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px;">
			<h2>Your %s dashboard</h2>
			<p>Click the link below to open your team dashboard:</p>
			<p><a href="%s">%s</a></p>
			<p>This link expires at %s.</p>
			<p>If you didn't request this link, please ignore this email.</p>
		</div>
	`, startupName, link.URL, link.URL, link.ExpiresAt.Format(time.RFC1123))

	return s.email.SendEmail(subject, toEmail, plainTextContent, htmlContent)
}
