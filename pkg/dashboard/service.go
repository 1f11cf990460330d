// Package dashboard serves the token-gated team dashboard and profile updates.
package dashboard

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"founderdesk/pkg/config"
	"founderdesk/pkg/roster"
	"founderdesk/pkg/token"
)

var (
	// ErrNotAuthorized means the token holder may not update the target member.
	ErrNotAuthorized = errors.New("not authorized to update this profile")
	// ErrNoEditableFields means the update carried no writable field.
	ErrNoEditableFields = errors.New("no editable fields in update")
)

// editableFields is the allow-list of member fields the update flow will write.
var editableFields = map[string]bool{
	roster.FieldMemberEmail:    true,
	roster.FieldMemberMobile:   true,
	roster.FieldMemberPosition: true,
	roster.FieldMemberUTS:      true,
}

// Dashboard is everything the renderer needs for one startup's page.
type Dashboard struct {
	Startup         roster.Startup
	Members         []roster.TeamMember
	CurrentMemberID string
	EditScope       config.EditScope
	Token           string
}

type DashboardService interface {
	View(ctx context.Context, signedToken string) (Dashboard, error)
	UpdateProfile(ctx context.Context, signedToken, memberID string, updates map[string]any) error
}

type dashboardService struct {
	startups roster.StartupRepository
	members  roster.TeamMemberRepository
	tokens   token.Service
	scope    config.EditScope
}

func NewDashboardService(
	startups roster.StartupRepository,
	members roster.TeamMemberRepository,
	tokens token.Service,
	scope config.EditScope,
) DashboardService {
	return &dashboardService{
		startups: startups,
		members:  members,
		tokens:   tokens,
		scope:    scope,
	}
}

// View verifies the token and loads the startup with its roster. Members are
// queried by the startup record's current name, not the name snapshot inside
// the token, so a renamed startup keeps its roster.
func (s *dashboardService) View(ctx context.Context, signedToken string) (Dashboard, error) {
	claims, err := s.tokens.Verify(signedToken)
	if err != nil {
		return Dashboard{}, err
	}

	startup, err := s.startups.GetByID(ctx, claims.StartupID)
	if err != nil {
		return Dashboard{}, fmt.Errorf("load startup: %w", err)
	}

	members, err := s.members.ListByStartupName(ctx, startup.Name)
	if err != nil {
		return Dashboard{}, fmt.Errorf("load team members: %w", err)
	}

	return Dashboard{
		Startup:         startup,
		Members:         members,
		CurrentMemberID: currentMemberID(members, claims.Email),
		EditScope:       s.scope,
		Token:           signedToken,
	}, nil
}

// UpdateProfile verifies the token, checks the target member belongs to the
// token's startup (and is the token holder under self scope), then writes the
// allow-listed fields.
func (s *dashboardService) UpdateProfile(ctx context.Context, signedToken, memberID string, updates map[string]any) error {
	claims, err := s.tokens.Verify(signedToken)
	if err != nil {
		return err
	}

	startup, err := s.startups.GetByID(ctx, claims.StartupID)
	if err != nil {
		return fmt.Errorf("load startup: %w", err)
	}

	member, err := s.members.GetByID(ctx, memberID)
	if err != nil {
		return fmt.Errorf("load team member: %w", err)
	}

	if member.StartupName != startup.Name {
		return ErrNotAuthorized
	}
	if s.scope == config.EditScopeSelf && !strings.EqualFold(member.Email, claims.Email) {
		return ErrNotAuthorized
	}

	fields := make(map[string]any, len(updates))
	for name, value := range updates {
		if editableFields[name] {
			fields[name] = value
		}
	}
	if len(fields) == 0 {
		return ErrNoEditableFields
	}

	if err := s.members.UpdateFields(ctx, memberID, fields); err != nil {
		return fmt.Errorf("update team member: %w", err)
	}
	return nil
}

// currentMemberID matches the token's email claim against the roster. The
// match is in-process, so it can afford to be case-insensitive.
func currentMemberID(members []roster.TeamMember, email string) string {
	for _, m := range members {
		if strings.EqualFold(m.Email, email) {
			return m.ID
		}
	}
	return ""
}
