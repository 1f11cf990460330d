package roster

import "time"

// Airtable field names for the two roster tables. The trailing asterisks are
// part of the field names in the base.
const (
	FieldStartupName    = "Startup Name (or working title)"
	FieldPrimaryContact = "Primary contact email"
	FieldStartupStatus  = "Startup status"
	FieldMagicLink      = "Magic Link"
	FieldTokenExpiresAt = "Token Expires At"
	FieldLink           = "Link"

	FieldMemberName     = "Team member ID"
	FieldMemberEmail    = "Personal email*"
	FieldMemberMobile   = "Mobile*"
	FieldMemberPosition = "Position at startup*"
	FieldMemberUTS      = "What is your association to UTS?*"
	FieldMemberStatus   = "Team Member Status"
	FieldMemberStartup  = "Startup*"
)

// Startup is a row of the startups table.
type Startup struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	PrimaryContact string `json:"primaryContact"`
	Status         string `json:"status"`
	MagicLink      string `json:"magicLink,omitempty"`
}

// TeamMember is a row of the team members table. StartupName is the backlink
// to the owning startup, held by name rather than record id.
type TeamMember struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	Mobile         string `json:"mobile"`
	Position       string `json:"position"`
	UTSAssociation string `json:"utsAssociation"`
	Status         string `json:"status"`
	StartupName    string `json:"-"`
}

// MagicLink pairs a shareable dashboard URL with its expiry, as persisted on
// the startup record.
type MagicLink struct {
	URL       string
	ExpiresAt time.Time
}
