// Package roster maps the startup and team member tables of the record store
// onto domain types.
package roster

import (
	"context"
	"errors"
	"time"

	"founderdesk/pkg/airtable"
)

var (
	ErrStartupNotFound = errors.New("startup not found")
	ErrMemberNotFound  = errors.New("team member not found")
)

// RecordStore is the slice of the Airtable client the repositories use.
type RecordStore interface {
	Select(ctx context.Context, table, formula string) ([]airtable.Record, error)
	Find(ctx context.Context, table, id string) (airtable.Record, error)
	Update(ctx context.Context, table, id string, fields map[string]any) (airtable.Record, error)
}

type StartupRepository interface {
	GetByPrimaryContact(ctx context.Context, email string) (Startup, error)
	GetByName(ctx context.Context, name string) (Startup, error)
	GetByID(ctx context.Context, id string) (Startup, error)
	SaveMagicLink(ctx context.Context, id string, link MagicLink) error
}

type TeamMemberRepository interface {
	GetByEmail(ctx context.Context, email string) (TeamMember, error)
	ListByStartupName(ctx context.Context, startupName string) ([]TeamMember, error)
	UpdateFields(ctx context.Context, id string, fields map[string]any) error
	GetByID(ctx context.Context, id string) (TeamMember, error)
}

type airtableStartupRepository struct {
	store RecordStore
	table string
}

func NewAirtableStartupRepository(store RecordStore, table string) StartupRepository {
	return &airtableStartupRepository{store: store, table: table}
}

func (r *airtableStartupRepository) GetByPrimaryContact(ctx context.Context, email string) (Startup, error) {
	return r.getByFormula(ctx, airtable.EqualsFormula(FieldPrimaryContact, email))
}

func (r *airtableStartupRepository) GetByName(ctx context.Context, name string) (Startup, error) {
	return r.getByFormula(ctx, airtable.EqualsFormula(FieldStartupName, name))
}

func (r *airtableStartupRepository) getByFormula(ctx context.Context, formula string) (Startup, error) {
	records, err := r.store.Select(ctx, r.table, formula)
	if err != nil {
		return Startup{}, err
	}
	if len(records) == 0 {
		return Startup{}, ErrStartupNotFound
	}
	return startupFromRecord(records[0]), nil
}

func (r *airtableStartupRepository) GetByID(ctx context.Context, id string) (Startup, error) {
	rec, err := r.store.Find(ctx, r.table, id)
	if err != nil {
		if errors.Is(err, airtable.ErrRecordNotFound) {
			return Startup{}, ErrStartupNotFound
		}
		return Startup{}, err
	}
	return startupFromRecord(rec), nil
}

func (r *airtableStartupRepository) SaveMagicLink(ctx context.Context, id string, link MagicLink) error {
	_, err := r.store.Update(ctx, r.table, id, map[string]any{
		FieldMagicLink:      link.URL,
		FieldLink:           link.URL,
		FieldTokenExpiresAt: link.ExpiresAt.UTC().Format(time.RFC3339),
	})
	if errors.Is(err, airtable.ErrRecordNotFound) {
		return ErrStartupNotFound
	}
	return err
}

func startupFromRecord(rec airtable.Record) Startup {
	return Startup{
		ID:             rec.ID,
		Name:           rec.String(FieldStartupName),
		PrimaryContact: rec.String(FieldPrimaryContact),
		Status:         rec.String(FieldStartupStatus),
		MagicLink:      rec.String(FieldMagicLink),
	}
}

type airtableTeamMemberRepository struct {
	store RecordStore
	table string
}

func NewAirtableTeamMemberRepository(store RecordStore, table string) TeamMemberRepository {
	return &airtableTeamMemberRepository{store: store, table: table}
}

func (r *airtableTeamMemberRepository) GetByEmail(ctx context.Context, email string) (TeamMember, error) {
	records, err := r.store.Select(ctx, r.table, airtable.EqualsFormula(FieldMemberEmail, email))
	if err != nil {
		return TeamMember{}, err
	}
	if len(records) == 0 {
		return TeamMember{}, ErrMemberNotFound
	}
	return memberFromRecord(records[0]), nil
}

func (r *airtableTeamMemberRepository) ListByStartupName(ctx context.Context, startupName string) ([]TeamMember, error) {
	records, err := r.store.Select(ctx, r.table, airtable.EqualsFormula(FieldMemberStartup, startupName))
	if err != nil {
		return nil, err
	}
	members := make([]TeamMember, 0, len(records))
	for _, rec := range records {
		members = append(members, memberFromRecord(rec))
	}
	return members, nil
}

func (r *airtableTeamMemberRepository) UpdateFields(ctx context.Context, id string, fields map[string]any) error {
	_, err := r.store.Update(ctx, r.table, id, fields)
	if errors.Is(err, airtable.ErrRecordNotFound) {
		return ErrMemberNotFound
	}
	return err
}

func (r *airtableTeamMemberRepository) GetByID(ctx context.Context, id string) (TeamMember, error) {
	rec, err := r.store.Find(ctx, r.table, id)
	if err != nil {
		if errors.Is(err, airtable.ErrRecordNotFound) {
			return TeamMember{}, ErrMemberNotFound
		}
		return TeamMember{}, err
	}
	return memberFromRecord(rec), nil
}

func memberFromRecord(rec airtable.Record) TeamMember {
	return TeamMember{
		ID:             rec.ID,
		Name:           rec.String(FieldMemberName),
		Email:          rec.String(FieldMemberEmail),
		Mobile:         rec.String(FieldMemberMobile),
		Position:       rec.String(FieldMemberPosition),
		UTSAssociation: rec.String(FieldMemberUTS),
		Status:         rec.String(FieldMemberStatus),
		StartupName:    rec.String(FieldMemberStartup),
	}
}
