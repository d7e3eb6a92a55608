package faculty

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"facultyhub-backend/lib/scrapers/pondiuni"
	"facultyhub-backend/services/faculty/db"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("services/faculty")

// ErrNotFound means the node id has no stored profile.
var ErrNotFound = errors.New("profile not found")

type Service struct {
	db  *sql.DB
	qry *db.Queries
}

func NewService(database *sql.DB) Service {
	return Service{
		db:  database,
		qry: db.New(database),
	}
}

// OpenDatabase opens the sqlite store at path and applies the schema.
func OpenDatabase(path string) (*sql.DB, error) {
	database, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	if _, err := database.Exec(db.Schema); err != nil {
		database.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return database, nil
}

// Save upserts a scraped profile, integrating it with any stored version
// first. The read-integrate-write runs in one transaction so concurrent
// saves of the same node id cannot interleave.
func (s Service) Save(ctx context.Context, profile *pondiuni.FacultyProfile) (*pondiuni.FacultyProfile, error) {
	ctx, span := tracer.Start(ctx, "Save")
	defer span.End()
	span.SetAttributes(attribute.String("node_id", profile.NodeID))

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	defer tx.Rollback()
	txqry := s.qry.WithTx(tx)

	merged := profile
	row, err := txqry.GetProfile(ctx, profile.NodeID)
	switch {
	case err == nil:
		stored, derr := decodeRow(row)
		if derr != nil {
			span.RecordError(derr)
			span.SetStatus(codes.Error, derr.Error())
			return nil, derr
		}
		merged, err = Integrate(profile, stored)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return nil, err
		}
	case errors.Is(err, sql.ErrNoRows):
	default:
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	sections, err := EncodeSections(merged)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	err = txqry.UpsertProfile(ctx, db.UpsertProfileParams{
		NodeID:          merged.NodeID,
		Name:            merged.Name,
		Designation:     merged.Designation,
		Department:      merged.Department,
		School:          merged.School,
		Email:           merged.Email,
		ProfileImageUrl: merged.ProfileImageURL,
		SourceUrl:       merged.SourceURL,
		Sections:        sections,
		ScrapedAt:       merged.ScrapedAt.Unix(),
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	return merged, nil
}

// Get returns the stored profile for a node id.
func (s Service) Get(ctx context.Context, nodeID string) (*pondiuni.FacultyProfile, error) {
	ctx, span := tracer.Start(ctx, "Get")
	defer span.End()
	span.SetAttributes(attribute.String("node_id", nodeID))

	row, err := s.qry.GetProfile(ctx, nodeID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("node %s: %w", nodeID, ErrNotFound)
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	return decodeRow(row)
}

// ProfileSummary is the identity subset used by listings.
type ProfileSummary struct {
	NodeID      string
	Name        string
	Designation string
	Department  string
	School      string
	ScrapedAt   time.Time
}

// List returns identity summaries of every stored profile, optionally
// filtered by department.
func (s Service) List(ctx context.Context, department string) ([]ProfileSummary, error) {
	ctx, span := tracer.Start(ctx, "List")
	defer span.End()

	var rows []db.FacultyProfile
	var err error
	if department == "" {
		rows, err = s.qry.ListProfiles(ctx)
	} else {
		rows, err = s.qry.ListProfilesByDepartment(ctx, department)
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	out := make([]ProfileSummary, 0, len(rows))
	for _, row := range rows {
		out = append(out, ProfileSummary{
			NodeID:      row.NodeID,
			Name:        row.Name,
			Designation: row.Designation,
			Department:  row.Department,
			School:      row.School,
			ScrapedAt:   time.Unix(row.ScrapedAt, 0).UTC(),
		})
	}
	return out, nil
}

// Delete removes a stored profile.
func (s Service) Delete(ctx context.Context, nodeID string) error {
	ctx, span := tracer.Start(ctx, "Delete")
	defer span.End()
	span.SetAttributes(attribute.String("node_id", nodeID))

	return s.qry.DeleteProfile(ctx, nodeID)
}

func decodeRow(row db.FacultyProfile) (*pondiuni.FacultyProfile, error) {
	profile := pondiuni.NewFacultyProfile(row.NodeID, row.SourceUrl)
	profile.Name = row.Name
	profile.Designation = row.Designation
	profile.Department = row.Department
	profile.School = row.School
	profile.Email = row.Email
	profile.ProfileImageURL = row.ProfileImageUrl
	profile.ScrapedAt = time.Unix(row.ScrapedAt, 0).UTC()
	if err := DecodeSections(profile, row.Sections); err != nil {
		return nil, fmt.Errorf("decode sections for node %s: %w", row.NodeID, err)
	}
	return profile, nil
}
