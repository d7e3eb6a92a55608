package pondiuni

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// ErrNoProfile means the fetched page is not a faculty profile. Missing
// sections never cause it; only a missing name does.
var ErrNoProfile = errors.New("page does not contain a faculty profile")

// Assemble extracts the full profile from a parsed document. Every section
// extractor runs regardless of the others; a section that cannot be
// located simply stays empty.
func Assemble(ctx context.Context, doc *goquery.Document, nodeID, sourceURL string) (*FacultyProfile, error) {
	ctx, span := tracer.Start(ctx, "assemble:Assemble")
	defer span.End()
	span.SetAttributes(attribute.String("node_id", nodeID))

	name := ExtractName(doc)
	if strings.TrimSpace(name) == "" {
		span.SetStatus(codes.Error, "no profile name")
		return nil, fmt.Errorf("node %s: %w", nodeID, ErrNoProfile)
	}

	profile := NewFacultyProfile(nodeID, sourceURL)
	profile.Name = name
	profile.Designation = ExtractDesignation(doc)
	profile.Department = ExtractDepartment(doc)
	profile.School = ExtractSchool(doc)
	profile.Email = ExtractEmail(doc)
	profile.ProfileImageURL = ExtractProfileImageURL(doc)
	profile.ScrapedAt = time.Now().UTC()

	profile.Specialization = ExtractSpecialization(doc)
	profile.ResearchInterests = ExtractResearchInterests(doc)

	profile.Education = ExtractEducation(ctx, doc)
	profile.Awards = ExtractAwards(ctx, doc)
	profile.TeachingExperience = ExtractTeachingExperience(ctx, doc)
	profile.ResearchExperience = ExtractResearchExperience(ctx, doc)
	profile.IndustryExperience = ExtractIndustryExperience(ctx, doc)
	profile.Innovations = ExtractInnovations(ctx, doc)
	profile.Patents = ExtractPatents(ctx, doc)
	profile.UGCPapers, profile.OtherPapers = ExtractPapers(ctx, doc)
	profile.ConferencePapers = ExtractConferencePapers(ctx, doc)
	profile.AuthoredBooks = ExtractAuthoredBooks(ctx, doc)
	profile.EditedBooks = ExtractEditedBooks(ctx, doc)
	profile.Projects = ExtractProjects(ctx, doc)
	profile.Consultancies = ExtractConsultancies(ctx, doc)
	profile.ResearchGuidance = ExtractResearchGuidance(ctx, doc)
	profile.ConferenceSeminars = ExtractConferenceSeminars(ctx, doc)
	profile.Collaborations = ExtractCollaborations(ctx, doc)
	profile.Programmes = ExtractProgrammes(ctx, doc)

	return profile, nil
}

// ScrapeProfile fetches a node id and assembles its profile.
func (c *Client) ScrapeProfile(ctx context.Context, nodeID string) (*FacultyProfile, error) {
	ctx, span := tracer.Start(ctx, "client:ScrapeProfile")
	defer span.End()
	span.SetAttributes(attribute.String("node_id", nodeID))

	page, err := c.Fetch(ctx, nodeID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "fetch failed")
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page.HTML))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "parse failed")
		return nil, fmt.Errorf("parse profile html for node %s: %w", nodeID, err)
	}

	return Assemble(ctx, doc, nodeID, page.SourceURL)
}
