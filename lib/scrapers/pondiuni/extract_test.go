package pondiuni

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestExtractIdentity(t *testing.T) {
	doc := parseDoc(t, profileHTML)

	require.Equal(t, "Dr. R. Subramanian", ExtractName(doc))
	require.Equal(t, "Professor", ExtractDesignation(doc))
	require.Equal(t, "Computer Science", ExtractDepartment(doc))
	require.Equal(t, "School of Engineering and Technology", ExtractSchool(doc))
	require.Equal(t, "rsubramanian@pondiuni.ac.in", ExtractEmail(doc))
	require.Equal(t, "/sites/default/files/faculty/rsubramanian.jpg", ExtractProfileImageURL(doc))
	require.Equal(t,
		[]string{"Data Mining", "Machine Learning", "Soft Computing"},
		ExtractSpecialization(doc))
	require.Equal(t,
		[]string{"Deep Learning", "Text Mining"},
		ExtractResearchInterests(doc))
}

func TestExtractEducation(t *testing.T) {
	doc := parseDoc(t, profileHTML)

	got := ExtractEducation(context.Background(), doc)
	expected := []EducationEntry{
		{
			Degree:         "Ph.D",
			Title:          "Computer Science",
			University:     "Pondicherry University",
			GraduationYear: "2005",
		},
		{
			Degree:         "M.Tech",
			Title:          "Computer Science and Engineering",
			University:     "Anna University",
			GraduationYear: "1999",
		},
	}
	// the third row of the fixture repeats the header labels and must be
	// dropped by the leakage guard
	if diff := cmp.Diff(expected, got); diff != "" {
		t.Fatal(diff)
	}
}

func TestExtractAwards(t *testing.T) {
	doc := parseDoc(t, profileHTML)

	got := ExtractAwards(context.Background(), doc)
	require.Len(t, got, 1)
	require.Equal(t, AwardEntry{
		Title:  "Best Teacher Award",
		Type:   "State",
		Agency: "Govt. of Puducherry",
		Year:   "2018",
		Amount: "-",
	}, got[0])
}

func TestExtractExperience(t *testing.T) {
	doc := parseDoc(t, profileHTML)
	ctx := context.Background()

	teaching := ExtractTeachingExperience(ctx, doc)
	require.Len(t, teaching, 2)
	require.Equal(t, "Professor", teaching[0].Designation)
	require.Equal(t, "2012 - till date", teaching[0].Duration)

	research := ExtractResearchExperience(ctx, doc)
	require.Len(t, research, 1)
	require.Equal(t, "Data Mining", research[0].AreaOfResearch)
	require.Equal(t, "IIT Madras", research[0].Institution)

	industry := ExtractIndustryExperience(ctx, doc)
	require.Len(t, industry, 1)
	require.Equal(t, "Infosys Ltd.", industry[0].Company)
	require.Equal(t, "Application Development", industry[0].NatureOfWork)
}

func TestExtractPapersSeparatesUGC(t *testing.T) {
	doc := parseDoc(t, profileHTML)

	ugc, other := ExtractPapers(context.Background(), doc)
	require.Len(t, ugc, 2)
	require.Equal(t, "Outlier Detection in Data Streams", ugc[0].Title)
	require.Equal(t, "2.94", ugc[0].ImpactFactor)
	require.Equal(t, "Scalable Text Clustering", ugc[1].Title)

	// the UGC table must not be counted a second time by the general
	// journal pass
	require.Len(t, other, 1)
	require.Equal(t, "A Survey of Soft Computing Methods", other[0].Title)
}

func TestExtractConferencePapers(t *testing.T) {
	doc := parseDoc(t, profileHTML)

	got := ExtractConferencePapers(context.Background(), doc)
	require.Len(t, got, 1)
	require.Equal(t, "Incremental Clustering at Scale", got[0].Title)
	require.Equal(t, "ICDM 2017, New Orleans", got[0].ConferenceDetails)
}

func TestExtractBooks(t *testing.T) {
	doc := parseDoc(t, profileHTML)
	ctx := context.Background()

	authored := ExtractAuthoredBooks(ctx, doc)
	require.Len(t, authored, 1)
	// the authored table carries a serial column, so every field shifts
	require.Equal(t, BookEntry{
		SNo:       "1",
		Title:     "Advanced Data Mining",
		Authors:   "R. Subramanian",
		Publisher: "Springer",
		Year:      "2015",
		ISBN:      "978-81-203-1234-5",
	}, authored[0])

	edited := ExtractEditedBooks(ctx, doc)
	require.Len(t, edited, 1)
	// the edited table has no serial column and the title must stay in the
	// title field
	require.Equal(t, BookEntry{
		Title:     "Trends in Computing",
		Authors:   "R. Subramanian, V. Kumar",
		Publisher: "Narosa",
		Year:      "2013",
		ISBN:      "978-81-7319-555-2",
	}, edited[0])
}

func TestExtractProjectsAndConsultancies(t *testing.T) {
	doc := parseDoc(t, profileHTML)
	ctx := context.Background()

	projects := ExtractProjects(ctx, doc)
	require.Len(t, projects, 1)
	require.Equal(t, "Mining Social Media Streams", projects[0].Title)
	require.Equal(t, "DST", projects[0].SponsoredBy)
	require.Equal(t, "1", projects[0].SNo)

	consultancies := ExtractConsultancies(ctx, doc)
	require.Len(t, consultancies, 1)
	require.Equal(t, "Library Automation Review", consultancies[0].Title)
}

func TestExtractPatentsAndInnovations(t *testing.T) {
	doc := parseDoc(t, profileHTML)
	ctx := context.Background()

	patents := ExtractPatents(ctx, doc)
	require.Len(t, patents, 1)
	require.Equal(t, "Method for Stream Clustering", patents[0].Title)
	require.Equal(t, "Granted", patents[0].Status)
	require.Equal(t, "IN345678", patents[0].PatentNumber)

	innovations := ExtractInnovations(ctx, doc)
	require.Len(t, innovations, 1)
	require.Equal(t, "Adaptive Learning Portal", innovations[0].WorkName)
}

func TestExtractResearchGuidance(t *testing.T) {
	doc := parseDoc(t, profileHTML)

	got := ExtractResearchGuidance(context.Background(), doc)
	require.Len(t, got, 3)

	require.Equal(t, GuidancePG, got[0].Kind)
	// a four-digit year in the first cell is data, not a serial number
	require.Equal(t, "2019", got[0].Year)
	require.Equal(t, "M.Tech", got[0].Degree)
	require.Equal(t, "4", got[0].StudentsAwarded)

	require.Equal(t, GuidancePhD, got[1].Kind)
	require.Equal(t, "K. Priya", got[1].StudentName)
	require.Equal(t, "Stream Outlier Detection", got[1].ThesisTitle)
	require.Equal(t, "28/06/2021", got[1].DateAwarded)

	require.Equal(t, GuidancePostDoc, got[2].Kind)
	require.Equal(t, "M. Anand", got[2].ScholarName)
	require.Equal(t, "Dr. D.S. Kothari Fellowship", got[2].FellowshipTitle)
}

func TestExtractConferenceSeminars(t *testing.T) {
	doc := parseDoc(t, profileHTML)

	got := ExtractConferenceSeminars(context.Background(), doc)
	require.Len(t, got, 1)
	require.Equal(t, ConferenceInvitedTalk, got[0].Kind)
	require.Equal(t, "1", got[0].SNo)
	require.Equal(t, "Mining Massive Data", got[0].Title)
	require.Equal(t, "National", got[0].Level)
	require.Equal(t, "NIT Trichy", got[0].Venue)
	require.Equal(t, "CSE Department", got[0].OrganizedBy)
}

func TestExtractProgrammes(t *testing.T) {
	doc := parseDoc(t, profileHTML)

	got := ExtractProgrammes(context.Background(), doc)
	require.Len(t, got, 1)
	require.Equal(t, ProgrammeFacultyDevelopment, got[0].Kind)
	require.Equal(t, "Refresher Course in Computer Science", got[0].Title)
	require.Equal(t, "Participant", got[0].Role)
}

func TestExtractCollaborations(t *testing.T) {
	doc := parseDoc(t, profileHTML)

	got := ExtractCollaborations(context.Background(), doc)
	require.Len(t, got, 2)

	require.Equal(t, CollaborationAcademicAdmin, got[0].Kind)
	require.Equal(t, "Head of the Department", got[0].Title)
	require.Equal(t, "2016 - 2019", got[0].Period)

	require.Equal(t, CollaborationInstitutional, got[1].Kind)
	require.Equal(t, "MoU with IIT Madras", got[1].Title)
	require.Equal(t, "Joint Research", got[1].Nature)
	require.Equal(t, "IIT Madras", got[1].Institution)
}
