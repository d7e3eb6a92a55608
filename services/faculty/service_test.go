package faculty

import (
	"context"
	"testing"
	"time"

	"facultyhub-backend/lib/scrapers/pondiuni"
	"facultyhub-backend/lib/testutil"
	"facultyhub-backend/services/faculty/db"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"
)

func setupService(t *testing.T) Service {
	res, cleanup := testutil.SetupService(t, testutil.ServiceParams{
		Name:     "faculty",
		DbSchema: db.Schema,
	})
	t.Cleanup(cleanup)
	t.Cleanup(func() { res.DB.Close() })
	return NewService(res.DB)
}

func sampleProfile() *pondiuni.FacultyProfile {
	p := pondiuni.NewFacultyProfile("1234", "https://www.pondiuni.edu.in/?q=node/1234")
	p.Name = "Dr. R. Subramanian"
	p.Designation = "Professor"
	p.Department = "Computer Science"
	p.School = "School of Engineering and Technology"
	p.Email = "rsubramanian@pondiuni.ac.in"
	p.ScrapedAt = time.Now().UTC().Truncate(time.Second)
	p.Specialization = []string{"Data Mining"}
	p.Education = []pondiuni.EducationEntry{
		{Degree: "Ph.D", Title: "CS", University: "PU", GraduationYear: "2005"},
	}
	p.ResearchExperience = []pondiuni.ExperienceEntry{
		{Designation: "RA", Institution: "IIT Madras", Duration: "2004 - 2006", AreaOfResearch: "Data Mining"},
	}
	p.UGCPapers = []pondiuni.PaperEntry{
		{Title: "Outlier Detection", Authors: "RS", JournalName: "KAIS", Year: "2019"},
	}
	return p
}

func TestSaveGetRoundTrip(t *testing.T) {
	service := setupService(t)
	ctx := context.Background()

	saved, err := service.Save(ctx, sampleProfile())
	require.NoError(t, err)

	got, err := service.Get(ctx, "1234")
	require.NoError(t, err)
	if diff := cmp.Diff(saved, got); diff != "" {
		t.Fatal(diff)
	}
	// the research experience area survives the storage rename round trip
	require.Equal(t, "Data Mining", got.ResearchExperience[0].AreaOfResearch)
}

func TestSaveMergesWithStored(t *testing.T) {
	service := setupService(t)
	ctx := context.Background()

	_, err := service.Save(ctx, sampleProfile())
	require.NoError(t, err)

	update := sampleProfile()
	update.Designation = ""
	update.UGCPapers = []pondiuni.PaperEntry{
		{Title: "Scalable Text Clustering", Authors: "RS", JournalName: "PRL", Year: "2018"},
	}

	merged, err := service.Save(ctx, update)
	require.NoError(t, err)
	require.Equal(t, "Professor", merged.Designation)
	require.Len(t, merged.UGCPapers, 2)
	require.Equal(t, "Scalable Text Clustering", merged.UGCPapers[0].Title)
	require.Equal(t, "Outlier Detection", merged.UGCPapers[1].Title)

	got, err := service.Get(ctx, "1234")
	require.NoError(t, err)
	if diff := cmp.Diff(merged, got, cmpopts.EquateEmpty()); diff != "" {
		t.Fatal(diff)
	}
}

func TestGetMissing(t *testing.T) {
	service := setupService(t)

	_, err := service.Get(context.Background(), "9999")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestListAndDelete(t *testing.T) {
	service := setupService(t)
	ctx := context.Background()

	_, err := service.Save(ctx, sampleProfile())
	require.NoError(t, err)

	other := sampleProfile()
	other.NodeID = "5678"
	other.Name = "Dr. A. Benedict"
	other.Department = "Physics"
	_, err = service.Save(ctx, other)
	require.NoError(t, err)

	all, err := service.List(ctx, "")
	require.NoError(t, err)
	require.Len(t, all, 2)
	// ordered by name
	require.Equal(t, "Dr. A. Benedict", all[0].Name)

	physics, err := service.List(ctx, "Physics")
	require.NoError(t, err)
	require.Len(t, physics, 1)
	require.Equal(t, "5678", physics[0].NodeID)

	require.NoError(t, service.Delete(ctx, "5678"))
	all, err = service.List(ctx, "")
	require.NoError(t, err)
	require.Len(t, all, 1)
}
