package faculty

import (
	"dario.cat/mergo"

	"facultyhub-backend/lib/scrapers/pondiuni"
)

// identity is the scalar subset that mergo fills from the stored record
// when a fresh scrape came back with gaps.
type identity struct {
	Name            string
	Designation     string
	Department      string
	School          string
	Email           string
	ProfileImageURL string
}

// Integrate merges a freshly scraped profile with the stored one. The
// fresh scrape wins everywhere it produced data; empty identity scalars
// are backfilled from the store, and each section list keeps stored
// entries the new scrape no longer found, deduplicated by the section's
// key field with the fresh entries first.
func Integrate(fresh, stored *pondiuni.FacultyProfile) (*pondiuni.FacultyProfile, error) {
	merged := *fresh

	id := identity{
		Name:            merged.Name,
		Designation:     merged.Designation,
		Department:      merged.Department,
		School:          merged.School,
		Email:           merged.Email,
		ProfileImageURL: merged.ProfileImageURL,
	}
	err := mergo.Merge(&id, identity{
		Name:            stored.Name,
		Designation:     stored.Designation,
		Department:      stored.Department,
		School:          stored.School,
		Email:           stored.Email,
		ProfileImageURL: stored.ProfileImageURL,
	})
	if err != nil {
		return nil, err
	}
	merged.Name = id.Name
	merged.Designation = id.Designation
	merged.Department = id.Department
	merged.School = id.School
	merged.Email = id.Email
	merged.ProfileImageURL = id.ProfileImageURL

	if len(merged.Specialization) == 0 {
		merged.Specialization = stored.Specialization
	}
	if len(merged.ResearchInterests) == 0 {
		merged.ResearchInterests = stored.ResearchInterests
	}

	merged.Education = mergeByKey(fresh.Education, stored.Education,
		func(e pondiuni.EducationEntry) string { return e.Degree + "|" + e.University })
	merged.Awards = mergeByKey(fresh.Awards, stored.Awards,
		func(e pondiuni.AwardEntry) string { return e.Title })
	merged.TeachingExperience = mergeByKey(fresh.TeachingExperience, stored.TeachingExperience,
		experienceKey)
	merged.ResearchExperience = mergeByKey(fresh.ResearchExperience, stored.ResearchExperience,
		experienceKey)
	merged.IndustryExperience = mergeByKey(fresh.IndustryExperience, stored.IndustryExperience,
		experienceKey)
	merged.Innovations = mergeByKey(fresh.Innovations, stored.Innovations,
		func(e pondiuni.InnovationEntry) string { return e.WorkName })
	merged.Patents = mergeByKey(fresh.Patents, stored.Patents,
		func(e pondiuni.PatentEntry) string { return e.Title })
	merged.UGCPapers = mergeByKey(fresh.UGCPapers, stored.UGCPapers, paperKey)
	merged.OtherPapers = mergeByKey(fresh.OtherPapers, stored.OtherPapers, paperKey)
	merged.ConferencePapers = mergeByKey(fresh.ConferencePapers, stored.ConferencePapers,
		func(e pondiuni.ConferencePaperEntry) string { return e.Title })
	merged.AuthoredBooks = mergeByKey(fresh.AuthoredBooks, stored.AuthoredBooks, bookKey)
	merged.EditedBooks = mergeByKey(fresh.EditedBooks, stored.EditedBooks, bookKey)
	merged.Projects = mergeByKey(fresh.Projects, stored.Projects, projectKey)
	merged.Consultancies = mergeByKey(fresh.Consultancies, stored.Consultancies, projectKey)
	merged.ResearchGuidance = mergeByKey(fresh.ResearchGuidance, stored.ResearchGuidance,
		guidanceKey)
	merged.ConferenceSeminars = mergeByKey(fresh.ConferenceSeminars, stored.ConferenceSeminars,
		func(e pondiuni.ConferenceSeminarEntry) string { return string(e.Kind) + "|" + e.Title })
	merged.Collaborations = mergeByKey(fresh.Collaborations, stored.Collaborations,
		func(e pondiuni.CollaborationEntry) string { return string(e.Kind) + "|" + e.Title })
	merged.Programmes = mergeByKey(fresh.Programmes, stored.Programmes,
		func(e pondiuni.ProgrammeEntry) string { return string(e.Kind) + "|" + e.Title })

	return &merged, nil
}

// mergeByKey keeps fresh entries in document order, then appends stored
// entries whose key is absent from the fresh list. Entries with an empty
// key are never treated as duplicates of each other.
func mergeByKey[T any](fresh, stored []T, key func(T) string) []T {
	out := make([]T, 0, len(fresh)+len(stored))
	seen := map[string]bool{}
	for _, e := range fresh {
		out = append(out, e)
		if k := key(e); k != "" {
			seen[k] = true
		}
	}
	for _, e := range stored {
		k := key(e)
		if k != "" && seen[k] {
			continue
		}
		out = append(out, e)
	}
	return out
}

func experienceKey(e pondiuni.ExperienceEntry) string {
	return e.Designation + "|" + e.Institution + "|" + e.Company
}

func paperKey(e pondiuni.PaperEntry) string {
	return e.Title
}

func bookKey(e pondiuni.BookEntry) string {
	if e.ISBN != "" {
		return e.ISBN
	}
	return e.Title
}

func projectKey(e pondiuni.ProjectOrConsultancyEntry) string {
	return e.Title
}

func guidanceKey(e pondiuni.ResearchGuidanceEntry) string {
	switch e.Kind {
	case pondiuni.GuidancePhD:
		return string(e.Kind) + "|" + e.StudentName
	case pondiuni.GuidancePostDoc:
		return string(e.Kind) + "|" + e.ScholarName
	default:
		return string(e.Kind) + "|" + e.Year + "|" + e.Degree
	}
}
