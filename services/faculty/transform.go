package faculty

import (
	"encoding/json"

	"facultyhub-backend/lib/scrapers/pondiuni"
)

// storedResearchExperience renames areaOfResearch to project, the name the
// storage schema uses for that column of research stints.
type storedResearchExperience struct {
	Designation string `json:"designation"`
	Department  string `json:"department"`
	Institution string `json:"institution"`
	Duration    string `json:"duration"`
	Project     string `json:"project"`
}

// storedSections is the JSON shape persisted in the sections column. It
// mirrors the scraped profile's section lists, with storage-side field
// renames applied.
type storedSections struct {
	Specialization    []string `json:"specialization"`
	ResearchInterests []string `json:"researchInterests"`

	Education          []pondiuni.EducationEntry            `json:"education"`
	Awards             []pondiuni.AwardEntry                `json:"awards"`
	TeachingExperience []pondiuni.ExperienceEntry           `json:"teachingExperience"`
	ResearchExperience []storedResearchExperience           `json:"researchExperience"`
	IndustryExperience []pondiuni.ExperienceEntry           `json:"industryExperience"`
	Innovations        []pondiuni.InnovationEntry           `json:"innovations"`
	Patents            []pondiuni.PatentEntry               `json:"patents"`
	UGCPapers          []pondiuni.PaperEntry                `json:"ugcPapers"`
	OtherPapers        []pondiuni.PaperEntry                `json:"otherPapers"`
	ConferencePapers   []pondiuni.ConferencePaperEntry      `json:"conferencePapers"`
	AuthoredBooks      []pondiuni.BookEntry                 `json:"authoredBooks"`
	EditedBooks        []pondiuni.BookEntry                 `json:"editedBooks"`
	Projects           []pondiuni.ProjectOrConsultancyEntry `json:"projects"`
	Consultancies      []pondiuni.ProjectOrConsultancyEntry `json:"consultancies"`
	ResearchGuidance   []pondiuni.ResearchGuidanceEntry     `json:"researchGuidance"`
	ConferenceSeminars []pondiuni.ConferenceSeminarEntry    `json:"conferenceSeminars"`
	Collaborations     []pondiuni.CollaborationEntry        `json:"collaborations"`
	Programmes         []pondiuni.ProgrammeEntry            `json:"programmes"`
}

func toStoredSections(p *pondiuni.FacultyProfile) storedSections {
	research := make([]storedResearchExperience, 0, len(p.ResearchExperience))
	for _, e := range p.ResearchExperience {
		research = append(research, storedResearchExperience{
			Designation: e.Designation,
			Department:  e.Department,
			Institution: e.Institution,
			Duration:    e.Duration,
			Project:     e.AreaOfResearch,
		})
	}
	return storedSections{
		Specialization:     p.Specialization,
		ResearchInterests:  p.ResearchInterests,
		Education:          p.Education,
		Awards:             p.Awards,
		TeachingExperience: p.TeachingExperience,
		ResearchExperience: research,
		IndustryExperience: p.IndustryExperience,
		Innovations:        p.Innovations,
		Patents:            p.Patents,
		UGCPapers:          p.UGCPapers,
		OtherPapers:        p.OtherPapers,
		ConferencePapers:   p.ConferencePapers,
		AuthoredBooks:      p.AuthoredBooks,
		EditedBooks:        p.EditedBooks,
		Projects:           p.Projects,
		Consultancies:      p.Consultancies,
		ResearchGuidance:   p.ResearchGuidance,
		ConferenceSeminars: p.ConferenceSeminars,
		Collaborations:     p.Collaborations,
		Programmes:         p.Programmes,
	}
}

func applyStoredSections(p *pondiuni.FacultyProfile, s storedSections) {
	research := make([]pondiuni.ExperienceEntry, 0, len(s.ResearchExperience))
	for _, e := range s.ResearchExperience {
		research = append(research, pondiuni.ExperienceEntry{
			Designation:    e.Designation,
			Department:     e.Department,
			Institution:    e.Institution,
			Duration:       e.Duration,
			AreaOfResearch: e.Project,
		})
	}
	p.Specialization = emptyIfNil(s.Specialization)
	p.ResearchInterests = emptyIfNil(s.ResearchInterests)
	p.Education = emptyIfNil(s.Education)
	p.Awards = emptyIfNil(s.Awards)
	p.TeachingExperience = emptyIfNil(s.TeachingExperience)
	p.ResearchExperience = research
	p.IndustryExperience = emptyIfNil(s.IndustryExperience)
	p.Innovations = emptyIfNil(s.Innovations)
	p.Patents = emptyIfNil(s.Patents)
	p.UGCPapers = emptyIfNil(s.UGCPapers)
	p.OtherPapers = emptyIfNil(s.OtherPapers)
	p.ConferencePapers = emptyIfNil(s.ConferencePapers)
	p.AuthoredBooks = emptyIfNil(s.AuthoredBooks)
	p.EditedBooks = emptyIfNil(s.EditedBooks)
	p.Projects = emptyIfNil(s.Projects)
	p.Consultancies = emptyIfNil(s.Consultancies)
	p.ResearchGuidance = emptyIfNil(s.ResearchGuidance)
	p.ConferenceSeminars = emptyIfNil(s.ConferenceSeminars)
	p.Collaborations = emptyIfNil(s.Collaborations)
	p.Programmes = emptyIfNil(s.Programmes)
}

func emptyIfNil[T any](list []T) []T {
	if list == nil {
		return []T{}
	}
	return list
}

// EncodeSections serializes the profile's section lists for the sections
// column.
func EncodeSections(p *pondiuni.FacultyProfile) (string, error) {
	raw, err := json.Marshal(toStoredSections(p))
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

// DecodeSections deserializes a sections column value back onto a profile.
func DecodeSections(p *pondiuni.FacultyProfile, raw string) error {
	var s storedSections
	if err := json.Unmarshal([]byte(raw), &s); err != nil {
		return err
	}
	applyStoredSections(p, s)
	return nil
}
