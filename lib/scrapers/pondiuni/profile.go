package pondiuni

import "time"

// FacultyProfile is the full nested record produced by one scrape. Every
// section slice is always non-nil so downstream merging can treat "not
// found" uniformly as an empty list.
type FacultyProfile struct {
	Name            string `json:"name"`
	Designation     string `json:"designation"`
	Department      string `json:"department"`
	School          string `json:"school"`
	Email           string `json:"email"`
	ProfileImageURL string `json:"profileImageUrl"`
	SourceURL       string `json:"sourceUrl"`
	NodeID          string `json:"nodeId"`

	ScrapedAt time.Time `json:"scrapedAt"`

	Specialization    []string `json:"specialization"`
	ResearchInterests []string `json:"researchInterests"`

	Education          []EducationEntry           `json:"education"`
	Awards             []AwardEntry               `json:"awards"`
	TeachingExperience []ExperienceEntry          `json:"teachingExperience"`
	ResearchExperience []ExperienceEntry          `json:"researchExperience"`
	IndustryExperience []ExperienceEntry          `json:"industryExperience"`
	Innovations        []InnovationEntry          `json:"innovations"`
	Patents            []PatentEntry              `json:"patents"`
	UGCPapers          []PaperEntry               `json:"ugcPapers"`
	OtherPapers        []PaperEntry               `json:"otherPapers"`
	ConferencePapers   []ConferencePaperEntry     `json:"conferencePapers"`
	AuthoredBooks      []BookEntry                `json:"authoredBooks"`
	EditedBooks        []BookEntry                `json:"editedBooks"`
	Projects           []ProjectOrConsultancyEntry `json:"projects"`
	Consultancies      []ProjectOrConsultancyEntry `json:"consultancies"`
	ResearchGuidance   []ResearchGuidanceEntry    `json:"researchGuidance"`
	ConferenceSeminars []ConferenceSeminarEntry   `json:"conferenceSeminars"`
	Collaborations     []CollaborationEntry       `json:"collaborations"`
	Programmes         []ProgrammeEntry           `json:"programmes"`
}

type EducationEntry struct {
	Degree         string `json:"degree"`
	Title          string `json:"title"`
	University     string `json:"university"`
	GraduationYear string `json:"graduationYear"`
}

type AwardEntry struct {
	Title  string `json:"title"`
	Type   string `json:"type"`
	Agency string `json:"agency"`
	Year   string `json:"year"`
	Amount string `json:"amount"`
}

// ExperienceEntry covers teaching, research and industry stints; the
// populated subset of fields differs per variant.
type ExperienceEntry struct {
	Designation    string `json:"designation"`
	Department     string `json:"department"`
	Institution    string `json:"institution"`
	Duration       string `json:"duration"`
	AreaOfResearch string `json:"areaOfResearch,omitempty"`
	Company        string `json:"company,omitempty"`
	NatureOfWork   string `json:"natureOfWork,omitempty"`
}

type InnovationEntry struct {
	WorkName       string `json:"workName"`
	Specialization string `json:"specialization"`
	Remarks        string `json:"remarks"`
}

type PatentEntry struct {
	Title               string `json:"title"`
	Status              string `json:"status"`
	PatentNumber        string `json:"patentNumber"`
	YearOfAward         string `json:"yearOfAward"`
	Type                string `json:"type"`
	CommercializedStatus string `json:"commercializedStatus"`
}

// PaperEntry is used for UGC-listed and other journal papers alike.
type PaperEntry struct {
	Title            string `json:"title"`
	Authors          string `json:"authors"`
	JournalName      string `json:"journalName"`
	VolumeIssuePages string `json:"volumeIssuePages"`
	Year             string `json:"year"`
	ImpactFactor     string `json:"impactFactor"`
}

type ConferencePaperEntry struct {
	Title             string `json:"title"`
	Authors           string `json:"authors"`
	ConferenceDetails string `json:"conferenceDetails"`
	PageNos           string `json:"pageNos"`
	Year              string `json:"year"`
}

type BookEntry struct {
	SNo       string `json:"sno"`
	Title     string `json:"title"`
	Authors   string `json:"authors"`
	Publisher string `json:"publisher"`
	Year      string `json:"year"`
	ISBN      string `json:"isbn"`
}

type ProjectOrConsultancyEntry struct {
	SNo              string `json:"sno"`
	Title            string `json:"title"`
	SponsoredBy      string `json:"sponsoredBy"`
	Period           string `json:"period"`
	SanctionedAmount string `json:"sanctionedAmount"`
	Year             string `json:"year"`
}

type GuidanceKind string

const (
	GuidancePG      GuidanceKind = "pg"
	GuidancePhD     GuidanceKind = "phd"
	GuidancePostDoc GuidanceKind = "postdoc"
)

// ResearchGuidanceEntry is a tagged union over the PG / PhD / PostDoc
// shapes; Kind decides which field subset is meaningful.
type ResearchGuidanceEntry struct {
	Kind GuidanceKind `json:"kind"`

	// pg
	Year            string `json:"year,omitempty"`
	Degree          string `json:"degree,omitempty"`
	StudentsAwarded string `json:"studentsAwarded,omitempty"`
	Department      string `json:"department,omitempty"`

	// phd
	StudentName           string `json:"studentName,omitempty"`
	RegistrationDate      string `json:"registrationDate,omitempty"`
	RegistrationNo        string `json:"registrationNo,omitempty"`
	ThesisTitle           string `json:"thesisTitle,omitempty"`
	ThesisSubmittedStatus string `json:"thesisSubmittedStatus,omitempty"`
	ThesisSubmittedDate   string `json:"thesisSubmittedDate,omitempty"`
	VivaVoceCompletedStatus string `json:"vivavoceCompletedStatus,omitempty"`
	DateAwarded           string `json:"dateAwarded,omitempty"`

	// postdoc
	ScholarName      string `json:"scholarName,omitempty"`
	Designation      string `json:"designation,omitempty"`
	FundingAgency    string `json:"fundingAgency,omitempty"`
	FellowshipTitle  string `json:"fellowshipTitle,omitempty"`
	YearOfJoining    string `json:"yearOfJoining,omitempty"`
	YearOfCompletion string `json:"yearOfCompletion,omitempty"`
}

type ConferenceKind string

const (
	ConferenceELecture         ConferenceKind = "e-lecture"
	ConferenceOnlineEducation  ConferenceKind = "online-education"
	ConferenceInvitedTalk      ConferenceKind = "invited-talk"
	ConferenceOrganized        ConferenceKind = "organized-conference"
	ConferenceWorkshopOrganized ConferenceKind = "organized-workshop"
)

// ConferenceSeminarEntry shares a sno+title+dates+level core across its
// five variants.
type ConferenceSeminarEntry struct {
	Kind ConferenceKind `json:"kind"`

	SNo   string `json:"sno"`
	Title string `json:"title"`
	Dates string `json:"dates"`
	Level string `json:"level"`

	Venue        string `json:"venue,omitempty"`
	OrganizedBy  string `json:"organizedBy,omitempty"`
	Participants string `json:"participants,omitempty"`
	Role         string `json:"role,omitempty"`
}

type CollaborationKind string

const (
	CollaborationAcademicAdmin CollaborationKind = "academic-administration"
	CollaborationCoCurricular  CollaborationKind = "co-curricular"
	CollaborationInstitutional CollaborationKind = "institutional"
)

type CollaborationEntry struct {
	Kind CollaborationKind `json:"kind"`

	SNo         string `json:"sno"`
	Title       string `json:"title"`
	Period      string `json:"period"`
	Institution string `json:"institution,omitempty"`
	Nature      string `json:"nature,omitempty"`
	Details     string `json:"details,omitempty"`
}

type ProgrammeKind string

const (
	ProgrammeFacultyDevelopment   ProgrammeKind = "faculty-development"
	ProgrammeExecutiveDevelopment ProgrammeKind = "executive-development"
	ProgrammeSpecial              ProgrammeKind = "special"
	ProgrammeARPIT                ProgrammeKind = "arpit"
)

type ProgrammeEntry struct {
	Kind ProgrammeKind `json:"kind"`

	SNo          string `json:"sno"`
	Title        string `json:"title"`
	Dates        string `json:"dates"`
	Venue        string `json:"venue,omitempty"`
	Participants string `json:"participants,omitempty"`
	Role         string `json:"role,omitempty"`
}

// NewFacultyProfile returns a profile with every section initialized to an
// empty list.
func NewFacultyProfile(nodeID, sourceURL string) *FacultyProfile {
	return &FacultyProfile{
		NodeID:    nodeID,
		SourceURL: sourceURL,

		Specialization:    []string{},
		ResearchInterests: []string{},

		Education:          []EducationEntry{},
		Awards:             []AwardEntry{},
		TeachingExperience: []ExperienceEntry{},
		ResearchExperience: []ExperienceEntry{},
		IndustryExperience: []ExperienceEntry{},
		Innovations:        []InnovationEntry{},
		Patents:            []PatentEntry{},
		UGCPapers:          []PaperEntry{},
		OtherPapers:        []PaperEntry{},
		ConferencePapers:   []ConferencePaperEntry{},
		AuthoredBooks:      []BookEntry{},
		EditedBooks:        []BookEntry{},
		Projects:           []ProjectOrConsultancyEntry{},
		Consultancies:      []ProjectOrConsultancyEntry{},
		ResearchGuidance:   []ResearchGuidanceEntry{},
		ConferenceSeminars: []ConferenceSeminarEntry{},
		Collaborations:     []CollaborationEntry{},
		Programmes:         []ProgrammeEntry{},
	}
}
