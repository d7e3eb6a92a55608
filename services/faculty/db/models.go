package db

type FacultyProfile struct {
	NodeID          string
	Name            string
	Designation     string
	Department      string
	School          string
	Email           string
	ProfileImageUrl string
	SourceUrl       string
	Sections        string
	ScrapedAt       int64
}
