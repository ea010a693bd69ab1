package model

// Go models for the JSON Resume convention (https://jsonresume.org/),
// restricted to the sections this generator renders.

type Location struct {
	City   string `json:"city,omitempty"`
	Region string `json:"region,omitempty"`
}

type Profile struct {
	Network  string `json:"network"`
	Username string `json:"username,omitempty"`
	URL      string `json:"url,omitempty"`
}

type Basics struct {
	Name     string    `json:"name"`
	Label    string    `json:"label,omitempty"`
	Image    string    `json:"image,omitempty"`
	Email    string    `json:"email,omitempty"`
	Phone    string    `json:"phone,omitempty"`
	URL      string    `json:"url,omitempty"`
	Summary  string    `json:"summary,omitempty"`
	Location *Location `json:"location,omitempty"`
	Profiles []Profile `json:"profiles,omitempty"`
}

// WorkEntry is one employment or engagement record. Name may carry a
// parenthetical mission/client annotation; an empty EndDate means the
// engagement is ongoing. Dates use the YYYY-MM convention.
type WorkEntry struct {
	Name       string   `json:"name"`
	Position   string   `json:"position"`
	StartDate  string   `json:"startDate,omitempty"`
	EndDate    string   `json:"endDate,omitempty"`
	Summary    string   `json:"summary,omitempty"`
	Highlights []string `json:"highlights,omitempty"`
}

type Education struct {
	Institution string `json:"institution,omitempty"`
	Area        string `json:"area,omitempty"`
	StudyType   string `json:"studyType,omitempty"`
	StartDate   string `json:"startDate,omitempty"`
	EndDate     string `json:"endDate,omitempty"`
}

type Certificate struct {
	Name string `json:"name"`
	Date string `json:"date,omitempty"`
}

type Language struct {
	Language string `json:"language"`
	Fluency  string `json:"fluency,omitempty"`
}

type Skill struct {
	Name     string   `json:"name"`
	Keywords []string `json:"keywords,omitempty"`
}

type Interest struct {
	Name     string   `json:"name"`
	Keywords []string `json:"keywords,omitempty"`
}

type Resume struct {
	Basics       Basics        `json:"basics"`
	Work         []WorkEntry   `json:"work,omitempty"`
	Education    []Education   `json:"education,omitempty"`
	Certificates []Certificate `json:"certificates,omitempty"`
	Languages    []Language    `json:"languages,omitempty"`
	Skills       []Skill       `json:"skills,omitempty"`
	Interests    []Interest    `json:"interests,omitempty"`
}
