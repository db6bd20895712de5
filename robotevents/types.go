package robotevents

import "time"

// Grade is a competition division level used to partition skills standings.
type Grade string

const (
	GradeElementary   Grade = "Elementary"
	GradeMiddleSchool Grade = "Middle School"
	GradeHighSchool   Grade = "High School"
	GradeCollege      Grade = "College"
)

// IDRef is the id/name pair the API embeds for related resources.
type IDRef struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Code string `json:"code,omitempty"`
}

// Season is a yearly competition cycle of a program.
type Season struct {
	ID         int       `json:"id"`
	Name       string    `json:"name"`
	Program    IDRef     `json:"program"`
	Start      time.Time `json:"start"`
	End        time.Time `json:"end"`
	YearsStart int       `json:"years_start"`
	YearsEnd   int       `json:"years_end"`
}

// SkillsTeam is the team block of a world skills standing.
type SkillsTeam struct {
	ID           int    `json:"id"`
	Number       string `json:"team"`
	Name         string `json:"teamName"`
	Organization string `json:"organization,omitempty"`
	Region       string `json:"region,omitempty"`
	Country      string `json:"country,omitempty"`
	GradeLevel   string `json:"gradeLevel,omitempty"`
}

// SkillsScores holds the best combined run and its components.
type SkillsScores struct {
	Score          int `json:"score"`
	Programming    int `json:"programming"`
	Driver         int `json:"driver"`
	MaxProgramming int `json:"maxProgramming"`
	MaxDriver      int `json:"maxDriver"`
}

// SkillsRanking is a single row of the world skills standings.
type SkillsRanking struct {
	Rank   int          `json:"rank"`
	Team   SkillsTeam   `json:"team"`
	Event  IDRef        `json:"event"`
	Scores SkillsScores `json:"scores"`
}

// Location is the venue of an event.
type Location struct {
	Venue    string `json:"venue,omitempty"`
	City     string `json:"city,omitempty"`
	Region   string `json:"region,omitempty"`
	Country  string `json:"country,omitempty"`
	Postcode string `json:"postcode,omitempty"`
}

// Event is a competition a team registered for.
type Event struct {
	ID              int       `json:"id"`
	SKU             string    `json:"sku"`
	Name            string    `json:"name"`
	Start           time.Time `json:"start"`
	End             time.Time `json:"end"`
	Season          IDRef     `json:"season"`
	Program         IDRef     `json:"program"`
	Location        Location  `json:"location"`
	Level           string    `json:"level,omitempty"`
	EventType       string    `json:"event_type,omitempty"`
	Ongoing         bool      `json:"ongoing"`
	AwardsFinalized bool      `json:"awards_finalized"`
}

// TeamWinner names the team (and division) that received an award.
type TeamWinner struct {
	Division IDRef `json:"division"`
	Team     IDRef `json:"team"`
}

// Award is an award given at an event.
type Award struct {
	ID                int          `json:"id"`
	Event             IDRef        `json:"event"`
	Order             int          `json:"order"`
	Title             string       `json:"title"`
	Qualifications    []string     `json:"qualifications,omitempty"`
	TeamWinners       []TeamWinner `json:"teamWinners,omitempty"`
	IndividualWinners []string     `json:"individualWinners,omitempty"`
}
