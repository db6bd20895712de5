package robotevents

import "slices"

// Program describes a competition program and the grade divisions its world
// skills standings are split into.
type Program struct {
	ID     int
	Code   string
	Name   string
	Grades []Grade
}

// Well known program ids.
const (
	ProgramV5RC  = 1
	ProgramVURC  = 4
	ProgramVIQRC = 41
)

// DefaultPrograms is the grade configuration the app ships with. Grade order
// is the search order used when probing standings across grades.
func DefaultPrograms() Programs {
	return NewPrograms(
		Program{ID: ProgramV5RC, Code: "V5RC", Name: "VEX V5 Robotics Competition", Grades: []Grade{GradeMiddleSchool, GradeHighSchool}},
		Program{ID: ProgramVURC, Code: "VURC", Name: "VEX U Robotics Competition", Grades: []Grade{GradeCollege}},
		Program{ID: ProgramVIQRC, Code: "VIQRC", Name: "VEX IQ Robotics Competition", Grades: []Grade{GradeElementary, GradeMiddleSchool}},
	)
}

// Programs is an immutable lookup of Program by id.
type Programs struct {
	byID map[int]Program
}

func NewPrograms(programs ...Program) Programs {
	byID := make(map[int]Program, len(programs))
	for _, p := range programs {
		p.Grades = slices.Clone(p.Grades)
		byID[p.ID] = p
	}
	return Programs{byID: byID}
}

// Lookup returns the program registered under id.
func (p Programs) Lookup(id int) (Program, bool) {
	prog, ok := p.byID[id]
	if !ok {
		return Program{}, false
	}
	prog.Grades = slices.Clone(prog.Grades)
	return prog, true
}

// Grades returns the configured grade order for a program, or nil when the
// program is unknown.
func (p Programs) Grades(programID int) []Grade {
	prog, ok := p.byID[programID]
	if !ok {
		return nil
	}
	return slices.Clone(prog.Grades)
}
