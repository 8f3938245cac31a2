package sections

import "strings"

// Name identifies a canonical resume section.
type Name string

const (
	Contact    Name = "contact"
	Skills     Name = "skills"
	Experience Name = "experience"
	Education  Name = "education"
	Projects   Name = "projects"
	Other      Name = "other"
)

// KnownNames lists every canonical section in a fixed order, used when
// building complete score maps so missing sections are never dropped.
var KnownNames = []Name{Contact, Skills, Experience, Education, Projects, Other}

// DefaultLexicon maps lowercase heading synonyms to their canonical section.
func DefaultLexicon() map[string]Name {
	return map[string]Name{
		"contact":              Contact,
		"contact information":  Contact,
		"contact info":         Contact,
		"contact details":      Contact,
		"personal information": Contact,
		"personal details":     Contact,

		"skills":               Skills,
		"technical skills":     Skills,
		"core skills":          Skills,
		"key skills":           Skills,
		"skills and tools":     Skills,
		"competencies":         Skills,
		"core competencies":    Skills,
		"technologies":         Skills,
		"tools and technologies": Skills,
		"expertise":            Skills,

		"experience":              Experience,
		"work experience":         Experience,
		"professional experience": Experience,
		"relevant experience":     Experience,
		"employment":              Experience,
		"employment history":      Experience,
		"work history":            Experience,
		"internships":             Experience,
		"positions held":          Experience,

		"education":               Education,
		"educational background":  Education,
		"academic background":     Education,
		"academic qualifications": Education,
		"qualifications":          Education,
		"degrees":                 Education,

		"projects":          Projects,
		"personal projects": Projects,
		"academic projects": Projects,
		"key projects":      Projects,
		"notable projects":  Projects,
		"portfolio":         Projects,
	}
}

// matchHeading returns the canonical section for a cleaned line, or false.
func matchHeading(clean string, lexicon map[string]Name) (Name, bool) {
	name, ok := lexicon[strings.TrimSpace(clean)]
	return name, ok
}
