package catalog

import "github.com/jimezsa/scholarcli/internal/models"

var Countries = []string{
	models.All, "International", "USA", "UK", "Canada", "Australia", "Germany",
	"France", "Netherlands", "Sweden", "Norway", "Denmark", "Switzerland",
	"Austria", "Belgium", "Italy", "Spain", "Japan", "South Korea", "China",
	"Singapore", "New Zealand", "Ireland", "Finland", "Poland",
	"Czech Republic", "Hungary", "Portugal", "Greece", "Turkey", "UAE",
	"Saudi Arabia", "Qatar", "Malaysia", "Thailand", "India", "South Africa",
	"Ghana", "Nigeria", "Kenya", "Egypt", "Morocco", "Brazil", "Mexico",
	"Argentina", "Chile", "Colombia",
}

var DegreeLevels = []string{
	models.All, "High School", "Bachelor", "Master", "PhD", "Postdoctoral", "Any",
}

var Subjects = []string{
	models.All, "Any", "Engineering", "Computer Science", "Medicine", "Business",
	"Economics", "Law", "Science", "Mathematics", "Arts", "Humanities",
	"Social Sciences", "Education", "Agriculture", "Environmental Science",
	"Architecture", "Design", "Journalism", "Psychology", "Political Science",
	"International Relations", "Public Health", "Nursing", "Pharmacy",
	"Dentistry", "Veterinary Medicine", "Music", "Film", "Theater", "Sports",
}

// Options bundles the selectable values for each criterion.
type Options struct {
	Countries    []string `json:"countries"`
	DegreeLevels []string `json:"degree_levels"`
	Subjects     []string `json:"subjects"`
}

func AllOptions() Options {
	return Options{
		Countries:    Countries,
		DegreeLevels: DegreeLevels,
		Subjects:     Subjects,
	}
}

// Contains reports whether value is one of options.
func Contains(options []string, value string) bool {
	for _, option := range options {
		if option == value {
			return true
		}
	}
	return false
}
