package battle

// Gender of a roster member
type Gender string

// Genders
const (
	GenderMale       Gender = "M"
	GenderFemale     Gender = "F"
	GenderGenderless Gender = "N"
)

// MoveBuild is a move as written on a roster build
type MoveBuild struct {
	ID string `json:"id"`
	PP int    `json:"pp"`
}

// Build is the static specification of a roster member
type Build struct {
	Name    string      `json:"name"`
	Species string      `json:"species"`
	Gender  Gender      `json:"gender"`
	Level   int         `json:"level"`
	Nature  string      `json:"nature"`
	Ability string      `json:"ability"`
	Item    string      `json:"item"`
	EVs     Stats       `json:"evs"`
	IVs     Stats       `json:"ivs"`
	Moves   []MoveBuild `json:"moves"`
	Shiny   bool        `json:"shiny,omitempty"`
}

// Clone returns a copy that shares no memory with b
func (b Build) Clone() Build {
	b.Moves = append([]MoveBuild(nil), b.Moves...)
	return b
}

// CloneBuilds copies a roster build by build
func CloneBuilds(builds []Build) []Build {
	if builds == nil {
		return nil
	}
	out := make([]Build, len(builds))
	for i, b := range builds {
		out[i] = b.Clone()
	}
	return out
}

// PublicBuild is the part of a build revealed to the rival during team preview
type PublicBuild struct {
	Species string `json:"species"`
	Gender  Gender `json:"gender"`
}

// Public reduces a build to its public identity
func (b Build) Public() PublicBuild {
	return PublicBuild{Species: b.Species, Gender: b.Gender}
}
