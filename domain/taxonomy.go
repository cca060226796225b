package domain

// Skill is the technology an article is about
type Skill int

const (
	SkillJava Skill = iota + 1
	SkillSpring
	SkillNodeJS
	SkillReact
	SkillPython
	SkillGo
)

func (s Skill) String() string {
	switch s {
	case SkillJava:
		return "JAVA"
	case SkillSpring:
		return "SPRING"
	case SkillNodeJS:
		return "NODEJS"
	case SkillReact:
		return "REACT"
	case SkillPython:
		return "PYTHON"
	case SkillGo:
		return "GO"
	default:
		return "UNKNOWN"
	}
}

// Category is the kind of article
type Category int

const (
	CategoryError Category = iota + 1
	CategoryQuestion
	CategoryTip
)

func (c Category) String() string {
	switch c {
	case CategoryError:
		return "ERROR"
	case CategoryQuestion:
		return "QUESTION"
	case CategoryTip:
		return "TIP"
	default:
		return "UNKNOWN"
	}
}

// TaxonomyResolver maps numeric ids to taxonomy values.
// Both methods return ErrUnknownTaxonomy for an id outside the enumeration.
type TaxonomyResolver interface {
	ResolveSkill(id int) (Skill, error)
	ResolveCategory(id int) (Category, error)
}
