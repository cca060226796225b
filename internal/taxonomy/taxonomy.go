// Package taxonomy resolves the fixed skill and category enumerations by numeric id.
package taxonomy

import (
	"fmt"

	"github.com/Guyuepp/errorpool/domain"
)

type resolver struct {
	skills     map[int]domain.Skill
	categories map[int]domain.Category
}

var _ domain.TaxonomyResolver = (*resolver)(nil)

// NewResolver returns a resolver over the built-in enumerations
func NewResolver() *resolver {
	return &resolver{
		skills: map[int]domain.Skill{
			int(domain.SkillJava):   domain.SkillJava,
			int(domain.SkillSpring): domain.SkillSpring,
			int(domain.SkillNodeJS): domain.SkillNodeJS,
			int(domain.SkillReact):  domain.SkillReact,
			int(domain.SkillPython): domain.SkillPython,
			int(domain.SkillGo):     domain.SkillGo,
		},
		categories: map[int]domain.Category{
			int(domain.CategoryError):    domain.CategoryError,
			int(domain.CategoryQuestion): domain.CategoryQuestion,
			int(domain.CategoryTip):      domain.CategoryTip,
		},
	}
}

func (r *resolver) ResolveSkill(id int) (domain.Skill, error) {
	s, ok := r.skills[id]
	if !ok {
		return 0, fmt.Errorf("%w: skill %d", domain.ErrUnknownTaxonomy, id)
	}
	return s, nil
}

func (r *resolver) ResolveCategory(id int) (domain.Category, error) {
	c, ok := r.categories[id]
	if !ok {
		return 0, fmt.Errorf("%w: category %d", domain.ErrUnknownTaxonomy, id)
	}
	return c, nil
}
