package quiz

import (
	"fmt"
	"strings"
)

type (
	CCSSStance           string
	SecurityApproach     string
	EnvironmentStance    string
	GenderStance         string
	ExperiencePreference string
	Group                string
)

const (
	CCSSReforma    CCSSStance = "reforma"
	CCSSFortalecer CCSSStance = "fortalecer"
	CCSSPrivado    CCSSStance = "privado"

	ManoDura   SecurityApproach = "mano_dura"
	Prevencion SecurityApproach = "prevencion"
	Integral   SecurityApproach = "integral"

	AmbientePrimero   EnvironmentStance = "ambiente_primero"
	DesarrolloPrimero EnvironmentStance = "desarrollo_primero"
	Sostenible        EnvironmentStance = "sostenible"

	GeneroFavor       GenderStance = "favor"
	GeneroTradicional GenderStance = "tradicional"
	GeneroNeutral     GenderStance = "neutral"

	Nuevo       ExperiencePreference = "nuevo"
	Experiencia ExperiencePreference = "experiencia"
	Historial   ExperiencePreference = "historial"

	Trabajador  Group = "trabajador"
	Emprendedor Group = "emprendedor"
	Joven       Group = "joven"
	Pensionado  Group = "pensionado"
	Rural       Group = "rural"
	Urbano      Group = "urbano"
	Mujer       Group = "mujer"
)

// Answers holds one completed questionnaire. Zero values mean "not answered"
// and earn no bonus, except for Security, where anything other than mano_dura
// or prevencion is scored as integral.
type Answers struct {
	Priority1   CategoryID
	Priority2   CategoryID
	Economic    EconomicApproach
	CCSS        CCSSStance
	Security    SecurityApproach
	Environment EnvironmentStance
	Gender      GenderStance
	Experience  ExperiencePreference
	Groups      []Group
}

// HasGroup reports whether the voter selected the group.
func (a Answers) HasGroup(g Group) bool {
	for _, sel := range a.Groups {
		if sel == g {
			return true
		}
	}
	return false
}

// Set assigns the answer for a questionnaire key. Group answers accept several
// values separated by '+'.
func (a *Answers) Set(key, value string) error {
	q, ok := LookupQuestion(key)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownQuestion, key)
	}
	value = strings.TrimSpace(value)
	values := []string{value}
	if q.Multi {
		values = nil
		for _, v := range strings.Split(value, "+") {
			if v = strings.TrimSpace(v); v != "" {
				values = append(values, v)
			}
		}
	}
	for _, v := range values {
		if !q.Valid(v) {
			return fmt.Errorf("%w: %s=%q", ErrInvalidAnswer, key, v)
		}
	}

	switch key {
	case KeyPriority1:
		a.Priority1 = CategoryID(value)
	case KeyPriority2:
		a.Priority2 = CategoryID(value)
	case KeyEconomic:
		a.Economic = EconomicApproach(value)
	case KeyCCSS:
		a.CCSS = CCSSStance(value)
	case KeySecurity:
		a.Security = SecurityApproach(value)
	case KeyEnvironment:
		a.Environment = EnvironmentStance(value)
	case KeyGender:
		a.Gender = GenderStance(value)
	case KeyExperience:
		a.Experience = ExperiencePreference(value)
	case KeyGroups:
		a.Groups = make([]Group, 0, len(values))
		for _, v := range values {
			a.Groups = append(a.Groups, Group(v))
		}
	}
	return nil
}

// ParseAnswers reads answers written as "key=value,key=value".
// Keys not present stay unanswered.
func ParseAnswers(s string) (Answers, error) {
	var a Answers
	for _, pair := range strings.Split(s, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		key, value, ok := strings.Cut(pair, "=")
		if !ok {
			return Answers{}, fmt.Errorf("%w: %q is not key=value", ErrInvalidAnswer, pair)
		}
		if err := a.Set(strings.TrimSpace(key), value); err != nil {
			return Answers{}, err
		}
	}
	return a, nil
}
