package quiz

import (
	"cmp"
	"log/slog"
	"math"
	"slices"

	"github.com/poiesic/voto/core"
	"github.com/poiesic/voto/corpus"
)

const (
	priority1Points = 3.0
	priority2Points = 2.0
	approachPoints  = 2.0
	balancePoints   = 0.5

	// topicMentionScale turns a category's mention count into points, capped at topicPointsCap.
	topicMentionScale = 50.0
	topicPointsCap    = 2.0
)

// Score accumulates one candidate's points and the reasons behind them.
type Score struct {
	Total        float64
	Reasons      []string
	Coincidences []string
}

// Contribution is what a single rule adds to a Score.
type Contribution struct {
	Points      float64
	Reason      string
	Coincidence string
}

// Add returns a new Score with the contribution applied; s is left untouched.
func (s Score) Add(c Contribution) Score {
	out := Score{
		Total:        s.Total + c.Points,
		Reasons:      slices.Clone(s.Reasons),
		Coincidences: slices.Clone(s.Coincidences),
	}
	if c.Reason != "" {
		out.Reasons = append(out.Reasons, c.Reason)
	}
	if c.Coincidence != "" {
		out.Coincidences = append(out.Coincidences, c.Coincidence)
	}
	return out
}

// Subject is everything a rule may look at for one candidate.
type Subject struct {
	Code string

	// Profile is nil for candidates without curated quiz data.
	Profile *Profile

	// Topics holds the candidate's mention totals over all its documents.
	Topics map[string]int
}

// Rule scores one aspect of the answers for one candidate.
// Rules never return negative points.
type Rule func(a Answers, s Subject) Contribution

// allowlist awards points and a coincidence to a fixed set of candidates when
// the answer selects the rule.
func allowlist(points float64, coincidence string, selected func(Answers) bool, codes ...string) Rule {
	return func(a Answers, s Subject) Contribution {
		if !selected(a) || !slices.Contains(codes, s.Code) {
			return Contribution{}
		}
		return Contribution{Points: points, Coincidence: coincidence}
	}
}

func priority1Rule(a Answers, s Subject) Contribution {
	cat, ok := LookupCategory(a.Priority1)
	if !ok {
		return Contribution{}
	}
	var c Contribution
	if s.Profile != nil && s.Profile.HasStrength(cat.ID) {
		c.Points = priority1Points
		c.Reason = "Enfocado en " + cat.Name
	}
	c.Points += min(float64(cat.TopicMentions(s.Topics))/topicMentionScale, topicPointsCap)
	return c
}

func priority2Rule(a Answers, s Subject) Contribution {
	if a.Priority2 == a.Priority1 {
		return Contribution{}
	}
	cat, ok := LookupCategory(a.Priority2)
	if !ok || s.Profile == nil || !s.Profile.HasStrength(cat.ID) {
		return Contribution{}
	}
	return Contribution{Points: priority2Points, Reason: "También prioriza " + cat.Name}
}

func approachRule(a Answers, s Subject) Contribution {
	if a.Economic != "" && s.Profile != nil && s.Profile.Approach == a.Economic {
		return Contribution{Points: approachPoints, Coincidence: "Enfoque económico"}
	}
	if a.Economic == Balance {
		return Contribution{Points: balancePoints}
	}
	return Contribution{}
}

// groupLabels names the coincidence recorded for each voter group.
var groupLabels = map[Group]string{
	Emprendedor: "Emprendedores",
	Trabajador:  "Trabajadores",
	Joven:       "Jóvenes",
	Rural:       "Zona rural",
	Mujer:       "Mujeres",
	Pensionado:  "Pensionados",
}

func groupRule(g Group, codes ...string) Rule {
	return allowlist(1, "Grupo: "+groupLabels[g], func(a Answers) bool { return a.HasGroup(g) }, codes...)
}

// DefaultRules returns the scoring rules in application order.
func DefaultRules() []Rule {
	return []Rule{
		priority1Rule,
		priority2Rule,
		approachRule,

		allowlist(1.5, "Fortalecer CCSS",
			func(a Answers) bool { return a.CCSS == CCSSFortalecer }, "FA", "UP", "CAC", "PSD"),
		allowlist(1.5, "Reforma de CCSS",
			func(a Answers) bool { return a.CCSS == CCSSReforma }, "PUSC", "PLP", "PLN"),

		allowlist(1.5, "Seguridad: mano dura",
			func(a Answers) bool { return a.Security == ManoDura }, "PNR", "PUSC", "PLP"),
		allowlist(1.5, "Seguridad: prevención",
			func(a Answers) bool { return a.Security == Prevencion }, "FA", "CAC", "UP"),
		allowlist(1, "Seguridad: enfoque integral",
			func(a Answers) bool { return a.Security != ManoDura && a.Security != Prevencion }, "PLN", "PPSO", "PSD"),

		allowlist(2, "Prioridad ambiental",
			func(a Answers) bool { return a.Environment == AmbientePrimero }, "CAC", "FA"),
		allowlist(1.5, "Prioridad desarrollo",
			func(a Answers) bool { return a.Environment == DesarrolloPrimero }, "PUSC", "PLP", "PA"),

		allowlist(2, "Políticas de género",
			func(a Answers) bool { return a.Gender == GeneroFavor }, "CAC", "FA", "UP"),
		allowlist(2, "Valores familiares",
			func(a Answers) bool { return a.Gender == GeneroTradicional }, "PNR"),

		allowlist(1, "Caras nuevas",
			func(a Answers) bool { return a.Experience == Nuevo }, "PPSO", "UP", "PA"),
		allowlist(1, "Experiencia política",
			func(a Answers) bool { return a.Experience == Experiencia }, "PLN", "PUSC"),

		groupRule(Emprendedor, "PUSC", "PLP", "PA"),
		groupRule(Trabajador, "FA", "PLN", "PSD"),
		groupRule(Joven, "FA", "CAC", "UP"),
		groupRule(Rural, "PLN", "PA"),
		groupRule(Mujer, "CAC", "FA", "UP"),
		groupRule(Pensionado, "PLN", "PSD", "UP"),
	}
}

// Evaluate folds the rules over a fresh Score for one candidate.
func Evaluate(rules []Rule, a Answers, s Subject) Score {
	var score Score
	for _, rule := range rules {
		score = score.Add(rule(a, s))
	}
	return score
}

// Ranked is one entry of a quiz ranking.
type Ranked struct {
	Candidate core.Candidate
	Profile   Profile
	Score     Score
	Documents int
}

// Engine scores answers against the candidates of a corpus.
type Engine struct {
	profiles *ProfileTable
	rules    []Rule
	logger   *slog.Logger
}

// Option configures an Engine.
type Option func(*Engine) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) error {
		if logger == nil {
			logger = slog.Default()
		}
		e.logger = logger
		return nil
	}
}

// WithRules replaces the default rule set.
func WithRules(rules ...Rule) Option {
	return func(e *Engine) error {
		e.rules = rules
		return nil
	}
}

// NewEngine creates a scoring engine over the given profiles.
func NewEngine(profiles *ProfileTable, opts ...Option) (*Engine, error) {
	if profiles == nil {
		return nil, ErrProfilesRequired
	}
	e := &Engine{
		profiles: profiles,
		rules:    DefaultRules(),
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		if err := opt(e); err != nil {
			return nil, err
		}
	}
	return e, nil
}

// Score evaluates every candidate in the corpus, profiled or not.
func (e *Engine) Score(a Answers, c *core.Corpus) (map[string]Score, error) {
	if c == nil {
		return nil, ErrCorpusRequired
	}
	scores := make(map[string]Score, len(c.Candidates))
	for _, cand := range c.Candidates {
		scores[cand.Code] = Evaluate(e.rules, a, e.subject(c, cand.Code))
	}
	return scores, nil
}

func (e *Engine) subject(c *core.Corpus, code string) Subject {
	s := Subject{Code: code, Topics: corpus.CandidateTopics(c, code)}
	if p, ok := e.profiles.Lookup(code); ok {
		s.Profile = &p
	}
	return s
}

// Rank scores the answers and returns every profiled candidate of the corpus,
// sorted by total descending. Ties keep profile table order.
func (e *Engine) Rank(a Answers, c *core.Corpus) ([]Ranked, error) {
	scores, err := e.Score(a, c)
	if err != nil {
		return nil, err
	}

	ranking := make([]Ranked, 0, e.profiles.Len())
	for _, p := range e.profiles.All() {
		cand, ok := c.Candidate(p.Code)
		if !ok {
			continue
		}
		ranking = append(ranking, Ranked{
			Candidate: cand,
			Profile:   p,
			Score:     scores[p.Code],
			Documents: len(c.DocumentIDs(p.Code)),
		})
	}
	slices.SortStableFunc(ranking, func(x, y Ranked) int {
		return cmp.Compare(y.Score.Total, x.Score.Total)
	})

	if len(ranking) > 0 {
		e.logger.Debug("quiz ranked", "candidates", len(ranking),
			"top", ranking[0].Candidate.Code, "score", ranking[0].Score.Total)
	}
	return ranking, nil
}

// Affinity expresses total as a whole percentage of the top score.
func Affinity(total, top float64) int {
	if top <= 0 {
		return 0
	}
	return int(math.Round(100 * total / top))
}
