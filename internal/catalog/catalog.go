// Package catalog provides the compiled-in reference data for the onboarding
// simulation: the fixed personas, the base task templates, the comprehension
// quiz, and the educational content variants. Catalog data is immutable after
// load; accessors return independent copies so callers can never mutate it.
package catalog

import "github.com/carepath/onboard-api/internal/domain"

// Catalog is a read-only provider of the simulation's reference data.
type Catalog struct {
	personas  []domain.Persona
	baseTasks []domain.Task
	questions []domain.QuizQuestion
	variants  map[domain.ContentTier]domain.ContentVariant
}

// New returns the catalog with the fixed demo data set: four personas, four
// base task templates, three quiz questions, and two content variants.
func New() *Catalog {
	return &Catalog{
		personas: []domain.Persona{
			{
				ID:            "p1",
				Name:          "Maria Alvarez",
				Age:           67,
				Language:      "es",
				LanguageLabel: "Spanish",
				Literacy:      domain.LiteracyLow,
				TechAccess:    domain.TechAccessLow,
				RiskScore:     72,
			},
			{
				ID:            "p2",
				Name:          "James Okafor",
				Age:           45,
				Language:      "en",
				LanguageLabel: "English",
				Literacy:      domain.LiteracyHigh,
				TechAccess:    domain.TechAccessHigh,
				RiskScore:     28,
			},
			{
				ID:            "p3",
				Name:          "Linh Tran",
				Age:           58,
				Language:      "vi",
				LanguageLabel: "Vietnamese",
				Literacy:      domain.LiteracyMedium,
				TechAccess:    domain.TechAccessMedium,
				RiskScore:     55,
			},
			{
				ID:            "p4",
				Name:          "Dorothy Miller",
				Age:           79,
				Language:      "en",
				LanguageLabel: "English",
				Literacy:      domain.LiteracyLow,
				TechAccess:    domain.TechAccessLow,
				RiskScore:     81,
			},
		},
		baseTasks: []domain.Task{
			{ID: "t1", Label: "Read welcome packet", DueInDays: 1},
			{ID: "t2", Label: "Complete intake survey", DueInDays: 2},
			{ID: "t3", Label: "Take comprehension quiz", DueInDays: 3},
			{ID: "t4", Label: "Confirm follow-up appointment", DueInDays: 5},
		},
		questions: []domain.QuizQuestion{
			{
				ID:     "q1",
				Prompt: "How often should you take your new medication?",
				Options: []string{
					"Only when you feel unwell",
					"Once a day, at the same time",
					"Twice a day, with meals",
				},
				CorrectIndex: 1,
			},
			{
				ID:     "q2",
				Prompt: "What should you do if you miss a dose?",
				Options: []string{
					"Take two doses next time",
					"Stop taking the medication",
					"Take it as soon as you remember, unless the next dose is close",
				},
				CorrectIndex: 2,
			},
			{
				ID:     "q3",
				Prompt: "Who should you call if you have side effects?",
				Options: []string{
					"Emergency services, always",
					"Your care team's nurse line",
					"Nobody, side effects are normal",
				},
				CorrectIndex: 1,
			},
		},
		variants: map[domain.ContentTier]domain.ContentVariant{
			domain.ContentSimple: {
				Tier:  domain.ContentSimple,
				Title: "Your new medicine",
				Body: "Take one pill each day. Take it at the same time. " +
					"If you forget, take it when you remember. Do not take two pills. " +
					"If you feel sick, call your nurse.",
			},
			domain.ContentStandard: {
				Tier:  domain.ContentStandard,
				Title: "About your prescribed medication",
				Body: "Take one tablet daily at a consistent time to maintain a stable " +
					"therapeutic level. If you miss a dose, take it as soon as you " +
					"remember unless your next scheduled dose is imminent; never double " +
					"up. Report persistent side effects to your care team's nurse line.",
			},
		},
	}
}

// Personas returns a copy of the fixed persona set, in catalog order.
func (c *Catalog) Personas() []domain.Persona {
	personas := make([]domain.Persona, len(c.personas))
	copy(personas, c.personas)
	return personas
}

// PersonaByID returns the persona with the given ID.
// Returns domain.ErrPersonaNotFound if no such persona exists.
func (c *Catalog) PersonaByID(id string) (domain.Persona, error) {
	for _, p := range c.personas {
		if p.ID == id {
			return p, nil
		}
	}
	return domain.Persona{}, domain.ErrPersonaNotFound
}

// BaseTasks returns an independent copy of the base task templates. Each
// call yields fresh copies so callers can hand them to a record directly.
func (c *Catalog) BaseTasks() []domain.Task {
	tasks := make([]domain.Task, 0, len(c.baseTasks))
	for i := range c.baseTasks {
		tasks = append(tasks, c.baseTasks[i].Clone())
	}
	return tasks
}

// Questions returns a copy of the comprehension quiz questions, in order.
func (c *Catalog) Questions() []domain.QuizQuestion {
	questions := make([]domain.QuizQuestion, len(c.questions))
	copy(questions, c.questions)
	return questions
}

// QuestionByID returns the quiz question with the given ID.
// Returns domain.ErrQuestionNotFound if no such question exists.
func (c *Catalog) QuestionByID(id string) (domain.QuizQuestion, error) {
	for _, q := range c.questions {
		if q.ID == id {
			return q, nil
		}
	}
	return domain.QuizQuestion{}, domain.ErrQuestionNotFound
}

// Variant returns the content variant for the given tier. Unknown tiers fall
// back to the standard variant, since catalog data covers exactly the known
// tiers.
func (c *Catalog) Variant(tier domain.ContentTier) domain.ContentVariant {
	if v, ok := c.variants[tier]; ok {
		return v
	}
	return c.variants[domain.ContentStandard]
}

// VariantForLiteracy selects the content tier appropriate for a literacy
// level: low literacy receives the simple variant, everyone else the
// standard one.
func (c *Catalog) VariantForLiteracy(level domain.LiteracyLevel) domain.ContentVariant {
	if level == domain.LiteracyLow {
		return c.Variant(domain.ContentSimple)
	}
	return c.Variant(domain.ContentStandard)
}
