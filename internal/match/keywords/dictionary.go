package keywords

import "strings"

// Category classifies a candidate term for ranking boosts and caller-facing
// grouping.
type Category string

const (
	CategoryTechnical    Category = "technical"
	CategorySoftSkill    Category = "soft_skill"
	CategoryIndustry     Category = "industry_specific"
	CategoryUnclassified Category = "unclassified"
)

// Dictionary assigns categories to terms. Lookup is exact first, then
// substring for long entries so "scikit-learn pipelines" still reads as
// technical.
type Dictionary struct {
	technical map[string]struct{}
	softSkill map[string]struct{}
	industry  map[string]struct{}
}

// NewDictionary builds a Dictionary from explicit term lists.
func NewDictionary(technical, softSkill, industry []string) *Dictionary {
	return &Dictionary{
		technical: toSet(technical),
		softSkill: toSet(softSkill),
		industry:  toSet(industry),
	}
}

// DefaultDictionary returns the built-in professional-term dictionary.
func DefaultDictionary() *Dictionary {
	return NewDictionary(defaultTechnicalTerms, defaultSoftSkillTerms, defaultIndustryTerms)
}

// TechnicalTerms returns a copy of the technical term set, suitable for
// similarity boosting.
func (d *Dictionary) TechnicalTerms() map[string]struct{} {
	out := make(map[string]struct{}, len(d.technical))
	for t := range d.technical {
		out[t] = struct{}{}
	}
	return out
}

// Categorize returns the category for a term, defaulting to unclassified.
func (d *Dictionary) Categorize(term string) Category {
	t := strings.ToLower(strings.TrimSpace(term))
	if _, ok := d.technical[t]; ok {
		return CategoryTechnical
	}
	for entry := range d.technical {
		if len(entry) > 5 && strings.Contains(t, entry) {
			return CategoryTechnical
		}
	}
	if _, ok := d.softSkill[t]; ok {
		return CategorySoftSkill
	}
	for entry := range d.softSkill {
		if len(entry) > 7 && strings.Contains(t, entry) {
			return CategorySoftSkill
		}
	}
	if _, ok := d.industry[t]; ok {
		return CategoryIndustry
	}
	return CategoryUnclassified
}

func toSet(terms []string) map[string]struct{} {
	out := make(map[string]struct{}, len(terms))
	for _, t := range terms {
		t = strings.ToLower(strings.TrimSpace(t))
		if t != "" {
			out[t] = struct{}{}
		}
	}
	return out
}

var defaultTechnicalTerms = []string{
	// languages
	"python", "java", "javascript", "typescript", "c++", "c#", "go", "golang",
	"rust", "scala", "kotlin", "swift", "ruby", "php", "matlab", "bash",
	// web and backend
	"react", "angular", "vue", "node.js", "nodejs", "django", "flask",
	"fastapi", "spring", "graphql", "rest", "grpc", "api", "microservices",
	// data and ml
	"pandas", "numpy", "scikit-learn", "tensorflow", "pytorch", "keras",
	"xgboost", "opencv", "machine learning", "deep learning", "nlp",
	"computer vision", "natural language processing", "data analysis",
	"data visualization", "feature engineering", "neural network",
	"neural networks", "time series", "statistics",
	// databases
	"sql", "nosql", "postgresql", "mysql", "mongodb", "redis",
	"elasticsearch", "bigquery", "sqlite",
	// infra and cloud
	"docker", "kubernetes", "terraform", "aws", "azure", "gcp", "linux",
	"ci/cd", "kafka", "spark", "hadoop", "airflow",
	// tools
	"git", "github", "gitlab", "jira", "jupyter", "tableau", "powerbi",
	"grafana", "prometheus",
}

var defaultSoftSkillTerms = []string{
	"leadership", "communication", "teamwork", "collaboration",
	"problem solving", "problem-solving", "analytical", "creative",
	"organized", "detail oriented", "time management", "adaptable",
	"proactive", "critical thinking", "presentation", "negotiation",
	"mentoring", "cross-functional", "stakeholder management",
	"self-motivated", "independent",
}

var defaultIndustryTerms = []string{
	"fintech", "healthcare", "e-commerce", "ecommerce", "saas", "b2b", "b2c",
	"compliance", "gdpr", "hipaa", "logistics", "telecom", "insurance",
	"banking", "retail", "manufacturing", "agile", "scrum", "devops",
	"etl", "observability", "distributed systems",
}
