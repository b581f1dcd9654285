// Package career analyzes a learner's skills against industry benchmark
// tables and generates a personalized roadmap toward a target role.
package career

// Role is a supported biotechnology career track.
type Role string

const (
	Researcher         Role = "researcher"
	LabTechnician      Role = "lab_technician"
	Bioinformatician   Role = "bioinformatician"
	BioprocessEngineer Role = "bioprocess_engineer"
	ClinicalAssociate  Role = "clinical_associate"
	RegulatoryAffairs  Role = "regulatory_affairs"
)

// DefaultRole is assumed for users who have not run a career analysis.
const DefaultRole = Researcher

// Roles lists every supported role in display order.
var Roles = []Role{
	Researcher,
	LabTechnician,
	Bioinformatician,
	BioprocessEngineer,
	ClinicalAssociate,
	RegulatoryAffairs,
}

// industryBenchmarks maps each role to its required skill scores (0-100).
var industryBenchmarks = map[Role]map[string]float64{
	Researcher: {
		"PCR":                85,
		"CRISPR":             80,
		"Data Analysis":      75,
		"Scientific Writing": 80,
		"Bioinformatics":     70,
	},
	LabTechnician: {
		"PCR":                 90,
		"Gel Electrophoresis": 90,
		"DNA Extraction":      85,
		"Lab Safety":          95,
		"Cell Culture":        80,
	},
	Bioinformatician: {
		"Python":           85,
		"R Programming":    80,
		"Bioinformatics":   90,
		"Statistics":       80,
		"Machine Learning": 70,
	},
	BioprocessEngineer: {
		"Fermentation":   85,
		"Process Design": 80,
		"Cell Culture":   85,
		"Regulatory":     70,
		"GMP":            80,
	},
	ClinicalAssociate: {
		"Clinical Trials": 85,
		"GCP":             90,
		"Regulatory":      80,
		"Data Analysis":   75,
		"Medical Writing": 75,
	},
	RegulatoryAffairs: {
		"Regulatory":      90,
		"GMP":             85,
		"Documentation":   85,
		"Pharmacology":    75,
		"Risk Assessment": 80,
	},
}

// Valid reports whether r names a supported role.
func (r Role) Valid() bool {
	_, ok := industryBenchmarks[r]
	return ok
}

// Benchmarks returns the required skill scores for a role. Unknown roles
// return an empty map, which yields a zero readiness score downstream.
func Benchmarks(role Role) map[string]float64 {
	return industryBenchmarks[role]
}
