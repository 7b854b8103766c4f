package types

// MatchedPair records that a job-side item's closest resume-side item was
// this one, with the cosine similarity reported as a percentage.
type MatchedPair struct {
	JobSkill           SkillRecord `json:"job_skill"`
	ClosestResumeSkill SkillRecord `json:"closest_resume_skill"`
	Similarity         float64     `json:"similarity"`
}

// SimilarityResult is the reduced form of a pairwise similarity matrix.
// Average and Max are percentages in [0,100], rounded to two decimals.
// Average is always <= Max.
type SimilarityResult struct {
	Average float64       `json:"average"`
	Max     float64       `json:"max"`
	Matches []MatchedPair `json:"matches"`
}

// ScoreRecord is the final output of one resume-vs-job scoring run. Field
// names and the percentage convention (similarities x100, two decimals) are
// part of the API contract with existing consumers; do not rename.
type ScoreRecord struct {
	AverageSimilarity float64 `json:"average_similarity"`
	MaxSimilarity     float64 `json:"max_similarity"`
	// Similarity is the fused score, clamped so that
	// AverageSimilarity <= Similarity <= MaxSimilarity.
	Similarity float64 `json:"similarity"`

	ResumeHardSkills     []SkillRecord `json:"resume_hard_skills"`
	ResumeSoftSkills     []SkillRecord `json:"resume_soft_skills"`
	ResumeCertifications []SkillRecord `json:"resume_certifications"`
	JobHardSkills        []SkillRecord `json:"job_hard_skills"`
	JobSoftSkills        []SkillRecord `json:"job_soft_skills"`
	JobCertifications    []SkillRecord `json:"job_certifications"`

	AverageHardSkillSimilarity float64       `json:"average_hard_skill_similarity"`
	MaxHardSkillSimilarity     float64       `json:"max_hard_skill_similarity"`
	MatchedHardSkills          []MatchedPair `json:"matched_hard_skills"`

	AverageSoftSkillSimilarity float64       `json:"average_soft_skill_similarity"`
	MaxSoftSkillSimilarity     float64       `json:"max_soft_skill_similarity"`
	MatchedSoftSkills          []MatchedPair `json:"matched_soft_skills"`

	AverageCertificationSimilarity float64       `json:"average_certification_similarity"`
	MaxCertificationSimilarity     float64       `json:"max_certification_similarity"`
	MatchedCertifications          []MatchedPair `json:"matched_certifications"`

	// AIScore is the raw regression model output. Unlike the similarity
	// fields it is not clamped; the model was trained to approximate
	// [0,100] but is not bounded.
	AIScore float64 `json:"ai_score"`

	// Reason is set only on degenerate records (for example empty input),
	// where all similarity fields are zero.
	Reason string `json:"reason,omitempty"`
}

// DegenerateScoreRecord builds the zero-score record returned when input
// yields no usable phrases. This is a valid result, not an error.
func DegenerateScoreRecord(reason string) *ScoreRecord {
	return &ScoreRecord{
		ResumeHardSkills:      []SkillRecord{},
		ResumeSoftSkills:      []SkillRecord{},
		ResumeCertifications:  []SkillRecord{},
		JobHardSkills:         []SkillRecord{},
		JobSoftSkills:         []SkillRecord{},
		JobCertifications:     []SkillRecord{},
		MatchedHardSkills:     []MatchedPair{},
		MatchedSoftSkills:     []MatchedPair{},
		MatchedCertifications: []MatchedPair{},
		Reason:                reason,
	}
}
