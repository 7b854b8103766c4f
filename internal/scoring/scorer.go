// Package scoring orchestrates one resume-vs-job scoring run: phrase
// segmentation, skill extraction, similarity reduction, score fusion, and
// the regression model score.
package scoring

import (
	"context"
	"fmt"
	"math"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/coltonk1/trackify-jobs/internal/extraction"
	"github.com/coltonk1/trackify-jobs/internal/fusion"
	"github.com/coltonk1/trackify-jobs/internal/similarity"
	"github.com/coltonk1/trackify-jobs/internal/textproc"
	"github.com/coltonk1/trackify-jobs/internal/types"
)

// Regressor produces the auxiliary model score from fusion features.
// *inference.RegressionClient satisfies it.
type Regressor interface {
	Predict(ctx context.Context, features []float64) (float64, error)
}

// Scorer wires the pipeline stages together. All fields are set at
// construction and read-only afterwards; one Scorer serves concurrent
// requests.
type Scorer struct {
	segmenter *textproc.Segmenter
	pipeline  *extraction.Pipeline
	engine    *similarity.Engine
	regressor Regressor
	cfg       fusion.Config
	log       zerolog.Logger
}

// Option configures a Scorer.
type Option func(*Scorer)

// WithRegressor enables the auxiliary regression score. Without it the
// ai_score field stays zero.
func WithRegressor(r Regressor) Option {
	return func(s *Scorer) { s.regressor = r }
}

// WithFusionConfig overrides the default fusion weights.
func WithFusionConfig(cfg fusion.Config) Option {
	return func(s *Scorer) { s.cfg = cfg }
}

// WithLogger sets the structured logger.
func WithLogger(log zerolog.Logger) Option {
	return func(s *Scorer) { s.log = log }
}

// New creates a Scorer over the given segmenter, extraction pipeline, and
// similarity engine.
func New(segmenter *textproc.Segmenter, pipeline *extraction.Pipeline, engine *similarity.Engine, opts ...Option) *Scorer {
	s := &Scorer{
		segmenter: segmenter,
		pipeline:  pipeline,
		engine:    engine,
		cfg:       fusion.DefaultConfig(),
		log:       zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// skillBranch holds the outputs of the skill comparison branch.
type skillBranch struct {
	resume map[types.SkillType][]types.SkillRecord
	job    map[types.SkillType][]types.SkillRecord
	byType map[types.SkillType]*typedResult
}

type typedResult struct {
	average float64
	max     float64
	matches []types.MatchedPair
}

// Score runs the full pipeline for one resume/job pair. Empty input on
// either side yields a degenerate zero record with a reason, not an error.
func (s *Scorer) Score(ctx context.Context, resumeText, jobText string) (*types.ScoreRecord, error) {
	resumePhrases := s.segmenter.Phrases(resumeText)
	jobPhrases := s.segmenter.Phrases(jobText)

	if len(resumePhrases) == 0 {
		return types.DegenerateScoreRecord("resume contains no usable text"), nil
	}
	if len(jobPhrases) == 0 {
		return types.DegenerateScoreRecord("job description contains no usable text"), nil
	}

	// Phrase and skill branches are independent until fusion.
	g, gCtx := errgroup.WithContext(ctx)

	var phrase *similarity.Result
	g.Go(func() error {
		var err error
		// Each resume phrase is scored by its closest job phrase; the
		// bag-of-phrase comparison is many-to-many, so no uniqueness.
		phrase, err = s.engine.Compare(gCtx, resumePhrases, jobPhrases, similarity.Options{})
		if err != nil {
			return fmt.Errorf("phrase comparison failed: %w", err)
		}
		return nil
	})

	var skills *skillBranch
	g.Go(func() error {
		var err error
		skills, err = s.compareSkills(gCtx, resumeText, jobText)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	record := s.assemble(phrase, skills)

	if s.regressor != nil {
		features := fusion.RegressionFeatures(fusion.Inputs{
			AvgPhrase:    phrase.Average / 100,
			MaxPhrase:    phrase.Max / 100,
			HardSkillAvg: record.AverageHardSkillSimilarity,
			SoftSkillAvg: record.AverageSoftSkillSimilarity,
		})
		score, err := s.regressor.Predict(ctx, features)
		if err != nil {
			return nil, fmt.Errorf("regression scoring failed: %w", err)
		}
		record.AIScore = score
	}

	s.log.Info().
		Float64("similarity", record.Similarity).
		Float64("avg", record.AverageSimilarity).
		Float64("max", record.MaxSimilarity).
		Int("resume_phrases", len(resumePhrases)).
		Int("job_phrases", len(jobPhrases)).
		Msg("scored resume")
	return record, nil
}

// compareSkills extracts both skill sets concurrently and reduces one
// similarity matrix per skill type, job side as rows.
func (s *Scorer) compareSkills(ctx context.Context, resumeText, jobText string) (*skillBranch, error) {
	g, gCtx := errgroup.WithContext(ctx)

	var resumeSkills, jobSkills []types.SkillRecord
	g.Go(func() error {
		var err error
		resumeSkills, err = s.pipeline.Extract(gCtx, resumeText)
		if err != nil {
			return fmt.Errorf("resume skill extraction failed: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		jobSkills, err = s.pipeline.Extract(gCtx, jobText)
		if err != nil {
			return fmt.Errorf("job skill extraction failed: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	branch := &skillBranch{
		resume: splitByType(resumeSkills),
		job:    splitByType(jobSkills),
		byType: make(map[types.SkillType]*typedResult, 3),
	}

	for _, skillType := range []types.SkillType{types.SkillTypeHard, types.SkillTypeSoft, types.SkillTypeCertification} {
		res, err := s.compareType(ctx, branch.job[skillType], branch.resume[skillType])
		if err != nil {
			return nil, fmt.Errorf("%s comparison failed: %w", skillType, err)
		}
		branch.byType[skillType] = res
	}
	return branch, nil
}

// compareType reduces one typed similarity matrix. Each job skill is scored
// by its closest resume skill; one-to-one matching keeps a resume skill
// from answering for two requirements.
func (s *Scorer) compareType(ctx context.Context, job, resume []types.SkillRecord) (*typedResult, error) {
	res, err := s.engine.Compare(ctx, names(job), names(resume), similarity.Options{Unique: true})
	if err != nil {
		return nil, err
	}

	jobByName := recordsByName(job)
	resumeByName := recordsByName(resume)

	matches := make([]types.MatchedPair, 0, len(res.Pairs))
	for _, p := range res.Pairs {
		matches = append(matches, types.MatchedPair{
			JobSkill:           jobByName[p.Target],
			ClosestResumeSkill: resumeByName[p.Source],
			Similarity:         p.Similarity,
		})
	}
	return &typedResult{average: res.Average, max: res.Max, matches: matches}, nil
}

// assemble fuses the branch outputs into the final record.
func (s *Scorer) assemble(phrase *similarity.Result, skills *skillBranch) *types.ScoreRecord {
	hard := skills.byType[types.SkillTypeHard]
	soft := skills.byType[types.SkillTypeSoft]
	cert := skills.byType[types.SkillTypeCertification]

	in := fusion.Inputs{
		AvgPhrase:    phrase.Average / 100,
		MaxPhrase:    phrase.Max / 100,
		HardSkillAvg: hard.average,
		SoftSkillAvg: soft.average,
	}
	final := fusion.Fuse(s.cfg, in)

	return &types.ScoreRecord{
		AverageSimilarity: phrase.Average,
		MaxSimilarity:     phrase.Max,
		Similarity:        round2(final * 100),

		ResumeHardSkills:     orEmpty(skills.resume[types.SkillTypeHard]),
		ResumeSoftSkills:     orEmpty(skills.resume[types.SkillTypeSoft]),
		ResumeCertifications: orEmpty(skills.resume[types.SkillTypeCertification]),
		JobHardSkills:        orEmpty(skills.job[types.SkillTypeHard]),
		JobSoftSkills:        orEmpty(skills.job[types.SkillTypeSoft]),
		JobCertifications:    orEmpty(skills.job[types.SkillTypeCertification]),

		AverageHardSkillSimilarity: hard.average,
		MaxHardSkillSimilarity:     hard.max,
		MatchedHardSkills:          hard.matches,

		AverageSoftSkillSimilarity: soft.average,
		MaxSoftSkillSimilarity:     soft.max,
		MatchedSoftSkills:          soft.matches,

		AverageCertificationSimilarity: cert.average,
		MaxCertificationSimilarity:     cert.max,
		MatchedCertifications:          cert.matches,
	}
}

func splitByType(records []types.SkillRecord) map[types.SkillType][]types.SkillRecord {
	out := make(map[types.SkillType][]types.SkillRecord, 3)
	for _, r := range records {
		out[r.Type] = append(out[r.Type], r)
	}
	return out
}

func names(records []types.SkillRecord) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.Name
	}
	return out
}

func recordsByName(records []types.SkillRecord) map[string]types.SkillRecord {
	out := make(map[string]types.SkillRecord, len(records))
	for _, r := range records {
		if _, seen := out[r.Name]; !seen {
			out[r.Name] = r
		}
	}
	return out
}

func orEmpty(records []types.SkillRecord) []types.SkillRecord {
	if records == nil {
		return []types.SkillRecord{}
	}
	return records
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
