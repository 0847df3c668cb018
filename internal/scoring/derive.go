package scoring

import "math"

// ScoreSelector picks one composite sub-score out of a result. Rule tables
// reference sub-scores through selectors so the catalogues stay pure data.
type ScoreSelector func(*Result) int

// SkillGapRule emits a gap when the selected score falls below the target.
type SkillGapRule struct {
	Skill         string
	RequiredLevel int
	Priority      string
	Score         ScoreSelector
}

// CareerTemplate is a role candidate. The match score is the selected score
// raised to Floor (when Floor > 0); the role is emitted only when the match
// score reaches Minimum, and demand is high at or above HighDemandAt.
type CareerTemplate struct {
	Title        string
	Description  string
	Salary       string
	Requirements []string
	Floor        int
	Minimum      int
	HighDemandAt int
	Score        ScoreSelector
}

// LearningStageRule includes a stage when the selected score reaches Min.
type LearningStageRule struct {
	Stage    string
	Duration string
	Modules  []string
	Effort   string
	Min      int
	Score    ScoreSelector
}

// ImprovementRule emits guidance when the selected score is below Target.
type ImprovementRule struct {
	Area      string
	Target    int
	Tips      []string
	Resources []string
	Score     ScoreSelector
}

func technicalOverall(r *Result) int   { return r.Technical.Overall }
func logicalReasoning(r *Result) int   { return r.Technical.Categories.LogicalReasoning }
func domainKnowledge(r *Result) int    { return r.Technical.Categories.DomainKnowledge }
func numeracy(r *Result) int           { return r.Technical.Categories.Numeracy }
func psychoCognitive(r *Result) int    { return r.Psychometric.Categories.Cognitive }
func psychoMotivation(r *Result) int   { return r.Psychometric.Categories.Motivation }
func overallScore(r *Result) int       { return r.OverallScore }
func techPsychoAverage(r *Result) int {
	return int(math.Round(float64(r.Technical.Overall+r.Psychometric.Overall) / 2))
}

var defaultSkillGapRules = []SkillGapRule{
	{Skill: "Technical Fundamentals", RequiredLevel: 70, Priority: "high", Score: technicalOverall},
	{Skill: "Problem Solving", RequiredLevel: 75, Priority: "medium", Score: logicalReasoning},
	{Skill: "Domain Knowledge", RequiredLevel: 60, Priority: "high", Score: domainKnowledge},
	{Skill: "Numerical Skills", RequiredLevel: 65, Priority: "medium", Score: numeracy},
	{Skill: "Cognitive Abilities", RequiredLevel: 70, Priority: "high", Score: psychoCognitive},
	{Skill: "Motivation & Drive", RequiredLevel: 65, Priority: "medium", Score: psychoMotivation},
}

var defaultCareerTemplates = []CareerTemplate{
	{
		Title:        "Platform Developer",
		Description:  "Build custom applications and workflows",
		Salary:       "$85,000 - $120,000",
		Requirements: []string{"Programming", "System Design", "Problem Solving"},
		Floor:        70,
		Minimum:      60,
		HighDemandAt: 80,
		Score:        technicalOverall,
	},
	{
		Title:        "Platform Administrator",
		Description:  "Manage platform configuration and users",
		Salary:       "$70,000 - $95,000",
		Requirements: []string{"System Administration", "User Management", "Process Design"},
		Floor:        75,
		Minimum:      60,
		HighDemandAt: 80,
		Score:        domainKnowledge,
	},
	{
		Title:        "Business Analyst",
		Description:  "Bridge business needs with technical solutions",
		Salary:       "$65,000 - $90,000",
		Requirements: []string{"Requirements Analysis", "Communication", "Process Mapping"},
		Floor:        65,
		Minimum:      60,
		HighDemandAt: 75,
		Score:        psychoCognitive,
	},
	{
		Title:        "Technical Consultant",
		Description:  "Provide expert technical guidance and solutions",
		Salary:       "$90,000 - $130,000",
		Requirements: []string{"Technical Expertise", "Communication", "Problem Solving"},
		Minimum:      65,
		HighDemandAt: 80,
		Score:        techPsychoAverage,
	},
}

var defaultLearningStages = []LearningStageRule{
	{
		Stage:    "Foundation",
		Duration: "2-4 weeks",
		Modules:  []string{"Platform Basics", "Navigation", "Core Concepts"},
		Effort:   "low",
		Min:      0,
		Score:    technicalOverall,
	},
	{
		Stage:    "Intermediate",
		Duration: "6-8 weeks",
		Modules:  []string{"Scripting Basics", "Workflow Design", "Configuration"},
		Effort:   "medium",
		Min:      40,
		Score:    technicalOverall,
	},
	{
		Stage:    "Advanced",
		Duration: "8-12 weeks",
		Modules:  []string{"Custom Development", "Integration", "Performance"},
		Effort:   "high",
		Min:      60,
		Score:    technicalOverall,
	},
	{
		Stage:    "Certification",
		Duration: "4-6 weeks",
		Modules:  []string{"Exam Prep", "Practice Projects", "Portfolio"},
		Effort:   "medium",
		Min:      65,
		Score:    overallScore,
	},
}

var defaultImprovementRules = []ImprovementRule{
	{
		Area:   "Technical Skills",
		Target: 80,
		Tips: []string{
			"Practice coding exercises daily",
			"Take online courses in relevant technologies",
			"Build small projects to apply knowledge",
			"Join technical communities and forums",
		},
		Resources: []string{"FreeCodeCamp", "Codecademy", "YouTube tutorials", "GitHub projects"},
		Score:     technicalOverall,
	},
	{
		Area:   "Domain Knowledge",
		Target: 75,
		Tips: []string{
			"Read industry blogs and documentation",
			"Join professional communities",
			"Attend webinars and conferences",
			"Follow thought leaders in the field",
		},
		Resources: []string{"Official documentation", "Community forums", "Industry conferences", "Professional blogs"},
		Score:     domainKnowledge,
	},
	{
		Area:   "Problem Solving",
		Target: 75,
		Tips: []string{
			"Practice algorithmic problems",
			"Work on logic puzzles and brain teasers",
			"Break down complex problems into smaller parts",
			"Learn different problem-solving frameworks",
		},
		Resources: []string{"LeetCode", "HackerRank", "Logic puzzles", "Problem-solving books"},
		Score:     logicalReasoning,
	},
	{
		Area:   "Cognitive Abilities",
		Target: 70,
		Tips: []string{
			"Practice analytical thinking exercises",
			"Read complex technical materials",
			"Engage in strategic games and puzzles",
			"Take courses in critical thinking",
		},
		Resources: []string{"Analytical thinking courses", "Strategic games", "Critical thinking books", "Logic courses"},
		Score:     psychoCognitive,
	},
}

// derive fills the presentation artifacts from the composite scores. Pure
// rule tables: no randomness, no I/O.
func (e *Engine) derive(r *Result) {
	r.SkillGaps = []SkillGap{}
	for _, rule := range e.cfg.SkillGapRules {
		current := rule.Score(r)
		if current < rule.RequiredLevel {
			r.SkillGaps = append(r.SkillGaps, SkillGap{
				Skill:         rule.Skill,
				CurrentLevel:  current,
				RequiredLevel: rule.RequiredLevel,
				Priority:      rule.Priority,
			})
		}
	}

	r.CareerMatches = []CareerMatch{}
	for _, tmpl := range e.cfg.CareerTemplates {
		match := tmpl.Score(r)
		if tmpl.Floor > 0 && match < tmpl.Floor {
			match = tmpl.Floor
		}
		if match < tmpl.Minimum {
			continue
		}
		demand := "medium"
		if match >= tmpl.HighDemandAt {
			demand = "high"
		}
		r.CareerMatches = append(r.CareerMatches, CareerMatch{
			Title:        tmpl.Title,
			Description:  tmpl.Description,
			MatchScore:   match,
			Salary:       tmpl.Salary,
			Demand:       demand,
			Requirements: tmpl.Requirements,
		})
	}

	r.LearningPath = []LearningStage{}
	for _, stage := range e.cfg.LearningStages {
		if stage.Score(r) < stage.Min {
			continue
		}
		r.LearningPath = append(r.LearningPath, LearningStage{
			Stage:    stage.Stage,
			Duration: stage.Duration,
			Modules:  stage.Modules,
			Effort:   stage.Effort,
		})
	}

	r.ImprovementAreas = []ImprovementArea{}
	for _, rule := range e.cfg.ImprovementRules {
		current := rule.Score(r)
		if current >= rule.Target {
			continue
		}
		r.ImprovementAreas = append(r.ImprovementAreas, ImprovementArea{
			Area:         rule.Area,
			CurrentScore: current,
			TargetScore:  rule.Target,
			Tips:         rule.Tips,
			Resources:    rule.Resources,
		})
	}
}
