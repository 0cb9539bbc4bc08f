package domain

import "time"

// RawPosting is one adapter result before any normalization.
// All fields are raw strings and may be empty.
type RawPosting struct {
	Title         string
	Company       string
	Location      string
	SalaryRaw     string
	ExperienceRaw string
	PostedRaw     string
	Description   string
	SkillsRaw     string
	Source        string
	URL           string
}

// Work modes.
const (
	WorkModeRemote      = "remote"
	WorkModeHybrid      = "hybrid"
	WorkModeOnsite      = "onsite"
	WorkModeUnspecified = "unspecified"
)

// Seniority levels, most senior first.
const (
	SeniorityExecutive      = "executive"
	SeniorityVPHead         = "vp_head"
	SeniorityDirector       = "director"
	SeniorityPrincipalGroup = "principal_group"
	SenioritySeniorLead     = "senior_lead"
	SeniorityMid            = "mid"
	SeniorityEntryAPM       = "entry_apm"
)

// Company reputation tiers.
const (
	TierTop     = "top"
	TierMid     = "mid"
	TierUnknown = "unknown"
)

// Job is the canonical, deduplicated, scored record handed to the store.
type Job struct {
	ID                string    `json:"id"`
	Title             string    `json:"title"`
	Company           string    `json:"company"`
	Location          string    `json:"location"`
	WorkMode          string    `json:"work_mode"`
	Seniority         string    `json:"seniority"`
	ExperienceMin     int       `json:"experience_min"`
	ExperienceMax     int       `json:"experience_max"`
	ExperienceDisplay string    `json:"experience_display"`
	SalaryMin         float64   `json:"salary_min"`
	SalaryMax         float64   `json:"salary_max"`
	SalaryDisplay     string    `json:"salary_display"`
	PostedDate        string    `json:"posted_date"` // YYYY-MM-DD
	Skills            []string  `json:"skills"`
	MatchScore        int       `json:"match_score"`
	CompanyTier       string    `json:"company_tier"`
	Source            string    `json:"source"`
	URL               string    `json:"url"`
	CreatedAt         time.Time `json:"created_at"`
}
