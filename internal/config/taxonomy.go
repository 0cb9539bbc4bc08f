package config

import "github.com/PremDutta/pm-job-hub/internal/domain"

// Default taxonomy data. config.yml can replace any of these wholesale;
// the matching logic never changes.

func DefaultQueries() []string {
	return []string{
		"product manager",
		"senior product manager",
		"associate product manager",
		"technical product manager",
		"product owner",
		"group product manager",
		"lead product manager",
		"head of product",
		"director product management",
	}
}

func DefaultIncludeTitles() []string {
	return []string{
		"product manager", "product management", "pm ", " pm", "product owner",
		"product lead", "product head", "head of product", "director of product",
		"vp product", "chief product", "cpo", "apm", "associate product",
		"senior product", "staff product", "principal product", "group product",
		"technical product", "platform product", "growth product", "data product",
	}
}

func DefaultExcludeTitles() []string {
	return []string{
		"project manager", "program manager", "production manager", "plant manager",
		"property manager", "procurement", "purchase manager", "production supervisor",
		"project coordinator", "pmo", "construction", "manufacturing", "assembly",
		"operations manager", "facility manager", "warehouse",
		"product designer", "product analyst", "product marketing",
	}
}

func DefaultSkills() []string {
	return []string{
		"sql", "python", "analytics", "a/b testing", "agile", "scrum", "jira",
		"roadmap", "user research", "data analysis", "metrics", "kpi", "okr",
		"stakeholder management", "go-to-market", "gtm", "b2b", "b2c", "saas",
		"api", "mobile", "web", "ux", "ui", "figma", "product strategy",
		"market research", "competitive analysis", "customer interviews",
		"wireframing", "prototyping", "mvp", "sprint planning", "backlog",
		"user stories", "prd", "prfaq", "specification", "requirements",
		"revenue", "growth", "retention", "activation", "engagement",
		"funnel", "conversion", "monetization", "pricing", "experimentation",
		"machine learning", "ml", "ai", "data science", "tableau", "amplitude",
		"mixpanel", "google analytics", "segment", "heap", "hotjar", "confluence",
		"notion", "linear", "asana", "monday", "trello", "miro", "lucidchart",
		"product sense", "customer obsession", "prioritization", "communication",
		"leadership", "strategy", "vision", "execution", "cross-functional",
	}
}

// Ordered most-specific-first: "director" must resolve before the generic
// senior/lead bucket, entry markers after everything senior.
func DefaultSeniorityRules() []KeywordRule {
	return []KeywordRule{
		{Value: domain.SeniorityExecutive, Any: []string{"chief", "cpo", "cxo", "c-level"}},
		{Value: domain.SeniorityVPHead, Any: []string{"vp", "vice president", "head of"}},
		{Value: domain.SeniorityDirector, Any: []string{"director"}},
		{Value: domain.SeniorityPrincipalGroup, Any: []string{"principal", "group", "gpm"}},
		{Value: domain.SenioritySeniorLead, Any: []string{"staff", "lead", "senior", "sr.", "sr ", "spm"}},
		{Value: domain.SeniorityEntryAPM, Any: []string{"associate", "apm", "junior", "jr", "entry"}},
	}
}

func DefaultWorkModeRules() []KeywordRule {
	return []KeywordRule{
		{Value: domain.WorkModeRemote, Any: []string{"remote", "work from home", "wfh", "anywhere", "distributed"}},
		{Value: domain.WorkModeHybrid, Any: []string{"hybrid", "flexible", "partial remote", "2 days", "3 days"}},
		{Value: domain.WorkModeOnsite, Any: []string{"on-site", "onsite", "office", "in-office", "in office"}},
	}
}

// DefaultCompanyTiers returns the top (established/high-profile) and
// mid (funded startup) tiers used by the scorer.
func DefaultCompanyTiers() (top, mid []string) {
	top = []string{
		"google", "microsoft", "amazon", "apple", "meta", "netflix", "adobe",
		"salesforce", "uber", "airbnb", "linkedin", "atlassian", "stripe",
		"flipkart", "swiggy", "zomato", "paytm", "phonepe", "razorpay", "cred",
		"zerodha", "byju", "ola", "oyo", "freshworks", "zoho", "infoedge",
		"makemytrip", "nykaa", "meesho", "udaan", "dream11", "groww", "upgrad",
	}
	mid = []string{
		"slice", "jupiter", "fi money", "khatabook", "bharatpe", "open",
		"zetwerk", "shiprocket", "ninjacart", "rapido", "spinny", "cars24",
		"porter", "dunzo", "zepto", "blinkit", "pharmeasy", "cure.fit",
		"unacademy", "vedantu", "classplus", "leadsquared", "postman",
		"hasura", "chargebee", "clevertap", "moengage", "whatfix", "darwinbox",
	}
	return top, mid
}
