package prompt

import (
	"regexp"
	"strings"
)

const (
	CategorySocialMedia  = "social-media"
	CategoryEmail        = "email"
	CategoryListing      = "listing"
	CategoryMarketReport = "market-report"
	CategoryVideo        = "video"
	CategoryGeneral      = "general"
)

type Enhancement struct {
	Original string
	Enhanced string
	Category string
}

type rule struct {
	category string
	keywords []string
	pattern  *regexp.Regexp
}

// rules are scanned in order; the first category with a matching keyword
// wins.
var rules = compileRules([]rule{
	{category: CategorySocialMedia, keywords: []string{"facebook", "instagram", "linkedin", "twitter", "tiktok", "social media", "social post", "hashtag"}},
	{category: CategoryEmail, keywords: []string{"email", "e-mail", "newsletter", "subject line", "drip campaign"}},
	{category: CategoryListing, keywords: []string{"listing", "property description", "mls", "just listed", "open house"}},
	{category: CategoryMarketReport, keywords: []string{"market", "trends", "statistics", "inventory", "median price"}},
	{category: CategoryVideo, keywords: []string{"video", "script", "youtube", "reel", "walkthrough"}},
})

// compileRules anchors every keyword on word boundaries so "script" does not
// match inside "description". A trailing "s" is allowed for plurals.
func compileRules(in []rule) []rule {
	for i := range in {
		quoted := make([]string, len(in[i].keywords))
		for j, kw := range in[i].keywords {
			quoted[j] = regexp.QuoteMeta(kw)
		}
		in[i].pattern = regexp.MustCompile(`\b(?:` + strings.Join(quoted, "|") + `)s?\b`)
	}
	return in
}

type template struct {
	prefix     string
	guidelines []string
	suffix     string
}

var templates = map[string]template{
	CategorySocialMedia: {
		prefix: "Create an engaging social media post for a real estate audience.",
		guidelines: []string{
			"Open with an attention-grabbing hook",
			"Keep it concise and scannable with short lines",
			"Use a few relevant emojis",
			"End with a clear call to action",
			"Add 3-5 relevant hashtags",
		},
		suffix: "Match the tone to the platform.",
	},
	CategoryEmail: {
		prefix: "Write a professional real estate email.",
		guidelines: []string{
			"Start with a compelling subject line",
			"Personalize the greeting",
			"Lead with the most valuable information",
			"Keep paragraphs short",
			"Close with one clear call to action and a signature",
		},
	},
	CategoryListing: {
		prefix: "Write a compelling property listing description.",
		guidelines: []string{
			"Lead with the home's strongest feature",
			"Include beds, baths and square footage",
			"Describe the lifestyle, not just the features",
			"Avoid language that could violate fair housing rules",
			"Finish with an invitation to schedule a showing",
		},
		suffix: "Keep it within typical MLS character limits.",
	},
	CategoryMarketReport: {
		prefix: "Prepare a clear local market update for clients.",
		guidelines: []string{
			"Summarize the key numbers first",
			"Explain what the trends mean for buyers and sellers",
			"Use plain language instead of jargon",
			"Offer a personal takeaway or recommendation",
		},
	},
	CategoryVideo: {
		prefix: "Write a real estate video script.",
		guidelines: []string{
			"Hook viewers in the first five seconds",
			"Mark shots and transitions in brackets",
			"Keep narration conversational",
			"End with a call to action on screen and in voiceover",
		},
		suffix: "Aim for 60 to 90 seconds of narration.",
	},
	CategoryGeneral: {
		prefix: "Help with the following real estate task.",
		guidelines: []string{
			"Be clear and specific",
			"Use a professional, friendly tone",
			"Tailor the answer to real estate agents and their clients",
		},
	},
}

// Classify returns the first category with a keyword that appears in text
// as a whole word or phrase.
func Classify(text string) string {
	lower := strings.ToLower(text)
	for _, r := range rules {
		if r.pattern.MatchString(lower) {
			return r.category
		}
	}
	return CategoryGeneral
}

// Enhance wraps text in the structural template of its category.
func Enhance(text string) Enhancement {
	category := Classify(text)
	t := templates[category]

	var b strings.Builder
	b.WriteString(t.prefix)
	b.WriteString("\n\nRequest: ")
	b.WriteString(strings.TrimSpace(text))
	b.WriteString("\n\nGuidelines:\n")
	for _, g := range t.guidelines {
		b.WriteString("- ")
		b.WriteString(g)
		b.WriteString("\n")
	}
	if t.suffix != "" {
		b.WriteString("\n")
		b.WriteString(t.suffix)
	}

	return Enhancement{
		Original: text,
		Enhanced: strings.TrimRight(b.String(), "\n"),
		Category: category,
	}
}
