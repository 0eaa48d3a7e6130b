package conversation

import "ai-realestate-be/internal/entity"

// welcomeSourceCount is how many sources a greeting carries.
const welcomeSourceCount = 2

var mockSources = map[entity.Product][]entity.Source{
	entity.ProductCompliance: {
		{
			Title:   "Fair Housing Act (42 U.S.C. 3601-3619)",
			Content: "Prohibits discrimination in the sale, rental and financing of dwellings based on race, color, religion, sex, national origin, familial status or disability.",
			URL:     "https://www.hud.gov/program_offices/fair_housing_equal_opp/fair_housing_act_overview",
		},
		{
			Title:   "NAR Code of Ethics, Article 12",
			Content: "REALTORS® shall be honest and truthful in their real estate communications and present a true picture in their advertising.",
			URL:     "https://www.nar.realtor/about-nar/governing-documents/code-of-ethics",
		},
		{
			Title:   "RESPA Section 8",
			Content: "Prohibits kickbacks and unearned fees for referrals of settlement service business.",
			URL:     "https://www.consumerfinance.gov/rules-policy/regulations/1024/14/",
		},
		{
			Title:   "Brokerage Compliance Handbook",
			Content: "Internal policy on disclosures, advertising review and record retention.",
		},
	},
	entity.ProductContent: {
		{
			Title:   "Listing Copy Best Practices",
			Content: "Lead with the strongest feature, keep sentences short and close with a call to action.",
		},
		{
			Title:   "Social Media Playbook for Agents",
			Content: "Post consistently, use local hashtags and pair every listing post with a strong photo.",
		},
		{
			Title:   "Email Marketing Benchmarks",
			Content: "Real estate newsletters average a 21% open rate; personalized subject lines perform best.",
		},
	},
	entity.ProductCoach: {
		{
			Title:   "Objection Handling Framework",
			Content: "Acknowledge, ask a clarifying question, respond with value and confirm the next step.",
		},
		{
			Title:   "Top Producer Habits",
			Content: "Time-block prospecting every morning and follow up with every lead within five minutes.",
		},
		{
			Title:   "Listing Presentation Checklist",
			Content: "Pricing strategy, marketing plan, agent value proposition and clear next steps.",
		},
	},
}

// Sources returns a copy of the mock source list for a product.
func Sources(p entity.Product) []entity.Source {
	src := mockSources[p]
	out := make([]entity.Source, len(src))
	copy(out, src)
	return out
}

func welcomeSources(p entity.Product) []entity.Source {
	src := Sources(p)
	if len(src) > welcomeSourceCount {
		src = src[:welcomeSourceCount]
	}
	return src
}
