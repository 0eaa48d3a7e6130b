package constant

import "ai-realestate-be/internal/entity"

const (
	DefaultTopicIcon = "💬"

	// ConversationalInterviewTitle switches the conversation engine into the
	// scripted interview flow.
	ConversationalInterviewTitle = "Conversational Interview"

	NewChatTitle = "New Chat"
)

type DefaultTopic struct {
	Icon        string
	Title       string
	Description string
	IsNew       bool
}

// DefaultTopics seed a product's topic collection the first time it is loaded.
var DefaultTopics = map[entity.Product][]DefaultTopic{
	entity.ProductCompliance: {
		{Icon: "⚖️", Title: "Fair Housing Laws", Description: "Understand protected classes and how to avoid discriminatory language"},
		{Icon: "📝", Title: "Advertising Compliance", Description: "Review listing ads and marketing copy against advertising rules"},
		{Icon: "🔍", Title: "Disclosure Requirements", Description: "Know which property disclosures are required and when"},
		{Icon: "🤝", Title: "Agency Relationships", Description: "Clarify duties owed to buyers, sellers and dual-agency clients"},
		{Icon: "🛡️", Title: "RESPA Guidelines", Description: "Stay clear of kickbacks and improper referral fees"},
		{Icon: "📋", Title: "Contract Review", Description: "Walk through purchase agreement clauses and contingencies"},
	},
	entity.ProductContent: {
		{Icon: "🎙️", Title: ConversationalInterviewTitle, Description: "Answer a few questions and get ready-to-post listing content", IsNew: true},
		{Icon: "🏡", Title: "Listing Descriptions", Description: "Write compelling MLS descriptions for your properties"},
		{Icon: "📱", Title: "Social Media Posts", Description: "Create engaging posts for Facebook, Instagram and LinkedIn"},
		{Icon: "📧", Title: "Email Campaigns", Description: "Draft newsletters and drip campaigns for your sphere"},
		{Icon: "🎬", Title: "Video Scripts", Description: "Script property tours and market update videos"},
		{Icon: "📈", Title: "Market Updates", Description: "Summarize local market trends for clients"},
	},
	entity.ProductCoach: {
		{Icon: "🎯", Title: "Objection Handling", Description: "Practice responses to common buyer and seller objections"},
		{Icon: "📞", Title: "Cold Calling Scripts", Description: "Sharpen your prospecting calls and opening lines"},
		{Icon: "🏆", Title: "Listing Presentations", Description: "Rehearse a winning listing appointment"},
		{Icon: "💰", Title: "Negotiation Skills", Description: "Role-play offers, counteroffers and multiple-offer situations"},
		{Icon: "📅", Title: "Time Management", Description: "Build a daily schedule that protects lead generation time"},
		{Icon: "🌱", Title: "Lead Nurturing", Description: "Turn long-term leads into clients with consistent follow-up"},
	},
}
