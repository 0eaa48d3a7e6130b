package content

// Placeholders: {{address}} {{price}} {{bedrooms}} {{bathrooms}}
// {{squareFootage}} {{highlights}} (bulleted) {{highlightsInline}}
// {{firstHighlight}}
var templates = map[string]string{
	TypeListingDescription: `Welcome home to {{address}}!

This beautifully maintained {{bedrooms}}-bedroom, {{bathrooms}}-bathroom residence offers {{squareFootage}} square feet of thoughtfully designed living space. Offered at {{price}}, this home combines comfort, style and convenience.

Property highlights:
{{highlights}}

Don't miss your opportunity to make this exceptional property your own. Schedule your private showing today!`,

	TypeSocialMedia: `🏡 JUST LISTED! 🏡

📍 {{address}}
💰 {{price}}
🛏️ {{bedrooms}} beds | 🛁 {{bathrooms}} baths | 📐 {{squareFootage}} sq ft

✨ {{firstHighlight}} and so much more!

DM me for details or to schedule a private tour. This one won't last long! 🔑

#JustListed #RealEstate #NewListing #DreamHome #HomeForSale`,

	TypeEmailCampaign: `Subject: Just Listed: {{address}}

Hi there,

I'm excited to share a brand-new listing that just hit the market!

{{address}}
Listed at {{price}}
{{bedrooms}} bedrooms | {{bathrooms}} bathrooms | {{squareFootage}} sq ft

What makes this home special:
{{highlights}}

Homes like this don't stay on the market long. Reply to this email or give me a call to set up a showing.

Best regards,
Your Real Estate Professional`,

	TypeOpenHouse: `OPEN HOUSE

{{address}}
Offered at {{price}}

Join us this weekend to tour this stunning {{bedrooms}}-bedroom, {{bathrooms}}-bath home with {{squareFootage}} square feet of living space.

Featuring {{highlightsInline}}.

Refreshments will be served. Bring your questions, and bring a friend!`,

	TypeVideoScript: `[OPENING SHOT: Exterior of {{address}}]

"Hi everyone! Today I'm taking you inside {{address}}, listed at {{price}}."

[WALKTHROUGH: Entry and main living area]

"Step inside and you'll find {{squareFootage}} square feet with {{bedrooms}} bedrooms and {{bathrooms}} bathrooms."

[HIGHLIGHTS]
{{highlights}}

[CLOSING SHOT]

"If you love this home as much as I do, reach out today to schedule your private showing!"`,

	TypeMarketUpdate: `Market Update: Homes like {{address}}

A {{bedrooms}}-bedroom, {{bathrooms}}-bath home with {{squareFootage}} square feet is currently listed at {{price}} in this neighborhood.

Buyers are responding to features like {{highlightsInline}}. Well-priced, move-in ready homes continue to draw strong interest, while properties that need work are taking longer to sell.

Thinking about buying or selling? Let's talk about what this means for you.`,
}

const genericTemplate = `Property Spotlight: {{address}}

Price: {{price}}
Bedrooms: {{bedrooms}}
Bathrooms: {{bathrooms}}
Square Footage: {{squareFootage}}

Highlights:
{{highlights}}

Contact me today for more information about this property.`

const interviewTemplate = `🏡 Just Listed: {{address}}

This home has everything on your wish list: {{features}}.

It's a perfect fit for {{buyer}}, and you'll love the neighborhood: {{neighborhood}}.

Ready to see it in person? Send me a message to schedule your private tour today!

#JustListed #RealEstate #HomeForSale`
