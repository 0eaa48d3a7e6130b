package content

// ListingDetails feeds the content templates. Zero values mean "not
// provided" and are replaced by the fallback literals.
type ListingDetails struct {
	Address       string
	Price         float64
	Bedrooms      int
	Bathrooms     float64
	SquareFootage int
	Highlights    []string
}

type ContentType struct {
	ID          string
	Name        string
	Description string
	Icon        string
}

const (
	TypeListingDescription = "listing-description"
	TypeSocialMedia        = "social-media"
	TypeEmailCampaign      = "email-campaign"
	TypeOpenHouse          = "open-house"
	TypeVideoScript        = "video-script"
	TypeMarketUpdate       = "market-update"
)

const (
	FallbackAddress       = "123 Main Street, Anytown, CA 12345"
	FallbackPrice         = "$850,000"
	FallbackBedrooms      = "3"
	FallbackBathrooms     = "2"
	FallbackSquareFootage = "2,000"
)

var FallbackHighlights = []string{
	"Updated chef's kitchen with quartz countertops",
	"Spacious backyard perfect for entertaining",
	"Walking distance to top-rated schools",
}

var ContentTypes = []ContentType{
	{ID: TypeListingDescription, Name: "Listing Description", Description: "MLS-ready property description", Icon: "🏡"},
	{ID: TypeSocialMedia, Name: "Social Media Post", Description: "Post for Facebook, Instagram or LinkedIn", Icon: "📱"},
	{ID: TypeEmailCampaign, Name: "Email Campaign", Description: "Just-listed email for your database", Icon: "📧"},
	{ID: TypeOpenHouse, Name: "Open House Flyer", Description: "Copy for an open house invitation", Icon: "🚪"},
	{ID: TypeVideoScript, Name: "Video Script", Description: "Walkthrough script for a property tour video", Icon: "🎬"},
	{ID: TypeMarketUpdate, Name: "Market Update", Description: "Short market note anchored on this listing", Icon: "📈"},
}

func IsKnownType(id string) bool {
	_, ok := templates[id]
	return ok
}
