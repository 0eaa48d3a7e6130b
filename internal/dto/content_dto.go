package dto

type ContentTypeResponse struct {
	Id          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

type ListingDetailsDTO struct {
	Address       string   `json:"address" validate:"max=300"`
	Price         float64  `json:"price" validate:"gte=0,lte=1000000000000"`
	Bedrooms      int      `json:"bedrooms" validate:"gte=0"`
	Bathrooms     float64  `json:"bathrooms" validate:"gte=0"`
	SquareFootage int      `json:"square_footage" validate:"gte=0"`
	Highlights    []string `json:"highlights" validate:"max=20"`
}

type RenderContentRequest struct {
	ContentTypes []string          `json:"content_types" validate:"required,min=1,max=10"`
	Listing      ListingDetailsDTO `json:"listing"`
}

type RenderContentResponse struct {
	Content map[string]string `json:"content"`
}

type EnhancePromptRequest struct {
	Text string `json:"text" validate:"required,notblank,max=4000"`
}

type EnhancePromptResponse struct {
	Original string `json:"original"`
	Enhanced string `json:"enhanced"`
	Category string `json:"category"`
}

type OnboardingResponse struct {
	ShowOverlay bool `json:"show_overlay"`
}
