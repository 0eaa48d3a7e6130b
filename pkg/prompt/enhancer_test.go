package prompt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{text: "Write a Facebook post about my new listing", want: CategorySocialMedia},
		{text: "Draft an email newsletter for past clients", want: CategoryEmail},
		{text: "hello", want: CategoryGeneral},
		{text: "Describe this MLS listing", want: CategoryListing},
		{text: "What are the market trends in Austin?", want: CategoryMarketReport},
		{text: "Give me a YouTube walkthrough script", want: CategoryVideo},
		{text: "Instagram caption for the open house", want: CategorySocialMedia},
		{text: "EMAIL about market trends", want: CategoryEmail},
		{text: "", want: CategoryGeneral},
		{text: "Write a description of my client's home", want: CategoryGeneral},
		{text: "Help me plan my marketing budget", want: CategoryGeneral},
		{text: "Prescription for a slow week of prospecting", want: CategoryGeneral},
		{text: "Write a property description for 12 Oak Lane", want: CategoryListing},
		{text: "Two new listings this week", want: CategoryListing},
		{text: "Send a drip campaign to new leads", want: CategoryEmail},
		{text: "Need scripts for Instagram reels", want: CategorySocialMedia},
		{text: "Need scripts for my reels", want: CategoryVideo},
		{text: "What is the median price downtown?", want: CategoryMarketReport},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.text))
		})
	}
}

func TestEnhance(t *testing.T) {
	got := Enhance("Write a Facebook post about...")

	assert.Equal(t, "Write a Facebook post about...", got.Original)
	assert.Equal(t, CategorySocialMedia, got.Category)
	assert.True(t, strings.HasPrefix(got.Enhanced, "Create an engaging social media post"))
	assert.Contains(t, got.Enhanced, "Request: Write a Facebook post about...")
	assert.Contains(t, got.Enhanced, "- Add 3-5 relevant hashtags")
	assert.True(t, strings.HasSuffix(got.Enhanced, "Match the tone to the platform."))
}

func TestEnhanceWithoutSuffix(t *testing.T) {
	got := Enhance("Draft an email newsletter...")

	assert.Equal(t, CategoryEmail, got.Category)
	assert.True(t, strings.HasSuffix(got.Enhanced, "- Close with one clear call to action and a signature"))
}

func TestEnhanceIsDeterministic(t *testing.T) {
	assert.Equal(t, Enhance("hello"), Enhance("hello"))
	assert.Equal(t, CategoryGeneral, Enhance("hello").Category)
}
