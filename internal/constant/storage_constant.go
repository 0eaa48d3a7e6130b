package constant

import "ai-realestate-be/internal/entity"

const (
	AssetCountsKey     = "assetCounts"
	HasVisitedCoachKey = "hasVisitedCoach"

	topicsSuffix      = "Topics"
	activeChatsSuffix = "ActiveChats"
	assetsSuffix      = "Assets"
)

func TopicsKey(p entity.Product) string {
	return string(p) + topicsSuffix
}

func ActiveChatsKey(p entity.Product) string {
	return string(p) + activeChatsSuffix
}

// AssetsKey yields "complianceAssets", "contentAssets" and "coachAssets".
func AssetsKey(p entity.Product) string {
	return string(p) + assetsSuffix
}

// ProductForAssetsKey reports which product an asset key belongs to.
func ProductForAssetsKey(key string) (entity.Product, bool) {
	for _, p := range entity.Products {
		if AssetsKey(p) == key {
			return p, true
		}
	}
	return "", false
}
