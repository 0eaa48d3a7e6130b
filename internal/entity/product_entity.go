package entity

import "strings"

// Product identifies one AI suite. Every registry is scoped to a product.
type Product string

const (
	ProductCompliance Product = "compliance"
	ProductContent    Product = "content"
	ProductCoach      Product = "coach"
)

var Products = []Product{ProductCompliance, ProductContent, ProductCoach}

func ParseProduct(s string) (Product, bool) {
	p := Product(strings.ToLower(strings.TrimSpace(s)))
	switch p {
	case ProductCompliance, ProductContent, ProductCoach:
		return p, true
	}
	return "", false
}

// DisplayName is the name used in greetings, e.g. "Compliance AI".
func (p Product) DisplayName() string {
	switch p {
	case ProductCompliance:
		return "Compliance AI"
	case ProductContent:
		return "Content AI"
	case ProductCoach:
		return "Coach AI"
	}
	return "AI"
}

// DashboardPath is where callers land when a chat cannot be resolved.
func (p Product) DashboardPath() string {
	return "/" + string(p)
}

func (p Product) String() string {
	return string(p)
}
