// Package defaults holds the static content templates a new website is
// seeded from: pages per website type, sections per page, and theme
// presets.
package defaults

import "sitebuilder-backend/shared/database/models"

// Page is a default page definition for a website type
type Page struct {
	Name  string
	Slug  string
	Order int
}

// DefaultPages maps website type to its default page set
var DefaultPages = map[string][]Page{
	models.WebsiteTypeECommerce: {
		{Name: "Home", Slug: "home", Order: 1},
		{Name: "Shop", Slug: "shop", Order: 2},
		{Name: "Product Details", Slug: "product-details", Order: 3},
		{Name: "Cart", Slug: "cart", Order: 4},
		{Name: "Checkout", Slug: "checkout", Order: 5},
		{Name: "About Us", Slug: "about-us", Order: 6},
		{Name: "Contact", Slug: "contact", Order: 7},
	},
	models.WebsiteTypeBusinessPortfolio: {
		{Name: "Home", Slug: "home", Order: 1},
		{Name: "Services", Slug: "services", Order: 2},
		{Name: "Projects", Slug: "projects", Order: 3},
		{Name: "About Us", Slug: "about-us", Order: 4},
		{Name: "Contact", Slug: "contact", Order: 5},
	},
	models.WebsiteTypePersonalPortfolio: {
		{Name: "Home", Slug: "home", Order: 1},
		{Name: "Projects", Slug: "projects", Order: 2},
		{Name: "About", Slug: "about", Order: 3},
		{Name: "Contact", Slug: "contact", Order: 4},
	},
	models.WebsiteTypeRealEstate: {
		{Name: "Home", Slug: "home", Order: 1},
		{Name: "Listings", Slug: "listings", Order: 2},
		{Name: "Property Details", Slug: "property-details", Order: 3},
		{Name: "About", Slug: "about", Order: 4},
		{Name: "Contact", Slug: "contact", Order: 5},
	},
	models.WebsiteTypeEducational: {
		{Name: "Home", Slug: "home", Order: 1},
		{Name: "Courses", Slug: "courses", Order: 2},
		{Name: "About", Slug: "about", Order: 3},
		{Name: "Contact", Slug: "contact", Order: 4},
	},
	models.WebsiteTypeHealthcare: {
		{Name: "Home", Slug: "home", Order: 1},
		{Name: "Services", Slug: "services", Order: 2},
		{Name: "About", Slug: "about", Order: 3},
		{Name: "Contact", Slug: "contact", Order: 4},
	},
	models.WebsiteTypeTravelTourism: {
		{Name: "Home", Slug: "home", Order: 1},
		{Name: "Destinations", Slug: "destinations", Order: 2},
		{Name: "Packages", Slug: "packages", Order: 3},
		{Name: "About", Slug: "about", Order: 4},
		{Name: "Contact", Slug: "contact", Order: 5},
	},
	models.WebsiteTypeOthers: {
		{Name: "Home", Slug: "home", Order: 1},
		{Name: "About", Slug: "about", Order: 2},
		{Name: "Services", Slug: "services", Order: 3},
		{Name: "Contact", Slug: "contact", Order: 4},
	},
}

// PagesForType returns the default pages for a website type, falling
// back to the Others set for unknown types.
func PagesForType(websiteType string) []Page {
	if pages, ok := DefaultPages[websiteType]; ok {
		return pages
	}
	return DefaultPages[models.WebsiteTypeOthers]
}
