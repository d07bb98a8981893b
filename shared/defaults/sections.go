package defaults

import "sitebuilder-backend/shared/database/models"

// Section is a default section definition for a page of a website type
type Section struct {
	Name        string
	SectionType string
	Order       int
}

var eCommerceSections = map[string][]Section{
	"Home": {
		{Name: "Hero", SectionType: "hero-offer", Order: 1},
		{Name: "Featured Categories", SectionType: "category-grid", Order: 2},
		{Name: "New Arrivals", SectionType: "product-grid", Order: 3},
		{Name: "Best Sellers", SectionType: "product-grid", Order: 4},
		{Name: "Value Propositions", SectionType: "features", Order: 5},
		{Name: "Promotional Banner", SectionType: "banner", Order: 6},
		{Name: "Testimonials", SectionType: "testimonials", Order: 7},
		{Name: "Brand Logos", SectionType: "logo-grid", Order: 8},
		{Name: "Call to Action", SectionType: "cta", Order: 9},
		{Name: "Footer", SectionType: "footer", Order: 10},
	},
	"Shop": {
		{Name: "Product Listing", SectionType: "product-grid", Order: 1},
		{Name: "Filters & Sorting", SectionType: "filters", Order: 2},
		{Name: "Category Highlights", SectionType: "category-list", Order: 3},
	},
	"Product Details": {
		{Name: "Product Gallery", SectionType: "image-gallery", Order: 1},
		{Name: "Product Information", SectionType: "product-info", Order: 2},
		{Name: "Add to Cart / Buy Now", SectionType: "product-actions", Order: 3},
		{Name: "Key Benefits", SectionType: "features", Order: 4},
		{Name: "Specifications", SectionType: "specifications", Order: 5},
		{Name: "Reviews & Ratings", SectionType: "reviews", Order: 6},
		{Name: "Related Products", SectionType: "product-grid", Order: 7},
	},
	"Cart": {
		{Name: "Cart Items", SectionType: "cart-items", Order: 1},
		{Name: "Price Breakdown", SectionType: "price-summary", Order: 2},
		{Name: "Coupon / Discount", SectionType: "coupon", Order: 3},
		{Name: "Checkout CTA", SectionType: "cta", Order: 4},
	},
	"Checkout": {
		{Name: "Shipping Information", SectionType: "form", Order: 1},
		{Name: "Payment Method", SectionType: "payment", Order: 2},
		{Name: "Order Summary", SectionType: "order-summary", Order: 3},
		{Name: "Trust Badges", SectionType: "trust-badges", Order: 4},
	},
	"About Us": {
		{Name: "Brand Story", SectionType: "content", Order: 1},
		{Name: "Mission & Vision", SectionType: "content", Order: 2},
		{Name: "Team", SectionType: "team-grid", Order: 3},
		{Name: "Timeline", SectionType: "timeline", Order: 4},
	},
	"Contact": {
		{Name: "Contact Form", SectionType: "form", Order: 1},
		{Name: "Store Location", SectionType: "map", Order: 2},
		{Name: "Support Information", SectionType: "contact-info", Order: 3},
	},
}

var businessPortfolioSections = map[string][]Section{
	"Home": {
		{Name: "Hero", SectionType: "hero", Order: 1},
		{Name: "Services Snapshot", SectionType: "services-grid", Order: 2},
		{Name: "Industries Served", SectionType: "content", Order: 3},
		{Name: "Why Choose Us", SectionType: "features", Order: 4},
		{Name: "Case Highlights", SectionType: "case-studies", Order: 5},
		{Name: "Client Logos", SectionType: "logo-grid", Order: 6},
		{Name: "Testimonials", SectionType: "testimonials", Order: 7},
		{Name: "Call to Action", SectionType: "cta", Order: 8},
		{Name: "Footer", SectionType: "footer", Order: 9},
	},
	"Services": {
		{Name: "Service List", SectionType: "services-grid", Order: 1},
		{Name: "Service Detail Blocks", SectionType: "content", Order: 2},
		{Name: "Process", SectionType: "process-steps", Order: 3},
		{Name: "Pricing", SectionType: "pricing", Order: 4},
	},
	"Projects": {
		{Name: "Project Grid", SectionType: "portfolio-grid", Order: 1},
		{Name: "Individual Case Details", SectionType: "case-study", Order: 2},
	},
	"About Us": {
		{Name: "Company Overview", SectionType: "content", Order: 1},
		{Name: "Mission & Vision", SectionType: "content", Order: 2},
		{Name: "Leadership", SectionType: "team-grid", Order: 3},
		{Name: "Culture", SectionType: "content", Order: 4},
	},
	"Contact": {
		{Name: "Inquiry Form", SectionType: "form", Order: 1},
		{Name: "Office Locations", SectionType: "map", Order: 2},
		{Name: "Call to Action", SectionType: "cta", Order: 3},
	},
}

var personalPortfolioSections = map[string][]Section{
	"Home": {
		{Name: "Hero", SectionType: "hero", Order: 1},
		{Name: "Featured Work", SectionType: "portfolio-grid", Order: 2},
		{Name: "Testimonials", SectionType: "testimonials", Order: 3},
		{Name: "Call to Action", SectionType: "cta", Order: 4},
	},
	"About": {
		{Name: "Bio", SectionType: "content", Order: 1},
		{Name: "Experience Timeline", SectionType: "timeline", Order: 2},
		{Name: "Skills & Tools", SectionType: "skills", Order: 3},
	},
	"Projects": {
		{Name: "All Projects", SectionType: "portfolio-grid", Order: 1},
	},
	"Contact": {
		{Name: "Contact Info", SectionType: "contact-info", Order: 1},
		{Name: "Contact Form", SectionType: "form", Order: 2},
	},
}

var realEstateSections = map[string][]Section{
	"Home": {
		{Name: "Hero", SectionType: "hero", Order: 1},
		{Name: "Featured Properties", SectionType: "property-grid", Order: 2},
		{Name: "Property Categories", SectionType: "category-grid", Order: 3},
		{Name: "Why Choose Us", SectionType: "features", Order: 4},
		{Name: "Agent Highlights", SectionType: "team-grid", Order: 5},
		{Name: "Testimonials", SectionType: "testimonials", Order: 6},
		{Name: "Call to Action", SectionType: "cta", Order: 7},
		{Name: "Footer", SectionType: "footer", Order: 8},
	},
	"Listings": {
		{Name: "Property Grid", SectionType: "property-grid", Order: 1},
		{Name: "Filters", SectionType: "filters", Order: 2},
	},
	"Property Details": {
		{Name: "Image Gallery", SectionType: "image-gallery", Order: 1},
		{Name: "Property Overview", SectionType: "content", Order: 2},
		{Name: "Amenities", SectionType: "amenities", Order: 3},
		{Name: "Location Map", SectionType: "map", Order: 4},
		{Name: "Agent Contact CTA", SectionType: "cta", Order: 5},
	},
	"About": {
		{Name: "Company Overview", SectionType: "content", Order: 1},
		{Name: "Experience", SectionType: "features", Order: 2},
		{Name: "Trust Badges", SectionType: "trust-badges", Order: 3},
	},
	"Contact": {
		{Name: "Inquiry Form", SectionType: "form", Order: 1},
		{Name: "Office Location", SectionType: "map", Order: 2},
	},
}

var educationalSections = map[string][]Section{
	"Home": {
		{Name: "Hero", SectionType: "hero", Order: 1},
		{Name: "Courses", SectionType: "course-list", Order: 2},
		{Name: "Why Choose Us", SectionType: "features", Order: 3},
		{Name: "Statistics", SectionType: "statistics", Order: 4},
		{Name: "Testimonials", SectionType: "testimonials", Order: 5},
		{Name: "Call to Action", SectionType: "cta", Order: 6},
		{Name: "Footer", SectionType: "footer", Order: 7},
	},
	"Courses": {
		{Name: "Course List", SectionType: "course-list", Order: 1},
		{Name: "Course Details", SectionType: "course-details", Order: 2},
	},
	"About": {
		{Name: "Institution Overview", SectionType: "content", Order: 1},
		{Name: "Mission", SectionType: "content", Order: 2},
		{Name: "Faculty", SectionType: "team-grid", Order: 3},
	},
	"Contact": {
		{Name: "Inquiry Form", SectionType: "form", Order: 1},
		{Name: "Campus Information", SectionType: "contact-info", Order: 2},
	},
}

var healthcareSections = map[string][]Section{
	"Home": {
		{Name: "Hero", SectionType: "hero", Order: 1},
		{Name: "Services Snapshot", SectionType: "services-grid", Order: 2},
		{Name: "Specialties", SectionType: "content", Order: 3},
		{Name: "Why Choose Us", SectionType: "features", Order: 4},
		{Name: "Patient Stories", SectionType: "testimonials", Order: 5},
		{Name: "Call to Action", SectionType: "cta", Order: 6},
		{Name: "Footer", SectionType: "footer", Order: 7},
	},
	"Services": {
		{Name: "Service List", SectionType: "services-grid", Order: 1},
		{Name: "Department Details", SectionType: "content", Order: 2},
		{Name: "Facilities", SectionType: "features", Order: 3},
	},
	"About": {
		{Name: "Hospital Overview", SectionType: "content", Order: 1},
		{Name: "Mission & Values", SectionType: "content", Order: 2},
		{Name: "Medical Team", SectionType: "team-grid", Order: 3},
		{Name: "Accreditations", SectionType: "trust-badges", Order: 4},
	},
	"Contact": {
		{Name: "Book Appointment", SectionType: "form", Order: 1},
		{Name: "Emergency Contacts", SectionType: "contact-info", Order: 2},
		{Name: "Location Map", SectionType: "map", Order: 3},
	},
}

var travelTourismSections = map[string][]Section{
	"Home": {
		{Name: "Hero", SectionType: "hero", Order: 1},
		{Name: "Popular Packages", SectionType: "package-grid", Order: 2},
		{Name: "Experiences", SectionType: "experiences", Order: 3},
		{Name: "Why Travel With Us", SectionType: "features", Order: 4},
		{Name: "Testimonials", SectionType: "testimonials", Order: 5},
		{Name: "Call to Action", SectionType: "cta", Order: 6},
		{Name: "Footer", SectionType: "footer", Order: 7},
	},
	"Destinations": {
		{Name: "Destination Grid", SectionType: "destination-grid", Order: 1},
		{Name: "Destination Details", SectionType: "content", Order: 2},
	},
	"Packages": {
		{Name: "Package List", SectionType: "package-grid", Order: 1},
		{Name: "Package Details", SectionType: "content", Order: 2},
	},
	"About": {
		{Name: "Company Story", SectionType: "content", Order: 1},
		{Name: "Expertise", SectionType: "features", Order: 2},
	},
	"Contact": {
		{Name: "Booking Form", SectionType: "form", Order: 1},
		{Name: "Support Information", SectionType: "contact-info", Order: 2},
	},
}

var othersSections = map[string][]Section{
	"Home": {
		{Name: "Hero", SectionType: "hero", Order: 1},
		{Name: "Key Offerings", SectionType: "features", Order: 2},
		{Name: "Why Choose Us", SectionType: "content", Order: 3},
		{Name: "Social Proof", SectionType: "testimonials", Order: 4},
		{Name: "Call to Action", SectionType: "cta", Order: 5},
		{Name: "Footer", SectionType: "footer", Order: 6},
	},
	"About": {
		{Name: "Overview", SectionType: "content", Order: 1},
		{Name: "Mission", SectionType: "content", Order: 2},
		{Name: "Team", SectionType: "team-grid", Order: 3},
	},
	"Services": {
		{Name: "Service List", SectionType: "services-grid", Order: 1},
		{Name: "Service Details", SectionType: "content", Order: 2},
	},
	"Contact": {
		{Name: "Contact Form", SectionType: "form", Order: 1},
		{Name: "Contact Information", SectionType: "contact-info", Order: 2},
	},
}

// DefaultSections maps website type to page name to default sections
var DefaultSections = map[string]map[string][]Section{
	models.WebsiteTypeECommerce:         eCommerceSections,
	models.WebsiteTypeBusinessPortfolio: businessPortfolioSections,
	models.WebsiteTypePersonalPortfolio: personalPortfolioSections,
	models.WebsiteTypeRealEstate:        realEstateSections,
	models.WebsiteTypeEducational:       educationalSections,
	models.WebsiteTypeHealthcare:        healthcareSections,
	models.WebsiteTypeTravelTourism:     travelTourismSections,
	models.WebsiteTypeOthers:            othersSections,
}

// SectionsForPage returns the default sections for a page of a website
// type. Unknown types fall back to the Others set; unknown page names
// get no sections.
func SectionsForPage(websiteType, pageName string) []Section {
	websiteSections, ok := DefaultSections[websiteType]
	if !ok {
		websiteSections = DefaultSections[models.WebsiteTypeOthers]
	}
	return websiteSections[pageName]
}
