package site

import "mobintix/site-service/internal/model"

// FallbackProjects is the static showcase served when the projects
// collection is unreachable or empty. Keeps the Projects page populated
// during database incidents and on a fresh deployment.
func FallbackProjects() []model.Project {
	return []model.Project{
		{
			ID:          1,
			Title:       "RetailHub Storefront",
			Category:    "E-Commerce",
			Description: "Multi-vendor storefront with localized pricing and checkout.",
			Image:       "/images/projects/retailhub.webp",
			Tags:        []string{"Next.js", "Stripe", "PostgreSQL"},
			Link:        "https://retailhub.example.com",
		},
		{
			ID:          2,
			Title:       "FleetTrack Mobile",
			Category:    "Mobile",
			Description: "Driver companion app with live dispatch and route updates.",
			Image:       "/images/projects/fleettrack.webp",
			Tags:        []string{"React Native", "WebSocket"},
			Link:        "https://fleettrack.example.com",
		},
		{
			ID:          3,
			Title:       "Ledgerly Dashboard",
			Category:    "Web",
			Description: "Accounting dashboard with multi-currency reporting.",
			Image:       "/images/projects/ledgerly.webp",
			Tags:        []string{"React", "Go", "Redis"},
			Link:        "https://ledgerly.example.com",
		},
		{
			ID:          4,
			Title:       "Brandline Identity",
			Category:    "Design",
			Description: "Brand system and component library for a fintech launch.",
			Image:       "/images/projects/brandline.webp",
			Tags:        []string{"Figma", "Design System"},
			Link:        "https://brandline.example.com",
		},
	}
}
