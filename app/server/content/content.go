// Package content 提供站点各展示区块的静态内容。
// 这些内容只读，不提供任何修改入口。
package content

type Service struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Details     []string `json:"details"`
}

type Event struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Location    string `json:"location"`
	Type        string `json:"type"`
	Description string `json:"description"`
}

type Product struct {
	Name        string `json:"name"`
	Category    string `json:"category"`
	Description string `json:"description"`
}

type Model struct {
	Name      string   `json:"name"`
	Specialty []string `json:"specialty"`
}

var services = []Service{
	{
		Title:       "Digital Marketing Campaigns",
		Description: "Strategic digital campaigns that deliver measurable results and drive growth.",
		Details: []string{
			"Social media marketing and management",
			"SEO & content marketing strategies",
			"Paid advertising campaigns (PPC/SEM)",
			"Email marketing automation",
			"Analytics and performance tracking",
		},
	},
	{
		Title:       "Event Management",
		Description: "End-to-end event planning and execution that creates unforgettable experiences.",
		Details: []string{
			"Corporate event planning",
			"Product launch events",
			"Virtual & hybrid event solutions",
			"Conference & exhibition management",
			"Event marketing & promotion",
		},
	},
	{
		Title:       "Product Advertisement",
		Description: "Compelling product promotions that boost visibility and drive conversions.",
		Details: []string{
			"Product photography & videography",
			"E-commerce optimization",
			"Conversion-focused ad campaigns",
			"Product placement strategies",
			"Retail marketing support",
		},
	},
	{
		Title:       "Modeling & Talent Showcasing",
		Description: "Professional modeling services and talent management for various industries.",
		Details: []string{
			"Fashion & commercial modeling",
			"Product & promotional modeling",
			"Runway & event models",
			"Talent management services",
			"Portfolio development",
		},
	},
	{
		Title:       "Creative Strategy & Branding",
		Description: "Innovative branding solutions that help businesses stand out and connect with audiences.",
		Details: []string{
			"Brand identity development",
			"Visual & verbal brand strategy",
			"Creative direction & consultation",
			"Brand guidelines & asset creation",
			"Rebranding & brand evolution",
		},
	},
}

var highlights = []string{
	"Industry Expertise",
	"Data-Driven Approach",
	"Growth Strategies",
	"Fast Turnaround",
	"Seamless Integration",
	"Result Focused",
}

var events = []Event{
	{
		ID:          1,
		Title:       "Digital Marketing Summit 2025",
		Date:        "May 15-17, 2025",
		Time:        "9:00 AM - 5:00 PM",
		Location:    "Tech Convention Center, New York",
		Type:        "Conference",
		Description: "Join industry leaders and innovators for three days of insights, networking, and cutting-edge digital marketing strategies.",
	},
	{
		ID:          2,
		Title:       "Brand Evolution Workshop",
		Date:        "June 8, 2025",
		Time:        "10:00 AM - 4:00 PM",
		Location:    "Creative Hub, Los Angeles",
		Type:        "Workshop",
		Description: "An intensive one-day workshop focused on brand development, repositioning, and creating compelling brand narratives.",
	},
	{
		ID:          3,
		Title:       "E-Commerce Growth Symposium",
		Date:        "July 22, 2025",
		Time:        "9:00 AM - 6:00 PM",
		Location:    "Business Tower, Chicago",
		Type:        "Symposium",
		Description: "Discover strategies to boost your e-commerce performance, optimize conversion rates, and enhance customer experience.",
	},
	{
		ID:          4,
		Title:       "Social Media Innovation Forum",
		Date:        "August 14-15, 2025",
		Time:        "10:00 AM - 4:00 PM",
		Location:    "Digital Arena, San Francisco",
		Type:        "Forum",
		Description: "Explore the latest trends and innovations in social media marketing with hands-on sessions and expert panels.",
	},
	{
		ID:          5,
		Title:       "Content Creation Masterclass",
		Date:        "September 5, 2025",
		Time:        "1:00 PM - 5:00 PM",
		Location:    "Media Center, Miami",
		Type:        "Masterclass",
		Description: "Learn advanced techniques for creating compelling content that engages audiences and drives brand awareness.",
	},
	{
		ID:          6,
		Title:       "Product Launch Excellence",
		Date:        "October 19, 2025",
		Time:        "6:00 PM - 9:00 PM",
		Location:    "Grand Hotel, Seattle",
		Type:        "Gala Event",
		Description: "A premium networking event showcasing successful product launches and strategies for market penetration.",
	},
}

var products = []Product{
	{
		Name:        "UltraBoost Running Shoes",
		Category:    "Athletic Footwear",
		Description: "Premium performance running shoes with responsive cushioning and breathable design for maximum comfort.",
	},
	{
		Name:        "LuminaX Smart Watch",
		Category:    "Wearable Technology",
		Description: "Advanced smartwatch featuring health monitoring, activity tracking, and seamless smartphone integration.",
	},
	{
		Name:        "Organic Skincare Collection",
		Category:    "Beauty & Personal Care",
		Description: "All-natural skincare line featuring sustainably sourced ingredients and eco-friendly packaging.",
	},
	{
		Name:        "AirFlow Pro Headphones",
		Category:    "Audio Equipment",
		Description: "Premium wireless headphones with active noise cancellation and immersive sound quality.",
	},
	{
		Name:        "Artisan Coffee Brewer",
		Category:    "Home & Kitchen",
		Description: "Handcrafted coffee brewing system that combines elegant design with precision brewing technology.",
	},
	{
		Name:        "Eco-Friendly Backpack",
		Category:    "Fashion Accessories",
		Description: "Sustainable backpack made from recycled materials, featuring ergonomic design and smart organization.",
	},
}

var modelPortfolio = []Model{
	{Name: "Sophia Reynolds", Specialty: []string{"Fashion", "Commercial", "Runway"}},
	{Name: "James Wilson", Specialty: []string{"Editorial", "Fitness", "Commercial"}},
	{Name: "Emma Zhang", Specialty: []string{"Beauty", "Fashion", "Lifestyle"}},
	{Name: "Michael Brooks", Specialty: []string{"Commercial", "Acting", "Print"}},
	{Name: "Lily Chen", Specialty: []string{"Runway", "Editorial", "Swimwear"}},
	{Name: "Sarah Johnson", Specialty: []string{"Commercial", "Lifestyle", "Catalog"}},
	{Name: "Ethan Park", Specialty: []string{"Fashion", "Print", "Runway"}},
	{Name: "Oliver Smith", Specialty: []string{"Commercial", "Fitness", "Print"}},
	{Name: "Mia Thompson", Specialty: []string{"Commercial", "Print", "Acting"}},
}

func Services() []Service {
	return append([]Service(nil), services...)
}

func Highlights() []string {
	return append([]string(nil), highlights...)
}

func Events() []Event {
	return append([]Event(nil), events...)
}

func Products() []Product {
	return append([]Product(nil), products...)
}

func Models() []Model {
	return append([]Model(nil), modelPortfolio...)
}
