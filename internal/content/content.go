// Package content holds the site copy: hero, sections, contact details and
// the terms page. Defaults can be overridden from a YAML file.
package content

import (
	_ "embed"
	"strings"
)

//go:embed terms.md
var defaultTerms string

// Card is one tile of a section grid.
type Card struct {
	Glyph       string `yaml:"glyph"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Accent      string `yaml:"accent"` // lipgloss color
}

// Section is one scroll-revealed block of the onboarding page.
type Section struct {
	ID          string   `yaml:"id"`
	Nav         string   `yaml:"nav"` // navbar label; empty hides it from the navbar
	Eyebrow     string   `yaml:"eyebrow"`
	Title       []string `yaml:"title"` // typed in order; the last part is highlighted
	Description string   `yaml:"description"`
	Body        []string `yaml:"body"`
	Cards       []Card   `yaml:"cards"`

	// Reveal configuration.
	Threshold float64 `yaml:"threshold"`
	Once      *bool   `yaml:"once"`
	Pulse     bool    `yaml:"pulse"`
}

// RevealOnce reports whether the section latches on first reveal. Defaults to true.
func (s Section) RevealOnce() bool {
	return s.Once == nil || *s.Once
}

// FullTitle joins the title parts with spaces.
func (s Section) FullTitle() string {
	return strings.Join(s.Title, " ")
}

// Office is a postal address block.
type Office struct {
	Label string   `yaml:"label"`
	Lines []string `yaml:"lines"`
}

// ContactInfo is the left column of the contact page.
type ContactInfo struct {
	Company string   `yaml:"company"`
	Offices []Office `yaml:"offices"`
	Mobile  string   `yaml:"mobile"`
	Email   string   `yaml:"email"`
}

// Site is everything the UI renders.
type Site struct {
	Name       string      `yaml:"name"`
	Tagline    string      `yaml:"tagline"`
	Logo       []string    `yaml:"logo"`
	Sections   []Section   `yaml:"sections"`
	Contact    ContactInfo `yaml:"contact"`
	TermsTitle string      `yaml:"terms_title"`
	Terms      string      `yaml:"terms"` // markdown
}

// Section returns the section with the given ID.
func (s Site) Section(id string) (Section, bool) {
	for _, sec := range s.Sections {
		if sec.ID == id {
			return sec, true
		}
	}
	return Section{}, false
}

func boolPtr(b bool) *bool { return &b }

// Default returns the built-in site content.
func Default() Site {
	return Site{
		Name:    "Web Sakha",
		Tagline: "Web Sakha: Your Trusted Partner in Software Innovation and Digital Outreach.",
		Logo: []string{
			"╦ ╦┌─┐┌┐   ╔═╗┌─┐┬┌─┬ ┬┌─┐",
			"║║║├┤ ├┴┐  ╚═╗├─┤├┴┐├─┤├─┤",
			"╚╩╝└─┘└─┘  ╚═╝┴ ┴┴ ┴┴ ┴┴ ┴",
		},
		Sections: []Section{
			{
				ID:        "hero-section",
				Nav:       "Home",
				Threshold: 0,
				Once:      boolPtr(false),
				Pulse:     true,
			},
			{
				ID:          "about-us-section",
				Nav:         "About Us",
				Eyebrow:     "OUR STORY & VALUES",
				Title:       []string{"Driving Innovation with a", "Purpose"},
				Description: "Learn about our journey, our core beliefs, and the vision that guides us in delivering exceptional solutions.",
				Threshold:   0.3,
				Cards: []Card{
					{Glyph: "bulb", Title: "Our Mission", Accent: "39",
						Description: "To empower businesses and individuals through cutting-edge software, mobile, and web solutions, fostering growth and innovation in the digital landscape."},
					{Glyph: "sparkles", Title: "Our Vision", Accent: "170",
						Description: "To be a global leader in technology solutions, recognized for our commitment to excellence, client success, and a collaborative, inclusive work environment."},
					{Glyph: "cube", Title: "Our Values", Accent: "214",
						Description: "Integrity, innovation, collaboration, and client satisfaction are at the heart of everything we do, driving our passion for impactful solutions."},
				},
			},
			{
				ID:          "our-services-section",
				Nav:         "Services",
				Eyebrow:     "What We Do",
				Title:       []string{"Our Core", "Offerings"},
				Description: "Explore the comprehensive range of services we provide, from concept to deployment and beyond.",
				Threshold:   0.3,
				Cards: []Card{
					{Glyph: "laptop", Title: "Software Development", Accent: "63",
						Description: "Crafting robust and scalable custom software solutions tailored to your unique business needs."},
					{Glyph: "mobile", Title: "Mobile & Web Development", Accent: "170",
						Description: "Building intuitive and high-performing mobile apps (iOS/Android) and responsive web experiences."},
					{Glyph: "bug", Title: "Testing & Quality Assurance", Accent: "42",
						Description: "Ensuring flawless functionality and performance through rigorous manual and automated testing processes."},
					{Glyph: "cloud", Title: "Deployment & Maintenance", Accent: "208",
						Description: "Seamless cloud deployment, continuous integration, and ongoing support for optimal operation."},
					{Glyph: "users", Title: "Social Media Management", Accent: "148",
						Description: "Developing engaging content strategies and managing your online presence for maximum reach and impact."},
				},
			},
			{
				ID:          "our-process-section",
				Nav:         "Our Process",
				Eyebrow:     "OUR STREAMLINED APPROACH",
				Title:       []string{"How We", "Bring Ideas to Life"},
				Description: "Our proven workflow ensures transparency, efficiency, and exceptional results from concept to deployment and beyond.",
				Threshold:   0.3,
				Cards: []Card{
					{Glyph: "chat", Title: "1. Discovery & Consultation", Accent: "63",
						Description: "We start by understanding your vision, challenges, and goals through in-depth discussions and requirement gathering."},
					{Glyph: "document", Title: "2. Planning & Strategy", Accent: "170",
						Description: "Detailed project planning, technology stack selection, and strategic roadmap creation to ensure a clear path forward."},
					{Glyph: "bulb", Title: "3. Design & Prototyping", Accent: "42",
						Description: "Crafting intuitive user experiences and visually stunning interfaces, followed by interactive prototypes for feedback."},
					{Glyph: "cog", Title: "4. Development & Iteration", Accent: "214",
						Description: "Agile development cycles with continuous integration, testing, and client feedback loops for iterative improvements."},
					{Glyph: "check", Title: "5. Quality Assurance & Testing", Accent: "203",
						Description: "Rigorous testing across all platforms and devices to identify and rectify any issues, ensuring a flawless product."},
					{Glyph: "globe", Title: "6. Deployment & Launch", Accent: "39",
						Description: "Seamless deployment to live environments, ensuring your solution is accessible and performs optimally from day one."},
					{Glyph: "support", Title: "7. Support & Optimization", Accent: "135",
						Description: "Ongoing maintenance, performance monitoring, and continuous optimization to ensure long-term success and scalability."},
				},
			},
			{
				ID:          "social-media-section",
				Nav:         "Social Media",
				Eyebrow:     "SOCIAL MEDIA MARKETING",
				Title:       []string{"Campaigns That", "Resonate"},
				Description: "Our expert team takes the reins of your social media presence, orchestrating campaigns that resonate with your target audience and drive tangible results.",
				Body: []string{
					"From initial conceptualization to daily execution and meticulous monitoring, we ensure every aspect of your social media strategy is handled with precision and care.",
					"We focus on creating engaging content, fostering community interaction, and leveraging data-driven insights to optimize your campaign performance continuously.",
				},
				Threshold: 0.2,
				Cards: []Card{
					{Glyph: "chart", Title: "Analytics & Reporting", Accent: "39",
						Description: "Track reach, engagement and conversions with clear reports that guide the next campaign."},
					{Glyph: "mail", Title: "Email Campaigns", Accent: "170",
						Description: "Targeted email journeys that complement your social presence and nurture leads."},
					{Glyph: "document", Title: "Content Creation", Accent: "42",
						Description: "Posts, visuals and copy crafted for each platform and your brand voice."},
					{Glyph: "users", Title: "Audience Targeting", Accent: "214",
						Description: "Segment and reach the people most likely to engage with your business."},
				},
			},
			{
				ID:          "software-development-section",
				Nav:         "Software Dev",
				Eyebrow:     "SOFTWARE DEVELOPMENT",
				Title:       []string{"Full-Stack Development:", "From Concept to Deployment"},
				Description: "We design, build and run complete products: web front ends, mobile apps, APIs and the cloud infrastructure beneath them.",
				Body: []string{
					"Modern technology stacks chosen for your scale and team.",
					"Automation-first delivery with workflow tools that remove repetitive work.",
				},
				Threshold: 0.3,
				Cards: []Card{
					{Glyph: "laptop", Title: "Web Applications", Accent: "63",
						Description: "Responsive, accessible web apps built on proven frameworks."},
					{Glyph: "mobile", Title: "Mobile Apps", Accent: "170",
						Description: "Native-feeling iOS and Android apps from a shared codebase."},
					{Glyph: "cog", Title: "Workflow Automation", Accent: "42",
						Description: "Integrations and automations that connect your tools end to end."},
				},
			},
		},
		Contact: ContactInfo{
			Company: "BHARAT INFOTECH SOLUTIONS",
			Offices: []Office{
				{Label: "Reg.Office:", Lines: []string{
					"104/209, Kamdhenu Complex,",
					"Opp. SBI, Near Gay Circle,",
					"Productivity Road, Vadodara, India-390020",
				}},
				{Label: "Corp. Office:", Lines: []string{
					"306-307, World Trade Centre,",
					"3rd Floor, Sayajigunj, Vadodara. India-390005",
				}},
			},
			Mobile: "+91-7567148677",
			Email:  "info@bharatinfotechsolutions.com",
		},
		TermsTitle: "Terms and Conditions – BULK MS",
		Terms:      defaultTerms,
	}
}
