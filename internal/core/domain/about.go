package domain

import "time"

// AboutContent is the singleton "About" page document edited from the
// admin back office. Missing sections fall back to DefaultAboutContent.
type AboutContent struct {
	Hero       AboutHero      `json:"hero" bson:"hero"`
	Stats      []AboutStat    `json:"stats" bson:"stats"`
	Mission    AboutMission   `json:"mission" bson:"mission"`
	Features   []AboutFeature `json:"features" bson:"features"`
	Milestones []Milestone    `json:"milestones" bson:"milestones"`
	Team       AboutTeam      `json:"team" bson:"team"`
}

type AboutHero struct {
	Title        string `json:"title" bson:"title"`
	Subtitle     string `json:"subtitle" bson:"subtitle"`
	Description  string `json:"description" bson:"description"`
	CTAPrimary   string `json:"ctaPrimary" bson:"cta_primary"`
	CTASecondary string `json:"ctaSecondary" bson:"cta_secondary"`
}

type AboutStat struct {
	Number string `json:"number" bson:"number"`
	Label  string `json:"label" bson:"label"`
}

type AboutAudience struct {
	Title       string   `json:"title" bson:"title"`
	Description string   `json:"description" bson:"description"`
	Features    []string `json:"features" bson:"features"`
}

type AboutMission struct {
	Title       string        `json:"title" bson:"title"`
	Description string        `json:"description" bson:"description"`
	ForWriters  AboutAudience `json:"forWriters" bson:"for_writers"`
	ForReaders  AboutAudience `json:"forReaders" bson:"for_readers"`
}

type AboutFeature struct {
	Icon        string `json:"icon" bson:"icon"`
	Title       string `json:"title" bson:"title"`
	Description string `json:"description" bson:"description"`
}

type Milestone struct {
	Year        string `json:"year" bson:"year"`
	Title       string `json:"title" bson:"title"`
	Description string `json:"description" bson:"description"`
}

type AboutTeam struct {
	Title       string `json:"title" bson:"title"`
	Description string `json:"description" bson:"description"`
}

// SocialLinks are optional per-member profile links.
type SocialLinks struct {
	Twitter  string `json:"twitter,omitempty" bson:"twitter,omitempty"`
	LinkedIn string `json:"linkedin,omitempty" bson:"linkedin,omitempty"`
	GitHub   string `json:"github,omitempty" bson:"github,omitempty"`
}

// TeamMember is a soft-deactivatable, ordered entry on the About page.
type TeamMember struct {
	ID          string      `json:"id" bson:"id"`
	Name        string      `json:"name" bson:"name"`
	Position    string      `json:"position" bson:"position"`
	Bio         string      `json:"bio" bson:"bio"`
	ImageURL    string      `json:"imageUrl" bson:"image_url"`
	Email       string      `json:"email,omitempty" bson:"email,omitempty"`
	SocialLinks SocialLinks `json:"socialLinks,omitempty" bson:"social_links,omitempty"`
	Order       int         `json:"order" bson:"order"`
	IsActive    bool        `json:"isActive" bson:"is_active"`
	CreatedAt   time.Time   `json:"createdAt" bson:"created_at"`
	UpdatedAt   time.Time   `json:"updatedAt" bson:"updated_at"`
}

// TeamMemberUpdate is a partial update of mutable member fields.
type TeamMemberUpdate struct {
	Name        *string
	Position    *string
	Bio         *string
	ImageURL    *string
	Email       *string
	SocialLinks *SocialLinks
	Order       *int
	IsActive    *bool
}

// DefaultAboutContent seeds the About page before any admin edit.
func DefaultAboutContent() AboutContent {
	return AboutContent{
		Hero: AboutHero{
			Title:        "About BlogHub",
			Subtitle:     "BlogHub",
			Description:  "BlogHub is more than just a blogging platform: a community where writers and readers come together to share stories, ideas and inspiration.",
			CTAPrimary:   "Start Writing Today",
			CTASecondary: "Explore Blogs",
		},
		Stats: []AboutStat{
			{Number: "50K+", Label: "Active Writers"},
			{Number: "500K+", Label: "Blog Posts"},
			{Number: "10M+", Label: "Monthly Readers"},
			{Number: "120+", Label: "Countries"},
		},
		Mission: AboutMission{
			Title:       "Our Mission",
			Description: "To empower every voice by providing a platform where stories can be shared, discovered and celebrated.",
			ForWriters: AboutAudience{
				Title:       "For Writers",
				Description: "Tools and an audience for seasoned authors and newcomers alike.",
				Features:    []string{"Easy-to-use writing tools", "Built-in audience growth", "Real-time analytics"},
			},
			ForReaders: AboutAudience{
				Title:       "For Readers",
				Description: "Discover content from writers around the world and follow your favorites.",
				Features:    []string{"Personalized recommendations", "Save your favorite articles", "Engage with writers directly"},
			},
		},
		Features: []AboutFeature{
			{Icon: "PenTool", Title: "Easy Writing Experience", Description: "An intuitive editor makes writing and formatting effortless."},
			{Icon: "Globe", Title: "Global Reach", Description: "Share your stories with readers from around the world."},
			{Icon: "Users", Title: "Vibrant Community", Description: "Thousands of writers who share, support and inspire each other."},
			{Icon: "Shield", Title: "Safe Space", Description: "A respectful and inclusive environment comes first."},
		},
		Milestones: []Milestone{
			{Year: "2020", Title: "BlogHub Founded", Description: "Started with a simple mission: the best platform for writers and readers."},
			{Year: "2021", Title: "First 10K Users", Description: "Reached the first major milestone with 10,000 writers."},
			{Year: "2022", Title: "Mobile App Launch", Description: "Expanded reach with dedicated mobile apps."},
			{Year: "2023", Title: "Global Recognition", Description: "Featured as a top emerging platform for digital content creators."},
		},
		Team: AboutTeam{
			Title:       "Meet Our Team",
			Description: "The passionate people behind BlogHub",
		},
	}
}
