// Package articles serves the Ayurvedic reading feed.
package articles

import "context"

// Article is one feed entry.
type Article struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Source      string `json:"source"`
	ImageHint   string `json:"imageHint"`
	URL         string `json:"url"`
}

// Feed returns the ordered list of articles.
type Feed interface {
	Fetch(ctx context.Context) ([]Article, error)
}

// StaticFeed carries a curated list, so the feed works without any
// external dependency.
type StaticFeed struct{}

func NewStaticFeed() *StaticFeed { return &StaticFeed{} }

func (f *StaticFeed) Fetch(ctx context.Context) ([]Article, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return []Article{
		{
			Title:       "The Power of Turmeric: More Than Just a Spice",
			Description: "Discover the anti-inflammatory and antioxidant benefits of this golden spice and how to incorporate it into your daily routine for optimal health.",
			Source:      "AyurvedaToday.com",
			ImageHint:   "turmeric spice",
			URL:         "https://www.ayurveda.com/recipes/turmeric-the-golden-goddess-of-spices",
		},
		{
			Title:       "Yoga for Digestion: 5 Poses to Soothe Your Gut",
			Description: "Explore gentle yoga postures that can aid digestion, reduce bloating, and improve your overall gut health. Suitable for all levels.",
			Source:      "Wellbeing Journal",
			ImageHint:   "yoga pose",
			URL:         "https://www.yogajournal.com/practice-section/yoga-for-a-happy-belly/",
		},
		{
			Title:       "Understanding Your Dosha: A Beginner's Guide",
			Description: "An introduction to the three doshas—Vata, Pitta, and Kapha—and how understanding your unique constitution can lead to a more balanced life.",
			Source:      "The Ayurvedic Path",
			ImageHint:   "meditation nature",
			URL:         "https://www.ayurveda.com/resources/articles/ayurveda-a-brief-introduction-and-guide",
		},
		{
			Title:       "Ashwagandha: The Stress-Busting Adaptogen",
			Description: "Learn about the science behind Ashwagandha, an ancient herb known for its ability to reduce stress, improve energy, and enhance focus.",
			Source:      "Herbal Wisdom Magazine",
			ImageHint:   "herbal remedy",
			URL:         "https://www.verywellhealth.com/ashwagandha-benefits-uses-and-more-8645470",
		},
	}, nil
}
