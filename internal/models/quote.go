package models

const (
	QuoteCategoryMotivation  = "motivation"
	QuoteCategoryMindfulness = "mindfulness"
	QuoteCategorySuccess     = "success"
	QuoteCategoryHealth      = "health"
	QuoteCategoryHappiness   = "happiness"
)

type DailyQuote struct {
	ID       string `json:"id"`
	Text     string `json:"text"`
	Author   string `json:"author"`
	Category string `json:"category"`
	Date     string `json:"date"`
}

// QuoteCatalog is the fixed pool the daily quote is drawn from. Date is
// stamped when a quote is picked for a given day.
func QuoteCatalog() []DailyQuote {
	return []DailyQuote{
		{ID: "1", Text: "The secret of getting ahead is getting started.", Author: "Mark Twain", Category: QuoteCategoryMotivation},
		{ID: "2", Text: "Success is the sum of small efforts repeated day in and day out.", Author: "Robert Collier", Category: QuoteCategorySuccess},
		{ID: "3", Text: "The present moment is the only time over which we have dominion.", Author: "Thich Nhat Hanh", Category: QuoteCategoryMindfulness},
		{ID: "4", Text: "Take care of your body. It's the only place you have to live.", Author: "Jim Rohn", Category: QuoteCategoryHealth},
		{ID: "5", Text: "Happiness is not something ready made. It comes from your own actions.", Author: "Dalai Lama", Category: QuoteCategoryHappiness},
	}
}
