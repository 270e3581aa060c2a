package services

import (
	"math/rand"

	"github.com/habitmate/habitmate/internal/models"
)

type QuoteRepository interface {
	LoadDailyQuote() (*models.DailyQuote, error)
	SaveDailyQuote(quote models.DailyQuote) error
}

type QuoteService struct {
	quotes QuoteRepository
}

func NewQuoteService(quotes QuoteRepository) *QuoteService {
	return &QuoteService{quotes: quotes}
}

// QuoteOfTheDay returns the stored quote when it was picked today,
// otherwise draws a random one from the fixed catalog and persists it
// stamped with today's date.
func (service *QuoteService) QuoteOfTheDay(today string) (models.DailyQuote, error) {
	stored, err := service.quotes.LoadDailyQuote()
	if err != nil {
		return models.DailyQuote{}, err
	}
	if stored != nil && stored.Date == today {
		return *stored, nil
	}

	catalog := models.QuoteCatalog()
	quote := catalog[rand.Intn(len(catalog))]
	quote.Date = today
	return quote, service.quotes.SaveDailyQuote(quote)
}
