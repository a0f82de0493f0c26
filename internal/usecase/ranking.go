package usecase

import (
	"sort"

	"github.com/autorescue/flight-disruption-service/internal/domain"
)

// SortBucketOffers sorts a bucket's offers by ascending total price.
// Ties break on first-segment departure time, then on the carrier plus
// flight-number string, so the ordering is fully deterministic.
//
// Prices are compared by numeric value regardless of currency; no FX
// conversion is performed. Does NOT mutate the input slice.
func SortBucketOffers(offers []domain.FlightOffer) []domain.FlightOffer {
	if len(offers) <= 1 {
		return offers
	}

	result := make([]domain.FlightOffer, len(offers))
	copy(result, offers)

	sort.SliceStable(result, func(i, j int) bool {
		if cmp := result[i].Price.Total.Cmp(result[j].Price.Total); cmp != 0 {
			return cmp < 0
		}
		di, dj := result[i].FirstDeparture(), result[j].FirstDeparture()
		if !di.Equal(dj) {
			return di.Before(dj)
		}
		return result[i].FlightDesignator() < result[j].FlightDesignator()
	})

	return result
}

// RankBuckets sorts every bucket's offer list. The returned map contains
// an entry for each bucket present in the input; sorting never drops or
// duplicates offers.
func RankBuckets(buckets map[domain.BucketLabel][]domain.FlightOffer) map[domain.BucketLabel][]domain.FlightOffer {
	ranked := make(map[domain.BucketLabel][]domain.FlightOffer, len(buckets))
	for label, offers := range buckets {
		ranked[label] = SortBucketOffers(offers)
	}
	return ranked
}

// Summarize computes the total alternative count and the price range over
// all offers across all buckets. The range is nil when there are no
// offers: "no alternatives" must stay distinguishable from a zero-cost
// alternative.
func Summarize(buckets map[domain.BucketLabel][]domain.FlightOffer) (int, *domain.PriceRange) {
	total := 0
	var pr *domain.PriceRange

	for _, offers := range buckets {
		total += len(offers)
		for _, offer := range offers {
			if pr == nil {
				pr = &domain.PriceRange{
					Min:      offer.Price.Total,
					Max:      offer.Price.Total,
					Currency: offer.Price.Currency,
				}
				continue
			}
			if offer.Price.Total.LessThan(pr.Min) {
				pr.Min = offer.Price.Total
				pr.Currency = offer.Price.Currency
			}
			if offer.Price.Total.GreaterThan(pr.Max) {
				pr.Max = offer.Price.Total
			}
		}
	}

	return total, pr
}
