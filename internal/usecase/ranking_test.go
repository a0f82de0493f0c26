package usecase

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/autorescue/flight-disruption-service/internal/domain"
)

// testOffer builds a one-segment offer with the given identity, price and
// departure time.
func testOffer(id, total, currency, carrier, number, departAt string) domain.FlightOffer {
	at, err := time.Parse(time.RFC3339, departAt)
	if err != nil {
		panic(err)
	}
	return domain.FlightOffer{
		ID: id,
		Price: domain.Price{
			Total:    decimal.RequireFromString(total),
			Currency: currency,
		},
		Segments: []domain.Segment{
			{
				CarrierCode: carrier,
				Number:      number,
				Departure:   domain.AirportTime{Airport: "JFK", At: at},
				Arrival:     domain.AirportTime{Airport: "LAX", At: at.Add(6 * time.Hour)},
			},
		},
	}
}

func offerIDs(offers []domain.FlightOffer) []string {
	ids := make([]string, len(offers))
	for i, o := range offers {
		ids[i] = o.ID
	}
	return ids
}

func TestSortBucketOffers(t *testing.T) {
	t.Run("sorts by ascending price", func(t *testing.T) {
		offers := []domain.FlightOffer{
			testOffer("expensive", "300.00", "USD", "AA", "1", "2025-11-15T08:00:00Z"),
			testOffer("cheap", "100.00", "USD", "AA", "2", "2025-11-15T09:00:00Z"),
			testOffer("middle", "200.00", "USD", "AA", "3", "2025-11-15T10:00:00Z"),
		}

		sorted := SortBucketOffers(offers)

		assert.Equal(t, []string{"cheap", "middle", "expensive"}, offerIDs(sorted))
	})

	t.Run("price tie breaks on departure time", func(t *testing.T) {
		offers := []domain.FlightOffer{
			testOffer("late", "100.00", "USD", "AA", "1", "2025-11-15T18:00:00Z"),
			testOffer("early", "100.00", "USD", "AA", "2", "2025-11-15T06:00:00Z"),
		}

		sorted := SortBucketOffers(offers)

		assert.Equal(t, []string{"early", "late"}, offerIDs(sorted))
	})

	t.Run("full tie breaks on flight designator", func(t *testing.T) {
		offers := []domain.FlightOffer{
			testOffer("ua", "100.00", "USD", "UA", "50", "2025-11-15T08:00:00Z"),
			testOffer("aa", "100.00", "USD", "AA", "50", "2025-11-15T08:00:00Z"),
		}

		sorted := SortBucketOffers(offers)

		assert.Equal(t, []string{"aa", "ua"}, offerIDs(sorted))
	})

	t.Run("equal decimal prices with different scales compare equal", func(t *testing.T) {
		offers := []domain.FlightOffer{
			testOffer("b", "100.0", "USD", "AA", "2", "2025-11-15T10:00:00Z"),
			testOffer("a", "100.00", "USD", "AA", "1", "2025-11-15T08:00:00Z"),
		}

		sorted := SortBucketOffers(offers)

		// 100.0 and 100.00 are the same price, so the earlier departure wins.
		assert.Equal(t, []string{"a", "b"}, offerIDs(sorted))
	})

	t.Run("mixed currencies compare by numeric value only", func(t *testing.T) {
		offers := []domain.FlightOffer{
			testOffer("usd", "150.00", "USD", "AA", "1", "2025-11-15T08:00:00Z"),
			testOffer("idr", "120.00", "IDR", "GA", "2", "2025-11-15T09:00:00Z"),
		}

		sorted := SortBucketOffers(offers)

		// No FX conversion: 120 IDR sorts before 150 USD.
		assert.Equal(t, []string{"idr", "usd"}, offerIDs(sorted))
	})

	t.Run("does not mutate the input slice", func(t *testing.T) {
		offers := []domain.FlightOffer{
			testOffer("b", "200.00", "USD", "AA", "1", "2025-11-15T08:00:00Z"),
			testOffer("a", "100.00", "USD", "AA", "2", "2025-11-15T09:00:00Z"),
		}

		_ = SortBucketOffers(offers)

		assert.Equal(t, []string{"b", "a"}, offerIDs(offers))
	})

	t.Run("empty and single-element slices pass through", func(t *testing.T) {
		assert.Empty(t, SortBucketOffers(nil))

		single := []domain.FlightOffer{testOffer("only", "100.00", "USD", "AA", "1", "2025-11-15T08:00:00Z")}
		assert.Equal(t, single, SortBucketOffers(single))
	})
}

func TestRankBuckets(t *testing.T) {
	buckets := map[domain.BucketLabel][]domain.FlightOffer{
		domain.BucketSameDay: {
			testOffer("2", "200.00", "USD", "AA", "1", "2025-11-15T08:00:00Z"),
			testOffer("1", "100.00", "USD", "AA", "2", "2025-11-15T09:00:00Z"),
		},
		domain.BucketNextDay:       {},
		domain.BucketAlternateDate: {testOffer("3", "90.00", "USD", "AA", "3", "2025-11-13T09:00:00Z")},
	}

	ranked := RankBuckets(buckets)

	require.Len(t, ranked, 3)
	assert.Equal(t, []string{"1", "2"}, offerIDs(ranked[domain.BucketSameDay]))
	assert.Empty(t, ranked[domain.BucketNextDay])
	assert.Equal(t, []string{"3"}, offerIDs(ranked[domain.BucketAlternateDate]))
}

func TestSummarize(t *testing.T) {
	t.Run("counts offers and computes price range across buckets", func(t *testing.T) {
		buckets := map[domain.BucketLabel][]domain.FlightOffer{
			domain.BucketSameDay: {
				testOffer("1", "123.44", "USD", "AA", "1", "2025-11-15T08:00:00Z"),
				testOffer("2", "140.00", "USD", "AA", "2", "2025-11-15T09:00:00Z"),
			},
			domain.BucketAlternateDate: {
				testOffer("3", "118.95", "USD", "AA", "3", "2025-11-13T09:00:00Z"),
			},
		}

		total, pr := Summarize(buckets)

		assert.Equal(t, 3, total)
		require.NotNil(t, pr)
		assert.Equal(t, "118.95", pr.Min.String())
		assert.Equal(t, "140", pr.Max.String())
		assert.Equal(t, "USD", pr.Currency)
	})

	t.Run("no offers yields nil price range", func(t *testing.T) {
		buckets := map[domain.BucketLabel][]domain.FlightOffer{
			domain.BucketSameDay:       {},
			domain.BucketNextDay:       {},
			domain.BucketAlternateDate: {},
		}

		total, pr := Summarize(buckets)

		assert.Zero(t, total)
		assert.Nil(t, pr, "empty result must be distinguishable from a zero price")
	})

	t.Run("single zero-priced offer yields a zero range, not nil", func(t *testing.T) {
		buckets := map[domain.BucketLabel][]domain.FlightOffer{
			domain.BucketSameDay: {testOffer("free", "0.00", "USD", "AA", "1", "2025-11-15T08:00:00Z")},
		}

		total, pr := Summarize(buckets)

		assert.Equal(t, 1, total)
		require.NotNil(t, pr)
		assert.True(t, pr.Min.IsZero())
		assert.True(t, pr.Max.IsZero())
	})

	t.Run("currency follows the cheapest offer", func(t *testing.T) {
		buckets := map[domain.BucketLabel][]domain.FlightOffer{
			domain.BucketSameDay: {
				testOffer("usd", "150.00", "USD", "AA", "1", "2025-11-15T08:00:00Z"),
				testOffer("idr", "120.00", "IDR", "GA", "2", "2025-11-15T09:00:00Z"),
			},
		}

		_, pr := Summarize(buckets)

		require.NotNil(t, pr)
		assert.Equal(t, "IDR", pr.Currency)
	})
}
