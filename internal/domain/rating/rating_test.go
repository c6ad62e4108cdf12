package rating

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/barberdesk/booking-api/internal/models"
)

func TestAverageScore(t *testing.T) {
	t.Run("nil when there are no ratings", func(t *testing.T) {
		assert.Nil(t, AverageScore(nil))
		assert.Nil(t, AverageScore([]models.Rating{}))
	})

	t.Run("single rating", func(t *testing.T) {
		avg := AverageScore([]models.Rating{{Score: 4}})
		require.NotNil(t, avg)
		assert.Equal(t, 4.0, *avg)
	})

	t.Run("fractional average", func(t *testing.T) {
		avg := AverageScore([]models.Rating{{Score: 5}, {Score: 4}, {Score: 4}})
		require.NotNil(t, avg)
		assert.InDelta(t, 4.333, *avg, 0.001)
	})
}
