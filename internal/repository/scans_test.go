package repository

import (
	"fmt"
	"testing"
	"time"

	"github.com/gal099/qr-track-challenge/internal/models"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestScanRepository_Analytics(t *testing.T) {
	db := setupTestDB(t)
	qrRepo := NewQRCodeRepository(db)
	repo := NewScanRepository(db)

	qr := models.QRCode{ShortCode: "analytic", TargetURL: "https://example.com"}
	assert.NoError(t, qrRepo.Create(&qr))
	other := models.QRCode{ShortCode: "otherqr1", TargetURL: "https://example.org"}
	assert.NoError(t, qrRepo.Create(&other))

	t.Run("Zero Rows Yield Empty Collections", func(t *testing.T) {
		analytics, err := repo.Analytics(qr.ID)
		assert.NoError(t, err)
		assert.Equal(t, int64(0), analytics.TotalScans)
		assert.Empty(t, analytics.ScansByDate)
		assert.Empty(t, analytics.DeviceBreakdown)
		assert.Empty(t, analytics.BrowserBreakdown)
		assert.Empty(t, analytics.LocationBreakdown)
	})

	day1 := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	day2 := time.Date(2024, 3, 2, 10, 0, 0, 0, time.UTC)

	seed := []models.Scan{
		{QRCodeID: qr.ID, ScannedAt: day1, DeviceType: strPtr("mobile"), Browser: strPtr("Chrome"), Country: strPtr("AR"), City: strPtr("Buenos Aires")},
		{QRCodeID: qr.ID, ScannedAt: day1, DeviceType: strPtr("mobile"), Browser: strPtr("Chrome"), Country: strPtr("AR"), City: strPtr("Buenos Aires")},
		{QRCodeID: qr.ID, ScannedAt: day2, DeviceType: strPtr("desktop"), Browser: strPtr("Firefox"), Country: strPtr("JP"), City: strPtr("Tokyo")},
		{QRCodeID: qr.ID, ScannedAt: day2}, // all metadata missing
		// A scan for another code must never leak into the aggregates
		{QRCodeID: other.ID, ScannedAt: day2, DeviceType: strPtr("tablet"), Browser: strPtr("Safari")},
	}
	for i := range seed {
		assert.NoError(t, repo.Create(&seed[i]))
	}

	t.Run("Total Scans", func(t *testing.T) {
		analytics, err := repo.Analytics(qr.ID)
		assert.NoError(t, err)
		assert.Equal(t, int64(4), analytics.TotalScans)
	})

	t.Run("Scans By Date Ascending", func(t *testing.T) {
		analytics, err := repo.Analytics(qr.ID)
		assert.NoError(t, err)
		assert.Len(t, analytics.ScansByDate, 2)
		assert.Equal(t, "2024-03-01", analytics.ScansByDate[0].Date)
		assert.Equal(t, int64(2), analytics.ScansByDate[0].Count)
		assert.Equal(t, "2024-03-02", analytics.ScansByDate[1].Date)
		assert.Equal(t, int64(2), analytics.ScansByDate[1].Count)
	})

	t.Run("Device Breakdown Sums To Total", func(t *testing.T) {
		analytics, err := repo.Analytics(qr.ID)
		assert.NoError(t, err)

		var sum int64
		buckets := map[string]int64{}
		for _, d := range analytics.DeviceBreakdown {
			sum += d.Count
			buckets[d.DeviceType] = d.Count
		}
		assert.Equal(t, analytics.TotalScans, sum)
		assert.Equal(t, int64(2), buckets["mobile"])
		assert.Equal(t, int64(1), buckets["desktop"])
		assert.Equal(t, int64(1), buckets["unknown"]) // NULL coalesced
	})

	t.Run("Browser Breakdown Descending", func(t *testing.T) {
		analytics, err := repo.Analytics(qr.ID)
		assert.NoError(t, err)
		assert.Equal(t, "Chrome", analytics.BrowserBreakdown[0].Browser)
		assert.Equal(t, int64(2), analytics.BrowserBreakdown[0].Count)

		browsers := map[string]int64{}
		for _, b := range analytics.BrowserBreakdown {
			browsers[b.Browser] = b.Count
		}
		assert.Equal(t, int64(1), browsers["unknown"])
		assert.NotContains(t, browsers, "Safari") // other code's scan
	})

	t.Run("Location Breakdown", func(t *testing.T) {
		analytics, err := repo.Analytics(qr.ID)
		assert.NoError(t, err)
		assert.Equal(t, "AR", analytics.LocationBreakdown[0].Country)
		assert.Equal(t, "Buenos Aires", analytics.LocationBreakdown[0].City)
		assert.Equal(t, int64(2), analytics.LocationBreakdown[0].Count)
	})

	t.Run("Browser Breakdown Capped At 10", func(t *testing.T) {
		capQR := models.QRCode{ShortCode: "capbrows", TargetURL: "https://example.net"}
		assert.NoError(t, qrRepo.Create(&capQR))
		for i := 0; i < 12; i++ {
			s := models.Scan{QRCodeID: capQR.ID, ScannedAt: day1, Browser: strPtr(fmt.Sprintf("Browser%02d", i))}
			assert.NoError(t, repo.Create(&s))
		}

		analytics, err := repo.Analytics(capQR.ID)
		assert.NoError(t, err)
		assert.Len(t, analytics.BrowserBreakdown, 10)
	})

	t.Run("DB Error", func(t *testing.T) {
		dbErr := setupTestDB(t)
		dbErr.Migrator().DropTable(&models.Scan{})
		repoErr := NewScanRepository(dbErr)
		_, err := repoErr.Analytics(1)
		assert.Error(t, err)
	})
}
