package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// Paris Gare de Lyon -> Lyon Part-Dieu -> Marseille Saint-Charles, with the
// reference manifest loaded.
func newParisMarseille(t *testing.T) (*Service, *Station, *Station, *Station) {
	t.Helper()

	ply, lpd, msc := NewStation("ply"), NewStation("lpd"), NewStation("msc")
	svc := NewService("7601", time.Date(2026, 1, 8, 0, 0, 0, 0, time.UTC))
	svc.LoadItinerary([]*Station{ply, lpd, msc})

	err := svc.LoadPassengerManifest([]*Passenger{
		NewPassenger(ply, lpd, -30, 20),
		NewPassenger(ply, lpd, -25, 30),
		NewPassenger(ply, lpd, -20, 40),
		NewPassenger(ply, lpd, -20, 40),
		NewPassenger(ply, msc, -10, 50),
	})
	require.NoError(t, err)

	return svc, ply, lpd, msc
}
