package db

import (
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/oggyb/nearby/internal/geo"
)

// seedCenter is the point demo users are scattered around (central London).
var seedCenter = geo.Point{Lat: 51.5074, Lng: -0.1278}

// SeedDemoData resets the database and populates it with demo users and geofences.
//
// Behavior:
//  1. Clears swipes, matches, waves, notifications, geofences and users.
//  2. Creates 20 onboarded users (10 male, 10 female) within ~8 km of the
//     center, with hashed passwords, mixed tiers and verification scores.
//  3. Creates one circular and one polygon geofence around the center.
//
// Works on Postgres (geography column filled too), MySQL and SQLite.
func SeedDemoData(db *gorm.DB, log *slog.Logger) error {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	if err := clearAll(db); err != nil {
		return err
	}
	log.Info("cleared existing data")

	hash, err := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	spatial := SpatialFor(db)
	tiers := []SubscriptionTier{TierFree, TierFree, TierBasic, TierPremium, TierVIP}
	now := time.Now().UTC()

	for i := 1; i <= 20; i++ {
		gender, interestedIn := "male", "female"
		if i > 10 {
			gender, interestedIn = "female", "male"
		}
		onboarded := now.Add(-time.Duration(r.Intn(90*24)) * time.Hour)
		lastSeen := now.Add(-time.Duration(r.Intn(120)) * time.Minute)

		user := User{
			Username:          fmt.Sprintf("user%d", i),
			Email:             fmt.Sprintf("user%d@example.com", i),
			PasswordHash:      string(hash),
			DisplayName:       fmt.Sprintf("User %d", i),
			Age:               18 + r.Intn(30),
			Gender:            gender,
			InterestedIn:      interestedIn,
			Profile:           datatypes.NewJSONType(ProfileDetails{City: "London"}),
			OnboardedAt:       &onboarded,
			VerificationScore: r.Intn(100),
			SubscriptionTier:  tiers[r.Intn(len(tiers))],
			IsVisible:         true,
			IsActive:          true,
			LastSeenAt:        &lastSeen,
		}
		if err := db.Create(&user).Error; err != nil {
			return fmt.Errorf("failed to seed user: %w", err)
		}

		// scatter within ~8 km
		p := geo.Point{
			Lat: seedCenter.Lat + (r.Float64()-0.5)*0.14,
			Lng: seedCenter.Lng + (r.Float64()-0.5)*0.22,
		}
		cols := spatial.LocationColumns(p)
		cols["last_location_update"] = lastSeen
		if err := db.Model(&User{}).Where("id = ?", user.ID).Updates(cols).Error; err != nil {
			return fmt.Errorf("failed to seed location: %w", err)
		}
	}
	log.Info("seeded users", "count", 20)

	fences := []Geofence{
		{
			Name:         "Trafalgar Square",
			Kind:         FenceCircle,
			Trigger:      TriggerBoth,
			IsActive:     true,
			RadiusMeters: 400,
			Notification: datatypes.NewJSONType(FenceNotification{
				Title: "You're near Trafalgar Square",
				Body:  "Meet people around the square tonight.",
			}),
			CenterLatitude:  51.5080,
			CenterLongitude: -0.1281,
		},
		{
			Name:     "Soho",
			Kind:     FencePolygon,
			Trigger:  TriggerEnter,
			IsActive: true,
			Polygon: datatypes.NewJSONType(geo.Ring{
				{-0.1400, 51.5100}, {-0.1290, 51.5100}, {-0.1290, 51.5160}, {-0.1400, 51.5160},
			}),
			Notification: datatypes.NewJSONType(FenceNotification{
				Title: "Welcome to Soho",
				Body:  "Lots of people nearby right now.",
			}),
		},
	}
	for i := range fences {
		if err := db.Create(&fences[i]).Error; err != nil {
			return fmt.Errorf("failed to seed geofence: %w", err)
		}
		if fences[i].Kind != FencePolygon {
			continue
		}
		if col, val := spatial.BoundaryColumn(fences[i].Polygon.Data()); col != "" {
			if err := db.Model(&Geofence{}).Where("id = ?", fences[i].ID).Update(col, val).Error; err != nil {
				return fmt.Errorf("failed to seed geofence boundary: %w", err)
			}
		}
	}
	log.Info("seeded geofences", "count", len(fences))

	return nil
}

func clearAll(db *gorm.DB) error {
	tables := []string{"swipes", "matches", "waves", "notifications", "geofences", "users"}

	switch db.Dialector.Name() {
	case DialectPostgres:
		if err := db.Exec("TRUNCATE TABLE swipes, matches, waves, notifications, geofences, users CASCADE").Error; err != nil {
			return fmt.Errorf("failed to truncate tables: %w", err)
		}
	default:
		for _, t := range tables {
			if err := db.Exec("DELETE FROM " + t).Error; err != nil {
				return fmt.Errorf("failed to clear %s: %w", t, err)
			}
		}
	}
	return nil
}
