package nearbyv1_test

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"google.golang.org/protobuf/testing/protocmp"
	"google.golang.org/protobuf/types/known/timestamppb"
	"gorm.io/datatypes"

	pb "github.com/oggyb/nearby/internal/api/nearbyv1"
	"github.com/oggyb/nearby/internal/db"
)

func TestNewProfile(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	seen := now.Add(-2 * time.Minute)
	boost := now.Add(10 * time.Minute)

	u := &db.User{
		ID:                "u1",
		Username:          "alice",
		DisplayName:       "Alice",
		Age:               29,
		Gender:            "female",
		VerificationScore: 80,
		LastSeenAt:        &seen,
		BoostedUntil:      &boost,
		Profile: datatypes.NewJSONType(db.ProfileDetails{
			Bio:       "climber",
			City:      "London",
			Interests: []string{"climbing", "coffee"},
		}),
	}

	want := &pb.Profile{
		UserId:            "u1",
		Username:          "alice",
		DisplayName:       "Alice",
		Age:               29,
		Gender:            "female",
		Bio:               "climber",
		City:              "London",
		Interests:         []string{"climbing", "coffee"},
		VerificationScore: 80,
		IsBoosted:         true,
		Online:            true,
		LastSeenAt:        timestamppb.New(seen),
	}
	if diff := cmp.Diff(want, pb.NewProfile(u, now), protocmp.Transform()); diff != "" {
		t.Errorf("NewProfile mismatch (-want +got):\n%s", diff)
	}

	later := now.Add(time.Hour)
	want.IsBoosted, want.Online = false, false
	if diff := cmp.Diff(want, pb.NewProfile(u, later), protocmp.Transform()); diff != "" {
		t.Errorf("NewProfile an hour later mismatch (-want +got):\n%s", diff)
	}
}

func TestNewProfile_NeverSeen(t *testing.T) {
	got := pb.NewProfile(&db.User{ID: "u2"}, time.Now())
	if got.GetLastSeenAt() != nil || got.GetOnline() {
		t.Fatalf("expected no last seen and offline, got %v", got)
	}
}

func TestNewWave(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	w := &db.Wave{ID: "w1", FromUserID: "a", ToUserID: "b", CreatedAt: now}

	want := &pb.Wave{Id: "w1", FromUserId: "a", ToUserId: "b", CreatedAt: timestamppb.New(now)}
	if diff := cmp.Diff(want, pb.NewWave(w, nil, now), protocmp.Transform()); diff != "" {
		t.Errorf("NewWave mismatch (-want +got):\n%s", diff)
	}

	got := pb.NewWave(w, &db.User{ID: "a", Username: "a"}, now)
	if got.GetFrom().GetUserId() != "a" {
		t.Fatalf("expected sender profile, got %v", got.GetFrom())
	}
}
