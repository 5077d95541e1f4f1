package nearbyv1

import (
	"time"

	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/oggyb/nearby/internal/db"
)

// NewProfile renders the public view of u as seen at now.
func NewProfile(u *db.User, now time.Time) *Profile {
	details := u.Profile.Data()
	return &Profile{
		UserId:            u.ID,
		Username:          u.Username,
		DisplayName:       u.DisplayName,
		Age:               int32(u.Age),
		Gender:            u.Gender,
		Bio:               details.Bio,
		City:              details.City,
		Interests:         details.Interests,
		Photos:            details.Photos,
		VerificationScore: int32(u.VerificationScore),
		IsBoosted:         u.IsBoosted(now),
		Online:            db.IsOnline(u.LastSeenAt, now),
		LastSeenAt:        TimestampOrNil(u.LastSeenAt),
	}
}

// NewWave renders a wave; from may be nil when the sender is not loaded.
func NewWave(w *db.Wave, from *db.User, now time.Time) *Wave {
	out := &Wave{
		Id:         w.ID,
		FromUserId: w.FromUserID,
		ToUserId:   w.ToUserID,
		IsRead:     w.IsRead,
		CreatedAt:  timestamppb.New(w.CreatedAt),
	}
	if from != nil {
		out.From = NewProfile(from, now)
	}
	return out
}

// TimestampOrNil keeps an unset time unset on the wire.
func TimestampOrNil(t *time.Time) *timestamppb.Timestamp {
	if t == nil {
		return nil
	}
	return timestamppb.New(*t)
}
