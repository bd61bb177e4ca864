package sheet

import (
	"context"
	"fmt"
	"time"

	"github.com/kapu/akin-sheet-go/internal/constants"
	"github.com/kapu/akin-sheet-go/internal/domain"
	"github.com/kapu/akin-sheet-go/internal/util"
	"github.com/kapu/akin-sheet-go/pkg/errors"
	"go.uber.org/zap"
)

// ProfileStore owns the singleton profile row.
type ProfileStore struct {
	repo      ProfileRepository
	codec     *ProfileCodec
	profileID string
	now       func() time.Time
	logger    *zap.Logger
}

func NewProfileStore(repo ProfileRepository, codec *ProfileCodec, profileID string, logger *zap.Logger) *ProfileStore {
	if profileID == "" {
		profileID = domain.DefaultProfileID
	}
	return &ProfileStore{
		repo:      repo,
		codec:     codec,
		profileID: profileID,
		now:       util.NowUTC,
		logger:    logger,
	}
}

// WithClock replaces the time source used for created_at/updated_at.
func (s *ProfileStore) WithClock(now func() time.Time) *ProfileStore {
	s.now = now
	return s
}

func (s *ProfileStore) ProfileID() string {
	return s.profileID
}

// Read returns the decoded profile, or nil if it has never been written.
func (s *ProfileStore) Read(ctx context.Context) (*domain.CharacterProfile, error) {
	row, err := s.repo.FindProfile(ctx, s.profileID)
	if err != nil {
		return nil, fmt.Errorf("read profile: %w", err)
	}
	return s.codec.Decode(row), nil
}

// Upsert replaces the whole profile with input. Omitted fields are written as
// their defaults, not merged with the stored row.
func (s *ProfileStore) Upsert(ctx context.Context, input domain.ProfileInput) (*domain.CharacterProfile, error) {
	row, err := s.codec.Encode(s.profileID, input, s.now())
	if err != nil {
		return nil, fmt.Errorf("upsert profile: %w", err)
	}

	if err := s.repo.UpsertProfile(ctx, row); err != nil {
		return nil, fmt.Errorf("upsert profile: %w", err)
	}

	profile, err := s.Read(ctx)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, errors.NewStoreError("profile missing after upsert", "upsert", constants.Tables.Profile, nil)
	}

	s.logger.Info("Profile upserted",
		zap.String("id", profile.ID),
		zap.String("name", profile.Name),
	)
	return profile, nil
}
