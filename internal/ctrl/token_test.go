package ctrl

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/ichewm/MedicalBible-sub005/internal/auth/jwt"
	"github.com/ichewm/MedicalBible-sub005/internal/cache/redis"
	"github.com/ichewm/MedicalBible-sub005/internal/config"
	md "github.com/ichewm/MedicalBible-sub005/internal/models"
	"github.com/ichewm/MedicalBible-sub005/tests/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func testConfig() config.Config {
	conf := config.Config{}
	conf.Token.FamilyLifetime = time.Hour * 24 * 7
	conf.Token.AccessDuration = time.Minute * 30
	return conf
}

func TestController_Issue(t *testing.T) {
	ctrlMock := gomock.NewController(t)
	defer ctrlMock.Finish()

	mockAuth := mocks.NewMockPort(ctrlMock)
	mockRepo := mocks.NewMockAppRepo(ctrlMock)
	mockCache := mocks.NewMockCacheService(ctrlMock)

	ctx := context.Background()
	ctrl := New(mockAuth, mockRepo, mockCache, testConfig())

	testUserID := uuid.New()
	testDeviceID := "d1"

	tests := []struct {
		name    string
		setup   func()
		wantErr bool
		err     error
	}{
		{
			name: "Success",
			setup: func() {
				mockCache.EXPECT().
					CreateFamily(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
				mockCache.EXPECT().
					SetTokenMeta(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
				mockRepo.EXPECT().
					UpsertFamily(gomock.Any(), gomock.Any()).
					Return(nil)
				mockAuth.EXPECT().
					NewRefreshToken(gomock.Any(), gomock.Any(), gomock.Any()).
					Return("refresh-token", nil)
			},
			wantErr: false,
		},
		{
			name: "LedgerMirrorFailureIsNotFatal",
			setup: func() {
				mockCache.EXPECT().
					CreateFamily(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
				mockCache.EXPECT().
					SetTokenMeta(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
				mockRepo.EXPECT().
					UpsertFamily(gomock.Any(), gomock.Any()).
					Return(errors.New("ledger down"))
				mockAuth.EXPECT().
					NewRefreshToken(gomock.Any(), gomock.Any(), gomock.Any()).
					Return("refresh-token", nil)
			},
			wantErr: false,
		},
		{
			name: "CacheFailure",
			setup: func() {
				mockCache.EXPECT().
					CreateFamily(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache down"))
			},
			wantErr: true,
		},
		{
			name: "TokenMetaFailure",
			setup: func() {
				mockCache.EXPECT().
					CreateFamily(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
				mockCache.EXPECT().
					SetTokenMeta(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache down"))
			},
			wantErr: true,
		},
		{
			name: "SignerFailure",
			setup: func() {
				mockCache.EXPECT().
					CreateFamily(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
				mockCache.EXPECT().
					SetTokenMeta(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
				mockRepo.EXPECT().
					UpsertFamily(gomock.Any(), gomock.Any()).
					Return(nil)
				mockAuth.EXPECT().
					NewRefreshToken(gomock.Any(), gomock.Any(), gomock.Any()).
					Return("", jwt.ErrWhileCreatingToken)
			},
			wantErr: true,
			err:     jwt.ErrWhileCreatingToken,
		},
	}

	for _, tt := range tests {
		t.Run(
			tt.name, func(t *testing.T) {
				tt.setup()

				res, err := ctrl.Issue(ctx, testUserID, testDeviceID)
				if tt.wantErr {
					assert.Error(t, err)
					if tt.err != nil {
						assert.ErrorIs(t, err, tt.err)
					}
					return
				}

				assert.NoError(t, err)
				assert.Equal(t, "refresh-token", res.Token)
				assert.Equal(t, 0, res.TokenIndex)
				assert.NotEqual(t, uuid.Nil, res.FamilyID)
				assert.NotEqual(t, uuid.Nil, res.TokenID)
				assert.WithinDuration(
					t, time.Now().Add(time.Hour*24*7), res.ExpiresAt, time.Minute,
				)
			},
		)
	}
}

func TestController_Rotate(t *testing.T) {
	ctrlMock := gomock.NewController(t)
	defer ctrlMock.Finish()

	mockAuth := mocks.NewMockPort(ctrlMock)
	mockRepo := mocks.NewMockAppRepo(ctrlMock)
	mockCache := mocks.NewMockCacheService(ctrlMock)

	ctx := context.Background()
	ctrl := New(mockAuth, mockRepo, mockCache, testConfig())

	testUserID := uuid.New()
	testFamilyID := uuid.New()
	testTokenID := uuid.New()
	testDeviceID := "d1"

	testClaims := jwt.RefreshClaims{
		UID:        testUserID,
		DeviceID:   testDeviceID,
		FamilyID:   testFamilyID,
		TokenID:    testTokenID,
		TokenIndex: 0,
	}

	freshFamily := func() *md.TokenFamily {
		return &md.TokenFamily{
			FamilyID:     testFamilyID,
			UserID:       testUserID,
			DeviceID:     testDeviceID,
			TokenChain:   []uuid.UUID{testTokenID},
			CurrentIndex: 0,
			ExpiresAt:    time.Now().Add(time.Hour * 24),
		}
	}

	testMeta := &md.TokenMeta{
		TokenID:    testTokenID,
		FamilyID:   testFamilyID,
		UserID:     testUserID,
		DeviceID:   testDeviceID,
		TokenIndex: 0,
	}

	tests := []struct {
		name    string
		setup   func()
		wantErr bool
		err     error
	}{
		{
			name: "Success",
			setup: func() {
				mockAuth.EXPECT().
					ParseRefreshClaims(gomock.Any(), "old-token").
					Return(testClaims, nil)
				mockCache.EXPECT().
					GetFamily(gomock.Any(), testFamilyID).
					Return(freshFamily(), nil)
				mockCache.EXPECT().
					GetTokenMeta(gomock.Any(), testTokenID).
					Return(testMeta, nil)
				mockCache.EXPECT().
					AdvanceFamily(gomock.Any(), testFamilyID, 0, gomock.Any(), gomock.Any()).
					Return(1, nil)
				mockCache.EXPECT().
					SetTokenMeta(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
				mockRepo.EXPECT().
					UpsertFamily(gomock.Any(), gomock.Any()).
					Return(nil)
				mockAuth.EXPECT().
					NewRefreshToken(gomock.Any(), gomock.Any(), gomock.Any()).
					Return("new-refresh", nil)
				mockAuth.EXPECT().
					NewAccessToken(gomock.Any(), testUserID, testDeviceID).
					Return("new-access", nil)
				mockAuth.EXPECT().
					AccessTTL().
					Return(time.Minute * 30)
			},
			wantErr: false,
		},
		{
			name: "InvalidToken",
			setup: func() {
				mockAuth.EXPECT().
					ParseRefreshClaims(gomock.Any(), "old-token").
					Return(jwt.RefreshClaims{}, jwt.ErrInvalidToken)
			},
			wantErr: true,
			err:     ErrInvalidToken,
		},
		{
			name: "FamilyNotFound",
			setup: func() {
				mockAuth.EXPECT().
					ParseRefreshClaims(gomock.Any(), "old-token").
					Return(testClaims, nil)
				mockCache.EXPECT().
					GetFamily(gomock.Any(), testFamilyID).
					Return(nil, redis.ErrNotFound)
			},
			wantErr: true,
			err:     ErrFamilyNotFound,
		},
		{
			name: "CacheInfraFailureIsNotNotFound",
			setup: func() {
				mockAuth.EXPECT().
					ParseRefreshClaims(gomock.Any(), "old-token").
					Return(testClaims, nil)
				mockCache.EXPECT().
					GetFamily(gomock.Any(), testFamilyID).
					Return(nil, errors.New("cache unreachable"))
			},
			wantErr: true,
		},
		{
			name: "UserMismatch",
			setup: func() {
				forged := freshFamily()
				forged.UserID = uuid.New()
				mockAuth.EXPECT().
					ParseRefreshClaims(gomock.Any(), "old-token").
					Return(testClaims, nil)
				mockCache.EXPECT().
					GetFamily(gomock.Any(), testFamilyID).
					Return(forged, nil)
			},
			wantErr: true,
			err:     ErrUserMismatch,
		},
		{
			name: "FamilyRevoked",
			setup: func() {
				revoked := freshFamily()
				revoked.IsRevoked = true
				mockAuth.EXPECT().
					ParseRefreshClaims(gomock.Any(), "old-token").
					Return(testClaims, nil)
				mockCache.EXPECT().
					GetFamily(gomock.Any(), testFamilyID).
					Return(revoked, nil)
			},
			wantErr: true,
			err:     ErrFamilyRevoked,
		},
		{
			name: "TokenMetaMissing",
			setup: func() {
				mockAuth.EXPECT().
					ParseRefreshClaims(gomock.Any(), "old-token").
					Return(testClaims, nil)
				mockCache.EXPECT().
					GetFamily(gomock.Any(), testFamilyID).
					Return(freshFamily(), nil)
				mockCache.EXPECT().
					GetTokenMeta(gomock.Any(), testTokenID).
					Return(nil, redis.ErrNotFound)
			},
			wantErr: true,
			err:     ErrTokenInvalid,
		},
		{
			name: "DeviceMismatch",
			setup: func() {
				wrongDevice := &md.TokenMeta{
					TokenID:  testTokenID,
					FamilyID: testFamilyID,
					UserID:   testUserID,
					DeviceID: "d2",
				}
				mockAuth.EXPECT().
					ParseRefreshClaims(gomock.Any(), "old-token").
					Return(testClaims, nil)
				mockCache.EXPECT().
					GetFamily(gomock.Any(), testFamilyID).
					Return(freshFamily(), nil)
				mockCache.EXPECT().
					GetTokenMeta(gomock.Any(), testTokenID).
					Return(wrongDevice, nil)
			},
			wantErr: true,
			err:     ErrTokenInvalid,
		},
		{
			name: "ReplayDetectedRevokesFamily",
			setup: func() {
				mockAuth.EXPECT().
					ParseRefreshClaims(gomock.Any(), "old-token").
					Return(testClaims, nil)
				mockCache.EXPECT().
					GetFamily(gomock.Any(), testFamilyID).
					Return(freshFamily(), nil)
				mockCache.EXPECT().
					GetTokenMeta(gomock.Any(), testTokenID).
					Return(testMeta, nil)
				mockCache.EXPECT().
					AdvanceFamily(gomock.Any(), testFamilyID, 0, gomock.Any(), gomock.Any()).
					Return(1, redis.ErrIndexConflict)
				mockCache.EXPECT().
					RevokeFamily(gomock.Any(), testFamilyID, testUserID, gomock.Any()).
					Return(nil)
				mockRepo.EXPECT().
					RevokeFamily(gomock.Any(), testFamilyID, gomock.Any()).
					Return(nil)
			},
			wantErr: true,
			err:     ErrReplayDetected,
		},
		{
			name: "RevokedRaceDuringAdvance",
			setup: func() {
				mockAuth.EXPECT().
					ParseRefreshClaims(gomock.Any(), "old-token").
					Return(testClaims, nil)
				mockCache.EXPECT().
					GetFamily(gomock.Any(), testFamilyID).
					Return(freshFamily(), nil)
				mockCache.EXPECT().
					GetTokenMeta(gomock.Any(), testTokenID).
					Return(testMeta, nil)
				mockCache.EXPECT().
					AdvanceFamily(gomock.Any(), testFamilyID, 0, gomock.Any(), gomock.Any()).
					Return(0, redis.ErrFamilyRevoked)
			},
			wantErr: true,
			err:     ErrFamilyRevoked,
		},
		{
			name: "ExpiryRaceDuringAdvance",
			setup: func() {
				mockAuth.EXPECT().
					ParseRefreshClaims(gomock.Any(), "old-token").
					Return(testClaims, nil)
				mockCache.EXPECT().
					GetFamily(gomock.Any(), testFamilyID).
					Return(freshFamily(), nil)
				mockCache.EXPECT().
					GetTokenMeta(gomock.Any(), testTokenID).
					Return(testMeta, nil)
				mockCache.EXPECT().
					AdvanceFamily(gomock.Any(), testFamilyID, 0, gomock.Any(), gomock.Any()).
					Return(0, redis.ErrNotFound)
			},
			wantErr: true,
			err:     ErrFamilyNotFound,
		},
		{
			name: "NewMetaWriteFailureFailsClosed",
			setup: func() {
				mockAuth.EXPECT().
					ParseRefreshClaims(gomock.Any(), "old-token").
					Return(testClaims, nil)
				mockCache.EXPECT().
					GetFamily(gomock.Any(), testFamilyID).
					Return(freshFamily(), nil)
				mockCache.EXPECT().
					GetTokenMeta(gomock.Any(), testTokenID).
					Return(testMeta, nil)
				mockCache.EXPECT().
					AdvanceFamily(gomock.Any(), testFamilyID, 0, gomock.Any(), gomock.Any()).
					Return(1, nil)
				mockCache.EXPECT().
					SetTokenMeta(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache down"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(
			tt.name, func(t *testing.T) {
				tt.setup()

				res, err := ctrl.Rotate(ctx, "old-token")
				if tt.wantErr {
					assert.Error(t, err)
					if tt.err != nil {
						assert.ErrorIs(t, err, tt.err)
					}
					return
				}

				assert.NoError(t, err)
				assert.Equal(t, "new-access", res.AccessToken)
				assert.Equal(t, "new-refresh", res.RefreshToken)
				assert.Equal(t, "Bearer", res.TokenType)
				assert.Equal(t, int64(1800), res.AccessTokenTTLSeconds)
				assert.Equal(t, testFamilyID, res.FamilyID)
			},
		)
	}
}

func TestController_Validate(t *testing.T) {
	ctrlMock := gomock.NewController(t)
	defer ctrlMock.Finish()

	mockAuth := mocks.NewMockPort(ctrlMock)
	mockRepo := mocks.NewMockAppRepo(ctrlMock)
	mockCache := mocks.NewMockCacheService(ctrlMock)

	ctx := context.Background()
	ctrl := New(mockAuth, mockRepo, mockCache, testConfig())

	testUserID := uuid.New()
	testFamilyID := uuid.New()
	testTokenID := uuid.New()
	testDeviceID := "d1"

	testClaims := jwt.RefreshClaims{
		UID:        testUserID,
		DeviceID:   testDeviceID,
		FamilyID:   testFamilyID,
		TokenID:    testTokenID,
		TokenIndex: 2,
	}

	testFamily := &md.TokenFamily{
		FamilyID:     testFamilyID,
		UserID:       testUserID,
		DeviceID:     testDeviceID,
		CurrentIndex: 2,
		ExpiresAt:    time.Now().Add(time.Hour),
	}

	testMeta := &md.TokenMeta{
		TokenID:    testTokenID,
		FamilyID:   testFamilyID,
		UserID:     testUserID,
		DeviceID:   testDeviceID,
		TokenIndex: 2,
	}

	t.Run(
		"Valid", func(t *testing.T) {
			mockAuth.EXPECT().
				ParseRefreshClaims(gomock.Any(), "token").
				Return(testClaims, nil)
			mockCache.EXPECT().
				GetFamily(gomock.Any(), testFamilyID).
				Return(testFamily, nil)
			mockCache.EXPECT().
				GetTokenMeta(gomock.Any(), testTokenID).
				Return(testMeta, nil)

			res, err := ctrl.Validate(ctx, "token")
			assert.NoError(t, err)
			assert.True(t, res.Valid)
			assert.False(t, res.IsReplay)
			assert.Equal(t, testUserID, res.UserID)
			assert.Equal(t, testFamilyID, res.FamilyID)
			assert.Equal(t, 2, res.TokenIndex)
		},
	)

	t.Run(
		"StaleIndexReportsReplayWithoutRevoking", func(t *testing.T) {
			advanced := *testFamily
			advanced.CurrentIndex = 3

			mockAuth.EXPECT().
				ParseRefreshClaims(gomock.Any(), "token").
				Return(testClaims, nil)
			mockCache.EXPECT().
				GetFamily(gomock.Any(), testFamilyID).
				Return(&advanced, nil)
			mockCache.EXPECT().
				GetTokenMeta(gomock.Any(), testTokenID).
				Return(testMeta, nil)

			res, err := ctrl.Validate(ctx, "token")
			assert.NoError(t, err)
			assert.False(t, res.Valid)
			assert.True(t, res.IsReplay)
			assert.ErrorIs(t, res.Err, ErrReplayDetected)
		},
	)

	t.Run(
		"SignatureFailureIsNotAnError", func(t *testing.T) {
			mockAuth.EXPECT().
				ParseRefreshClaims(gomock.Any(), "garbage").
				Return(jwt.RefreshClaims{}, jwt.ErrInvalidToken)

			res, err := ctrl.Validate(ctx, "garbage")
			assert.NoError(t, err)
			assert.False(t, res.Valid)
			assert.ErrorIs(t, res.Err, ErrInvalidToken)
		},
	)

	t.Run(
		"InfraFailurePropagates", func(t *testing.T) {
			mockAuth.EXPECT().
				ParseRefreshClaims(gomock.Any(), "token").
				Return(testClaims, nil)
			mockCache.EXPECT().
				GetFamily(gomock.Any(), testFamilyID).
				Return(nil, errors.New("cache unreachable"))

			res, err := ctrl.Validate(ctx, "token")
			assert.Error(t, err)
			assert.Nil(t, res)
		},
	)

	t.Run(
		"RevokedFamily", func(t *testing.T) {
			revoked := *testFamily
			revoked.IsRevoked = true

			mockAuth.EXPECT().
				ParseRefreshClaims(gomock.Any(), "token").
				Return(testClaims, nil)
			mockCache.EXPECT().
				GetFamily(gomock.Any(), testFamilyID).
				Return(&revoked, nil)

			res, err := ctrl.Validate(ctx, "token")
			assert.NoError(t, err)
			assert.False(t, res.Valid)
			assert.ErrorIs(t, res.Err, ErrFamilyRevoked)
		},
	)
}
