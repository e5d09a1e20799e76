package consumption

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/pictrify/credit-ledger/internal/domain/entity"
	errs "github.com/pictrify/credit-ledger/internal/domain/error"
	"github.com/pictrify/credit-ledger/internal/domain/port/provider"
	portuse "github.com/pictrify/credit-ledger/internal/domain/port/usecase"
	mcore "github.com/pictrify/credit-ledger/mocks/port/core"
	mpers "github.com/pictrify/credit-ledger/mocks/port/persistence"
	mprov "github.com/pictrify/credit-ledger/mocks/port/provider"
)

const transformCost = int64(2)

func newUseCaseForTest(t *testing.T) (*UseCase, *mpers.MockAccountRepository, *mprov.MockTransformer, *mcore.MockTimeProvider) {
	accountRepo := mpers.NewMockAccountRepository(t)
	transformer := mprov.NewMockTransformer(t)
	timeProvider := mcore.NewMockTimeProvider(t)
	logger := mcore.NewMockLogger(t)

	logger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()

	return NewUseCase(accountRepo, transformer, timeProvider, logger, transformCost), accountRepo, transformer, timeProvider
}

func accountWithCredits(t *testing.T, id string, credits int64, at time.Time) *entity.Account {
	tp := mcore.NewMockTimeProvider(t)
	tp.EXPECT().Now().Return(at).Maybe()

	account, err := entity.NewAccount(id, credits, tp)
	require.NoError(t, err)
	return account
}

func TestTransform(t *testing.T) {
	ctx := context.Background()
	fixedTime := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)

	cmd := portuse.TransformCommand{
		UserID:      "user-1",
		Image:       []byte("fake-image-bytes"),
		ContentType: "image/png",
		Style:       "ghibli",
	}

	t.Run("Successful transformation debits once", func(t *testing.T) {
		uc, accountRepo, transformer, timeProvider := newUseCaseForTest(t)

		accountRepo.EXPECT().DeductCredits(ctx, "user-1", transformCost).
			Return(accountWithCredits(t, "user-1", 4, fixedTime), nil)
		timeProvider.EXPECT().Now().Return(fixedTime)
		timeProvider.EXPECT().Since(fixedTime).Return(3 * time.Second)
		transformer.EXPECT().Transform(ctx, provider.TransformRequest{
			Image:       cmd.Image,
			ContentType: "image/png",
			Style:       "ghibli",
		}).Return(&provider.TransformResult{ImageURL: "https://cdn.example.com/out.png"}, nil)

		outcome, err := uc.Transform(ctx, cmd)

		require.NoError(t, err)
		assert.Equal(t, "https://cdn.example.com/out.png", outcome.ImageURL)
		assert.Equal(t, int64(4), outcome.RemainingCredits)
	})

	t.Run("Insufficient credits rejected before the provider call", func(t *testing.T) {
		uc, accountRepo, transformer, _ := newUseCaseForTest(t)

		accountRepo.EXPECT().DeductCredits(ctx, "user-1", transformCost).
			Return(nil, errs.NewInsufficientCreditsError("user-1", transformCost, 1))

		outcome, err := uc.Transform(ctx, cmd)

		assert.ErrorIs(t, err, errs.ErrInsufficientCredits)
		assert.Nil(t, outcome)
		transformer.AssertNotCalled(t, "Transform", mock.Anything, mock.Anything)
	})

	t.Run("Provider failure releases the hold", func(t *testing.T) {
		uc, accountRepo, transformer, timeProvider := newUseCaseForTest(t)

		accountRepo.EXPECT().DeductCredits(ctx, "user-1", transformCost).
			Return(accountWithCredits(t, "user-1", 4, fixedTime), nil)
		timeProvider.EXPECT().Now().Return(fixedTime)
		timeProvider.EXPECT().Since(fixedTime).Return(time.Second)
		transformer.EXPECT().Transform(ctx, mock.Anything).
			Return(nil, errs.ErrProviderError)
		accountRepo.EXPECT().AddCredits(ctx, "user-1", transformCost).
			Return(accountWithCredits(t, "user-1", 6, fixedTime), nil)

		outcome, err := uc.Transform(ctx, cmd)

		assert.ErrorIs(t, err, errs.ErrProviderError)
		assert.Nil(t, outcome)
	})

	t.Run("Provider timeout releases the hold and passes through", func(t *testing.T) {
		uc, accountRepo, transformer, timeProvider := newUseCaseForTest(t)

		accountRepo.EXPECT().DeductCredits(ctx, "user-1", transformCost).
			Return(accountWithCredits(t, "user-1", 4, fixedTime), nil)
		timeProvider.EXPECT().Now().Return(fixedTime)
		timeProvider.EXPECT().Since(fixedTime).Return(time.Minute)
		transformer.EXPECT().Transform(ctx, mock.Anything).
			Return(nil, errs.ErrProviderTimeout)
		accountRepo.EXPECT().AddCredits(ctx, "user-1", transformCost).
			Return(accountWithCredits(t, "user-1", 6, fixedTime), nil)

		outcome, err := uc.Transform(ctx, cmd)

		assert.ErrorIs(t, err, errs.ErrProviderTimeout)
		assert.Nil(t, outcome)
	})

	t.Run("Failed refund is swallowed, provider error still surfaces", func(t *testing.T) {
		uc, accountRepo, transformer, timeProvider := newUseCaseForTest(t)

		accountRepo.EXPECT().DeductCredits(ctx, "user-1", transformCost).
			Return(accountWithCredits(t, "user-1", 4, fixedTime), nil)
		timeProvider.EXPECT().Now().Return(fixedTime)
		timeProvider.EXPECT().Since(fixedTime).Return(time.Second)
		transformer.EXPECT().Transform(ctx, mock.Anything).
			Return(nil, errs.ErrProviderError)
		accountRepo.EXPECT().AddCredits(ctx, "user-1", transformCost).
			Return(nil, errs.ErrDatabaseConnection)

		outcome, err := uc.Transform(ctx, cmd)

		assert.ErrorIs(t, err, errs.ErrProviderError)
		assert.Nil(t, outcome)
	})

	t.Run("Empty user ID rejected", func(t *testing.T) {
		uc, _, _, _ := newUseCaseForTest(t)

		anonymous := cmd
		anonymous.UserID = ""

		outcome, err := uc.Transform(ctx, anonymous)

		assert.ErrorIs(t, err, errs.ErrInvalidUserID)
		assert.Nil(t, outcome)
	})

	t.Run("Missing image or style rejected", func(t *testing.T) {
		uc, _, _, _ := newUseCaseForTest(t)

		noImage := cmd
		noImage.Image = nil
		_, err := uc.Transform(ctx, noImage)
		assert.ErrorIs(t, err, errs.ErrInvalidRequest)

		noStyle := cmd
		noStyle.Style = ""
		_, err = uc.Transform(ctx, noStyle)
		assert.ErrorIs(t, err, errs.ErrInvalidRequest)
	})
}
