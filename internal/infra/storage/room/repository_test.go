package room

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HotelService/internal/domain"
)

func TestUpsert_InsertAndReplace(t *testing.T) {
	repo := NewRepository()
	ctx := context.Background()

	_, err := repo.Upsert(ctx, &domain.Room{Number: 1, Type: domain.RoomTypeStandard, PricePerNight: 1000})
	require.NoError(t, err)
	_, err = repo.Upsert(ctx, &domain.Room{Number: 2, Type: domain.RoomTypeJunior, PricePerNight: 2000})
	require.NoError(t, err)

	// Замена перемещает запись в конец списка
	_, err = repo.Upsert(ctx, &domain.Room{Number: 1, Type: domain.RoomTypeMaster, PricePerNight: 10000})
	require.NoError(t, err)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, int64(2), list[0].Number)
	assert.Equal(t, int64(1), list[1].Number)
	assert.Equal(t, domain.RoomTypeMaster, list[1].Type)
	assert.Equal(t, int64(10000), list[1].PricePerNight)
}

func TestGetByNumber(t *testing.T) {
	repo := NewRepository()
	ctx := context.Background()

	_, err := repo.Upsert(ctx, &domain.Room{Number: 7, Type: domain.RoomTypeStandard, PricePerNight: 500})
	require.NoError(t, err)

	room, err := repo.GetByNumber(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, int64(7), room.Number)
	assert.False(t, room.CreatedAt.IsZero())

	_, err = repo.GetByNumber(ctx, 8)
	assert.ErrorIs(t, err, ErrRoomNotFound)
}

func TestList_ReturnsCopies(t *testing.T) {
	repo := NewRepository()
	ctx := context.Background()

	_, err := repo.Upsert(ctx, &domain.Room{Number: 1, Type: domain.RoomTypeStandard, PricePerNight: 1000})
	require.NoError(t, err)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	list[0].PricePerNight = 9999

	room, err := repo.GetByNumber(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1000), room.PricePerNight)
}
