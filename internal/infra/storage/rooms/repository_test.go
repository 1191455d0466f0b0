package rooms

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/HRS-ReservationService/internal/domain"
)

func newTestRepository(t *testing.T) *Repository {
	t.Helper()
	return NewRepository(filepath.Join(t.TempDir(), "rooms.txt"))
}

func TestLoad_SeedsOnFirstRun(t *testing.T) {
	repo := newTestRepository(t)
	require.NoError(t, repo.Load(context.Background()))

	all := repo.ListAll()
	require.Len(t, all, 4)
	assert.Equal(t, 101, all[0].Number)
	assert.Equal(t, domain.CategoryStandard, all[0].Category)
	assert.Equal(t, 102, all[1].Number)
	assert.Equal(t, domain.CategoryDeluxe, all[1].Category)
	for _, room := range all {
		assert.True(t, room.IsAvailable())
	}

	// Первый запуск сразу сохраняет стартовый набор на диск
	_, err := os.Stat(repo.path)
	require.NoError(t, err)
}

func TestFindAvailableByCategory_RegistrationOrder(t *testing.T) {
	repo := newTestRepository(t)
	require.NoError(t, repo.Load(context.Background()))

	// Две стандартные комнаты: выигрывает добавленная раньше
	room, err := repo.FindAvailableByCategory(domain.CategoryStandard)
	require.NoError(t, err)
	assert.Equal(t, 101, room.Number)

	room.Booked = true
	room, err = repo.FindAvailableByCategory(domain.CategoryStandard)
	require.NoError(t, err)
	assert.Equal(t, 104, room.Number)

	room.Booked = true
	_, err = repo.FindAvailableByCategory(domain.CategoryStandard)
	assert.ErrorIs(t, err, ErrNoAvailableRoom)
}

func TestListAvailable_SkipsBooked(t *testing.T) {
	repo := newTestRepository(t)
	require.NoError(t, repo.Load(context.Background()))

	booked, err := repo.ByNumber(102)
	require.NoError(t, err)
	booked.Booked = true

	available := repo.ListAvailable()
	require.Len(t, available, 3)
	for _, room := range available {
		assert.NotEqual(t, 102, room.Number)
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "rooms.txt")

	repo := NewRepository(path)
	require.NoError(t, repo.Load(ctx))

	room, err := repo.ByNumber(103)
	require.NoError(t, err)
	room.Booked = true
	require.NoError(t, repo.Save(ctx))

	reloaded := NewRepository(path)
	require.NoError(t, reloaded.Load(ctx))

	all := reloaded.ListAll()
	require.Len(t, all, 4)
	suite, err := reloaded.ByNumber(103)
	require.NoError(t, err)
	assert.Equal(t, domain.CategorySuite, suite.Category)
	assert.True(t, suite.Booked)

	available := reloaded.ListAvailable()
	assert.Len(t, available, 3)
}

func TestLoad_MalformedRecord(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rooms.txt")
	require.NoError(t, os.WriteFile(path, []byte("101,STANDARD,Available\nnot-a-number,DELUXE,Available\n"), 0o644))

	repo := NewRepository(path)
	err := repo.Load(context.Background())
	assert.ErrorIs(t, err, ErrParseRecord)
}

func TestLoad_UnknownFlag(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rooms.txt")
	require.NoError(t, os.WriteFile(path, []byte("101,STANDARD,Occupied\n"), 0o644))

	repo := NewRepository(path)
	err := repo.Load(context.Background())
	assert.ErrorIs(t, err, ErrParseRecord)
}

func TestLoad_DuplicateRoomNumber(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rooms.txt")
	require.NoError(t, os.WriteFile(path, []byte("101,STANDARD,Available\n101,DELUXE,Available\n"), 0o644))

	repo := NewRepository(path)
	err := repo.Load(context.Background())
	assert.ErrorIs(t, err, ErrParseRecord)
}

func TestByNumber_NotFound(t *testing.T) {
	repo := newTestRepository(t)
	require.NoError(t, repo.Load(context.Background()))

	_, err := repo.ByNumber(999)
	assert.ErrorIs(t, err, ErrRoomNotFound)
}

func TestSave_SnapshotFormat(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "rooms.txt")

	repo := NewRepository(path)
	require.NoError(t, repo.Load(ctx))

	room, err := repo.ByNumber(102)
	require.NoError(t, err)
	room.Booked = true
	require.NoError(t, repo.Save(ctx))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "101,STANDARD,Available\n102,DELUXE,Booked\n103,SUITE,Available\n104,STANDARD,Available\n", string(data))
}
