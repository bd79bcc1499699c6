package timing

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"property-tax-tracker/internal/models"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTracker_StartRecordsElapsed(t *testing.T) {
	tt := NewTracker()
	clock := time.Unix(0, 0)
	tt.now = func() time.Time { return clock }

	stop := tt.Start("create")
	clock = clock.Add(3 * time.Millisecond)
	stop()

	assert.Equal(t, []time.Duration{3 * time.Millisecond}, tt.Timings("create"))
	assert.Nil(t, tt.Timings("delete"))
}

func TestTracker_Stats(t *testing.T) {
	tt := NewTracker()
	tt.Record("update", 4*time.Millisecond)
	tt.Record("create", 1*time.Millisecond)
	tt.Record("create", 3*time.Millisecond)

	want := []Stat{
		{Operation: "create", Count: 2, Total: 4 * time.Millisecond, Max: 3 * time.Millisecond},
		{Operation: "update", Count: 1, Total: 4 * time.Millisecond, Max: 4 * time.Millisecond},
	}
	if diff := cmp.Diff(want, tt.Stats()); diff != "" {
		t.Errorf("Stats() mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, 2*time.Millisecond, tt.Stats()[0].Mean())
	assert.Zero(t, Stat{}.Mean())
}

func TestTracker_Report(t *testing.T) {
	tt := NewTracker()
	assert.Equal(t, "No store operations recorded yet.", tt.Report())

	tt.Record("list", 2*time.Millisecond)
	report := tt.Report()
	assert.Contains(t, report, "list")
	assert.Contains(t, report, "1 calls")
	assert.Contains(t, report, "2ms")

	tt.Reset()
	assert.Empty(t, tt.Stats())
}

func TestTracker_Concurrent(t *testing.T) {
	tt := NewTracker()
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tt.Start("list")()
		}()
	}
	wg.Wait()
	assert.Len(t, tt.Timings("list"), 20)
}

type stubStore struct {
	err error
}

func (s stubStore) Create(context.Context, models.RecordInput) (int64, error) { return 7, s.err }
func (s stubStore) ListAll(context.Context) ([]models.PropertyTaxRecord, error) {
	return []models.PropertyTaxRecord{{ID: 7}}, s.err
}
func (s stubStore) Update(context.Context, int64, models.RecordInput) (bool, error) { return true, s.err }
func (s stubStore) Delete(context.Context, int64) (bool, error)                     { return false, s.err }

func TestStore_TimesEveryOperation(t *testing.T) {
	ctx := context.Background()
	tt := NewTracker()
	s := WrapStore(stubStore{}, tt)

	id, err := s.Create(ctx, models.RecordInput{})
	require.NoError(t, err)
	assert.Equal(t, int64(7), id)

	rows, err := s.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, rows, 1)

	updated, err := s.Update(ctx, 7, models.RecordInput{})
	require.NoError(t, err)
	assert.True(t, updated)

	deleted, err := s.Delete(ctx, 7)
	require.NoError(t, err)
	assert.False(t, deleted)

	for _, op := range []string{OpCreate, OpList, OpUpdate, OpDelete} {
		assert.Len(t, tt.Timings(op), 1, op)
	}
}

func TestStore_TimesFailures(t *testing.T) {
	boom := errors.New("locked")
	tt := NewTracker()
	s := WrapStore(stubStore{err: boom}, tt)

	_, err := s.Create(context.Background(), models.RecordInput{})
	require.ErrorIs(t, err, boom)
	assert.Len(t, tt.Timings(OpCreate), 1)
}
