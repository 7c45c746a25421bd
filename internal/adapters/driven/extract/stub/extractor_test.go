package stub

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/apply-cli/internal/core/domain"
)

func TestExtract_ReturnsSampleRecord(t *testing.T) {
	e := New(0)

	rec, err := e.Extract(context.Background(), &domain.Document{Name: "cv.pdf"})

	require.NoError(t, err)
	assert.Equal(t, []string{"Previous experience 1", "Previous experience 2"}, rec.Experience)
	assert.Equal(t, []string{"Leadership role 1", "Leadership role 2"}, rec.Leadership)
	assert.Equal(t, "Extracted profile summary from CV", rec.ProfileSummary)
	assert.Equal(t, []string{"Degree from University"}, rec.Education)
	assert.Equal(t, "Extracted Name", rec.FullName)
	assert.Equal(t, "extracted@example.com", rec.Email)
	assert.Equal(t, "123-456-7890", rec.Phone)
}

func TestExtract_IgnoresDocument(t *testing.T) {
	e := New(0)

	a, err := e.Extract(context.Background(), &domain.Document{Name: "a.pdf", Content: []byte("%PDF-1.4 a")})
	require.NoError(t, err)
	b, err := e.Extract(context.Background(), nil)
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestExtract_ReturnsFreshCopies(t *testing.T) {
	e := New(0)

	a, err := e.Extract(context.Background(), nil)
	require.NoError(t, err)
	a.Experience[0] = "changed"

	b, err := e.Extract(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, "Previous experience 1", b.Experience[0])
}

func TestExtract_WaitsForDelay(t *testing.T) {
	e := New(30 * time.Millisecond)

	start := time.Now()
	_, err := e.Extract(context.Background(), nil)

	require.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), 30*time.Millisecond)
}

func TestExtract_Cancelled(t *testing.T) {
	e := New(time.Hour)
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	rec, err := e.Extract(ctx, nil)

	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, rec)
}

func TestExtract_CancelledBeforeStart_NoDelay(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New(0).Extract(ctx, nil)

	assert.ErrorIs(t, err, context.Canceled)
}
