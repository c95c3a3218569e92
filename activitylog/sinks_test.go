package activitylog_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zeenath1324/Mini-project/activitylog"
)

func givenEntry(t *testing.T, eventType string, description string, occurredAt time.Time) activitylog.Entry {
	t.Helper()

	entry, err := activitylog.BuildEntry(
		eventType,
		occurredAt,
		description,
		[]byte(`{"ItemID":"B1"}`),
		[]byte(`{"MessageID":"m-1"}`),
	)
	require.NoError(t, err)

	return entry
}

func Test_FileSink_AppendsOneLinePerEntry(t *testing.T) {
	// arrange
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "logs", "library_log.txt")
	occurredAt := time.Date(2026, time.March, 4, 10, 30, 0, 0, time.UTC)

	sink, err := activitylog.NewFileSink(path)
	require.NoError(t, err)

	// act
	require.NoError(t, sink.Record(ctx, givenEntry(t, "ItemAdded", "item added: B1", occurredAt)))
	require.NoError(t, sink.Record(ctx, givenEntry(t, "ItemCheckedOut", "checked out: item B1 to actor M1", occurredAt)))

	// assert
	content, err := os.ReadFile(path)
	require.NoError(t, err)

	timestamp := occurredAt.Local().Format(activitylog.TimestampLayout)
	lines := strings.Split(strings.TrimSuffix(string(content), "\n"), "\n")
	assert.Equal(t, []string{
		timestamp + " - item added: B1",
		timestamp + " - checked out: item B1 to actor M1",
	}, lines)
}

func Test_FileSink_KeepsExistingContent(t *testing.T) {
	// arrange
	path := filepath.Join(t.TempDir(), "library_log.txt")
	require.NoError(t, os.WriteFile(path, []byte("earlier line\n"), 0o644))

	sink, err := activitylog.NewFileSink(path)
	require.NoError(t, err)

	// act
	err = sink.Record(context.Background(), givenEntry(t, "ItemAdded", "item added: B1", time.Now()))

	// assert
	require.NoError(t, err)
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(content), "earlier line\n"))
	assert.Equal(t, 2, strings.Count(string(content), "\n"))
}

func Test_FileSink_WriteFailureWrapsErrLogWriteFailed(t *testing.T) {
	// arrange - the path points to a directory, so opening it for writing fails
	dir := t.TempDir()
	sink, err := activitylog.NewFileSink(filepath.Join(dir, "sub"))
	require.NoError(t, err)
	require.NoError(t, os.Mkdir(sink.Path(), 0o755))

	// act
	err = sink.Record(context.Background(), givenEntry(t, "ItemAdded", "item added: B1", time.Now()))

	// assert
	assert.ErrorIs(t, err, activitylog.ErrLogWriteFailed)
}

func Test_NewFileSink_RejectsEmptyPath(t *testing.T) {
	_, err := activitylog.NewFileSink("")

	assert.ErrorIs(t, err, activitylog.ErrEmptyPath)
}

func Test_BoltSink_RecordsAndReadsBackInAppendOrder(t *testing.T) {
	// arrange
	ctx := context.Background()
	sink, err := activitylog.OpenBoltSink(filepath.Join(t.TempDir(), "activity.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = sink.Close() })

	occurredAt := time.Date(2026, time.March, 4, 10, 30, 0, 0, time.UTC)
	descriptions := []string{"item added: B1", "actor added: M1", "checked out: item B1 to actor M1"}

	// act
	for _, d := range descriptions {
		require.NoError(t, sink.Record(ctx, givenEntry(t, "SomeEvent", d, occurredAt)))
	}

	entries, err := sink.Entries(ctx)

	// assert
	require.NoError(t, err)
	require.Len(t, entries, len(descriptions))

	for i, entry := range entries {
		assert.Equal(t, descriptions[i], entry.Description)
		assert.True(t, occurredAt.Equal(entry.OccurredAt))
		assert.JSONEq(t, `{"ItemID":"B1"}`, string(entry.PayloadJSON))
		assert.JSONEq(t, `{"MessageID":"m-1"}`, string(entry.MetadataJSON))
	}
}

func Test_BoltSink_SurvivesReopen(t *testing.T) {
	// arrange
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "activity.db")

	first, err := activitylog.OpenBoltSink(path, activitylog.WithBucket("log"))
	require.NoError(t, err)
	require.NoError(t, first.Record(ctx, givenEntry(t, "ItemAdded", "item added: B1", time.Now())))
	require.NoError(t, first.Close())

	// act
	second, err := activitylog.OpenBoltSink(path, activitylog.WithBucket("log"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = second.Close() })
	require.NoError(t, second.Record(ctx, givenEntry(t, "ActorAdded", "actor added: M1", time.Now())))

	entries, err := second.Entries(ctx)

	// assert
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "item added: B1", entries[0].Description)
	assert.Equal(t, "actor added: M1", entries[1].Description)
}

func Test_OpenBoltSink_RejectsEmptyBucket(t *testing.T) {
	_, err := activitylog.OpenBoltSink(filepath.Join(t.TempDir(), "activity.db"), activitylog.WithBucket(""))

	assert.ErrorIs(t, err, activitylog.ErrEmptyBucketName)
}

type failingRecorder struct {
	calls int
}

func (r *failingRecorder) Record(context.Context, activitylog.Entry) error {
	r.calls++
	return errors.Join(activitylog.ErrLogWriteFailed, errors.New("disk full"))
}

func Test_MultiRecorder_TriesAllRecordersAndJoinsErrors(t *testing.T) {
	// arrange
	ctx := context.Background()
	failing := &failingRecorder{}
	bolt, err := activitylog.OpenBoltSink(filepath.Join(t.TempDir(), "activity.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = bolt.Close() })

	multi := activitylog.NewMultiRecorder(failing, nil, bolt, activitylog.NopRecorder{})

	// act
	err = multi.Record(ctx, givenEntry(t, "ItemAdded", "item added: B1", time.Now()))

	// assert
	assert.ErrorIs(t, err, activitylog.ErrLogWriteFailed)
	assert.Equal(t, 1, failing.calls)

	entries, readErr := multi.Entries(ctx)
	require.NoError(t, readErr)
	assert.Len(t, entries, 1)
}
