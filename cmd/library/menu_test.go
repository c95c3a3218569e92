package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zeenath1324/Mini-project/activitylog"
	"github.com/zeenath1324/Mini-project/librarystore"
	"github.com/zeenath1324/Mini-project/testutil/helper"
)

func runMenu(t *testing.T, input string) (string, *helper.RecorderSpy, *librarystore.Store) {
	t.Helper()

	recorder := helper.NewRecorderSpy()
	store, err := librarystore.New(recorder)
	require.NoError(t, err)

	var out bytes.Buffer
	err = NewMenu(store, recorder, strings.NewReader(input), &out).Run(context.Background())
	require.NoError(t, err)

	return out.String(), recorder, store
}

func Test_Menu_LendAndReturnLate(t *testing.T) {
	input := strings.Join([]string{
		"1", "B1", "Dune", "Herbert",
		"2", "M1", "Ada",
		"3", "B1", "M1",
		"4", "B1", "M1", "3",
		"5",
		"7",
	}, "\n") + "\n"

	out, recorder, _ := runMenu(t, input)

	assert.Contains(t, out, "Book added successfully!")
	assert.Contains(t, out, "Member added successfully!")
	assert.Contains(t, out, "Book issued successfully!")
	assert.Contains(t, out, "Book returned successfully! Late Fee: 6")
	assert.Contains(t, out, "===== Library Inventory =====\nItem[ID=B1, Title=Dune, Author=Herbert, Status=Available]\n")
	assert.Contains(t, out, "Goodbye!")
	assert.Len(t, recorder.RecordedEntries(), 4)
}

func Test_Menu_PrintsStoreErrorsAndContinues(t *testing.T) {
	input := strings.Join([]string{
		"3", "B9", "M1",
		"4", "B1", "M1", "-1",
		"4", "B1", "M1", "soon",
		"9",
		"7",
	}, "\n") + "\n"

	out, recorder, _ := runMenu(t, input)

	assert.Contains(t, out, "Error: item not found")
	assert.Contains(t, out, "Error: invalid input: days late must not be negative, got -1")
	assert.Contains(t, out, `Error: days late must be a whole number, got "soon"`)
	assert.Contains(t, out, "Invalid choice! Try again.")
	assert.Empty(t, recorder.RecordedEntries())
}

func Test_Menu_ShowsActivityLog(t *testing.T) {
	input := "2\nM1\nAda\n6\n7\n"

	out, _, _ := runMenu(t, input)

	assert.Contains(t, out, "===== Activity Log =====")
	assert.Contains(t, out, " - actor added: Actor[ID=M1, Name=Ada, Borrowed=[]]\n")
}

func Test_Menu_EndsQuietlyOnEndOfInput(t *testing.T) {
	out, _, store := runMenu(t, "1\nB1\n")

	assert.Contains(t, out, "Enter Title: ")
	_, found := store.Item("B1")
	assert.False(t, found)
}

func Test_Menu_WithoutReader(t *testing.T) {
	store, err := librarystore.New(activitylog.NopRecorder{})
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, NewMenu(store, nil, strings.NewReader("6\n7\n"), &out).Run(context.Background()))

	assert.Contains(t, out.String(), "cannot be read back")
}

func Test_Menu_ReportsActivityLogWriteFailure(t *testing.T) {
	// arrange
	store, err := librarystore.New(helper.NewFailingRecorderSpy())
	require.NoError(t, err)

	var out bytes.Buffer
	input := "1\nB1\nDune\nHerbert\n5\n7\n"

	// act
	require.NoError(t, NewMenu(store, nil, strings.NewReader(input), &out).Run(context.Background()))

	// assert
	assert.Contains(t, out.String(), "Book added successfully!\nError writing to activity log.\n")
	assert.Equal(t, 1, strings.Count(out.String(), "Error writing to activity log."))
	assert.Contains(t, out.String(), "Item[ID=B1, Title=Dune, Author=Herbert, Status=Available]")
}

func Test_Menu_NoLogNoticeWhenWritesSucceed(t *testing.T) {
	out, _, _ := runMenu(t, "2\nM1\nAda\n7\n")

	assert.NotContains(t, out, "Error writing to activity log.")
}
