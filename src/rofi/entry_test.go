package rofi

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntryAcceptsOnFirstAttempt(t *testing.T) {
	runner := &fakeRunner{results: []fakeResult{{stdout: "42\n", code: 0}}}
	r := newTestRofi(runner)

	validate := func(text string) (int, string) {
		n, err := strconv.Atoi(text)
		if err != nil {
			return 0, "not a number"
		}
		return n, ""
	}

	value, ok, err := Entry(context.Background(), r, "Number", validate, nil)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 42, value)
	assert.Len(t, runner.calls, 1, "an immediately accepting validator must invoke the tool exactly once")
}

func TestEntryRetriesWithErrorSubtitle(t *testing.T) {
	runner := &fakeRunner{results: []fakeResult{
		{stdout: "bad\n", code: 0},
		{stdout: "worse\n", code: 0},
		{stdout: "good\n", code: 0},
	}}
	r := newTestRofi(runner)

	validate := func(text string) (string, string) {
		if text != "good" {
			return "", "Entered " + text + "."
		}
		return text, ""
	}

	value, ok, err := Entry(context.Background(), r, "Say good", validate, &EntryOptions{Message: "hint"})
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "good", value)
	require.Len(t, runner.calls, 3, "two rejections then acceptance is three invocations")

	// The first attempt shows only the caller's message.
	mesg, found := flagValue(runner.calls[0].args, "-mesg")
	require.True(t, found)
	assert.Equal(t, "hint", mesg)

	// Each rejection's message becomes the next attempt's subtitle.
	mesg, found = flagValue(runner.calls[1].args, "-mesg")
	require.True(t, found)
	assert.Equal(t, "<span color=\"#FF0000\" font_weight=\"bold\">Entered bad.</span>\nhint", mesg)

	mesg, found = flagValue(runner.calls[2].args, "-mesg")
	require.True(t, found)
	assert.Contains(t, mesg, "Entered worse.")
}

func TestEntryErrorSubtitleWithoutMessage(t *testing.T) {
	runner := &fakeRunner{results: []fakeResult{
		{stdout: "\n", code: 0},
		{stdout: "x\n", code: 0},
	}}
	r := newTestRofi(runner)

	// No caller message: the subtitle is the bare error span with no
	// trailing newline.
	_, _, err := r.TextEntry(context.Background(), "Name", nil)
	require.NoError(t, err)

	mesg, found := flagValue(runner.calls[1].args, "-mesg")
	require.True(t, found)
	assert.Equal(t, "<span color=\"#FF0000\" font_weight=\"bold\">A value is required.</span>", mesg)
}

func TestEntryCancelShortCircuits(t *testing.T) {
	runner := &fakeRunner{results: []fakeResult{{code: 10}}}
	r := newTestRofi(runner)

	rejectAll := func(text string) (string, string) { return "", "never good enough" }

	_, ok, err := Entry(context.Background(), r, "Anything", rejectAll, nil)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Len(t, runner.calls, 1, "cancellation must not consult the validator or retry")
}

func TestEntryUnexpectedExitCode(t *testing.T) {
	runner := &fakeRunner{results: []fakeResult{{code: 3}}}
	r := newTestRofi(runner)

	_, _, err := r.TextEntry(context.Background(), "Name", nil)
	var exitErr *ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 3, exitErr.Code)
}

func TestEntryRunnerFailurePropagates(t *testing.T) {
	runner := &fakeRunner{runErr: errors.New("executable file not found in $PATH")}
	r := newTestRofi(runner)

	_, _, err := r.TextEntry(context.Background(), "Name", nil)
	require.Error(t, err)
}

func TestTextEntry(t *testing.T) {
	tests := []struct {
		name      string
		opts      *TextEntryOptions
		entered   []fakeResult
		want      string
		wantCalls int
	}{
		{
			name:      "whitespace stripped by default",
			entered:   []fakeResult{{stdout: "  hi  \n", code: 0}},
			want:      "hi",
			wantCalls: 1,
		},
		{
			name:      "blank rejected then accepted",
			entered:   []fakeResult{{stdout: "\n", code: 0}, {stdout: "ok\n", code: 0}},
			want:      "ok",
			wantCalls: 2,
		},
		{
			name:      "blank allowed",
			opts:      &TextEntryOptions{AllowBlank: true},
			entered:   []fakeResult{{stdout: "\n", code: 0}},
			want:      "",
			wantCalls: 1,
		},
		{
			name:      "whitespace kept",
			opts:      &TextEntryOptions{KeepWhitespace: true},
			entered:   []fakeResult{{stdout: " hi \n", code: 0}},
			want:      " hi ",
			wantCalls: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner := &fakeRunner{results: tt.entered}
			r := newTestRofi(runner)

			value, ok, err := r.TextEntry(context.Background(), "Name", tt.opts)
			require.NoError(t, err)
			assert.True(t, ok)
			assert.Equal(t, tt.want, value)
			assert.Len(t, runner.calls, tt.wantCalls)
		})
	}
}

func TestIntegerEntry(t *testing.T) {
	runner := &fakeRunner{results: []fakeResult{
		{stdout: "седем\n", code: 0},
		{stdout: "3\n", code: 0},
		{stdout: "101\n", code: 0},
		{stdout: "7\n", code: 0},
	}}
	r := newTestRofi(runner)

	value, ok, err := r.IntegerEntry(context.Background(), "Count", &IntegerEntryOptions{
		Min: int64Ptr(5),
		Max: int64Ptr(100),
	})
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, int64(7), value)
	require.Len(t, runner.calls, 4)

	subtitles := make([]string, 0, 3)
	for _, call := range runner.calls[1:] {
		mesg, _ := flagValue(call.args, "-mesg")
		subtitles = append(subtitles, mesg)
	}
	assert.Contains(t, subtitles[0], "Please enter an integer value.")
	assert.Contains(t, subtitles[1], "The minimum allowable value is 5.")
	assert.Contains(t, subtitles[2], "The maximum allowable value is 100.")
}

func TestEntryBoundsSanityCheck(t *testing.T) {
	runner := &fakeRunner{}
	r := newTestRofi(runner)
	ctx := context.Background()

	_, _, err := r.IntegerEntry(ctx, "n", &IntegerEntryOptions{Min: int64Ptr(5), Max: int64Ptr(5)})
	require.Error(t, err)

	_, _, err = r.FloatEntry(ctx, "x", &FloatEntryOptions{Min: Float(2), Max: Float(1)})
	require.Error(t, err)

	lo, hi := decimal.NewFromInt(3), decimal.NewFromInt(2)
	_, _, err = r.DecimalEntry(ctx, "d", &DecimalEntryOptions{Min: &lo, Max: &hi})
	require.Error(t, err)

	assert.Empty(t, runner.calls, "bound errors must be caught before invoking the tool")
}

func TestFloatEntry(t *testing.T) {
	runner := &fakeRunner{results: []fakeResult{
		{stdout: "abc\n", code: 0},
		{stdout: "2.5\n", code: 0},
	}}
	r := newTestRofi(runner)

	value, ok, err := r.FloatEntry(context.Background(), "Ratio", nil)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 2.5, value)

	mesg, _ := flagValue(runner.calls[1].args, "-mesg")
	assert.Contains(t, mesg, "Please enter a floating point value.")
}

func TestDecimalEntry(t *testing.T) {
	runner := &fakeRunner{results: []fakeResult{{stdout: "10.01\n", code: 0}}}
	r := newTestRofi(runner)

	value, ok, err := r.DecimalEntry(context.Background(), "Price", nil)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.True(t, value.Equal(decimal.RequireFromString("10.01")), "got %s", value)
}

func TestTimeEntryWithExplicitFormat(t *testing.T) {
	runner := &fakeRunner{results: []fakeResult{
		{stdout: "9:30am\n", code: 0},
		{stdout: "09:30\n", code: 0},
	}}
	r := newTestRofi(runner)

	value, ok, err := r.TimeEntry(context.Background(), "Start", &TimeEntryOptions{
		Formats: []string{"15:04"},
	})
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 9, value.Hour())
	assert.Equal(t, 30, value.Minute())

	// The unparseable entry produced a validator message, not a crash.
	require.Len(t, runner.calls, 2)
	mesg, _ := flagValue(runner.calls[1].args, "-mesg")
	assert.Contains(t, mesg, "15:04")
}

func TestDateEntryDefaults(t *testing.T) {
	runner := &fakeRunner{results: []fakeResult{{stdout: "2024-03-09\n", code: 0}}}
	r := newTestRofi(runner)

	value, ok, err := r.DateEntry(context.Background(), "Due", nil)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, time.Date(2024, time.March, 9, 0, 0, 0, 0, time.UTC), value)
}

func TestDateTimeEntryTriesFormatsInOrder(t *testing.T) {
	runner := &fakeRunner{results: []fakeResult{{stdout: "2024-03-09 14:30\n", code: 0}}}
	r := newTestRofi(runner)

	value, ok, err := r.DateTimeEntry(context.Background(), "When", nil)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 14, value.Hour())
	assert.Equal(t, 30, value.Minute())
	assert.Equal(t, 2024, value.Year())
}

func TestEntryArguments(t *testing.T) {
	runner := &fakeRunner{results: []fakeResult{{stdout: "x\n", code: 0}}}
	r := newTestRofi(runner)

	_, _, err := r.TextEntry(context.Background(), "Name", nil)
	require.NoError(t, err)

	args := runner.calls[0].args
	assert.Contains(t, args, "-dmenu")
	assert.True(t, hasPair(args, "-p", "Name"))
	assert.True(t, hasPair(args, "-format", "s"))
	assert.False(t, strings.Contains(strings.Join(args, " "), "-mesg"))
	assert.Empty(t, runner.calls[0].stdin)
}

func int64Ptr(v int64) *int64 { return &v }
