package transcript

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const interview = `WEBVTT

a1b2c3/12-0
00:00:00.000 --> 00:00:03.120
<v Jane Interviewer>Tell me about</v>

a1b2c3/13-0
00:00:03.120 --> 00:00:04.500
<v Jane Interviewer>yourself</v>

d4e5f6/1-0
00:00:05.000 --> 00:00:05.400
<v John Student> </v>

d4e5f6/2-0
00:00:05.400 --> 00:00:09.800
<v John Student>Sure, I grew up
in a small town.</v>

d4e5f6/3-0
00:01:10.250 --> 00:01:12.000
<v Jane Interviewer>And then?</v>
`

func TestFormat(t *testing.T) {
	t.Run("end to end scenario", func(t *testing.T) {
		raw := "WEBVTT\n\n" +
			"1\n00:00:00.000 --> 00:00:02.000\n<v Jane Interviewer>Tell me about yourself</v>\n\n" +
			"2\n00:00:00.500 --> 00:00:04.000\n<v John Student>Sure, I grew up...</v>"

		got, err := Format(raw, "Jane Interviewer")

		require.NoError(t, err)
		assert.Equal(t, "Interviewer (00:00):\n\tTell me about yourself\n\nStudent (00:00):\n\tSure, I grew up...", got)
	})

	t.Run("merges runs and drops silence", func(t *testing.T) {
		got, err := Format(interview, "Jane Interviewer")

		require.NoError(t, err)
		want := "Interviewer (00:00):\n\tTell me about yourself\n\n" +
			"Student (00:05):\n\tSure, I grew up in a small town.\n\n" +
			"Interviewer (01:10):\n\tAnd then?"
		assert.Equal(t, want, got)
	})

	t.Run("student can be either label", func(t *testing.T) {
		got, err := Format(interview, "John Student")

		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(got, "Student (00:00):"))
		assert.Contains(t, got, "Interviewer (00:05):")
	})

	t.Run("repeated runs are byte identical", func(t *testing.T) {
		first, err := Format(interview, "Jane Interviewer")
		require.NoError(t, err)
		second, err := Format(interview, "Jane Interviewer")
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})

	t.Run("no trailing separator", func(t *testing.T) {
		got, err := Format(interview, "Jane Interviewer")

		require.NoError(t, err)
		assert.False(t, strings.HasSuffix(got, "\n"))
	})

	t.Run("three speakers", func(t *testing.T) {
		raw := interview + "\nx\n00:02:00.000 --> 00:02:01.000\n<v Guest>hello</v>\n"

		_, err := Format(raw, "Jane Interviewer")

		assert.ErrorIs(t, err, ErrUnexpectedSpeakerCount)
	})

	t.Run("interviewer mismatch", func(t *testing.T) {
		raw := "WEBVTT\n\n1\n00:00:01.000 --> 00:00:02.000\n<v Alice>hi</v>\n\n2\n00:00:03.000 --> 00:00:04.000\n<v Bob>hey</v>"

		_, err := Format(raw, "Carol")

		assert.ErrorIs(t, err, ErrBadInterviewerName)
		assert.Contains(t, err.Error(), "Carol")
	})

	t.Run("empty transcript has no speakers", func(t *testing.T) {
		_, err := Format("WEBVTT\n", "Jane")

		assert.ErrorIs(t, err, ErrUnexpectedSpeakerCount)
	})

	t.Run("malformed block fails the whole transcript", func(t *testing.T) {
		raw := "WEBVTT\n\n1\n00:00:01.000 --> 00:00:02.000\n<v Alice>hi</v>\n\nbroken"

		got, err := Format(raw, "Alice")

		assert.ErrorIs(t, err, ErrMalformedBlock)
		assert.Empty(t, got)
	})
}

func TestParseBlockCountMatchesSpeakerRuns(t *testing.T) {
	blocks, err := Parse(interview, "Jane Interviewer")

	require.NoError(t, err)
	require.Len(t, blocks, 3)
	assert.Equal(t, Block{Timestamp: "00:05", Speaker: RoleStudent, Speech: "Sure, I grew up in a small town."}, blocks[1])
}

func TestRender(t *testing.T) {
	assert.Equal(t, "", Render(nil))
	assert.Equal(t, "Student (12:34):\n\tok", Render([]Block{{Timestamp: "12:34", Speaker: RoleStudent, Speech: "ok"}}))
}
