package markdown

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harrison/docguard/internal/models"
)

func TestExtractSection(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		title    string
		wantBody string
		wantOK   bool
	}{
		{
			name:     "stops at next level-3 heading regardless of nesting",
			text:     "## A\nbody\n### A.1\nmore\n## B",
			title:    "A",
			wantBody: "\nbody\n",
			wantOK:   true,
		},
		{
			name:     "runs to end of document",
			text:     "# Title\n## Last\ntail text\n",
			title:    "Last",
			wantBody: "\ntail text\n",
			wantOK:   true,
		},
		{
			name:     "level-3 heading",
			text:     "### 2. Install Dependencies\n```bash\nbun install\n```\n### 3. Start the Database\n",
			title:    "2. Install Dependencies",
			wantBody: "\n```bash\nbun install\n```\n",
			wantOK:   true,
		},
		{
			name:     "title with regex metacharacters",
			text:     "## 5. Database Generation/Migration (Prisma)\nbun run db:migrate\n",
			title:    "5. Database Generation/Migration (Prisma)",
			wantBody: "\nbun run db:migrate\n",
			wantOK:   true,
		},
		{
			name:     "trailing whitespace after title",
			text:     "## Troubleshooting   \ndocker ps\n",
			title:    "Troubleshooting",
			wantBody: "\ndocker ps\n",
			wantOK:   true,
		},
		{
			name:     "level-4 heading does not terminate",
			text:     "## A\none\n#### detail\ntwo\n## B\n",
			title:    "A",
			wantBody: "\none\n#### detail\ntwo\n",
			wantOK:   true,
		},
		{
			name:   "level-1 heading is not a section",
			text:   "# A\nbody\n",
			title:  "A",
			wantOK: false,
		},
		{
			name:   "title must match exactly",
			text:   "## Prerequisites and more\nbody\n",
			title:  "Prerequisites",
			wantOK: false,
		},
		{
			name:   "heading marks need a space",
			text:   "##Prerequisites\nbody\n",
			title:  "Prerequisites",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sec, ok := ExtractSection(tt.text, tt.title)
			require.Equal(t, tt.wantOK, ok)
			if !ok {
				return
			}
			assert.Equal(t, tt.wantBody, sec.Body)
			assert.Equal(t, tt.text[sec.Start:sec.End], sec.Body)
		})
	}
}

func TestExtractSection_Prerequisites(t *testing.T) {
	text := "## Prerequisites\nRequires [Bun](https://bun.sh) v1.2.22 or higher, Docker Compose, and Git.\n## Next\n"

	sec, ok := ExtractSection(text, "Prerequisites")
	require.True(t, ok)
	assert.Equal(t, "\nRequires [Bun](https://bun.sh) v1.2.22 or higher, Docker Compose, and Git.\n", sec.Body)
	assert.NotContains(t, sec.Body, "## Next")
	assert.Equal(t, 2, sec.Level)
	assert.Equal(t, 1, sec.Line)
}

func TestExtractSection_Idempotent(t *testing.T) {
	text := "# Doc\n\n## Getting Started\n### 1. Clone\n```bash\ngit clone x\n```\n## Other\n"

	first, ok1 := ExtractSection(text, "Getting Started")
	second, ok2 := ExtractSection(text, "Getting Started")
	require.True(t, ok1)
	require.True(t, ok2)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("ExtractSection not idempotent (-first +second):\n%s", diff)
	}
	assert.Equal(t, models.Section{
		Title: "Getting Started",
		Level: 2,
		Line:  3,
		Start: first.Start,
		End:   first.End,
		Body:  "\n",
	}, first)
}

func TestHasStepHeading(t *testing.T) {
	text := "# HabitRace Backend\n## Prerequisites\n### 3. Start the Database\n"

	assert.True(t, HasStepHeading(text, "3. Start the Database"))
	assert.False(t, HasStepHeading(text, "HabitRace Backend"))
	assert.True(t, HasStepHeading(text, "Start the Database"))
	assert.True(t, HasStepHeading(text, "Prerequisites"))
	assert.False(t, HasStepHeading(text, "Troubleshooting"))

	assert.True(t, HasHeadingLevel(text, "3. Start the Database", 3))
	assert.False(t, HasHeadingLevel(text, "3. Start the Database", 2))
}

func TestHeadings(t *testing.T) {
	text := "# Top\n## One\ntext\n### Two  \n#### Three\n"
	want := []Heading{
		{Level: 2, Title: "One", Line: 2},
		{Level: 3, Title: "Two", Line: 4},
	}
	if diff := cmp.Diff(want, Headings(text)); diff != "" {
		t.Errorf("Headings mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, "### Two", want[1].String())
}

func TestFirstLine(t *testing.T) {
	assert.Equal(t, "# HabitRace Backend", FirstLine("# HabitRace Backend  \nmore"))
	assert.Equal(t, "", FirstLine(""))
}
