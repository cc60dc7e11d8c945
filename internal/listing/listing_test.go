package listing

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abordi-ai/abordi/internal/catalog"
)

func toolNames(tools []catalog.Tool) []string {
	var names []string
	for _, t := range tools {
		names = append(names, t.Name)
	}
	return names
}

func TestResolve_ProfessionOnly(t *testing.T) {
	l := Resolve(catalog.Default(), Params{Profession: "HR / Recruiter"})

	assert.Equal(t, "HR / Recruiter Tools", l.Header)
	assert.Equal(t, "Tools to enhance your workflow", l.Subtitle)
	assert.Empty(t, cmp.Diff([]string{"ChatGPT", "Copy.ai", "Notion AI"}, toolNames(l.Tools)))
	assert.Nil(t, l.Prompt)
	require.NotNil(t, l.Profession)
	assert.Equal(t, "HR / Recruiter", l.Profession.Name)
}

func TestResolve_PromptAndProfession(t *testing.T) {
	l := Resolve(catalog.Default(), Params{Prompt: "Create ad copy", Profession: "Marketer"})

	assert.Equal(t, "Create ad copy", l.Header)
	assert.Equal(t, "Recommended for this prompt", l.Subtitle)
	require.NotNil(t, l.Prompt)
	assert.Equal(t, "Create ad copy", l.Prompt.Title)
	assert.Len(t, l.Tools, 3)
}

func TestResolve_PromptFromOtherProfession(t *testing.T) {
	l := Resolve(catalog.Default(), Params{Prompt: "Create ad copy", Profession: "Designer"})

	assert.Nil(t, l.Prompt, "prompt must belong to the resolved profession")
	assert.Equal(t, "Create ad copy", l.Header)
	assert.Equal(t, "Tools to enhance your workflow", l.Subtitle)
}

func TestResolve_NoParams_FallsBackToDedupedTools(t *testing.T) {
	l := Resolve(catalog.Default(), Params{})

	assert.Equal(t, "All AI Tools", l.Header)
	want := []string{"ChatGPT", "Copy.ai", "Notion AI", "Canva", "Hashtagify", "Jasper", "Surfer SEO", "Pitch", "Midjourney", "DALL-E", "Figma"}
	if diff := cmp.Diff(want, toolNames(l.Tools)); diff != "" {
		t.Errorf("tools (-want +got):\n%s", diff)
	}
	assert.Nil(t, l.Profession)
	assert.Nil(t, l.Prompt)
}

func TestResolve_UnknownProfession(t *testing.T) {
	l := Resolve(catalog.Default(), Params{Profession: "Astronaut", Prompt: "Write a job posting"})

	assert.Equal(t, "Write a job posting", l.Header)
	assert.Nil(t, l.Prompt, "prompt cannot resolve without a profession")
	assert.Len(t, l.Tools, 11)
}

func TestResolve_EmptyCatalog(t *testing.T) {
	l := Resolve(&catalog.Catalog{}, Params{Profession: "Designer"})

	assert.Empty(t, l.Tools)
	assert.Equal(t, "No tools available", l.Heading())
	assert.Equal(t, "All AI Tools", l.Header)
}

func TestParams_RoundTripThroughNavigation(t *testing.T) {
	p := Params{Prompt: "Draft investor email", Profession: "Startup Founder"}
	assert.Equal(t, p, ParamsFrom(p.Messages()))
	assert.Empty(t, (Params{}).Messages(), "blank params should be omitted")
}

func TestMarkdown(t *testing.T) {
	l := Resolve(catalog.Default(), Params{Prompt: "Create UI wireframes", Profession: "Designer"})
	md := l.Markdown()

	for _, want := range []string{
		"# Create UI wireframes\n",
		"_Recommended for this prompt_",
		"> **Prompt:** Create UI wireframes",
		"## Recommended Tools",
		"- **Figma**: Design user interfaces <https://www.figma.com>",
	} {
		assert.Contains(t, md, want)
	}
}

func TestRender_PlainStyle(t *testing.T) {
	l := Resolve(catalog.Default(), Params{Profession: "Designer"})

	out, err := Render(l, "notty", 80)
	require.NoError(t, err)
	for _, want := range []string{"Designer Tools", "Midjourney", "Recommended Tools"} {
		assert.Contains(t, out, want)
	}
}

func TestRender_UnknownStyle(t *testing.T) {
	_, err := Render(Resolve(catalog.Default(), Params{}), "no-such-style", 80)
	assert.Error(t, err)
}
