package markdown

import (
	"testing"

	"github.com/nakachan-ing/mdtodo/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSectionFor(t *testing.T) {
	g := DefaultGrammar()

	tests := []struct {
		header string
		want   model.Status
		ok     bool
	}{
		{header: "## 🔥 DOING (max. 3)", want: model.StatusDoing, ok: true},
		{header: "## doing", want: model.StatusDoing, ok: true},
		{header: "## 📌 Next up", want: model.StatusNext, ok: true},
		{header: "## ✅ DONE", want: model.StatusDone, ok: true},
		{header: "## UNDONE", ok: false},
		{header: "## NEXTCLOUD", ok: false},
		{header: "### DOING", ok: false},
		{header: "DOING", ok: false},
	}
	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			sk, ok := g.SectionFor(tt.header)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, sk.Status)
			}
		})
	}
}

func TestKeywordsFor(t *testing.T) {
	kw, err := KeywordsFor("PT")
	require.NoError(t, err)
	assert.Equal(t, "Foco de hoje", kw.FocusMarker)
	require.NoError(t, ValidateKeywords(kw))

	_, err = KeywordsFor("fr")
	assert.Error(t, err)
}

func TestValidateKeywords(t *testing.T) {
	kw, err := KeywordsFor("en")
	require.NoError(t, err)

	missing := kw
	missing.Sections = kw.Sections[:5]
	assert.Error(t, ValidateKeywords(missing))

	unknown := kw
	unknown.Sections = append([]model.SectionKeyword{{Status: "someday", Keyword: "SOMEDAY"}}, kw.Sections...)
	assert.Error(t, ValidateKeywords(unknown))

	noMarker := kw
	noMarker.FocusMarker = " "
	assert.Error(t, ValidateKeywords(noMarker))
}

func TestGrammarFromConfig(t *testing.T) {
	cfg := model.DefaultConfig()
	g, err := GrammarFromConfig(cfg)
	require.NoError(t, err)
	assert.Equal(t, "Today's focus", g.Keywords.FocusMarker)

	custom, err := KeywordsFor("en")
	require.NoError(t, err)
	custom.Sections = append([]model.SectionKeyword{}, custom.Sections...)
	custom.Sections[1] = model.SectionKeyword{Status: model.StatusNext, Keyword: "TODO", Emoji: "📝"}
	cfg.Keywords = &custom

	g, err = GrammarFromConfig(cfg)
	require.NoError(t, err)
	sk, ok := g.SectionFor("## 📝 TODO")
	require.True(t, ok)
	assert.Equal(t, model.StatusNext, sk.Status)
	assert.Equal(t, "📝", g.Emoji(model.StatusNext))

	cfg.Keywords = nil
	cfg.Locale = "xx"
	_, err = GrammarFromConfig(cfg)
	assert.Error(t, err)
}
