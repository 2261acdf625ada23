package template

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		id       ID
		font     string
		fallback string
		accent   RGB
		rule     bool
	}{
		{Modern, "helvetica", "helvetica", RGB{0, 102, 204}, false},
		{Corporate, "times", "times", RGB{0, 0, 0}, true},
		{Creative, "comic", "helvetica", RGB{255, 105, 180}, false},
	}
	for _, tt := range tests {
		t.Run(string(tt.id), func(t *testing.T) {
			s := Lookup(tt.id)
			assert.Equal(t, tt.id, s.ID)
			assert.Equal(t, tt.font, s.FontFamily)
			assert.Equal(t, tt.fallback, s.FallbackFamily)
			assert.Equal(t, tt.accent, s.Accent)
			assert.Equal(t, tt.rule, s.HeaderRule)
		})
	}
}

func TestCreativeTitles(t *testing.T) {
	s := Lookup(Creative)
	assert.Equal(t, "My Story", s.Title(SectionSummary))
	assert.Equal(t, "Adventures", s.Title(SectionExperience))
	assert.Equal(t, "Learning Journey", s.Title(SectionEducation))
	assert.Equal(t, "Superpowers", s.Title(SectionSkills))
	assert.Equal(t, "Trophies", s.Title(SectionAchievements))
	assert.Equal(t, RGB{255, 105, 180}, s.PersonalColor)
}

func TestLiteralTitles(t *testing.T) {
	for _, id := range []ID{Modern, Corporate} {
		s := Lookup(id)
		assert.Equal(t, "Experience", s.Title(SectionExperience))
		assert.Equal(t, RGB{0, 0, 0}, s.PersonalColor)
	}
}

func TestParse(t *testing.T) {
	id, ok := Parse(" Creative ")
	assert.True(t, ok)
	assert.Equal(t, Creative, id)

	_, ok = Parse("retro")
	assert.False(t, ok)
}

func TestLookupUnknownFallsBackToDefault(t *testing.T) {
	assert.Equal(t, Modern, Lookup("retro").ID)
	assert.Len(t, All(), 3)
}
