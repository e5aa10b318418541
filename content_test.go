package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTimelineFor(t *testing.T) {
	assert.Len(t, timelineFor(""), len(Timeline))
	assert.Len(t, timelineFor("ALL"), len(Timeline))
	assert.Len(t, timelineFor("education"), 2)
	assert.Len(t, timelineFor(" Experience "), 1)
	assert.Empty(t, timelineFor("hobby"))
}

func TestSkillLevelsInRange(t *testing.T) {
	for _, cat := range Skills {
		for _, s := range cat.Skills {
			assert.True(t, s.Level >= 0 && s.Level <= 100, "%s/%s level %d", cat.Name, s.Name, s.Level)
		}
	}
}
