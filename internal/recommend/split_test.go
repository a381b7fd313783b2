package recommend

import (
	"testing"

	"github.com/Team2Kim/exerciesRecord-AI/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestTargetsFor_TwoWayAlternates(t *testing.T) {
	upper := TargetsFor(domain.SplitTwoWay, 0)
	lower := TargetsFor(domain.SplitTwoWay, 1)

	assert.Equal(t, []domain.BodyPart{
		domain.BodyPartChest, domain.BodyPartBack, domain.BodyPartShoulders, domain.BodyPartArms,
	}, upper)
	assert.Equal(t, []domain.BodyPart{domain.BodyPartLegs, domain.BodyPartCore}, lower)

	// Day 2 wraps back to upper.
	assert.Equal(t, upper, TargetsFor(domain.SplitTwoWay, 2))
}

func TestTargetsFor_ThreeWayCycles(t *testing.T) {
	day0 := TargetsFor(domain.SplitThreeWay, 0)
	day1 := TargetsFor(domain.SplitThreeWay, 1)
	day2 := TargetsFor(domain.SplitThreeWay, 2)

	assert.Equal(t, []domain.BodyPart{domain.BodyPartChest, domain.BodyPartArms}, day0)
	assert.Equal(t, []domain.BodyPart{domain.BodyPartBack, domain.BodyPartShoulders}, day1)
	assert.Equal(t, []domain.BodyPart{domain.BodyPartLegs, domain.BodyPartCore}, day2)

	assert.Equal(t, day0, TargetsFor(domain.SplitThreeWay, 3))
	assert.Equal(t, day1, TargetsFor(domain.SplitThreeWay, 4))
}

func TestTargetsFor_FullBodyEveryDay(t *testing.T) {
	for day := 0; day < 7; day++ {
		assert.Equal(t, domain.AllBodyParts, TargetsFor(domain.SplitFullBody, day), "day %d", day)
	}
}

func TestTargetsFor_ReturnsCopy(t *testing.T) {
	parts := TargetsFor(domain.SplitTwoWay, 0)
	parts[0] = domain.BodyPartCore

	assert.Equal(t, domain.BodyPartChest, TargetsFor(domain.SplitTwoWay, 0)[0])
}
