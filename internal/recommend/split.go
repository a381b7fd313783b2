// Package recommend implements the rule-based workout recommendation core:
// split-type day mapping, candidate filtering, weighted scoring and the
// day-by-day routine assembler. Everything in this package is pure
// computation over an immutable catalog snapshot and a request-scoped
// profile; there is no I/O and no hidden randomness.
package recommend

import "github.com/Team2Kim/exerciesRecord-AI/internal/domain"

var (
	upperBodyParts = []domain.BodyPart{
		domain.BodyPartChest,
		domain.BodyPartBack,
		domain.BodyPartShoulders,
		domain.BodyPartArms,
	}
	lowerBodyParts = []domain.BodyPart{
		domain.BodyPartLegs,
		domain.BodyPartCore,
	}
	threeWayCycle = [][]domain.BodyPart{
		{domain.BodyPartChest, domain.BodyPartArms},
		{domain.BodyPartBack, domain.BodyPartShoulders},
		{domain.BodyPartLegs, domain.BodyPartCore},
	}
)

// TargetsFor maps (split type, day index) to that day's ordered target body
// parts. It is a pure total function: any day index >= 0 yields a non-empty,
// order-stable list. Invalid split types are a caller bug; profile
// validation rejects them before day selection starts, so falling back to
// full body here is unreachable in practice.
func TargetsFor(split domain.SplitType, dayIndex int) []domain.BodyPart {
	var parts []domain.BodyPart
	switch split {
	case domain.SplitTwoWay:
		if dayIndex%2 == 0 {
			parts = upperBodyParts
		} else {
			parts = lowerBodyParts
		}
	case domain.SplitThreeWay:
		parts = threeWayCycle[dayIndex%3]
	default:
		parts = domain.AllBodyParts
	}

	out := make([]domain.BodyPart, len(parts))
	copy(out, parts)
	return out
}
