package recommend

import "github.com/Team2Kim/exerciesRecord-AI/internal/domain"

// Candidates narrows the catalog to per-body-part candidate lists for one
// day. An exercise qualifies when its body part matches, its difficulty does
// not exceed the user's experience level, and its target goal equals the
// primary goal. The goal constraint is soft: when it leaves fewer than
// minPerPart candidates for a body part, it is dropped for that part so the
// day keeps enough variety.
//
// The input slice must be ordered by catalog identifier (snapshot order);
// the output lists preserve that ordering. A body part maps to an empty
// list only when the catalog genuinely has no body-part/difficulty match,
// which the assembler reports as a day note.
func Candidates(
	exercises []domain.Exercise,
	parts []domain.BodyPart,
	level domain.Difficulty,
	goal domain.Goal,
	minPerPart int,
) map[domain.BodyPart][]domain.Exercise {
	byPart := make(map[domain.BodyPart][]domain.Exercise, len(parts))

	for _, part := range parts {
		var strict, relaxed []domain.Exercise
		for _, ex := range exercises {
			if ex.BodyPart != part || ex.Difficulty.Rank() > level.Rank() {
				continue
			}
			relaxed = append(relaxed, ex)
			if ex.TargetGoal == goal {
				strict = append(strict, ex)
			}
		}

		if len(strict) >= minPerPart {
			byPart[part] = strict
		} else {
			byPart[part] = relaxed
		}
	}

	return byPart
}
