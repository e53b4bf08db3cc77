package scheduling

// SkillMatchThreshold is the minimum fraction of an applicant's required
// skills a specialist must cover for the assignment to be valid.
const SkillMatchThreshold = 0.8

// NormalizeSkills collapses duplicates and drops empty entries, preserving
// first-seen order. Matching is exact-string and case-sensitive, so no case
// or whitespace normalization happens here.
func NormalizeSkills(skills []string) []string {
	seen := make(map[string]struct{}, len(skills))
	out := make([]string, 0, len(skills))
	for _, skill := range skills {
		if skill == "" {
			continue
		}
		if _, ok := seen[skill]; ok {
			continue
		}
		seen[skill] = struct{}{}
		out = append(out, skill)
	}
	return out
}

// SkillCoverage counts how many of the required skills are present in the
// specialist's skill set. Both sets are deduplicated first; the returned
// total is the deduplicated required-skill count.
func SkillCoverage(specialistSkills, requiredSkills []string) (matched, total int) {
	required := NormalizeSkills(requiredSkills)
	have := make(map[string]struct{}, len(specialistSkills))
	for _, skill := range specialistSkills {
		have[skill] = struct{}{}
	}
	for _, skill := range required {
		if _, ok := have[skill]; ok {
			matched++
		}
	}
	return matched, len(required)
}

// MatchSkills reports whether the specialist covers at least
// SkillMatchThreshold of the required skills. The denominator is the
// applicant's required-skill count: a specialist with extra irrelevant skills
// is not penalized. Empty required sets never match; callers reject them
// before the matcher runs.
func MatchSkills(specialistSkills, requiredSkills []string) bool {
	matched, total := SkillCoverage(specialistSkills, requiredSkills)
	if total == 0 {
		return false
	}
	return float64(matched)/float64(total) >= SkillMatchThreshold
}
