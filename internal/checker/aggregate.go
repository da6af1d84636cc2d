package checker

// Aggregate evaluates every candidate of every file, in the order given, and
// collects one Violation per offending method. Identical violations from
// distinct methods are all kept.
func Aggregate(results []FileResult, rule *Rule) Report {
	rep := Report{Violations: []Violation{}}
	rep.Summary.FilesScanned = len(results)
	for _, res := range results {
		if !res.UseCase {
			continue
		}
		rep.Summary.UseCaseFiles++
		for _, c := range res.Candidates {
			exposed, ok := rule.Evaluate(c.Signature)
			if !ok {
				continue
			}
			rep.Violations = append(rep.Violations, Violation{
				Kind:        KindExposedModel,
				UseCase:     c.UseCase,
				Method:      c.Method,
				ExposedType: exposed,
				Signature:   c.Signature,
				Position:    c.Position,
			})
		}
	}
	rep.Summary.Violations = len(rep.Violations)
	return rep
}
