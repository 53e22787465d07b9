package queryir

// ValidationResult reports whether a Query lies in the portable
// fragment: the subset querysql.Compile is guaranteed to translate
// without error.
type ValidationResult struct {
	IsPortable bool
	Warnings   []string
}

// Validate checks a Query against the portable fragment rules:
// explicit bindings (no SELECT *), and every predicate node reachable
// from Filter recognized by this package. Validate is pure.
func Validate(query Query) ValidationResult {
	v := &validator{}
	v.validateQuery(query)
	return ValidationResult{IsPortable: len(v.warnings) == 0, Warnings: v.warnings}
}

type validator struct {
	warnings []string
}

func (v *validator) addWarning(msg string) {
	v.warnings = append(v.warnings, msg)
}

func (v *validator) validateQuery(q Query) {
	if q == nil {
		v.addWarning("nil query")
		return
	}
	switch sel := q.(type) {
	case Select:
		v.validateSelect(sel)
	case *Select:
		v.validateSelect(*sel)
	default:
		v.addWarning("unknown query type")
	}
}

func (v *validator) validateSelect(sel Select) {
	if sel.From == "" {
		v.addWarning("empty From")
	}
	if len(sel.Bindings) == 0 {
		v.addWarning("empty bindings (SELECT *) is not portable")
	}
	if sel.Filter != nil {
		v.validatePredicate(sel.Filter)
	}
}

func (v *validator) validatePredicate(p Predicate) {
	if p == nil {
		return
	}
	switch pred := p.(type) {
	case Equals, *Equals:
	case Range:
		if !pred.HasMin && !pred.HasMax {
			v.addWarning("Range with neither Min nor Max is not portable")
		}
	case *Range:
		if !pred.HasMin && !pred.HasMax {
			v.addWarning("Range with neither Min nor Max is not portable")
		}
	case And:
		for _, sub := range pred.Predicates {
			v.validatePredicate(sub)
		}
	case *And:
		for _, sub := range pred.Predicates {
			v.validatePredicate(sub)
		}
	default:
		v.addWarning("unknown predicate type")
	}
}
