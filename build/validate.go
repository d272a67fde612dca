package build

import (
	"fmt"

	"github.com/expr-lang/expr"
)

// ExprValidator compiles src as a boolean expr-language expression over
// the builder state and evaluates it at Build time. The environment
// exposes name, composite, capacity, description and meta. A false
// result or an evaluation error aborts construction.
func ExprValidator(src string) Validator {
	return func(st *State) error {
		prg, err := expr.Compile(src, expr.AsBool())
		if err != nil {
			return fmt.Errorf("%w: compile %q: %w", ErrValidation, src, err)
		}
		out, err := expr.Run(prg, exprEnv(st))
		if err != nil {
			return fmt.Errorf("%w: run %q: %w", ErrValidation, src, err)
		}
		if !out.(bool) {
			return fmt.Errorf("%w: %q", ErrValidation, src)
		}
		return nil
	}
}

func exprEnv(st *State) map[string]any {
	meta := make(map[string]string, len(st.Meta))
	for _, m := range st.Meta {
		meta[m.Key] = m.Value
	}
	return map[string]any{
		"name":        st.Name,
		"composite":   st.Composite,
		"capacity":    st.Capacity,
		"description": st.Description,
		"meta":        meta,
	}
}
