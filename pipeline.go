package tmplengine

import (
	"text/template/parse"

	"github.com/corvidrun/tmplengine/value"
)

// evalPipe evaluates a pipeline per spec.md §4.2. It returns the pipeline's
// value and whether it carried any variable declarations — callers at
// statement position (the tree walker) must not print a value that came
// from a declaring pipeline.
func (s *execState) evalPipe(ctx Context, pipe *parse.PipeNode) (value.Value, bool, error) {
	if pipe == nil {
		return value.NoValue(), false, nil
	}

	if len(pipe.Cmds) == 0 {
		return value.Value{}, false, ErrorEvaluatingPipeError{}
	}

	var (
		val   value.Value
		final *value.Value
	)
	for _, cmd := range pipe.Cmds {
		v, err := s.evalCommand(ctx, cmd, final)
		if err != nil {
			return value.Value{}, false, err
		}
		val = v
		final = &val
	}

	for _, decl := range pipe.Decl {
		name := decl.Ident[0]
		if pipe.IsAssign {
			if err := s.scope.reassign(name, val); err != nil {
				return value.Value{}, false, err
			}
		} else {
			s.scope.declare(name, val)
		}
	}

	return val, len(pipe.Decl) > 0, nil
}
