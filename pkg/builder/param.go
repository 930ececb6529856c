package builder

import (
	"fmt"

	"github.com/cmmoran/restresult/pkg/model"
)

// newParam is the single construction path for every parameter role. Roles
// outside the six model.ParameterTypes panic.
func newParam(role model.ParameterType, name, typ string, defaultValue *string) *model.MethodParameter {
	if !role.Valid() {
		panic(fmt.Sprintf("builder: unknown parameter type %q", string(role)))
	}
	p := model.NewMethodParameter(model.OfType(typ), role)
	p.Name = name
	if defaultValue != nil {
		v := *defaultValue
		p.DefaultValue = &v
	}
	return p
}

func usedAfterBuild(builder string) {
	panic("builder: " + builder + " used after Build")
}
