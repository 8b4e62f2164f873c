package shader

import (
	"sort"

	"go.uber.org/zap"

	"github.com/Faultbox/spinlight/internal/logger"
	"github.com/Faultbox/spinlight/pkg/math"
)

// InvalidLocation is returned for uniforms the program does not use.
// Setting a uniform at this location does nothing.
const InvalidLocation int32 = -1

// Program is a linked shader program with a uniform location cache.
type Program struct {
	ID        uint32
	dev       Device
	locations map[string]int32
}

func newProgram(dev Device, id uint32) *Program {
	return &Program{
		ID:        id,
		dev:       dev,
		locations: make(map[string]int32),
	}
}

// Resolve looks up and caches the locations of the given uniforms.
// Unresolved names are cached as InvalidLocation and logged at debug level.
func (p *Program) Resolve(names ...string) {
	for _, name := range names {
		if loc := p.Location(name); loc == InvalidLocation {
			logger.Debug("uniform not active", zap.String("name", name), zap.Uint32("program", p.ID))
		}
	}
}

// Location returns the cached location, querying the driver on first use.
func (p *Program) Location(name string) int32 {
	if loc, ok := p.locations[name]; ok {
		return loc
	}
	loc := p.dev.UniformLocation(p.ID, name)
	if loc < 0 {
		loc = InvalidLocation
	}
	p.locations[name] = loc
	return loc
}

// Unresolved returns the cached names whose location is invalid, sorted.
func (p *Program) Unresolved() []string {
	var out []string
	for name, loc := range p.locations {
		if loc == InvalidLocation {
			out = append(out, name)
		}
	}
	sort.Strings(out)
	return out
}

// Use binds the program.
func (p *Program) Use() {
	p.dev.UseProgram(p.ID)
}

// Delete releases the program.
func (p *Program) Delete() {
	if p.ID != 0 {
		p.dev.DeleteProgram(p.ID)
		p.ID = 0
	}
}

// SetMat4 sets a mat4 uniform.
func (p *Program) SetMat4(name string, m math.Mat4) {
	if loc := p.Location(name); loc != InvalidLocation {
		p.dev.UniformMatrix4(loc, &m)
	}
}

// SetMat3 sets a mat3 uniform.
func (p *Program) SetMat3(name string, m math.Mat3) {
	if loc := p.Location(name); loc != InvalidLocation {
		p.dev.UniformMatrix3(loc, &m)
	}
}

// SetVec3 sets a vec3 uniform.
func (p *Program) SetVec3(name string, v math.Vec3) {
	if loc := p.Location(name); loc != InvalidLocation {
		p.dev.Uniform3(loc, v)
	}
}

// SetFloat sets a float uniform.
func (p *Program) SetFloat(name string, v float32) {
	if loc := p.Location(name); loc != InvalidLocation {
		p.dev.Uniform1(loc, v)
	}
}
