package renderer

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/spinlight/internal/logger"
)

// maxErrorDrain bounds the glGetError loop; a lost context can report
// errors forever.
const maxErrorDrain = 16

func (r *Renderer) checkErrors(where string) {
	if !r.config.CheckGLErrors {
		return
	}
	for i := 0; i < maxErrorDrain; i++ {
		code := gl.GetError()
		if code == gl.NO_ERROR {
			return
		}
		logger.Warn("OpenGL error",
			zap.String("where", where),
			zap.String("error", ErrorName(code)),
		)
	}
}

// ErrorName returns the symbolic name of a glGetError code.
func ErrorName(code uint32) string {
	switch code {
	case gl.NO_ERROR:
		return "GL_NO_ERROR"
	case gl.INVALID_ENUM:
		return "GL_INVALID_ENUM"
	case gl.INVALID_VALUE:
		return "GL_INVALID_VALUE"
	case gl.INVALID_OPERATION:
		return "GL_INVALID_OPERATION"
	case gl.INVALID_FRAMEBUFFER_OPERATION:
		return "GL_INVALID_FRAMEBUFFER_OPERATION"
	case gl.OUT_OF_MEMORY:
		return "GL_OUT_OF_MEMORY"
	default:
		return fmt.Sprintf("GL error 0x%04X", code)
	}
}
