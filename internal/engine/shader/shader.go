// Package shader provides OpenGL shader compilation utilities.
package shader

import (
	"fmt"
	"strings"
)

// Stage identifies a pipeline stage.
type Stage int

const (
	StageVertex Stage = iota
	StageFragment
)

func (s Stage) String() string {
	switch s {
	case StageVertex:
		return "vertex"
	case StageFragment:
		return "fragment"
	default:
		return fmt.Sprintf("Stage(%d)", int(s))
	}
}

const noDiagnostic = "no diagnostic output"

// CompileError reports a stage that failed to compile.
type CompileError struct {
	Stage Stage
	Log   string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("%s shader compilation failed: %s", e.Stage, e.Log)
}

// LinkError reports a program that failed to link.
type LinkError struct {
	Log string
}

func (e *LinkError) Error() string {
	return "shader program linking failed: " + e.Log
}

// diagnostic trims driver padding and never returns an empty string.
func diagnostic(log string) string {
	log = strings.TrimSpace(strings.TrimRight(log, "\x00"))
	if log == "" {
		return noDiagnostic
	}
	return log
}

// Build compiles the vertex and fragment sources and links them into a
// program. On any failure every object created so far is deleted and no
// program is returned.
func Build(dev Device, vertexSrc, fragmentSrc string) (*Program, error) {
	vs, err := compile(dev, StageVertex, vertexSrc)
	if err != nil {
		return nil, err
	}
	defer dev.DeleteShader(vs)

	fs, err := compile(dev, StageFragment, fragmentSrc)
	if err != nil {
		return nil, err
	}
	defer dev.DeleteShader(fs)

	id, log, ok := dev.LinkProgram(vs, fs)
	if !ok {
		if id != 0 {
			dev.DeleteProgram(id)
		}
		return nil, &LinkError{Log: diagnostic(log)}
	}

	return newProgram(dev, id), nil
}

func compile(dev Device, stage Stage, source string) (uint32, error) {
	id, log, ok := dev.CompileShader(stage, source)
	if !ok {
		if id != 0 {
			dev.DeleteShader(id)
		}
		return 0, &CompileError{Stage: stage, Log: diagnostic(log)}
	}
	return id, nil
}
