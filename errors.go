// seehuhn.de/go/svgrender - render SVG documents into pixel buffers
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package svgrender

import "strings"

// Kind classifies the errors returned by this package.
type Kind string

// These are the error kinds used by Runtime and Session.
const (
	KindEngineInitFailed     Kind = "engine init failed"
	KindInvalidInput         Kind = "invalid input"
	KindParseFailed          Kind = "parse failed"
	KindSizeQueryFailed      Kind = "size query failed"
	KindResizeFailed         Kind = "resize failed"
	KindTargetCreationFailed Kind = "target creation failed"
	KindTargetBindFailed     Kind = "target bind failed"
	KindNotReady             Kind = "not ready"
	KindRenderFailed         Kind = "render failed"
	KindRuntimeBusy          Kind = "runtime busy"
)

// Sentinel errors for use with errors.Is. An *Error matches the sentinel of
// its Kind, whatever its Op and cause.
var (
	ErrEngineInitFailed     = &Error{Kind: KindEngineInitFailed}
	ErrInvalidInput         = &Error{Kind: KindInvalidInput}
	ErrParseFailed          = &Error{Kind: KindParseFailed}
	ErrSizeQueryFailed      = &Error{Kind: KindSizeQueryFailed}
	ErrResizeFailed         = &Error{Kind: KindResizeFailed}
	ErrTargetCreationFailed = &Error{Kind: KindTargetCreationFailed}
	ErrTargetBindFailed     = &Error{Kind: KindTargetBindFailed}
	ErrNotReady             = &Error{Kind: KindNotReady}
	ErrRenderFailed         = &Error{Kind: KindRenderFailed}
	ErrRuntimeBusy          = &Error{Kind: KindRuntimeBusy}
)

// Error is the error type returned by Runtime and Session methods.
type Error struct {
	Op   string // the failing operation, e.g. "Resize"
	Kind Kind
	Err  error // the underlying cause, may be nil
}

func newError(op string, kind Kind, err error) *Error {
	return &Error{Op: op, Kind: kind, Err: err}
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString("svgrender: ")
	if e.Op != "" {
		b.WriteString(e.Op)
		b.WriteString(": ")
	}
	b.WriteString(string(e.Kind))
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is an *Error of the same kind. If target has
// an Op, the operations must match as well.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && (t.Op == "" || t.Op == e.Op)
}
