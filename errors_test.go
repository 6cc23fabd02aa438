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

import (
	"errors"
	"io/fs"
	"testing"
)

func TestErrorIs(t *testing.T) {
	cause := fs.ErrNotExist
	err := error(newError("LoadFromPath", KindInvalidInput, cause))

	if !errors.Is(err, ErrInvalidInput) {
		t.Error("error does not match its kind")
	}
	if errors.Is(err, ErrParseFailed) {
		t.Error("error matches a different kind")
	}
	if !errors.Is(err, cause) {
		t.Error("error does not match its cause")
	}
	if !errors.Is(err, &Error{Op: "LoadFromPath", Kind: KindInvalidInput}) {
		t.Error("error does not match its operation")
	}
	if errors.Is(err, &Error{Op: "Render", Kind: KindInvalidInput}) {
		t.Error("error matches a different operation")
	}

	var e *Error
	if !errors.As(err, &e) || e.Kind != KindInvalidInput {
		t.Errorf("errors.As gave %v", e)
	}
}

func TestErrorMessage(t *testing.T) {
	tests := []struct {
		err  *Error
		want string
	}{
		{ErrNotReady, "svgrender: not ready"},
		{newError("Render", KindNotReady, nil), "svgrender: Render: not ready"},
		{
			newError("Resize", KindTargetBindFailed, errors.New("no memory")),
			"svgrender: Resize: target bind failed: no memory",
		},
	}
	for _, tc := range tests {
		if got := tc.err.Error(); got != tc.want {
			t.Errorf("got %q, want %q", got, tc.want)
		}
	}
}
