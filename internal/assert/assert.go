//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

// +build !debug

// Package assert offers a cheap way to sprinkle invariant checks through
// the engine without paying for them in a release build.
package assert

// DEBUG is false in this build. It is a const so the compiler can
// dead-code-eliminate call sites guarded by it entirely.
const DEBUG = false

// Assert is the release-build variant and does nothing: test is not
// checked and Assert never panics. Call sites should still guard with
// "if assert.DEBUG" so the arguments to Assert are not evaluated:
//  if assert.DEBUG {
//      assert.Assert(sq.IsValid(), "invalid square %d", sq)
//  }
func Assert(test bool, msg string, a ...interface{}) {}
