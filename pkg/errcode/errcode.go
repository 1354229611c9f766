// Copyright 2026 The macaddr Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

// Package errcode defines the errCode type, which extend common error handling,
// by providing error code value in addition to error message.
//
// To create new errCode with some text use `NewErr' method, with formatted
// text - `Errorf' method. Errors that diagnose a rejected address string use
// `AddrErrorf' so the original input survives for display.
//
// To get error code value use `GetCode' method, text - `Error' method. Example:
//
//	if errcode.GetCode(err) == errcode.ErrInvalidLength {
//	     fmt.Println(errcode.GetAddr(err))
//	}
package errcode

import "fmt"

type errCode struct {
	code int
	text string
	addr string
}

// Error returns error message.
func (e *errCode) Error() string {
	return e.text
}

// GetCode returns error code value or NotErrCodeType if variable isn't of type errCode.
func GetCode(e error) int {
	err, ok := e.(*errCode)
	if !ok {
		return NotErrCodeType
	}
	return err.code
}

// GetAddr returns the original address string the error was raised for,
// or an empty string if the error carries none.
func GetAddr(e error) string {
	err, ok := e.(*errCode)
	if !ok {
		return ""
	}
	return err.addr
}

// NewErr creates new errCode with provided text.
func NewErr(code int, text string) error {
	return &errCode{code: code, text: text}
}

// Errorf creates new errCode with formated text.
func Errorf(code int, format string, a ...interface{}) error {
	return &errCode{code: code, text: fmt.Sprintf(format, a...)}
}

// AddrErrorf creates new errCode with formated text, carrying addr as the
// original offending input.
func AddrErrorf(code int, addr, format string, a ...interface{}) error {
	return &errCode{code: code, text: fmt.Sprintf(format, a...), addr: addr}
}
