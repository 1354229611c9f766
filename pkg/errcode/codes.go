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

package errcode

const (
	// Value for destinguishing non-errCode type.
	// Not used by errCode.
	NotErrCodeType = iota - 1

	ErrUnknown // Default value
	ErrInvalidLength
	ErrInvalidMac
	ErrAlreadyAllocated
	ErrNotAllocated
	ErrOutOfRange
	ErrPoolExhausted

	// Number of error codes.
	// To implement new ones define them with `iota + ErrMax + 1' at first line in const definition block
	// Keep last.
	ErrMax
)
